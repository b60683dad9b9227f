package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/cargostow/pkg/cargo"
)

// scenario is the on-disk description of the containers and items a run
// starts from, separate from cargo.Config's engine tuning knobs.
type scenario struct {
	Config     cargo.Config     `yaml:"config"`
	Containers []containerEntry `yaml:"containers"`
	Items      []itemEntry      `yaml:"items"`
}

type containerEntry struct {
	ID     string  `yaml:"id"`
	Zone   string  `yaml:"zone"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
}

type itemEntry struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Depth         float64 `yaml:"depth"`
	Priority      int     `yaml:"priority"`
	ExpiryDays    int     `yaml:"expiryDays"`
	UsageLimit    int     `yaml:"usageLimit"`
	PreferredZone string  `yaml:"preferredZone"`
	Weight        float64 `yaml:"weight"`
}

func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	s := &scenario{Config: *cargo.DefaultConfig()}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}
	if err := s.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	return s, nil
}

func (s *scenario) buildContainers() []*cargo.Container {
	out := make([]*cargo.Container, len(s.Containers))
	for i, c := range s.Containers {
		out[i] = cargo.NewContainer(c.ID, c.Zone, cargo.Dimensions{Width: c.Width, Height: c.Height, Depth: c.Depth}, cargo.Position{})
	}
	return out
}

func (s *scenario) buildItems(now time.Time) []*cargo.Item {
	out := make([]*cargo.Item, len(s.Items))
	for i, it := range s.Items {
		usageLimit := it.UsageLimit
		if usageLimit <= 0 {
			usageLimit = 1
		}
		out[i] = cargo.NewItem(
			it.ID, it.Name,
			cargo.Dimensions{Width: it.Width, Height: it.Height, Depth: it.Depth},
			it.Priority,
			now.AddDate(0, 0, it.ExpiryDays),
			usageLimit,
			it.PreferredZone,
			it.Weight,
		)
	}
	return out
}
