package rearrangement

import (
	"sort"

	"github.com/dshills/cargostow/pkg/cargo"
	"github.com/dshills/cargostow/pkg/rng"
)

// PlanRearrangement proposes a configuration covering both the system's
// existing placed items and an incoming batch of new items: a GRASP
// construction pass followed by Tabu Search improvement. It never mutates
// sys; callers apply the returned assignments themselves after validating
// them.
func PlanRearrangement(sys *cargo.CargoSystem, newItems []*cargo.Item, cfg *cargo.Config, seed uint64) []Assignment {
	containers := make([]*cargo.Container, 0, len(sys.Containers))
	containerIndex := make(map[string]*cargo.Container, len(sys.Containers))
	for _, c := range sys.Containers {
		containers = append(containers, c)
		containerIndex[c.ID] = c
	}
	sort.Slice(containers, func(i, j int) bool { return containers[i].ID < containers[j].ID })
	if len(containers) == 0 {
		return nil
	}

	items := make([]*cargo.Item, 0, len(sys.Items)+len(newItems))
	byID := make(map[string]*cargo.Item, len(sys.Items)+len(newItems))
	for _, item := range sys.Items {
		items = append(items, item)
		byID[item.ID] = item
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	for _, item := range newItems {
		if _, exists := byID[item.ID]; exists {
			continue
		}
		items = append(items, item)
		byID[item.ID] = item
	}
	if len(items) == 0 {
		return nil
	}

	r := rng.NewRNG(seed, "rearrangement", cfg.Hash())

	initial := construct(items, containers, cfg.Rearrangement.Alpha, r)
	if len(initial) == 0 {
		return nil
	}

	return tabuSearch(initial, byID, containerIndex, containers, cfg.Rearrangement.MaxIterations, cfg.Rearrangement.TabuTenure, r)
}
