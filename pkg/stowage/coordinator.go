package stowage

import (
	"context"
	"fmt"
	"time"

	"github.com/dshills/cargostow/pkg/cargo"
	"github.com/dshills/cargostow/pkg/placement"
	"github.com/dshills/cargostow/pkg/rearrangement"
	"github.com/dshills/cargostow/pkg/retrieval"
	"github.com/dshills/cargostow/pkg/search"
	"github.com/dshills/cargostow/pkg/validation"
	"github.com/dshills/cargostow/pkg/waste"
)

// Coordinator is the single entry point a transport layer wraps: it owns
// the CargoSystem and exposes every mutator, planner, and query named in
// the external interface, deterministic per (Config, seed).
type Coordinator struct {
	system    *cargo.CargoSystem
	config    *cargo.Config
	validator validation.Validator
}

// New creates a coordinator over a fresh, empty system.
func New(cfg *cargo.Config) *Coordinator {
	if cfg == nil {
		cfg = cargo.DefaultConfig()
	}
	return &Coordinator{
		system:    cargo.NewCargoSystem(time.Now()),
		config:    cfg,
		validator: validation.NewValidator(),
	}
}

// NewWithValidator creates a coordinator with a caller-supplied validator,
// mirroring the constructor-injection pattern used across the core.
func NewWithValidator(cfg *cargo.Config, v validation.Validator) *Coordinator {
	c := New(cfg)
	c.validator = v
	return c
}

// System returns the underlying CargoSystem for read access (e.g. by the
// export package). Callers must not mutate it directly; use the
// Coordinator's own methods.
func (c *Coordinator) System() *cargo.CargoSystem {
	return c.system
}

// AddItem registers a new item.
func (c *Coordinator) AddItem(item *cargo.Item) {
	c.system.AddItem(item)
}

// AddContainer registers a new container.
func (c *Coordinator) AddContainer(container *cargo.Container) {
	c.system.AddContainer(container)
}

// PlaceItem assigns item_id to container_id at position.
func (c *Coordinator) PlaceItem(itemID, containerID string, pos cargo.Position) bool {
	return c.system.PlaceItem(itemID, containerID, pos)
}

// RetrieveItem records a use of item_id by user_id.
func (c *Coordinator) RetrieveItem(itemID, userID string) bool {
	return c.system.RetrieveItem(itemID, userID)
}

// SimulateDay advances the system's logical clock by days.
func (c *Coordinator) SimulateDay(days int) {
	c.system.SimulateDay(days)
}

// GetWasteItems returns every expired or usage-exhausted item.
func (c *Coordinator) GetWasteItems() []*cargo.Item {
	return c.system.GetWasteItems()
}

// GetLogs returns log entries within [start, end].
func (c *Coordinator) GetLogs(start, end time.Time) []cargo.LogEntry {
	return c.system.GetLogs(start, end)
}

// PlanPlacement runs the Guillotine+GA placement engine over containers
// and items using the coordinator's config and seed.
func (c *Coordinator) PlanPlacement(containers []*cargo.Container, items []*cargo.Item) []placement.Result {
	return placement.PlanPlacement(containers, items, c.config, c.config.Seed)
}

// PlanRearrangement runs the GRASP+Tabu rearrangement engine over the
// current system state plus an incoming batch of new items.
func (c *Coordinator) PlanRearrangement(newItems []*cargo.Item) []rearrangement.Assignment {
	return rearrangement.PlanRearrangement(c.system, newItems, c.config, c.config.Seed)
}

// PlanRetrieval runs the A* retrieval planner for item_id.
func (c *Coordinator) PlanRetrieval(itemID string) []cargo.Position {
	return retrieval.PlanRetrieval(itemID, c.system, c.config)
}

// Search runs the BM25 search engine over the current catalog.
func (c *Coordinator) Search(q search.Query) []*cargo.Item {
	return search.Search(q, c.system, c.config)
}

// SelectWaste runs the disposal-priority knapsack selector over items
// under capacity.
func (c *Coordinator) SelectWaste(items []*cargo.Item, capacity waste.Capacity) []*cargo.Item {
	return waste.SelectWaste(items, capacity, c.system.CurrentDate, c.config.Waste.ScaleMax)
}

// Validate checks the current system snapshot against the domain
// invariants.
func (c *Coordinator) Validate(ctx context.Context) (*validation.Report, error) {
	report, err := c.validator.Check(ctx, c.system)
	if err != nil {
		return nil, fmt.Errorf("validating cargo system: %w", err)
	}
	return report, nil
}
