package rearrangement

import (
	"testing"
	"time"

	"github.com/dshills/cargostow/pkg/cargo"
	"github.com/dshills/cargostow/pkg/rng"
)

func testConfig() *cargo.Config {
	cfg := cargo.DefaultConfig()
	cfg.Rearrangement.MaxIterations = 40
	cfg.Rearrangement.TabuTenure = 5
	return cfg
}

func newTestSystem() *cargo.CargoSystem {
	sys := cargo.NewCargoSystem(time.Now())
	sys.AddContainer(cargo.NewContainer("zoneA", "A", cargo.Dimensions{Width: 20, Height: 20, Depth: 20}, cargo.Position{}))
	sys.AddContainer(cargo.NewContainer("zoneB", "B", cargo.Dimensions{Width: 20, Height: 20, Depth: 20}, cargo.Position{}))
	return sys
}

func TestPlanRearrangement_EmptyInputs(t *testing.T) {
	sys := cargo.NewCargoSystem(time.Now())
	sys.AddContainer(cargo.NewContainer("zoneA", "A", cargo.Dimensions{Width: 10, Height: 10, Depth: 10}, cargo.Position{}))
	cfg := testConfig()

	if got := PlanRearrangement(sys, nil, cfg, 1); got != nil {
		t.Errorf("no items should produce no assignments, got %v", got)
	}
}

func TestPlanRearrangement_NoContainers(t *testing.T) {
	sys := cargo.NewCargoSystem(time.Now())
	item := cargo.NewItem("i1", "Wrench", cargo.Dimensions{Width: 2, Height: 2, Depth: 2}, 3, time.Now().AddDate(1, 0, 0), 5, "A", 1.0)
	cfg := testConfig()

	if got := PlanRearrangement(sys, []*cargo.Item{item}, cfg, 1); got != nil {
		t.Errorf("no containers should produce no assignments, got %v", got)
	}
}

func TestPlanRearrangement_Deterministic(t *testing.T) {
	sys := newTestSystem()
	items := []*cargo.Item{
		cargo.NewItem("i1", "Water", cargo.Dimensions{Width: 2, Height: 2, Depth: 2}, 3, time.Now().AddDate(1, 0, 0), 5, "A", 1.0),
		cargo.NewItem("i2", "Filter", cargo.Dimensions{Width: 3, Height: 3, Depth: 3}, 4, time.Now().AddDate(1, 0, 0), 5, "B", 1.0),
	}
	cfg := testConfig()

	r1 := PlanRearrangement(sys, items, cfg, 7)
	r2 := PlanRearrangement(sys, items, cfg, 7)

	if len(r1) != len(r2) {
		t.Fatalf("result length mismatch: %d vs %d", len(r1), len(r2))
	}
	for i := range r1 {
		if r1[i] != r2[i] {
			t.Errorf("same seed produced different assignment at index %d: %+v vs %+v", i, r1[i], r2[i])
		}
	}
}

func TestPlanRearrangement_CoversAllItems(t *testing.T) {
	sys := newTestSystem()
	items := []*cargo.Item{
		cargo.NewItem("i1", "Water", cargo.Dimensions{Width: 2, Height: 2, Depth: 2}, 3, time.Now().AddDate(1, 0, 0), 5, "A", 1.0),
		cargo.NewItem("i2", "Filter", cargo.Dimensions{Width: 3, Height: 3, Depth: 3}, 4, time.Now().AddDate(1, 0, 0), 5, "B", 1.0),
		cargo.NewItem("i3", "Battery", cargo.Dimensions{Width: 1, Height: 1, Depth: 1}, 2, time.Now().AddDate(1, 0, 0), 5, "A", 1.0),
	}
	cfg := testConfig()

	got := PlanRearrangement(sys, items, cfg, 3)
	if len(got) != len(items) {
		t.Fatalf("expected one assignment per item, got %d for %d items", len(got), len(items))
	}
}

// TestTabuSearch_ImprovesOrMatchesConstruction implements the rearrangement
// dominance scenario: tabu search must never hand back a solution worse
// than the GRASP construction it started from.
func TestTabuSearch_ImprovesOrMatchesConstruction(t *testing.T) {
	sys := newTestSystem()
	containers := []*cargo.Container{sys.Containers["zoneA"], sys.Containers["zoneB"]}
	containerIndex := sys.Containers

	items := []*cargo.Item{
		cargo.NewItem("i1", "Water", cargo.Dimensions{Width: 2, Height: 2, Depth: 2}, 3, time.Now().AddDate(1, 0, 0), 5, "B", 1.0),
		cargo.NewItem("i2", "Filter", cargo.Dimensions{Width: 3, Height: 3, Depth: 3}, 4, time.Now().AddDate(1, 0, 0), 5, "A", 1.0),
		cargo.NewItem("i3", "Battery", cargo.Dimensions{Width: 1, Height: 1, Depth: 1}, 2, time.Now().AddDate(1, 0, 0), 5, "B", 1.0),
	}
	byID := map[string]*cargo.Item{"i1": items[0], "i2": items[1], "i3": items[2]}

	cfg := testConfig()

	for seed := uint64(0); seed < 5; seed++ {
		r := rng.NewRNG(seed, "rearrangement", cfg.Hash())
		initial := construct(items, containers, cfg.Rearrangement.Alpha, r)
		if len(initial) == 0 {
			t.Fatalf("seed %d: construction produced no assignments", seed)
		}
		initialCost := solutionCost(initial, byID, containerIndex)

		improved := tabuSearch(initial, byID, containerIndex, containers, cfg.Rearrangement.MaxIterations, cfg.Rearrangement.TabuTenure, r)
		improvedCost := solutionCost(improved, byID, containerIndex)

		if improvedCost > initialCost {
			t.Errorf("seed %d: tabu search made the solution worse: %v > %v", seed, improvedCost, initialCost)
		}
	}
}
