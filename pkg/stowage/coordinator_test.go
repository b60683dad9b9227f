package stowage

import (
	"context"
	"testing"
	"time"

	"github.com/dshills/cargostow/pkg/cargo"
	"github.com/dshills/cargostow/pkg/search"
	"github.com/dshills/cargostow/pkg/waste"
)

func TestCoordinator_EndToEnd(t *testing.T) {
	cfg := cargo.DefaultConfig()
	cfg.Placement.Population = 10
	cfg.Placement.Generations = 10

	coord := New(cfg)

	container := cargo.NewContainer("c1", "A", cargo.Dimensions{Width: 20, Height: 20, Depth: 20}, cargo.Position{})
	coord.AddContainer(container)

	item := cargo.NewItem("i1", "Water Filter", cargo.Dimensions{Width: 2, Height: 2, Depth: 2}, 5, time.Now().AddDate(1, 0, 0), 3, "A", 1.0)
	coord.AddItem(item)

	results := coord.PlanPlacement([]*cargo.Container{container}, []*cargo.Item{item})
	if len(results) != 1 {
		t.Fatalf("expected one placement result, got %d", len(results))
	}

	if !coord.PlaceItem("i1", results[0].ContainerID, results[0].Position) {
		t.Fatal("expected placement to succeed")
	}

	report, err := coord.Validate(context.Background())
	if err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if !report.Passed {
		t.Errorf("expected a freshly placed item to validate cleanly, got: %v", report.Errors)
	}

	for i := 0; i < 3; i++ {
		coord.RetrieveItem("i1", "astronaut-1")
	}
	if coord.RetrieveItem("i1", "astronaut-1") {
		t.Error("expected retrieval to fail once usage limit is exhausted")
	}

	wasteItems := coord.GetWasteItems()
	found := false
	for _, w := range wasteItems {
		if w.ID == "i1" {
			found = true
		}
	}
	if !found {
		t.Error("expected the exhausted item to appear as waste")
	}

	got := coord.Search(search.Query{Text: "water"})
	if len(got) != 1 || got[0].ID != "i1" {
		t.Errorf("expected the water filter to match the search, got %v", got)
	}

	path := coord.PlanRetrieval("i1")
	if len(path) == 0 {
		t.Error("expected a nonempty retrieval path for a reachable item")
	}

	logs := coord.GetLogs(time.Time{}, time.Time{})
	if len(logs) == 0 {
		t.Error("expected logs to have accumulated across the session")
	}
}

func TestCoordinator_SelectWaste(t *testing.T) {
	coord := New(cargo.DefaultConfig())
	item := cargo.NewItem("i1", "Expired Ration", cargo.Dimensions{Width: 1, Height: 1, Depth: 1}, 1, time.Now().AddDate(-1, 0, 0), 5, "", 4)
	coord.AddItem(item)

	selected := coord.SelectWaste([]*cargo.Item{item}, waste.UnboundedCapacity())
	if len(selected) != 1 {
		t.Errorf("expected the single item selected under unbounded capacity, got %v", selected)
	}
}
