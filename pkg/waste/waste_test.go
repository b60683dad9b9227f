package waste

import (
	"testing"
	"time"

	"github.com/dshills/cargostow/pkg/cargo"
)

func wasteItem(id string, weight float64) *cargo.Item {
	return cargo.NewItem(id, id, cargo.Dimensions{Width: 1, Height: 1, Depth: 1}, 3, time.Now().AddDate(-1, 0, 0), 5, "", weight)
}

// TestKnapsackSelect_DominanceScenario: three
// items weighing 4, 6, 8 kg (volume 1 each) with disposal priorities 30,
// 40, 50 and capacity (weight=10, volume=10); the 4+6 combination
// (priority sum 70) must win over the lone 8 (priority 50).
func TestKnapsackSelect_DominanceScenario(t *testing.T) {
	items := []*cargo.Item{
		wasteItem("light", 4),
		wasteItem("medium", 6),
		wasteItem("heavy", 8),
	}
	priorities := []float64{30, 40, 50}
	capacity := Capacity{MaxWeight: 10, MaxVolume: 10}

	selected := knapsackSelect(items, priorities, capacity, 100)

	var gotWeight float64
	ids := make(map[string]bool, len(selected))
	for _, it := range selected {
		gotWeight += it.Weight
		ids[it.ID] = true
	}

	if !ids["light"] || !ids["medium"] || ids["heavy"] {
		t.Errorf("expected {light, medium}, got %v", ids)
	}
	if gotWeight > capacity.MaxWeight {
		t.Errorf("selection exceeds weight capacity: %v > %v", gotWeight, capacity.MaxWeight)
	}
}

func TestSelectWaste_ReturnsAllWhenWithinCapacity(t *testing.T) {
	items := []*cargo.Item{wasteItem("a", 1), wasteItem("b", 1)}
	got := SelectWaste(items, UnboundedCapacity(), time.Now(), 100)
	if len(got) != 2 {
		t.Errorf("expected both items returned unchanged, got %v", got)
	}
}

func TestSelectWaste_RespectsCapacityAfterFallback(t *testing.T) {
	items := []*cargo.Item{
		wasteItem("a", 5),
		wasteItem("b", 5),
		wasteItem("c", 5),
	}
	capacity := Capacity{MaxWeight: 8, MaxVolume: 100}

	got := SelectWaste(items, capacity, time.Now(), 100)

	var totalWeight float64
	for _, it := range got {
		totalWeight += it.Weight
	}
	if totalWeight > capacity.MaxWeight {
		t.Errorf("selection violates weight capacity: %v > %v", totalWeight, capacity.MaxWeight)
	}
}

func TestSelectWaste_EmptyInput(t *testing.T) {
	if got := SelectWaste(nil, UnboundedCapacity(), time.Now(), 100); got != nil {
		t.Errorf("empty input should yield nil selection, got %v", got)
	}
}

func TestDisposalPriority_FavorsLowerPriorityAndOverdueItems(t *testing.T) {
	now := time.Now()
	urgent := cargo.NewItem("urgent", "urgent", cargo.Dimensions{Width: 1, Height: 1, Depth: 1}, 1, now.AddDate(0, 0, -10), 5, "", 1)
	calm := cargo.NewItem("calm", "calm", cargo.Dimensions{Width: 1, Height: 1, Depth: 1}, 5, now.AddDate(1, 0, 0), 5, "", 1)

	if DisposalPriority(urgent, now) <= DisposalPriority(calm, now) {
		t.Errorf("an overdue, low-priority item should score higher than a fresh, high-priority one")
	}
}
