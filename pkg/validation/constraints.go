package validation

import (
	"fmt"
	"sort"

	"github.com/dshills/cargostow/pkg/cargo"
)

// CheckUsageBounds verifies 0 <= usage_count <= usage_limit for every
// item. usage_count monotonicity itself is structurally guaranteed by
// Item.Use(), which only ever increments; this checks the bound that
// guarantee is supposed to preserve.
func CheckUsageBounds(sys *cargo.CargoSystem) ConstraintResult {
	for _, item := range sys.Items {
		if item.UsageCount < 0 || item.UsageCount > item.UsageLimit {
			return ConstraintResult{
				Name:      "usage_bounds",
				Satisfied: false,
				Details:   fmt.Sprintf("item %s has usage_count=%d outside [0, %d]", item.ID, item.UsageCount, item.UsageLimit),
			}
		}
	}
	return ConstraintResult{Name: "usage_bounds", Satisfied: true}
}

// CheckPlacementCoPresence verifies that a placed item always carries both
// a container id and a position.
func CheckPlacementCoPresence(sys *cargo.CargoSystem) ConstraintResult {
	for _, item := range sys.Items {
		hasContainer := item.ContainerID != ""
		hasPosition := item.Position != nil
		if item.Placed() != hasContainer || item.Placed() != hasPosition {
			return ConstraintResult{
				Name:      "placement_co_presence",
				Satisfied: false,
				Details:   fmt.Sprintf("item %s has inconsistent placement state", item.ID),
			}
		}
	}
	return ConstraintResult{Name: "placement_co_presence", Satisfied: true}
}

// CheckAABBContainment verifies every placed item's bounding box lies
// entirely within its container's dimensions.
func CheckAABBContainment(sys *cargo.CargoSystem) ConstraintResult {
	for _, item := range sys.Items {
		if !item.Placed() {
			continue
		}
		container, ok := sys.Containers[item.ContainerID]
		if !ok {
			return ConstraintResult{
				Name:      "aabb_containment",
				Satisfied: false,
				Details:   fmt.Sprintf("item %s references unknown container %s", item.ID, item.ContainerID),
			}
		}
		box := cargo.NewAABB(*item.Position, item.Dimensions)
		if !box.Within(container.Dimensions) {
			return ConstraintResult{
				Name:      "aabb_containment",
				Satisfied: false,
				Details:   fmt.Sprintf("item %s's box exceeds container %s's bounds", item.ID, container.ID),
			}
		}
	}
	return ConstraintResult{Name: "aabb_containment", Satisfied: true}
}

// CheckPairwiseNonOverlap verifies no two items sharing a container have
// strictly overlapping bounding boxes.
func CheckPairwiseNonOverlap(sys *cargo.CargoSystem) ConstraintResult {
	for _, container := range sys.Containers {
		for i := 0; i < len(container.Items); i++ {
			for j := i + 1; j < len(container.Items); j++ {
				a, b := container.Items[i], container.Items[j]
				if a.Position == nil || b.Position == nil {
					continue
				}
				boxA := cargo.NewAABB(*a.Position, a.Dimensions)
				boxB := cargo.NewAABB(*b.Position, b.Dimensions)
				if boxA.StrictlyOverlaps(boxB) {
					return ConstraintResult{
						Name:      "pairwise_non_overlap",
						Satisfied: false,
						Details:   fmt.Sprintf("items %s and %s overlap in container %s", a.ID, b.ID, container.ID),
					}
				}
			}
		}
	}
	return ConstraintResult{Name: "pairwise_non_overlap", Satisfied: true}
}

// CheckLogOrdering verifies the log is non-decreasing in timestamp.
func CheckLogOrdering(sys *cargo.CargoSystem) ConstraintResult {
	if !sort.SliceIsSorted(sys.Logs, func(i, j int) bool {
		return sys.Logs[i].Timestamp.Before(sys.Logs[j].Timestamp)
	}) {
		return ConstraintResult{
			Name:      "log_ordering",
			Satisfied: false,
			Details:   "log entries are not in non-decreasing timestamp order",
		}
	}
	return ConstraintResult{Name: "log_ordering", Satisfied: true}
}

// CheckRetrievalPathShape verifies an A* path (if nonempty) starts at the
// container door, ends at goal, and only takes unit 6-axis steps.
func CheckRetrievalPathShape(path []cargo.Position, goal cargo.Position) ConstraintResult {
	if len(path) == 0 {
		return ConstraintResult{Name: "retrieval_path_shape", Satisfied: true, Details: "empty path (unreachable)"}
	}
	if path[0] != (cargo.Position{}) {
		return ConstraintResult{Name: "retrieval_path_shape", Satisfied: false, Details: "path does not start at the door"}
	}
	last := path[len(path)-1]
	if int(last.X) != int(goal.X) || int(last.Y) != int(goal.Y) || int(last.Z) != int(goal.Z) {
		return ConstraintResult{Name: "retrieval_path_shape", Satisfied: false, Details: "path does not end at the goal"}
	}
	for i := 1; i < len(path); i++ {
		dx := absFloat(path[i].X - path[i-1].X)
		dy := absFloat(path[i].Y - path[i-1].Y)
		dz := absFloat(path[i].Z - path[i-1].Z)
		if dx+dy+dz != 1 {
			return ConstraintResult{
				Name:      "retrieval_path_shape",
				Satisfied: false,
				Details:   fmt.Sprintf("step %d is not a unit 6-axis move", i),
			}
		}
	}
	return ConstraintResult{Name: "retrieval_path_shape", Satisfied: true}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// CheckKnapsackFeasibility verifies a waste selection respects both real
// capacities.
func CheckKnapsackFeasibility(selected []*cargo.Item, maxWeight, maxVolume float64) ConstraintResult {
	var weight, volume float64
	for _, it := range selected {
		weight += it.Weight
		volume += it.Volume()
	}
	if weight > maxWeight || volume > maxVolume {
		return ConstraintResult{
			Name:      "knapsack_feasibility",
			Satisfied: false,
			Details:   fmt.Sprintf("selection uses weight=%v volume=%v against capacity weight=%v volume=%v", weight, volume, maxWeight, maxVolume),
		}
	}
	return ConstraintResult{Name: "knapsack_feasibility", Satisfied: true}
}
