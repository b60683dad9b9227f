package rearrangement

import "github.com/dshills/cargostow/pkg/cargo"

// Assignment is one item's proposed placement within a rearrangement
// solution.
type Assignment struct {
	ItemID      string
	ContainerID string
	Position    cargo.Position
}

const moveCost = 10.0

// solutionCost is 10*moves plus, per item, a zone-match reward or a
// zone-mismatch penalty, where moves is the number of assignments in the
// solution; every item in the proposed configuration counts as a move.
func solutionCost(sol []Assignment, byID map[string]*cargo.Item, containers map[string]*cargo.Container) float64 {
	cost := float64(len(sol)) * moveCost

	for _, a := range sol {
		item, ok := byID[a.ItemID]
		if !ok {
			continue
		}
		container, ok := containers[a.ContainerID]
		if !ok {
			continue
		}
		cost += zonePenalty(item, container)
	}
	return cost
}

func zonePenalty(item *cargo.Item, container *cargo.Container) float64 {
	if item.PreferredZone == container.Zone {
		return -float64(item.Priority) * 5
	}
	return float64(5-item.Priority) * 3
}

// fits reports whether item's box could geometrically fit within
// container's dimensions, ignoring current occupancy; the same
// size-only test the GRASP construction uses to build its RCL.
func fits(item *cargo.Item, container *cargo.Container) bool {
	return item.Dimensions.Width <= container.Dimensions.Width &&
		item.Dimensions.Height <= container.Dimensions.Height &&
		item.Dimensions.Depth <= container.Dimensions.Depth
}

// positionFits reports whether item, placed at pos, stays within
// container's bounds on every axis. Used to check whether an assignment's
// existing position carries over when the item is reassigned to a
// different container.
func positionFits(item *cargo.Item, container *cargo.Container, pos cargo.Position) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.Z >= 0 &&
		pos.X+item.Dimensions.Width <= container.Dimensions.Width &&
		pos.Y+item.Dimensions.Height <= container.Dimensions.Height &&
		pos.Z+item.Dimensions.Depth <= container.Dimensions.Depth
}
