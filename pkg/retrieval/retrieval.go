package retrieval

import (
	"github.com/dshills/cargostow/pkg/cargo"
	"github.com/dshills/cargostow/pkg/rtree"
)

// PlanRetrieval finds a route from a container's door (the origin) to the
// target item's corner, navigating around the cells occupied by sibling
// items. Returns the path inclusive of both endpoints, or nil if the item
// is unknown, unplaced, or unreachable.
func PlanRetrieval(itemID string, sys *cargo.CargoSystem, cfg *cargo.Config) []cargo.Position {
	item, ok := sys.Items[itemID]
	if !ok || !item.Placed() {
		return nil
	}
	container, ok := sys.Containers[item.ContainerID]
	if !ok {
		return nil
	}

	width := int(container.Dimensions.Width)
	height := int(container.Dimensions.Height)
	depth := int(container.Dimensions.Depth)

	index := rtree.New(cfg.RTree.MaxEntries)
	for _, other := range container.Items {
		if other.ID == itemID || other.Position == nil {
			continue
		}
		index.Insert(other.ID, cargo.NewAABB(*other.Position, other.Dimensions))
	}

	bounds := cargo.AABB{MinX: 0, MinY: 0, MinZ: 0, MaxX: float64(width), MaxY: float64(height), MaxZ: float64(depth)}
	inRange := index.Query(bounds)
	inRangeSet := make(map[string]bool, len(inRange))
	for _, id := range inRange {
		inRangeSet[id] = true
	}

	obstacles := make(map[cell]bool)
	for _, other := range container.Items {
		if other.ID == itemID || other.Position == nil || !inRangeSet[other.ID] {
			continue
		}
		obstacles[floorPosition(*other.Position)] = true
	}

	start := cell{0, 0, 0}
	goal := floorPosition(*item.Position)

	path := findPath(start, goal, width, height, depth, obstacles)
	if path == nil {
		return nil
	}

	out := make([]cargo.Position, len(path))
	for i, c := range path {
		out[i] = cellToPosition(c)
	}
	return out
}
