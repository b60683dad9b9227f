package placement

import (
	"math"

	"github.com/dshills/cargostow/pkg/cargo"
)

// gene is one item's placement within a candidate solution: which
// container (by index into the caller's container slice) and which
// corner.
type gene struct {
	containerIdx int
	pos          cargo.Position
}

// solution is a full candidate placement, one gene per item, in the same
// order as the (priority-sorted) item slice the engine was given.
type solution []gene

const (
	fitPenalty     = -1000.0
	overlapPenalty = -2000.0

	weightSpace    = 100.0
	weightPriority = 50.0
	weightExpiry   = 20.0
	weightAccess   = 30.0
)

// fitness scores a candidate solution: out-of-bounds placements score
// fitPenalty, any strict pairwise overlap within a container scores
// overlapPenalty, otherwise the weighted sum of space utilization,
// preferred-zone priority, expiry-date grouping, and door-access scores.
func fitness(sol solution, containers []*cargo.Container, items []*cargo.Item) float64 {
	var spaceUtil, priorityScore, expiryScore, accessScore float64

	for i, g := range sol {
		if g.containerIdx < 0 || g.containerIdx >= len(containers) {
			return fitPenalty
		}

		item := items[i]
		container := containers[g.containerIdx]
		box := cargo.NewAABB(g.pos, item.Dimensions)

		if !box.Within(container.Dimensions) {
			return fitPenalty
		}

		if item.PreferredZone == container.Zone {
			priorityScore += float64(item.Priority) * 10
		}

		dist := g.pos.X + g.pos.Y + g.pos.Z
		accessScore += float64(item.Priority) / (1 + math.Sqrt(dist))

		for j, other := range sol {
			if i == j || other.containerIdx != g.containerIdx {
				continue
			}
			otherItem := items[j]
			otherBox := cargo.NewAABB(other.pos, otherItem.Dimensions)

			if box.StrictlyOverlaps(otherBox) {
				return overlapPenalty
			}

			daysDiff := math.Abs(item.ExpiryDate.Sub(otherItem.ExpiryDate).Hours() / 24)
			if daysDiff < 30 {
				expiryScore += 5
			}
		}

		spaceUtil += item.Volume() / container.Dimensions.Volume()
	}

	return spaceUtil*weightSpace + priorityScore*weightPriority + expiryScore*weightExpiry + accessScore*weightAccess
}
