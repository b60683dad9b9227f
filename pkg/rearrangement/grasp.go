package rearrangement

import (
	"sort"

	"github.com/dshills/cargostow/pkg/cargo"
	"github.com/dshills/cargostow/pkg/rng"
)

type rclEntry struct {
	container *cargo.Container
	cost      float64
}

// construct runs one GRASP pass: items sorted by priority descending,
// containers sorted by available volume descending, each item assigned
// by sampling uniformly from the top alpha-fraction of its Restricted
// Candidate List (ties broken by the sample draw itself), position
// uniform-random within the valid corner box.
func construct(items []*cargo.Item, containers []*cargo.Container, alpha float64, r *rng.RNG) []Assignment {
	sortedItems := make([]*cargo.Item, len(items))
	copy(sortedItems, items)
	sort.SliceStable(sortedItems, func(i, j int) bool {
		return sortedItems[i].Priority > sortedItems[j].Priority
	})

	sortedContainers := make([]*cargo.Container, len(containers))
	copy(sortedContainers, containers)
	sort.SliceStable(sortedContainers, func(i, j int) bool {
		return sortedContainers[i].AvailableVolume() > sortedContainers[j].AvailableVolume()
	})

	var solution []Assignment
	for _, item := range sortedItems {
		var rcl []rclEntry
		for _, container := range sortedContainers {
			if !fits(item, container) {
				continue
			}
			cost := zonePenalty(item, container)
			volumeRatio := item.Volume() / container.Dimensions.Volume()
			cost += (1 - volumeRatio) * 10
			rcl = append(rcl, rclEntry{container: container, cost: cost})
		}
		if len(rcl) == 0 {
			continue
		}

		sort.SliceStable(rcl, func(i, j int) bool { return rcl[i].cost < rcl[j].cost })

		cutoff := int(float64(len(rcl)) * alpha)
		if cutoff < 1 {
			cutoff = 1
		}
		chosen := rcl[r.Intn(cutoff)].container

		pos := randomCorner(item, chosen, r)
		solution = append(solution, Assignment{ItemID: item.ID, ContainerID: chosen.ID, Position: pos})
	}
	return solution
}

func randomCorner(item *cargo.Item, c *cargo.Container, r *rng.RNG) cargo.Position {
	return cargo.Position{
		X: randomAxis(c.Dimensions.Width, item.Dimensions.Width, r),
		Y: randomAxis(c.Dimensions.Height, item.Dimensions.Height, r),
		Z: randomAxis(c.Dimensions.Depth, item.Dimensions.Depth, r),
	}
}

func randomAxis(containerExtent, itemExtent float64, r *rng.RNG) float64 {
	slack := int(containerExtent - itemExtent)
	if slack <= 0 {
		return 0
	}
	return float64(r.Intn(slack + 1))
}
