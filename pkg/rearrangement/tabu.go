package rearrangement

import (
	"fmt"

	"github.com/dshills/cargostow/pkg/cargo"
	"github.com/dshills/cargostow/pkg/rng"
)

// tabuKey identifies a move so it can be recorded in the recency list.
// Reassigning an item to a new container/position counts as the same
// move regardless of which operator produced it.
func tabuKey(itemID, containerID string, pos cargo.Position) string {
	return fmt.Sprintf("%s|%s|%.2f,%.2f,%.2f", itemID, containerID, pos.X, pos.Y, pos.Z)
}

// tabuSearch improves a GRASP-constructed solution by repeatedly moving to
// the best admissible neighbor: reassign-container, move-to-random-corner,
// or swap-two-assignments. A move that revisits a tabu key is skipped
// unless it beats the best solution found so far (aspiration). The
// recency list is capped at tenure entries, oldest evicted first. Search
// stops early once a full neighborhood pass finds no admissible move.
func tabuSearch(initial []Assignment, byID map[string]*cargo.Item, containers map[string]*cargo.Container, containerList []*cargo.Container, maxIterations, tenure int, r *rng.RNG) []Assignment {
	current := cloneSolution(initial)
	currentCost := solutionCost(current, byID, containers)

	best := cloneSolution(current)
	bestCost := currentCost

	tabuList := make([]string, 0, tenure)
	tabuSet := make(map[string]bool, tenure)

	pushTabu := func(key string) {
		tabuList = append(tabuList, key)
		tabuSet[key] = true
		if len(tabuList) > tenure {
			evicted := tabuList[0]
			tabuList = tabuList[1:]
			delete(tabuSet, evicted)
		}
	}

	for iter := 0; iter < maxIterations; iter++ {
		neighbors := generateNeighbors(current, byID, containerList, r)
		if len(neighbors) == 0 {
			break
		}

		foundMove := false
		var candidate []Assignment
		var candidateCost float64
		var candidateKey string

		for _, n := range neighbors {
			cost := solutionCost(n.solution, byID, containers)
			tabooed := tabuSet[n.key]
			if tabooed && cost >= bestCost {
				continue
			}
			if !foundMove || cost < candidateCost {
				foundMove = true
				candidate = n.solution
				candidateCost = cost
				candidateKey = n.key
			}
		}

		if !foundMove {
			break
		}

		current = candidate
		currentCost = candidateCost
		pushTabu(candidateKey)

		if currentCost < bestCost {
			best = cloneSolution(current)
			bestCost = currentCost
		}
	}

	return best
}

type neighbor struct {
	solution []Assignment
	key      string
}

// generateNeighbors builds the three neighbor families: reassign one
// item's container, move one item to a fresh random corner within its
// current container, and swap the container/position of two items.
func generateNeighbors(sol []Assignment, byID map[string]*cargo.Item, containers []*cargo.Container, r *rng.RNG) []neighbor {
	if len(sol) == 0 || len(containers) == 0 {
		return nil
	}

	var neighbors []neighbor

	for i, a := range sol {
		item := byID[a.ItemID]
		if item == nil {
			continue
		}
		for attempt := 0; attempt < 3; attempt++ {
			c := containers[r.Intn(len(containers))]
			if !fits(item, c) {
				continue
			}
			pos := a.Position
			if !positionFits(item, c, pos) {
				pos = randomCorner(item, c, r)
			}
			next := cloneSolution(sol)
			next[i] = Assignment{ItemID: a.ItemID, ContainerID: c.ID, Position: pos}
			neighbors = append(neighbors, neighbor{solution: next, key: tabuKey(a.ItemID, c.ID, next[i].Position)})
		}
	}

	for i, a := range sol {
		item := byID[a.ItemID]
		if item == nil {
			continue
		}
		var home *cargo.Container
		for _, c := range containers {
			if c.ID == a.ContainerID {
				home = c
				break
			}
		}
		if home == nil {
			continue
		}
		for attempt := 0; attempt < 3; attempt++ {
			next := cloneSolution(sol)
			pos := randomCorner(item, home, r)
			next[i] = Assignment{ItemID: a.ItemID, ContainerID: a.ContainerID, Position: pos}
			neighbors = append(neighbors, neighbor{solution: next, key: tabuKey(a.ItemID, a.ContainerID, pos)})
		}
	}

	if len(sol) >= 2 {
		for attempt := 0; attempt < 3; attempt++ {
			i := r.Intn(len(sol))
			j := r.Intn(len(sol))
			if i == j {
				continue
			}
			next := cloneSolution(sol)
			next[i].ContainerID, next[j].ContainerID = next[j].ContainerID, next[i].ContainerID
			next[i].Position, next[j].Position = next[j].Position, next[i].Position
			key := tabuKey(next[i].ItemID, next[i].ContainerID, next[i].Position) + "+" + tabuKey(next[j].ItemID, next[j].ContainerID, next[j].Position)
			neighbors = append(neighbors, neighbor{solution: next, key: key})
		}
	}

	return neighbors
}

func cloneSolution(sol []Assignment) []Assignment {
	out := make([]Assignment, len(sol))
	copy(out, sol)
	return out
}
