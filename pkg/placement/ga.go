package placement

import (
	"sort"

	"github.com/dshills/cargostow/pkg/cargo"
	"github.com/dshills/cargostow/pkg/packing"
	"github.com/dshills/cargostow/pkg/rng"
)

// Result is one item's planned placement: which container (by id) and
// which corner.
type Result struct {
	Item        *cargo.Item
	ContainerID string
	Position    cargo.Position
}

const mutationRate = 0.1

// PlanPlacement runs the hybrid Guillotine+GA placement engine. Items are
// sorted by priority descending before optimization. It returns nil when
// there are no items or no containers; otherwise the returned slice has
// one Result per item but is not guaranteed to be a feasible packing;
// callers must validate before applying it.
func PlanPlacement(containers []*cargo.Container, items []*cargo.Item, cfg *cargo.Config, seed uint64) []Result {
	if len(items) == 0 || len(containers) == 0 {
		return nil
	}

	sorted := make([]*cargo.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})

	r := rng.NewRNG(seed, "placement", cfg.Hash())

	population := seedPopulation(sorted, containers, cfg.Placement.Population, r)
	best := evolve(population, containers, sorted, cfg.Placement.Generations, r)

	out := make([]Result, len(sorted))
	for i, item := range sorted {
		g := best[i]
		containerID := ""
		if g.containerIdx >= 0 && g.containerIdx < len(containers) {
			containerID = containers[g.containerIdx].ID
		}
		out[i] = Result{Item: item, ContainerID: containerID, Position: g.pos}
	}
	return out
}

// seedPopulation fills half the population with guillotine-packed
// solutions (one fresh set of bins per individual, filled in a shuffled
// item order so each bin carries the occupancy of earlier inserts) and
// half with uniform-random corners.
func seedPopulation(items []*cargo.Item, containers []*cargo.Container, size int, r *rng.RNG) []solution {
	population := make([]solution, 0, size)

	guillotineCount := size / 2
	for i := 0; i < guillotineCount; i++ {
		population = append(population, seedGuillotine(items, containers, r))
	}
	for len(population) < size {
		population = append(population, seedRandom(items, containers, r))
	}
	return population
}

func seedGuillotine(items []*cargo.Item, containers []*cargo.Container, r *rng.RNG) solution {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	sol := make(solution, len(items))
	bins := make([]*packing.Bin, len(containers))
	for i, c := range containers {
		bins[i] = packing.NewBin(c.Dimensions)
	}

	for _, idx := range order {
		item := items[idx]
		placed := false
		for ci, bin := range bins {
			pos, ok := bin.Insert(item.Dimensions.Width, item.Dimensions.Height, item.Dimensions.Depth)
			if ok {
				sol[idx] = gene{containerIdx: ci, pos: pos}
				placed = true
				break
			}
		}
		if !placed {
			sol[idx] = randomCorner(0, containers[0], r)
		}
	}
	return sol
}

func seedRandom(items []*cargo.Item, containers []*cargo.Container, r *rng.RNG) solution {
	sol := make(solution, len(items))
	for i := range items {
		ci := r.Intn(len(containers))
		sol[i] = randomCorner(ci, containers[ci], r)
	}
	return sol
}

// randomCorner picks x, y, z uniformly in [0, dim-5], the same rule the
// mutation operator and random seeding both use; dimensions under 5 clamp
// to [0, 0].
func randomCorner(containerIdx int, c *cargo.Container, r *rng.RNG) gene {
	return gene{
		containerIdx: containerIdx,
		pos: cargo.Position{
			X: randomCoord(c.Dimensions.Width, r),
			Y: randomCoord(c.Dimensions.Height, r),
			Z: randomCoord(c.Dimensions.Depth, r),
		},
	}
}

func randomCoord(extent float64, r *rng.RNG) float64 {
	max := int(extent) - 5
	if max <= 0 {
		return 0
	}
	return float64(r.Intn(max + 1))
}

// evolve runs the generational loop: 1-elitism, tournament-3 selection,
// one-point crossover, per-gene mutation at mutationRate.
func evolve(population []solution, containers []*cargo.Container, items []*cargo.Item, generations int, r *rng.RNG) solution {
	for gen := 0; gen < generations; gen++ {
		scores := make([]float64, len(population))
		bestIdx := 0
		for i, sol := range population {
			scores[i] = fitness(sol, containers, items)
			if scores[i] > scores[bestIdx] {
				bestIdx = i
			}
		}

		next := make([]solution, 0, len(population))
		next = append(next, population[bestIdx])

		for len(next) < len(population) {
			p1 := tournamentSelect(population, scores, r)
			p2 := tournamentSelect(population, scores, r)
			child := crossover(p1, p2, r)
			mutate(child, containers, r)
			next = append(next, child)
		}
		population = next
	}

	bestIdx := 0
	bestScore := fitness(population[0], containers, items)
	for i := 1; i < len(population); i++ {
		s := fitness(population[i], containers, items)
		if s > bestScore {
			bestScore = s
			bestIdx = i
		}
	}
	return population[bestIdx]
}

func tournamentSelect(population []solution, scores []float64, r *rng.RNG) solution {
	bestIdx := r.Intn(len(population))
	for i := 0; i < 2; i++ {
		idx := r.Intn(len(population))
		if scores[idx] > scores[bestIdx] {
			bestIdx = idx
		}
	}
	return population[bestIdx]
}

func crossover(p1, p2 solution, r *rng.RNG) solution {
	if len(p1) <= 1 {
		child := make(solution, len(p1))
		copy(child, p1)
		return child
	}
	cut := 1 + r.Intn(len(p1)-1)
	child := make(solution, len(p1))
	copy(child[:cut], p1[:cut])
	copy(child[cut:], p2[cut:])
	return child
}

func mutate(sol solution, containers []*cargo.Container, r *rng.RNG) {
	for i := range sol {
		if r.Float64() < mutationRate {
			ci := r.Intn(len(containers))
			sol[i] = randomCorner(ci, containers[ci], r)
		}
	}
}
