package waste

import (
	"math"
	"sort"
	"time"

	"github.com/dshills/cargostow/pkg/cargo"
)

// Capacity bounds a disposal batch. A zero value for either field means
// zero capacity, not unbounded; use UnboundedCapacity for no limit.
type Capacity struct {
	MaxWeight float64
	MaxVolume float64
}

// UnboundedCapacity returns a capacity that accepts any batch, the
// default when the caller does not specify limits.
func UnboundedCapacity() Capacity {
	return Capacity{MaxWeight: math.Inf(1), MaxVolume: math.Inf(1)}
}

const discretizationScale = 100

// SelectWaste chooses which of items (assumed already waste-eligible) to
// dispose of under capacity, maximizing total disposal priority.
//
// If the whole set already fits, it is returned unchanged. Otherwise each
// item's weight and volume are discretized onto [1, scaleMax] and a
// memoized 0/1 knapsack over (index, remaining weight, remaining volume)
// selects the maximizing subset; the result is verified against the real
// (undiscretized) capacities and, if violated, replaced by a greedy
// descending-priority fill.
func SelectWaste(items []*cargo.Item, capacity Capacity, now time.Time, scaleMax int) []*cargo.Item {
	if len(items) == 0 {
		return nil
	}
	if scaleMax <= 0 {
		scaleMax = discretizationScale
	}

	totalWeight, totalVolume := 0.0, 0.0
	for _, it := range items {
		totalWeight += it.Weight
		totalVolume += it.Volume()
	}
	if totalWeight <= capacity.MaxWeight && totalVolume <= capacity.MaxVolume {
		return items
	}

	priorities := make([]float64, len(items))
	for i, it := range items {
		priorities[i] = DisposalPriority(it, now)
	}

	selected := knapsackSelect(items, priorities, capacity, scaleMax)
	if withinCapacity(selected, capacity) {
		return selected
	}
	return greedySelect(items, priorities, capacity)
}

func discretize(value, max float64, scaleMax int) int {
	if math.IsInf(max, 1) || max <= 0 {
		return scaleMax
	}
	scale := float64(scaleMax) / max
	d := int(math.Floor(value * scale))
	if d < 1 {
		d = 1
	}
	return d
}

// knapsackSelect runs the DP on the discretized axes. The capacity itself
// always maps to scaleMax: each item's weight/volume is discretized
// relative to the real capacity, so the capacity axis and the item axes
// share the same [1, scaleMax] scale.
func knapsackSelect(items []*cargo.Item, priorities []float64, capacity Capacity, scaleMax int) []*cargo.Item {
	n := len(items)
	wCap := scaleMax
	vCap := scaleMax

	dw := make([]int, n)
	dv := make([]int, n)
	for i, it := range items {
		dw[i] = discretize(it.Weight, capacityOrScale(capacity.MaxWeight, scaleMax), scaleMax)
		dv[i] = discretize(it.Volume(), capacityOrScale(capacity.MaxVolume, scaleMax), scaleMax)
	}

	type key struct{ idx, w, v int }
	memo := make(map[key]float64)
	choice := make(map[key]bool)

	var solve func(idx, w, v int) float64
	solve = func(idx, w, v int) float64 {
		if idx == n || w <= 0 || v <= 0 {
			return 0
		}
		k := key{idx, w, v}
		if val, ok := memo[k]; ok {
			return val
		}

		without := solve(idx+1, w, v)
		best := without
		took := false

		if dw[idx] <= w && dv[idx] <= v {
			with := priorities[idx] + solve(idx+1, w-dw[idx], v-dv[idx])
			if with > best {
				best = with
				took = true
			}
		}

		memo[k] = best
		choice[k] = took
		return best
	}

	solve(0, wCap, vCap)

	var selected []*cargo.Item
	w, v := wCap, vCap
	for idx := 0; idx < n; idx++ {
		k := key{idx, w, v}
		if choice[k] {
			selected = append(selected, items[idx])
			w -= dw[idx]
			v -= dv[idx]
		}
	}
	return selected
}

func capacityOrScale(max float64, scaleMax int) float64 {
	if math.IsInf(max, 1) || max <= 0 {
		return float64(scaleMax)
	}
	return max
}

func withinCapacity(selected []*cargo.Item, capacity Capacity) bool {
	var weight, volume float64
	for _, it := range selected {
		weight += it.Weight
		volume += it.Volume()
	}
	return weight <= capacity.MaxWeight && volume <= capacity.MaxVolume
}

// greedySelect sorts by disposal priority descending and adds items while
// both residual capacities remain nonnegative.
func greedySelect(items []*cargo.Item, priorities []float64, capacity Capacity) []*cargo.Item {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return priorities[order[i]] > priorities[order[j]] })

	var selected []*cargo.Item
	remWeight, remVolume := capacity.MaxWeight, capacity.MaxVolume
	for _, idx := range order {
		it := items[idx]
		if it.Weight <= remWeight && it.Volume() <= remVolume {
			selected = append(selected, it)
			remWeight -= it.Weight
			remVolume -= it.Volume()
		}
	}
	return selected
}
