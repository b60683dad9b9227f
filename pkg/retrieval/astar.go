package retrieval

import (
	"container/heap"

	"github.com/dshills/cargostow/pkg/cargo"
)

// cell is an integer grid coordinate inside a container.
type cell struct {
	x, y, z int
}

var moves = [6]cell{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

func manhattan(a, b cell) int {
	return absInt(a.x-b.x) + absInt(a.y-b.y) + absInt(a.z-b.z)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (c cell) inBounds(w, h, d int) bool {
	return c.x >= 0 && c.x < w && c.y >= 0 && c.y < h && c.z >= 0 && c.z < d
}

// pqItem is one open-set entry; seq breaks f-score ties by heap insertion
// order.
type pqItem struct {
	c     cell
	f, g  int
	seq   int
	index int
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}
func (pq *priorityQueue) Push(x any) {
	item := x.(*pqItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

// findPath runs A* from start to goal on a (width, height, depth) integer
// grid with 6-connected unit-cost moves and the Manhattan heuristic.
// Obstacles are impassable cells. Returns the path inclusive of both
// endpoints, or nil if unreachable. Re-expansion is prevented by a closed
// set and by accepting only strictly-smaller tentative g-scores.
func findPath(start, goal cell, width, height, depth int, obstacles map[cell]bool) []cell {
	if !start.inBounds(width, height, depth) || !goal.inBounds(width, height, depth) {
		return nil
	}
	if obstacles[start] || obstacles[goal] {
		return nil
	}
	if start == goal {
		return []cell{start}
	}

	gScore := map[cell]int{start: 0}
	cameFrom := map[cell]cell{}
	closed := map[cell]bool{}

	pq := &priorityQueue{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &pqItem{c: start, f: manhattan(start, goal), g: 0, seq: seq})

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*pqItem)
		if closed[current.c] {
			continue
		}
		if current.c == goal {
			return reconstructPath(cameFrom, start, goal)
		}
		closed[current.c] = true

		for _, m := range moves {
			next := cell{current.c.x + m.x, current.c.y + m.y, current.c.z + m.z}
			if !next.inBounds(width, height, depth) || obstacles[next] || closed[next] {
				continue
			}
			tentativeG := current.g + 1
			if existing, ok := gScore[next]; ok && tentativeG >= existing {
				continue
			}
			gScore[next] = tentativeG
			cameFrom[next] = current.c
			seq++
			heap.Push(pq, &pqItem{c: next, f: tentativeG + manhattan(next, goal), g: tentativeG, seq: seq})
		}
	}
	return nil
}

func reconstructPath(cameFrom map[cell]cell, start, goal cell) []cell {
	path := []cell{goal}
	node := goal
	for node != start {
		prev, ok := cameFrom[node]
		if !ok {
			return nil
		}
		path = append([]cell{prev}, path...)
		node = prev
	}
	return path
}

func cellToPosition(c cell) cargo.Position {
	return cargo.Position{X: float64(c.x), Y: float64(c.y), Z: float64(c.z)}
}

func floorPosition(p cargo.Position) cell {
	return cell{x: int(p.X), y: int(p.Y), z: int(p.Z)}
}
