package rtree

import "github.com/dshills/cargostow/pkg/cargo"

// entry pairs a bounding box with either a child node (internal) or an
// item id (leaf).
type entry struct {
	bounds cargo.AABB
	child  *node
	itemID string
}

type node struct {
	leaf    bool
	entries []entry
}

// Tree is a variable-fanout R-tree over item AABBs, max entries per node
// capped at maxEntries (default 5).
type Tree struct {
	root       *node
	maxEntries int
}

// New creates an empty tree. maxEntries below 2 is treated as 2, the
// minimum needed for a split to make sense.
func New(maxEntries int) *Tree {
	if maxEntries < 2 {
		maxEntries = 2
	}
	return &Tree{
		root:       &node{leaf: true},
		maxEntries: maxEntries,
	}
}

// Insert adds itemID with bounding box bounds, descending via minimum
// volume-enlargement subtree choice and splitting on leaf overflow.
func (t *Tree) Insert(itemID string, bounds cargo.AABB) {
	leaf := t.chooseLeaf(t.root, bounds)
	leaf.entries = append(leaf.entries, entry{bounds: bounds, itemID: itemID})

	if len(leaf.entries) > t.maxEntries {
		t.splitNode(leaf)
	}
	t.recomputeBounds(t.root)
}

// chooseLeaf descends picking, at each internal node, the child requiring
// minimum enlargement to cover bounds; ties resolve to the first
// encountered child.
func (t *Tree) chooseLeaf(n *node, bounds cargo.AABB) *node {
	if n.leaf {
		return n
	}

	bestIdx := 0
	bestEnlargement := enlargement(n.entries[0].bounds, bounds)
	for i := 1; i < len(n.entries); i++ {
		e := enlargement(n.entries[i].bounds, bounds)
		if e < bestEnlargement {
			bestEnlargement = e
			bestIdx = i
		}
	}
	return t.chooseLeaf(n.entries[bestIdx].child, bounds)
}

func enlargement(existing, incoming cargo.AABB) float64 {
	return existing.Expand(incoming).Volume() - existing.Volume()
}

// splitNode performs a linear split: pick the seed pair minimizing the
// margin of their combined bounds, then distribute the rest greedily by
// whichever group needs less enlargement, forcing all remaining entries
// into a group once it reaches ceil(M/2).
//
// A root split grows the tree by wrapping both halves under a fresh
// internal root.
func (t *Tree) splitNode(n *node) {
	groupA, groupB := t.linearSplit(n.entries)

	n.entries = groupA
	sibling := &node{leaf: n.leaf, entries: groupB}

	if n == t.root {
		newRoot := &node{leaf: false}
		newRoot.entries = []entry{
			{bounds: boundsOf(n.entries), child: n},
			{bounds: boundsOf(sibling.entries), child: sibling},
		}
		t.root = newRoot
		return
	}

	t.attachSibling(t.root, n, sibling)
}

// attachSibling finds the parent entry pointing at n and inserts sibling
// alongside it, splitting the parent in turn if that overflows it.
func (t *Tree) attachSibling(n *node, target, sibling *node) bool {
	if n.leaf {
		return false
	}
	for i := range n.entries {
		if n.entries[i].child == target {
			n.entries = append(n.entries, entry{bounds: boundsOf(sibling.entries), child: sibling})
			if len(n.entries) > t.maxEntries {
				t.splitNode(n)
			}
			return true
		}
		if t.attachSibling(n.entries[i].child, target, sibling) {
			return true
		}
	}
	return false
}

// linearSplit distributes entries (always maxEntries+1 long, since
// splitNode only runs on overflow) between two groups, forcing all
// remaining entries into whichever group hasn't yet reached the tree's
// minimum fill, ceil(maxEntries/2).
func (t *Tree) linearSplit(entries []entry) ([]entry, []entry) {
	seedI, seedJ := pickSeeds(entries)

	groupA := []entry{entries[seedI]}
	groupB := []entry{entries[seedJ]}
	boundsA := entries[seedI].bounds
	boundsB := entries[seedJ].bounds

	minGroupSize := (t.maxEntries + 1) / 2

	for i, e := range entries {
		if i == seedI || i == seedJ {
			continue
		}

		if len(groupA) >= minGroupSize {
			groupB = append(groupB, e)
			boundsB = boundsB.Expand(e.bounds)
			continue
		}
		if len(groupB) >= minGroupSize {
			groupA = append(groupA, e)
			boundsA = boundsA.Expand(e.bounds)
			continue
		}

		enlargeA := boundsA.Expand(e.bounds).Volume() - boundsA.Volume()
		enlargeB := boundsB.Expand(e.bounds).Volume() - boundsB.Volume()
		if enlargeA <= enlargeB {
			groupA = append(groupA, e)
			boundsA = boundsA.Expand(e.bounds)
		} else {
			groupB = append(groupB, e)
			boundsB = boundsB.Expand(e.bounds)
		}
	}

	return groupA, groupB
}

// pickSeeds chooses the pair whose combined bounds have minimum margin.
func pickSeeds(entries []entry) (int, int) {
	bestI, bestJ := 0, 1
	bestMargin := entries[0].bounds.Expand(entries[1].bounds).Margin()
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			m := entries[i].bounds.Expand(entries[j].bounds).Margin()
			if m < bestMargin {
				bestMargin = m
				bestI, bestJ = i, j
			}
		}
	}
	return bestI, bestJ
}

func boundsOf(entries []entry) cargo.AABB {
	b := entries[0].bounds
	for _, e := range entries[1:] {
		b = b.Expand(e.bounds)
	}
	return b
}

// recomputeBounds folds every node's bounds up from its children/entries
// after an insert.
func (t *Tree) recomputeBounds(n *node) cargo.AABB {
	if n.leaf {
		return boundsOf(n.entries)
	}
	for i := range n.entries {
		n.entries[i].bounds = t.recomputeBounds(n.entries[i].child)
	}
	return boundsOf(n.entries)
}

// Query returns every item id whose stored bounds intersect the query box.
func (t *Tree) Query(box cargo.AABB) []string {
	var out []string
	t.query(t.root, box, &out)
	return out
}

func (t *Tree) query(n *node, box cargo.AABB, out *[]string) {
	for _, e := range n.entries {
		if !e.bounds.Intersects(box) {
			continue
		}
		if n.leaf {
			*out = append(*out, e.itemID)
		} else {
			t.query(e.child, box, out)
		}
	}
}
