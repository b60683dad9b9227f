package packing

import "github.com/dshills/cargostow/pkg/cargo"

// Cuboid is an axis-aligned free region within a Bin, rooted at
// (X, Y, Z) with the given (Width, Height, Depth) extent.
type Cuboid struct {
	X, Y, Z              float64
	Width, Height, Depth float64
}

func (c Cuboid) fits(w, h, d float64) bool {
	return c.Width >= w && c.Height >= h && c.Depth >= d
}

func (c Cuboid) volume() float64 {
	return c.Width * c.Height * c.Depth
}

// Bin tracks the free-cuboid list for one container during a packing
// pass. The splitter may leave free cuboids that overlap each other (the
// spec calls this out explicitly); Insert tolerates this because it only
// ever checks containment of the requested box against a candidate
// cuboid, never disjointness between cuboids.
type Bin struct {
	Width, Height, Depth float64
	Free                 []Cuboid
	Placed               []cargo.Position
}

// NewBin creates a bin for a container with the given dimensions, with a
// single free cuboid spanning the whole box.
func NewBin(dim cargo.Dimensions) *Bin {
	return &Bin{
		Width:  dim.Width,
		Height: dim.Height,
		Depth:  dim.Depth,
		Free:   []Cuboid{{0, 0, 0, dim.Width, dim.Height, dim.Depth}},
	}
}

// Insert finds the minimum-waste free cuboid that fits (w, h, d), ties
// broken by insertion order, removes it, and emits up to seven residual
// cuboids (one per axis, the three edge-combinations, and the far
// corner), each only when every axis it extends along has strictly
// positive slack. Returns the
// corner position and true on success.
func (b *Bin) Insert(w, h, d float64) (cargo.Position, bool) {
	bestIdx := -1
	minWaste := 0.0

	for i, c := range b.Free {
		if !c.fits(w, h, d) {
			continue
		}
		waste := c.volume() - w*h*d
		if bestIdx == -1 || waste < minWaste {
			bestIdx = i
			minWaste = waste
		}
	}

	if bestIdx == -1 {
		return cargo.Position{}, false
	}

	chosen := b.Free[bestIdx]
	b.Free = append(b.Free[:bestIdx], b.Free[bestIdx+1:]...)

	x, y, z := chosen.X, chosen.Y, chosen.Z
	remW := chosen.Width - w
	remH := chosen.Height - h
	remD := chosen.Depth - d

	if remW > 0 {
		b.Free = append(b.Free, Cuboid{x + w, y, z, remW, h, d})
	}
	if remH > 0 {
		b.Free = append(b.Free, Cuboid{x, y + h, z, w, remH, d})
	}
	if remD > 0 {
		b.Free = append(b.Free, Cuboid{x, y, z + d, w, h, remD})
	}
	if remW > 0 && remH > 0 {
		b.Free = append(b.Free, Cuboid{x + w, y + h, z, remW, remH, d})
	}
	if remW > 0 && remD > 0 {
		b.Free = append(b.Free, Cuboid{x + w, y, z + d, remW, h, remD})
	}
	if remH > 0 && remD > 0 {
		b.Free = append(b.Free, Cuboid{x, y + h, z + d, w, remH, remD})
	}
	if remW > 0 && remH > 0 && remD > 0 {
		b.Free = append(b.Free, Cuboid{x + w, y + h, z + d, remW, remH, remD})
	}

	pos := cargo.Position{X: x, Y: y, Z: z}
	b.Placed = append(b.Placed, pos)
	return pos, true
}
