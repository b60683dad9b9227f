package cargo

import "math"

// Position is a coordinate in container-local (or, for a Container itself,
// fleet-global) 3D space.
type Position struct {
	X, Y, Z float64
}

// DistanceTo returns the Euclidean distance between two positions.
func (p Position) DistanceTo(other Position) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	dz := p.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Dimensions is a positive-real (width, depth, height) box extent.
type Dimensions struct {
	Width, Depth, Height float64
}

// Volume returns width * depth * height.
func (d Dimensions) Volume() float64 {
	return d.Width * d.Depth * d.Height
}

// AABB is an axis-aligned bounding box, used by the R-tree and by overlap
// and containment checks across the placement and rearrangement engines.
type AABB struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// NewAABB builds the bounding box of an item-sized box whose corner is pos
// and whose extent is dim.
func NewAABB(pos Position, dim Dimensions) AABB {
	return AABB{
		MinX: pos.X, MinY: pos.Y, MinZ: pos.Z,
		MaxX: pos.X + dim.Width, MaxY: pos.Y + dim.Height, MaxZ: pos.Z + dim.Depth,
	}
}

// Volume returns the (non-negative) volume of the box; a degenerate or
// inverted box has volume 0.
func (b AABB) Volume() float64 {
	w := math.Max(0, b.MaxX-b.MinX)
	h := math.Max(0, b.MaxY-b.MinY)
	d := math.Max(0, b.MaxZ-b.MinZ)
	return w * h * d
}

// Margin returns the sum of the box's edge lengths, used by the R-tree's
// linear-split seed selection.
func (b AABB) Margin() float64 {
	return (b.MaxX - b.MinX) + (b.MaxY - b.MinY) + (b.MaxZ - b.MinZ)
}

// Expand returns the smallest box containing both b and other.
func (b AABB) Expand(other AABB) AABB {
	return AABB{
		MinX: math.Min(b.MinX, other.MinX),
		MinY: math.Min(b.MinY, other.MinY),
		MinZ: math.Min(b.MinZ, other.MinZ),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MaxY: math.Max(b.MaxY, other.MaxY),
		MaxZ: math.Max(b.MaxZ, other.MaxZ),
	}
}

// Intersects reports whether b and other intersect, inclusive on all faces.
func (b AABB) Intersects(other AABB) bool {
	return b.MinX <= other.MaxX && b.MaxX >= other.MinX &&
		b.MinY <= other.MaxY && b.MaxY >= other.MinY &&
		b.MinZ <= other.MaxZ && b.MaxZ >= other.MinZ
}

// StrictlyOverlaps reports strict overlap on all three axes, the stricter
// test the placement fitness function uses to detect invalid (interpenetrating)
// placements rather than merely touching ones.
func (b AABB) StrictlyOverlaps(other AABB) bool {
	return b.MinX < other.MaxX && b.MaxX > other.MinX &&
		b.MinY < other.MaxY && b.MaxY > other.MinY &&
		b.MinZ < other.MaxZ && b.MaxZ > other.MinZ
}

// Within reports whether b fits entirely inside bound (a container's box
// rooted at the origin with the given dimensions).
func (b AABB) Within(dim Dimensions) bool {
	return b.MinX >= 0 && b.MinY >= 0 && b.MinZ >= 0 &&
		b.MaxX <= dim.Width && b.MaxY <= dim.Height && b.MaxZ <= dim.Depth
}
