package cargo

import "time"

// Item is a single piece of cargo tracked by the system. An Item exists
// independently of any Container: ContainerID and Position are both unset
// until the system places it, and are always set or unset together.
type Item struct {
	ID             string
	Name           string
	Dimensions     Dimensions
	Priority       int // 1..5, higher is more important
	ExpiryDate     time.Time
	UsageLimit     int
	UsageCount     int
	PreferredZone  string
	Weight         float64
	ContainerID    string // empty iff not placed
	Position       *Position
	hasContainerID bool
}

// NewItem constructs an unplaced item with usage_count = 0.
func NewItem(id, name string, dim Dimensions, priority int, expiry time.Time, usageLimit int, preferredZone string, weight float64) *Item {
	return &Item{
		ID:            id,
		Name:          name,
		Dimensions:    dim,
		Priority:      priority,
		ExpiryDate:    expiry,
		UsageLimit:    usageLimit,
		PreferredZone: preferredZone,
		Weight:        weight,
	}
}

// Placed reports whether the item currently resides in a container.
func (it *Item) Placed() bool {
	return it.hasContainerID
}

// setPlacement assigns container/position together, the only way either
// field may change, preserving the co-presence invariant.
func (it *Item) setPlacement(containerID string, pos Position) {
	it.ContainerID = containerID
	it.Position = &pos
	it.hasContainerID = true
}

// Volume returns the item's box volume.
func (it *Item) Volume() float64 {
	return it.Dimensions.Volume()
}

// IsExpired reports whether now is strictly after the item's expiry date.
// Always a method call parameterized by the caller's notion of "now",
// never a cached attribute.
func (it *Item) IsExpired(now time.Time) bool {
	return now.After(it.ExpiryDate)
}

// IsWasted reports whether the item is expired or has exhausted its uses.
func (it *Item) IsWasted(now time.Time) bool {
	return it.IsExpired(now) || it.UsageCount >= it.UsageLimit
}

// RemainingUses returns max(0, usage_limit - usage_count).
func (it *Item) RemainingUses() int {
	r := it.UsageLimit - it.UsageCount
	if r < 0 {
		return 0
	}
	return r
}

// Use increments usage_count if the item has remaining uses, reporting
// whether the use was recorded. usage_count never decreases.
func (it *Item) Use() bool {
	if it.UsageCount < it.UsageLimit {
		it.UsageCount++
		return true
	}
	return false
}
