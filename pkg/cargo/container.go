package cargo

// Container is a single cargo container in fleet-global space: a zone tag,
// a box, and the set of items currently inside it.
type Container struct {
	ID         string
	Zone       string
	Dimensions Dimensions
	Position   Position
	Items      []*Item
}

// NewContainer constructs an empty container.
func NewContainer(id, zone string, dim Dimensions, pos Position) *Container {
	return &Container{ID: id, Zone: zone, Dimensions: dim, Position: pos}
}

// UsedVolume returns the sum of the volumes of items currently inside.
func (c *Container) UsedVolume() float64 {
	var used float64
	for _, it := range c.Items {
		used += it.Volume()
	}
	return used
}

// AvailableVolume returns the container's free volume.
func (c *Container) AvailableVolume() float64 {
	return c.Dimensions.Volume() - c.UsedVolume()
}

// addItem appends an item to the container's item list. It does not
// validate geometry; callers (placement, rearrangement, CargoSystem) are
// responsible for choosing a non-overlapping, in-bounds position first.
func (c *Container) addItem(it *Item) {
	c.Items = append(c.Items, it)
}

// removeItem removes an item by id from the container's item list, if present.
func (c *Container) removeItem(itemID string) {
	for i, it := range c.Items {
		if it.ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}
