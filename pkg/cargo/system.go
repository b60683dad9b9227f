package cargo

import (
	"time"

	"github.com/google/uuid"
)

// CargoSystem is the exclusive owner of the cargo inventory: items,
// containers, the append-only log, and the logical current date. All
// mutators are atomic (either the whole change and its log entries
// happen, or nothing does) and fail closed on unknown ids.
type CargoSystem struct {
	Items       map[string]*Item
	Containers  map[string]*Container
	Logs        []LogEntry
	CurrentDate time.Time
}

// NewCargoSystem creates an empty system with the current date set to now.
func NewCargoSystem(now time.Time) *CargoSystem {
	return &CargoSystem{
		Items:       make(map[string]*Item),
		Containers:  make(map[string]*Container),
		CurrentDate: now,
	}
}

// AddItem registers a new item and logs the admission.
func (s *CargoSystem) AddItem(it *Item) {
	s.Items[it.ID] = it
	s.logAction("add_item", it.ID, "system", nil)
}

// AddContainer registers a new container and logs the admission.
func (s *CargoSystem) AddContainer(c *Container) {
	s.Containers[c.ID] = c
	s.logAction("add_container", c.ID, "system", nil)
}

// PlaceItem assigns an item to a container at a position, appending the
// item to the container's list. It fails (returns false, no mutation) if
// either id is unknown.
func (s *CargoSystem) PlaceItem(itemID, containerID string, pos Position) bool {
	it, ok := s.Items[itemID]
	if !ok {
		return false
	}
	c, ok := s.Containers[containerID]
	if !ok {
		return false
	}

	it.setPlacement(containerID, pos)
	c.addItem(it)

	s.logAction("place_item", itemID, "system", map[string]LogValue{
		"container_id": StringValue(containerID),
		"position":     PositionValue(pos),
	})
	return true
}

// RemoveItem detaches an item from its container without deleting the
// item itself, used by the rearrangement engine before re-placing it.
func (s *CargoSystem) RemoveItem(itemID string) bool {
	it, ok := s.Items[itemID]
	if !ok || !it.Placed() {
		return false
	}
	if c, ok := s.Containers[it.ContainerID]; ok {
		c.removeItem(itemID)
	}
	it.ContainerID = ""
	it.Position = nil
	it.hasContainerID = false

	s.logAction("remove_item", itemID, "system", nil)
	return true
}

// RetrieveItem records a use of the item by a user, failing if the item is
// unknown or already at its usage limit.
func (s *CargoSystem) RetrieveItem(itemID, userID string) bool {
	it, ok := s.Items[itemID]
	if !ok {
		return false
	}
	if !it.Use() {
		return false
	}
	if it.RemainingUses() <= 0 {
		s.logAction("fully_used", itemID, userID, nil)
	}
	s.logAction("retrieve", itemID, userID, nil)
	return true
}

// GetWasteItems returns every item that is expired or usage-exhausted as
// of the system's current date.
func (s *CargoSystem) GetWasteItems() []*Item {
	var waste []*Item
	for _, it := range s.Items {
		if it.IsWasted(s.CurrentDate) {
			waste = append(waste, it)
		}
	}
	return waste
}

// SimulateDay advances the current date by n days and logs an
// "item_expired" entry for each item that crosses its expiry boundary
// during the advance. SimulateDay(0) still logs the advance itself but
// never logs item_expired (no boundary is crossed).
func (s *CargoSystem) SimulateDay(days int) {
	before := s.CurrentDate
	s.CurrentDate = s.CurrentDate.AddDate(0, 0, days)

	s.logAction("simulate_day", "", "system", map[string]LogValue{
		"days": IntValue(days),
	})

	for _, it := range s.Items {
		if it.IsExpired(s.CurrentDate) && !it.IsExpired(before) {
			s.logAction("item_expired", it.ID, "system", nil)
		}
	}
}

// GetLogs returns the log entries within [start, end], treating a zero
// time.Time bound as unset.
func (s *CargoSystem) GetLogs(start, end time.Time) []LogEntry {
	var out []LogEntry
	for _, entry := range s.Logs {
		if !start.IsZero() && entry.Timestamp.Before(start) {
			continue
		}
		if !end.IsZero() && entry.Timestamp.After(end) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// logAction appends exactly one log entry. Every mutator above calls it at
// least once: RetrieveItem adds a "fully_used" entry when it takes the
// last use, and SimulateDay adds one "item_expired" entry per item that
// expires during the advance.
func (s *CargoSystem) logAction(action, itemID, userID string, details map[string]LogValue) {
	s.Logs = append(s.Logs, LogEntry{
		ID:        uuid.NewString(),
		Action:    action,
		ItemID:    itemID,
		UserID:    userID,
		Timestamp: time.Now(),
		Details:   details,
	})
}
