package export

import (
	"encoding/json"
	"time"

	"github.com/dshills/cargostow/pkg/cargo"
)

type positionWire struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type dimensionsWire struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}

type itemWire struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Dimensions    dimensionsWire `json:"dimensions"`
	Priority      int           `json:"priority"`
	ExpiryDate    string        `json:"expiryDate"`
	UsageLimit    int           `json:"usageLimit"`
	UsageCount    int           `json:"usageCount"`
	PreferredZone string        `json:"preferredZone"`
	Weight        float64       `json:"weight"`
	ContainerID   string        `json:"containerId,omitempty"`
	Position      *positionWire `json:"position,omitempty"`
}

type containerWire struct {
	ID              string         `json:"id"`
	Zone            string         `json:"zone"`
	Dimensions      dimensionsWire `json:"dimensions"`
	Position        positionWire   `json:"position"`
	AvailableVolume float64        `json:"availableVolume"`
	Items           []itemWire     `json:"items"`
}

type logWire struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	ItemID    string         `json:"itemId"`
	UserID    string         `json:"userId"`
	Timestamp string         `json:"timestamp"`
	Details   map[string]any `json:"details,omitempty"`
}

func toPositionWire(p cargo.Position) positionWire {
	return positionWire{X: p.X, Y: p.Y, Z: p.Z}
}

func toDimensionsWire(d cargo.Dimensions) dimensionsWire {
	return dimensionsWire{Width: d.Width, Depth: d.Depth, Height: d.Height}
}

func toItemWire(item *cargo.Item) itemWire {
	w := itemWire{
		ID:            item.ID,
		Name:          item.Name,
		Dimensions:    toDimensionsWire(item.Dimensions),
		Priority:      item.Priority,
		ExpiryDate:    item.ExpiryDate.Format(time.RFC3339),
		UsageLimit:    item.UsageLimit,
		UsageCount:    item.UsageCount,
		PreferredZone: item.PreferredZone,
		Weight:        item.Weight,
	}
	if item.Placed() {
		w.ContainerID = item.ContainerID
		pos := toPositionWire(*item.Position)
		w.Position = &pos
	}
	return w
}

func toContainerWire(c *cargo.Container) containerWire {
	items := make([]itemWire, len(c.Items))
	for i, item := range c.Items {
		items[i] = toItemWire(item)
	}
	return containerWire{
		ID:              c.ID,
		Zone:            c.Zone,
		Dimensions:      toDimensionsWire(c.Dimensions),
		Position:        toPositionWire(c.Position),
		AvailableVolume: c.AvailableVolume(),
		Items:           items,
	}
}

func toLogValueAny(v cargo.LogValue) any {
	switch v.Kind {
	case cargo.LogValueString:
		return v.Str
	case cargo.LogValueInt:
		return v.Int
	case cargo.LogValueFloat:
		return v.Float
	case cargo.LogValuePosition:
		return toPositionWire(v.Position)
	case cargo.LogValueMap:
		out := make(map[string]any, len(v.Map))
		for k, nested := range v.Map {
			out[k] = toLogValueAny(nested)
		}
		return out
	default:
		return nil
	}
}

func toLogWire(entry cargo.LogEntry) logWire {
	var details map[string]any
	if len(entry.Details) > 0 {
		details = make(map[string]any, len(entry.Details))
		for k, v := range entry.Details {
			details[k] = toLogValueAny(v)
		}
	}
	return logWire{
		ID:        entry.ID,
		Action:    entry.Action,
		ItemID:    entry.ItemID,
		UserID:    entry.UserID,
		Timestamp: entry.Timestamp.Format(time.RFC3339),
		Details:   details,
	}
}

// MarshalItem renders one item to its wire JSON shape.
func MarshalItem(item *cargo.Item) ([]byte, error) {
	return json.Marshal(toItemWire(item))
}

// MarshalContainer renders one container (and its contained items) to its
// wire JSON shape.
func MarshalContainer(c *cargo.Container) ([]byte, error) {
	return json.Marshal(toContainerWire(c))
}

// MarshalLog renders one log entry to its wire JSON shape.
func MarshalLog(entry cargo.LogEntry) ([]byte, error) {
	return json.Marshal(toLogWire(entry))
}

// systemWire is the full-snapshot export shape consumed by a transport
// layer: every container (with its items nested) plus the unplaced items
// and the log.
type systemWire struct {
	Containers []containerWire `json:"containers"`
	Unplaced   []itemWire      `json:"unplacedItems"`
	Logs       []logWire       `json:"logs"`
}

// MarshalSystem renders the whole cargo system to its wire JSON shape.
func MarshalSystem(sys *cargo.CargoSystem) ([]byte, error) {
	w := systemWire{}
	for _, c := range sys.Containers {
		w.Containers = append(w.Containers, toContainerWire(c))
	}
	for _, item := range sys.Items {
		if !item.Placed() {
			w.Unplaced = append(w.Unplaced, toItemWire(item))
		}
	}
	for _, entry := range sys.Logs {
		w.Logs = append(w.Logs, toLogWire(entry))
	}
	return json.Marshal(w)
}
