package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dshills/cargostow/pkg/cargo"
)

func TestMarshalItem_WireShape(t *testing.T) {
	item := cargo.NewItem("i1", "Wrench", cargo.Dimensions{Width: 2, Depth: 3, Height: 4}, 3, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 5, "A", 1.5)

	data, err := MarshalItem(item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	for _, field := range []string{"id", "name", "dimensions", "priority", "expiryDate", "usageLimit", "usageCount", "preferredZone", "weight"} {
		if _, ok := got[field]; !ok {
			t.Errorf("missing wire field %q", field)
		}
	}
	if _, ok := got["containerId"]; ok {
		t.Errorf("unplaced item should omit containerId, got %v", got["containerId"])
	}

	expiry, _ := got["expiryDate"].(string)
	if !strings.HasPrefix(expiry, "2026-01-01") {
		t.Errorf("expected ISO-8601 expiryDate, got %q", expiry)
	}
}

func TestMarshalItem_PlacedIncludesContainerAndPosition(t *testing.T) {
	sys := cargo.NewCargoSystem(time.Now())
	sys.AddContainer(cargo.NewContainer("c1", "A", cargo.Dimensions{Width: 10, Height: 10, Depth: 10}, cargo.Position{}))
	item := cargo.NewItem("i1", "Wrench", cargo.Dimensions{Width: 2, Height: 2, Depth: 2}, 3, time.Now().AddDate(1, 0, 0), 5, "A", 1.5)
	sys.AddItem(item)
	sys.PlaceItem("i1", "c1", cargo.Position{X: 1, Y: 2, Z: 3})

	data, err := MarshalItem(item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]any
	json.Unmarshal(data, &got)

	if got["containerId"] != "c1" {
		t.Errorf("expected containerId c1, got %v", got["containerId"])
	}
	pos, ok := got["position"].(map[string]any)
	if !ok {
		t.Fatalf("expected position object, got %v", got["position"])
	}
	if pos["x"] != 1.0 || pos["y"] != 2.0 || pos["z"] != 3.0 {
		t.Errorf("unexpected position: %v", pos)
	}
}

func TestMarshalLog_DetailsRoundTrip(t *testing.T) {
	entry := cargo.LogEntry{
		ID:        "log-1",
		Action:    "place_item",
		ItemID:    "i1",
		UserID:    "system",
		Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Details: map[string]cargo.LogValue{
			"container_id": cargo.StringValue("c1"),
			"position":     cargo.PositionValue(cargo.Position{X: 1, Y: 2, Z: 3}),
		},
	}

	data, err := MarshalLog(entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]any
	json.Unmarshal(data, &got)

	details, ok := got["details"].(map[string]any)
	if !ok {
		t.Fatalf("expected details object, got %v", got["details"])
	}
	if details["container_id"] != "c1" {
		t.Errorf("expected container_id c1, got %v", details["container_id"])
	}
}

func TestRenderContainerSVG_ProducesValidSVG(t *testing.T) {
	sys := cargo.NewCargoSystem(time.Now())
	container := cargo.NewContainer("c1", "A", cargo.Dimensions{Width: 10, Height: 10, Depth: 10}, cargo.Position{})
	sys.AddContainer(container)
	item := cargo.NewItem("i1", "Wrench", cargo.Dimensions{Width: 2, Height: 2, Depth: 2}, 3, time.Now().AddDate(1, 0, 0), 5, "A", 1)
	sys.AddItem(item)
	sys.PlaceItem("i1", "c1", cargo.Position{X: 1, Y: 1, Z: 1})

	data, err := RenderContainerSVG(container, DefaultSVGOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Errorf("expected a well-formed SVG document, got: %s", out)
	}
	if !strings.Contains(out, "i1") {
		t.Errorf("expected item id label in SVG output")
	}
}

func TestRenderContainerSVG_NilContainer(t *testing.T) {
	if _, err := RenderContainerSVG(nil, DefaultSVGOptions()); err == nil {
		t.Error("expected an error for a nil container")
	}
}
