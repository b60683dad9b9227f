package packing

import (
	"testing"

	"github.com/dshills/cargostow/pkg/cargo"
)

func TestBin_InsertBasics(t *testing.T) {
	b := NewBin(cargo.Dimensions{Width: 10, Height: 10, Depth: 10})

	pos, ok := b.Insert(4, 4, 4)
	if !ok {
		t.Fatal("first insert should succeed")
	}
	if pos != (cargo.Position{X: 0, Y: 0, Z: 0}) {
		t.Errorf("first insert should land at origin, got %+v", pos)
	}
}

func TestBin_InsertUntilFull(t *testing.T) {
	b := NewBin(cargo.Dimensions{Width: 10, Height: 10, Depth: 10})

	placed := 0
	var boxes []cargo.AABB
	for i := 0; i < 8; i++ {
		pos, ok := b.Insert(4, 4, 4)
		if !ok {
			break
		}
		box := cargo.NewAABB(pos, cargo.Dimensions{Width: 4, Height: 4, Depth: 4})
		for _, other := range boxes {
			if box.StrictlyOverlaps(other) {
				t.Fatalf("placement %d overlaps an earlier placement: %+v vs %+v", i, box, other)
			}
		}
		boxes = append(boxes, box)
		placed++
	}

	if placed != 8 {
		t.Errorf("expected 8 non-overlapping 4x4x4 boxes in a 10x10x10 bin, got %d", placed)
	}
}

func TestBin_InsertFailsWhenTooLarge(t *testing.T) {
	b := NewBin(cargo.Dimensions{Width: 5, Height: 5, Depth: 5})

	if _, ok := b.Insert(6, 1, 1); ok {
		t.Error("insert of an oversized box should fail")
	}
}

func TestBin_InsertMinimizesWaste(t *testing.T) {
	b := NewBin(cargo.Dimensions{Width: 10, Height: 10, Depth: 10})

	// First carve out a 2x10x10 sliver and a 8x10x10 remainder by
	// inserting a thin box, then ask for something that only the
	// larger remainder can satisfy with less waste than any smaller
	// leftover cuboid.
	if _, ok := b.Insert(2, 10, 10); !ok {
		t.Fatal("setup insert should succeed")
	}

	pos, ok := b.Insert(8, 10, 10)
	if !ok {
		t.Fatal("second insert should find the remaining 8x10x10 cuboid")
	}
	if pos.X != 2 {
		t.Errorf("expected second box at x=2, got %+v", pos)
	}
}
