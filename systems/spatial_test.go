package systems

import (
	"testing"

	"github.com/pthm-cable/hives/components"
)

func TestSpatialGridQueryRadius(t *testing.T) {
	g := newGarden(t)
	grid := NewSpatialGrid(g.bounds.Width, g.bounds.Height, 100)

	inside := g.addFlower(150, 100, 100)
	edge := g.addFlower(200, 100, 100) // exactly at radius
	far := g.addFlower(900, 700, 100)
	grid.Insert(inside, components.Position{X: 150, Y: 100})
	grid.Insert(edge, components.Position{X: 200, Y: 100})
	grid.Insert(far, components.Position{X: 900, Y: 700})

	if grid.Len() != 3 {
		t.Fatalf("Len = %d, want 3", grid.Len())
	}

	got := grid.QueryRadiusInto(nil, components.Position{X: 100, Y: 100}, 100)
	if len(got) != 1 || got[0].E != inside {
		t.Fatalf("QueryRadiusInto = %v, want only %v", got, inside)
	}
	if got[0].DistSq != 2500 {
		t.Errorf("DistSq = %v, want 2500", got[0].DistSq)
	}

	if !grid.AnyWithin(components.Position{X: 880, Y: 690}, 50) {
		t.Error("AnyWithin missed a nearby entry")
	}
	if grid.AnyWithin(components.Position{X: 500, Y: 400}, 50) {
		t.Error("AnyWithin found an entry in an empty region")
	}

	grid.Clear()
	if grid.Len() != 0 || grid.AnyWithin(components.Position{X: 150, Y: 100}, 10) {
		t.Error("Clear left entries behind")
	}
}

func TestSpatialGridOutOfBounds(t *testing.T) {
	g := newGarden(t)
	grid := NewSpatialGrid(g.bounds.Width, g.bounds.Height, 64)
	e := g.addFlower(0, 0, 100)
	grid.Insert(e, components.Position{X: -30, Y: -30})

	if !grid.AnyWithin(components.Position{X: 0, Y: 0}, 50) {
		t.Error("entry clamped into a border cell was not found")
	}
}
