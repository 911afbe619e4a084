// Package systems provides ECS systems for the garden simulation.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/hives/components"
)

// Neighbor holds a nearby entity with precomputed spatial data.
type Neighbor struct {
	E      ecs.Entity
	Pos    components.Position
	DistSq float64
}

// SpatialGrid provides cell-bucketed radius lookups over a bounded area.
// Positions outside the area are clamped into the border cells.
type SpatialGrid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]gridEntry
}

type gridEntry struct {
	e   ecs.Entity
	pos components.Position
}

// NewSpatialGrid creates a spatial grid covering the given world size.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1

	cells := make([][]gridEntry, cols*rows)
	for i := range cells {
		cells[i] = make([]gridEntry, 0, 4)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// Clear removes all entities from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an entity to the grid at the given position.
func (g *SpatialGrid) Insert(e ecs.Entity, pos components.Position) {
	idx := g.cellIndex(pos.X, pos.Y)
	g.cells[idx] = append(g.cells[idx], gridEntry{e: e, pos: pos})
}

// Len returns the number of entities in the grid.
func (g *SpatialGrid) Len() int {
	n := 0
	for _, c := range g.cells {
		n += len(c)
	}
	return n
}

// QueryRadiusInto appends entities strictly closer than radius to dst.
// Reuse dst across calls to avoid allocations.
func (g *SpatialGrid) QueryRadiusInto(dst []Neighbor, center components.Position, radius float64) []Neighbor {
	g.visit(center, radius, func(ent gridEntry, distSq float64) bool {
		dst = append(dst, Neighbor{E: ent.e, Pos: ent.pos, DistSq: distSq})
		return true
	})
	return dst
}

// AnyWithin reports whether at least one entity is strictly closer than radius.
func (g *SpatialGrid) AnyWithin(center components.Position, radius float64) bool {
	found := false
	g.visit(center, radius, func(gridEntry, float64) bool {
		found = true
		return false
	})
	return found
}

// visit calls fn for every entry within radius until fn returns false.
func (g *SpatialGrid) visit(center components.Position, radius float64, fn func(gridEntry, float64) bool) {
	cellRadius := int(radius/g.cellSize) + 1
	centerCol, centerRow := g.cellCoords(center.X, center.Y)
	radiusSq := radius * radius

	for dr := -cellRadius; dr <= cellRadius; dr++ {
		row := centerRow + dr
		if row < 0 || row >= g.rows {
			continue
		}
		for dc := -cellRadius; dc <= cellRadius; dc++ {
			col := centerCol + dc
			if col < 0 || col >= g.cols {
				continue
			}
			for _, ent := range g.cells[row*g.cols+col] {
				dx := ent.pos.X - center.X
				dy := ent.pos.Y - center.Y
				distSq := dx*dx + dy*dy
				if distSq < radiusSq {
					if !fn(ent, distSq) {
						return
					}
				}
			}
		}
	}
}

// cellIndex returns the flat index for a world position.
func (g *SpatialGrid) cellIndex(x, y float64) int {
	col, row := g.cellCoords(x, y)
	return row*g.cols + col
}

func (g *SpatialGrid) cellCoords(x, y float64) (col, row int) {
	col = int(x / g.cellSize)
	row = int(y / g.cellSize)

	// Clamp to valid range
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}
