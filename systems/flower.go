package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/hives/components"
)

// FlowerSystem applies wilting and indexes live flowers for proximity queries.
type FlowerSystem struct {
	filter *ecs.Filter2[components.Position, components.Flower]
	grid   *SpatialGrid

	wilted []ecs.Entity
}

// NewFlowerSystem creates a flower system. cellSize sizes the spatial index
// and should be on the order of the largest query radius.
func NewFlowerSystem(w *ecs.World, bounds Bounds, cellSize float64) *FlowerSystem {
	return &FlowerSystem{
		filter: ecs.NewFilter2[components.Position, components.Flower](w),
		grid:   NewSpatialGrid(bounds.Width, bounds.Height, cellSize),
	}
}

// Update wilts every flower by dt and returns those whose health reached zero.
// The returned slice is reused on the next call; the caller removes the
// entities after this returns.
func (s *FlowerSystem) Update(dt float64) []ecs.Entity {
	s.wilted = s.wilted[:0]

	query := s.filter.Query()
	for query.Next() {
		_, flower := query.Get()
		flower.Update(dt)
		if flower.Dead() {
			s.wilted = append(s.wilted, query.Entity())
		}
	}
	return s.wilted
}

// Reindex rebuilds the spatial index from the live flowers.
// Call it after removals so bees and hives only see live flowers.
func (s *FlowerSystem) Reindex() {
	s.grid.Clear()

	query := s.filter.Query()
	for query.Next() {
		pos, _ := query.Get()
		s.grid.Insert(query.Entity(), *pos)
	}
}

// Grid returns the flower spatial index built by the last Reindex.
func (s *FlowerSystem) Grid() *SpatialGrid {
	return s.grid
}

// Healths returns the health of every flower, for telemetry.
func (s *FlowerSystem) Healths(dst []float64) []float64 {
	query := s.filter.Query()
	for query.Next() {
		_, flower := query.Get()
		dst = append(dst, flower.Health)
	}
	return dst
}
