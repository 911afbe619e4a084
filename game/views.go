package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/hives/components"
)

// FlowerView is a read-only snapshot of a flower for drawing.
type FlowerView struct {
	Entity      ecs.Entity
	Pos         components.Position
	Type        string
	Health      float64
	HealthRatio float64
	Pollinators int
	Pollinate   bool // Healthy enough to attract bees
}

// HiveView is a read-only snapshot of a hive for drawing.
type HiveView struct {
	Entity      ecs.Entity
	Pos         components.Position
	Honey       float64
	Wax         float64
	Pollen      float64
	Harvestable bool
}

// BeeView is a read-only snapshot of a bee for drawing.
type BeeView struct {
	Entity ecs.Entity
	Pos    components.Position
	State  components.BeeState
	Hive   ecs.Entity
	Target ecs.Entity // Zero unless flying out or foraging
}

// KidView is a read-only snapshot of an intruder for drawing.
type KidView struct {
	Entity ecs.Entity
	Pos    components.Position
	State  components.KidState
}

// Flowers appends a snapshot of every flower to dst.
func (g *Game) Flowers(dst []FlowerView) []FlowerView {
	threshold := g.cfg.Flowers.PollinationThreshold
	query := g.flowerFilter.Query()
	for query.Next() {
		pos, f := query.Get()
		dst = append(dst, FlowerView{
			Entity:      query.Entity(),
			Pos:         *pos,
			Type:        f.Type,
			Health:      f.Health,
			HealthRatio: f.HealthRatio(),
			Pollinators: pollinatorCount(f),
			Pollinate:   f.CanBePollinated(threshold),
		})
	}
	return dst
}

// Hives appends a snapshot of every hive to dst.
func (g *Game) Hives(dst []HiveView) []HiveView {
	threshold := g.cfg.Hive.HoneyThreshold
	query := g.hiveFilter.Query()
	for query.Next() {
		pos, h := query.Get()
		dst = append(dst, HiveView{
			Entity:      query.Entity(),
			Pos:         *pos,
			Honey:       h.Honey,
			Wax:         h.Wax,
			Pollen:      h.Pollen,
			Harvestable: h.CanHarvest(threshold),
		})
	}
	return dst
}

// Bees appends a snapshot of every bee to dst.
func (g *Game) Bees(dst []BeeView) []BeeView {
	query := g.beeFilter.Query()
	for query.Next() {
		pos, b := query.Get()
		dst = append(dst, BeeView{Entity: query.Entity(), Pos: *pos, State: b.State, Hive: b.Hive, Target: b.Target})
	}
	return dst
}

// Kids appends a snapshot of every intruder to dst.
func (g *Game) Kids(dst []KidView) []KidView {
	query := g.kidFilter.Query()
	for query.Next() {
		pos, k := query.Get()
		dst = append(dst, KidView{Entity: query.Entity(), Pos: *pos, State: k.State})
	}
	return dst
}

// Inspect returns a copy of the behaviour component of e for display,
// or nil if e is gone.
func (g *Game) Inspect(e ecs.Entity) any {
	switch g.KindOf(e) {
	case KindFlower:
		return *g.flowerMap.Get(e)
	case KindHive:
		return *g.hiveMap.Get(e)
	case KindBee:
		return *g.beeMap.Get(e)
	case KindKid:
		return *g.kidMap.Get(e)
	default:
		return nil
	}
}

// PositionOf returns the position of a live entity.
func (g *Game) PositionOf(e ecs.Entity) (components.Position, bool) {
	if !g.alive(e) || !g.posMap.Has(e) {
		return components.Position{}, false
	}
	return *g.posMap.Get(e), true
}
