package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/hives/components"
)

// alive reports whether e refers to a live entity.
func (g *Game) alive(e ecs.Entity) bool {
	return !e.IsZero() && g.world.Alive(e)
}

func (g *Game) isFlower(e ecs.Entity) bool { return g.alive(e) && g.flowerMap.Has(e) }
func (g *Game) isHive(e ecs.Entity) bool   { return g.alive(e) && g.hiveMap.Has(e) }
func (g *Game) isKid(e ecs.Entity) bool    { return g.alive(e) && g.kidMap.Has(e) }

// removeWilted removes flowers whose health reached zero. No refund is paid.
func (g *Game) removeWilted(wilted []ecs.Entity) {
	for _, e := range wilted {
		pos, flower := g.flowerMapper.Get(e)
		slog.Info("flower_wilted", "type", flower.Type, "x", pos.X, "y", pos.Y)
		g.removeFlower(e)
		g.collector.RecordFlowerWilted()
	}
}

// removeFlower destroys a flower. Bees heading for it notice the dead
// handle on their next update.
func (g *Game) removeFlower(e ecs.Entity) {
	g.world.RemoveEntity(e)
	g.numFlowers--
}

// removeHive destroys a hive and every bee bound to it, unregistering
// those bees from the flowers they were visiting.
func (g *Game) removeHive(e ecs.Entity) {
	// First pass: collect the swarm (the world is locked during the query)
	g.removeBuf = g.removeBuf[:0]
	query := g.beeFilter.Query()
	for query.Next() {
		_, bee := query.Get()
		if bee.Hive == e {
			g.removeBuf = append(g.removeBuf, query.Entity())
		}
	}

	// Second pass: remove
	for _, b := range g.removeBuf {
		bee := g.beeMap.Get(b)
		if g.isFlower(bee.Target) {
			g.flowerMap.Get(bee.Target).RemovePollinator(b)
		}
		g.world.RemoveEntity(b)
		g.numBees--
	}

	g.world.RemoveEntity(e)
	g.numHives--
}

// removeKid takes an intruder out of the garden.
func (g *Game) removeKid(e ecs.Entity) {
	g.world.RemoveEntity(e)
	g.numKids--
}

// pollinatorCount returns how many bees are registered on a flower.
func pollinatorCount(f *components.Flower) int {
	return len(f.Pollinators)
}
