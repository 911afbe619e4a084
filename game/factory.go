package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/hives/components"
	"github.com/pthm-cable/hives/config"
	"github.com/pthm-cable/hives/systems"
)

// spawnHive creates a hive at pos together with its full swarm of bees.
func (g *Game) spawnHive(pos components.Position) ecs.Entity {
	hive := components.Hive{Capacity: g.cfg.Hive.Capacity}
	entity := g.hiveMapper.NewEntity(&pos, &hive)
	g.numHives++

	for i := 0; i < hive.Capacity; i++ {
		beePos := pos
		bee := systems.NewBee(entity, g.cfg.Bee.Speed)
		g.beeMapper.NewEntity(&beePos, &bee)
		g.numBees++
	}
	return entity
}

// spawnFlower creates a flower of the given catalog type at pos.
func (g *Game) spawnFlower(pos components.Position, ft config.FlowerTypeConfig) ecs.Entity {
	flower := components.NewFlower(ft.Name, ft.Cost, ft.Health, ft.WiltingRate)
	entity := g.flowerMapper.NewEntity(&pos, &flower)
	g.numFlowers++
	return entity
}

// spawnKid creates an intruder on a random map edge heading for the nearest hive.
func (g *Game) spawnKid() ecs.Entity {
	pos := systems.SpawnPosition(g.rng, g.bounds, g.cfg.Kid.SpawnMargin)
	kid := g.kidSystem.NewKid(pos)
	entity := g.kidMapper.NewEntity(&pos, &kid)
	g.numKids++
	g.collector.RecordKidSpawned()

	slog.Info("kid_spawned", "x", pos.X, "y", pos.Y, "kids", g.numKids)
	return entity
}
