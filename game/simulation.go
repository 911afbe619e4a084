package game

import (
	"log/slog"

	"github.com/pthm-cable/hives/telemetry"
)

// Step advances the simulation by dt seconds.
// Structural changes (wilted flowers, departing kids, new kids) are applied
// between phases, never while a query is open.
func (g *Game) Step(dt float64) {
	if dt < 0 {
		dt = 0
	}
	g.perfCollector.StartTick()

	// 1. Clock
	g.perfCollector.StartPhase(telemetry.PhaseClock)
	if g.clock.Advance(dt) {
		slog.Info("new_day", "day", g.clock.Day(), "season", g.clock.Season().String())
	}

	// 2. Flowers wilt; dead ones go without refund
	g.perfCollector.StartPhase(telemetry.PhaseFlowers)
	g.removeWilted(g.flowerSystem.Update(dt))

	// 3. Flower index for hives and bees
	g.perfCollector.StartPhase(telemetry.PhaseGrid)
	g.flowerSystem.Reindex()

	// 4. Production
	g.perfCollector.StartPhase(telemetry.PhaseHives)
	if honey := g.hiveSystem.Update(dt, g.BaseRate(), g.flowerSystem.Grid()); honey > 0 {
		g.collector.RecordHoneyProduced(honey)
	}

	// 5. Bees
	g.perfCollector.StartPhase(telemetry.PhaseBees)
	if trips := g.beeSystem.Update(dt, g.flowerSystem.Grid()); trips > 0 {
		g.collector.RecordBeeTrips(trips)
	}

	// 6. Intruders
	g.perfCollector.StartPhase(telemetry.PhaseKids)
	g.updateKids(dt)

	// 7. Spawner
	g.perfCollector.StartPhase(telemetry.PhaseSpawner)
	if g.spawner.Update(dt, g.numKids, g.numHives) {
		g.spawnKid()
	}

	g.tick++
	g.simTime += dt

	// 8. Telemetry
	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// updateKids runs the intruder pass and applies its removals.
func (g *Game) updateKids(dt float64) {
	removed, ev := g.kidSystem.Update(dt)

	if ev.Thefts > 0 {
		g.collector.RecordThefts(ev.Thefts, ev.Stolen)
	}
	for i := 0; i < ev.Bored; i++ {
		g.collector.RecordKidBored()
	}
	for i := 0; i < ev.Escaped; i++ {
		g.collector.RecordKidEscaped()
	}

	for _, e := range removed {
		g.removeKid(e)
	}
}
