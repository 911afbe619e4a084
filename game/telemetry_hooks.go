package game

import (
	"log/slog"

	"github.com/pthm-cable/hives/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.simTime) {
		return
	}

	stats := g.collector.Flush(g.simTime, g.gardenState())
	perfStats := g.perfCollector.Stats()

	// Call stats callback if provided
	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	// Write to CSV if output manager is enabled
	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndSec); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}

	for _, bm := range g.bookmarkDetector.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if g.outputManager != nil {
			if err := g.outputManager.WriteBookmark(bm); err != nil {
				slog.Error("failed to write bookmark", "error", err)
			}
		}
	}
}

// gardenState samples populations, the economy and flower health.
func (g *Game) gardenState() telemetry.GardenState {
	g.healthsBuf = g.flowerSystem.Healths(g.healthsBuf[:0])

	var hiveHoney float64
	query := g.hiveFilter.Query()
	for query.Next() {
		_, h := query.Get()
		hiveHoney += h.Honey
	}

	return telemetry.GardenState{
		Day:           g.clock.Day(),
		Season:        g.clock.Season().String(),
		Flowers:       g.numFlowers,
		Hives:         g.numHives,
		Bees:          g.numBees,
		Kids:          g.numKids,
		UpgradeLevel:  g.upgradeLevel,
		Money:         g.wallet.Money,
		WalletHoney:   g.wallet.Honey,
		WalletWax:     g.wallet.Wax,
		WalletPollen:  g.wallet.Pollen,
		HiveHoney:     hiveHoney,
		FlowerHealths: g.healthsBuf,
	}
}
