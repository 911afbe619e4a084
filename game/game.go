// Package game owns the garden simulation: the entity world, the player's
// wallet, the per-frame tick and every player action.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/hives/components"
	"github.com/pthm-cable/hives/config"
	"github.com/pthm-cable/hives/systems"
	"github.com/pthm-cable/hives/telemetry"
)

// Options configures game initialization.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	OutputDir      string
	Config         *config.Config // nil = use global config.Cfg()

	// StatsCallback is called with each flushed WindowStats.
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the complete game state.
type Game struct {
	world  *ecs.World
	rng    *rand.Rand
	cfg    *config.Config
	bounds systems.Bounds

	// Entity mappers
	flowerMapper *ecs.Map2[components.Position, components.Flower]
	hiveMapper   *ecs.Map2[components.Position, components.Hive]
	beeMapper    *ecs.Map2[components.Position, components.Bee]
	kidMapper    *ecs.Map2[components.Position, components.Kid]

	// Entity filters
	flowerFilter *ecs.Filter2[components.Position, components.Flower]
	hiveFilter   *ecs.Filter2[components.Position, components.Hive]
	beeFilter    *ecs.Filter2[components.Position, components.Bee]
	kidFilter    *ecs.Filter2[components.Position, components.Kid]

	// Component mappers for lookups
	posMap    *ecs.Map[components.Position]
	flowerMap *ecs.Map[components.Flower]
	hiveMap   *ecs.Map[components.Hive]
	beeMap    *ecs.Map[components.Bee]
	kidMap    *ecs.Map[components.Kid]

	// Systems
	flowerSystem *systems.FlowerSystem
	hiveSystem   *systems.HiveSystem
	beeSystem    *systems.BeeSystem
	kidSystem    *systems.KidSystem
	clock        *systems.Clock
	spawner      *systems.Spawner

	// Player state
	wallet       components.Wallet
	upgradeLevel int

	// State
	tick       int32
	simTime    float64
	numFlowers int
	numHives   int
	numBees    int
	numKids    int

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	outputManager    *telemetry.OutputManager
	bookmarkDetector *telemetry.BookmarkDetector
	logStats         bool
	statsCallback    func(telemetry.WindowStats)

	// Scratch buffers
	removeBuf  []ecs.Entity
	healthsBuf []float64
}

// NewGameWithOptions creates a new game instance with the given options.
func NewGameWithOptions(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	world := ecs.NewWorld()
	rng := rand.New(rand.NewSource(opts.Seed))
	bounds := systems.Bounds{Width: cfg.Derived.WorldW, Height: cfg.Derived.WorldH}

	g := &Game{
		world:  world,
		rng:    rng,
		cfg:    cfg,
		bounds: bounds,

		flowerMapper: ecs.NewMap2[components.Position, components.Flower](world),
		hiveMapper:   ecs.NewMap2[components.Position, components.Hive](world),
		beeMapper:    ecs.NewMap2[components.Position, components.Bee](world),
		kidMapper:    ecs.NewMap2[components.Position, components.Kid](world),

		flowerFilter: ecs.NewFilter2[components.Position, components.Flower](world),
		hiveFilter:   ecs.NewFilter2[components.Position, components.Hive](world),
		beeFilter:    ecs.NewFilter2[components.Position, components.Bee](world),
		kidFilter:    ecs.NewFilter2[components.Position, components.Kid](world),

		posMap:    ecs.NewMap[components.Position](world),
		flowerMap: ecs.NewMap[components.Flower](world),
		hiveMap:   ecs.NewMap[components.Hive](world),
		beeMap:    ecs.NewMap[components.Bee](world),
		kidMap:    ecs.NewMap[components.Kid](world),

		wallet: components.Wallet{Money: cfg.Economy.StartingMoney},
	}

	// Flower grid cells are sized for the larger of the two flower queries
	cellSize := max(cfg.Bee.SearchRadius, cfg.Production.InfluenceRadius)
	g.flowerSystem = systems.NewFlowerSystem(world, bounds, cellSize)
	g.hiveSystem = systems.NewHiveSystem(world, cfg.Production)
	g.beeSystem = systems.NewBeeSystem(world, cfg.Bee, cfg.Flowers.PollinationThreshold, bounds, rng)
	g.kidSystem = systems.NewKidSystem(world, cfg.Kid, bounds)
	g.clock = systems.NewClock(cfg.Clock)
	g.spawner = systems.NewSpawner(cfg.Spawner, rng)

	// Telemetry
	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(statsWindow)
	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	g.bookmarkDetector = telemetry.NewBookmarkDetector(10)
	g.logStats = opts.LogStats
	g.statsCallback = opts.StatsCallback

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
		}
	}

	return g
}

// Close flushes and closes telemetry output.
func (g *Game) Close() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// Config returns the configuration the game runs with.
func (g *Game) Config() *config.Config { return g.cfg }

// Bounds returns the playable area.
func (g *Game) Bounds() systems.Bounds { return g.bounds }

// World returns the underlying entity world, for read-only inspection.
func (g *Game) World() *ecs.World { return g.world }

// Wallet returns a copy of the player's wallet.
func (g *Game) Wallet() components.Wallet { return g.wallet }

// Clock returns the game clock.
func (g *Game) Clock() *systems.Clock { return g.clock }

// Tick returns the number of simulation ticks run.
func (g *Game) Tick() int32 { return g.tick }

// SimTime returns the simulated seconds elapsed.
func (g *Game) SimTime() float64 { return g.simTime }

// UpgradeLevel returns the production upgrade level.
func (g *Game) UpgradeLevel() int { return g.upgradeLevel }

// UpgradeCost returns the price of the next production upgrade.
func (g *Game) UpgradeCost() float64 {
	return systems.UpgradeCost(g.cfg.Production, g.upgradeLevel)
}

// BaseRate returns honey per hive per second at the current upgrade level.
func (g *Game) BaseRate() float64 {
	return systems.BaseRate(g.cfg.Production, g.upgradeLevel)
}

// FlowerCount returns the number of live flowers.
func (g *Game) FlowerCount() int { return g.numFlowers }

// HiveCount returns the number of live hives.
func (g *Game) HiveCount() int { return g.numHives }

// BeeCount returns the number of live bees.
func (g *Game) BeeCount() int { return g.numBees }

// KidCount returns the number of intruders in the garden.
func (g *Game) KidCount() int { return g.numKids }

// PerfStats returns the rolling per-phase timings.
func (g *Game) PerfStats() telemetry.PerfStats { return g.perfCollector.Stats() }

// RecordFrame records frame timing for graphics mode.
func (g *Game) RecordFrame() { g.perfCollector.RecordFrame() }
