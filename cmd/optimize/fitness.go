package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/hives/components"
	"github.com/pthm-cable/hives/config"
	"github.com/pthm-cable/hives/game"
	"github.com/pthm-cable/hives/telemetry"
)

// FitnessEvaluator runs headless gardens with the scripted player and
// computes fitness.
type FitnessEvaluator struct {
	params      *ParamVector
	base        game.Strategy
	maxTicks    int32
	dt          float64
	seeds       []int64
	cfg         *config.Config
	statsWindow float64

	mu          sync.Mutex
	lastWorth   float64 // mean net worth from most recent Evaluate call
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, base game.Strategy, maxTicks int32, dt float64, seeds []int64, cfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		base:        base,
		maxTicks:    maxTicks,
		dt:          dt,
		seeds:       seeds,
		cfg:         cfg,
		statsWindow: cfg.Telemetry.StatsWindow,
	}
}

// LastResult returns the mean net worth and quality from the most recent evaluation.
func (fe *FitnessEvaluator) LastResult() (worth, quality float64) {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastWorth, fe.lastQuality
}

// runResult holds the results from a single garden run.
type runResult struct {
	netWorth    float64
	windowStats []telemetry.WindowStats // collected via StatsCallback each window
}

// Penalty on the spread of net worth across seeds.
const worthStdWeight = 0.5

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness is negative risk-adjusted net worth scaled by up to 20% for quality.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	s := fe.params.ApplyToStrategy(fe.base, x)

	worths := make([]float64, len(fe.seeds))
	qualities := make([]float64, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, seed int64) {
			defer wg.Done()
			r := fe.runGarden(s, seed)
			worths[idx] = r.netWorth
			qualities[idx] = computeQuality(r.windowStats)
		}(i, seed)
	}
	wg.Wait()

	meanWorth, stdWorth := stat.MeanStdDev(worths, nil)
	if len(worths) < 2 {
		stdWorth = 0
	}
	quality := stat.Mean(qualities, nil)

	fe.mu.Lock()
	fe.lastWorth = meanWorth
	fe.lastQuality = quality
	fe.mu.Unlock()

	return -((meanWorth - worthStdWeight*stdWorth) * (1.0 + 0.2*quality))
}

// runGarden plays one seed to maxTicks.
func (fe *FitnessEvaluator) runGarden(s game.Strategy, seed int64) *runResult {
	result := &runResult{}

	g := game.NewGameWithOptions(game.Options{
		Seed:           seed,
		Config:         fe.cfg,
		StatsWindowSec: fe.statsWindow,
		StatsCallback: func(stats telemetry.WindowStats) {
			result.windowStats = append(result.windowStats, stats)
		},
	})
	defer g.Close()

	player := game.NewAutoplayer(g, s, seed+1)
	for g.Tick() < fe.maxTicks {
		player.Step(fe.dt)
		g.Step(fe.dt)
	}

	result.netWorth = netWorth(g)
	return result
}

// netWorth values the garden at market prices: money, wallet stock,
// resources still in the hives, and the refund the player would get for
// removing every hive and flower.
func netWorth(g *game.Game) float64 {
	cfg := g.Config()
	w := g.Wallet()
	worth := w.Money
	for _, r := range components.Resources {
		worth += *w.Stock(r) * g.Price(r)
	}

	for _, h := range g.Hives(nil) {
		worth += h.Honey*g.Price(components.ResourceHoney) +
			h.Wax*g.Price(components.ResourceWax) +
			h.Pollen*g.Price(components.ResourcePollen)
		worth += cfg.Hive.Cost * cfg.Hive.RefundFraction
	}

	for _, f := range g.Flowers(nil) {
		if ft, ok := cfg.FlowerType(f.Type); ok {
			worth += ft.Cost * cfg.Flowers.RefundFraction
		}
	}
	return worth
}

// Quality component weights.
const (
	qualityWeightSurvival = 0.4
	qualityWeightSecurity = 0.3
	qualityWeightHealth   = 0.3

	qualityWarmupWindows = 1 // skip first N windows (garden still empty)
)

// computeQuality scores garden upkeep ∈ [0, 1] from window stats: how few
// flowers wilted, how little honey kids stole and how healthy the median
// flower stayed.
func computeQuality(windows []telemetry.WindowStats) float64 {
	if len(windows) <= qualityWarmupWindows {
		return 0
	}
	valid := windows[qualityWarmupWindows:]

	var planted, wilted int
	var produced, stolen float64
	health := make([]float64, 0, len(valid))
	for _, w := range valid {
		planted += w.FlowersPlanted
		wilted += w.FlowersWilted
		produced += w.HoneyProduced
		stolen += w.HoneyStolen
		if w.Flowers > 0 {
			health = append(health, w.FlowerHealthP50)
		}
	}

	survival := 1.0
	if planted > 0 {
		survival = 1 - float64(wilted)/float64(planted)
	}
	security := 0.0
	if produced > 0 {
		security = 1 - stolen/produced
	}
	healthScore := 0.0
	if len(health) > 0 {
		// Medians near the pollination threshold or below score low
		healthScore = 1 - math.Exp(-stat.Mean(health, nil)/50)
	}

	return clamp01(qualityWeightSurvival*clamp01(survival) +
		qualityWeightSecurity*clamp01(security) +
		qualityWeightHealth*healthScore)
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
