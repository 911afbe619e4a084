package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartSec float64 `csv:"-"`
	WindowEndSec   float64 `csv:"window_end"`
	Day            int     `csv:"day"`
	Season         string  `csv:"season"`

	// Population counts at window end
	Flowers int `csv:"flowers"`
	Hives   int `csv:"hives"`
	Bees    int `csv:"bees"`
	Kids    int `csv:"kids"`

	// Economy at window end
	Money        float64 `csv:"money"`
	WalletHoney  float64 `csv:"wallet_honey"`
	WalletWax    float64 `csv:"wallet_wax"`
	WalletPollen float64 `csv:"wallet_pollen"`
	HiveHoney    float64 `csv:"hive_honey"`
	UpgradeLevel int     `csv:"upgrade_level"`

	// Production and trade during window
	HoneyProduced  float64 `csv:"honey_produced"`
	HoneyHarvested float64 `csv:"honey_harvested"`
	HoneyStolen    float64 `csv:"honey_stolen"`
	Thefts         int     `csv:"thefts"`
	BeeTrips       int     `csv:"bee_trips"`
	SalesIncome    float64 `csv:"sales_income"`
	Upgrades       int     `csv:"upgrades"`

	// Placements and losses during window
	FlowersPlanted int `csv:"flowers_planted"`
	FlowersWilted  int `csv:"flowers_wilted"`
	FlowersRemoved int `csv:"flowers_removed"`
	HivesPlaced    int `csv:"hives_placed"`
	HivesRemoved   int `csv:"hives_removed"`

	// Intruders during window
	KidsSpawned int `csv:"kids_spawned"`
	KidsChased  int `csv:"kids_chased"`
	KidsBored   int `csv:"kids_bored"`
	KidsEscaped int `csv:"kids_escaped"`

	// Flower health distribution (sampled at window end)
	FlowerHealthMean float64 `csv:"flower_health_mean"`
	FlowerHealthStd  float64 `csv:"flower_health_std"`
	FlowerHealthP10  float64 `csv:"flower_health_p10"`
	FlowerHealthP50  float64 `csv:"flower_health_p50"`
	FlowerHealthP90  float64 `csv:"flower_health_p90"`
}

// Percentile returns the p-th empirical quantile of a sorted slice.
// p is clamped to [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// ComputeHealthStats calculates mean, std, and percentiles from health values.
// Std is the sample standard deviation; it is 0 for fewer than two values.
func ComputeHealthStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	if n == 1 {
		mean = values[0]
	} else {
		mean, std = stat.MeanStdDev(values, nil)
	}

	// Sort for percentiles
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("window_start", s.WindowStartSec),
		slog.Float64("window_end", s.WindowEndSec),
		slog.Int("day", s.Day),
		slog.String("season", s.Season),
		slog.Int("flowers", s.Flowers),
		slog.Int("hives", s.Hives),
		slog.Int("bees", s.Bees),
		slog.Int("kids", s.Kids),
		slog.Float64("money", s.Money),
		slog.Float64("wallet_honey", s.WalletHoney),
		slog.Float64("wallet_wax", s.WalletWax),
		slog.Float64("wallet_pollen", s.WalletPollen),
		slog.Float64("hive_honey", s.HiveHoney),
		slog.Int("upgrade_level", s.UpgradeLevel),
		slog.Float64("honey_produced", s.HoneyProduced),
		slog.Float64("honey_harvested", s.HoneyHarvested),
		slog.Float64("honey_stolen", s.HoneyStolen),
		slog.Int("thefts", s.Thefts),
		slog.Int("bee_trips", s.BeeTrips),
		slog.Float64("sales_income", s.SalesIncome),
		slog.Int("upgrades", s.Upgrades),
		slog.Int("flowers_planted", s.FlowersPlanted),
		slog.Int("flowers_wilted", s.FlowersWilted),
		slog.Int("flowers_removed", s.FlowersRemoved),
		slog.Int("hives_placed", s.HivesPlaced),
		slog.Int("hives_removed", s.HivesRemoved),
		slog.Int("kids_spawned", s.KidsSpawned),
		slog.Int("kids_chased", s.KidsChased),
		slog.Int("kids_bored", s.KidsBored),
		slog.Int("kids_escaped", s.KidsEscaped),
		slog.Float64("flower_health_mean", s.FlowerHealthMean),
		slog.Float64("flower_health_std", s.FlowerHealthStd),
		slog.Float64("flower_health_p10", s.FlowerHealthP10),
		slog.Float64("flower_health_p50", s.FlowerHealthP50),
		slog.Float64("flower_health_p90", s.FlowerHealthP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
