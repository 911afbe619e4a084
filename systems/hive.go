package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/hives/components"
	"github.com/pthm-cable/hives/config"
)

// HiveSystem accrues hive resources while flowers are within reach.
type HiveSystem struct {
	filter *ecs.Filter2[components.Position, components.Hive]
	cfg    config.ProductionConfig
}

// NewHiveSystem creates a hive production system.
func NewHiveSystem(w *ecs.World, cfg config.ProductionConfig) *HiveSystem {
	return &HiveSystem{
		filter: ecs.NewFilter2[components.Position, components.Hive](w),
		cfg:    cfg,
	}
}

// Update runs production for dt seconds at baseRate honey per second.
// Production is all-or-nothing per hive: one flower inside the influence
// radius is enough for the full rate, none yields nothing.
// Returns the total honey produced across all hives.
func (s *HiveSystem) Update(dt, baseRate float64, flowers *SpatialGrid) float64 {
	if dt <= 0 || baseRate <= 0 {
		return 0
	}

	var total float64
	query := s.filter.Query()
	for query.Next() {
		pos, hive := query.Get()
		if !flowers.AnyWithin(*pos, s.cfg.InfluenceRadius) {
			continue
		}
		honey := baseRate * dt
		hive.Produce(honey, s.cfg.WaxRatio, s.cfg.PollenRatio)
		total += honey
	}
	return total
}

// BaseRate computes honey per hive per second for an upgrade level.
func BaseRate(cfg config.ProductionConfig, level int) float64 {
	return (cfg.BaseRate + float64(level)*cfg.UpgradeBonus) * cfg.Multiplier
}

// UpgradeCost returns the price of the next upgrade from level.
func UpgradeCost(cfg config.ProductionConfig, level int) float64 {
	return cfg.UpgradeBaseCost + float64(level)*cfg.UpgradeCostStep
}
