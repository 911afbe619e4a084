// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Clock      ClockConfig      `yaml:"clock"`
	Economy    EconomyConfig    `yaml:"economy"`
	Production ProductionConfig `yaml:"production"`
	Hive       HiveConfig       `yaml:"hive"`
	Flowers    FlowersConfig    `yaml:"flowers"`
	Bee        BeeConfig        `yaml:"bee"`
	Kid        KidConfig        `yaml:"kid"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Placement  PlacementConfig  `yaml:"placement"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the playable area dimensions.
type WorldConfig struct {
	Width     int     `yaml:"width"`      // 0 = use screen width
	Height    int     `yaml:"height"`     // 0 = use screen height
	HUDHeight float64 `yaml:"hud_height"` // Bottom strip reserved for the toolbar
}

// ClockConfig holds day/season timing.
type ClockConfig struct {
	DayLength     float64 `yaml:"day_length"`      // Seconds per game day
	StartDay      int     `yaml:"start_day"`       // Day counter at start
	DaysPerSeason int     `yaml:"days_per_season"` // Days before the season advances
	Dawn          float64 `yaml:"dawn"`            // Time-of-day ratio where daylight starts
	Dusk          float64 `yaml:"dusk"`            // Time-of-day ratio where night starts
}

// EconomyConfig holds wallet and market parameters.
type EconomyConfig struct {
	StartingMoney float64 `yaml:"starting_money"`
	HoneyPrice    float64 `yaml:"honey_price"`
	WaxPrice      float64 `yaml:"wax_price"`
	PollenPrice   float64 `yaml:"pollen_price"`
}

// ProductionConfig holds hive production and upgrade parameters.
type ProductionConfig struct {
	BaseRate        float64 `yaml:"base_rate"`         // Honey per hive per second at level 0
	UpgradeBonus    float64 `yaml:"upgrade_bonus"`     // Added to base rate per upgrade level
	Multiplier      float64 `yaml:"multiplier"`        // Global rate multiplier
	UpgradeBaseCost float64 `yaml:"upgrade_base_cost"` // Cost of the first upgrade
	UpgradeCostStep float64 `yaml:"upgrade_cost_step"` // Added cost per level
	InfluenceRadius float64 `yaml:"influence_radius"`  // Max hive-to-flower distance for production
	WaxRatio        float64 `yaml:"wax_ratio"`         // Wax produced per unit of honey
	PollenRatio     float64 `yaml:"pollen_ratio"`      // Pollen produced per unit of honey
}

// HiveConfig holds hive parameters.
type HiveConfig struct {
	Cost           float64 `yaml:"cost"`
	Capacity       int     `yaml:"capacity"`
	HoneyThreshold float64 `yaml:"honey_threshold"` // Minimum honey to harvest
	RefundFraction float64 `yaml:"refund_fraction"`
	Size           float64 `yaml:"size"`        // Square footprint edge
	MinSpacing     float64 `yaml:"min_spacing"` // Minimum distance between hives
}

// FlowerTypeConfig describes one entry of the flower catalog.
type FlowerTypeConfig struct {
	Name        string  `yaml:"name"`
	Cost        float64 `yaml:"cost"`
	Health      float64 `yaml:"health"`
	WiltingRate float64 `yaml:"wilting_rate"` // Health lost per second
}

// FlowersConfig holds flower parameters and the catalog.
type FlowersConfig struct {
	WaterAmount          float64            `yaml:"water_amount"`
	PollinationThreshold float64            `yaml:"pollination_threshold"` // Health must exceed this
	RefundFraction       float64            `yaml:"refund_fraction"`
	Size                 float64            `yaml:"size"`
	MinSpacing           float64            `yaml:"min_spacing"`
	Types                []FlowerTypeConfig `yaml:"types"`
}

// BeeConfig holds bee behaviour parameters.
type BeeConfig struct {
	Speed          float64 `yaml:"speed"`
	SearchRadius   float64 `yaml:"search_radius"`
	LaunchChance   float64 `yaml:"launch_chance"` // Per-tick chance an idle bee looks for a flower
	ForageMin      float64 `yaml:"forage_min"`
	ForageMax      float64 `yaml:"forage_max"`
	ArriveDistance float64 `yaml:"arrive_distance"`
}

// KidConfig holds intruder behaviour parameters.
type KidConfig struct {
	Speed           float64 `yaml:"speed"`
	FleeSpeedFactor float64 `yaml:"flee_speed_factor"`
	StealAmount     float64 `yaml:"steal_amount"`
	DespawnTime     float64 `yaml:"despawn_time"`
	FleeAfterTheft  float64 `yaml:"flee_after_theft"` // Flee/despawn timer after a successful theft
	FleeWhenEmpty   float64 `yaml:"flee_when_empty"`  // Flee/despawn timer when there is nothing to take
	ChaseTime       float64 `yaml:"chase_time"`       // Flee/despawn timer after being chased
	ArriveDistance  float64 `yaml:"arrive_distance"`
	SpawnMargin     int     `yaml:"spawn_margin"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
}

// SpawnerConfig holds intruder spawn timing.
type SpawnerConfig struct {
	InitialMin  float64 `yaml:"initial_min"`
	InitialMax  float64 `yaml:"initial_max"`
	IntervalMin float64 `yaml:"interval_min"`
	IntervalMax float64 `yaml:"interval_max"`
	IdleMin     float64 `yaml:"idle_min"` // Retry interval when there are no hives
	IdleMax     float64 `yaml:"idle_max"`
	SpawnChance float64 `yaml:"spawn_chance"` // Scaled by (next interval + 1)
	MaxKids     int     `yaml:"max_kids"`
}

// PlacementConfig holds placement validation parameters.
type PlacementConfig struct {
	Margin float64 `yaml:"margin"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Simulated seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WorldW      float64        // Effective world width
	WorldH      float64        // Effective world height
	FlowerIndex map[string]int // name -> index into Flowers.Types
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects configurations the simulation cannot run with.
func (c *Config) validate() error {
	if c.Clock.DayLength <= 0 {
		return fmt.Errorf("clock.day_length must be positive, got %v", c.Clock.DayLength)
	}
	if c.Bee.ForageMax < c.Bee.ForageMin {
		return fmt.Errorf("bee.forage_max (%v) below bee.forage_min (%v)", c.Bee.ForageMax, c.Bee.ForageMin)
	}
	if c.Spawner.IntervalMax < c.Spawner.IntervalMin || c.Spawner.IdleMax < c.Spawner.IdleMin ||
		c.Spawner.InitialMax < c.Spawner.InitialMin {
		return fmt.Errorf("spawner intervals must have max >= min")
	}
	seen := make(map[string]bool, len(c.Flowers.Types))
	for _, ft := range c.Flowers.Types {
		if ft.Name == "" {
			return fmt.Errorf("flower type with empty name")
		}
		if seen[ft.Name] {
			return fmt.Errorf("duplicate flower type %q", ft.Name)
		}
		if ft.Health <= 0 {
			return fmt.Errorf("flower type %q: health must be positive", ft.Name)
		}
		seen[ft.Name] = true
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	// World dimensions default to screen size if not specified
	worldW := c.World.Width
	if worldW == 0 {
		worldW = c.Screen.Width
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = c.Screen.Height
	}
	c.Derived.WorldW = float64(worldW)
	c.Derived.WorldH = float64(worldH)

	c.Derived.FlowerIndex = make(map[string]int, len(c.Flowers.Types))
	for i, ft := range c.Flowers.Types {
		c.Derived.FlowerIndex[ft.Name] = i
	}
}

// FlowerType looks up a catalog entry by name.
func (c *Config) FlowerType(name string) (FlowerTypeConfig, bool) {
	i, ok := c.Derived.FlowerIndex[name]
	if !ok {
		return FlowerTypeConfig{}, false
	}
	return c.Flowers.Types[i], true
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
