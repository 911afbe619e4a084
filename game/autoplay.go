package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/hives/components"
)

// Strategy holds the knobs of the scripted player.
type Strategy struct {
	ActInterval    float64 `yaml:"act_interval"` // Seconds between decisions
	MaxHives       int     `yaml:"max_hives"`
	FlowersPerHive int     `yaml:"flowers_per_hive"`
	FlowerType     string  `yaml:"flower_type"`
	WaterBelow     float64 `yaml:"water_below"`     // Water flowers under this health ratio
	SellAbove      float64 `yaml:"sell_above"`      // Sell once wallet honey exceeds this
	UpgradeReserve float64 `yaml:"upgrade_reserve"` // Money kept back after buying an upgrade
	ChaseKids      bool    `yaml:"chase_kids"`
}

// DefaultStrategy returns a balanced scripted player.
func DefaultStrategy() Strategy {
	return Strategy{
		ActInterval:    1.0,
		MaxHives:       4,
		FlowersPerHive: 3,
		FlowerType:     "Clover",
		WaterBelow:     0.5,
		SellAbove:      10,
		UpgradeReserve: 60,
		ChaseKids:      true,
	}
}

// LoadStrategy reads a strategy YAML file over DefaultStrategy.
// An empty path returns the defaults.
func LoadStrategy(path string) (Strategy, error) {
	s := DefaultStrategy()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading strategy file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing strategy file: %w", err)
	}
	return s, nil
}

// WriteYAML writes the strategy to a YAML file.
func (s Strategy) WriteYAML(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling strategy: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing strategy file: %w", err)
	}
	return nil
}

// Autoplayer drives a Game through its public actions, for headless runs
// and parameter tuning.
type Autoplayer struct {
	g     *Game
	s     Strategy
	rng   *rand.Rand
	timer float64

	rejected int // Actions the game turned down

	// Reused snapshots
	flowers []FlowerView
	hives   []HiveView
	kids    []KidView
}

// NewAutoplayer creates a scripted player for g.
func NewAutoplayer(g *Game, s Strategy, seed int64) *Autoplayer {
	if s.ActInterval <= 0 {
		s.ActInterval = 1
	}
	return &Autoplayer{g: g, s: s, rng: rand.New(rand.NewSource(seed))}
}

// Step advances the player's decision timer and acts when it fires.
func (a *Autoplayer) Step(dt float64) {
	a.timer += dt
	if a.timer < a.s.ActInterval {
		return
	}
	a.timer = 0
	a.act()
}

func (a *Autoplayer) act() {
	g := a.g
	a.flowers = g.Flowers(a.flowers[:0])
	a.hives = g.Hives(a.hives[:0])
	a.kids = g.Kids(a.kids[:0])

	if a.s.ChaseKids {
		for _, k := range a.kids {
			if k.State != components.KidFleeing {
				a.check("chase", g.ChaseAway(k.Entity))
			}
		}
	}

	for _, h := range a.hives {
		if h.Harvestable {
			_, err := g.Harvest(h.Entity)
			a.check("harvest", err)
		}
	}

	for _, f := range a.flowers {
		if f.HealthRatio < a.s.WaterBelow {
			a.check("water", g.Water(f.Entity))
		}
	}

	if w := g.Wallet(); w.Honey > a.s.SellAbove {
		_, err := g.SellAll()
		a.check("sell", err)
	}

	a.expand()

	if g.Wallet().Money-g.UpgradeCost() >= a.s.UpgradeReserve {
		a.check("upgrade", g.PurchaseUpgrade())
	}
}

// expand places a hive or a flower, whichever the garden lacks.
func (a *Autoplayer) expand() {
	g := a.g
	switch {
	case len(a.hives) == 0:
		c := g.bounds.Center()
		a.tryPlace("place_hive", c, 0, 120, func(p components.Position) error {
			_, err := g.PlaceHive(p.X, p.Y)
			return err
		})

	case len(a.flowers) < len(a.hives)*a.s.FlowersPerHive:
		home := a.hives[a.rng.Intn(len(a.hives))].Pos
		reach := g.cfg.Production.InfluenceRadius * 0.8
		a.tryPlace("place_flower", home, g.cfg.Hive.Size, reach, func(p components.Position) error {
			_, err := g.PlaceFlower(p.X, p.Y, a.s.FlowerType)
			return err
		})

	case len(a.hives) < a.s.MaxHives:
		home := a.hives[a.rng.Intn(len(a.hives))].Pos
		a.tryPlace("place_hive", home, g.cfg.Hive.MinSpacing*2, g.cfg.Production.InfluenceRadius*1.5, func(p components.Position) error {
			_, err := g.PlaceHive(p.X, p.Y)
			return err
		})
	}
}

// tryPlace samples points in the ring [minR, maxR] around center until place
// succeeds, runs out of money, or the attempts are used up. A failed
// placement counts as one rejection.
func (a *Autoplayer) tryPlace(action string, center components.Position, minR, maxR float64, place func(components.Position) error) bool {
	var err error
	for attempt := 0; attempt < 20; attempt++ {
		angle := a.rng.Float64() * 2 * math.Pi
		r := minR + a.rng.Float64()*(maxR-minR)
		p := components.Position{X: center.X + math.Cos(angle)*r, Y: center.Y + math.Sin(angle)*r}

		err = place(p)
		if err == nil {
			return true
		}
		if !errors.Is(err, ErrInvalidPlacement) {
			break // Funds or catalog problems won't change with the spot
		}
	}
	a.check(action, err)
	return false
}

// check records an action the game rejected.
func (a *Autoplayer) check(action string, err error) {
	if err == nil {
		return
	}
	a.rejected++
	slog.Debug("autoplay_rejected", "action", action, "error", err, "tick", a.g.Tick())
}

// Rejected returns how many actions the game has turned down so far.
func (a *Autoplayer) Rejected() int {
	return a.rejected
}
