package systems

import (
	"math/rand"

	"github.com/pthm-cable/hives/config"
)

// Spawner decides when a new intruder enters the garden.
type Spawner struct {
	cfg   config.SpawnerConfig
	rng   *rand.Rand
	timer float64
}

// NewSpawner creates a spawner with a random initial countdown.
func NewSpawner(cfg config.SpawnerConfig, rng *rand.Rand) *Spawner {
	return &Spawner{
		cfg:   cfg,
		rng:   rng,
		timer: uniform(rng, cfg.InitialMin, cfg.InitialMax),
	}
}

// Timer returns the seconds left on the current countdown.
func (s *Spawner) Timer() float64 { return s.timer }

// Update counts down by dt and reports whether a kid should spawn now.
// On expiry the countdown restarts; the spawn roll is scaled by the new
// countdown, so long waits are more likely to end in a spawn. With no hives
// to target the spawner backs off for the idle interval instead.
func (s *Spawner) Update(dt float64, kidCount, hiveCount int) bool {
	s.timer -= dt
	if s.timer > 0 {
		return false
	}

	s.timer = uniform(s.rng, s.cfg.IntervalMin, s.cfg.IntervalMax)
	if kidCount >= s.cfg.MaxKids {
		return false
	}
	if s.rng.Float64() >= s.cfg.SpawnChance*(s.timer+1) {
		return false
	}
	if hiveCount == 0 {
		s.timer = uniform(s.rng, s.cfg.IdleMin, s.cfg.IdleMax)
		return false
	}
	return true
}
