package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/hives/components"
	"github.com/pthm-cable/hives/config"
)

// BeeSystem runs the forage loop: Idle -> FlyingOut -> Foraging -> Returning -> Idle.
type BeeSystem struct {
	world     *ecs.World
	filter    *ecs.Filter2[components.Position, components.Bee]
	posMap    *ecs.Map[components.Position]
	flowerMap *ecs.Map[components.Flower]
	hiveMap   *ecs.Map[components.Hive]

	cfg                  config.BeeConfig
	pollinationThreshold float64
	bounds               Bounds
	rng                  *rand.Rand

	candidates []ecs.Entity
	nearby     []Neighbor
}

// NewBeeSystem creates a bee behaviour system.
func NewBeeSystem(w *ecs.World, cfg config.BeeConfig, pollinationThreshold float64, bounds Bounds, rng *rand.Rand) *BeeSystem {
	return &BeeSystem{
		world:                w,
		filter:               ecs.NewFilter2[components.Position, components.Bee](w),
		posMap:               ecs.NewMap[components.Position](w),
		flowerMap:            ecs.NewMap[components.Flower](w),
		hiveMap:              ecs.NewMap[components.Hive](w),
		cfg:                  cfg,
		pollinationThreshold: pollinationThreshold,
		bounds:               bounds,
		rng:                  rng,
	}
}

// NewBee returns an idle bee bound to hive.
func NewBee(hive ecs.Entity, speed float64) components.Bee {
	return components.Bee{Hive: hive, State: components.BeeIdle, Speed: speed}
}

// Update advances every bee by dt. flowers must index the live flowers.
// Returns the number of bees that arrived home this tick.
func (s *BeeSystem) Update(dt float64, flowers *SpatialGrid) int {
	arrivals := 0

	query := s.filter.Query()
	for query.Next() {
		pos, bee := query.Get()
		if s.step(query.Entity(), pos, bee, dt, flowers) {
			arrivals++
		}
		s.bounds.Clamp(pos)
	}
	return arrivals
}

// step runs one state-machine tick for a single bee and reports a completed return trip.
func (s *BeeSystem) step(e ecs.Entity, pos *components.Position, bee *components.Bee, dt float64, flowers *SpatialGrid) bool {
	switch bee.State {
	case components.BeeIdle:
		// Per-tick chance, not scaled by dt
		if s.rng.Float64() < s.cfg.LaunchChance {
			if target, ok := s.findFlower(*pos, flowers); ok {
				bee.Target = target
				bee.State = components.BeeFlyingOut
			}
		}

	case components.BeeFlyingOut:
		flower := s.liveFlower(bee.Target)
		if flower == nil {
			bee.Target = ecs.Entity{}
			bee.State = components.BeeReturning
			return false
		}
		target := *s.posMap.Get(bee.Target)
		dist := Distance(*pos, target)
		if dist < s.cfg.ArriveDistance {
			*pos = target
			bee.State = components.BeeForaging
			bee.ForageTimer = uniform(s.rng, s.cfg.ForageMin, s.cfg.ForageMax)
			flower.AddPollinator(e)
		} else {
			stepToward(pos, target, dist, bee.Speed*dt)
		}

	case components.BeeForaging:
		bee.ForageTimer -= dt
		if bee.ForageTimer <= 0 {
			if flower := s.liveFlower(bee.Target); flower != nil {
				flower.RemovePollinator(e)
			}
			bee.Target = ecs.Entity{}
			bee.State = components.BeeReturning
		}

	case components.BeeReturning:
		if !s.live(bee.Hive) || !s.hiveMap.Has(bee.Hive) {
			// Orphaned bees rest where they are
			bee.State = components.BeeIdle
			return false
		}
		home := *s.posMap.Get(bee.Hive)
		dist := Distance(*pos, home)
		if dist < s.cfg.ArriveDistance {
			*pos = home
			bee.State = components.BeeIdle
			s.hiveMap.Get(bee.Hive).ReceiveBee()
			return true
		}
		stepToward(pos, home, dist, bee.Speed*dt)
	}
	return false
}

// findFlower picks a random pollinatable flower within the search radius.
func (s *BeeSystem) findFlower(from components.Position, flowers *SpatialGrid) (ecs.Entity, bool) {
	s.nearby = flowers.QueryRadiusInto(s.nearby[:0], from, s.cfg.SearchRadius)
	s.candidates = s.candidates[:0]
	for _, n := range s.nearby {
		if f := s.liveFlower(n.E); f != nil && f.CanBePollinated(s.pollinationThreshold) {
			s.candidates = append(s.candidates, n.E)
		}
	}
	if len(s.candidates) == 0 {
		return ecs.Entity{}, false
	}
	return s.candidates[s.rng.Intn(len(s.candidates))], true
}

// liveFlower returns the flower behind e, or nil if e is gone or not a flower.
func (s *BeeSystem) liveFlower(e ecs.Entity) *components.Flower {
	if !s.live(e) || !s.flowerMap.Has(e) {
		return nil
	}
	return s.flowerMap.Get(e)
}

func (s *BeeSystem) live(e ecs.Entity) bool {
	return !e.IsZero() && s.world.Alive(e)
}
