package systems

import (
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/hives/components"
	"github.com/pthm-cable/hives/config"
)

// KidEvents summarises what intruders did during one Update.
type KidEvents struct {
	Thefts  int     // Arrivals at a hive
	Stolen  float64 // Honey removed from hives
	Bored   int     // Despawned before reaching anything
	Escaped int     // Finished fleeing
}

// hiveRef is a hive snapshot taken before the kid pass.
type hiveRef struct {
	e   ecs.Entity
	pos components.Position
}

// KidSystem runs the intruder state machine.
type KidSystem struct {
	world   *ecs.World
	filter  *ecs.Filter2[components.Position, components.Kid]
	hives   *ecs.Filter2[components.Position, components.Hive]
	posMap  *ecs.Map[components.Position]
	hiveMap *ecs.Map[components.Hive]

	cfg    config.KidConfig
	bounds Bounds

	refs    []hiveRef
	removed []ecs.Entity
}

// NewKidSystem creates an intruder system.
func NewKidSystem(w *ecs.World, cfg config.KidConfig, bounds Bounds) *KidSystem {
	return &KidSystem{
		world:   w,
		filter:  ecs.NewFilter2[components.Position, components.Kid](w),
		hives:   ecs.NewFilter2[components.Position, components.Hive](w),
		posMap:  ecs.NewMap[components.Position](w),
		hiveMap: ecs.NewMap[components.Hive](w),
		cfg:     cfg,
		bounds:  bounds,
	}
}

// SpawnPosition picks a random point along one of the four map edges,
// inset by margin.
func SpawnPosition(rng *rand.Rand, bounds Bounds, margin int) components.Position {
	w, h := int(bounds.Width), int(bounds.Height)
	m := float64(margin)
	switch rng.Intn(4) {
	case 0: // top
		return components.Position{X: float64(randInclusive(rng, margin, w-margin)), Y: m}
	case 1: // bottom
		return components.Position{X: float64(randInclusive(rng, margin, w-margin)), Y: bounds.Height - m}
	case 2: // left
		return components.Position{X: m, Y: float64(randInclusive(rng, margin, h-margin))}
	default: // right
		return components.Position{X: bounds.Width - m, Y: float64(randInclusive(rng, margin, h-margin))}
	}
}

func randInclusive(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// NewKid creates an intruder at pos targeting the nearest hive, if any.
func (s *KidSystem) NewKid(pos components.Position) components.Kid {
	s.snapshotHives()
	target, _ := s.nearestHive(pos)
	return components.Kid{
		Target:       target,
		State:        components.KidSpawning,
		Speed:        s.cfg.Speed,
		DespawnTimer: s.cfg.DespawnTime,
	}
}

// Update advances every intruder by dt. Kids that leave are returned; the
// slice is reused on the next call and the caller removes the entities.
func (s *KidSystem) Update(dt float64) ([]ecs.Entity, KidEvents) {
	var ev KidEvents
	s.removed = s.removed[:0]
	s.snapshotHives()

	query := s.filter.Query()
	for query.Next() {
		pos, kid := query.Get()
		if s.step(pos, kid, dt, &ev) {
			s.removed = append(s.removed, query.Entity())
		}
	}
	return s.removed, ev
}

// step runs one tick for a single kid and reports whether it should be removed.
func (s *KidSystem) step(pos *components.Position, kid *components.Kid, dt float64, ev *KidEvents) bool {
	kid.DespawnTimer -= dt

	if kid.State == components.KidSpawning {
		if kid.Target.IsZero() {
			if kid.DespawnTimer <= 0 {
				ev.Bored++
				return true
			}
			return false
		}
		kid.State = components.KidMovingToHive
	}

	switch kid.State {
	case components.KidMovingToHive:
		if !s.isHive(kid.Target) {
			next, ok := s.nearestHive(*pos)
			if !ok {
				kid.Target = ecs.Entity{}
				kid.Flee(s.cfg.FleeWhenEmpty)
				return false
			}
			kid.Target = next
		}

		target := *s.posMap.Get(kid.Target)
		dist := Distance(*pos, target)
		if dist < s.cfg.ArriveDistance {
			*pos = target
			kid.State = components.KidStealing
			s.steal(kid, ev)
		} else {
			stepToward(pos, target, dist, kid.Speed*dt)
		}

	case components.KidStealing:
		// Theft resolves on arrival; nothing happens here.

	case components.KidFleeing:
		center := s.bounds.Center()
		dx, dy := pos.X-center.X, pos.Y-center.Y
		dist := Distance(*pos, center)
		if dist == 0 {
			dx, dy, dist = 1, 0, 1
		}
		step := kid.Speed * s.cfg.FleeSpeedFactor * dt
		pos.X += dx / dist * step
		pos.Y += dy / dist * step

		kid.FleeTimer -= dt
		if kid.FleeTimer <= 0 || !s.bounds.ContainsOpen(*pos) {
			ev.Escaped++
			return true
		}
		return false
	}

	if kid.DespawnTimer <= 0 {
		slog.Debug("kid_bored", "x", pos.X, "y", pos.Y)
		ev.Bored++
		return true
	}
	return false
}

// steal takes honey from the target hive and sends the kid running.
func (s *KidSystem) steal(kid *components.Kid, ev *KidEvents) {
	ev.Thefts++
	hive := s.hiveMap.Get(kid.Target)
	if taken := hive.Steal(s.cfg.StealAmount); taken > 0 {
		ev.Stolen += taken
		slog.Info("honey_stolen", "amount", taken, "hive_honey_left", hive.Honey)
		kid.Flee(s.cfg.FleeAfterTheft)
		return
	}
	kid.Flee(s.cfg.FleeWhenEmpty)
}

// snapshotHives records hive positions for nearest-hive lookups.
func (s *KidSystem) snapshotHives() {
	s.refs = s.refs[:0]
	query := s.hives.Query()
	for query.Next() {
		pos, _ := query.Get()
		s.refs = append(s.refs, hiveRef{e: query.Entity(), pos: *pos})
	}
}

// nearestHive returns the closest hive in the snapshot.
func (s *KidSystem) nearestHive(from components.Position) (ecs.Entity, bool) {
	best := -1
	bestDist := 0.0
	for i, r := range s.refs {
		d := Distance(from, r.pos)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return ecs.Entity{}, false
	}
	return s.refs[best].e, true
}

func (s *KidSystem) isHive(e ecs.Entity) bool {
	return !e.IsZero() && s.world.Alive(e) && s.hiveMap.Has(e)
}
