// Package components defines ECS components for the garden simulation.
package components

import "github.com/mlange-42/ark/ecs"

// Position represents an entity's world position.
type Position struct {
	X, Y float64
}

// BeeState is the behaviour state of a bee.
type BeeState uint8

const (
	BeeIdle      BeeState = iota // Resting in the hive
	BeeFlyingOut                 // Heading to a target flower
	BeeForaging                  // Gathering at the flower
	BeeReturning                 // Flying back to the hive
)

func (s BeeState) String() string {
	switch s {
	case BeeIdle:
		return "idle"
	case BeeFlyingOut:
		return "flying_out"
	case BeeForaging:
		return "foraging"
	case BeeReturning:
		return "returning"
	default:
		return "unknown"
	}
}

// Bee is an autonomous forager bound to one hive.
// Hive and Target are handles into the same world; the zero entity means none.
type Bee struct {
	Hive        ecs.Entity `inspect:"skip"`
	Target      ecs.Entity `inspect:"skip"`
	State       BeeState   `inspect:"enum"`
	ForageTimer float64    `inspect:"label,fmt:%.1fs"`
	Speed       float64    `inspect:"label,fmt:%.0f"`
}

// HasTarget reports whether the bee holds a target flower.
func (b *Bee) HasTarget() bool {
	return !b.Target.IsZero()
}

// KidState is the behaviour state of an intruder.
type KidState uint8

const (
	KidSpawning     KidState = iota // Just arrived at the map edge
	KidMovingToHive                 // Walking to the target hive
	KidStealing                     // At the hive
	KidFleeing                      // Running off the map
)

func (s KidState) String() string {
	switch s {
	case KidSpawning:
		return "spawning"
	case KidMovingToHive:
		return "moving_to_hive"
	case KidStealing:
		return "stealing"
	case KidFleeing:
		return "fleeing"
	default:
		return "unknown"
	}
}

// Kid is an intruder that tries to steal honey from the nearest hive.
type Kid struct {
	Target       ecs.Entity `inspect:"skip"`
	State        KidState   `inspect:"enum"`
	Speed        float64    `inspect:"label,fmt:%.0f"`
	DespawnTimer float64    `inspect:"label,fmt:%.1fs"`
	FleeTimer    float64    `inspect:"label,fmt:%.1fs"`
}

// ChaseAway sends the kid running regardless of its current state.
func (k *Kid) ChaseAway(chaseTime float64) {
	k.Flee(chaseTime)
}

// Flee switches to Fleeing with both timers set to d.
func (k *Kid) Flee(d float64) {
	k.State = KidFleeing
	k.FleeTimer = d
	k.DespawnTimer = d
}
