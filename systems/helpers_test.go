package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/hives/components"
	"github.com/pthm-cable/hives/config"
)

func init() {
	config.MustInit("")
}

// garden is a small test world with mappers for every entity kind.
type garden struct {
	world   *ecs.World
	flowers *ecs.Map2[components.Position, components.Flower]
	hives   *ecs.Map2[components.Position, components.Hive]
	bees    *ecs.Map2[components.Position, components.Bee]
	kids    *ecs.Map2[components.Position, components.Kid]
	bounds  Bounds
	rng     *rand.Rand
}

func newGarden(t *testing.T) *garden {
	t.Helper()
	w := ecs.NewWorld()
	return &garden{
		world:   w,
		flowers: ecs.NewMap2[components.Position, components.Flower](w),
		hives:   ecs.NewMap2[components.Position, components.Hive](w),
		bees:    ecs.NewMap2[components.Position, components.Bee](w),
		kids:    ecs.NewMap2[components.Position, components.Kid](w),
		bounds:  Bounds{Width: 1024, Height: 768},
		rng:     rand.New(rand.NewSource(1)),
	}
}

func (g *garden) addFlower(x, y, health float64) ecs.Entity {
	f := components.NewFlower("Clover", 15, 100, 0.05)
	f.Health = health
	return g.flowers.NewEntity(&components.Position{X: x, Y: y}, &f)
}

func (g *garden) addHive(x, y, honey float64) ecs.Entity {
	return g.hives.NewEntity(&components.Position{X: x, Y: y}, &components.Hive{Honey: honey, Capacity: 5})
}

func (g *garden) addBee(x, y float64, bee components.Bee) ecs.Entity {
	return g.bees.NewEntity(&components.Position{X: x, Y: y}, &bee)
}

func (g *garden) addKid(x, y float64, kid components.Kid) ecs.Entity {
	return g.kids.NewEntity(&components.Position{X: x, Y: y}, &kid)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
