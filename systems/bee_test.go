package systems

import (
	"testing"

	"github.com/pthm-cable/hives/components"
	"github.com/pthm-cable/hives/config"
)

func newTestBeeSystem(g *garden, launch float64) (*BeeSystem, *FlowerSystem) {
	cfg := config.Cfg().Bee
	cfg.LaunchChance = launch
	bees := NewBeeSystem(g.world, cfg, config.Cfg().Flowers.PollinationThreshold, g.bounds, g.rng)
	flowers := NewFlowerSystem(g.world, g.bounds, cfg.SearchRadius)
	return bees, flowers
}

func TestBeeLaunchesTowardReachableFlower(t *testing.T) {
	g := newGarden(t)
	hive := g.addHive(100, 100, 0)
	flower := g.addFlower(200, 100, 100)
	g.addFlower(900, 700, 100) // out of search radius
	bee := g.addBee(100, 100, NewBee(hive, 80))

	bees, flowers := newTestBeeSystem(g, 1)
	flowers.Reindex()
	bees.Update(0.1, flowers.Grid())

	_, b := g.bees.Get(bee)
	if b.State != components.BeeFlyingOut {
		t.Fatalf("state = %v, want flying_out", b.State)
	}
	if b.Target != flower {
		t.Errorf("target = %v, want the reachable flower %v", b.Target, flower)
	}
}

func TestBeeIgnoresWeakFlowers(t *testing.T) {
	g := newGarden(t)
	hive := g.addHive(100, 100, 0)
	g.addFlower(150, 100, 10) // at threshold, not above
	bee := g.addBee(100, 100, NewBee(hive, 80))

	bees, flowers := newTestBeeSystem(g, 1)
	flowers.Reindex()
	bees.Update(0.1, flowers.Grid())

	_, b := g.bees.Get(bee)
	if b.State != components.BeeIdle || b.HasTarget() {
		t.Errorf("bee launched toward a flower at the pollination threshold: %+v", *b)
	}
}

func TestBeeTargetRemovedMidFlight(t *testing.T) {
	g := newGarden(t)
	hive := g.addHive(100, 100, 0)
	flower := g.addFlower(180, 100, 100)
	bee := g.addBee(100, 100, components.Bee{Hive: hive, Target: flower, State: components.BeeFlyingOut, Speed: 80})

	g.world.RemoveEntity(flower)

	bees, flowers := newTestBeeSystem(g, 0)
	flowers.Reindex()
	bees.Update(0.1, flowers.Grid())

	_, b := g.bees.Get(bee)
	if b.State != components.BeeReturning {
		t.Errorf("state = %v, want returning", b.State)
	}
	if b.HasTarget() {
		t.Errorf("target not cleared: %v", b.Target)
	}
}

func TestBeeArrivesAndForages(t *testing.T) {
	g := newGarden(t)
	hive := g.addHive(100, 100, 0)
	flower := g.addFlower(103, 100, 100)
	bee := g.addBee(100, 100, components.Bee{Hive: hive, Target: flower, State: components.BeeFlyingOut, Speed: 80})

	bees, flowers := newTestBeeSystem(g, 0)
	flowers.Reindex()
	bees.Update(0.1, flowers.Grid())

	pos, b := g.bees.Get(bee)
	if b.State != components.BeeForaging {
		t.Fatalf("state = %v, want foraging", b.State)
	}
	if pos.X != 103 || pos.Y != 100 {
		t.Errorf("bee not snapped to flower: %+v", *pos)
	}
	cfg := config.Cfg().Bee
	if b.ForageTimer < cfg.ForageMin || b.ForageTimer > cfg.ForageMax {
		t.Errorf("forage timer %v outside [%v, %v]", b.ForageTimer, cfg.ForageMin, cfg.ForageMax)
	}
	_, f := g.flowers.Get(flower)
	if !f.HasPollinator(bee) {
		t.Error("bee not registered as pollinator")
	}
}

func TestBeeFinishesForaging(t *testing.T) {
	g := newGarden(t)
	hive := g.addHive(100, 100, 0)
	flower := g.addFlower(300, 100, 100)
	bee := g.addBee(300, 100, components.Bee{Hive: hive, Target: flower, State: components.BeeForaging, ForageTimer: 3, Speed: 80})
	_, f := g.flowers.Get(flower)
	f.AddPollinator(bee)

	bees, flowers := newTestBeeSystem(g, 0)
	flowers.Reindex()
	for i := 0; i < 3; i++ {
		bees.Update(1, flowers.Grid())
	}

	_, b := g.bees.Get(bee)
	if b.State != components.BeeReturning {
		t.Errorf("state = %v, want returning", b.State)
	}
	if b.HasTarget() {
		t.Errorf("target not cleared: %v", b.Target)
	}
	if f.HasPollinator(bee) {
		t.Error("bee still registered as pollinator")
	}
}

func TestBeeReturnsHome(t *testing.T) {
	g := newGarden(t)
	hive := g.addHive(100, 100, 0)
	bee := g.addBee(300, 100, components.Bee{Hive: hive, State: components.BeeReturning, Speed: 80})

	bees, flowers := newTestBeeSystem(g, 0)
	flowers.Reindex()

	arrivals := 0
	for i := 0; i < 40 && arrivals == 0; i++ {
		arrivals += bees.Update(0.1, flowers.Grid())
	}

	if arrivals != 1 {
		t.Fatalf("arrivals = %d, want 1", arrivals)
	}
	pos, b := g.bees.Get(bee)
	if b.State != components.BeeIdle {
		t.Errorf("state = %v, want idle", b.State)
	}
	if pos.X != 100 || pos.Y != 100 {
		t.Errorf("bee not snapped to hive: %+v", *pos)
	}
	_, h := g.hives.Get(hive)
	if h.Returns != 1 {
		t.Errorf("hive returns = %d, want 1", h.Returns)
	}
	if h.Honey != 0 {
		t.Errorf("bee return changed honey to %v", h.Honey)
	}
}

func TestBeeOrphanedGoesIdle(t *testing.T) {
	g := newGarden(t)
	hive := g.addHive(100, 100, 0)
	bee := g.addBee(300, 120, components.Bee{Hive: hive, State: components.BeeReturning, Speed: 80})
	g.world.RemoveEntity(hive)

	bees, flowers := newTestBeeSystem(g, 0)
	flowers.Reindex()
	bees.Update(0.1, flowers.Grid())

	pos, b := g.bees.Get(bee)
	if b.State != components.BeeIdle {
		t.Errorf("state = %v, want idle", b.State)
	}
	if pos.X != 300 || pos.Y != 120 {
		t.Errorf("orphaned bee moved to %+v", *pos)
	}
}

func TestBeeClampedToBounds(t *testing.T) {
	g := newGarden(t)
	hive := g.addHive(100, 100, 0)
	bee := g.addBee(-20, 900, components.Bee{Hive: hive, State: components.BeeIdle, Speed: 80})

	bees, flowers := newTestBeeSystem(g, 0)
	flowers.Reindex()
	bees.Update(0.1, flowers.Grid())

	pos, _ := g.bees.Get(bee)
	if pos.X != 0 || pos.Y != g.bounds.Height {
		t.Errorf("position %+v not clamped into %+v", *pos, g.bounds)
	}
}

