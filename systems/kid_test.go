package systems

import (
	"testing"

	"github.com/pthm-cable/hives/components"
	"github.com/pthm-cable/hives/config"
)

func TestKidTheft(t *testing.T) {
	tests := []struct {
		name      string
		honey     float64
		wantHoney float64
		wantFlee  float64
		wantTaken float64
	}{
		{"plenty", 12, 7, 3, 5},
		{"exactly steal amount", 5, 0, 3, 5},
		{"less than steal amount", 3, 0, 3, 3},
		{"empty", 0, 0, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGarden(t)
			hive := g.addHive(500, 400, tt.honey)
			kids := NewKidSystem(g.world, config.Cfg().Kid, g.bounds)
			kid := g.addKid(505, 400, kids.NewKid(components.Position{X: 505, Y: 400}))

			removed, ev := kids.Update(0.01)
			if len(removed) != 0 {
				t.Fatalf("kid removed on arrival")
			}

			_, h := g.hives.Get(hive)
			if !approx(h.Honey, tt.wantHoney) {
				t.Errorf("hive honey = %v, want %v", h.Honey, tt.wantHoney)
			}
			if !approx(ev.Stolen, tt.wantTaken) {
				t.Errorf("stolen = %v, want %v", ev.Stolen, tt.wantTaken)
			}
			if ev.Thefts != 1 {
				t.Errorf("thefts = %d, want 1", ev.Thefts)
			}

			pos, k := g.kids.Get(kid)
			if k.State != components.KidFleeing {
				t.Errorf("state = %v, want fleeing", k.State)
			}
			if k.FleeTimer != tt.wantFlee || k.DespawnTimer != tt.wantFlee {
				t.Errorf("timers = %v/%v, want %v", k.FleeTimer, k.DespawnTimer, tt.wantFlee)
			}
			if pos.X != 500 || pos.Y != 400 {
				t.Errorf("kid not snapped to hive: %+v", *pos)
			}
		})
	}
}

func TestKidWalksToNearestHive(t *testing.T) {
	g := newGarden(t)
	g.addHive(900, 600, 10)
	near := g.addHive(200, 100, 10)
	kids := NewKidSystem(g.world, config.Cfg().Kid, g.bounds)
	k := kids.NewKid(components.Position{X: 50, Y: 100})
	if k.Target != near {
		t.Fatalf("target = %v, want nearest hive %v", k.Target, near)
	}
	kid := g.addKid(50, 100, k)

	kids.Update(1)

	pos, got := g.kids.Get(kid)
	if got.State != components.KidMovingToHive {
		t.Errorf("state = %v, want moving_to_hive", got.State)
	}
	want := 50 + config.Cfg().Kid.Speed
	if !approx(pos.X, want) || pos.Y != 100 {
		t.Errorf("position = %+v, want x=%v", *pos, want)
	}
}

func TestKidRetargetsWhenHiveRemoved(t *testing.T) {
	g := newGarden(t)
	first := g.addHive(200, 100, 10)
	second := g.addHive(800, 100, 10)
	kids := NewKidSystem(g.world, config.Cfg().Kid, g.bounds)
	kid := g.addKid(100, 100, kids.NewKid(components.Position{X: 100, Y: 100}))

	g.world.RemoveEntity(first)
	kids.Update(0.1)

	_, k := g.kids.Get(kid)
	if k.Target != second {
		t.Errorf("target = %v, want remaining hive %v", k.Target, second)
	}
}

func TestKidFleesWhenNoHivesLeft(t *testing.T) {
	g := newGarden(t)
	hive := g.addHive(200, 100, 10)
	kids := NewKidSystem(g.world, config.Cfg().Kid, g.bounds)
	kid := g.addKid(100, 100, kids.NewKid(components.Position{X: 100, Y: 100}))

	g.world.RemoveEntity(hive)
	kids.Update(0.1)

	_, k := g.kids.Get(kid)
	if k.State != components.KidFleeing {
		t.Fatalf("state = %v, want fleeing", k.State)
	}
	want := config.Cfg().Kid.FleeWhenEmpty
	if k.FleeTimer != want || k.DespawnTimer != want {
		t.Errorf("timers = %v/%v, want %v", k.FleeTimer, k.DespawnTimer, want)
	}
	if !k.Target.IsZero() {
		t.Errorf("target not cleared")
	}
}

func TestKidGetsBoredWithoutHives(t *testing.T) {
	g := newGarden(t)
	kids := NewKidSystem(g.world, config.Cfg().Kid, g.bounds)
	kid := g.addKid(50, 300, kids.NewKid(components.Position{X: 50, Y: 300}))

	for i := 0; i < 4; i++ {
		if removed, _ := kids.Update(1); len(removed) != 0 {
			t.Fatalf("kid removed after %d s", i+1)
		}
	}
	removed, ev := kids.Update(1)
	if len(removed) != 1 || removed[0] != kid {
		t.Fatalf("removed = %v, want [%v]", removed, kid)
	}
	if ev.Bored != 1 {
		t.Errorf("bored = %d, want 1", ev.Bored)
	}
}

func TestKidFleeing(t *testing.T) {
	tests := []struct {
		name        string
		x, y        float64
		timer       float64
		dt          float64
		wantRemoved bool
		wantDX      float64
	}{
		{"moves away from center", 600, 384, 3, 0.1, false, 9},
		{"exactly at center moves right", 512, 384, 3, 0.1, false, 9},
		{"timer lapses", 600, 384, 0.05, 0.1, true, 0},
		{"leaves the area", 1020, 384, 3, 0.1, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGarden(t)
			kids := NewKidSystem(g.world, config.Cfg().Kid, g.bounds)
			kid := g.addKid(tt.x, tt.y, components.Kid{State: components.KidFleeing, Speed: 60, FleeTimer: tt.timer, DespawnTimer: tt.timer})

			removed, ev := kids.Update(tt.dt)
			if got := len(removed) == 1; got != tt.wantRemoved {
				t.Fatalf("removed = %v, want %v", got, tt.wantRemoved)
			}
			if tt.wantRemoved {
				if ev.Escaped != 1 {
					t.Errorf("escaped = %d, want 1", ev.Escaped)
				}
				return
			}
			pos, _ := g.kids.Get(kid)
			if !approx(pos.X-tt.x, tt.wantDX) || pos.Y != tt.y {
				t.Errorf("moved to %+v, want dx=%v", *pos, tt.wantDX)
			}
		})
	}
}

func TestKidChaseAway(t *testing.T) {
	k := components.Kid{State: components.KidMovingToHive, DespawnTimer: 1}
	k.ChaseAway(3)
	if k.State != components.KidFleeing || k.FleeTimer != 3 || k.DespawnTimer != 3 {
		t.Errorf("ChaseAway: %+v", k)
	}
}

func TestSpawnPositionOnEdge(t *testing.T) {
	g := newGarden(t)
	margin := config.Cfg().Kid.SpawnMargin
	m := float64(margin)
	for i := 0; i < 200; i++ {
		p := SpawnPosition(g.rng, g.bounds, margin)
		onEdge := p.Y == m || p.Y == g.bounds.Height-m || p.X == m || p.X == g.bounds.Width-m
		if !onEdge {
			t.Fatalf("spawn %+v not on an inset edge", p)
		}
		if p.X < m || p.X > g.bounds.Width-m || p.Y < m || p.Y > g.bounds.Height-m {
			t.Fatalf("spawn %+v outside inset area", p)
		}
	}
}
