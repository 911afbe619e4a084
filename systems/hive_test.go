package systems

import (
	"testing"

	"github.com/pthm-cable/hives/config"
)

func TestHiveProduction(t *testing.T) {
	cfg := config.Cfg().Production

	tests := []struct {
		name    string
		flowers [][2]float64
		want    float64
	}{
		{"no flowers", nil, 0},
		{"flower in range", [][2]float64{{200, 100}}, cfg.BaseRate * 10},
		{"several flowers in range", [][2]float64{{200, 100}, {100, 200}, {150, 150}}, cfg.BaseRate * 10},
		{"flower out of range", [][2]float64{{100 + cfg.InfluenceRadius, 100}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGarden(t)
			hive := g.addHive(100, 100, 0)
			for _, f := range tt.flowers {
				g.addFlower(f[0], f[1], 100)
			}

			flowers := NewFlowerSystem(g.world, g.bounds, cfg.InfluenceRadius)
			flowers.Reindex()
			hives := NewHiveSystem(g.world, cfg)

			var total float64
			for i := 0; i < 10; i++ {
				total += hives.Update(1, BaseRate(cfg, 0), flowers.Grid())
			}

			_, h := g.hives.Get(hive)
			if !approx(h.Honey, tt.want) {
				t.Errorf("honey = %v, want %v", h.Honey, tt.want)
			}
			if !approx(total, tt.want) {
				t.Errorf("reported total = %v, want %v", total, tt.want)
			}
			if !approx(h.Wax, tt.want*cfg.WaxRatio) || !approx(h.Pollen, tt.want*cfg.PollenRatio) {
				t.Errorf("wax/pollen = %v/%v", h.Wax, h.Pollen)
			}
		})
	}
}

func TestBaseRateAndUpgradeCost(t *testing.T) {
	cfg := config.Cfg().Production
	tests := []struct {
		level    int
		wantRate float64
		wantCost float64
	}{
		{0, 0.1, 75},
		{1, 0.125, 125},
		{4, 0.2, 275},
	}
	for _, tt := range tests {
		if got := BaseRate(cfg, tt.level); !approx(got, tt.wantRate) {
			t.Errorf("BaseRate(%d) = %v, want %v", tt.level, got, tt.wantRate)
		}
		if got := UpgradeCost(cfg, tt.level); !approx(got, tt.wantCost) {
			t.Errorf("UpgradeCost(%d) = %v, want %v", tt.level, got, tt.wantCost)
		}
	}
}

func TestFlowerSystemReportsWilted(t *testing.T) {
	g := newGarden(t)
	healthy := g.addFlower(100, 100, 50)
	dying := g.addFlower(200, 200, 0.01)

	flowers := NewFlowerSystem(g.world, g.bounds, 100)
	wilted := flowers.Update(1)

	if len(wilted) != 1 || wilted[0] != dying {
		t.Fatalf("wilted = %v, want [%v]", wilted, dying)
	}
	_, f := g.flowers.Get(healthy)
	if !approx(f.Health, 50-0.05) {
		t.Errorf("healthy flower health = %v", f.Health)
	}

	g.world.RemoveEntity(dying)
	flowers.Reindex()
	if n := flowers.Grid().Len(); n != 1 {
		t.Errorf("grid holds %d flowers after reindex, want 1", n)
	}
	if got := flowers.Healths(nil); len(got) != 1 {
		t.Errorf("Healths returned %d values, want 1", len(got))
	}
}
