package telemetry

import (
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p10", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.1, 1},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9},
		{"clamped above", []float64{1, 2, 3}, 1.5, 3},
		{"clamped below", []float64{1, 2, 3}, -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeHealthStats(t *testing.T) {
	// Unsorted on purpose
	values := []float64{80, 20, 60, 40, 100}
	mean, std, p10, p50, p90 := ComputeHealthStats(values)

	if math.Abs(mean-60) > 0.001 {
		t.Errorf("mean = %v, want 60", mean)
	}
	// Sample std of 20,40,60,80,100 is sqrt(1000)
	if math.Abs(std-math.Sqrt(1000)) > 0.001 {
		t.Errorf("std = %v, want %v", std, math.Sqrt(1000))
	}
	if p10 != 20 || p50 != 60 || p90 != 100 {
		t.Errorf("percentiles = %v/%v/%v, want 20/60/100", p10, p50, p90)
	}
	if values[0] != 80 {
		t.Error("input slice was reordered")
	}
}

func TestComputeHealthStatsSmall(t *testing.T) {
	mean, std, p10, p50, p90 := ComputeHealthStats(nil)
	if mean != 0 || std != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty slice should return all zeros")
	}

	mean, std, _, p50, _ = ComputeHealthStats([]float64{42})
	if mean != 42 || std != 0 || p50 != 42 {
		t.Errorf("single value: mean %v std %v p50 %v", mean, std, p50)
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(30)

	if c.ShouldFlush(29.9) {
		t.Error("flush requested before window elapsed")
	}
	if !c.ShouldFlush(30) {
		t.Error("no flush at window end")
	}

	c.RecordHoneyProduced(1.5)
	c.RecordHoneyProduced(2.5)
	c.RecordThefts(2, 5)
	c.RecordKidSpawned()
	c.RecordKidChased()
	c.RecordBeeTrips(3)
	c.RecordSale(12)
	c.RecordFlowerPlanted()
	c.RecordFlowerWilted()

	stats := c.Flush(30, GardenState{
		Day:           2,
		Season:        "spring",
		Flowers:       2,
		Hives:         1,
		Bees:          5,
		Money:         88,
		FlowerHealths: []float64{50, 100},
	})

	if stats.HoneyProduced != 4 || stats.HoneyStolen != 5 || stats.Thefts != 2 {
		t.Errorf("honey counters: %+v", stats)
	}
	if stats.KidsSpawned != 1 || stats.KidsChased != 1 || stats.BeeTrips != 3 {
		t.Errorf("event counters: %+v", stats)
	}
	if stats.SalesIncome != 12 || stats.FlowersPlanted != 1 || stats.FlowersWilted != 1 {
		t.Errorf("economy counters: %+v", stats)
	}
	if stats.Flowers != 2 || stats.Bees != 5 || stats.Money != 88 || stats.Day != 2 {
		t.Errorf("state not copied: %+v", stats)
	}
	if stats.FlowerHealthMean != 75 {
		t.Errorf("health mean = %v, want 75", stats.FlowerHealthMean)
	}
	if stats.WindowStartSec != 0 || stats.WindowEndSec != 30 {
		t.Errorf("window = [%v, %v], want [0, 30]", stats.WindowStartSec, stats.WindowEndSec)
	}

	// Counters reset and the next window starts where the last one ended
	next := c.Flush(60, GardenState{})
	if next.HoneyProduced != 0 || next.Thefts != 0 || next.KidsSpawned != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if next.WindowStartSec != 30 {
		t.Errorf("next window start = %v, want 30", next.WindowStartSec)
	}
	if c.ShouldFlush(80) {
		t.Error("flush requested 20s into a 30s window")
	}
}
