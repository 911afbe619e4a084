package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/hives/config"
)

func TestClockAdvance(t *testing.T) {
	c := NewClock(config.ClockConfig{DayLength: 60, StartDay: 1, DaysPerSeason: 7, Dawn: 0.25, Dusk: 0.75})

	if c.Advance(59.5) {
		t.Fatal("rolled over before the day ended")
	}
	if c.Day() != 1 {
		t.Errorf("day = %d, want 1", c.Day())
	}
	if !c.Advance(1) {
		t.Fatal("no rollover at end of day")
	}
	if c.Day() != 2 || !approx(c.Time(), 0.5) {
		t.Errorf("after rollover: day %d time %v, want 2 / 0.5", c.Day(), c.Time())
	}
	if c.Advance(0) || c.Advance(-1) {
		t.Error("non-positive dt reported a rollover")
	}

	c.Advance(150)
	if c.Day() != 4 {
		t.Errorf("multi-day advance: day = %d, want 4", c.Day())
	}
}

func TestClockTimeOfDay(t *testing.T) {
	tests := []struct {
		elapsed   float64
		wantNight bool
	}{
		{0, true},
		{10, true},
		{15, false},
		{30, false},
		{45, false},
		{50, true},
	}
	for _, tt := range tests {
		c := NewClock(config.ClockConfig{DayLength: 60, StartDay: 1, DaysPerSeason: 7, Dawn: 0.25, Dusk: 0.75})
		c.Advance(tt.elapsed)
		if got := c.IsNight(); got != tt.wantNight {
			t.Errorf("IsNight at %vs = %v, want %v", tt.elapsed, got, tt.wantNight)
		}
		if tod := c.TimeOfDay(); tod < 0 || tod >= 1 {
			t.Errorf("TimeOfDay at %vs = %v, outside [0,1)", tt.elapsed, tod)
		}
	}
}

func TestClockSeasons(t *testing.T) {
	tests := []struct {
		startDay int
		want     Season
	}{
		{1, Spring},
		{7, Spring},
		{8, Summer},
		{15, Autumn},
		{22, Winter},
		{29, Spring},
	}
	for _, tt := range tests {
		c := NewClock(config.ClockConfig{DayLength: 60, StartDay: tt.startDay, DaysPerSeason: 7})
		if got := c.Season(); got != tt.want {
			t.Errorf("day %d: season = %v, want %v", tt.startDay, got, tt.want)
		}
	}
}

func TestSpawner(t *testing.T) {
	cfg := config.SpawnerConfig{
		InitialMin: 5, InitialMax: 15,
		IntervalMin: 5, IntervalMax: 20,
		IdleMin: 10, IdleMax: 25,
		SpawnChance: 1, // chance*(timer+1) >= 1, so every expiry passes the roll
		MaxKids:     3,
	}

	t.Run("initial countdown", func(t *testing.T) {
		s := NewSpawner(cfg, rand.New(rand.NewSource(1)))
		if s.Timer() < 5 || s.Timer() > 15 {
			t.Errorf("initial timer %v outside [5, 15]", s.Timer())
		}
		if s.Update(1, 0, 1) {
			t.Error("spawned before the countdown expired")
		}
	})

	t.Run("spawns on expiry", func(t *testing.T) {
		s := NewSpawner(cfg, rand.New(rand.NewSource(1)))
		if !s.Update(20, 0, 1) {
			t.Fatal("no spawn on expiry")
		}
		if s.Timer() < 5 || s.Timer() > 20 {
			t.Errorf("reset timer %v outside [5, 20]", s.Timer())
		}
	})

	t.Run("respects max kids", func(t *testing.T) {
		s := NewSpawner(cfg, rand.New(rand.NewSource(1)))
		if s.Update(20, 3, 1) {
			t.Error("spawned at max kids")
		}
	})

	t.Run("backs off without hives", func(t *testing.T) {
		s := NewSpawner(cfg, rand.New(rand.NewSource(1)))
		if s.Update(20, 0, 0) {
			t.Error("spawned with no hives")
		}
		if s.Timer() < 10 || s.Timer() > 25 {
			t.Errorf("idle timer %v outside [10, 25]", s.Timer())
		}
	})

	t.Run("zero chance never spawns", func(t *testing.T) {
		quiet := cfg
		quiet.SpawnChance = 0
		s := NewSpawner(quiet, rand.New(rand.NewSource(1)))
		for i := 0; i < 50; i++ {
			if s.Update(20, 0, 1) {
				t.Fatal("spawned with zero chance")
			}
		}
	})
}
