package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseGrid)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseBees)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.Samples != 5 {
		t.Errorf("samples = %d, want 5", stats.Samples)
	}
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	if stats.PhaseAvg[PhaseGrid] <= 0 {
		t.Error("expected grid phase to be tracked")
	}
	if stats.PhaseAvg[PhaseBees] <= 0 {
		t.Error("expected bees phase to be tracked")
	}
	if stats.PhaseAvg[PhaseKids] != 0 {
		t.Errorf("kids phase never ran, got %v", stats.PhaseAvg[PhaseKids])
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseGrid)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.Samples != 5 {
		t.Errorf("samples = %d, want window size 5", stats.Samples)
	}
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration after window filled")
	}
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_SlowestPhase(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseFlowers)
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase(PhaseKids)
		time.Sleep(500 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.PhasePct[PhaseKids] <= stats.PhasePct[PhaseFlowers] {
		t.Errorf("expected kids (%v%%) > flowers (%v%%)", stats.PhasePct[PhaseKids], stats.PhasePct[PhaseFlowers])
	}
	if stats.Slowest != PhaseKids {
		t.Errorf("slowest = %s, want kids", stats.Slowest)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	if stats.AvgTickDuration != 0 || stats.Samples != 0 {
		t.Errorf("expected zero stats for empty collector, got %+v", stats)
	}
	if row := stats.ToCSV(0); row.Slowest != "" {
		t.Errorf("empty collector reported slowest phase %q", row.Slowest)
	}
}

func TestPhaseOrder(t *testing.T) {
	want := []string{"clock", "flowers", "grid", "hives", "bees", "kids", "spawner", "telemetry"}
	if len(Phases) != len(want) {
		t.Fatalf("len(Phases) = %d, want %d", len(Phases), len(want))
	}
	for i, ph := range Phases {
		if ph.String() != want[i] {
			t.Errorf("Phases[%d] = %s, want %s", i, ph, want[i])
		}
	}
	if got := Phase(200).String(); got != "unknown" {
		t.Errorf("out of range phase = %q, want unknown", got)
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	stats := PerfStats{
		AvgTickDuration: 250 * time.Microsecond,
		Samples:         3,
		Slowest:         PhaseBees,
	}
	stats.PhasePct[PhaseBees] = 40
	stats.PhasePct[PhaseKids] = 10

	row := stats.ToCSV(90)
	if row.WindowEnd != 90 || row.AvgTickUS != 250 {
		t.Errorf("unexpected row header fields: %+v", row)
	}
	if row.BeesPct != 40 || row.KidsPct != 10 || row.FlowersPct != 0 {
		t.Errorf("phase percentages not mapped: %+v", row)
	}
	if row.Slowest != "bees" {
		t.Errorf("slowest = %q, want bees", row.Slowest)
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()

	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("expected frame duration >= 15ms, got %v", stats.FrameDuration)
	}
	if stats.FPS <= 0 || stats.FPS > 70 {
		t.Errorf("expected FPS in (0, 70] with 16ms frame time, got %v", stats.FPS)
	}
}
