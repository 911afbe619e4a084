package telemetry

import (
	"log/slog"
	"time"
)

// Phase identifies one stage of Game.Step.
type Phase uint8

const (
	PhaseClock Phase = iota
	PhaseFlowers
	PhaseGrid
	PhaseHives
	PhaseBees
	PhaseKids
	PhaseSpawner
	PhaseTelemetry

	numPhases
)

var phaseNames = [numPhases]string{
	PhaseClock:     "clock",
	PhaseFlowers:   "flowers",
	PhaseGrid:      "grid",
	PhaseHives:     "hives",
	PhaseBees:      "bees",
	PhaseKids:      "kids",
	PhaseSpawner:   "spawner",
	PhaseTelemetry: "telemetry",
}

func (p Phase) String() string {
	if p < numPhases {
		return phaseNames[p]
	}
	return "unknown"
}

// Phases lists the step phases in execution order. Wilted flowers are swept
// in the flowers phase and the grid is rebuilt right after, so hives and
// bees always read a flower index without dead entries; kids run after bees
// so a hive removed by the player is gone before any kid retargets.
var Phases = [numPhases]Phase{
	PhaseClock, PhaseFlowers, PhaseGrid, PhaseHives,
	PhaseBees, PhaseKids, PhaseSpawner, PhaseTelemetry,
}

// PerfSample holds timing data for a single step.
type PerfSample struct {
	Tick   time.Duration
	Phases [numPhases]time.Duration
}

// PerfCollector keeps per-phase step timings over a ring of recent steps.
// Samples are fixed-size arrays, so timing a step does not allocate.
type PerfCollector struct {
	ring  []PerfSample
	next  int
	count int

	current    PerfSample
	tickStart  time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool

	// Frame timing (graphics mode)
	lastFrame     time.Time
	frameDuration time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize steps.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{ring: make([]PerfSample, windowSize)}
}

// StartTick begins timing a step.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.current = PerfSample{}
	p.inPhase = false
}

// StartPhase closes the running phase, if any, and starts timing ph.
func (p *PerfCollector) StartPhase(ph Phase) {
	now := time.Now()
	p.closePhase(now)
	p.phase = ph
	p.phaseStart = now
	p.inPhase = true
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.inPhase && p.phase < numPhases {
		p.current.Phases[p.phase] += now.Sub(p.phaseStart)
	}
	p.inPhase = false
}

// EndTick closes the last phase and stores the step in the ring.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.current.Tick = now.Sub(p.tickStart)

	p.ring[p.next] = p.current
	p.next = (p.next + 1) % len(p.ring)
	if p.count < len(p.ring) {
		p.count++
	}
}

// RecordFrame records frame timing for graphics mode.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frameDuration = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats holds step timings averaged over the collector's window.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration

	PhaseAvg [numPhases]time.Duration
	PhasePct [numPhases]float64 // Share of the average step
	Slowest  Phase              // Largest average; meaningless when Samples is 0

	Samples        int
	TicksPerSecond float64

	// Frame timing (graphics mode)
	FrameDuration time.Duration
	FPS           float64
}

// Stats aggregates the samples currently in the window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{Samples: p.count, FrameDuration: p.frameDuration}
	if p.frameDuration > 0 {
		s.FPS = float64(time.Second) / float64(p.frameDuration)
	}
	if p.count == 0 {
		return s
	}

	var total time.Duration
	var phaseSum [numPhases]time.Duration
	for i, sample := range p.ring[:p.count] {
		total += sample.Tick
		if i == 0 || sample.Tick < s.MinTickDuration {
			s.MinTickDuration = sample.Tick
		}
		s.MaxTickDuration = max(s.MaxTickDuration, sample.Tick)
		for ph, d := range sample.Phases {
			phaseSum[ph] += d
		}
	}

	n := time.Duration(p.count)
	s.AvgTickDuration = total / n
	for ph := range phaseSum {
		s.PhaseAvg[ph] = phaseSum[ph] / n
		if s.AvgTickDuration > 0 {
			s.PhasePct[ph] = float64(s.PhaseAvg[ph]) / float64(s.AvgTickDuration) * 100
		}
		if s.PhaseAvg[ph] > s.PhaseAvg[s.Slowest] {
			s.Slowest = Phase(ph)
		}
	}
	if s.AvgTickDuration > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTickDuration)
	}
	return s
}

// LogStats logs the window at info level, skipping phases under 0.1%.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
		"slowest", s.Slowest.String(),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for _, ph := range Phases {
		if pct := s.PhasePct[ph]; pct > 0.1 {
			attrs = append(attrs, ph.String()+"_pct", int(pct*10)/10.0)
		}
	}
	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
		slog.String("slowest", s.Slowest.String()),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, ph := range Phases {
		attrs = append(attrs, slog.Float64(ph.String()+"_pct", s.PhasePct[ph]))
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	WindowEnd    float64 `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	Slowest      string  `csv:"slowest"`
	ClockPct     float64 `csv:"clock_pct"`
	FlowersPct   float64 `csv:"flowers_pct"`
	GridPct      float64 `csv:"grid_pct"`
	HivesPct     float64 `csv:"hives_pct"`
	BeesPct      float64 `csv:"bees_pct"`
	KidsPct      float64 `csv:"kids_pct"`
	SpawnerPct   float64 `csv:"spawner_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the stats into a perf.csv row.
func (s PerfStats) ToCSV(windowEnd float64) PerfStatsCSV {
	row := PerfStatsCSV{
		WindowEnd:   windowEnd,
		AvgTickUS:   s.AvgTickDuration.Microseconds(),
		MinTickUS:   s.MinTickDuration.Microseconds(),
		MaxTickUS:   s.MaxTickDuration.Microseconds(),
		TicksPerSec: s.TicksPerSecond,
		FPS:         s.FPS,
	}
	if s.Samples > 0 {
		row.Slowest = s.Slowest.String()
	}
	pct := s.PhasePct
	row.ClockPct, row.FlowersPct, row.GridPct, row.HivesPct = pct[PhaseClock], pct[PhaseFlowers], pct[PhaseGrid], pct[PhaseHives]
	row.BeesPct, row.KidsPct, row.SpawnerPct, row.TelemetryPct = pct[PhaseBees], pct[PhaseKids], pct[PhaseSpawner], pct[PhaseTelemetry]
	return row
}
