package systems

import "github.com/pthm-cable/hives/config"

// Season is one quarter of the garden year.
type Season uint8

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

func (s Season) String() string {
	switch s {
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Autumn:
		return "autumn"
	case Winter:
		return "winter"
	default:
		return "unknown"
	}
}

// Clock tracks elapsed game time, the day counter and the season.
type Clock struct {
	cfg  config.ClockConfig
	time float64 // Seconds into the current day
	day  int
}

// NewClock creates a clock at the start of cfg.StartDay.
func NewClock(cfg config.ClockConfig) *Clock {
	day := cfg.StartDay
	if day < 1 {
		day = 1
	}
	return &Clock{cfg: cfg, day: day}
}

// Advance moves the clock forward by dt and reports whether a day rolled over.
// A dt spanning several days advances the counter once per day.
func (c *Clock) Advance(dt float64) bool {
	if dt <= 0 {
		return false
	}
	c.time += dt
	rolled := false
	for c.time >= c.cfg.DayLength {
		c.time -= c.cfg.DayLength
		c.day++
		rolled = true
	}
	return rolled
}

// Day returns the current day, starting at 1.
func (c *Clock) Day() int { return c.day }

// Time returns the seconds elapsed in the current day.
func (c *Clock) Time() float64 { return c.time }

// TimeOfDay returns the fraction of the current day in [0, 1).
func (c *Clock) TimeOfDay() float64 {
	return c.time / c.cfg.DayLength
}

// IsNight reports whether the time of day falls outside [dawn, dusk].
func (c *Clock) IsNight() bool {
	t := c.TimeOfDay()
	return t < c.cfg.Dawn || t > c.cfg.Dusk
}

// Season returns the season for the current day.
func (c *Clock) Season() Season {
	per := c.cfg.DaysPerSeason
	if per <= 0 {
		return Spring
	}
	return Season(((c.day - 1) / per) % 4)
}
