package systems

import (
	"math"

	"github.com/pthm-cable/hives/components"
)

// Bounds is the playable area, [0, Width] x [0, Height].
type Bounds struct {
	Width, Height float64
}

// Center returns the middle of the playable area.
func (b Bounds) Center() components.Position {
	return components.Position{X: b.Width / 2, Y: b.Height / 2}
}

// Clamp pulls p back inside the area (edges inclusive).
func (b Bounds) Clamp(p *components.Position) {
	p.X = clamp(p.X, 0, b.Width)
	p.Y = clamp(p.Y, 0, b.Height)
}

// ContainsOpen reports whether p is strictly inside the area.
func (b Bounds) ContainsOpen(p components.Position) bool {
	return p.X > 0 && p.X < b.Width && p.Y > 0 && p.Y < b.Height
}

// Distance returns the straight-line distance between a and b.
func Distance(a, b components.Position) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// stepToward moves p toward target by step along the normalized direction.
// Overshoot is allowed; callers snap on arrival.
func stepToward(p *components.Position, target components.Position, dist, step float64) {
	if dist == 0 {
		return
	}
	p.X += (target.X - p.X) / dist * step
	p.Y += (target.Y - p.Y) / dist * step
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// uniform samples U[lo, hi].
func uniform(rng interface{ Float64() float64 }, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
