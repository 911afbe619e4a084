// Package main provides CMA-ES tuning of the scripted garden player.
package main

import (
	"math"

	"github.com/pthm-cable/hives/game"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Strategy key for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
	Integer bool    // Rounded before use
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the optimizable parameters, defaulting to base.
func NewParamVector(base game.Strategy) *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "act_interval", Path: "act_interval", Min: 0.2, Max: 5.0, Default: base.ActInterval},
			{Name: "max_hives", Path: "max_hives", Min: 1, Max: 10, Default: float64(base.MaxHives), Integer: true},
			{Name: "flowers_per_hive", Path: "flowers_per_hive", Min: 1, Max: 8, Default: float64(base.FlowersPerHive), Integer: true},
			{Name: "water_below", Path: "water_below", Min: 0.1, Max: 0.9, Default: base.WaterBelow},
			{Name: "sell_above", Path: "sell_above", Min: 0, Max: 50, Default: base.SellAbove},
			{Name: "upgrade_reserve", Path: "upgrade_reserve", Min: 0, Max: 300, Default: base.UpgradeReserve},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds and rounds integer parameters.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := math.Max(spec.Min, math.Min(spec.Max, v[i]))
		if spec.Integer {
			val = math.Round(val)
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToStrategy returns base with the parameter values applied.
// Order must match Specs order.
func (pv *ParamVector) ApplyToStrategy(base game.Strategy, values []float64) game.Strategy {
	c := pv.Clamp(values)
	s := base
	s.ActInterval = c[0]
	s.MaxHives = int(c[1])
	s.FlowersPerHive = int(c[2])
	s.WaterBelow = c[3]
	s.SellAbove = c[4]
	s.UpgradeReserve = c[5]
	return s
}

// ExtractFromStrategy reads the parameter values out of s.
func (pv *ParamVector) ExtractFromStrategy(s game.Strategy) []float64 {
	return []float64{
		s.ActInterval,
		float64(s.MaxHives),
		float64(s.FlowersPerHive),
		s.WaterBelow,
		s.SellAbove,
		s.UpgradeReserve,
	}
}
