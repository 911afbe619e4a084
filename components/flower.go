package components

import "github.com/mlange-42/ark/ecs"

// Flower is a placed plant whose health decays unless watered.
type Flower struct {
	Type        string                  `inspect:"label"`
	Cost        float64                 `inspect:"label,fmt:$%.0f"`
	Health      float64                 `inspect:"bar,max:field:MaxHealth"`
	MaxHealth   float64                 `inspect:"label,fmt:%.0f"`
	WiltingRate float64                 `inspect:"label,fmt:%.2f/s"`
	Wilting     bool                    `inspect:"bool"`
	Pollinators map[ecs.Entity]struct{} `inspect:"count"`
}

// NewFlower creates a flower at full health that starts wilting immediately.
func NewFlower(kind string, cost, maxHealth, wiltingRate float64) Flower {
	return Flower{
		Type:        kind,
		Cost:        cost,
		Health:      maxHealth,
		MaxHealth:   maxHealth,
		WiltingRate: wiltingRate,
		Wilting:     true,
		Pollinators: make(map[ecs.Entity]struct{}),
	}
}

// Update applies wilting for dt seconds. Health never drops below zero;
// removing a dead flower is the caller's job.
func (f *Flower) Update(dt float64) {
	if !f.Wilting {
		return
	}
	f.Health -= f.WiltingRate * dt
	if f.Health < 0 {
		f.Health = 0
	}
}

// Water heals the flower by amount, capped at MaxHealth.
func (f *Flower) Water(amount float64) {
	f.Health += amount
	if f.Health > f.MaxHealth {
		f.Health = f.MaxHealth
	}
}

// Dead reports whether the flower has wilted away.
func (f *Flower) Dead() bool {
	return f.Health <= 0
}

// CanBePollinated reports whether bees may visit. Health must exceed threshold.
func (f *Flower) CanBePollinated(threshold float64) bool {
	return f.Health > threshold
}

// AddPollinator registers a visiting bee. Adding twice is a no-op.
func (f *Flower) AddPollinator(bee ecs.Entity) {
	if f.Pollinators == nil {
		f.Pollinators = make(map[ecs.Entity]struct{})
	}
	f.Pollinators[bee] = struct{}{}
}

// RemovePollinator unregisters a bee. Removing an absent bee is a no-op.
func (f *Flower) RemovePollinator(bee ecs.Entity) {
	delete(f.Pollinators, bee)
}

// HasPollinator reports whether bee is currently visiting.
func (f *Flower) HasPollinator(bee ecs.Entity) bool {
	_, ok := f.Pollinators[bee]
	return ok
}

// HealthRatio returns health as a fraction of MaxHealth.
func (f *Flower) HealthRatio() float64 {
	if f.MaxHealth <= 0 {
		return 0
	}
	return f.Health / f.MaxHealth
}
