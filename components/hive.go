package components

// Hive owns a swarm of bees and accumulates resources while flowers are nearby.
type Hive struct {
	Honey    float64 `inspect:"label,fmt:%.2f"`
	Wax      float64 `inspect:"label,fmt:%.2f"`
	Pollen   float64 `inspect:"label,fmt:%.2f"`
	Capacity int     `inspect:"label"`
	Returns  int     `inspect:"label"` // Bee trips completed; does not drive production
}

// Produce adds honey plus wax and pollen at the given ratios of it.
func (h *Hive) Produce(honey, waxRatio, pollenRatio float64) {
	if honey <= 0 {
		return
	}
	h.Honey += honey
	h.Wax += honey * waxRatio
	h.Pollen += honey * pollenRatio
}

// ReceiveBee is called when a bee completes its return trip.
func (h *Hive) ReceiveBee() {
	h.Returns++
}

// CanHarvest reports whether enough honey has accumulated.
func (h *Hive) CanHarvest(threshold float64) bool {
	return h.Honey >= threshold
}

// Yield is the amount of resources moved by a harvest.
type Yield struct {
	Honey, Wax, Pollen float64
}

// Harvest moves all resources into the wallet when honey reaches threshold.
// On failure nothing changes.
func (h *Hive) Harvest(w *Wallet, threshold float64) (Yield, bool) {
	if !h.CanHarvest(threshold) {
		return Yield{}, false
	}
	y := Yield{Honey: h.Honey, Wax: h.Wax, Pollen: h.Pollen}
	w.Honey += y.Honey
	w.Wax += y.Wax
	w.Pollen += y.Pollen
	h.Honey, h.Wax, h.Pollen = 0, 0, 0
	return y, true
}

// Steal removes up to amount of honey and returns what was taken.
// Stolen honey is gone; it is never credited anywhere.
func (h *Hive) Steal(amount float64) float64 {
	if h.Honey <= 0 || amount <= 0 {
		return 0
	}
	taken := amount
	if h.Honey < taken {
		taken = h.Honey
	}
	h.Honey -= taken
	return taken
}
