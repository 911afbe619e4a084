package components

// Resource identifies a sellable hive product.
type Resource uint8

const (
	ResourceHoney Resource = iota
	ResourceWax
	ResourcePollen
)

func (r Resource) String() string {
	switch r {
	case ResourceHoney:
		return "honey"
	case ResourceWax:
		return "wax"
	case ResourcePollen:
		return "pollen"
	default:
		return "unknown"
	}
}

// Resources lists every sellable resource in display order.
var Resources = []Resource{ResourceHoney, ResourceWax, ResourcePollen}

// Wallet holds the player's money and harvested stock.
type Wallet struct {
	Money  float64
	Honey  float64
	Wax    float64
	Pollen float64
}

// CanAfford reports whether the wallet holds at least cost money.
func (w *Wallet) CanAfford(cost float64) bool {
	return w.Money >= cost
}

// Spend deducts cost if affordable and reports success.
func (w *Wallet) Spend(cost float64) bool {
	if !w.CanAfford(cost) {
		return false
	}
	w.Money -= cost
	return true
}

// Stock returns a pointer to the stock of r, or nil for an unknown resource.
func (w *Wallet) Stock(r Resource) *float64 {
	switch r {
	case ResourceHoney:
		return &w.Honey
	case ResourceWax:
		return &w.Wax
	case ResourcePollen:
		return &w.Pollen
	default:
		return nil
	}
}

// Sell converts all stock of r into money at price per unit.
// Returns the amount sold and the income.
func (w *Wallet) Sell(r Resource, price float64) (amount, income float64) {
	stock := w.Stock(r)
	if stock == nil || *stock <= 0 {
		return 0, 0
	}
	amount = *stock
	income = amount * price
	*stock = 0
	w.Money += income
	return amount, income
}
