// Package telemetry provides garden health tracking, bookmarking, and CSV output.
package telemetry

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec float64

	// Current window tracking
	windowStartSec float64

	// Event counters for current window
	honeyProduced  float64
	honeyHarvested float64
	honeyStolen    float64
	thefts         int
	flowersPlanted int
	flowersWilted  int
	flowersRemoved int
	hivesPlaced    int
	hivesRemoved   int
	kidsSpawned    int
	kidsChased     int
	kidsBored      int
	kidsEscaped    int
	beeTrips       int
	salesIncome    float64
	upgrades       int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
func NewCollector(windowDurationSec float64) *Collector {
	if windowDurationSec <= 0 {
		windowDurationSec = 1
	}
	return &Collector{windowDurationSec: windowDurationSec}
}

// RecordHoneyProduced records hive production.
func (c *Collector) RecordHoneyProduced(amount float64) {
	c.honeyProduced += amount
}

// RecordHarvest records honey moved from a hive to the wallet.
func (c *Collector) RecordHarvest(honey float64) {
	c.honeyHarvested += honey
}

// RecordThefts records kids reaching hives and the honey they took.
func (c *Collector) RecordThefts(n int, stolen float64) {
	c.thefts += n
	c.honeyStolen += stolen
}

// RecordFlowerPlanted records a flower placement.
func (c *Collector) RecordFlowerPlanted() {
	c.flowersPlanted++
}

// RecordFlowerWilted records a flower dying of neglect.
func (c *Collector) RecordFlowerWilted() {
	c.flowersWilted++
}

// RecordFlowerRemoved records a flower removed by the player.
func (c *Collector) RecordFlowerRemoved() {
	c.flowersRemoved++
}

// RecordHivePlaced records a hive placement.
func (c *Collector) RecordHivePlaced() {
	c.hivesPlaced++
}

// RecordHiveRemoved records a hive removed by the player.
func (c *Collector) RecordHiveRemoved() {
	c.hivesRemoved++
}

// RecordKidSpawned records an intruder entering the garden.
func (c *Collector) RecordKidSpawned() {
	c.kidsSpawned++
}

// RecordKidChased records the player chasing a kid away.
func (c *Collector) RecordKidChased() {
	c.kidsChased++
}

// RecordKidBored records a kid leaving before reaching a hive.
func (c *Collector) RecordKidBored() {
	c.kidsBored++
}

// RecordKidEscaped records a kid running off after fleeing.
func (c *Collector) RecordKidEscaped() {
	c.kidsEscaped++
}

// RecordBeeTrips records completed forage round trips.
func (c *Collector) RecordBeeTrips(n int) {
	c.beeTrips += n
}

// RecordSale records market income.
func (c *Collector) RecordSale(income float64) {
	c.salesIncome += income
}

// RecordUpgrade records a production upgrade purchase.
func (c *Collector) RecordUpgrade() {
	c.upgrades++
}

// ShouldFlush returns true if enough simulated time has passed to flush the window.
func (c *Collector) ShouldFlush(simTime float64) bool {
	return simTime-c.windowStartSec >= c.windowDurationSec
}

// GardenState is the population and economy snapshot taken at window end.
type GardenState struct {
	Day           int
	Season        string
	Flowers       int
	Hives         int
	Bees          int
	Kids          int
	UpgradeLevel  int
	Money         float64
	WalletHoney   float64
	WalletWax     float64
	WalletPollen  float64
	HiveHoney     float64   // Honey waiting in hives
	FlowerHealths []float64 // Health of every live flower
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(simTime float64, state GardenState) WindowStats {
	healthMean, healthStd, healthP10, healthP50, healthP90 := ComputeHealthStats(state.FlowerHealths)

	stats := WindowStats{
		WindowStartSec: c.windowStartSec,
		WindowEndSec:   simTime,
		Day:            state.Day,
		Season:         state.Season,

		Flowers: state.Flowers,
		Hives:   state.Hives,
		Bees:    state.Bees,
		Kids:    state.Kids,

		Money:        state.Money,
		WalletHoney:  state.WalletHoney,
		WalletWax:    state.WalletWax,
		WalletPollen: state.WalletPollen,
		HiveHoney:    state.HiveHoney,
		UpgradeLevel: state.UpgradeLevel,

		HoneyProduced:  c.honeyProduced,
		HoneyHarvested: c.honeyHarvested,
		HoneyStolen:    c.honeyStolen,
		Thefts:         c.thefts,
		BeeTrips:       c.beeTrips,
		SalesIncome:    c.salesIncome,
		Upgrades:       c.upgrades,

		FlowersPlanted: c.flowersPlanted,
		FlowersWilted:  c.flowersWilted,
		FlowersRemoved: c.flowersRemoved,
		HivesPlaced:    c.hivesPlaced,
		HivesRemoved:   c.hivesRemoved,

		KidsSpawned: c.kidsSpawned,
		KidsChased:  c.kidsChased,
		KidsBored:   c.kidsBored,
		KidsEscaped: c.kidsEscaped,

		FlowerHealthMean: healthMean,
		FlowerHealthStd:  healthStd,
		FlowerHealthP10:  healthP10,
		FlowerHealthP50:  healthP50,
		FlowerHealthP90:  healthP90,
	}

	c.reset(simTime)
	return stats
}

func (c *Collector) reset(simTime float64) {
	*c = Collector{
		windowDurationSec: c.windowDurationSec,
		windowStartSec:    simTime,
	}
}
