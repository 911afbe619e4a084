package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/hives/components"
)

// Rejected player actions. A rejected action changes nothing.
var (
	ErrInsufficientFunds = errors.New("not enough money")
	ErrInvalidPlacement  = errors.New("invalid placement location")
	ErrUnknownFlowerType = errors.New("unknown flower type")
	ErrNotAFlower        = errors.New("not a flower")
	ErrNotAHive          = errors.New("not a hive")
	ErrNotAKid           = errors.New("not a kid")
	ErrNothingToHarvest  = errors.New("not enough honey to harvest")
	ErrNoSuchEntity      = errors.New("nothing to remove there")
	ErrNothingToSell     = errors.New("nothing to sell")
)

// PlaceHive buys a hive centred on (x, y) and releases its bees.
func (g *Game) PlaceHive(x, y float64) (ecs.Entity, error) {
	pos := components.Position{X: x, Y: y}
	if !g.ValidHivePlacement(pos) {
		return ecs.Entity{}, ErrInvalidPlacement
	}
	cost := g.cfg.Hive.Cost
	if !g.wallet.Spend(cost) {
		return ecs.Entity{}, fmt.Errorf("hive costs %.0f: %w", cost, ErrInsufficientFunds)
	}

	e := g.spawnHive(pos)
	g.collector.RecordHivePlaced()
	slog.Info("hive_placed", "x", x, "y", y, "cost", cost, "money", g.wallet.Money)
	return e, nil
}

// PlaceFlower buys a flower of the named catalog type centred on (x, y).
func (g *Game) PlaceFlower(x, y float64, kind string) (ecs.Entity, error) {
	ft, ok := g.cfg.FlowerType(kind)
	if !ok {
		return ecs.Entity{}, fmt.Errorf("%q: %w", kind, ErrUnknownFlowerType)
	}
	pos := components.Position{X: x, Y: y}
	if !g.ValidFlowerPlacement(pos) {
		return ecs.Entity{}, ErrInvalidPlacement
	}
	if !g.wallet.Spend(ft.Cost) {
		return ecs.Entity{}, fmt.Errorf("%s costs %.0f: %w", ft.Name, ft.Cost, ErrInsufficientFunds)
	}

	e := g.spawnFlower(pos, ft)
	g.collector.RecordFlowerPlanted()
	slog.Info("flower_planted", "type", ft.Name, "x", x, "y", y, "cost", ft.Cost, "money", g.wallet.Money)
	return e, nil
}

// Water restores a flower's health by the configured amount.
func (g *Game) Water(e ecs.Entity) error {
	if !g.isFlower(e) {
		return ErrNotAFlower
	}
	flower := g.flowerMap.Get(e)
	flower.Water(g.cfg.Flowers.WaterAmount)
	slog.Debug("flower_watered", "type", flower.Type, "health", flower.Health)
	return nil
}

// Harvest moves a hive's resources into the wallet.
func (g *Game) Harvest(e ecs.Entity) (components.Yield, error) {
	if !g.isHive(e) {
		return components.Yield{}, ErrNotAHive
	}
	hive := g.hiveMap.Get(e)
	y, ok := hive.Harvest(&g.wallet, g.cfg.Hive.HoneyThreshold)
	if !ok {
		return components.Yield{}, fmt.Errorf("%.1f of %.0f honey: %w", hive.Honey, g.cfg.Hive.HoneyThreshold, ErrNothingToHarvest)
	}

	g.collector.RecordHarvest(y.Honey)
	slog.Info("hive_harvested", "honey", y.Honey, "wax", y.Wax, "pollen", y.Pollen)
	return y, nil
}

// Remove takes a hive, flower or kid out of the garden.
// Hives and flowers refund part of their cost; a hive takes its bees with it.
func (g *Game) Remove(e ecs.Entity) error {
	switch {
	case g.isHive(e):
		refund := g.cfg.Hive.Cost * g.cfg.Hive.RefundFraction
		g.removeHive(e)
		g.wallet.Money += refund
		g.collector.RecordHiveRemoved()
		slog.Info("hive_removed", "refund", refund, "bees", g.numBees)

	case g.isFlower(e):
		flower := g.flowerMap.Get(e)
		refund := flower.Cost * g.cfg.Flowers.RefundFraction
		kind := flower.Type
		g.removeFlower(e)
		g.wallet.Money += refund
		g.collector.RecordFlowerRemoved()
		slog.Info("flower_removed", "type", kind, "refund", refund)

	case g.isKid(e):
		g.removeKid(e)
		g.collector.RecordKidChased()
		slog.Info("kid_dismissed")

	default:
		return ErrNoSuchEntity
	}
	return nil
}

// ChaseAway sends a kid running off the map.
func (g *Game) ChaseAway(e ecs.Entity) error {
	if !g.isKid(e) {
		return ErrNotAKid
	}
	kid := g.kidMap.Get(e)
	kid.ChaseAway(g.cfg.Kid.ChaseTime)
	g.collector.RecordKidChased()
	slog.Info("kid_chased")
	return nil
}

// PurchaseUpgrade buys the next production upgrade level.
func (g *Game) PurchaseUpgrade() error {
	cost := g.UpgradeCost()
	if !g.wallet.Spend(cost) {
		return fmt.Errorf("upgrade costs %.0f: %w", cost, ErrInsufficientFunds)
	}
	g.upgradeLevel++
	g.collector.RecordUpgrade()
	slog.Info("upgrade_purchased", "level", g.upgradeLevel, "cost", cost, "base_rate", g.BaseRate())
	return nil
}

// Price returns the market price per unit of r.
func (g *Game) Price(r components.Resource) float64 {
	switch r {
	case components.ResourceHoney:
		return g.cfg.Economy.HoneyPrice
	case components.ResourceWax:
		return g.cfg.Economy.WaxPrice
	case components.ResourcePollen:
		return g.cfg.Economy.PollenPrice
	default:
		return 0
	}
}

// Sell converts the wallet's whole stock of r into money.
func (g *Game) Sell(r components.Resource) (float64, error) {
	amount, income := g.wallet.Sell(r, g.Price(r))
	if amount <= 0 {
		return 0, fmt.Errorf("%s: %w", r, ErrNothingToSell)
	}
	g.collector.RecordSale(income)
	slog.Info("resource_sold", "resource", r.String(), "amount", amount, "income", income, "money", g.wallet.Money)
	return income, nil
}

// SellAll sells every resource in stock.
func (g *Game) SellAll() (float64, error) {
	var total float64
	sold := false
	for _, r := range components.Resources {
		income, err := g.Sell(r)
		if errors.Is(err, ErrNothingToSell) {
			continue
		}
		total += income
		sold = true
	}
	if !sold {
		return 0, ErrNothingToSell
	}
	return total, nil
}
