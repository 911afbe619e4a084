package game

import (
	"github.com/mlange-42/ark/ecs"
)

// EntityAt returns the entity whose footprint contains (x, y).
// Kids take priority over hives, and hives over flowers, so a kid standing
// on a hive is what gets clicked.
func (g *Game) EntityAt(x, y float64) (ecs.Entity, bool) {
	kidW, kidH := g.cfg.Kid.Width, g.cfg.Kid.Height
	kq := g.kidFilter.Query()
	for kq.Next() {
		pos, _ := kq.Get()
		if footprintAt(*pos, kidW, kidH).contains(x, y) {
			e := kq.Entity()
			kq.Close()
			return e, true
		}
	}

	hiveSize := g.cfg.Hive.Size
	hq := g.hiveFilter.Query()
	for hq.Next() {
		pos, _ := hq.Get()
		if footprintAt(*pos, hiveSize, hiveSize).contains(x, y) {
			e := hq.Entity()
			hq.Close()
			return e, true
		}
	}

	flowerSize := g.cfg.Flowers.Size
	fq := g.flowerFilter.Query()
	for fq.Next() {
		pos, _ := fq.Get()
		if footprintAt(*pos, flowerSize, flowerSize).contains(x, y) {
			e := fq.Entity()
			fq.Close()
			return e, true
		}
	}

	return ecs.Entity{}, false
}

// Kind names what an entity is, for the front end.
type Kind uint8

const (
	KindNone Kind = iota
	KindFlower
	KindHive
	KindBee
	KindKid
)

func (k Kind) String() string {
	switch k {
	case KindFlower:
		return "flower"
	case KindHive:
		return "hive"
	case KindBee:
		return "bee"
	case KindKid:
		return "kid"
	default:
		return "none"
	}
}

// KindOf reports what e is, or KindNone if it is gone.
func (g *Game) KindOf(e ecs.Entity) Kind {
	switch {
	case g.isFlower(e):
		return KindFlower
	case g.isHive(e):
		return KindHive
	case g.alive(e) && g.beeMap.Has(e):
		return KindBee
	case g.isKid(e):
		return KindKid
	default:
		return KindNone
	}
}
