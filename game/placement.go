package game

import (
	"github.com/pthm-cable/hives/components"
	"github.com/pthm-cable/hives/systems"
)

// footprint is an axis-aligned rectangle centred on an entity.
type footprint struct {
	minX, minY, maxX, maxY float64
}

func footprintAt(pos components.Position, w, h float64) footprint {
	return footprint{
		minX: pos.X - w/2,
		minY: pos.Y - h/2,
		maxX: pos.X + w/2,
		maxY: pos.Y + h/2,
	}
}

func (f footprint) contains(x, y float64) bool {
	return x >= f.minX && x <= f.maxX && y >= f.minY && y <= f.maxY
}

// insidePlayable reports whether a footprint sits strictly inside the
// margin-inset area above the HUD strip.
func (g *Game) insidePlayable(f footprint) bool {
	m := g.cfg.Placement.Margin
	return m < f.minX && f.maxX < g.bounds.Width-m &&
		m < f.minY && f.maxY < g.bounds.Height-g.cfg.World.HUDHeight-m
}

// ValidHivePlacement reports whether a hive may be placed at pos.
func (g *Game) ValidHivePlacement(pos components.Position) bool {
	size := g.cfg.Hive.Size
	if !g.insidePlayable(footprintAt(pos, size, size)) {
		return false
	}

	query := g.hiveFilter.Query()
	for query.Next() {
		other, _ := query.Get()
		if systems.Distance(pos, *other) < g.cfg.Hive.MinSpacing {
			query.Close()
			return false
		}
	}
	return true
}

// ValidFlowerPlacement reports whether a flower may be placed at pos.
func (g *Game) ValidFlowerPlacement(pos components.Position) bool {
	size := g.cfg.Flowers.Size
	if !g.insidePlayable(footprintAt(pos, size, size)) {
		return false
	}

	query := g.flowerFilter.Query()
	for query.Next() {
		other, _ := query.Get()
		if systems.Distance(pos, *other) < g.cfg.Flowers.MinSpacing {
			query.Close()
			return false
		}
	}
	return true
}
