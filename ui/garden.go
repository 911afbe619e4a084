package ui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hives/components"
	"github.com/pthm-cable/hives/config"
	"github.com/pthm-cable/hives/game"
	"github.com/pthm-cable/hives/systems"
)

// Season ground colors
var groundColors = [...]rl.Color{
	systems.Spring: {R: 96, G: 168, B: 80, A: 255},
	systems.Summer: {R: 120, G: 170, B: 60, A: 255},
	systems.Autumn: {R: 150, G: 130, B: 60, A: 255},
	systems.Winter: {R: 170, G: 180, B: 180, A: 255},
}

// Petal colors by catalog name; unknown types fall back to white.
var petalColors = map[string]rl.Color{
	"Clover":    {R: 230, G: 140, B: 200, A: 255},
	"Lavender":  {R: 160, G: 120, B: 220, A: 255},
	"Sunflower": {R: 250, G: 210, B: 40, A: 255},
	"Dandelion": {R: 250, G: 240, B: 120, A: 255},
}

var (
	colorHive        = rl.Color{R: 200, G: 140, B: 40, A: 255}
	colorHiveReady   = rl.Color{R: 250, G: 200, B: 60, A: 255}
	colorBee         = rl.Color{R: 250, G: 220, B: 30, A: 255}
	colorBeeStripe   = rl.Color{R: 30, G: 30, B: 30, A: 255}
	colorKid         = rl.Color{R: 200, G: 70, B: 70, A: 255}
	colorKidFleeing  = rl.Color{R: 240, G: 150, B: 150, A: 255}
	colorInfluence   = rl.Color{R: 255, G: 220, B: 120, A: 90}
	colorSearch      = rl.Color{R: 120, G: 200, B: 255, A: 90}
	colorRouteOut    = rl.Color{R: 255, G: 255, B: 255, A: 120}
	colorRouteHome   = rl.Color{R: 255, G: 200, B: 60, A: 120}
	colorFootprint   = rl.Color{R: 255, G: 255, B: 255, A: 160}
	colorNight       = rl.Color{R: 10, G: 20, B: 60, A: 0}
	maxNightDarkness = 140.0
)

// GardenRenderer draws the garden entities from game snapshots.
type GardenRenderer struct {
	renderer *Renderer
	cfg      *config.Config

	// Reused snapshots
	flowers []game.FlowerView
	hives   []game.HiveView
	bees    []game.BeeView
	kids    []game.KidView
}

// NewGardenRenderer creates a garden renderer.
func NewGardenRenderer(cfg *config.Config) *GardenRenderer {
	return &GardenRenderer{renderer: NewRenderer(), cfg: cfg}
}

// Draw renders the ground, every entity and the enabled overlays.
func (gr *GardenRenderer) Draw(g *game.Game, overlays *OverlayRegistry) {
	gr.flowers = g.Flowers(gr.flowers[:0])
	gr.hives = g.Hives(gr.hives[:0])
	gr.bees = g.Bees(gr.bees[:0])
	gr.kids = g.Kids(gr.kids[:0])

	b := g.Bounds()
	rl.DrawRectangle(0, 0, int32(b.Width), int32(b.Height), groundColors[g.Clock().Season()])

	gr.drawRanges(overlays)
	gr.drawFlowers(overlays.IsEnabled(OverlayHealthBars))
	gr.drawHives(overlays.IsEnabled(OverlayHoneyLevels))
	if overlays.IsEnabled(OverlayBeeRoutes) {
		gr.drawRoutes(g)
	}
	gr.drawBees()
	gr.drawKids()
	if overlays.IsEnabled(OverlayFootprints) {
		gr.drawFootprints()
	}

	gr.drawNight(g.Clock(), b)
}

func (gr *GardenRenderer) drawRanges(overlays *OverlayRegistry) {
	var radius float64
	var color rl.Color
	switch {
	case overlays.IsEnabled(OverlayInfluence):
		radius, color = gr.cfg.Production.InfluenceRadius, colorInfluence
	case overlays.IsEnabled(OverlaySearchRadius):
		radius, color = gr.cfg.Bee.SearchRadius, colorSearch
	default:
		return
	}
	for _, h := range gr.hives {
		rl.DrawCircleLines(int32(h.Pos.X), int32(h.Pos.Y), float32(radius), color)
	}
}

func (gr *GardenRenderer) drawFlowers(healthBars bool) {
	size := float32(gr.cfg.Flowers.Size)
	for _, f := range gr.flowers {
		x, y := float32(f.Pos.X), float32(f.Pos.Y)

		petal, ok := petalColors[f.Type]
		if !ok {
			petal = rl.White
		}
		// Wilting flowers fade toward the ground
		petal = rl.Fade(petal, float32(0.35+0.65*f.HealthRatio))

		rl.DrawLineEx(rl.Vector2{X: x, Y: y}, rl.Vector2{X: x, Y: y + size/2}, 2, rl.DarkGreen)
		for i := 0; i < 5; i++ {
			a := float64(i) * 2 * math.Pi / 5
			px := x + float32(math.Cos(a))*size/5
			py := y + float32(math.Sin(a))*size/5
			rl.DrawCircleV(rl.Vector2{X: px, Y: py}, size/6, petal)
		}
		center := rl.Brown
		if f.Pollinate {
			center = rl.Orange
		}
		rl.DrawCircleV(rl.Vector2{X: x, Y: y}, size/8, center)

		if healthBars {
			gr.renderer.DrawMiniBar(x, y-size/2-6, size, f.HealthRatio, gr.renderer.ratioColor(f.HealthRatio))
		}
	}
}

func (gr *GardenRenderer) drawHives(honeyLevels bool) {
	size := float32(gr.cfg.Hive.Size)
	threshold := gr.cfg.Hive.HoneyThreshold
	for _, h := range gr.hives {
		x, y := float32(h.Pos.X)-size/2, float32(h.Pos.Y)-size/2

		body := colorHive
		if h.Harvestable {
			body = colorHiveReady
		}
		rl.DrawRectangleRounded(rl.Rectangle{X: x, Y: y, Width: size, Height: size}, 0.3, 6, body)
		for band := float32(1); band < 4; band++ {
			by := y + band*size/4
			rl.DrawLineEx(rl.Vector2{X: x + 4, Y: by}, rl.Vector2{X: x + size - 4, Y: by}, 2, rl.Fade(rl.Black, 0.3))
		}
		rl.DrawCircleV(rl.Vector2{X: x + size/2, Y: y + size*0.8}, size/10, rl.Fade(rl.Black, 0.7))

		if honeyLevels && threshold > 0 {
			gr.renderer.DrawMiniBar(x+size/2, y-8, size, h.Honey/threshold, gr.renderer.Theme.BarFill)
		}
	}
}

func (gr *GardenRenderer) drawRoutes(g *game.Game) {
	for _, b := range gr.bees {
		var dest components.Position
		var ok bool
		color := colorRouteOut
		switch b.State {
		case components.BeeFlyingOut, components.BeeForaging:
			dest, ok = g.PositionOf(b.Target)
		case components.BeeReturning:
			dest, ok = g.PositionOf(b.Hive)
			color = colorRouteHome
		}
		if !ok {
			continue
		}
		rl.DrawLineV(
			rl.Vector2{X: float32(b.Pos.X), Y: float32(b.Pos.Y)},
			rl.Vector2{X: float32(dest.X), Y: float32(dest.Y)},
			color,
		)
	}
}

func (gr *GardenRenderer) drawBees() {
	for _, b := range gr.bees {
		if b.State == components.BeeIdle {
			continue // Inside the hive
		}
		x, y := float32(b.Pos.X), float32(b.Pos.Y)
		rl.DrawCircleV(rl.Vector2{X: x, Y: y}, 4, colorBee)
		rl.DrawLineEx(rl.Vector2{X: x - 1, Y: y - 4}, rl.Vector2{X: x - 1, Y: y + 4}, 1.5, colorBeeStripe)
		rl.DrawCircleV(rl.Vector2{X: x - 2, Y: y - 4}, 2.5, rl.Fade(rl.White, 0.7))
	}
}

func (gr *GardenRenderer) drawKids() {
	w, h := float32(gr.cfg.Kid.Width), float32(gr.cfg.Kid.Height)
	for _, k := range gr.kids {
		x, y := float32(k.Pos.X), float32(k.Pos.Y)
		body := colorKid
		if k.State == components.KidFleeing {
			body = colorKidFleeing
		}
		rl.DrawRectangleRounded(rl.Rectangle{X: x - w/3, Y: y - h/6, Width: w * 2 / 3, Height: h * 2 / 3}, 0.4, 6, body)
		rl.DrawCircleV(rl.Vector2{X: x, Y: y - h/3}, w/4, rl.Beige)
	}
}

func (gr *GardenRenderer) drawFootprints() {
	hs := gr.cfg.Hive.Size
	for _, h := range gr.hives {
		outline(h.Pos, hs, hs)
	}
	fs := gr.cfg.Flowers.Size
	for _, f := range gr.flowers {
		outline(f.Pos, fs, fs)
	}
	for _, k := range gr.kids {
		outline(k.Pos, gr.cfg.Kid.Width, gr.cfg.Kid.Height)
	}
}

func outline(p components.Position, w, h float64) {
	rl.DrawRectangleLinesEx(rl.Rectangle{
		X: float32(p.X - w/2), Y: float32(p.Y - h/2), Width: float32(w), Height: float32(h),
	}, 1, colorFootprint)
}

// drawNight darkens the garden outside daylight, deepest at midnight.
func (gr *GardenRenderer) drawNight(clock *systems.Clock, b systems.Bounds) {
	if !clock.IsNight() {
		return
	}
	t := clock.TimeOfDay()
	// Distance from midnight in day fractions, 0 at midnight
	d := math.Min(t, 1-t)
	edge := math.Min(gr.cfg.Clock.Dawn, 1-gr.cfg.Clock.Dusk)
	depth := 1.0
	if edge > 0 {
		depth = 1 - d/edge
	}
	depth = math.Max(0.2, math.Min(1, depth))

	c := colorNight
	c.A = uint8(maxNightDarkness * depth)
	rl.DrawRectangle(0, 0, int32(b.Width), int32(b.Height), c)
}
