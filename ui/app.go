package ui

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hives/components"
	"github.com/pthm-cable/hives/config"
	"github.com/pthm-cable/hives/game"
	"github.com/pthm-cable/hives/inspector"
)

const (
	messageDuration = 3.0 // Seconds a status message stays up
	maxSpeed        = 8
	controlsLegend  = "SPACE: Pause | < >: Speed | 1-9: Tools | O: Overlays | Right click: Chase/Deselect"
)

// App is the graphical front end: it turns input into game actions and
// draws the garden and HUD each frame.
type App struct {
	g   *game.Game
	cfg *config.Config

	garden    *GardenRenderer
	hud       *HUD
	toolbar   *Toolbar
	controls  *ControlsPanel
	perf      *PerfPanel
	overlays  *OverlayRegistry
	inspector *inspector.Inspector

	tool   int
	speed  int
	paused bool

	message    string
	messageErr bool
	messageTTL float64

	screenW, screenH int32
	hives            []game.HiveView

	autoplay *game.Autoplayer // nil = player only
}

// NewApp creates the front end for g. The raylib window must already be open.
func NewApp(g *game.Game) *App {
	cfg := g.Config()
	w, h := int32(cfg.Screen.Width), int32(cfg.Screen.Height)
	return &App{
		g:         g,
		cfg:       cfg,
		garden:    NewGardenRenderer(cfg),
		hud:       NewHUD(),
		toolbar:   NewToolbar(DefaultTools(cfg), int32(cfg.World.HUDHeight)),
		controls:  NewControlsPanel(w-230, 10, 220),
		perf:      NewPerfPanel(w-250, h-int32(cfg.World.HUDHeight)-200),
		overlays:  NewOverlayRegistry(),
		inspector: inspector.NewInspector(w),
		speed:     1,
		screenW:   w,
		screenH:   h,
	}
}

// SetAutoplayer lets a scripted player act alongside the human one.
func (a *App) SetAutoplayer(p *game.Autoplayer) {
	a.autoplay = p
}

// Update handles input and advances the simulation by one frame.
func (a *App) Update() {
	dt := float64(rl.GetFrameTime())
	a.handleKeys()
	a.handleMouse()

	if a.messageTTL > 0 {
		a.messageTTL -= dt
	}

	if a.paused {
		return
	}
	for i := 0; i < a.speed; i++ {
		if a.autoplay != nil {
			a.autoplay.Step(dt)
		}
		a.g.Step(dt)
	}
	a.g.RecordFrame()
}

func (a *App) handleKeys() {
	if rl.IsKeyPressed(rl.KeySpace) {
		a.paused = !a.paused
	}
	if rl.IsKeyPressed(rl.KeyComma) && a.speed > 1 {
		a.speed--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && a.speed < maxSpeed {
		a.speed++
	}
	if rl.IsKeyPressed(rl.KeyO) {
		a.controls.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.inspector.Deselect()
	}

	for i, t := range a.toolbar.Tools() {
		if t.Key != 0 && rl.IsKeyPressed(t.Key) {
			a.selectTool(i)
		}
	}

	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		a.overlays.HandleKeyPress(key)
	}
}

func (a *App) selectTool(i int) {
	a.tool = i
	a.info(a.toolbar.Tools()[i].Label)
}

func (a *App) handleMouse() {
	mouse := rl.GetMousePosition()
	x, y := float64(mouse.X), float64(mouse.Y)

	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		if e, ok := a.g.EntityAt(x, y); ok && a.g.KindOf(e) == game.KindKid {
			a.report(a.g.ChaseAway(e), "Shoo!")
			return
		}
		a.inspector.Deselect()
		return
	}

	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}

	// Toolbar and panels consume their own clicks
	if mouse.Y >= float32(a.toolbar.Top(a.screenH)) {
		return
	}
	if a.controls.HandleClick(mouse.X, mouse.Y, a.overlays) {
		return
	}
	if a.inspector.CloseHit(mouse.X, mouse.Y) {
		a.inspector.Deselect()
		return
	}
	if e, ok := a.inspector.Selected(); ok && a.inspector.Contains(mouse.X, mouse.Y, inspector.PanelHeight(a.g.Inspect(e))) {
		return
	}

	tool := a.toolbar.Tools()[a.tool]
	if tool.Kind == ToolInspect {
		if e, ok := a.g.EntityAt(x, y); ok {
			a.inspector.Select(e)
		} else {
			a.inspector.Deselect()
		}
		return
	}

	msg, err := Apply(a.g, tool, x, y)
	a.report(err, msg)
}

// report shows err if set, otherwise msg.
func (a *App) report(err error, msg string) {
	if err != nil {
		a.fail(err)
		return
	}
	if msg != "" {
		a.info(msg)
	}
}

func (a *App) info(msg string) {
	a.message, a.messageErr, a.messageTTL = msg, false, messageDuration
}

func (a *App) fail(err error) {
	a.message, a.messageErr, a.messageTTL = describe(err), true, messageDuration
}

// describe turns an action error into player-facing text.
func describe(err error) string {
	switch {
	case errors.Is(err, game.ErrInsufficientFunds):
		return "Not enough money: " + err.Error()
	case errors.Is(err, game.ErrInvalidPlacement):
		return "Can't place that here"
	default:
		return err.Error()
	}
}

// Draw renders one frame.
func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	a.garden.Draw(a.g, a.overlays)
	a.drawSelection()

	a.hud.Draw(a.hudData())
	a.controls.Draw(a.overlays)
	if a.overlays.IsEnabled(OverlayPerf) {
		a.perf.Draw(a.g.PerfStats())
	}
	a.drawInspector()
	a.drawMessage()

	top := a.toolbar.Top(a.screenH)
	a.hud.DrawControls(top, controlsLegend)
	res := a.toolbar.Draw(a.screenW, a.screenH, a.tool, a.marketData())

	rl.EndDrawing()

	a.applyToolbar(res)
}

// applyToolbar runs the market actions pressed during Draw.
func (a *App) applyToolbar(res ToolbarResult) {
	if res.Tool >= 0 {
		a.selectTool(res.Tool)
	}
	if res.SellOne {
		income, err := a.g.Sell(res.Sell)
		a.reportIncome(income, err)
	}
	if res.SellAll {
		income, err := a.g.SellAll()
		a.reportIncome(income, err)
	}
	if res.Upgrade {
		a.report(a.g.PurchaseUpgrade(), "Production upgraded")
	}
}

func (a *App) reportIncome(income float64, err error) {
	if err != nil {
		a.fail(err)
		return
	}
	a.info(fmt.Sprintf("Sold for $%.2f", income))
}

func (a *App) drawSelection() {
	e, ok := a.inspector.Selected()
	if !ok {
		return
	}
	pos, alive := a.g.PositionOf(e)
	if !alive {
		a.inspector.Deselect()
		return
	}
	var w, h float64
	switch a.g.KindOf(e) {
	case game.KindHive:
		w, h = a.cfg.Hive.Size, a.cfg.Hive.Size
	case game.KindFlower:
		w, h = a.cfg.Flowers.Size, a.cfg.Flowers.Size
	case game.KindKid:
		w, h = a.cfg.Kid.Width, a.cfg.Kid.Height
	default:
		w, h = 10, 10
	}
	a.inspector.DrawSelectionHighlight(pos.X, pos.Y, w, h)
}

func (a *App) drawInspector() {
	e, ok := a.inspector.Selected()
	if !ok {
		return
	}
	pos, _ := a.g.PositionOf(e)
	a.inspector.Draw(a.g.KindOf(e).String(), pos.X, pos.Y, a.g.Inspect(e))
}

func (a *App) drawMessage() {
	if a.messageTTL <= 0 || a.message == "" {
		return
	}
	r := a.hud.renderer
	color := r.Theme.InfoColor
	if a.messageErr {
		color = r.Theme.ErrorColor
	}
	width := rl.MeasureText(a.message, 18)
	y := a.toolbar.Top(a.screenH) - 44
	rl.DrawText(a.message, (a.screenW-width)/2, y, 18, rl.Fade(color, float32(min(1, a.messageTTL))))
}

func (a *App) hudData() HUDData {
	g := a.g
	w := g.Wallet()
	clock := g.Clock()

	a.hives = g.Hives(a.hives[:0])
	var stored float64
	ready := 0
	for _, h := range a.hives {
		stored += h.Honey
		if h.Harvestable {
			ready++
		}
	}

	return HUDData{
		Title:        "Pixel Hives",
		Money:        w.Money,
		Honey:        w.Honey,
		Wax:          w.Wax,
		Pollen:       w.Pollen,
		Day:          clock.Day(),
		Season:       clock.Season().String(),
		TimeOfDay:    clock.TimeOfDay(),
		Night:        clock.IsNight(),
		Flowers:      g.FlowerCount(),
		Hives:        g.HiveCount(),
		Bees:         g.BeeCount(),
		Kids:         g.KidCount(),
		HiveHoney:    stored,
		Harvestable:  ready,
		UpgradeLevel: g.UpgradeLevel(),
		UpgradeCost:  g.UpgradeCost(),
		BaseRate:     g.BaseRate(),
		Tick:         g.Tick(),
		Speed:        a.speed,
		FPS:          rl.GetFPS(),
		Paused:       a.paused,
	}
}

func (a *App) marketData() MarketData {
	w := a.g.Wallet()
	m := MarketData{
		Prices:      make(map[components.Resource]float64, len(components.Resources)),
		Stock:       make(map[components.Resource]float64, len(components.Resources)),
		UpgradeCost: a.g.UpgradeCost(),
	}
	for _, r := range components.Resources {
		m.Prices[r] = a.g.Price(r)
		m.Stock[r] = *w.Stock(r)
	}
	return m
}
