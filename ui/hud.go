package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hives/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title     string
	Money     float64
	Honey     float64
	Wax       float64
	Pollen    float64
	Day       int
	Season    string
	TimeOfDay float64 // Fraction of the day in [0, 1)
	Night     bool

	Flowers int
	Hives   int
	Bees    int
	Kids    int

	HiveHoney    float64 // Honey waiting in hives
	Harvestable  int     // Hives at the harvest threshold
	UpgradeLevel int
	UpgradeCost  float64
	BaseRate     float64

	Tick   int32
	Speed  int
	FPS    int32
	Paused bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
	garden   PanelDescriptor
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
		garden:   GardenPanel(),
	}
}

// Draw renders the status lines and the garden panel.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	phase := "Day"
	if data.Night {
		phase = "Night"
	}
	rl.DrawText(
		fmt.Sprintf("Day %d | %s | %s %02d:%02d", data.Day, data.Season, phase, clockHours(data.TimeOfDay), clockMinutes(data.TimeOfDay)),
		10, 35, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d", data.Tick, data.Speed, data.FPS),
		10, 55, 14, rl.Gray,
	)

	if data.Paused {
		rl.DrawText("PAUSED", 10, 73, 16, rl.Yellow)
	}

	h.renderer.DrawPanelDescriptor(10, 95, h.garden, data)
}

// DrawControls renders the key legend just above the toolbar.
func (h *HUD) DrawControls(toolbarTop int32, controls string) {
	rl.DrawText(controls, 10, toolbarTop-18, 12, rl.Gray)
}

func clockHours(t float64) int {
	return int(t*24) % 24
}

func clockMinutes(t float64) int {
	return int(t*24*60) % 60
}

// GardenPanel describes the wallet and garden summary panel.
func GardenPanel() PanelDescriptor {
	hud := func(data any) HUDData { return data.(HUDData) }

	return PanelDescriptor{
		ID:    "garden",
		Width: 210,
		Sections: []SectionDescriptor{
			{
				ID:    "wallet",
				Title: "Wallet",
				Fields: []FieldDescriptor{
					{ID: "money", Label: "Money", Widget: WidgetText, Format: "$%.2f", Getter: func(d any) float64 { return hud(d).Money }},
					{ID: "honey", Label: "Honey", Widget: WidgetText, Format: "%.1f", Getter: func(d any) float64 { return hud(d).Honey }},
					{ID: "wax", Label: "Wax", Widget: WidgetText, Format: "%.1f", Getter: func(d any) float64 { return hud(d).Wax }},
					{ID: "pollen", Label: "Pollen", Widget: WidgetText, Format: "%.1f", Getter: func(d any) float64 { return hud(d).Pollen }},
				},
			},
			{
				ID:    "garden",
				Title: "Garden",
				Fields: []FieldDescriptor{
					{ID: "flowers", Label: "Flowers", Widget: WidgetText, Format: "%.0f", Getter: func(d any) float64 { return float64(hud(d).Flowers) }},
					{ID: "hives", Label: "Hives", Widget: WidgetText, Format: "%.0f", Getter: func(d any) float64 { return float64(hud(d).Hives) }},
					{ID: "bees", Label: "Bees", Widget: WidgetText, Format: "%.0f", Getter: func(d any) float64 { return float64(hud(d).Bees) }},
					{
						ID: "kids", Label: "Intruders", Widget: WidgetText, Format: "%.0f",
						Getter:  func(d any) float64 { return float64(hud(d).Kids) },
						Visible: func(d any) bool { return hud(d).Kids > 0 },
					},
				},
			},
			{
				ID:    "production",
				Title: "Production",
				Fields: []FieldDescriptor{
					{ID: "rate", Label: "Rate/hive", Widget: WidgetText, Format: "%.3f/s", Getter: func(d any) float64 { return hud(d).BaseRate }},
					{ID: "level", Label: "Upgrade", Widget: WidgetText, TextGetter: func(d any) string {
						return fmt.Sprintf("L%d (next $%.0f)", hud(d).UpgradeLevel, hud(d).UpgradeCost)
					}},
					{ID: "stored", Label: "In hives", Widget: WidgetText, Format: "%.1f", Getter: func(d any) float64 { return hud(d).HiveHoney }},
					{
						ID: "ready", Label: "Ready", Widget: WidgetBar,
						Getter:    func(d any) float64 { return float64(hud(d).Harvestable) },
						MaxGetter: func(d any) float64 { return float64(hud(d).Hives) },
						Visible:   func(d any) bool { return hud(d).Hives > 0 },
					},
				},
			},
		},
	}
}

// PerfPanel renders the per-phase tick timings.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	x := p.x
	y := p.y

	p.renderer.DrawPanel(x-6, y-6, 250, int32(len(telemetry.Phases))*14+50)

	rl.DrawText("Tick Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Avg: %s  TPS: %.0f", stats.AvgTickDuration.Round(time.Microsecond), stats.TicksPerSecond), x, y, 14, rl.Yellow)
	y += 16

	for _, phase := range telemetry.Phases {
		avg := stats.PhaseAvg[phase]
		pct := stats.PhasePct[phase]

		color := rl.LightGray
		switch {
		case stats.Samples > 0 && phase == stats.Slowest && pct > 40:
			color = rl.Red
		case pct > 20:
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", phase, avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
