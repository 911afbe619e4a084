// Package inspector renders a reflection-driven panel for the selected entity.
// Component fields opt into widgets through `inspect:` struct tags.
package inspector

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"
)

// Panel dimensions
const (
	PanelWidth   = 280
	PanelPadding = 10
	HeaderHeight = 30
	lineHeight   = 18
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorCloseBtn    = rl.Color{R: 180, G: 80, B: 80, A: 255}
)

// Inspector tracks the selected entity and draws its panel.
type Inspector struct {
	selected    ecs.Entity
	hasSelected bool
	panelX      int32
	panelY      int32
}

// NewInspector creates an inspector anchored to the top-right corner.
func NewInspector(screenWidth int32) *Inspector {
	return &Inspector{
		panelX: screenWidth - PanelWidth - 10,
		panelY: 10,
	}
}

// Select makes e the inspected entity.
func (ins *Inspector) Select(e ecs.Entity) {
	ins.selected = e
	ins.hasSelected = true
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.selected = ecs.Entity{}
	ins.hasSelected = false
}

// Selected returns the currently selected entity.
func (ins *Inspector) Selected() (ecs.Entity, bool) {
	return ins.selected, ins.hasSelected
}

// Contains reports whether a screen point falls on the open panel.
func (ins *Inspector) Contains(x, y float32, height int32) bool {
	if !ins.hasSelected {
		return false
	}
	return int32(x) >= ins.panelX && int32(x) <= ins.panelX+PanelWidth &&
		int32(y) >= ins.panelY && int32(y) <= ins.panelY+height
}

// CloseHit reports whether a screen point is on the close button.
func (ins *Inspector) CloseHit(x, y float32) bool {
	if !ins.hasSelected {
		return false
	}
	closeX := ins.panelX + PanelWidth - 25
	closeY := ins.panelY + 5
	return int32(x) >= closeX && int32(x) <= closeX+20 &&
		int32(y) >= closeY && int32(y) <= closeY+20
}

// PanelHeight returns the panel height needed for component.
func PanelHeight(component any) int32 {
	n := int32(len(ExtractFields(component)))
	return HeaderHeight + PanelPadding*2 + lineHeight*(n+1) + 8
}

// Draw renders the panel for the selected entity. component is a copy of its
// behaviour component; a nil component means the entity is gone and the
// selection is dropped.
func (ins *Inspector) Draw(title string, x, y float64, component any) {
	if !ins.hasSelected {
		return
	}
	if component == nil {
		ins.Deselect()
		return
	}

	panelHeight := PanelHeight(component)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, panelHeight, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(panelHeight)},
		1,
		ColorPanelBorder,
	)

	// Header
	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText(title, ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	closeX := ins.panelX + PanelWidth - 25
	closeY := ins.panelY + 5
	rl.DrawRectangle(closeX, closeY, 20, 20, ColorCloseBtn)
	rl.DrawText("X", closeX+6, closeY+3, 14, rl.White)

	cx := ins.panelX + PanelPadding
	cy := ins.panelY + HeaderHeight + PanelPadding

	cy += DrawLabel(cx, cy, "Position", fmt.Sprintf("(%.0f, %.0f)", x, y))
	rl.DrawLine(cx, cy+2, ins.panelX+PanelWidth-PanelPadding, cy+2, ColorPanelBorder)
	cy += 8

	for _, f := range ExtractFields(component) {
		cy += DrawField(cx, cy, f)
	}
}

// DrawSelectionHighlight outlines the selected entity's footprint.
func (ins *Inspector) DrawSelectionHighlight(x, y, w, h float64) {
	if !ins.hasSelected {
		return
	}
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(x - w/2 - 3), Y: float32(y - h/2 - 3), Width: float32(w + 6), Height: float32(h + 6)},
		2,
		rl.Yellow,
	)
}
