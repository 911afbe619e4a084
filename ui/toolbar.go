package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hives/components"
)

// ToolbarResult reports what the player pressed this frame.
type ToolbarResult struct {
	Tool    int                 // Selected tool index (-1 = unchanged)
	Sell    components.Resource // Valid when SellOne is set
	SellOne bool
	SellAll bool
	Upgrade bool
}

// MarketData holds the prices and stock shown in the market.
type MarketData struct {
	Prices      map[components.Resource]float64
	Stock       map[components.Resource]float64
	UpgradeCost float64
}

// Toolbar draws the HUD strip with tool and market buttons.
type Toolbar struct {
	renderer *Renderer
	tools    []Tool
	height   int32
}

// NewToolbar creates a toolbar for tools occupying a strip of the given height.
func NewToolbar(tools []Tool, height int32) *Toolbar {
	return &Toolbar{
		renderer: NewRenderer(),
		tools:    tools,
		height:   height,
	}
}

// Tools returns the toolbar entries.
func (t *Toolbar) Tools() []Tool {
	return t.tools
}

// Top returns the strip's top edge for a screen height.
func (t *Toolbar) Top(screenHeight int32) int32 {
	return screenHeight - t.height
}

// Draw renders the strip and returns the buttons pressed this frame.
func (t *Toolbar) Draw(screenWidth, screenHeight int32, selected int, market MarketData) ToolbarResult {
	res := ToolbarResult{Tool: -1}
	top := t.Top(screenHeight)
	pad := t.renderer.Theme.Padding

	t.renderer.DrawPanel(0, top, screenWidth, t.height)

	// Tools, two rows
	const btnW, btnH = 96, 26
	perRow := (len(t.tools) + 1) / 2
	for i, tool := range t.tools {
		col, row := i%perRow, i/perRow
		r := rl.Rectangle{
			X:      float32(pad + int32(col)*(btnW+4)),
			Y:      float32(top + pad + int32(row)*(btnH+4)),
			Width:  btnW,
			Height: btnH,
		}
		if i == selected {
			rl.DrawRectangleLinesEx(rl.Rectangle{X: r.X - 2, Y: r.Y - 2, Width: r.Width + 4, Height: r.Height + 4}, 2, rl.Yellow)
		}
		if gui.Button(r, tool.Label) {
			res.Tool = i
		}
	}

	// Market, right aligned
	const sellW = 120
	mx := float32(screenWidth - pad - 2*sellW - 4)
	for i, r := range components.Resources {
		col, row := i%2, i/2
		label := fmt.Sprintf("Sell %s $%.2f", r, market.Prices[r])
		if market.Stock[r] > 0 {
			label = fmt.Sprintf("Sell %.0f %s", market.Stock[r], r)
		}
		rect := rl.Rectangle{X: mx + float32(col)*(sellW+4), Y: float32(top+pad) + float32(row)*(btnH+4), Width: sellW, Height: btnH}
		if gui.Button(rect, label) {
			res.Sell = r
			res.SellOne = true
		}
	}
	if gui.Button(rl.Rectangle{X: mx + sellW + 4, Y: float32(top+pad) + btnH + 4, Width: sellW, Height: btnH}, "Sell All") {
		res.SellAll = true
	}

	upgrade := rl.Rectangle{X: mx - sellW - 8, Y: float32(top + pad), Width: sellW, Height: btnH*2 + 4}
	if gui.Button(upgrade, fmt.Sprintf("Upgrade $%.0f", market.UpgradeCost)) {
		res.Upgrade = true
	}

	return res
}
