package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hives/config"
	"github.com/pthm-cable/hives/game"
)

// ToolKind is what a click on the garden does.
type ToolKind int

const (
	ToolHive ToolKind = iota
	ToolFlower
	ToolWater
	ToolHarvest
	ToolRemove
	ToolChase
	ToolInspect
)

// Tool is one toolbar entry.
type Tool struct {
	Kind   ToolKind
	Label  string
	Flower string // Catalog type for ToolFlower
	Key    int32  // Number-row shortcut (0 = none)
}

// DefaultTools returns the toolbar: one hive tool, one tool per catalog
// flower, then the entity tools.
func DefaultTools(cfg *config.Config) []Tool {
	tools := []Tool{{Kind: ToolHive, Label: fmt.Sprintf("Hive $%.0f", cfg.Hive.Cost)}}
	for _, ft := range cfg.Flowers.Types {
		tools = append(tools, Tool{Kind: ToolFlower, Label: fmt.Sprintf("%s $%.0f", ft.Name, ft.Cost), Flower: ft.Name})
	}
	tools = append(tools,
		Tool{Kind: ToolWater, Label: "Water"},
		Tool{Kind: ToolHarvest, Label: "Harvest"},
		Tool{Kind: ToolRemove, Label: "Remove"},
		Tool{Kind: ToolChase, Label: "Chase"},
		Tool{Kind: ToolInspect, Label: "Inspect"},
	)
	for i := range tools {
		if i < 9 {
			tools[i].Key = rl.KeyOne + int32(i)
		}
	}
	return tools
}

// Apply performs tool at world point (x, y) and returns a status message.
// Inspect is handled by the caller; Apply only reports what is under the cursor.
func Apply(g *game.Game, tool Tool, x, y float64) (string, error) {
	switch tool.Kind {
	case ToolHive:
		if _, err := g.PlaceHive(x, y); err != nil {
			return "", err
		}
		return "Hive placed", nil

	case ToolFlower:
		if _, err := g.PlaceFlower(x, y, tool.Flower); err != nil {
			return "", err
		}
		return tool.Flower + " planted", nil
	}

	e, ok := g.EntityAt(x, y)

	switch tool.Kind {
	case ToolWater:
		if !ok {
			return "", game.ErrNotAFlower
		}
		if err := g.Water(e); err != nil {
			return "", err
		}
		return "Watered", nil

	case ToolHarvest:
		if !ok {
			return "", game.ErrNotAHive
		}
		yield, err := g.Harvest(e)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Harvested %.1f honey, %.1f wax, %.1f pollen", yield.Honey, yield.Wax, yield.Pollen), nil

	case ToolRemove:
		if !ok {
			return "", game.ErrNoSuchEntity
		}
		kind := g.KindOf(e)
		if err := g.Remove(e); err != nil {
			return "", err
		}
		return fmt.Sprintf("Removed %s", kind), nil

	case ToolChase:
		if !ok {
			return "", game.ErrNotAKid
		}
		if err := g.ChaseAway(e); err != nil {
			return "", err
		}
		return "Shoo!", nil

	default:
		if !ok {
			return "", nil
		}
		return g.KindOf(e).String(), nil
	}
}
