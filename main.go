package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hives/config"
	"github.com/pthm-cable/hives/game"
	"github.com/pthm-cable/hives/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics (requires -autoplay to do anything useful)")
	autoplay := flag.Bool("autoplay", false, "Let the scripted player run the garden")
	strategyPath := flag.String("strategy", "", "Strategy YAML for -autoplay (empty = use defaults)")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	dt := flag.Float64("dt", 1.0/60.0, "Seconds per headless tick")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	var strategy game.Strategy
	if *autoplay {
		s, err := game.LoadStrategy(*strategyPath)
		if err != nil {
			slog.Error("failed to load strategy", "error", err)
			os.Exit(1)
		}
		strategy = s
	}

	opts := game.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
	}

	if *headless {
		// Pure CPU simulation, no raylib needed
		g := game.NewGameWithOptions(opts)
		defer g.Close()

		var player *game.Autoplayer
		if *autoplay {
			player = game.NewAutoplayer(g, strategy, rngSeed)
		}

		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"stats_window", *statsWindow,
			"max_ticks", *maxTicks,
			"autoplay", *autoplay,
		)

		for {
			if player != nil {
				player.Step(*dt)
			}
			g.Step(*dt)

			if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
				w := g.Wallet()
				attrs := []any{
					"tick", g.Tick(),
					"money", w.Money,
					"hives", g.HiveCount(),
					"flowers", g.FlowerCount(),
				}
				if player != nil {
					attrs = append(attrs, "autoplay_rejected", player.Rejected())
				}
				slog.Info("max ticks reached", attrs...)
				return
			}
		}
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Pixel Hives")
	defer rl.CloseWindow()
	rl.SetExitKey(0) // Escape deselects instead of quitting
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGameWithOptions(opts)
	defer g.Close()

	app := ui.NewApp(g)
	if *autoplay {
		app.SetAutoplayer(game.NewAutoplayer(g, strategy, rngSeed))
	}

	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()

		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			break
		}
	}
}
