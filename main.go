package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pthm-cable/blaster/camera"
	"github.com/pthm-cable/blaster/config"
	"github.com/pthm-cable/blaster/game"
	"github.com/pthm-cable/blaster/renderer"
	"github.com/pthm-cable/blaster/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output telemetry windows via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = config, then time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	logFile := flag.String("log-file", "", "Write logs to a rotated file instead of stdout")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")

	flag.Parse()

	setupLogging(*logFile, *logLevel)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	opts := game.DefaultOptions()
	opts.Headless = *headless
	opts.Seed = *seed
	opts.OutputDir = *outputDir
	opts.LogStats = *logStats

	var err error
	if *headless {
		err = runHeadless(cfg, opts, int64(*maxTicks))
	} else {
		err = runWindowed(cfg, opts, int64(*maxTicks))
	}
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// setupLogging installs a JSON slog handler writing to stdout or, with a
// path, to a lumberjack-rotated file.
func setupLogging(path, level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	var w io.Writer = os.Stdout
	if path != "" {
		w = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		}
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
}

// runHeadless plays unattended sessions with the shoot key held, restarting
// after each game over, until maxTicks is reached.
func runHeadless(cfg *config.Config, opts game.Options, maxTicks int64) error {
	g, err := game.New(cfg, opts)
	if err != nil {
		return err
	}
	defer g.Close()

	slog.Info("starting headless simulation", "max_ticks", maxTicks)

	step := g.Timing().TickDuration()
	warned := false
	for {
		if !g.IsRunning() && !g.Autoplay() && !warned {
			slog.Warn("no key bound to shoot, playing without firing")
			warned = true
		}

		g.Update(step)

		if maxTicks > 0 && g.Ticks() >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Ticks(), "score", g.Score())
			return nil
		}
	}
}

// runWindowed drives the game from a raylib window.
func runWindowed(cfg *config.Config, opts game.Options, maxTicks int64) error {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), ui.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.New(cfg, opts)
	if err != nil {
		return err
	}
	defer g.Close()

	viewport := camera.New(cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.AspectRatio)
	background := renderer.NewBackground(cfg.Screen.Width, cfg.Screen.Height, 120, time.Now().UnixNano())
	sprites := renderer.NewSprites(nil)
	hud := ui.NewHUD()
	menu := ui.NewMenu(cfg.Telemetry.Analytics)
	perfPanel := ui.NewPerfPanel(0, 0)
	legend := ui.KeyLegend(g.Bindings())

	last := time.Now()
	for !rl.WindowShouldClose() {
		// Resize between ticks
		if rl.IsWindowResized() {
			factor := viewport.Resize(int(rl.GetScreenWidth()), int(rl.GetScreenHeight()))
			if err := g.Rescale(factor); err != nil {
				slog.Warn("rescale rejected", "error", err)
			}
		}

		ui.PollKeys(g.HandleKey)

		now := time.Now()
		g.Update(now.Sub(last))
		last = now

		snap := g.Snapshot()
		background.Scroll(snap.ScrollPixels, g.Scale())

		drawStart := time.Now()
		ox, oy := int32(viewport.OffsetX), int32(viewport.OffsetY)
		cw, ch := int32(viewport.Width), int32(viewport.Height)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		background.Draw(ox, oy, cw, ch)
		sprites.SetOutline(menu.HitBoxes)
		sprites.Draw(snap, ox, oy)

		if !snap.Running && menu.Draw(ox, oy, cw, ch) {
			g.Start()
		}

		hud.Draw(ui.HUDData{
			Status:  snap.StatusLine(menu.Analytics),
			Legend:  legend,
			FPS:     rl.GetFPS(),
			OffsetX: ox,
			OffsetY: oy,
			CanvasW: cw,
			CanvasH: ch,
			Padding: int32(cfg.Screen.EdgePadding),
		})
		if menu.Analytics {
			perfPanel.SetPosition(ox+cw-220, oy+int32(cfg.Screen.EdgePadding))
			perfPanel.Draw(g.PerfStats())
		}
		rl.EndDrawing()

		g.RecordDraw(time.Since(drawStart))

		if maxTicks > 0 && g.Ticks() >= maxTicks {
			break
		}
	}
	return nil
}
