//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lilykb/statusview/internal/app"
	"github.com/lilykb/statusview/internal/config"
	"github.com/lilykb/statusview/internal/keyboard"
	"github.com/lilykb/statusview/internal/keymap"
	"github.com/lilykb/statusview/internal/render"
	"github.com/lilykb/statusview/internal/state"
	"github.com/lilykb/statusview/internal/system"
	"github.com/lilykb/statusview/internal/web"
)

// defaultSide is the build-time role of this half; override with
// -ldflags "-X main.defaultSide=secondary" when flashing the right unit.
var defaultSide = "primary"

func main() {
	configPath := flag.String("config", "/etc/statusview.yaml", "configuration file (YAML)")
	sideFlag := flag.String("side", "", "which half this unit renders: primary|secondary (overrides STATUSVIEW_SIDE and config)")
	debug := flag.Bool("debug", false, "enable debug logging")
	preview := flag.Bool("preview", false, "render offscreen and serve frames over HTTP instead of /dev/fb0")
	setup := flag.Bool("setup", false, "show the companion-app QR screen until the first keyboard event")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via STATUSVIEW_STDIO_LOG")
	flag.Parse()

	// Best-effort: capture panics to a file even when the console is left
	// in graphics mode.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("STATUSVIEW_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		zl, zerr := app.NewZapLogger(true)
		if zerr != nil {
			fmt.Println("logger init error:", zerr)
		} else {
			defer zl.Sync()
			logger = zl
			logger.Infof("main", "debug logging enabled")
		}
	}

	// Resolution order: flag, env, config, then the build-time default.
	sideName := *sideFlag
	if sideName == "" {
		sideName = os.Getenv("STATUSVIEW_SIDE")
	}
	if sideName == "" {
		sideName = cfg.Side
	}
	if sideName == "" {
		sideName = defaultSide
	}
	side, err := state.ParseSide(sideName)
	if err != nil {
		fmt.Println("side error:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := state.NewStore()
	source := keyboard.NewSerialSource(cfg.Serial.Device, cfg.Serial.Baud)
	source.Logger = logger

	var renderer render.Renderer
	var canvas *render.Canvas
	if *preview {
		ir := render.NewImageRenderer()
		renderer = ir
		canvas = ir.Canvas()
	} else {
		fr := render.NewFBRenderer()
		fr.FontPath = cfg.Font
		fr.FontSize = cfg.FontSize
		fr.Logger = logger
		renderer = fr
		canvas = fr.Canvas()
	}

	a := app.New(side, store, renderer, source)
	a.Logger = logger
	a.Layers = keymap.NewTable(cfg.Layers)
	a.Setup = *setup
	a.SetupURL = cfg.SetupURL

	// Companion server, enabled by config or environment.
	serverCfg, err := web.DefaultServerConfigFromEnv(cfg.Listen)
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}
	if serverCfg.ListenAddr != "" {
		server := web.NewHTTPServer(serverCfg)
		server.Handler = web.NewDefaultMux(web.APIV1Deps{
			Side:      side,
			Store:     store,
			Layers:    a.Layers,
			Frame:     canvas.PNG,
			Primary:   a.PrimarySnapshot,
			Secondary: a.SecondarySnapshot,
		})
		if err := server.Start(ctx); err != nil {
			logger.Errorf("web", "server start error: %v", err)
		} else {
			defer server.Stop()
			logger.Infof("web", "companion API listening on %s", serverCfg.ListenAddr)
		}
	}

	// Live layer-name reload on config edits.
	go func() {
		if werr := config.Watch(ctx, *configPath, logger, func(c config.Config) {
			a.Layers.SetNames(c.Layers)
		}); werr != nil {
			logger.Errorf("config", "watch unavailable: %v", werr)
		}
	}()

	// Switch the console to KD_GRAPHICS so the hardware cursor cannot
	// blink over the framebuffer.
	if !*preview {
		// The console keyboard is the only local escape hatch once the VT
		// is in graphics mode.
		system.StartExitOnEsc(ctx, logger, func() { a.Exit(nil) })
		if err := system.SetGraphicsModeWithLog(logger); err != nil {
			logger.Errorf("tty", "set graphics mode failed: %v", err)
		}
		_ = system.HideCursorWithLog(logger)
		defer func() {
			_ = system.ShowCursorWithLog(logger)
			_ = system.RestoreTextModeWithLog(logger)
		}()
	}

	if err := a.Start(ctx); err != nil && ctx.Err() == nil {
		fmt.Println("app error:", err)
		os.Exit(1)
	}
}
