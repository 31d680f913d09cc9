//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lilykb/statusview/internal/app"
	"github.com/lilykb/statusview/internal/keyboard"
	"github.com/lilykb/statusview/internal/render"
	"github.com/lilykb/statusview/internal/state"
	"github.com/lilykb/statusview/internal/web"
)

func main() {
	defaults, err := web.DefaultServerConfigFromEnv(":8080")
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}

	listenAddr := flag.String("listen", defaults.ListenAddr, "http listen address; also configurable via "+web.EnvListenAddr)
	devMode := flag.Bool("dev", defaults.DevMode, "enable dev mode; also configurable via "+web.EnvDevMode)
	sideName := flag.String("side", "primary", "which half to simulate: primary | secondary")
	scenario := flag.String("scenario", "typing", "startup scenario: typing | idle | speed-ramp | mod-burst")
	flag.Parse()

	side, err := state.ParseSide(*sideName)
	if err != nil {
		fmt.Println("side error:", err)
		os.Exit(2)
	}

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := app.NewZapLogger(*devMode)
	if err != nil {
		fmt.Println("logger error:", err)
		os.Exit(2)
	}
	defer logger.Sync()

	store := state.NewStore()
	feed := keyboard.NewFeed(64)
	renderer := render.NewImageRenderer()

	a := app.New(side, store, renderer, feed)
	a.Logger = logger

	startupScenario := strings.TrimSpace(*scenario)
	if startupScenario == "" {
		startupScenario = "typing"
	}
	control := NewSimControl(processCtx, feed, startupScenario)
	if err := control.ApplyScenario(startupScenario); err != nil {
		fmt.Println("scenario init error:", err)
		os.Exit(2)
	}

	server := web.NewHTTPServer(web.ServerConfig{ListenAddr: *listenAddr, DevMode: *devMode})
	mux := web.NewDefaultMux(web.APIV1Deps{
		Side:      side,
		Store:     store,
		Layers:    a.Layers,
		Frame:     renderer.Canvas().PNG,
		Primary:   a.PrimarySnapshot,
		Secondary: a.SecondarySnapshot,
	})
	registerSimEndpoints(mux, control)
	server.Handler = mux

	if err := server.Start(processCtx); err != nil {
		fmt.Println("server start error:", err)
		os.Exit(1)
	}
	defer server.Stop()

	fmt.Println("statusview simulator listening on", server.Addr)
	fmt.Println("Side:", side)
	fmt.Println("Scenario:", startupScenario)
	fmt.Println("Frame preview: http://" + trimLeadingColon(server.Addr) + "/api/v1/frame.png")

	if err := a.Start(processCtx); err != nil && processCtx.Err() == nil {
		fmt.Println("app error:", err)
		os.Exit(1)
	}
}

func trimLeadingColon(addr string) string {
	// Best-effort for display; don't attempt full URL parsing here.
	if len(addr) > 0 && addr[0] == ':' {
		return "127.0.0.1" + addr
	}
	if addr == "" {
		return "127.0.0.1:8080"
	}
	return addr
}
