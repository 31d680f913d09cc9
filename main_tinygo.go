//go:build tinygo

package main

import (
	"context"
	"machine"

	"github.com/lilykb/statusview/internal/app"
	"github.com/lilykb/statusview/internal/keyboard"
	"github.com/lilykb/statusview/internal/render"
	"github.com/lilykb/statusview/internal/state"
)

// defaultSide is the build-time role of this half; override with
// -ldflags "-X main.defaultSide=secondary" when flashing the right unit.
var defaultSide = "primary"

func main() {
	side, err := state.ParseSide(defaultSide)
	if err != nil {
		side = state.SidePrimary
	}

	store := state.NewStore()
	source := keyboard.NewUARTSource(machine.UART0, 115200)

	a := app.New(side, store, render.NewOLEDRenderer(), source)
	if err := a.Start(context.Background()); err != nil {
		// Nothing to fall back to on the MCU; the panel stays dark.
		return
	}
}
