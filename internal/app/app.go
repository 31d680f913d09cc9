// Package app wires the event pipeline to the renderer and owns the process
// lifecycle.
package app

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lilykb/statusview/internal/events"
	"github.com/lilykb/statusview/internal/keyboard"
	"github.com/lilykb/statusview/internal/keymap"
	"github.com/lilykb/statusview/internal/render"
	"github.com/lilykb/statusview/internal/state"
	"github.com/lilykb/statusview/internal/view"
)

type App struct {
	Side   state.Side
	Store  *state.Store
	Render render.Renderer
	Source keyboard.Source
	Router *events.Router
	Layers *keymap.Table
	Logger Logger

	// Setup shows the companion-app QR screen until the first keyboard
	// event arrives.
	Setup    bool
	SetupURL string

	// viewMu guards the view pointers: Start sets them while the status
	// API may already be reading snapshots.
	viewMu    sync.RWMutex
	primary   *view.PrimaryView
	secondary *view.SecondaryView

	currentScreen render.Screen
	inSetup       atomic.Bool

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(side state.Side, store *state.Store, renderer render.Renderer, source keyboard.Source) *App {
	return &App{
		Side:   side,
		Store:  store,
		Render: renderer,
		Source: source,
		Router: events.NewRouter(),
		Layers: keymap.NewTable(nil),
		Logger: NoopLogger{},
		exitCh: make(chan error, 1),
	}
}

// Exit requests the app to stop running.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

func (app *App) Start(ctx context.Context) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	app.exitOnce.Store(false)

	if app.Render == nil {
		app.Render = &render.NoopRenderer{}
	}

	// Only the active side's view ever exists. The other side's event
	// kinds have no subscribers, so the router drops them without
	// allocating.
	var sideScreen render.Screen
	if app.Side.IsPrimary() {
		primary := view.NewPrimaryView(app.Layers)
		app.Router.Subscribe(events.KindLayerChanged, primary.OnLayerChanged)
		app.Router.Subscribe(events.KindModifiersChanged, primary.OnModifiersChanged)
		app.viewMu.Lock()
		app.primary = primary
		app.viewMu.Unlock()
		sideScreen = primary
	} else {
		secondary := view.NewSecondaryView()
		app.Router.Subscribe(events.KindWPMChanged, secondary.OnWPMChanged)
		app.viewMu.Lock()
		app.secondary = secondary
		app.viewMu.Unlock()
		sideScreen = secondary
	}

	if err := app.Render.Start(ctx); err != nil {
		app.Logger.Errorf("app", "renderer start error: %v", err)
		return err
	}
	defer app.Render.Stop()

	first := sideScreen
	if app.Setup && app.SetupURL != "" {
		first = view.NewSetupScreen(app.SetupURL, app.Logger)
		app.inSetup.Store(true)
	}
	if err := app.setScreen(ctx, first); err != nil {
		return err
	}

	// Force an immediate first redraw so the logo shows without waiting
	// for the loop.
	app.Render.RedrawWithState(app.Store.Snapshot())

	loopCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.Render.RunLoop(loopCtx, app.Store)
	}()

	if app.Source != nil {
		if err := app.Source.Start(loopCtx); err != nil {
			app.Logger.Errorf("app", "event source start error: %v", err)
			cancel()
			wg.Wait()
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.consume(loopCtx, sideScreen)
		}()
	}

	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case err = <-app.exitCh:
	}
	cancel()
	if app.Source != nil {
		_ = app.Source.Stop()
	}
	wg.Wait()
	return err
}

// consume applies each event to the store, routes it, and leaves the setup
// screen on the first sign of keyboard activity.
func (app *App) consume(ctx context.Context, sideScreen render.Screen) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-app.Source.Events():
			if !ok {
				return
			}
			app.apply(ev)
			if app.inSetup.CompareAndSwap(true, false) {
				if err := app.setScreen(ctx, sideScreen); err != nil {
					app.Logger.Errorf("app", "screen switch error: %v", err)
				}
			}
		}
	}
}

func (app *App) apply(ev events.Event) {
	// The store is updated first so pull-style readers (status API) see
	// the value the handlers are about to render.
	switch ev.Kind {
	case events.KindLayerChanged:
		app.Store.SetLayer(ev.Layer)
	case events.KindModifiersChanged:
		app.Store.SetMods(ev.Mods)
	case events.KindWPMChanged:
		app.Store.SetWPM(ev.WPM)
	}
	app.Router.Dispatch(ev)
}

func (app *App) setScreen(ctx context.Context, screen render.Screen) error {
	if app.currentScreen != nil {
		_ = app.currentScreen.Stop()
	}
	app.currentScreen = screen
	app.Render.SetScreen(screen)
	return screen.Start(ctx)
}

// PrimarySnapshot exposes the primary view's element state, when this unit
// renders the primary side.
func (app *App) PrimarySnapshot() (view.PrimarySnapshot, bool) {
	app.viewMu.RLock()
	primary := app.primary
	app.viewMu.RUnlock()
	if primary == nil {
		return view.PrimarySnapshot{}, false
	}
	return primary.Snapshot(), true
}

// SecondarySnapshot exposes the secondary view's element state, when this
// unit renders the secondary side.
func (app *App) SecondarySnapshot() (view.SecondarySnapshot, bool) {
	app.viewMu.RLock()
	secondary := app.secondary
	app.viewMu.RUnlock()
	if secondary == nil {
		return view.SecondarySnapshot{}, false
	}
	return secondary.Snapshot(), true
}

func (app *App) Stop() error {
	app.Exit(nil)
	return nil
}
