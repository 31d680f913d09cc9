package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilykb/statusview/internal/events"
	"github.com/lilykb/statusview/internal/keyboard"
	"github.com/lilykb/statusview/internal/keymap"
	"github.com/lilykb/statusview/internal/render"
	"github.com/lilykb/statusview/internal/state"
	"github.com/lilykb/statusview/internal/view"
)

func startApp(t *testing.T, side state.Side) (*App, *keyboard.Feed, func()) {
	t.Helper()
	store := state.NewStore()
	feed := keyboard.NewFeed(16)
	a := New(side, store, &render.NoopRenderer{}, feed)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Start(ctx) }()

	stop := func() {
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("app did not stop")
		}
	}
	return a, feed, stop
}

func TestAppPrimaryPipeline(t *testing.T) {
	a, feed, stop := startApp(t, state.SidePrimary)
	defer stop()

	require.Eventually(t, func() bool {
		_, ok := a.PrimarySnapshot()
		return ok
	}, time.Second, 5*time.Millisecond, "primary view never constructed")

	feed.Emit(events.ModifiersChanged(keymap.ModLeftCtrl))
	feed.Emit(events.LayerChanged(1))
	feed.Emit(events.WPMChanged(90))

	require.Eventually(t, func() bool {
		snap, ok := a.PrimarySnapshot()
		return ok && snap.Phase == view.PhaseActive
	}, time.Second, 5*time.Millisecond)

	snap, ok := a.PrimarySnapshot()
	require.True(t, ok)
	assert.Equal(t, "LAYER: NAV", snap.Layer.Text)
	assert.Equal(t, "Ctl", snap.Mods.Text)
	assert.True(t, snap.LogoHidden)

	// The store reflects every kind, including the one with no view on
	// this side.
	require.Eventually(t, func() bool {
		return a.Store.Snapshot().WPM == 90
	}, time.Second, 5*time.Millisecond)

	_, ok = a.SecondarySnapshot()
	assert.False(t, ok, "inactive side's view must not exist")
}

func TestAppSecondaryPipeline(t *testing.T) {
	a, feed, stop := startApp(t, state.SideSecondary)
	defer stop()

	feed.Emit(events.WPMChanged(240))
	feed.Emit(events.LayerChanged(3)) // no subscriber on this side

	require.Eventually(t, func() bool {
		snap, ok := a.SecondarySnapshot()
		return ok && snap.Value.Text == "240"
	}, time.Second, 5*time.Millisecond)

	snap, _ := a.SecondarySnapshot()
	assert.Equal(t, 200, snap.Bar.Value, "bar clamps even though the label does not")
	assert.Equal(t, view.TierFast, snap.Bar.Fill)
	assert.Equal(t, uint8(3), a.Store.Snapshot().Layer, "store still records the other side's kinds")

	_, ok := a.PrimarySnapshot()
	assert.False(t, ok)
}

func TestAppExit(t *testing.T) {
	store := state.NewStore()
	a := New(state.SidePrimary, store, &render.NoopRenderer{}, keyboard.NewFeed(1))

	done := make(chan error, 1)
	go func() { done <- a.Start(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	a.Exit(nil)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Exit did not stop the app")
	}
}

func TestAppSetupScreenLeavesOnFirstEvent(t *testing.T) {
	store := state.NewStore()
	feed := keyboard.NewFeed(16)
	a := New(state.SidePrimary, store, &render.NoopRenderer{}, feed)
	a.Setup = true
	a.SetupURL = "https://lilykb.example/setup"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Start(ctx) }()
	defer func() {
		cancel()
		<-done
	}()

	require.Eventually(t, func() bool {
		_, ok := a.PrimarySnapshot()
		return ok
	}, time.Second, 5*time.Millisecond)

	feed.Emit(events.LayerChanged(0))
	require.Eventually(t, func() bool {
		snap, ok := a.PrimarySnapshot()
		return ok && snap.Phase == view.PhaseActive
	}, time.Second, 5*time.Millisecond, "first event must land in the side view after leaving setup")
}
