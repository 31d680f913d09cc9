package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilykb/statusview/internal/events"
	"github.com/lilykb/statusview/internal/keymap"
)

func TestPrimaryViewStartsIdle(t *testing.T) {
	v := NewPrimaryView(nil)
	snap := v.Snapshot()

	assert.Equal(t, PhaseIdle, snap.Phase)
	assert.False(t, snap.LogoHidden)
	assert.True(t, snap.Layer.Hidden)
	assert.True(t, snap.Mods.Hidden)
	assert.Equal(t, "---", snap.Mods.Text)
}

func TestPrimaryViewFirstLayerEventActivates(t *testing.T) {
	v := NewPrimaryView(keymap.NewTable(nil))

	v.OnLayerChanged(events.LayerChanged(1))

	snap := v.Snapshot()
	assert.Equal(t, PhaseActive, snap.Phase)
	assert.True(t, snap.LogoHidden)
	assert.False(t, snap.Layer.Hidden)
	assert.False(t, snap.Mods.Hidden)
	assert.Equal(t, "LAYER: NAV", snap.Layer.Text)
	assert.Equal(t, "---", snap.Mods.Text)
}

func TestPrimaryViewTransitionIsMonotonic(t *testing.T) {
	v := NewPrimaryView(keymap.NewTable(nil))

	v.OnLayerChanged(events.LayerChanged(2))
	require.True(t, v.Snapshot().LogoHidden)

	// Nothing that arrives afterwards brings the logo back, including a
	// return to the base layer and an out-of-range index.
	v.OnLayerChanged(events.LayerChanged(0))
	assert.True(t, v.Snapshot().LogoHidden)
	assert.Equal(t, "LAYER: QWERTY", v.Snapshot().Layer.Text)

	v.OnLayerChanged(events.LayerChanged(255))
	snap := v.Snapshot()
	assert.True(t, snap.LogoHidden)
	assert.Equal(t, PhaseActive, snap.Phase)
	assert.Equal(t, "LAYER: ???", snap.Layer.Text)
}

func TestPrimaryViewOutOfRangeFirstEventStillActivates(t *testing.T) {
	v := NewPrimaryView(keymap.NewTable(nil))

	v.OnLayerChanged(events.LayerChanged(9))

	snap := v.Snapshot()
	assert.Equal(t, PhaseActive, snap.Phase)
	assert.Equal(t, "LAYER: ???", snap.Layer.Text)
}

func TestPrimaryViewModifierBeforeFirstLayerEvent(t *testing.T) {
	v := NewPrimaryView(keymap.NewTable(nil))

	// A modifier tap racing ahead of the first layer event updates the
	// text but must not reveal anything or hide the logo.
	v.OnModifiersChanged(events.ModifiersChanged(keymap.ModLeftCtrl | keymap.ModLeftShift))

	snap := v.Snapshot()
	assert.Equal(t, PhaseIdle, snap.Phase)
	assert.False(t, snap.LogoHidden)
	assert.True(t, snap.Mods.Hidden)
	assert.Equal(t, "Ctl Sft", snap.Mods.Text)

	// Once the layer event lands, the already-updated text shows as is.
	v.OnLayerChanged(events.LayerChanged(0))
	snap = v.Snapshot()
	assert.False(t, snap.Mods.Hidden)
	assert.Equal(t, "Ctl Sft", snap.Mods.Text)
}

func TestPrimaryViewModifierRelease(t *testing.T) {
	v := NewPrimaryView(keymap.NewTable(nil))
	v.OnLayerChanged(events.LayerChanged(0))
	v.OnModifiersChanged(events.ModifiersChanged(keymap.ModLeftGui))
	assert.Equal(t, "Gui", v.Snapshot().Mods.Text)

	v.OnModifiersChanged(events.ModifiersChanged(0))
	snap := v.Snapshot()
	assert.Equal(t, "---", snap.Mods.Text)
	assert.False(t, snap.Mods.Hidden, "release keeps the placeholder visible")
}

func TestPrimaryViewHandlersPropagate(t *testing.T) {
	v := NewPrimaryView(nil)
	assert.Equal(t, events.Propagate, v.OnLayerChanged(events.LayerChanged(1)))
	assert.Equal(t, events.Propagate, v.OnModifiersChanged(events.ModifiersChanged(0)))
}

func TestPrimaryViewDraw(t *testing.T) {
	v := NewPrimaryView(keymap.NewTable(nil))
	d := newFakeDrawer(128, 32)

	v.Draw(d, stateSnapshot())
	assert.Equal(t, 1, d.bitmaps, "idle phase draws only the logo")
	assert.Empty(t, d.texts)

	v.OnLayerChanged(events.LayerChanged(1))
	d = newFakeDrawer(128, 32)
	v.Draw(d, stateSnapshot())
	assert.Equal(t, 0, d.bitmaps)
	require.Equal(t, []string{"LAYER: NAV", "---"}, d.texts)
}
