package view

import (
	"context"
	"sync"

	"github.com/lilykb/statusview/internal/assets"
	"github.com/lilykb/statusview/internal/events"
	"github.com/lilykb/statusview/internal/keymap"
	"github.com/lilykb/statusview/internal/render"
	"github.com/lilykb/statusview/internal/state"
)

// Phase is the primary view's display mode. The Idle to Active transition
// is one-way: once the logo is hidden it stays hidden for the process
// lifetime, no matter what arrives afterwards.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseActive
)

func (p Phase) String() string {
	if p == PhaseIdle {
		return "idle"
	}
	return "active"
}

const layerPrefix = "LAYER: "

// PrimaryView renders the left half: the logo while idle, then the layer
// and modifier labels once the first layer event arrives.
type PrimaryView struct {
	table *keymap.Table
	logo  *assets.Bitmap

	mu         sync.RWMutex
	phase      Phase
	logoHidden bool
	layer      Label
	mods       Label
}

func NewPrimaryView(table *keymap.Table) *PrimaryView {
	if table == nil {
		table = keymap.NewTable(nil)
	}
	return &PrimaryView{
		table: table,
		logo:  assets.Logo(),
		layer: Label{Text: layerPrefix + table.Name(0), Hidden: true},
		mods:  Label{Text: keymap.NoMods, Hidden: true},
	}
}

// OnLayerChanged resolves the new layer name and reveals the status text.
// The transition to Active is unconditional and idempotent; an out-of-range
// index resolves to the unknown label and still transitions. A bad index
// is data, not an error.
func (v *PrimaryView) OnLayerChanged(ev events.Event) events.Disposition {
	if v == nil {
		return events.Propagate
	}
	name := v.table.Name(ev.Layer)
	v.mu.Lock()
	v.phase = PhaseActive
	v.logoHidden = true
	v.layer.Text = layerPrefix + name
	v.layer.Hidden = false
	v.mods.Hidden = false
	v.mu.Unlock()
	return events.Propagate
}

// OnModifiersChanged rewrites the modifier label text only. Visibility is
// owned by the layer transition, so a modifier tap that races ahead of the
// first layer event cannot reveal text while the logo is still up.
func (v *PrimaryView) OnModifiersChanged(ev events.Event) events.Disposition {
	if v == nil {
		return events.Propagate
	}
	text := keymap.FormatMods(ev.Mods)
	v.mu.Lock()
	v.mods.Text = text
	v.mu.Unlock()
	return events.Propagate
}

// PrimarySnapshot is the element state at one instant, for drawing and the
// status API.
type PrimarySnapshot struct {
	Phase      Phase
	LogoHidden bool
	Layer      Label
	Mods       Label
}

func (v *PrimaryView) Snapshot() PrimarySnapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return PrimarySnapshot{
		Phase:      v.phase,
		LogoHidden: v.logoHidden,
		Layer:      v.layer,
		Mods:       v.mods,
	}
}

func (v *PrimaryView) Start(ctx context.Context) error { return nil }
func (v *PrimaryView) Stop() error                     { return nil }

func (v *PrimaryView) Draw(d render.Drawer, _ state.State) {
	snap := v.Snapshot()
	width, height := d.Size()

	if !snap.LogoHidden {
		d.DrawBitmap(v.logo, (width-v.logo.Width)/2, (height-v.logo.Height)/2)
		return
	}
	if !snap.Layer.Hidden {
		d.DrawText(snap.Layer.Text, 2, 2, render.TextStyle{})
	}
	if !snap.Mods.Hidden {
		d.DrawText(snap.Mods.Text, 2, 16, render.TextStyle{})
	}
}
