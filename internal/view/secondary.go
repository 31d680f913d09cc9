package view

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/lilykb/statusview/internal/events"
	"github.com/lilykb/statusview/internal/render"
	"github.com/lilykb/statusview/internal/render/layout"
	"github.com/lilykb/statusview/internal/state"
)

// BarMaxWPM caps the bar position. The numeric label is never clamped.
const BarMaxWPM = 200

// Tier colors, matching the original widget.
var (
	TierSlow = color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
	TierWarm = color.RGBA{R: 0xFF, G: 0xD0, B: 0x00, A: 0xFF}
	TierFast = color.RGBA{R: 0xFF, G: 0x40, B: 0x40, A: 0xFF}
)

// TierColor returns the bar fill for wpm. The boundaries already belong to
// the next tier: 60 is warm, 100 is fast.
func TierColor(wpm uint16) color.RGBA {
	switch {
	case wpm < 60:
		return TierSlow
	case wpm < 100:
		return TierWarm
	default:
		return TierFast
	}
}

// SecondaryView renders the right half: the WPM number and its capped,
// color-tiered progress bar. It keeps no history; every update is a pure
// function of the latest event.
type SecondaryView struct {
	mu     sync.RWMutex
	header Label
	value  Label
	bar    Bar
}

func NewSecondaryView() *SecondaryView {
	return &SecondaryView{
		header: Label{Text: "WPM"},
		value:  Label{Text: fmt.Sprintf("%3d", 0)},
		bar:    Bar{Max: BarMaxWPM, Fill: TierSlow},
	}
}

// OnWPMChanged updates the value label (unclamped), the bar position
// (clamped to BarMaxWPM) and the tier color under one lock, so no mixed
// intermediate state is ever observable.
func (v *SecondaryView) OnWPMChanged(ev events.Event) events.Disposition {
	if v == nil {
		return events.Propagate
	}
	wpm := ev.WPM
	text := fmt.Sprintf("%3d", wpm)
	barValue := int(wpm)
	if barValue > BarMaxWPM {
		barValue = BarMaxWPM
	}
	fill := TierColor(wpm)

	v.mu.Lock()
	v.value.Text = text
	v.bar.Value = barValue
	v.bar.Fill = fill
	v.mu.Unlock()
	return events.Propagate
}

// SecondarySnapshot is the element state at one instant.
type SecondarySnapshot struct {
	Header Label
	Value  Label
	Bar    Bar
}

func (v *SecondaryView) Snapshot() SecondarySnapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return SecondarySnapshot{Header: v.header, Value: v.value, Bar: v.bar}
}

func (v *SecondaryView) Start(ctx context.Context) error { return nil }
func (v *SecondaryView) Stop() error                     { return nil }

func (v *SecondaryView) Draw(d render.Drawer, _ state.State) {
	snap := v.Snapshot()
	width, height := d.Size()
	full := image.Rect(0, 0, width, height)

	// Top row: header left, value right-aligned. Bottom row: the bar.
	top, bottom := layout.SplitHorizontal(full, height/2)
	d.DrawText(snap.Header.Text, top.Min.X+2, top.Min.Y+2, render.TextStyle{})
	d.DrawText(snap.Value.Text, top.Max.X-2, top.Min.Y+2, render.TextStyle{Align: render.TextAlignRight})
	d.DrawBar(layout.Inset(bottom, 2), snap.Bar.Value, snap.Bar.Max, snap.Bar.Fill)
}
