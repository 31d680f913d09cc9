package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilykb/statusview/internal/events"
)

func TestTierColor(t *testing.T) {
	tests := []struct {
		wpm  uint16
		want string
	}{
		{wpm: 0, want: "slow"},
		{wpm: 59, want: "slow"},
		{wpm: 60, want: "warm"},
		{wpm: 99, want: "warm"},
		{wpm: 100, want: "fast"},
		{wpm: 250, want: "fast"},
	}
	names := map[string]interface{}{"slow": TierSlow, "warm": TierWarm, "fast": TierFast}
	for _, tt := range tests {
		assert.Equal(t, names[tt.want], TierColor(tt.wpm), "wpm=%d", tt.wpm)
	}
}

func TestSecondaryViewInitial(t *testing.T) {
	v := NewSecondaryView()
	snap := v.Snapshot()

	assert.Equal(t, "WPM", snap.Header.Text)
	assert.Equal(t, "  0", snap.Value.Text)
	assert.Equal(t, 0, snap.Bar.Value)
	assert.Equal(t, BarMaxWPM, snap.Bar.Max)
	assert.Equal(t, TierSlow, snap.Bar.Fill)
}

func TestSecondaryViewOnWPMChanged(t *testing.T) {
	tests := []struct {
		wpm      uint16
		wantText string
		wantBar  int
	}{
		{wpm: 10, wantText: " 10", wantBar: 10},
		{wpm: 65, wantText: " 65", wantBar: 65},
		{wpm: 105, wantText: "105", wantBar: 105},
		{wpm: 200, wantText: "200", wantBar: 200},
		// The label is never clamped; only the bar is.
		{wpm: 240, wantText: "240", wantBar: 200},
		{wpm: 1000, wantText: "1000", wantBar: 200},
	}
	for _, tt := range tests {
		v := NewSecondaryView()
		got := v.OnWPMChanged(events.WPMChanged(tt.wpm))
		assert.Equal(t, events.Propagate, got)

		snap := v.Snapshot()
		assert.Equal(t, tt.wantText, snap.Value.Text, "wpm=%d", tt.wpm)
		assert.Equal(t, tt.wantBar, snap.Bar.Value, "wpm=%d", tt.wpm)
		assert.Equal(t, TierColor(tt.wpm), snap.Bar.Fill, "wpm=%d", tt.wpm)
	}
}

func TestSecondaryViewTypingSession(t *testing.T) {
	v := NewSecondaryView()
	for _, wpm := range []uint16{10, 65, 105} {
		v.OnWPMChanged(events.WPMChanged(wpm))
	}
	snap := v.Snapshot()
	assert.Equal(t, "105", snap.Value.Text)
	assert.Equal(t, 105, snap.Bar.Value)
	assert.Equal(t, TierFast, snap.Bar.Fill)
}

func TestSecondaryViewDraw(t *testing.T) {
	v := NewSecondaryView()
	v.OnWPMChanged(events.WPMChanged(72))

	d := newFakeDrawer(128, 32)
	v.Draw(d, stateSnapshot())

	require.Equal(t, []string{"WPM", " 72"}, d.texts)
	require.Len(t, d.bars, 1)
	assert.Equal(t, 72, d.bars[0].value)
	assert.Equal(t, BarMaxWPM, d.bars[0].max)
	assert.Equal(t, TierWarm, d.bars[0].fill)
	assert.True(t, d.bars[0].rect.Min.Y >= 16, "bar lives in the bottom row")
}
