package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilykb/statusview/internal/events"
	"github.com/lilykb/statusview/internal/keymap"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want events.Event
		ok   bool
	}{
		{name: "layer", line: "layer 1", want: events.LayerChanged(1), ok: true},
		{name: "layer max", line: "layer 255", want: events.LayerChanged(255), ok: true},
		{name: "mods hex", line: "mods 0x05", want: events.ModifiersChanged(keymap.ModLeftCtrl | keymap.ModLeftAlt), ok: true},
		{name: "mods decimal", line: "mods 2", want: events.ModifiersChanged(keymap.ModLeftShift), ok: true},
		{name: "wpm", line: "wpm 87", want: events.WPMChanged(87), ok: true},
		{name: "surrounding whitespace", line: "  wpm 87 \r", want: events.WPMChanged(87), ok: true},
		{name: "layer overflow", line: "layer 256"},
		{name: "negative wpm", line: "wpm -1"},
		{name: "unknown verb", line: "caps on"},
		{name: "missing value", line: "layer"},
		{name: "extra field", line: "layer 1 2"},
		{name: "empty", line: ""},
		{name: "garbage value", line: "mods zz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			if !tt.ok {
				require.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFeedEmit(t *testing.T) {
	feed := NewFeed(1)
	require.True(t, feed.Emit(events.WPMChanged(10)))
	// Buffer full: the event is dropped, not blocked on.
	assert.False(t, feed.Emit(events.WPMChanged(11)))

	got := <-feed.Events()
	assert.Equal(t, events.WPMChanged(10), got)

	require.NoError(t, feed.Stop())
	require.NoError(t, feed.Stop(), "Stop is idempotent")
	_, open := <-feed.Events()
	assert.False(t, open)
}
