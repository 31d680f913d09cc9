// Package keymap maps keyboard firmware state (layer indices and modifier
// bitmasks) to the strings the status display shows.
package keymap

import "sync"

// UnknownLayer is shown for layer indices outside the configured table.
const UnknownLayer = "???"

// DefaultLayerNames matches the stock Lily58 keymap layer order.
var DefaultLayerNames = []string{"QWERTY", "NAV", "SYM", "FUN"}

// Table is the ordered layer-index to name lookup.
// Names can be swapped at runtime (config reload, web API) while the event
// path resolves them, so access is guarded.
type Table struct {
	mu    sync.RWMutex
	names []string
}

// NewTable returns a table over a copy of names.
// An empty names slice falls back to DefaultLayerNames.
func NewTable(names []string) *Table {
	if len(names) == 0 {
		names = DefaultLayerNames
	}
	t := &Table{names: make([]string, len(names))}
	copy(t.names, names)
	return t
}

// Name resolves idx to its display name, UnknownLayer when out of range.
func (t *Table) Name(idx uint8) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(idx) >= len(t.names) {
		return UnknownLayer
	}
	return t.names[idx]
}

// SetNames replaces the whole table with a copy of names.
// Empty input is ignored so a malformed config reload cannot blank the display.
func (t *Table) SetNames(names []string) {
	if len(names) == 0 {
		return
	}
	fresh := make([]string, len(names))
	copy(fresh, names)
	t.mu.Lock()
	t.names = fresh
	t.mu.Unlock()
}

// Names returns a copy of the current table.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}
