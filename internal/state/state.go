// Package state holds the latest keyboard status the display derives from.
package state

import (
	"fmt"
	"strings"
	"sync"

	"github.com/lilykb/statusview/internal/keymap"
)

// Side identifies which physical half of the split this unit renders.
// It is resolved exactly once at startup and never changes afterwards;
// components receive it at construction and the inactive side's view is
// never built.
type Side uint8

const (
	// SidePrimary is the left half: logo on idle, then layer + modifiers.
	SidePrimary Side = iota
	// SideSecondary is the right half: WPM readout with progress bar.
	SideSecondary
)

func (s Side) IsPrimary() bool { return s == SidePrimary }

func (s Side) String() string {
	if s == SidePrimary {
		return "primary"
	}
	return "secondary"
}

// ParseSide resolves a configured side name. The physical names "left" and
// "right" are accepted as aliases for primary and secondary, as are the
// split-link roles "central" and "peripheral".
func ParseSide(raw string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "primary", "left", "central":
		return SidePrimary, nil
	case "secondary", "right", "peripheral":
		return SideSecondary, nil
	default:
		return SidePrimary, fmt.Errorf("unknown side %q (want primary|secondary|left|right)", raw)
	}
}

// State is the latest status reported by the keyboard firmware.
// Every field is overwritten wholesale by its event kind; nothing here
// accumulates history.
type State struct {
	Layer uint8
	Mods  keymap.ModMask
	WPM   uint16
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

func (store *Store) SetLayer(idx uint8) {
	store.mu.Lock()
	store.state.Layer = idx
	store.mu.Unlock()
}

func (store *Store) SetMods(mask keymap.ModMask) {
	store.mu.Lock()
	store.state.Mods = mask
	store.mu.Unlock()
}

func (store *Store) SetWPM(wpm uint16) {
	store.mu.Lock()
	store.state.WPM = wpm
	store.mu.Unlock()
}
