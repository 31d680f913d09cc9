// Package events routes keyboard state-change notifications to the view
// components that own the affected display elements.
package events

import "github.com/lilykb/statusview/internal/keymap"

// Kind discriminates the three event streams the firmware emits.
type Kind uint8

const (
	KindLayerChanged Kind = iota
	KindModifiersChanged
	KindWPMChanged

	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindLayerChanged:
		return "layer-changed"
	case KindModifiersChanged:
		return "modifiers-changed"
	case KindWPMChanged:
		return "wpm-changed"
	default:
		return "unknown"
	}
}

// Event carries the new value for one Kind. Only the field matching the
// Kind is meaningful; handlers read nothing else.
type Event struct {
	Kind  Kind
	Layer uint8
	Mods  keymap.ModMask
	WPM   uint16
}

func LayerChanged(idx uint8) Event {
	return Event{Kind: KindLayerChanged, Layer: idx}
}

func ModifiersChanged(mask keymap.ModMask) Event {
	return Event{Kind: KindModifiersChanged, Mods: mask}
}

func WPMChanged(wpm uint16) Event {
	return Event{Kind: KindWPMChanged, WPM: wpm}
}

// Disposition tells the dispatcher whether an event may continue to later
// subscribers. Display handlers always return Propagate so they never
// starve other consumers of the same stream.
type Disposition uint8

const (
	Propagate Disposition = iota
	Consumed
)

// Handler processes one event synchronously. Handlers must not block; they
// run on the keystroke-adjacent event path.
type Handler func(Event) Disposition
