package keyboard

import (
	"strconv"
	"strings"

	"github.com/lilykb/statusview/internal/events"
	"github.com/lilykb/statusview/internal/keymap"
)

// The MCU emits newline-delimited status lines over the link:
//
//	layer 1
//	mods 0x05
//	wpm 87
//
// ParseLine maps one line to its event. Unrecognized or malformed lines
// report ok=false and are skipped; a glitchy link must never fault the
// display.
func ParseLine(line string) (ev events.Event, ok bool) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) != 2 {
		return events.Event{}, false
	}
	switch fields[0] {
	case "layer":
		n, err := strconv.ParseUint(fields[1], 10, 8)
		if err != nil {
			return events.Event{}, false
		}
		return events.LayerChanged(uint8(n)), true
	case "mods":
		// base 0 accepts both "0x05" and plain decimal.
		n, err := strconv.ParseUint(fields[1], 0, 8)
		if err != nil {
			return events.Event{}, false
		}
		return events.ModifiersChanged(keymap.ModMask(n)), true
	case "wpm":
		n, err := strconv.ParseUint(fields[1], 10, 16)
		if err != nil {
			return events.Event{}, false
		}
		return events.WPMChanged(uint16(n)), true
	default:
		return events.Event{}, false
	}
}
