package keymap

import "strings"

// ModMask mirrors the HID explicit-modifier byte reported by the keyboard.
type ModMask uint8

const (
	ModLeftCtrl ModMask = 1 << iota
	ModLeftShift
	ModLeftAlt
	ModLeftGui
	ModRightCtrl
	ModRightShift
	ModRightAlt
	ModRightGui
)

// NoMods is shown when no recognized modifier is held.
const NoMods = "---"

// modTokens fixes the display order. Either hand's bit emits the token once.
var modTokens = []struct {
	bits  ModMask
	token string
}{
	{ModLeftCtrl | ModRightCtrl, "Ctl"},
	{ModLeftAlt | ModRightAlt, "Alt"},
	{ModLeftShift | ModRightShift, "Sft"},
	{ModLeftGui | ModRightGui, "Gui"},
}

// FormatMods renders the held modifiers as e.g. "Ctl Sft".
// Output is bounded by the four tokens; empty or unrecognized masks render
// as the NoMods placeholder.
func FormatMods(mask ModMask) string {
	var b strings.Builder
	b.Grow(len("Ctl Alt Sft Gui"))
	for _, t := range modTokens {
		if mask&t.bits == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.token)
	}
	if b.Len() == 0 {
		return NoMods
	}
	return b.String()
}
