package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMods(t *testing.T) {
	tests := []struct {
		name string
		mask ModMask
		want string
	}{
		{name: "none", mask: 0, want: "---"},
		{name: "left ctrl", mask: ModLeftCtrl, want: "Ctl"},
		{name: "right ctrl", mask: ModRightCtrl, want: "Ctl"},
		{name: "both ctrls coalesce", mask: ModLeftCtrl | ModRightCtrl, want: "Ctl"},
		{name: "shift then ctrl held keeps display order", mask: ModLeftShift | ModLeftCtrl, want: "Ctl Sft"},
		{name: "alt before shift", mask: ModRightShift | ModLeftAlt, want: "Alt Sft"},
		{name: "gui last", mask: ModLeftGui | ModLeftCtrl, want: "Ctl Gui"},
		{name: "everything", mask: 0xFF, want: "Ctl Alt Sft Gui"},
		{name: "mixed hands", mask: ModLeftCtrl | ModRightAlt | ModRightGui, want: "Ctl Alt Gui"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMods(tt.mask))
		})
	}
}
