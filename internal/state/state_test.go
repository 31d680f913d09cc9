package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilykb/statusview/internal/keymap"
)

func TestParseSide(t *testing.T) {
	tests := []struct {
		in      string
		want    Side
		wantErr bool
	}{
		{in: "primary", want: SidePrimary},
		{in: "left", want: SidePrimary},
		{in: "central", want: SidePrimary},
		{in: "  Primary ", want: SidePrimary},
		{in: "secondary", want: SideSecondary},
		{in: "right", want: SideSecondary},
		{in: "peripheral", want: SideSecondary},
		{in: "RIGHT", want: SideSecondary},
		{in: "", wantErr: true},
		{in: "middle", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSide(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSideString(t *testing.T) {
	assert.Equal(t, "primary", SidePrimary.String())
	assert.Equal(t, "secondary", SideSecondary.String())
	assert.True(t, SidePrimary.IsPrimary())
	assert.False(t, SideSecondary.IsPrimary())
}

func TestStore(t *testing.T) {
	store := NewStore()
	assert.Equal(t, State{}, store.Snapshot())

	store.SetLayer(2)
	store.SetMods(keymap.ModLeftShift)
	store.SetWPM(140)

	snap := store.Snapshot()
	assert.Equal(t, uint8(2), snap.Layer)
	assert.Equal(t, keymap.ModLeftShift, snap.Mods)
	assert.Equal(t, uint16(140), snap.WPM)

	// Each setter overwrites only its field.
	store.SetWPM(0)
	snap = store.Snapshot()
	assert.Equal(t, uint8(2), snap.Layer)
	assert.Equal(t, uint16(0), snap.WPM)
}
