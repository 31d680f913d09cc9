package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogoDimensions(t *testing.T) {
	logo := Logo()
	assert.Equal(t, 128, logo.Width)
	assert.Equal(t, 32, logo.Height)
	require.Len(t, logo.Bits, 128/8*32)
}

func TestLogoHasInk(t *testing.T) {
	logo := Logo()
	set := 0
	for y := 0; y < logo.Height; y++ {
		for x := 0; x < logo.Width; x++ {
			if logo.At(x, y) {
				set++
			}
		}
	}
	assert.Greater(t, set, 100, "wordmark must not be blank")
}

func TestBitmapAt(t *testing.T) {
	bm := &Bitmap{Width: 16, Height: 2, Bits: []byte{0x80, 0x01, 0x00, 0xFF}}

	assert.True(t, bm.At(0, 0))
	assert.False(t, bm.At(1, 0))
	assert.True(t, bm.At(15, 0))
	assert.False(t, bm.At(0, 1))
	assert.True(t, bm.At(8, 1))

	// Out of bounds reads as unset, never panics.
	assert.False(t, bm.At(-1, 0))
	assert.False(t, bm.At(16, 0))
	assert.False(t, bm.At(0, 2))
}
