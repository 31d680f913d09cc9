package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInset(t *testing.T) {
	r := image.Rect(0, 0, 128, 32)
	assert.Equal(t, image.Rect(2, 2, 126, 30), Inset(r, 2))
	assert.Equal(t, r, Inset(r, 0))
	assert.Equal(t, r, Inset(r, -1))

	// Over-inset collapses instead of inverting.
	got := Inset(image.Rect(0, 0, 4, 4), 3)
	assert.True(t, got.Dx() >= 0 && got.Dy() >= 0)
}

func TestSplitHorizontal(t *testing.T) {
	top, bottom := SplitHorizontal(image.Rect(0, 0, 128, 32), 16)
	assert.Equal(t, image.Rect(0, 0, 128, 16), top)
	assert.Equal(t, image.Rect(0, 16, 128, 32), bottom)

	top, bottom = SplitHorizontal(image.Rect(0, 0, 128, 32), 100)
	assert.Equal(t, 32, top.Dy())
	assert.True(t, bottom.Empty())
}

func TestSplitVertical(t *testing.T) {
	left, right := SplitVertical(image.Rect(0, 0, 128, 32), 64)
	assert.Equal(t, image.Rect(0, 0, 64, 32), left)
	assert.Equal(t, image.Rect(64, 0, 128, 32), right)

	left, _ = SplitVertical(image.Rect(0, 0, 128, 32), -5)
	assert.True(t, left.Empty())
}

func TestFitSquare(t *testing.T) {
	assert.Equal(t, image.Rect(0, 0, 32, 32), FitSquare(image.Rect(0, 0, 128, 32)))
	assert.Equal(t, image.Rect(10, 10, 20, 20), FitSquare(image.Rect(10, 10, 20, 40)))
}
