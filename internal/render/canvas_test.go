package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilykb/statusview/internal/assets"
)

func TestCanvasSize(t *testing.T) {
	c := NewCanvas()
	w, h := c.Size()
	assert.Equal(t, CanvasWidth, w)
	assert.Equal(t, CanvasHeight, h)
}

func TestCanvasPNGRoundtrip(t *testing.T) {
	c := NewCanvas()
	c.FillBackground()
	c.DrawText("LAYER: NAV", 2, 2, TextStyle{})
	c.Publish()

	data, err := c.PNG()
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, CanvasWidth, img.Bounds().Dx())
	assert.Equal(t, CanvasHeight, img.Bounds().Dy())
}

func TestCanvasPNGShowsOnlyPublishedFrames(t *testing.T) {
	c := NewCanvas()
	c.FillBackground()
	c.Publish()

	// Draw into the back buffer without publishing; the front stays black.
	c.DrawBitmap(assets.Logo(), 0, 0)

	data, err := c.PNG()
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	for x := 0; x < CanvasWidth; x += 8 {
		r, g, b, _ := img.At(x, CanvasHeight/2).RGBA()
		assert.Zero(t, r+g+b, "unpublished pixels leaked at x=%d", x)
	}
}

func TestCanvasDrawBarClamps(t *testing.T) {
	c := NewCanvas()
	c.FillBackground()
	rect := image.Rect(2, 18, 126, 30)
	fill := color.RGBA{R: 0xFF, G: 0x40, B: 0x40, A: 0xFF}

	c.DrawBar(rect, 500, 200, fill)

	// Frame pixels are foreground.
	assert.Equal(t, Foreground, c.Image().RGBAAt(rect.Min.X, rect.Min.Y))
	assert.Equal(t, Foreground, c.Image().RGBAAt(rect.Max.X-1, rect.Max.Y-1))
	// Clamped to max: the interior is filled edge to edge.
	assert.Equal(t, fill, c.Image().RGBAAt(rect.Min.X+1, rect.Min.Y+1))
	assert.Equal(t, fill, c.Image().RGBAAt(rect.Max.X-2, rect.Min.Y+1))
}

func TestCanvasDrawBarZeroAndDegenerate(t *testing.T) {
	c := NewCanvas()
	c.FillBackground()
	rect := image.Rect(2, 18, 126, 30)

	c.DrawBar(rect, 0, 200, color.White)
	assert.Equal(t, Background, c.Image().RGBAAt(rect.Min.X+1, rect.Min.Y+1), "zero value leaves the interior empty")

	// max <= 0 and empty rects must not panic or draw.
	c.DrawBar(rect, 10, 0, color.White)
	c.DrawBar(image.Rectangle{}, 10, 200, color.White)
	c.DrawBar(image.Rect(300, 300, 310, 310), 10, 200, color.White)
}

func TestCanvasDrawTextAlign(t *testing.T) {
	c := NewCanvas()
	c.FillBackground()

	// Right-aligned text must end at the anchor, not start there.
	c.DrawText("WPM", CanvasWidth-2, 2, TextStyle{Align: TextAlignRight})
	lit := false
	for x := CanvasWidth - 2 - c.TextWidth("WPM"); x < CanvasWidth-2; x++ {
		for y := 0; y < 16; y++ {
			if c.Image().RGBAAt(x, y) == Foreground {
				lit = true
			}
		}
	}
	assert.True(t, lit)
	for y := 0; y < CanvasHeight; y++ {
		assert.NotEqual(t, Foreground, c.Image().RGBAAt(CanvasWidth-1, y), "text overran the right anchor")
	}
}

func TestCanvasDrawBitmap(t *testing.T) {
	bm := &assets.Bitmap{Width: 8, Height: 1, Bits: []byte{0b10100000}}
	c := NewCanvas()
	c.FillBackground()
	c.DrawBitmap(bm, 10, 10)

	assert.Equal(t, Foreground, c.Image().RGBAAt(10, 10))
	assert.Equal(t, Background, c.Image().RGBAAt(11, 10))
	assert.Equal(t, Foreground, c.Image().RGBAAt(12, 10))
}
