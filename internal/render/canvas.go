package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lilykb/statusview/internal/assets"
)

// Canvas is the offscreen logical surface screens draw into. Draw methods
// run only on the render-loop goroutine; Publish copies the frame into a
// front buffer for readers on other goroutines (the web frame preview).
type Canvas struct {
	img  *image.RGBA
	face font.Face

	mu    sync.Mutex
	front *image.RGBA
}

func NewCanvas() *Canvas {
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight)),
		front: image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight)),
		face:  basicfont.Face7x13,
	}
}

// SetFace swaps the text face. Call before the render loop starts.
func (c *Canvas) SetFace(face font.Face) {
	if face != nil {
		c.face = face
	}
}

// Image exposes the back buffer to the owning backend for blitting.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Publish snapshots the back buffer so PNG can serve a whole frame.
func (c *Canvas) Publish() {
	c.mu.Lock()
	copy(c.front.Pix, c.img.Pix)
	c.mu.Unlock()
}

// PNG encodes the last published frame.
func (c *Canvas) PNG() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.front); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Drawer implementation

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) FillBackground() {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
}

func (c *Canvas) TextWidth(text string) int {
	return font.MeasureString(c.face, text).Ceil()
}

func (c *Canvas) DrawText(text string, x, y int, style TextStyle) {
	fg := style.Color
	if fg == nil {
		fg = Foreground
	}
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  &image.Uniform{C: fg},
		Face: c.face,
	}
	width := drawer.MeasureString(text).Ceil()
	switch style.Align {
	case TextAlignCenter:
		x -= width / 2
	case TextAlignRight:
		x -= width
	}
	// y is the top of the glyph box; the font drawer wants the baseline.
	baseline := y + c.face.Metrics().Ascent.Ceil()
	drawer.Dot = fixed.P(x, baseline)
	drawer.DrawString(text)
}

func (c *Canvas) DrawBitmap(bm *assets.Bitmap, x, y int) {
	if bm == nil {
		return
	}
	for by := 0; by < bm.Height; by++ {
		for bx := 0; bx < bm.Width; bx++ {
			if bm.At(bx, by) {
				c.img.Set(x+bx, y+by, Foreground)
			}
		}
	}
}

func (c *Canvas) DrawBar(rect image.Rectangle, value, max int, fill color.Color) {
	rect = rect.Intersect(c.img.Bounds())
	if rect.Empty() || max <= 0 {
		return
	}
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}
	if fill == nil {
		fill = Foreground
	}

	// 1px frame in the foreground color, fill inside it.
	for x := rect.Min.X; x < rect.Max.X; x++ {
		c.img.Set(x, rect.Min.Y, Foreground)
		c.img.Set(x, rect.Max.Y-1, Foreground)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		c.img.Set(rect.Min.X, y, Foreground)
		c.img.Set(rect.Max.X-1, y, Foreground)
	}

	inner := image.Rect(rect.Min.X+1, rect.Min.Y+1, rect.Max.X-1, rect.Max.Y-1)
	if inner.Empty() {
		return
	}
	fillWidth := inner.Dx() * value / max
	if fillWidth <= 0 {
		return
	}
	filled := image.Rect(inner.Min.X, inner.Min.Y, inner.Min.X+fillWidth, inner.Max.Y)
	draw.Draw(c.img, filled, &image.Uniform{C: fill}, image.Point{}, draw.Src)
}

func (c *Canvas) DrawImage(img image.Image, rect image.Rectangle) {
	if img == nil {
		return
	}
	rect = rect.Intersect(c.img.Bounds())
	if rect.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(c.img, rect, img, img.Bounds(), xdraw.Over, nil)
}
