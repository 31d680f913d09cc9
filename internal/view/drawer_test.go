package view

import (
	"image"
	"image/color"

	"github.com/lilykb/statusview/internal/assets"
	"github.com/lilykb/statusview/internal/render"
	"github.com/lilykb/statusview/internal/state"
)

// fakeDrawer records the draw calls a screen makes, in order.
type fakeDrawer struct {
	width, height int

	texts   []string
	bitmaps int
	images  int
	bars    []barCall
}

type barCall struct {
	rect       image.Rectangle
	value, max int
	fill       color.Color
}

func newFakeDrawer(width, height int) *fakeDrawer {
	return &fakeDrawer{width: width, height: height}
}

func (d *fakeDrawer) Size() (int, int)       { return d.width, d.height }
func (d *fakeDrawer) FillBackground()        {}
func (d *fakeDrawer) TextWidth(s string) int { return 7 * len(s) }

func (d *fakeDrawer) DrawText(text string, x, y int, style render.TextStyle) {
	d.texts = append(d.texts, text)
}

func (d *fakeDrawer) DrawBitmap(bm *assets.Bitmap, x, y int) { d.bitmaps++ }

func (d *fakeDrawer) DrawBar(rect image.Rectangle, value, max int, fill color.Color) {
	d.bars = append(d.bars, barCall{rect: rect, value: value, max: max, fill: fill})
}

func (d *fakeDrawer) DrawImage(img image.Image, rect image.Rectangle) { d.images++ }

func stateSnapshot() state.State { return state.State{} }
