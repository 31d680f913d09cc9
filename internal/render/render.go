package render

import (
	"context"
	"image"
	"image/color"

	"github.com/lilykb/statusview/internal/assets"
	"github.com/lilykb/statusview/internal/state"
)

type Renderer interface {
	Start(ctx context.Context) error
	Stop() error
	SetScreen(screen Screen)
	RunLoop(ctx context.Context, store *state.Store)
	RedrawWithState(snap state.State)
}

type Screen interface {
	Start(ctx context.Context) error
	Stop() error
	Draw(d Drawer, s state.State)
}

// Stub implementations
type NoopRenderer struct{}

func (n *NoopRenderer) Start(ctx context.Context) error                 { return nil }
func (n *NoopRenderer) Stop() error                                     { return nil }
func (n *NoopRenderer) SetScreen(screen Screen)                         {}
func (n *NoopRenderer) RunLoop(ctx context.Context, store *state.Store) {}
func (n *NoopRenderer) RedrawWithState(snap state.State)                {}

// Drawer is the abstraction the renderer hands to screens so they can draw
// primitives without knowing the backend (framebuffer, SSD1306, offscreen).
type Drawer interface {
	// Size returns the logical canvas size in pixels.
	Size() (width int, height int)

	FillBackground()

	// Text primitives. DrawText anchors at the top-left of the glyph box;
	// Align controls how x is interpreted.
	TextWidth(text string) int
	DrawText(text string, x, y int, style TextStyle)

	// DrawBitmap blits a packed monochrome bitmap with its top-left at (x, y).
	DrawBitmap(bm *assets.Bitmap, x, y int)

	// DrawBar draws a bounded-range indicator filling rect proportionally to
	// value/max. Values outside [0, max] are clamped; the indicator can never
	// overrun its frame.
	DrawBar(rect image.Rectangle, value, max int, fill color.Color)

	// DrawImage scales img into rect (nearest-neighbor; the canvas is tiny).
	DrawImage(img image.Image, rect image.Rectangle)
}

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextStyle describes how to render text.
type TextStyle struct {
	Color color.Color // nil means the default foreground
	Align TextAlign
}
