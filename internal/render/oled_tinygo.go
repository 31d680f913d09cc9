//go:build tinygo

package render

import (
	"context"
	"image"
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/lilykb/statusview/internal/assets"
	"github.com/lilykb/statusview/internal/state"
)

// OLEDRenderer drives the SSD1306 128x32 panel over I2C on the MCU build.
// The panel is monochrome: any non-black color renders as lit pixels, so
// the WPM tier stays observable only through the host preview.
type OLEDRenderer struct {
	dev     ssd1306.Device
	font    tinyfont.Fonter
	running bool
	current Screen
}

func NewOLEDRenderer() *OLEDRenderer {
	return &OLEDRenderer{font: &proggy.TinySZ8pt7b}
}

func (r *OLEDRenderer) Start(ctx context.Context) error {
	err := machine.I2C0.Configure(machine.I2CConfig{Frequency: 400_000})
	if err != nil {
		return err
	}
	r.dev = ssd1306.NewI2C(machine.I2C0)
	r.dev.Configure(ssd1306.Config{Address: 0x3C, Width: int16(CanvasWidth), Height: int16(CanvasHeight)})
	r.dev.ClearDisplay()
	r.running = true
	return nil
}

func (r *OLEDRenderer) Stop() error {
	r.running = false
	r.dev.ClearDisplay()
	return nil
}

func (r *OLEDRenderer) SetScreen(screen Screen) { r.current = screen }

func (r *OLEDRenderer) RedrawWithState(snap state.State) {
	if !r.running || r.current == nil {
		return
	}
	r.dev.ClearBuffer()
	r.current.Draw(r, snap)
	r.dev.Display()
}

func (r *OLEDRenderer) RunLoop(ctx context.Context, store *state.Store) {
	// 10 FPS is plenty for a status panel and keeps the I2C bus quiet.
	ticker := time.NewTicker(time.Second / 10)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.RedrawWithState(store.Snapshot())
		}
	}
}

// Drawer implementation

func (r *OLEDRenderer) Size() (int, int) { return CanvasWidth, CanvasHeight }

func (r *OLEDRenderer) FillBackground() {
	r.dev.ClearBuffer()
}

func (r *OLEDRenderer) TextWidth(text string) int {
	_, outbox := tinyfont.LineWidth(r.font, text)
	return int(outbox)
}

func (r *OLEDRenderer) DrawText(text string, x, y int, style TextStyle) {
	switch style.Align {
	case TextAlignCenter:
		x -= r.TextWidth(text) / 2
	case TextAlignRight:
		x -= r.TextWidth(text)
	}
	// tinyfont anchors at the baseline; the font's glyphs are ~10px tall.
	tinyfont.WriteLine(&r.dev, r.font, int16(x), int16(y)+10, text, pixelOn(style.Color))
}

func (r *OLEDRenderer) DrawBitmap(bm *assets.Bitmap, x, y int) {
	if bm == nil {
		return
	}
	on := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	for by := 0; by < bm.Height; by++ {
		for bx := 0; bx < bm.Width; bx++ {
			if bm.At(bx, by) {
				r.dev.SetPixel(int16(x+bx), int16(y+by), on)
			}
		}
	}
}

func (r *OLEDRenderer) DrawBar(rect image.Rectangle, value, max int, fill color.Color) {
	if max <= 0 || rect.Empty() {
		return
	}
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}
	on := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	for x := rect.Min.X; x < rect.Max.X; x++ {
		r.dev.SetPixel(int16(x), int16(rect.Min.Y), on)
		r.dev.SetPixel(int16(x), int16(rect.Max.Y-1), on)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		r.dev.SetPixel(int16(rect.Min.X), int16(y), on)
		r.dev.SetPixel(int16(rect.Max.X-1), int16(y), on)
	}
	innerW := rect.Dx() - 2
	if innerW <= 0 {
		return
	}
	fillWidth := innerW * value / max
	for y := rect.Min.Y + 1; y < rect.Max.Y-1; y++ {
		for x := rect.Min.X + 1; x < rect.Min.X+1+fillWidth; x++ {
			r.dev.SetPixel(int16(x), int16(y), on)
		}
	}
}

func (r *OLEDRenderer) DrawImage(img image.Image, rect image.Rectangle) {
	if img == nil || rect.Empty() {
		return
	}
	on := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	src := img.Bounds()
	for y := 0; y < rect.Dy(); y++ {
		sy := src.Min.Y + y*src.Dy()/rect.Dy()
		for x := 0; x < rect.Dx(); x++ {
			sx := src.Min.X + x*src.Dx()/rect.Dx()
			cr, cg, cb, _ := img.At(sx, sy).RGBA()
			if cr+cg+cb < 3*0x8000 {
				continue
			}
			r.dev.SetPixel(int16(rect.Min.X+x), int16(rect.Min.Y+y), on)
		}
	}
}

func pixelOn(c color.Color) color.RGBA {
	// Monochrome panel: anything that isn't black lights the pixel.
	return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
}
