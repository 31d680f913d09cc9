//go:build !tinygo

package render

import (
	"context"
	"image/color"
	"sync/atomic"
	"time"

	fb "github.com/gonutz/framebuffer"

	"github.com/lilykb/statusview/internal/state"
)

// FBRenderer renders the logical canvas to the Linux framebuffer, e.g. an
// fbtft-attached OLED exposed as /dev/fb0.
type FBRenderer struct {
	Device   string
	FontPath string
	FontSize float64
	Logger   interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}

	canvas  *Canvas
	fbDev   *fb.Device
	running atomic.Bool
	current Screen
}

func NewFBRenderer() *FBRenderer {
	return &FBRenderer{Device: "/dev/fb0", canvas: NewCanvas()}
}

// Canvas exposes the drawing surface, for the web frame preview.
func (r *FBRenderer) Canvas() *Canvas { return r.canvas }

func (r *FBRenderer) Start(ctx context.Context) error {
	dev, err := fb.Open(r.Device)
	if err != nil {
		return err
	}
	r.fbDev = dev
	if r.Logger != nil {
		bounds := dev.Bounds()
		r.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}

	// A broken font must not take the display down; fall back to the
	// built-in face and keep going.
	if r.FontPath != "" {
		face, ferr := LoadFace(r.FontPath, r.FontSize)
		if ferr != nil {
			if r.Logger != nil {
				r.Logger.Errorf("fb", "font load failed, using basicfont: %v", ferr)
			}
		} else {
			r.canvas.SetFace(face)
			if r.Logger != nil {
				r.Logger.Infof("fb", "loaded font %s", r.FontPath)
			}
		}
	}

	r.running.Store(true)
	return nil
}

func (r *FBRenderer) Stop() error {
	r.running.Store(false)
	if r.fbDev != nil {
		r.fbDev.Close()
	}
	return nil
}

// SetScreen sets the current logical screen to be drawn.
func (r *FBRenderer) SetScreen(screen Screen) { r.current = screen }

// RedrawWithState draws the current screen and blits it to the framebuffer.
func (r *FBRenderer) RedrawWithState(snap state.State) {
	if !r.running.Load() || r.current == nil || r.fbDev == nil {
		return
	}
	r.canvas.FillBackground()
	r.current.Draw(r.canvas, snap)
	r.canvas.Publish()
	blitToFB(r.fbDev, r.canvas)
}

// RunLoop continuously redraws at ~30 FPS until the context is done.
func (r *FBRenderer) RunLoop(ctx context.Context, store *state.Store) {
	ticker := time.NewTicker(time.Second / 30)
	defer ticker.Stop()
	lastLog := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := store.Snapshot()
			r.RedrawWithState(snap)
			if r.Logger != nil && time.Since(lastLog) > time.Second {
				r.Logger.Infof("fb", "heartbeat frame, layer=%d wpm=%d", snap.Layer, snap.WPM)
				lastLog = time.Now()
			}
		}
	}
}

// Helper: blit the canvas to the framebuffer via nearest-neighbor scaling.
func blitToFB(dev *fb.Device, canvas *Canvas) {
	if dev == nil {
		return
	}
	src := canvas.Image()
	bounds := dev.Bounds()
	fbWidth := bounds.Dx()
	fbHeight := bounds.Dy()
	for y := 0; y < fbHeight; y++ {
		sy := (y * CanvasHeight) / fbHeight
		for x := 0; x < fbWidth; x++ {
			sx := (x * CanvasWidth) / fbWidth
			pixel := src.RGBAAt(sx, sy)
			dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
