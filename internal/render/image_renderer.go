package render

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lilykb/statusview/internal/state"
)

// ImageRenderer renders offscreen only. The simulator (and the -preview
// mode) serve its frames over HTTP instead of driving hardware.
type ImageRenderer struct {
	canvas  *Canvas
	running atomic.Bool
	current Screen
}

func NewImageRenderer() *ImageRenderer {
	return &ImageRenderer{canvas: NewCanvas()}
}

func (r *ImageRenderer) Canvas() *Canvas { return r.canvas }

func (r *ImageRenderer) Start(ctx context.Context) error {
	r.running.Store(true)
	return nil
}

func (r *ImageRenderer) Stop() error {
	r.running.Store(false)
	return nil
}

func (r *ImageRenderer) SetScreen(screen Screen) { r.current = screen }

func (r *ImageRenderer) RedrawWithState(snap state.State) {
	if !r.running.Load() || r.current == nil {
		return
	}
	r.canvas.FillBackground()
	r.current.Draw(r.canvas, snap)
	r.canvas.Publish()
}

func (r *ImageRenderer) RunLoop(ctx context.Context, store *state.Store) {
	ticker := time.NewTicker(time.Second / 30)
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
