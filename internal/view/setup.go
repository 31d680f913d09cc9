package view

import (
	"context"
	"image"
	"sync"

	"github.com/lilykb/statusview/internal/render"
	"github.com/lilykb/statusview/internal/render/layout"
	"github.com/lilykb/statusview/internal/state"
)

// Logger matches the shape of the application logger so screens can log
// without importing it.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// SetupScreen points at the companion app with a QR code until the first
// keyboard event arrives; the app then switches to the side's own screen.
type SetupScreen struct {
	URL    string
	Logger Logger

	mu sync.RWMutex
	qr image.Image
}

func NewSetupScreen(url string, logger Logger) *SetupScreen {
	return &SetupScreen{URL: url, Logger: logger}
}

func (s *SetupScreen) Start(ctx context.Context) error {
	qr, err := render.GenerateQRCodeImage(s.URL, 0)
	if err != nil {
		// Fall back to text-only; setup must not block the display.
		if s.Logger != nil {
			s.Logger.Errorf("setup", "qr generation failed: %v", err)
		}
		return nil
	}
	s.mu.Lock()
	s.qr = qr
	s.mu.Unlock()
	return nil
}

func (s *SetupScreen) Stop() error { return nil }

func (s *SetupScreen) Draw(d render.Drawer, _ state.State) {
	s.mu.RLock()
	qr := s.qr
	s.mu.RUnlock()

	width, height := d.Size()
	full := image.Rect(0, 0, width, height)
	left, right := layout.SplitVertical(full, height)

	if qr != nil {
		d.DrawImage(qr, layout.FitSquare(left))
	}
	d.DrawText("setup", right.Min.X+4, right.Min.Y+2, render.TextStyle{})
	d.DrawText(s.URL, right.Min.X+4, right.Min.Y+16, render.TextStyle{})
}
