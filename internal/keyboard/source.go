// Package keyboard turns the firmware's status feed into display events.
package keyboard

import (
	"context"
	"sync"

	"github.com/lilykb/statusview/internal/events"
)

// Source delivers keyboard state-change events. Events is closed when the
// source stops; the consumer keeps the last-drawn state on screen.
type Source interface {
	Start(ctx context.Context) error
	Stop() error
	Events() <-chan events.Event
}

// Feed is a manually driven source. The simulator injects events into it
// over HTTP.
type Feed struct {
	ch        chan events.Event
	closeOnce sync.Once
}

func NewFeed(buffer int) *Feed {
	if buffer < 0 {
		buffer = 0
	}
	return &Feed{ch: make(chan events.Event, buffer)}
}

func (f *Feed) Start(ctx context.Context) error { return nil }

func (f *Feed) Stop() error {
	f.closeOnce.Do(func() { close(f.ch) })
	return nil
}

func (f *Feed) Events() <-chan events.Event { return f.ch }

// Emit queues ev without blocking; it reports false when the consumer lags
// and the event was dropped. Every handler depends only on the latest event
// of its kind, so drops are harmless.
func (f *Feed) Emit(ev events.Event) bool {
	select {
	case f.ch <- ev:
		return true
	default:
		return false
	}
}
