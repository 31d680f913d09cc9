package keyboard

import (
	"context"
	"time"

	"github.com/lilykb/statusview/internal/events"
)

// Step is one scripted event and the delay before it fires.
type Step struct {
	Delay time.Duration
	Event events.Event
}

// ScriptSource replays a fixed sequence of events, optionally looping. It
// backs the simulator scenarios and pipeline tests.
type ScriptSource struct {
	Steps []Step
	Loop  bool

	ch     chan events.Event
	cancel context.CancelFunc
}

func NewScriptSource(steps []Step) *ScriptSource {
	return &ScriptSource{Steps: steps, ch: make(chan events.Event, 16)}
}

func (s *ScriptSource) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	go func() {
		defer close(s.ch)
		for {
			for _, step := range s.Steps {
				if step.Delay > 0 {
					timer := time.NewTimer(step.Delay)
					select {
					case <-runCtx.Done():
						timer.Stop()
						return
					case <-timer.C:
					}
				}
				select {
				case s.ch <- step.Event:
				case <-runCtx.Done():
					return
				}
			}
			if !s.Loop {
				return
			}
		}
	}()

	return nil
}

func (s *ScriptSource) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

func (s *ScriptSource) Events() <-chan events.Event { return s.ch }
