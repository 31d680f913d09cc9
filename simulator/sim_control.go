//go:build !tinygo

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lilykb/statusview/internal/events"
	"github.com/lilykb/statusview/internal/keyboard"
	"github.com/lilykb/statusview/internal/keymap"
)

// SimControl drives the feed with scripted scenarios and ad-hoc injected
// events, so the full pipeline runs without hardware.
type SimControl struct {
	processCtx      context.Context
	feed            *keyboard.Feed
	startupScenario string
	currentScenario atomic.Value // string

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewSimControl(processCtx context.Context, feed *keyboard.Feed, startupScenario string) *SimControl {
	if processCtx == nil {
		processCtx = context.Background()
	}
	c := &SimControl{processCtx: processCtx, feed: feed, startupScenario: strings.TrimSpace(startupScenario)}
	if c.startupScenario == "" {
		c.startupScenario = "typing"
	}
	c.currentScenario.Store(c.startupScenario)
	return c
}

// ApplyScenario stops the running scenario and starts name.
func (c *SimControl) ApplyScenario(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		name = c.startupScenario
	}
	steps, loop, err := scenarioSteps(name)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	runCtx, cancel := context.WithCancel(c.processCtx)
	c.cancel = cancel
	c.mu.Unlock()

	script := keyboard.NewScriptSource(steps)
	script.Loop = loop
	if err := script.Start(runCtx); err != nil {
		cancel()
		return err
	}
	// Forward the script into the app's feed, where injected events also
	// land, so ordering between the two is a plain channel merge.
	go func() {
		defer script.Stop()
		for {
			select {
			case <-runCtx.Done():
				return
			case ev, ok := <-script.Events():
				if !ok {
					return
				}
				c.feed.Emit(ev)
			}
		}
	}()
	c.currentScenario.Store(name)
	return nil
}

func (c *SimControl) Reset() error {
	return c.ApplyScenario(c.startupScenario)
}

// Inject queues a single event, given the wire-protocol kind and value
// ("layer 2", "mods 0x05", "wpm 97").
func (c *SimControl) Inject(kind, value string) error {
	ev, ok := keyboard.ParseLine(kind + " " + value)
	if !ok {
		return fmt.Errorf("unknown event %q %q", kind, value)
	}
	if !c.feed.Emit(ev) {
		return fmt.Errorf("event dropped, consumer lagging")
	}
	return nil
}

func scenarioSteps(name string) (steps []keyboard.Step, loop bool, err error) {
	const beat = 400 * time.Millisecond
	switch name {
	case "idle":
		return nil, false, nil
	case "typing":
		return []keyboard.Step{
			{Delay: beat, Event: events.LayerChanged(0)},
			{Delay: beat, Event: events.ModifiersChanged(keymap.ModLeftShift)},
			{Delay: beat, Event: events.WPMChanged(35)},
			{Delay: beat, Event: events.ModifiersChanged(0)},
			{Delay: beat, Event: events.LayerChanged(1)},
			{Delay: beat, Event: events.WPMChanged(72)},
			{Delay: beat, Event: events.ModifiersChanged(keymap.ModLeftCtrl | keymap.ModLeftShift)},
			{Delay: beat, Event: events.WPMChanged(110)},
			{Delay: beat, Event: events.LayerChanged(0)},
			{Delay: beat, Event: events.ModifiersChanged(0)},
			{Delay: beat, Event: events.WPMChanged(48)},
		}, true, nil
	case "speed-ramp":
		for wpm := uint16(10); wpm <= 220; wpm += 15 {
			steps = append(steps, keyboard.Step{Delay: beat, Event: events.WPMChanged(wpm)})
		}
		return steps, true, nil
	case "mod-burst":
		// Rapid modifier cascade inside one keystroke, the racy case the
		// primary view must tolerate while still idle.
		return []keyboard.Step{
			{Event: events.ModifiersChanged(keymap.ModLeftCtrl)},
			{Event: events.ModifiersChanged(keymap.ModLeftCtrl | keymap.ModLeftShift)},
			{Event: events.ModifiersChanged(keymap.ModLeftShift)},
			{Event: events.ModifiersChanged(0)},
			{Delay: 2 * beat, Event: events.LayerChanged(2)},
		}, false, nil
	default:
		return nil, false, fmt.Errorf("unknown scenario %q", name)
	}
}

func registerSimEndpoints(mux *http.ServeMux, control *SimControl) {
	mux.HandleFunc("/sim/reset", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeSimError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		if err := control.Reset(); err != nil {
			writeSimError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeSimJSON(w, http.StatusOK, map[string]any{"ok": true, "scenario": control.currentScenario.Load()})
	})

	mux.HandleFunc("/sim/scenario/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeSimError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		name := strings.TrimPrefix(r.URL.Path, "/sim/scenario/")
		name = strings.Trim(name, "/")
		if err := control.ApplyScenario(name); err != nil {
			writeSimError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeSimJSON(w, http.StatusOK, map[string]any{"ok": true, "scenario": control.currentScenario.Load()})
	})

	mux.HandleFunc("/sim/event", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeSimError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		var req struct {
			Kind  string `json:"kind"`
			Value string `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeSimError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := control.Inject(req.Kind, req.Value); err != nil {
			writeSimError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeSimJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
}

func writeSimJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSimError(w http.ResponseWriter, status int, message string) {
	writeSimJSON(w, status, map[string]any{"error": message})
}
