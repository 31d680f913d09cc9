// Package view owns the retained visual elements for each half of the split
// and the state machines that update them from keyboard events.
//
// Each element belongs to exactly one view, views belong to exactly one
// side, and the inactive side's view is never constructed. Handlers mutate
// element state under the view's lock; the render loop draws from a
// snapshot, so no intermediate update is ever visible.
package view

import "image/color"

// Label is a retained text element. Hidden labels are skipped at draw time.
type Label struct {
	Text   string
	Hidden bool
}

// Bar is a bounded-range indicator. Value is always kept within [0, Max];
// the host toolkits treat out-of-range indicator positions as undefined.
type Bar struct {
	Value int
	Max   int
	Fill  color.RGBA
}
