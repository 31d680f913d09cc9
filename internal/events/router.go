package events

// Router fans events out to the handlers subscribed per kind.
//
// Subscriptions happen once during wiring, before any dispatch; after that
// the handler table is read-only, so Dispatch needs no locking. A kind with
// no subscribers (everything destined for the other half) is a nil-slice
// read and allocates nothing.
type Router struct {
	handlers [kindCount][]Handler
}

func NewRouter() *Router {
	return &Router{}
}

// Subscribe appends h to the delivery list for kind. Must not be called
// concurrently with Dispatch.
func (r *Router) Subscribe(kind Kind, h Handler) {
	if kind >= kindCount || h == nil {
		return
	}
	r.handlers[kind] = append(r.handlers[kind], h)
}

// Dispatch delivers ev to its kind's handlers in subscription order and
// reports the combined disposition. A Consumed result stops delivery to
// later handlers, mirroring the firmware's event bubbling; the handlers in
// this module always Propagate.
func (r *Router) Dispatch(ev Event) Disposition {
	if ev.Kind >= kindCount {
		return Propagate
	}
	for _, h := range r.handlers[ev.Kind] {
		if h(ev) == Consumed {
			return Consumed
		}
	}
	return Propagate
}
