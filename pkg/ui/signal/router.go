package signal

// Owner is the liveness handle behind a weakly held handler. A handler
// whose owner reports gone is dropped the next time its signal is
// forwarded, without ever being invoked.
type Owner interface {
	Gone() bool
}

// Handler binds a function to an owner. Handlers are compared by
// pointer identity, so registering the same *Handler twice is a no-op
// and deregistration requires the original handle.
type Handler struct {
	owner Owner
	fn    func(Data)
}

// Bind creates a handler owned by the given owner. A nil owner makes
// the handler strongly held (never pruned).
func Bind(owner Owner, fn func(Data)) *Handler {
	return &Handler{owner: owner, fn: fn}
}

func (h *Handler) gone() bool {
	return h.owner != nil && h.owner.Gone()
}

// Router is a mediator managing signal handlers and forwarding received
// signals to them by name.
type Router struct {
	handlers map[string][]*Handler
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{handlers: make(map[string][]*Handler)}
}

// Register stores the handler for the named signal. Returns false if
// the handler is malformed (nil, or with a nil function) or already
// registered for that name.
func (r *Router) Register(name string, h *Handler) bool {
	if h == nil || h.fn == nil {
		return false
	}
	for _, existing := range r.handlers[name] {
		if existing == h {
			return false
		}
	}
	r.handlers[name] = append(r.handlers[name], h)
	return true
}

// Deregister removes the handler from the named signal's list. Returns
// false if absent. A name left with no handlers is pruned entirely.
func (r *Router) Deregister(name string, h *Handler) bool {
	list, ok := r.handlers[name]
	if !ok || h == nil {
		return false
	}
	for i, existing := range list {
		if existing == h {
			r.handlers[name] = append(list[:i], list[i+1:]...)
			if len(r.handlers[name]) == 0 {
				delete(r.handlers, name)
			}
			return true
		}
	}
	return false
}

// DropOwner removes every handler bound to the given owner. Called by
// widget teardown so destroyed owners never linger in handler lists.
func (r *Router) DropOwner(owner Owner) {
	for name, list := range r.handlers {
		kept := list[:0]
		for _, h := range list {
			if h.owner != owner {
				kept = append(kept, h)
			}
		}
		if len(kept) == 0 {
			delete(r.handlers, name)
		} else {
			r.handlers[name] = kept
		}
	}
}

// Forward invokes the registered handlers for the signal's name, in
// registration order (or reverse order if requested), each receiving
// the signal's data. After the first invocation, dispatch stops early
// if the signal does not propagate. Returns true if at least one live
// handler was invoked; entries whose owner is gone are pruned without
// counting as handled.
func (r *Router) Forward(sig Signal, reverse bool) bool {
	list, ok := r.handlers[sig.Name]
	if !ok {
		return false
	}

	// Work on a snapshot: handlers may register or deregister
	// reentrantly while the signal is being dispatched.
	snapshot := make([]*Handler, len(list))
	copy(snapshot, list)
	if reverse {
		for i, j := 0, len(snapshot)-1; i < j; i, j = i+1, j-1 {
			snapshot[i], snapshot[j] = snapshot[j], snapshot[i]
		}
	}

	handled := false
	for _, h := range snapshot {
		if h.gone() {
			r.Deregister(sig.Name, h)
			continue
		}
		h.fn(sig.Data)
		handled = true
		if !sig.Propagate {
			break
		}
	}
	return handled
}

// Handles reports whether any handler is registered for the name.
func (r *Router) Handles(name string) bool {
	return len(r.handlers[name]) > 0
}
