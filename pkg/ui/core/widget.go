// Package core implements the retained widget tree: node lifecycle and
// geometry, the focus-navigation state machine, signal bubbling and
// flushing, and the dirty-tag redraw scheduler.
package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/fedackb/ui-framework/pkg/ui/backend"
	"github.com/fedackb/ui-framework/pkg/ui/signal"
	"github.com/fedackb/ui-framework/pkg/ui/theme"
)

// Widget is a node in the tree of interactive elements. It carries
// identity, geometry relative to its parent, visibility and focus
// flags, and a signal router it owns or shares.
type Widget struct {
	session *Session
	label   string

	parent      *Widget
	children    []*Widget
	ancestor    *Widget   // nearest focusable strict ancestor, nil at root
	descendants []*Widget // focusable nodes whose nearest focusable ancestor is this node
	focusMap    map[rune]int
	focusKey    rune
	links       []*Widget

	bus      *signal.Router
	behavior Behavior

	bounds Rect // absolute screen coordinates

	focusable bool
	drawable  bool
	visible   bool
	tagged    bool
	gone      bool

	overridesEnter bool
	overridesEsc   bool
	overridesTab   bool

	timestamp time.Time
}

// Option configures a widget at construction time.
type Option func(*Widget)

// WithHotkey registers the widget under the given key in its nearest
// focusable ancestor's focus map.
func WithHotkey(key rune) Option {
	return func(w *Widget) { w.focusKey = key }
}

// WithRouter injects a shared signal router instead of a widget-owned one.
func WithRouter(r *signal.Router) Option {
	return func(w *Widget) { w.bus = r }
}

// WithBehavior sets the widget's behavior at construction.
func WithBehavior(b Behavior) Option {
	return func(w *Widget) { w.behavior = b }
}

// Unfocusable marks the widget as unable to receive input focus.
func Unfocusable() Option {
	return func(w *Widget) { w.focusable = false }
}

// Undrawable excludes the widget from painting (children still draw).
func Undrawable() Option {
	return func(w *Widget) { w.drawable = false }
}

// New creates a widget attached to the given parent. Geometry starts at
// the parent's current bounds. The parent is immutable thereafter.
//
// If the widget is focusable and carries a hotkey, it is registered in
// its nearest focusable ancestor's focus map and descendant list. This
// derivation happens once, at attach time.
func New(parent *Widget, label string, opts ...Option) *Widget {
	if parent == nil {
		panic("core: parent widget is required; the session owns the root")
	}
	w := newWidget(parent.session, parent, label, opts...)
	parent.children = append(parent.children, w)
	return w
}

func newWidget(session *Session, parent *Widget, label string, opts ...Option) *Widget {
	w := &Widget{
		session:   session,
		label:     label,
		parent:    parent,
		focusMap:  make(map[rune]int),
		focusable: true,
		drawable:  true,
		visible:   true,
		tagged:    true,
		behavior:  Base{},
	}
	for _, opt := range opts {
		opt(w)
	}

	// Find the closest ancestor that can receive input focus. The
	// root terminates the walk regardless of its own focusability.
	anc := parent
	for anc != nil && anc.parent != nil && !anc.focusable {
		anc = anc.parent
	}
	w.ancestor = anc

	// Communicate this widget's hotkey up the ancestor path.
	if anc != nil && w.focusKey != 0 && w.focusable {
		anc.focusMap[w.focusKey] = len(anc.descendants)
		anc.descendants = append(anc.descendants, w)
	}

	if w.bus == nil {
		w.bus = signal.NewRouter()
	}

	// Geometry starts at the parent's bounds (the whole screen at root).
	if parent != nil {
		w.bounds = parent.bounds
	} else if session != nil {
		w.bounds = session.screen
	}

	w.timestamp = time.Now()

	// Built-in plumbing: inbound data loads through Decompose, and a
	// flushed focus signal redirects input focus to this widget.
	w.Handle(signal.SigDataIn, func(data signal.Data) {
		w.behavior.Decompose(data)
	})
	w.Handle(signal.SigFocus, func(data signal.Data) {
		if w.session != nil {
			w.session.SetFocus(w, data)
		}
	})

	return w
}

// Label returns the widget's identity label.
func (w *Widget) Label() string { return w.label }

// Parent returns the parent node, nil at the root.
func (w *Widget) Parent() *Widget { return w.parent }

// Children returns the owned child nodes in attachment order.
func (w *Widget) Children() []*Widget { return w.children }

// Ancestor returns the nearest focusable strict ancestor, nil at root.
func (w *Widget) Ancestor() *Widget { return w.ancestor }

// Descendants returns the focusable nodes for which this widget is the
// nearest focusable ancestor, in attachment order.
func (w *Widget) Descendants() []*Widget { return w.descendants }

// Session returns the session context shared by the tree.
func (w *Widget) Session() *Session { return w.session }

// Router returns the widget's signal router.
func (w *Widget) Router() *signal.Router { return w.bus }

// Behavior returns the widget's behavior.
func (w *Widget) Behavior() Behavior { return w.behavior }

// SetBehavior replaces the widget's behavior. Concrete widgets call
// this after construction since the behavior holds its widget.
func (w *Widget) SetBehavior(b Behavior) {
	if b == nil {
		b = Base{}
	}
	w.behavior = b
}

// Focusable reports whether the widget can receive input focus.
func (w *Widget) Focusable() bool { return w.focusable && !w.gone }

// SetFocusable toggles focus eligibility.
func (w *Widget) SetFocusable(v bool) { w.focusable = v }

// Drawable reports whether the widget itself paints.
func (w *Widget) Drawable() bool { return w.drawable }

// SetDrawable toggles painting of this widget (children still draw).
func (w *Widget) SetDrawable(v bool) { w.drawable = v }

// Visible reports whether the subtree rooted here is visible.
func (w *Widget) Visible() bool { return w.visible }

// Tagged reports whether a redraw is pending for this widget.
func (w *Widget) Tagged() bool { return w.tagged }

// Hotkey returns the key that focuses this widget from its ancestor,
// or 0 if none was registered.
func (w *Widget) Hotkey() rune { return w.focusKey }

// Gone reports whether the widget has been destroyed. Implements
// signal.Owner, so handlers bound to a destroyed widget are pruned
// instead of invoked.
func (w *Widget) Gone() bool { return w.gone }

// Override suppresses the navigator's default handling of the enter,
// escape, and tab keys for this widget.
func (w *Widget) Override(enter, esc, tab bool) {
	w.overridesEnter = enter
	w.overridesEsc = esc
	w.overridesTab = tab
}

// Link registers a node whose dirty state must mirror this widget's
// (a non-tree dependency, e.g. a detached label).
func (w *Widget) Link(other *Widget) {
	w.links = append(w.links, other)
}

// ResetClock resets the focus-relative timestamp used for animation.
func (w *Widget) ResetClock() {
	w.timestamp = time.Now()
}

// ElapsedFocus returns the seconds elapsed since this widget last
// became the input focus.
func (w *Widget) ElapsedFocus() float64 {
	return time.Since(w.timestamp).Seconds()
}

// Show enables visibility of the subtree rooted at this widget.
func (w *Widget) Show() {
	w.visible = true
	w.TagRedraw()
}

// Hide disables visibility of the subtree rooted at this widget.
func (w *Widget) Hide() {
	w.visible = false
	// The parent repaints the vacated region.
	if w.parent != nil {
		w.parent.TagRedraw()
	}
}

// Toggle flips visibility.
func (w *Widget) Toggle() {
	if w.visible {
		w.Hide()
	} else {
		w.Show()
	}
}

// Handle binds a handler function to this widget and registers it on
// the widget's router. The returned handle deregisters via Unhandle.
func (w *Widget) Handle(name string, fn func(signal.Data)) *signal.Handler {
	h := signal.Bind(w, fn)
	w.bus.Register(name, h)
	return h
}

// Unhandle removes a previously registered handler.
func (w *Widget) Unhandle(name string, h *signal.Handler) bool {
	return w.bus.Deregister(name, h)
}

// Bubble emits the signal to ancestor widgets, nearest first. Bubbling
// stops only once the signal has been handled and does not propagate;
// at the root it simply ends.
func (w *Widget) Bubble(sig signal.Signal) {
	handled := false
	for p := w.parent; p != nil; p = p.parent {
		if p.bus.Forward(sig, false) {
			handled = true
		}
		if handled && !sig.Propagate {
			return
		}
	}
}

// Flush emits the signal depth-first into the subtree below this
// widget. Once any node handles a non-propagating signal, remaining
// siblings at that level are skipped. Returns whether any node handled
// the signal.
func (w *Widget) Flush(sig signal.Signal) bool {
	handled := false
	for _, child := range w.children {
		if handled && !sig.Propagate {
			break
		}
		if child.bus.Forward(sig, false) {
			handled = true
		}
		if !handled || sig.Propagate {
			if child.Flush(sig) {
				handled = true
			}
		}
	}
	return handled
}

// Request bubbles a non-propagating request for input data, answered
// by an ancestor with a DATA_IN flush or a direct Decompose.
func (w *Widget) Request() {
	w.Bubble(signal.New(signal.SigDataRequest, nil, false))
}

// Drop destroys the given child subtree. Weak references held by the
// focus trace, the focus pointer, links, and signal routers observe the
// destroyed nodes as gone and resynchronize.
func (w *Widget) Drop(child *Widget) {
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			child.dispose()
			w.TagRedraw()
			return
		}
	}
}

func (w *Widget) dispose() {
	w.gone = true
	w.bus.DropOwner(w)
	for _, child := range w.children {
		child.dispose()
	}
}

// Style queries the session theme for the named attribute with this
// widget's current interaction state.
func (w *Widget) Style(name string) backend.Style {
	state := theme.StateDefault
	switch {
	case !w.behavior.Audit():
		state = theme.StateDisabled
	case w.session != nil && w.session.Focus() == w:
		state = theme.StateFocused
	}
	return w.session.theme.Query(state, name)
}

// sendStatus reports usage instructions for this widget: its hotkey
// map filtered by audit, plus its behavior's own usage string. The
// result travels as a non-propagating STATUS_UPDATE in both directions
// so any status-display collaborator updates.
func (w *Widget) sendStatus() {
	reverse := make(map[int]rune, len(w.focusMap))
	for key, idx := range w.focusMap {
		reverse[idx] = key
	}

	var parts []string
	for i, d := range w.descendants {
		if !d.Focusable() || !d.behavior.Audit() {
			continue
		}
		if key, ok := reverse[i]; ok {
			parts = append(parts, fmt.Sprintf("%c:%s", key, d.label))
		}
	}
	if usage := w.behavior.Report().Usage; usage != "" {
		parts = append(parts, usage)
	}

	sig := signal.New(signal.SigStatusUpdate,
		signal.Data{"status": strings.Join(parts, ", ")}, false)
	w.Bubble(sig)
	w.Flush(sig)
}
