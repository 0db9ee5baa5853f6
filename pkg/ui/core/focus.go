package core

import (
	"errors"
	"fmt"

	"github.com/fedackb/ui-framework/pkg/ui/signal"
	"github.com/fedackb/ui-framework/pkg/ui/terminal"
)

// ErrProtocol marks a behavior breaking the Operate contract. It is
// unrecoverable: the session terminates rather than silently continue.
var ErrProtocol = errors.New("behavior protocol violation")

// Focus returns the widget currently holding input focus, or nil. A
// destroyed widget resolves to nil.
func (s *Session) Focus() *Widget {
	if s.focus != nil && s.focus.gone {
		s.focus = nil
	}
	return s.focus
}

// SetFocus transfers input focus to the target widget. A nil target is
// a programmer error and fails fast; a non-focusable target is a normal
// runtime condition and is silently ignored.
//
// On an actual transfer the target's focus clock resets, both widgets
// are tagged for redraw, the blur/focus hooks run, the previous
// widget's composed data bubbles as a non-propagating DATA_OUT, and the
// target bubbles a DATA_REQUEST so an ancestor can supply its state.
func (s *Session) SetFocus(target *Widget, data signal.Data) {
	if target == nil {
		panic("core: SetFocus requires a widget")
	}
	if !target.Focusable() {
		return
	}

	previous := s.Focus()

	// Report usage for the new focus before the transfer, so status
	// collaborators update even when focus is unchanged.
	target.sendStatus()

	s.focus = target

	if previous == nil || previous == target {
		return
	}

	target.ResetClock()

	// Visual feedback on both ends of the transfer.
	previous.TagRedraw()
	target.TagRedraw()

	previous.behavior.Blur()
	target.behavior.Focus(data)

	if ready, out := previous.behavior.Compose(); ready {
		previous.Bubble(signal.New(signal.SigDataOut, out, false))
	}
	target.Request()
}

// backtrace transfers input focus to the previously focused widget.
// The root of the trace is never popped; destroyed entries are skipped.
func (s *Session) backtrace() {
	for len(s.trace) > 1 {
		s.trace = s.trace[:len(s.trace)-1]
		top := s.trace[len(s.trace)-1]
		if top.gone {
			continue
		}
		s.SetFocus(top, nil)
		return
	}
}

// transferDown pushes a new trace entry and focuses a descendant of the
// current focus. If a focus hook redirected input focus mid-transfer,
// the trace top resynchronizes to the actual focus.
func (s *Session) transferDown(target *Widget) {
	s.trace = append(s.trace, target)
	s.SetFocus(target, nil)

	if actual := s.Focus(); actual != nil && actual != target {
		s.trace[len(s.trace)-1] = actual
	}
}

// syncTrace keeps the trace top denoting the current focus. This covers
// the case where a behavior hook redirected focus through a FOCUS
// signal, bypassing the navigator.
func (s *Session) syncTrace() {
	f := s.Focus()
	if f == nil {
		return
	}
	if len(s.trace) == 0 || s.trace[len(s.trace)-1] != f {
		s.trace = append(s.trace, f)
	}
}

// dispatch advances the focus-navigation state machine by one input.
func (s *Session) dispatch(ev terminal.KeyEvent) error {
	focus := s.Focus()
	if focus == nil {
		return nil
	}

	var siblings []*Widget
	if focus.ancestor != nil {
		siblings = focus.ancestor.descendants
	}
	descendants := focus.descendants

	// Transfer input focus upward.
	if ev.Key == terminal.KeyEscape && !focus.overridesEsc && len(s.trace) > 1 {
		s.backtrace()
		return nil
	}

	// Transfer input focus laterally, cyclically.
	if (ev.Key == terminal.KeyTab || ev.Key == terminal.KeyBacktab) &&
		!focus.overridesTab && len(siblings) > 1 {
		if idx := widgetIndex(siblings, focus); idx >= 0 {
			n := len(siblings)
			next := siblings[(idx+1)%n]
			if ev.Key == terminal.KeyBacktab {
				next = siblings[(idx-1+n)%n]
			}
			s.SetFocus(next, nil)
			// Update the trace top in place: no push.
			if cur := s.Focus(); cur != nil && len(s.trace) > 0 {
				s.trace[len(s.trace)-1] = cur
			}
		}
		return nil
	}

	// Transfer input focus downward.
	if ev.Key == terminal.KeyEnter && !focus.overridesEnter && len(descendants) > 0 {
		s.transferDown(descendants[0])
		return nil
	}

	// Transfer input focus directly to a hotkeyed descendant, gated on
	// the descendant being operable.
	if ev.Key == terminal.KeyRune {
		if idx, ok := focus.focusMap[ev.Rune]; ok && descendants[idx].behavior.Audit() {
			s.transferDown(descendants[idx])
			return nil
		}
	}

	// Otherwise, pass the input to the focused widget.
	switch outcome := focus.behavior.Operate(ev); outcome {
	case Continue:
	case End:
		s.backtrace()
	default:
		return fmt.Errorf("%w: %q returned outcome %d, expected Continue or End",
			ErrProtocol, focus.label, outcome)
	}
	return nil
}

func widgetIndex(list []*Widget, w *Widget) int {
	for i, item := range list {
		if item == w {
			return i
		}
	}
	return -1
}
