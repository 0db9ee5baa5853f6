package core

import (
	"github.com/fedackb/ui-framework/pkg/ui/signal"
	"github.com/fedackb/ui-framework/pkg/ui/terminal"
)

// Outcome is the result of a Behavior's Operate call. The navigator
// treats any value outside {Continue, End} as a protocol violation.
type Outcome int

const (
	// OutcomeInvalid is the zero value; returning it from Operate is a
	// protocol violation that terminates the session.
	OutcomeInvalid Outcome = iota

	// Continue keeps input focus on the operated widget.
	Continue

	// End finishes the operation and backtraces input focus.
	End
)

// Report carries a behavior's usage hint and validation state, composed
// into ancestor status signals.
type Report struct {
	Usage   string
	Valid   bool
	Message string
}

// Behavior is the capability contract implemented by every concrete
// widget. The core invokes these hooks and never assumes more.
type Behavior interface {
	// Audit reports whether the widget is operable; consulted before
	// direct-hotkey descent and for status-text filtering.
	Audit() bool

	// Report returns a short usage hint for status display.
	Report() Report

	// Focus executes when the widget gains input focus; receives
	// optional signal data.
	Focus(data signal.Data)

	// Blur executes when the widget loses input focus.
	Blur()

	// Compose is called on blur to decide whether to emit outbound
	// data. The boolean gates emission of a DATA_OUT signal.
	Compose() (bool, signal.Data)

	// Decompose integrates inbound signal data into the widget.
	Decompose(data signal.Data)

	// Draw paints the widget; invoked only when tagged and drawable.
	Draw(p *Painter)

	// Operate consumes one input key and must return Continue or End.
	Operate(ev terminal.KeyEvent) Outcome
}

// Base provides default no-op implementations of the Behavior contract.
// Concrete widgets embed it and override the hooks they customize.
type Base struct{}

// Audit reports the widget as operable.
func (Base) Audit() bool { return true }

// Report returns an empty, valid report.
func (Base) Report() Report { return Report{Valid: true} }

// Focus is a no-op.
func (Base) Focus(signal.Data) {}

// Blur is a no-op.
func (Base) Blur() {}

// Compose emits nothing.
func (Base) Compose() (bool, signal.Data) { return false, nil }

// Decompose is a no-op.
func (Base) Decompose(signal.Data) {}

// Draw is a no-op.
func (Base) Draw(*Painter) {}

// Operate ignores the key.
func (Base) Operate(terminal.KeyEvent) Outcome { return Continue }
