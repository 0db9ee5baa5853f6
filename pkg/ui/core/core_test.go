package core

import (
	"testing"

	"github.com/fedackb/ui-framework/pkg/ui/backend/sim"
	"github.com/fedackb/ui-framework/pkg/ui/signal"
	"github.com/fedackb/ui-framework/pkg/ui/terminal"
)

// newTestSession creates a session backed by an 80x24 simulation screen.
func newTestSession(t *testing.T) (*Session, *sim.Backend) {
	t.Helper()
	b := sim.New(80, 24)
	s, err := NewSession(Config{Backend: b})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, b
}

// testBehavior records every capability-hook call so tests can assert
// on the navigator's hook ordering and gating.
type testBehavior struct {
	Base

	operable   bool
	usage      string
	focusCount int
	blurCount  int
	focusData  signal.Data
	composeOK  bool
	composeOut signal.Data
	decomposed signal.Data
	outcome    Outcome
	keys       []terminal.KeyEvent
	draws      int
}

func newTestBehavior() *testBehavior {
	return &testBehavior{operable: true, outcome: Continue}
}

func (b *testBehavior) Audit() bool { return b.operable }

func (b *testBehavior) Report() Report { return Report{Usage: b.usage, Valid: true} }

func (b *testBehavior) Focus(data signal.Data) {
	b.focusCount++
	b.focusData = data
}

func (b *testBehavior) Blur() { b.blurCount++ }

func (b *testBehavior) Compose() (bool, signal.Data) { return b.composeOK, b.composeOut }

func (b *testBehavior) Decompose(data signal.Data) { b.decomposed = data }

func (b *testBehavior) Draw(*Painter) { b.draws++ }

func (b *testBehavior) Operate(ev terminal.KeyEvent) Outcome {
	b.keys = append(b.keys, ev)
	return b.outcome
}

// key builds a special-key event.
func key(k terminal.Key) terminal.KeyEvent { return terminal.KeyEvent{Key: k} }

// keyRune builds a character event.
func keyRune(r rune) terminal.KeyEvent {
	return terminal.KeyEvent{Key: terminal.KeyRune, Rune: r}
}
