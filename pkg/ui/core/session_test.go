package core

import (
	"errors"
	"testing"
	"time"

	"github.com/fedackb/ui-framework/pkg/ui/backend/sim"
	"github.com/fedackb/ui-framework/pkg/ui/signal"
	"github.com/fedackb/ui-framework/pkg/ui/terminal"
)

func TestNewSession(t *testing.T) {
	t.Run("requires a backend", func(t *testing.T) {
		if _, err := NewSession(Config{}); err == nil {
			t.Error("NewSession accepted a nil backend")
		}
	})

	t.Run("initializes the backend", func(t *testing.T) {
		b := sim.New(80, 24)
		s, err := NewSession(Config{Backend: b})
		if err != nil {
			t.Fatalf("NewSession: %v", err)
		}
		defer s.Close()

		if !b.Inited() {
			t.Error("backend not initialized")
		}
		if s.Screen().Width != 80 || s.Screen().Height != 24 {
			t.Errorf("screen = %+v, want 80x24", s.Screen())
		}
		if s.Root() == nil {
			t.Fatal("session has no root widget")
		}
		if b.Finied() {
			t.Error("backend finalized prematurely")
		}
	})

	t.Run("root spans the screen", func(t *testing.T) {
		s, _ := newTestSession(t)
		if got := s.Root().Bounds(); got != s.Screen() {
			t.Errorf("root bounds = %+v, want %+v", got, s.Screen())
		}
	})
}

func TestSessionRun(t *testing.T) {
	t.Run("exit signal stops the loop", func(t *testing.T) {
		s, b := newTestSession(t)
		w := New(s.Root(), "w", WithHotkey('w'))
		w.SetBehavior(&exitOnQ{session: s})

		b.InjectKeyRune('x') // consumed without effect
		b.InjectKeyRune('q') // bubbles EXIT

		done := make(chan struct{})
		go func() {
			s.Run()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("Run did not stop on the exit signal")
		}
	})

	t.Run("no entry point", func(t *testing.T) {
		s, _ := newTestSession(t)
		s.Run() // returns immediately: nothing focusable with a hotkey
		if s.Focus() != nil {
			t.Error("focus assigned with no entry point")
		}
	})

	t.Run("entry point is the first root descendant", func(t *testing.T) {
		s, b := newTestSession(t)
		first := New(s.Root(), "first", WithHotkey('f'))
		New(s.Root(), "second", WithHotkey('s'))

		b.PostEvent(terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'q'})
		first.SetBehavior(&exitOnQ{session: s})

		s.Run()
		if s.Focus() != first {
			t.Errorf("focus = %v, want first", s.Focus())
		}
	})

	t.Run("resize retags the tree", func(t *testing.T) {
		s, b := newTestSession(t)
		w := New(s.Root(), "w", WithHotkey('w'))
		w.SetBehavior(&exitOnQ{session: s})

		b.PostEvent(terminal.ResizeEvent{Width: 100, Height: 40})
		b.PostEvent(terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'q'})

		s.Run()
		if s.Screen().Width != 100 || s.Screen().Height != 40 {
			t.Errorf("screen = %+v, want 100x40", s.Screen())
		}
	})

	t.Run("protocol violation stops the loop with an error", func(t *testing.T) {
		s, b := newTestSession(t)
		broken := newTestBehavior()
		broken.outcome = OutcomeInvalid
		New(s.Root(), "w", WithHotkey('w'), WithBehavior(broken))

		b.InjectKeyRune('x')
		s.Run()

		if !errors.Is(s.Err(), ErrProtocol) {
			t.Errorf("Err = %v, want ErrProtocol", s.Err())
		}
	})
}

// exitOnQ bubbles an EXIT signal when operated with the letter q.
type exitOnQ struct {
	Base
	session *Session
}

func (e *exitOnQ) Operate(ev terminal.KeyEvent) Outcome {
	if ev.Key == terminal.KeyRune && ev.Rune == 'q' {
		e.session.Root().Router().Forward(signal.New(signal.SigExit, nil, false), false)
	}
	return Continue
}

func TestSessionStep(t *testing.T) {
	s, b := newTestSession(t)
	be := newTestBehavior()
	w := New(s.Root(), "w", WithHotkey('w'), WithBehavior(be))

	s.SetFocus(w, nil)
	b.InjectKeyRune('x')

	s.Step()
	if len(be.keys) != 1 || be.keys[0].Rune != 'x' {
		t.Error("Step did not dispatch the queued key")
	}

	t.Run("idle step is a no-op", func(t *testing.T) {
		s.Step()
		if len(be.keys) != 1 {
			t.Error("idle Step dispatched a phantom event")
		}
	})
}

func TestSessionClose(t *testing.T) {
	s, b := newTestSession(t)

	if err := s.Close(); err != nil {
		t.Errorf("Close = %v, want nil", err)
	}
	if !b.Finied() {
		t.Error("Close did not finalize the backend")
	}

	t.Run("idempotent", func(t *testing.T) {
		if err := s.Close(); err != nil {
			t.Errorf("second Close = %v, want nil", err)
		}
	})

	t.Run("reports accumulated errors", func(t *testing.T) {
		s, _ := newTestSession(t)
		s.fail(errors.New("boom"))
		if err := s.Close(); err == nil {
			t.Error("Close swallowed a recorded error")
		}
	})
}

func TestSessionExitSignalFromTree(t *testing.T) {
	s, _ := newTestSession(t)
	leaf := New(s.Root(), "leaf")

	s.running = true
	leaf.Bubble(signal.New(signal.SigExit, nil, false))
	if s.running {
		t.Error("bubbled EXIT did not stop the session")
	}
}
