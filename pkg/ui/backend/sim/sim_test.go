package sim

import (
	"testing"

	"github.com/fedackb/ui-framework/pkg/ui/backend"
	"github.com/fedackb/ui-framework/pkg/ui/terminal"
)

func TestLifecycle(t *testing.T) {
	b := New(10, 4)
	if b.Inited() || b.Finied() {
		t.Error("fresh backend reports a lifecycle state")
	}
	if err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	b.Fini()
	if !b.Inited() || !b.Finied() {
		t.Error("lifecycle transitions not recorded")
	}
}

func TestContent(t *testing.T) {
	b := New(10, 4)
	style := backend.DefaultStyle().Bold(true)
	b.SetContent(2, 1, 'x', style)

	r, got := b.CellContent(2, 1)
	if r != 'x' || got != style {
		t.Errorf("cell = (%q, %+v), want ('x', bold)", r, got)
	}

	t.Run("out of bounds is ignored", func(t *testing.T) {
		b.SetContent(-1, 0, 'y', style)
		b.SetContent(10, 4, 'y', style)
		if r, _ := b.CellContent(-1, 0); r != ' ' {
			t.Error("out-of-bounds read did not return a blank")
		}
	})

	t.Run("clear blanks the grid", func(t *testing.T) {
		b.Clear()
		if r, _ := b.CellContent(2, 1); r != ' ' {
			t.Error("Clear left content behind")
		}
	})
}

func TestEventQueue(t *testing.T) {
	b := New(10, 4)
	if b.Poll() != nil {
		t.Error("Poll on an empty queue did not return nil")
	}

	b.InjectKeyString("ab")
	b.InjectKey(terminal.KeyEnter, 0)

	for i, want := range []rune{'a', 'b'} {
		ev, ok := b.Poll().(terminal.KeyEvent)
		if !ok || ev.Rune != want {
			t.Fatalf("event %d = %+v, want rune %q", i, ev, want)
		}
	}
	if ev, ok := b.Poll().(terminal.KeyEvent); !ok || ev.Key != terminal.KeyEnter {
		t.Errorf("final event = %+v, want enter", ev)
	}
	if b.Poll() != nil {
		t.Error("drained queue still yields events")
	}
}

func TestCapture(t *testing.T) {
	b := New(5, 2)
	for i, r := range "hello" {
		b.SetContent(i, 0, r, backend.DefaultStyle())
	}

	if got := b.Capture(); got != "hello\n     " {
		t.Errorf("Capture = %q", got)
	}
	if got := b.CaptureRegion(1, 0, 3, 1); got != "ell" {
		t.Errorf("CaptureRegion = %q", got)
	}
	if x, y := b.FindText("llo"); x != 2 || y != 0 {
		t.Errorf("FindText = (%d, %d), want (2, 0)", x, y)
	}
	if x, y := b.FindText("absent"); x != -1 || y != -1 {
		t.Errorf("FindText(absent) = (%d, %d), want (-1, -1)", x, y)
	}
}
