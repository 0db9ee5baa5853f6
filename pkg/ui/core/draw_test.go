package core

import (
	"strings"
	"testing"

	"github.com/fedackb/ui-framework/pkg/ui/backend"
	"github.com/fedackb/ui-framework/pkg/ui/backend/sim"
)

// drawFixture returns a painter over a 20x5 widget at the screen origin.
func drawFixture(t *testing.T) (*Painter, *sim.Backend) {
	t.Helper()
	s, b := newTestSession(t)
	w := New(s.Root(), "w")
	w.Resize(20, 5).Move(0, 0)
	return w.painter(b), b
}

func TestDrawText(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		p, b := drawFixture(t)
		if n := p.DrawText("hello", TextOptions{}); n != 1 {
			t.Errorf("lines drawn = %d, want 1", n)
		}
		if x, y := b.FindText("hello"); x != 0 || y != 0 {
			t.Errorf("text at (%d, %d), want (0, 0)", x, y)
		}
	})

	t.Run("margins and row", func(t *testing.T) {
		p, b := drawFixture(t)
		p.DrawText("hi", TextOptions{Row: 2, Margin: [4]int{3, 0, 1, 1}})
		if x, y := b.FindText("hi"); x != 3 || y != 2 {
			t.Errorf("text at (%d, %d), want (3, 2)", x, y)
		}
	})

	t.Run("row outside margins is rejected", func(t *testing.T) {
		p, _ := drawFixture(t)
		if n := p.DrawText("x", TextOptions{Row: 0, Margin: [4]int{0, 0, 1, 1}}); n != 0 {
			t.Errorf("lines drawn = %d, want 0", n)
		}
		if n := p.DrawText("x", TextOptions{Row: 4, Margin: [4]int{0, 0, 1, 1}}); n != 0 {
			t.Errorf("lines drawn = %d, want 0", n)
		}
	})

	t.Run("clip right with ellipsis", func(t *testing.T) {
		p, b := drawFixture(t)
		p.DrawText("abcdefghijklmnopqrstuvwxyz", TextOptions{})
		row := strings.Split(b.Capture(), "\n")[0]
		if !strings.HasSuffix(strings.TrimRight(row, " "), "...") {
			t.Errorf("row %q lacks a trailing ellipsis", row)
		}
		if strings.Contains(row, "z") {
			t.Errorf("row %q was not clipped", row)
		}
	})

	t.Run("clip left keeps the tail", func(t *testing.T) {
		p, b := drawFixture(t)
		p.DrawText("abcdefghijklmnopqrstuvwxyz", TextOptions{Fit: FitClipLeft})
		row := strings.Split(b.Capture(), "\n")[0]
		if !strings.HasPrefix(row, "...") {
			t.Errorf("row %q lacks a leading ellipsis", row)
		}
		if !strings.Contains(row, "z") {
			t.Errorf("row %q lost the tail of the text", row)
		}
	})

	t.Run("wrap", func(t *testing.T) {
		p, b := drawFixture(t)
		n := p.DrawText("aaaaaaaaaaaaaaaaaaaabbbb", TextOptions{Fit: FitWrap})
		if n != 2 {
			t.Errorf("lines drawn = %d, want 2", n)
		}
		if x, y := b.FindText("bbbb"); x != 0 || y != 1 {
			t.Errorf("wrapped tail at (%d, %d), want (0, 1)", x, y)
		}
	})

	t.Run("center alignment", func(t *testing.T) {
		p, b := drawFixture(t)
		p.DrawText("ab", TextOptions{Align: TextCenter})
		if x, _ := b.FindText("ab"); x != 9 {
			t.Errorf("centered text at x=%d, want 9", x)
		}
	})

	t.Run("right alignment", func(t *testing.T) {
		p, b := drawFixture(t)
		p.DrawText("ab", TextOptions{Align: TextRight})
		if x, _ := b.FindText("ab"); x != 18 {
			t.Errorf("right-aligned text at x=%d, want 18", x)
		}
	})
}

func TestDrawTextHint(t *testing.T) {
	s, b := newTestSession(t)
	w := New(s.Root(), "w", WithHotkey('w'))
	w.Resize(20, 3).Move(0, 0)
	p := w.painter(b)

	underlined := func(x, y int) bool {
		_, style := b.CellContent(x, y)
		_, _, attrs := style.Decompose()
		return attrs&backend.AttrUnderline != 0
	}

	t.Run("no hint while the ancestor lacks focus", func(t *testing.T) {
		p.DrawText("Save", TextOptions{Hint: 's'})
		if underlined(0, 0) {
			t.Error("hint underlined without ancestor focus")
		}
	})

	t.Run("hint underlines under ancestor focus", func(t *testing.T) {
		s.SetFocus(s.Root(), nil)
		p.DrawText("Save", TextOptions{Hint: 's'})
		if !underlined(0, 0) {
			t.Error("hint not underlined")
		}
	})

	t.Run("case-insensitive first match", func(t *testing.T) {
		p.DrawText("Quit", TextOptions{Row: 1, Hint: 'q'})
		if !underlined(0, 1) {
			t.Error("uppercase rune did not match a lowercase hint")
		}
	})
}

func TestDrawBorder(t *testing.T) {
	p, b := drawFixture(t)
	p.DrawBorder(BorderOptions{})

	capture := strings.Split(b.Capture(), "\n")
	top := []rune(capture[0])
	bottom := []rune(capture[4])

	if top[0] != '┌' || top[19] != '┐' {
		t.Errorf("top border %q lacks corners", capture[0])
	}
	if bottom[0] != '└' || bottom[19] != '┘' {
		t.Errorf("bottom border %q lacks corners", capture[4])
	}
	if top[10] != '─' {
		t.Errorf("top border %q lacks a horizontal run", capture[0])
	}
	if []rune(capture[2])[0] != '│' {
		t.Errorf("left border %q lacks a vertical run", capture[2])
	}

	t.Run("offsets inset the frame", func(t *testing.T) {
		p, b := drawFixture(t)
		p.DrawBorder(BorderOptions{OffsetLeft: 2, OffsetTop: 1})
		rows := strings.Split(b.Capture(), "\n")
		if []rune(rows[1])[2] != '┌' {
			t.Errorf("inset corner missing, row %q", rows[1])
		}
	})

	t.Run("custom runes", func(t *testing.T) {
		p, b := drawFixture(t)
		p.DrawBorder(BorderOptions{Top: '=', TopLeft: '+'})
		rows := strings.Split(b.Capture(), "\n")
		row0 := []rune(rows[0])
		if row0[0] != '+' || row0[5] != '=' {
			t.Errorf("custom border runes missing, row %q", rows[0])
		}
	})
}

func TestDrawCursor(t *testing.T) {
	s, b := newTestSession(t)
	w := New(s.Root(), "w")
	w.Resize(20, 3).Move(0, 0)
	p := w.painter(b)

	// A focused widget resolves "cursor" to a distinct style.
	s.SetFocus(w, nil)

	p.DrawText("abc", TextOptions{Row: 1, Margin: [4]int{1, 1, 1, 1}})
	p.DrawCursor(1, 1, [4]int{1, 1, 1, 1})

	r, style := b.CellContent(1, 1)
	if r != 'a' {
		t.Errorf("cursor cell rune = %q, want 'a'", r)
	}
	if style == backend.DefaultStyle() {
		t.Error("cursor cell was not restyled")
	}

	t.Run("outside the margin is ignored", func(t *testing.T) {
		p.DrawCursor(0, 0, [4]int{1, 1, 1, 1})
		_, style := b.CellContent(0, 0)
		if style != backend.DefaultStyle() {
			t.Error("cursor drawn outside its margin")
		}
	})
}

func TestWrapText(t *testing.T) {
	lines := wrapText("abcdefgh", 3)
	if len(lines) != 3 || lines[0] != "abc" || lines[2] != "gh" {
		t.Errorf("wrapText = %v, want [abc def gh]", lines)
	}
	if got := wrapText("", 5); len(got) != 1 || got[0] != "" {
		t.Errorf("wrapText(empty) = %v, want one empty line", got)
	}
}
