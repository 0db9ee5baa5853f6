package widgets

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/fedackb/ui-framework/pkg/ui/core"
	"github.com/fedackb/ui-framework/pkg/ui/signal"
	"github.com/fedackb/ui-framework/pkg/ui/terminal"
)

// TextField is a single-line text input with a detached sibling label.
type TextField struct {
	Labeled

	text     string
	obscured bool
}

// NewTextField creates a text field under the given parent.
func NewTextField(parent *core.Widget, label string, hotkey rune) *TextField {
	t := &TextField{Labeled: newLabeled(parent, label, hotkey)}
	t.SetBehavior(t)
	t.Handle(signal.SigClear, t.clear)

	sw, _ := t.Size()
	t.Resize(sw, 3)
	return t
}

// Text returns the current input.
func (t *TextField) Text() string { return t.text }

// SetText replaces the current input.
func (t *TextField) SetText(text string) {
	t.text = text
	t.TagRedraw()
}

// Obscure hides the input behind asterisks.
func (t *TextField) Obscure() { t.obscured = true }

// Reveal shows the input.
func (t *TextField) Reveal() { t.obscured = false }

// Report describes the field's usage.
func (t *TextField) Report() core.Report {
	return core.Report{Usage: "Type text input.", Valid: true}
}

// Compose always emits the current input on blur.
func (t *TextField) Compose() (bool, signal.Data) {
	return true, signal.Data{"text": t.text}
}

// Decompose loads inbound text.
func (t *TextField) Decompose(data signal.Data) {
	if text, ok := data["text"].(string); ok {
		t.SetText(text)
	}
}

// Draw paints the framed input with a trailing cursor.
func (t *TextField) Draw(p *core.Painter) {
	margin := [4]int{2, 2, 1, 1}

	p.DrawBorder(core.BorderOptions{})

	text := t.text
	if t.obscured {
		text = strings.Repeat("*", len([]rune(text)))
	}
	p.DrawText(text, core.TextOptions{
		Row: 1, Padding: [2]int{0, 1}, Margin: margin, Fit: core.FitClipLeft,
	})

	width, _ := p.Size()
	margin[0] = minInt(runewidth.StringWidth(text)+margin[0], width-margin[1]-1)
	p.DrawCursor(margin[0], 1, margin)
}

// Operate appends printable input and deletes on backspace.
func (t *TextField) Operate(ev terminal.KeyEvent) core.Outcome {
	switch {
	case ev.Key == terminal.KeyRune && unicode.IsPrint(ev.Rune):
		t.TagRedraw()
		t.text += string(ev.Rune)
	case ev.Key == terminal.KeyBackspace:
		t.TagRedraw()
		if runes := []rune(t.text); len(runes) > 0 {
			t.text = string(runes[:len(runes)-1])
		}
	}
	return core.Continue
}

func (t *TextField) clear(signal.Data) {
	t.text = ""
	t.TagRedraw()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
