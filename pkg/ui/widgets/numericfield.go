package widgets

import (
	"strconv"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/fedackb/ui-framework/pkg/ui/core"
	"github.com/fedackb/ui-framework/pkg/ui/signal"
	"github.com/fedackb/ui-framework/pkg/ui/terminal"
)

// NumericField is an integer input with a detached sibling label.
type NumericField struct {
	Labeled

	number string
}

// NewNumericField creates a numeric field under the given parent.
func NewNumericField(parent *core.Widget, label string, hotkey rune) *NumericField {
	n := &NumericField{Labeled: newLabeled(parent, label, hotkey)}
	n.SetBehavior(n)
	n.Handle(signal.SigClear, n.clear)

	sw, _ := n.Size()
	n.Resize(sw, 3)
	return n
}

// Number returns the entered value; ok is false while the field is
// empty.
func (n *NumericField) Number() (value int, ok bool) {
	if n.number == "" {
		return 0, false
	}
	value, err := strconv.Atoi(n.number)
	return value, err == nil
}

// Report describes the field's usage.
func (n *NumericField) Report() core.Report {
	return core.Report{Usage: "Enter numeric input.", Valid: true}
}

// Compose emits only when a number was entered.
func (n *NumericField) Compose() (bool, signal.Data) {
	value, ok := n.Number()
	if !ok {
		return false, nil
	}
	return true, signal.Data{"number": value}
}

// Draw paints the framed input with a trailing cursor.
func (n *NumericField) Draw(p *core.Painter) {
	margin := [4]int{2, 2, 1, 1}

	p.DrawBorder(core.BorderOptions{})
	p.DrawText(n.number, core.TextOptions{
		Row: 1, Padding: [2]int{0, 1}, Margin: margin, Fit: core.FitClipLeft,
	})

	width, _ := p.Size()
	margin[0] = minInt(runewidth.StringWidth(n.number)+margin[0], width-margin[1]-1)
	p.DrawCursor(margin[0], 1, margin)
}

// Operate accepts digits and deletes on backspace.
func (n *NumericField) Operate(ev terminal.KeyEvent) core.Outcome {
	switch {
	case ev.Key == terminal.KeyRune && unicode.IsDigit(ev.Rune):
		n.TagRedraw()
		n.number += string(ev.Rune)
	case ev.Key == terminal.KeyBackspace:
		n.TagRedraw()
		if len(n.number) > 0 {
			n.number = n.number[:len(n.number)-1]
		}
	}
	return core.Continue
}

func (n *NumericField) clear(signal.Data) {
	n.number = ""
	n.TagRedraw()
}
