// Package widgets provides the concrete widget catalog: behaviors
// plugged into the core tree via the capability contract.
package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/fedackb/ui-framework/pkg/ui/core"
	"github.com/fedackb/ui-framework/pkg/ui/signal"
	"github.com/fedackb/ui-framework/pkg/ui/terminal"
)

// Button is a push button. Pressing enter marks it pushed and ends the
// operation; the pushed state is composed into a DATA_OUT on blur.
type Button struct {
	*core.Widget
	core.Base

	pushed bool
}

// NewButton creates a button under the given parent. A hotkey of 0
// leaves the button out of its ancestor's focus map.
func NewButton(parent *core.Widget, label string, hotkey rune) *Button {
	b := &Button{}
	b.Widget = core.New(parent, label, core.WithHotkey(hotkey))
	b.SetBehavior(b)
	b.Fit()
	return b
}

// Report describes the button's usage.
func (b *Button) Report() core.Report {
	return core.Report{Usage: "Enter:Execute", Valid: true}
}

// Focus resets the pushed state.
func (b *Button) Focus(signal.Data) {
	b.pushed = false
}

// Compose emits on blur only if the button was pushed.
func (b *Button) Compose() (bool, signal.Data) {
	return b.pushed, signal.Data{}
}

// Draw paints the label between bounding parentheses.
func (b *Button) Draw(p *core.Painter) {
	width, _ := p.Size()
	text := p.Style("text")

	p.DrawText("(", core.TextOptions{Attr: &text})
	p.DrawText(")", core.TextOptions{Margin: [4]int{width - 1, 0, 0, 0}, Attr: &text})
	p.DrawText(b.Label(), core.TextOptions{
		Padding: [2]int{1, 1},
		Margin:  [4]int{1, 1, 0, 0},
		Align:   core.TextCenter,
		Hint:    b.Hotkey(),
		Attr:    &text,
	})
}

// Operate pushes the button on enter.
func (b *Button) Operate(ev terminal.KeyEvent) core.Outcome {
	if ev.Key == terminal.KeyEnter {
		b.pushed = true
		return core.End
	}
	return core.Continue
}

// Fit resizes the button to its padded label width.
func (b *Button) Fit() *Button {
	b.Resize(runewidth.StringWidth(b.Label())+4, 1)
	return b
}
