package widgets

import (
	"github.com/fedackb/ui-framework/pkg/ui/core"
	"github.com/fedackb/ui-framework/pkg/ui/signal"
	"github.com/fedackb/ui-framework/pkg/ui/terminal"
)

// FlipSwitch is a boolean toggle. Enter flips the state in place; the
// new state is composed into a DATA_OUT only if it changed while
// focused.
type FlipSwitch struct {
	Labeled

	initState bool
	on        bool
}

// NewFlipSwitch creates a flip switch with a detached sibling label.
func NewFlipSwitch(parent *core.Widget, label string, hotkey rune) *FlipSwitch {
	f := &FlipSwitch{Labeled: newLabeled(parent, label, hotkey)}
	f.SetBehavior(f)
	f.Override(true, false, false)
	f.Resize(10, 3)
	return f
}

// On reports the current switch state.
func (f *FlipSwitch) On() bool { return f.on }

// SetOn sets the switch state directly.
func (f *FlipSwitch) SetOn(v bool) {
	f.on = v
	f.TagRedraw()
}

// Report describes the switch's usage.
func (f *FlipSwitch) Report() core.Report {
	return core.Report{Usage: "Enter:Toggle", Valid: true}
}

// Focus records the state held when focus arrived.
func (f *FlipSwitch) Focus(signal.Data) {
	f.initState = f.on
}

// Compose emits only if the state changed while focused.
func (f *FlipSwitch) Compose() (bool, signal.Data) {
	return f.on != f.initState, signal.Data{"enabled": f.on}
}

// Draw paints a split border with the active half marked ON or OFF.
func (f *FlipSwitch) Draw(p *core.Painter) {
	width, _ := p.Size()
	half := width / 2

	p.DrawBorder(core.BorderOptions{})

	text := "OFF"
	margin := [4]int{half, 1, 1, 1}
	if f.on {
		text = "ON"
		margin = [4]int{2, half, 1, 1}
		p.DrawBorder(core.BorderOptions{OffsetLeft: half})
	} else {
		p.DrawBorder(core.BorderOptions{OffsetRight: half})
	}

	attr := p.Style("text").Bold(true)
	p.DrawText(text, core.TextOptions{Row: margin[2], Margin: margin, Attr: &attr})
}

// Operate toggles the switch on enter.
func (f *FlipSwitch) Operate(ev terminal.KeyEvent) core.Outcome {
	if ev.Key == terminal.KeyEnter {
		f.TagRedraw()
		f.on = !f.on
	}
	return core.Continue
}
