package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/fedackb/ui-framework/pkg/ui/core"
)

// Label displays the label of another widget, outside that widget's
// bounds. It never takes input focus and renders with the styling of
// the widget it describes.
type Label struct {
	*core.Widget
	core.Base

	used *core.Widget
	text string
}

// NewLabel creates a label under parent describing the usedBy widget.
func NewLabel(parent, usedBy *core.Widget) *Label {
	l := &Label{used: usedBy, text: usedBy.Label()}
	l.Widget = core.New(parent, usedBy.Label(), core.Unfocusable())
	l.SetBehavior(l)
	l.Fit()
	return l
}

// UsedBy returns the described widget, or nil once it is destroyed.
func (l *Label) UsedBy() *core.Widget {
	if l.used == nil || l.used.Gone() {
		return nil
	}
	return l.used
}

// Draw paints the embellished label in the described widget's style.
func (l *Label) Draw(p *core.Painter) {
	used := l.UsedBy()
	if used == nil {
		return
	}
	attr := used.Style("label")
	p.DrawText(l.text, core.TextOptions{Attr: &attr, Hint: used.Hotkey()})
}

// Embellish adds leading and trailing text around the label.
func (l *Label) Embellish(prefix, suffix string) *Label {
	if used := l.UsedBy(); used != nil {
		l.text = prefix + used.Label() + suffix
	}
	l.Fit()
	return l
}

// Text returns the embellished label text.
func (l *Label) Text() string { return l.text }

// Fit sizes the label to its content.
func (l *Label) Fit() *Label {
	l.Resize(runewidth.StringWidth(l.text), 1)
	return l
}

// Shift offsets the label horizontally by a multiple of its own width.
func (l *Label) Shift(multiple float64) *Label {
	sw, _ := l.Size()
	l.Offset(int(multiple*float64(sw)+0.5), 0)
	return l
}

// ToCenter centers the label over the described widget, vertically when
// cross is set.
func (l *Label) ToCenter(cross bool) *Label {
	used := l.UsedBy()
	if used == nil {
		return l
	}
	ux, uy := used.Position()
	uw, uh := used.Size()
	sw, sh := l.Size()
	if cross {
		l.MoveY(uy + (uh-sh)/2)
	} else {
		l.MoveX(ux + (uw-sw)/2)
	}
	return l
}

// ToLeft aligns the label with the left edge of the described widget.
func (l *Label) ToLeft() *Label {
	if used := l.UsedBy(); used != nil {
		ux, _ := used.Position()
		l.MoveX(ux)
	}
	return l
}

// ToRight aligns the label with the right edge of the described widget.
func (l *Label) ToRight() *Label {
	if used := l.UsedBy(); used != nil {
		ux, _ := used.Position()
		uw, _ := used.Size()
		sw, _ := l.Size()
		l.MoveX(ux + uw - sw)
	}
	return l
}

// ToTop aligns the label with the top edge of the described widget.
func (l *Label) ToTop() *Label {
	if used := l.UsedBy(); used != nil {
		_, uy := used.Position()
		l.MoveY(uy)
	}
	return l
}

// ToBottom aligns the label with the bottom edge of the described
// widget.
func (l *Label) ToBottom() *Label {
	if used := l.UsedBy(); used != nil {
		_, uy := used.Position()
		_, uh := used.Size()
		l.MoveY(uy + uh - 1)
	}
	return l
}

// Labeled is the base for widgets that display their label in a
// separate sibling widget, so the label can sit outside this widget's
// own bounds. The label is linked for redraw tagging.
type Labeled struct {
	*core.Widget
	core.Base

	label *Label
}

func newLabeled(parent *core.Widget, label string, hotkey rune) Labeled {
	w := core.New(parent, label, core.WithHotkey(hotkey))
	l := NewLabel(parent, w)
	w.Link(l.Widget)
	return Labeled{Widget: w, label: l}
}

// LinkedLabel returns the sibling label widget.
func (l *Labeled) LinkedLabel() *Label { return l.label }
