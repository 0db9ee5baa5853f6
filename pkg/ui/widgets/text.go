package widgets

import (
	"strings"

	"github.com/fedackb/ui-framework/pkg/ui/core"
)

// Text is a non-focusable, line-oriented text display.
type Text struct {
	*core.Widget
	core.Base

	style string
	lines []string
}

// NewText creates a text display styled with the named theme entry.
func NewText(parent *core.Widget, label, style string) *Text {
	t := &Text{style: style}
	if t.style == "" {
		t.style = "text"
	}
	t.Widget = core.New(parent, label, core.Unfocusable())
	t.SetBehavior(t)
	return t
}

// Draw paints the accumulated lines.
func (t *Text) Draw(p *core.Painter) {
	attr := p.Style(t.style)
	for i, line := range t.lines {
		p.DrawText(line, core.TextOptions{Row: i, Attr: &attr})
	}
}

// AddLine appends one line of text.
func (t *Text) AddLine(line string) {
	t.lines = append(t.lines, line)
	t.TagRedraw()
}

// AddRaw appends a raw string line by line.
func (t *Text) AddRaw(raw string) {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	t.lines = append(t.lines, strings.Split(raw, "\n")...)
	t.TagRedraw()
}

// Clear discards all lines.
func (t *Text) Clear() {
	t.lines = nil
	t.TagRedraw()
}
