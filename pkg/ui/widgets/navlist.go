package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/fedackb/ui-framework/pkg/ui/core"
	"github.com/fedackb/ui-framework/pkg/ui/signal"
	"github.com/fedackb/ui-framework/pkg/ui/terminal"
)

// NavPage is a container for widgets controlled by a navigation list.
type NavPage struct {
	*core.Widget
	core.Base

	nav *NavList
}

// Draw frames the page and marks the owning list's selection.
func (p *NavPage) Draw(painter *core.Painter) {
	painter.DrawBorder(core.BorderOptions{})
	painter.DrawText("◀", core.TextOptions{Row: p.nav.selection + 1})
}

// NavList is a navigable list of pages. Arrow keys move the highlight
// and enter selects, revealing the chosen page and focusing it.
type NavList struct {
	Labeled

	pages     []*NavPage
	highlight int
	selection int
	listWidth int
}

// NewNavList creates a navigation list with a detached sibling label.
func NewNavList(parent *core.Widget, label string, hotkey rune) *NavList {
	n := &NavList{Labeled: newLabeled(parent, label, hotkey), selection: -1}
	n.SetBehavior(n)
	n.Override(true, false, false)
	n.SetListWidth(15)
	return n
}

// ListWidth returns the width reserved for the list of page names.
func (n *NavList) ListWidth() int { return n.listWidth }

// SetListWidth reserves width for the list and recenters the label
// over it.
func (n *NavList) SetListWidth(value int) {
	n.listWidth = value

	label := n.LinkedLabel()
	label.ToTop().ToLeft().Embellish(" ", " ")
	label.Offset((value-runewidth.StringWidth(label.Text()))/2, 0)
}

// Report describes the list's usage.
func (n *NavList) Report() core.Report {
	return core.Report{Usage: "Up/Down:Scroll, Enter:Select", Valid: true}
}

// Focus highlights the selected page.
func (n *NavList) Focus(signal.Data) {
	if n.selection > 0 {
		n.highlight = n.selection
	} else {
		n.highlight = 0
	}
}

// NewPage creates a page and inserts it into this list.
func (n *NavList) NewPage(label string) *NavPage {
	page := &NavPage{nav: n}
	page.Widget = core.New(n.Widget, label)
	page.SetBehavior(page)

	// Select the first page by default.
	if len(n.pages) > 0 {
		page.Hide()
	} else {
		n.selection = 0
	}
	n.pages = append(n.pages, page)

	// Initialize page layout.
	sx, sy := n.Position()
	sw, sh := n.Size()
	page.Resize(sw-n.listWidth, sh)
	page.Move(sx+n.listWidth-2, sy)

	return page
}

// Draw paints the framed list of page names with the highlight marked.
func (n *NavList) Draw(p *core.Painter) {
	width, _ := p.Size()
	margin := [4]int{1, width - n.listWidth + 1, 1, 1}

	p.DrawBorder(core.BorderOptions{OffsetRight: margin[1] - 1})

	for i, page := range n.pages {
		attr := p.Style("text")
		if i == n.highlight {
			attr = p.Style("highlight")
		}
		p.DrawText(page.Label(), core.TextOptions{
			Row:     i + margin[2],
			Padding: [2]int{1, 1},
			Margin:  margin,
			Expand:  core.ExpandRight,
			Attr:    &attr,
		})
	}
}

// Operate moves the highlight with wrapping and selects on enter.
func (n *NavList) Operate(ev terminal.KeyEvent) core.Outcome {
	if len(n.pages) == 0 {
		return core.Continue
	}

	switch ev.Key {
	case terminal.KeyDown:
		n.TagRedraw()
		n.highlight = (n.highlight + 1) % len(n.pages)
	case terminal.KeyUp:
		n.TagRedraw()
		n.highlight = (n.highlight - 1 + len(n.pages)) % len(n.pages)
	case terminal.KeyEnter:
		n.TagRedraw()
		n.selectPage(n.highlight)
	}
	return core.Continue
}

// selectPage reveals the indexed page and transfers input focus to it.
func (n *NavList) selectPage(idx int) {
	if idx < 0 || idx >= len(n.pages) {
		return
	}
	if n.selection >= 0 {
		n.pages[n.selection].Hide()
	}
	n.pages[idx].Show()
	n.selection = idx
	n.Session().SetFocus(n.pages[idx].Widget, nil)
}
