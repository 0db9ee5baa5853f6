package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/fedackb/ui-framework/pkg/ui/core"
	"github.com/fedackb/ui-framework/pkg/ui/signal"
)

// Tab is a tabbed container for widgets. Sibling tabs under the same
// parent form a strip; focusing one hides the others.
type Tab struct {
	*core.Widget
	core.Base

	tabs []*Tab
}

// NewTab creates a tab and joins it to the strip of sibling tabs.
func NewTab(parent *core.Widget, label string, hotkey rune) *Tab {
	t := &Tab{}
	t.Widget = core.New(parent, label, core.WithHotkey(hotkey))
	t.SetBehavior(t)

	// Synchronize sibling tab lists.
	var tabs []*Tab
	for _, child := range parent.Children() {
		if sibling, ok := child.Behavior().(*Tab); ok {
			tabs = append(tabs, sibling)
		}
	}
	for _, sibling := range tabs {
		sibling.tabs = tabs
	}

	// Only the first tab of the strip starts visible.
	tabs[0].Show()
	for _, sibling := range tabs[1:] {
		sibling.Hide()
	}
	return t
}

// ContentRegion carves a group below the tab strip for contained
// widgets.
func (t *Tab) ContentRegion() *core.Widget {
	region := core.NewGroup(t.Widget)
	region.Scale(0, -2).Offset(0, 2).Inset(1)
	return region
}

// Focus reveals this tab and hides its siblings.
func (t *Tab) Focus(signal.Data) {
	for _, sibling := range t.tabs {
		sibling.Hide()
	}
	t.Show()
}

// Draw paints the tab strip, the active tab's open frame, and a border
// around the content region.
func (t *Tab) Draw(p *core.Painter) {
	width, height := p.Size()
	margin := [4]int{2, 1, 1, height - 3}
	marginLeft, marginRight := 0, 0
	inactive := p.Style("inactive")

	// Draw sibling tabs.
	for _, tab := range t.tabs {
		tabWidth := runewidth.StringWidth(tab.Label()) + 4
		margin[1] = width - margin[0] - tabWidth

		if tab == t {
			marginLeft = margin[0]
			marginRight = margin[1]
		} else {
			p.DrawBorder(core.BorderOptions{
				OffsetLeft:   margin[0],
				OffsetRight:  margin[1],
				OffsetBottom: margin[3],
				Attr:         &inactive,
			})
		}
		margin[0] += 2

		if tab != t {
			p.DrawText(tab.Label(), core.TextOptions{
				Row: 1, Margin: margin, Hint: tab.Hotkey(), Attr: &inactive,
			})
		}
		margin[0] += tabWidth
	}

	// Add border around contained widgets.
	p.DrawBorder(core.BorderOptions{OffsetTop: 2})

	// Open the active tab's frame into the content border.
	margin[0] = marginLeft
	margin[1] = marginRight
	p.DrawBorder(core.BorderOptions{
		OffsetLeft:   margin[0],
		OffsetRight:  margin[1],
		OffsetBottom: margin[3],
		Bottom:       ' ',
		BottomLeft:   '┘',
		BottomRight:  '└',
	})
	margin[0] += 2

	attr := p.Style("label")
	p.DrawText(t.Label(), core.TextOptions{
		Row: 1, Margin: margin, Hint: t.Hotkey(), Attr: &attr,
	})
}
