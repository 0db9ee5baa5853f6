package core

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/fedackb/ui-framework/pkg/ui/backend"
)

// Fit selects how text is fitted to the available width.
type Fit int

// Text fitting options
const (
	FitClipRight Fit = iota // clip with a trailing ellipsis
	FitClipLeft             // keep the tail, leading ellipsis
	FitNoWrap               // hard clip, no ellipsis
	FitWrap                 // break into multiple lines
	FitAutoScroll           // scroll on one line over time
)

// Expand selects how extra space after text is consumed.
type Expand int

// Expansion options
const (
	ExpandNone Expand = iota
	ExpandLeft
	ExpandRight
	ExpandAround
)

// TextAlign selects horizontal placement of a text line.
type TextAlign int

// Text alignment options
const (
	TextLeft TextAlign = iota
	TextCenter
	TextRight
)

// TextOptions configures DrawText. The zero value draws a single
// left-aligned line at row 0, clipped with an ellipsis, in the
// widget's themed text style.
type TextOptions struct {
	Row     int
	Padding [2]int // left, right whitespace padding
	Margin  [4]int // left, right, top, bottom widget margins
	Hint    rune   // emphasize first occurrence, suggesting a hotkey
	Fit     Fit
	Expand  Expand
	Align   TextAlign
	Attr    *backend.Style // nil resolves to the themed "text" style
}

// BorderOptions configures DrawBorder. Zero-value runes resolve to
// box-drawing defaults; a nil Attr resolves to the themed "border"
// style.
type BorderOptions struct {
	OffsetLeft   int
	OffsetRight  int
	OffsetTop    int
	OffsetBottom int

	Left, Right, Top, Bottom                   rune
	TopLeft, TopRight, BottomLeft, BottomRight rune

	Attr *backend.Style
}

// Default border runes
const (
	borderHorizontal = '─'
	borderVertical   = '│'
	borderTopLeft    = '┌'
	borderTopRight   = '┐'
	borderBottomLeft = '└'
	borderBottomRt   = '┘'
)

// Painter provides bounds-safe drawing into a widget's screen region.
// A painter is handed to Behavior.Draw during the draw pass; all
// coordinates are relative to the widget's own bounds.
type Painter struct {
	w      *Widget
	target backend.RenderTarget
}

func (w *Widget) painter(target backend.RenderTarget) *Painter {
	sub := backend.NewSubTarget(target, w.bounds.X, w.bounds.Y, w.bounds.Width, w.bounds.Height)
	return &Painter{w: w, target: sub}
}

// Widget returns the widget being painted.
func (p *Painter) Widget() *Widget { return p.w }

// Size returns the painted region's dimensions.
func (p *Painter) Size() (width, height int) { return p.target.Size() }

// Style queries the theme with the widget's current state.
func (p *Painter) Style(name string) backend.Style { return p.w.Style(name) }

// Fill paints the whole region with spaces in the given style.
func (p *Painter) Fill(style backend.Style) {
	width, height := p.target.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p.target.SetContent(x, y, ' ', style)
		}
	}
}

// SetCell writes one rune at the given position.
func (p *Painter) SetCell(x, y int, r rune, style backend.Style) {
	p.target.SetContent(x, y, r, style)
}

// setString writes a string starting at (x, y), advancing by display
// width. Clipping happens in the sub-target.
func (p *Painter) setString(x, y int, s string, style backend.Style) {
	for _, r := range s {
		p.target.SetContent(x, y, r, style)
		x += runewidth.RuneWidth(r)
	}
}

func (p *Painter) hline(x, y int, r rune, n int, style backend.Style) {
	for i := 0; i < n; i++ {
		p.target.SetContent(x+i, y, r, style)
	}
}

func (p *Painter) vline(x, y int, r rune, n int, style backend.Style) {
	for i := 0; i < n; i++ {
		p.target.SetContent(x, y+i, r, style)
	}
}

// DrawText adds text to the widget region in a bounds-safe and
// configurable manner. Returns the number of lines added.
func (p *Painter) DrawText(text string, opts TextOptions) int {
	width, height := p.target.Size()
	margin := opts.Margin
	padding := opts.Padding
	row := opts.Row

	effectiveWidth := width - padding[0] - padding[1] - margin[0] - margin[1]

	// The row must sit between the vertical margins with room for at
	// least one padded character between the horizontal ones.
	if row < margin[2] || row > height-margin[3]-1 || effectiveWidth < 1 {
		return 0
	}

	var lines []string
	switch opts.Fit {
	case FitAutoScroll:
		lines = []string{p.w.autoScroll(text, effectiveWidth)}

	case FitClipRight:
		if runewidth.StringWidth(text) > effectiveWidth {
			lines = []string{runewidth.Truncate(text, effectiveWidth, "...")}
		} else {
			lines = []string{text}
		}

	case FitNoWrap:
		lines = []string{runewidth.Truncate(text, effectiveWidth, "")}

	case FitClipLeft:
		sw := runewidth.StringWidth(text)
		if sw > effectiveWidth {
			lines = []string{runewidth.TruncateLeft(text, sw-effectiveWidth+3, "...")}
		} else {
			lines = []string{text}
		}

	case FitWrap:
		lines = wrapText(text, effectiveWidth)
		// Discard out-of-bound lines.
		if limit := height - margin[3] - row; len(lines) > limit {
			lines = lines[:limit]
		}
	}

	// Pad the line(s) of text.
	for i, line := range lines {
		lines[i] = strings.Repeat(" ", padding[0]) + line + strings.Repeat(" ", padding[1])
	}

	// Expand line(s) into the leftover span between the margins.
	span := width - margin[0] - margin[1]
	switch opts.Expand {
	case ExpandLeft:
		for i, line := range lines {
			lines[i] = runewidth.FillLeft(line, span)
		}
	case ExpandRight:
		for i, line := range lines {
			lines[i] = runewidth.FillRight(line, span)
		}
	case ExpandAround:
		for i, line := range lines {
			lines[i] = center(line, span)
		}
	}

	attr := p.Style("text")
	if opts.Attr != nil {
		attr = *opts.Attr
	}

	hinted := false
	for i, line := range lines {
		lineWidth := runewidth.StringWidth(line)

		var offset int
		switch opts.Align {
		case TextCenter:
			offset = (width-margin[0]-margin[1]-lineWidth)/2 + margin[0]
		case TextRight:
			offset = width - margin[1] - lineWidth
		default:
			offset = margin[0]
		}

		p.setString(offset, row+i, line, attr)

		// Emphasize the first occurrence of the hint character,
		// provided this widget's ancestor holds the input focus.
		if opts.Hint != 0 && !hinted &&
			p.w.session != nil && p.w.ancestor == p.w.session.Focus() {
			if x, ok := hintOffset(line, opts.Hint); ok {
				p.target.SetContent(offset+x, row+i, hintRuneAt(line, opts.Hint), attr.Underline(true))
				hinted = true
			}
		}
	}

	return len(lines)
}

// DrawBorder draws a border inset by the given edge offsets.
func (p *Painter) DrawBorder(opts BorderOptions) {
	width, height := p.target.Size()

	attr := p.Style("border")
	if opts.Attr != nil {
		attr = *opts.Attr
	}

	// Constrain offsets to widget bounds.
	offLeft := clamp(opts.OffsetLeft, 0, width-1)
	offRight := clamp(opts.OffsetRight, 0, width-1)
	offTop := clamp(opts.OffsetTop, 0, height-1)
	offBottom := clamp(opts.OffsetBottom, 0, height-1)

	borderWidth := width - offLeft - offRight - 1
	borderHeight := height - offTop - offBottom - 1
	xLeft := offLeft
	xRight := xLeft + borderWidth
	yTop := offTop
	yBottom := yTop + borderHeight

	// Flip coordinates if the offsets cross.
	if borderWidth < 0 {
		xLeft, xRight = xRight, xLeft
		borderWidth = -borderWidth
	}
	if borderHeight < 0 {
		yTop, yBottom = yBottom, yTop
		borderHeight = -borderHeight
	}

	left := defaultRune(opts.Left, borderVertical)
	right := defaultRune(opts.Right, borderVertical)
	top := defaultRune(opts.Top, borderHorizontal)
	bottom := defaultRune(opts.Bottom, borderHorizontal)
	topLeft := defaultRune(opts.TopLeft, borderTopLeft)
	topRight := defaultRune(opts.TopRight, borderTopRight)
	bottomLeft := defaultRune(opts.BottomLeft, borderBottomLeft)
	bottomRight := defaultRune(opts.BottomRight, borderBottomRt)

	// Corners.
	p.target.SetContent(xLeft, yTop, topLeft, attr)
	p.target.SetContent(xRight, yTop, topRight, attr)
	p.target.SetContent(xLeft, yBottom, bottomLeft, attr)
	p.target.SetContent(xRight, yBottom, bottomRight, attr)

	// Sides.
	p.vline(xLeft, yTop+1, left, borderHeight-1, attr)
	p.vline(xRight, yTop+1, right, borderHeight-1, attr)
	p.hline(xLeft+1, yTop, top, borderWidth-1, attr)
	p.hline(xLeft+1, yBottom, bottom, borderWidth-1, attr)
}

// DrawCursor renders a cursor by restyling the underlying cell.
// The margin is left, right, top, bottom; cursors outside it are not
// drawn.
func (p *Painter) DrawCursor(col, row int, margin [4]int) {
	width, height := p.target.Size()

	if row < margin[2] || row+margin[2] > height-margin[3] ||
		col < margin[0] || col+margin[1] > width-margin[2] {
		return
	}

	r, _ := p.target.CellContent(col, row)
	p.target.SetContent(col, row, r, p.Style("cursor"))
}

// Auto-scroll pacing: spaces between wrapped ends, characters per
// second, and the pause before scrolling starts.
const (
	scrollGap   = 8
	scrollRate  = 5.0
	scrollDelay = 0.67
)

// autoScroll scrolls text on a single line over time, keyed off the
// elapsed time since this widget gained focus.
func (w *Widget) autoScroll(text string, width int) string {
	runes := []rune(text)
	if len(runes) < width {
		return text
	}

	runes = append(runes, []rune(strings.Repeat(" ", scrollGap))...)

	// Interval between complete scrolls.
	period := scrollDelay + float64(len(runes))/scrollRate

	periodTime := float64(int64(w.ElapsedFocus()*1000)%int64(period*1000)) / 1000
	start := 0
	if periodTime >= scrollDelay {
		start = int(scrollRate * (periodTime - scrollDelay))
	}
	start %= len(runes)

	rotated := append(append([]rune{}, runes[start:]...), runes[:start]...)
	if len(rotated) > width {
		rotated = rotated[:width]
	}
	return string(rotated)
}

func wrapText(text string, width int) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return []string{""}
	}
	var lines []string
	for len(runes) > 0 {
		n := minInt(width, len(runes))
		lines = append(lines, string(runes[:n]))
		runes = runes[n:]
	}
	return lines
}

func center(s string, span int) string {
	sw := runewidth.StringWidth(s)
	if sw >= span {
		return s
	}
	left := (span - sw) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", span-sw-left)
}

func defaultRune(r, fallback rune) rune {
	if r == 0 {
		return fallback
	}
	return r
}

// hintOffset finds the display-column offset of the first
// case-insensitive occurrence of the hint rune.
func hintOffset(line string, hint rune) (int, bool) {
	offset := 0
	lower := strings.ToLower(string(hint))
	for _, r := range line {
		if strings.ToLower(string(r)) == lower {
			return offset, true
		}
		offset += runewidth.RuneWidth(r)
	}
	return 0, false
}

// hintRuneAt returns the actual rune matched by the hint, preserving
// the original case.
func hintRuneAt(line string, hint rune) rune {
	lower := strings.ToLower(string(hint))
	for _, r := range line {
		if strings.ToLower(string(r)) == lower {
			return r
		}
	}
	return hint
}
