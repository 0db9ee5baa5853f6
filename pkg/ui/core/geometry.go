package core

// Rect is a positioned rectangle in absolute screen coordinates.
type Rect struct {
	X, Y, Width, Height int
}

// Contains returns true if the point is inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Alignment selects a position along an axis relative to a parent span.
type Alignment int

// Alignment modes
const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// Geometry mutators operate relative to the immediate parent's bounds
// and clamp. They are total functions over integers: invalid requests
// are clamped, never raised as errors.

// parentRect returns the bounds the widget is constrained by: its
// parent's bounds, or the screen at the root.
func (w *Widget) parentRect() Rect {
	if w.parent != nil {
		return w.parent.bounds
	}
	if w.session != nil {
		return w.session.screen
	}
	return w.bounds
}

// Bounds returns the widget's absolute bounds.
func (w *Widget) Bounds() Rect { return w.bounds }

// Position returns the widget's coordinates relative to its parent.
func (w *Widget) Position() (x, y int) {
	p := w.parentRect()
	return w.bounds.X - p.X, w.bounds.Y - p.Y
}

// Size returns the widget's width and height.
func (w *Widget) Size() (width, height int) {
	return w.bounds.Width, w.bounds.Height
}

// Offset moves this widget relative to its current position, clamped
// within the parent's bounds. Linked nodes and the whole subtree move
// by the same clamped delta. Returns the widget for chaining.
func (w *Widget) Offset(dx, dy int) *Widget {
	p := w.parentRect()
	s := w.bounds

	// Constrain the offsets within the parent's bounds.
	dx = clamp(dx+s.X, p.X, p.X+p.Width-s.Width) - s.X
	dy = clamp(dy+s.Y, p.Y, p.Y+p.Height-s.Height) - s.Y

	// Offset any linked nodes by the same delta.
	for _, link := range w.links {
		if !link.Gone() {
			link.Offset(dx, dy)
		}
	}

	w.offsetTree(dx, dy)
	return w
}

func (w *Widget) offsetTree(dx, dy int) {
	w.bounds.X += dx
	w.bounds.Y += dy
	for _, child := range w.children {
		child.offsetTree(dx, dy)
	}
}

// Move places this widget at the given coordinates relative to its
// parent, clamped within the parent's bounds.
func (w *Widget) Move(x, y int) *Widget {
	cx, cy := w.Position()
	return w.Offset(x-cx, y-cy)
}

// MoveX moves only the horizontal coordinate.
func (w *Widget) MoveX(x int) *Widget {
	cx, _ := w.Position()
	return w.Offset(x-cx, 0)
}

// MoveY moves only the vertical coordinate.
func (w *Widget) MoveY(y int) *Widget {
	_, cy := w.Position()
	return w.Offset(0, y-cy)
}

// Resize sets this widget's dimensions, clamped to the span remaining
// in the parent from the widget's current origin, with a minimum of 1.
// Children are re-positioned by their own prior offset from the parent
// edge, not stretched.
func (w *Widget) Resize(width, height int) *Widget {
	p := w.parentRect()
	s := w.bounds

	width = clamp(width, 1, p.X+p.Width-s.X)
	height = clamp(height, 1, p.Y+p.Height-s.Y)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	w.bounds.Width = width
	w.bounds.Height = height

	// Compensate for the effects resizing has on the children: each
	// re-applies its own size and prior offset against the new bounds.
	for _, child := range w.children {
		cx, cy := child.bounds.X-s.X, child.bounds.Y-s.Y
		cw, ch := child.bounds.Width, child.bounds.Height
		child.Resize(cw, ch)
		child.Move(cx, cy)
	}
	return w
}

// Scale resizes this widget relative to its current dimensions, with a
// minimum of 2 in each dimension.
func (w *Widget) Scale(dw, dh int) *Widget {
	sw, sh := w.Size()
	return w.Resize(maxInt(2, sw+dw), maxInt(2, sh+dh))
}

// Inset shrinks this widget symmetrically by a multiple of the fixed
// unit (2 columns and 1 row per factor), carving a padded content
// region without violating the parent's bounds.
func (w *Widget) Inset(factor int) *Widget {
	w.Scale(-4*factor, -2*factor)
	w.Offset(2*factor, 1*factor)
	return w
}

// Outset grows this widget symmetrically by a multiple of the fixed
// unit (2 columns and 1 row per factor).
func (w *Widget) Outset(factor int) *Widget {
	w.Offset(-2*factor, -1*factor)
	w.Scale(4*factor, 2*factor)
	return w
}

// Align positions this widget along the primary axis (width), or the
// cross axis (height) when cross is set, relative to the parent's span.
// The other coordinate resets to the parent's origin.
func (w *Widget) Align(mode Alignment, cross bool) *Widget {
	sw, sh := w.Size()
	p := w.parentRect()

	inner, outer := sw, p.Width
	if cross {
		inner, outer = sh, p.Height
	}

	var offset int
	switch mode {
	case AlignStart:
		offset = 0
	case AlignCenter:
		offset = (outer - inner) / 2
	case AlignEnd:
		offset = outer - inner
	}

	if cross {
		w.Move(0, offset)
	} else {
		w.Move(offset, 0)
	}
	return w
}

// clamp applies min(max(v, lo), hi); hi wins when the range is inverted.
func clamp(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
