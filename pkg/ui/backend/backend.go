// Package backend defines the terminal surface interface for the UI
// framework. This abstraction allows swapping between tcell (real
// terminals) and simulation backends (testing), enabling screen-capture
// tests of full widget trees.
package backend

import "github.com/fedackb/ui-framework/pkg/ui/terminal"

// Backend is the terminal abstraction layer.
// Implementations handle terminal I/O, input events, and screen output.
type Backend interface {
	// Init initializes the backend (enters alt screen, raw mode, etc).
	Init() error

	// Fini cleans up the backend (restores terminal state).
	Fini()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetContent sets a cell at position (x, y) with the given rune and style.
	SetContent(x, y int, r rune, style Style)

	// CellContent returns the rune and style currently at (x, y).
	CellContent(x, y int) (r rune, style Style)

	// Show synchronizes the internal buffer to the terminal.
	// This is where actual output happens.
	Show()

	// Clear clears the screen.
	Clear()

	// HideCursor hides the terminal cursor.
	HideCursor()

	// Poll returns the next pending event without blocking.
	// Returns nil immediately when no input is available.
	Poll() terminal.Event

	// PostEvent injects an event into the event queue.
	// Useful for testing and for posting internal events.
	PostEvent(ev terminal.Event)

	// Beep emits an audible bell.
	Beep()

	// Sync forces a full redraw on next Show().
	Sync()
}

// RenderTarget is a subset of Backend for rendering operations only.
// Widgets draw through this interface, not the full Backend.
type RenderTarget interface {
	Size() (width, height int)
	SetContent(x, y int, r rune, style Style)
	CellContent(x, y int) (r rune, style Style)
}

// SubTarget wraps a RenderTarget with an offset and clip bounds for
// sub-region rendering.
type SubTarget struct {
	parent  RenderTarget
	offsetX int
	offsetY int
	width   int
	height  int
}

// NewSubTarget creates a sub-region of a RenderTarget.
func NewSubTarget(parent RenderTarget, x, y, w, h int) *SubTarget {
	return &SubTarget{
		parent:  parent,
		offsetX: x,
		offsetY: y,
		width:   w,
		height:  h,
	}
}

// Size returns the sub-target dimensions.
func (s *SubTarget) Size() (width, height int) {
	return s.width, s.height
}

// SetContent sets content with coordinates relative to the sub-target.
func (s *SubTarget) SetContent(x, y int, r rune, style Style) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.parent.SetContent(s.offsetX+x, s.offsetY+y, r, style)
}

// CellContent reads a cell with coordinates relative to the sub-target.
func (s *SubTarget) CellContent(x, y int) (rune, Style) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' ', DefaultStyle()
	}
	return s.parent.CellContent(s.offsetX+x, s.offsetY+y)
}
