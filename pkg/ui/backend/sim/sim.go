// Package sim provides a simulation backend for testing.
//
// Unlike the tcell backend, events injected here become visible to Poll
// synchronously, so tests can drive a session loop deterministically
// and capture the resulting screen content.
package sim

import (
	"strings"
	"sync"

	"github.com/fedackb/ui-framework/pkg/ui/backend"
	"github.com/fedackb/ui-framework/pkg/ui/terminal"
)

type cell struct {
	r     rune
	style backend.Style
}

// Backend is an in-memory backend with event injection and screen capture.
type Backend struct {
	mu     sync.Mutex
	width  int
	height int
	cells  []cell
	events []terminal.Event
	inited bool
	finied bool
}

// New creates a simulation backend with the given dimensions.
func New(width, height int) *Backend {
	b := &Backend{width: width, height: height}
	b.cells = blank(width, height)
	return b
}

func blank(w, h int) []cell {
	cells := make([]cell, w*h)
	for i := range cells {
		cells[i] = cell{r: ' ', style: backend.DefaultStyle()}
	}
	return cells
}

// Init marks the backend initialized.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.inited = true
	return nil
}

// Fini marks the backend finalized.
func (b *Backend) Fini() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.finied = true
}

// Inited reports whether Init has been called.
func (b *Backend) Inited() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.inited
}

// Finied reports whether Fini has been called.
func (b *Backend) Finied() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.finied
}

// Size returns the simulated terminal dimensions.
func (b *Backend) Size() (width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

// Resize changes the simulated screen size.
func (b *Backend) Resize(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.width = width
	b.height = height
	b.cells = blank(width, height)
}

// SetContent sets a cell at position (x, y).
func (b *Backend) SetContent(x, y int, r rune, style backend.Style) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = cell{r: r, style: style}
}

// CellContent returns the rune and style at (x, y).
func (b *Backend) CellContent(x, y int) (rune, backend.Style) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return ' ', backend.DefaultStyle()
	}
	c := b.cells[y*b.width+x]
	return c.r, c.style
}

// Show is a no-op; content is immediately observable via Capture.
func (b *Backend) Show() {}

// Clear fills the screen with blanks.
func (b *Backend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cells = blank(b.width, b.height)
}

// HideCursor is a no-op.
func (b *Backend) HideCursor() {}

// Poll returns the next queued event, or nil when none is pending.
func (b *Backend) Poll() terminal.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.events) == 0 {
		return nil
	}
	ev := b.events[0]
	b.events = b.events[1:]
	return ev
}

// PostEvent queues an event for Poll.
func (b *Backend) PostEvent(ev terminal.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, ev)
}

// Beep is a no-op.
func (b *Backend) Beep() {}

// Sync is a no-op.
func (b *Backend) Sync() {}

// InjectKey queues a key event.
func (b *Backend) InjectKey(key terminal.Key, r rune) {
	b.PostEvent(terminal.KeyEvent{Key: key, Rune: r})
}

// InjectKeyRune queues a regular character keypress.
func (b *Backend) InjectKeyRune(r rune) {
	b.InjectKey(terminal.KeyRune, r)
}

// InjectKeyString queues a string as a sequence of key events.
func (b *Backend) InjectKeyString(str string) {
	for _, r := range str {
		b.InjectKeyRune(r)
	}
}

// Capture captures the current screen content as a string.
func (b *Backend) Capture() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	lines := make([]string, 0, b.height)
	for y := 0; y < b.height; y++ {
		var line strings.Builder
		for x := 0; x < b.width; x++ {
			line.WriteRune(b.cells[y*b.width+x].r)
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// CaptureRegion captures a rectangular region of the screen.
func (b *Backend) CaptureRegion(x, y, w, h int) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	var lines []string
	for row := y; row < y+h; row++ {
		var line strings.Builder
		for col := x; col < x+w; col++ {
			r := ' '
			if col >= 0 && col < b.width && row >= 0 && row < b.height {
				r = b.cells[row*b.width+col].r
			}
			line.WriteRune(r)
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// FindText searches for text on the screen and returns its position.
// Returns -1, -1 if not found.
func (b *Backend) FindText(text string) (x, y int) {
	capture := b.Capture()
	for row, line := range strings.Split(capture, "\n") {
		if col := strings.Index(line, text); col >= 0 {
			return col, row
		}
	}
	return -1, -1
}
