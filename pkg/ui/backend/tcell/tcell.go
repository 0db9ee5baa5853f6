// Package tcell provides a Backend implementation using tcell.
package tcell

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/fedackb/ui-framework/pkg/ui/backend"
	"github.com/fedackb/ui-framework/pkg/ui/terminal"
)

// Backend implements backend.Backend using tcell.
//
// tcell's PollEvent blocks, so a pump goroutine drains it into a
// buffered channel; Poll then services the channel without blocking,
// which is what the cooperative session loop requires.
type Backend struct {
	screen tcell.Screen

	events chan terminal.Event
	quit   chan struct{}
	once   sync.Once
}

// New creates a new tcell backend.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen creates a backend with an existing tcell screen (for testing).
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{
		screen: screen,
		events: make(chan terminal.Event, 128),
		quit:   make(chan struct{}),
	}
}

// Init initializes the backend and starts the event pump.
func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return err
	}
	go b.pump()
	return nil
}

// Fini stops the event pump and restores the terminal state.
func (b *Backend) Fini() {
	b.once.Do(func() { close(b.quit) })
	b.screen.Fini()
}

// Size returns the terminal dimensions.
func (b *Backend) Size() (width, height int) {
	return b.screen.Size()
}

// SetContent sets a cell at position (x, y).
func (b *Backend) SetContent(x, y int, r rune, style backend.Style) {
	b.screen.SetContent(x, y, r, nil, convertStyle(style))
}

// CellContent returns the rune and style currently at (x, y).
func (b *Backend) CellContent(x, y int) (rune, backend.Style) {
	r, _, style, _ := b.screen.GetContent(x, y)
	if r == 0 {
		r = ' '
	}
	return r, convertTcellStyle(style)
}

// Show synchronizes the buffer to the terminal.
func (b *Backend) Show() {
	b.screen.Show()
}

// Clear clears the screen.
func (b *Backend) Clear() {
	b.screen.Clear()
}

// HideCursor hides the cursor.
func (b *Backend) HideCursor() {
	b.screen.HideCursor()
}

// Poll returns the next pending event, or nil when none is queued.
func (b *Backend) Poll() terminal.Event {
	select {
	case ev := <-b.events:
		return ev
	default:
		return nil
	}
}

// PostEvent injects an event into the queue.
func (b *Backend) PostEvent(ev terminal.Event) {
	select {
	case b.events <- ev:
	case <-b.quit:
	}
}

// Beep emits an audible bell.
func (b *Backend) Beep() {
	b.screen.Beep()
}

// Sync forces a full redraw.
func (b *Backend) Sync() {
	b.screen.Sync()
}

func (b *Backend) pump() {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		converted := convertEvent(ev)
		if converted == nil {
			continue
		}
		select {
		case b.events <- converted:
		case <-b.quit:
			return
		}
	}
}

// convertEvent converts a tcell event to a terminal event.
// Events with no terminal counterpart convert to nil.
func convertEvent(ev tcell.Event) terminal.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return convertKey(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return terminal.ResizeEvent{Width: w, Height: h}
	}
	return nil
}

func convertKey(e *tcell.EventKey) terminal.Event {
	mods := e.Modifiers()
	kev := terminal.KeyEvent{
		Alt:   mods&tcell.ModAlt != 0,
		Ctrl:  mods&tcell.ModCtrl != 0,
		Shift: mods&tcell.ModShift != 0,
	}

	switch e.Key() {
	case tcell.KeyRune:
		kev.Key = terminal.KeyRune
		kev.Rune = e.Rune()
	case tcell.KeyEnter:
		kev.Key = terminal.KeyEnter
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		kev.Key = terminal.KeyBackspace
	case tcell.KeyTab:
		kev.Key = terminal.KeyTab
	case tcell.KeyBacktab:
		kev.Key = terminal.KeyBacktab
	case tcell.KeyEscape:
		kev.Key = terminal.KeyEscape
	case tcell.KeyUp:
		kev.Key = terminal.KeyUp
	case tcell.KeyDown:
		kev.Key = terminal.KeyDown
	case tcell.KeyLeft:
		kev.Key = terminal.KeyLeft
	case tcell.KeyRight:
		kev.Key = terminal.KeyRight
	case tcell.KeyHome:
		kev.Key = terminal.KeyHome
	case tcell.KeyEnd:
		kev.Key = terminal.KeyEnd
	case tcell.KeyPgUp:
		kev.Key = terminal.KeyPageUp
	case tcell.KeyPgDn:
		kev.Key = terminal.KeyPageDown
	case tcell.KeyDelete:
		kev.Key = terminal.KeyDelete
	case tcell.KeyInsert:
		kev.Key = terminal.KeyInsert
	case tcell.KeyF1:
		kev.Key = terminal.KeyF1
	case tcell.KeyF2:
		kev.Key = terminal.KeyF2
	case tcell.KeyF3:
		kev.Key = terminal.KeyF3
	case tcell.KeyF4:
		kev.Key = terminal.KeyF4
	case tcell.KeyF5:
		kev.Key = terminal.KeyF5
	case tcell.KeyF6:
		kev.Key = terminal.KeyF6
	case tcell.KeyF7:
		kev.Key = terminal.KeyF7
	case tcell.KeyF8:
		kev.Key = terminal.KeyF8
	case tcell.KeyF9:
		kev.Key = terminal.KeyF9
	case tcell.KeyF10:
		kev.Key = terminal.KeyF10
	case tcell.KeyF11:
		kev.Key = terminal.KeyF11
	case tcell.KeyF12:
		kev.Key = terminal.KeyF12
	default:
		return nil
	}

	return kev
}

// convertStyle converts backend.Style to tcell.Style.
func convertStyle(s backend.Style) tcell.Style {
	fg, bg, attrs := s.Decompose()
	style := tcell.StyleDefault.
		Foreground(convertColor(fg)).
		Background(convertColor(bg))

	if attrs&backend.AttrBold != 0 {
		style = style.Bold(true)
	}
	if attrs&backend.AttrBlink != 0 {
		style = style.Blink(true)
	}
	if attrs&backend.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	if attrs&backend.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if attrs&backend.AttrDim != 0 {
		style = style.Dim(true)
	}
	if attrs&backend.AttrItalic != 0 {
		style = style.Italic(true)
	}

	return style
}

// convertTcellStyle converts tcell.Style back to backend.Style.
func convertTcellStyle(s tcell.Style) backend.Style {
	fg, bg, attrs := s.Decompose()

	style := backend.DefaultStyle().
		Foreground(reverseConvertColor(fg)).
		Background(reverseConvertColor(bg))

	if attrs&tcell.AttrBold != 0 {
		style = style.Bold(true)
	}
	if attrs&tcell.AttrBlink != 0 {
		style = style.Blink(true)
	}
	if attrs&tcell.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	if attrs&tcell.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if attrs&tcell.AttrDim != 0 {
		style = style.Dim(true)
	}
	if attrs&tcell.AttrItalic != 0 {
		style = style.Italic(true)
	}

	return style
}

// convertColor converts backend.Color to tcell.Color.
func convertColor(c backend.Color) tcell.Color {
	if c == backend.ColorDefault {
		return tcell.ColorDefault
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.PaletteColor(int(c))
}

// reverseConvertColor converts tcell.Color to backend.Color.
func reverseConvertColor(c tcell.Color) backend.Color {
	if c == tcell.ColorDefault {
		return backend.ColorDefault
	}
	if c&tcell.ColorIsRGB != 0 {
		r, g, b := c.RGB()
		return backend.ColorRGB(uint8(r), uint8(g), uint8(b))
	}
	return backend.Color(c & ^tcell.ColorValid)
}
