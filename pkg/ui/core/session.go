package core

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fedackb/ui-framework/pkg/ui/backend"
	"github.com/fedackb/ui-framework/pkg/ui/signal"
	"github.com/fedackb/ui-framework/pkg/ui/terminal"
	"github.com/fedackb/ui-framework/pkg/ui/theme"
)

// Config configures a session.
type Config struct {
	// Backend is the terminal surface. Required.
	Backend backend.Backend

	// Theme resolves style queries. Defaults to theme.Default().
	Theme *theme.Theme

	// Router is the signal router for the root widget, letting an
	// application share one bus with the tree. Defaults to a new one.
	Router *signal.Router

	// Logger receives structured session diagnostics. Defaults to a
	// discard logger.
	Logger *slog.Logger

	// PollInterval is the idle sleep between input polls. It paces
	// time-based animation; defaults to 10ms.
	PollInterval time.Duration
}

// Session composes the widget tree, the focus navigator, and the render
// scheduler into the cooperative run loop. It is the single shared
// context every widget reaches through its tree: one process-wide focus
// pointer, one theme, one surface.
type Session struct {
	backend backend.Backend
	theme   *theme.Theme
	logger  *slog.Logger

	screen Rect
	root   *Widget

	focus *Widget
	trace []*Widget

	running      bool
	pollInterval time.Duration

	errs   []error
	closed bool
}

// NewSession initializes the terminal surface and creates the widget
// tree root. The caller builds the tree, then calls Run, then Close.
func NewSession(cfg Config) (*Session, error) {
	if cfg.Backend == nil {
		return nil, errors.New("core: a backend is required")
	}
	if err := cfg.Backend.Init(); err != nil {
		return nil, fmt.Errorf("init backend: %w", err)
	}
	cfg.Backend.HideCursor()

	th := cfg.Theme
	if th == nil {
		th = theme.Default()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}

	width, height := cfg.Backend.Size()
	s := &Session{
		backend:      cfg.Backend,
		theme:        th,
		logger:       logger,
		screen:       Rect{Width: width, Height: height},
		pollInterval: interval,
	}

	rootOpts := []Option{}
	if cfg.Router != nil {
		rootOpts = append(rootOpts, WithRouter(cfg.Router))
	}
	s.root = newWidget(s, nil, "root", rootOpts...)

	// The exit signal is handled like any other bubbled signal,
	// registered once at session start.
	s.root.Handle(signal.SigExit, func(signal.Data) {
		s.running = false
	})

	return s, nil
}

// Root returns the root of the widget tree.
func (s *Session) Root() *Widget { return s.root }

// Theme returns the session theme.
func (s *Session) Theme() *theme.Theme { return s.theme }

// Logger returns the session logger.
func (s *Session) Logger() *slog.Logger { return s.logger }

// Screen returns the screen bounds.
func (s *Session) Screen() Rect { return s.screen }

// Exit requests loop termination, equivalent to an EXIT signal.
func (s *Session) Exit() { s.running = false }

// Run executes the input/dispatch/draw loop until an exit signal is
// received or an unrecoverable error occurs. Runtime errors are
// recorded, not swallowed; Close reports them once the surface has
// been released.
func (s *Session) Run() {
	defer func() {
		if r := recover(); r != nil {
			s.fail(fmt.Errorf("session panic: %v", r))
		}
	}()

	// The entry point is the first focusable descendant of the root.
	descendants := s.root.descendants
	if len(descendants) == 0 {
		s.logger.Warn("session has no focusable entry point")
		return
	}

	s.SetFocus(descendants[0], nil)
	s.trace = s.trace[:0]
	s.running = true
	s.logger.Debug("session started",
		slog.Int("width", s.screen.Width), slog.Int("height", s.screen.Height))

	for s.running {
		s.draw()
		s.syncTrace()

		if s.Focus() == nil {
			// The focused subtree was dropped; fall back through the
			// trace or stop if nothing remains.
			s.backtrace()
			if s.Focus() == nil {
				s.logger.Warn("input focus lost, stopping")
				return
			}
		}

		ev := s.backend.Poll()
		if ev == nil {
			// Idle: keep the loop turning for time-based animation.
			time.Sleep(s.pollInterval)
			continue
		}

		switch e := ev.(type) {
		case terminal.KeyEvent:
			if err := s.dispatch(e); err != nil {
				s.fail(err)
			}
		case terminal.ResizeEvent:
			s.screen = Rect{Width: e.Width, Height: e.Height}
			s.backend.Sync()
			s.root.TagRedraw()
		}
	}
	s.logger.Debug("session stopped")
}

// Step runs a single poll/dispatch/draw iteration without sleeping.
// Intended for tests and host loops that own their own cadence.
func (s *Session) Step() {
	s.draw()
	s.syncTrace()
	ev := s.backend.Poll()
	if ev == nil {
		return
	}
	if key, ok := ev.(terminal.KeyEvent); ok {
		if err := s.dispatch(key); err != nil {
			s.fail(err)
		}
	}
}

// Err returns the accumulated runtime errors so far.
func (s *Session) Err() error {
	return errors.Join(s.errs...)
}

// Close releases the terminal surface, then reports any accumulated
// runtime errors so diagnostics stay visible after teardown.
func (s *Session) Close() error {
	if !s.closed {
		s.closed = true
		s.backend.Fini()
	}
	return errors.Join(s.errs...)
}

func (s *Session) draw() {
	s.root.drawTagged(s.backend)
	s.backend.Show()
}

func (s *Session) fail(err error) {
	s.logger.Error("session error", slog.String("error", err.Error()))
	s.errs = append(s.errs, err)
	s.running = false
}
