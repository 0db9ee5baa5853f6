// Command uidemo runs a small connection-settings form that exercises
// the widget toolkit end to end: tabbed navigation, labeled input
// fields, form consolidation, signal translation, and a status line.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/fedackb/ui-framework/pkg/ui/backend/tcell"
	"github.com/fedackb/ui-framework/pkg/ui/core"
	"github.com/fedackb/ui-framework/pkg/ui/signal"
	"github.com/fedackb/ui-framework/pkg/ui/terminal"
	"github.com/fedackb/ui-framework/pkg/ui/theme"
	"github.com/fedackb/ui-framework/pkg/ui/widgets"
)

// The application-level signal the connection form emits on submit.
const sigConnect = "CONNECT"

var (
	themePath string
	logPath   string
)

func main() {
	flag.StringVar(&themePath, "theme", "", "path to a YAML theme file")
	flag.StringVar(&logPath, "log", "", "path to a diagnostic log file")
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	th := theme.Default()
	if themePath != "" {
		loaded, err := theme.LoadFile(themePath)
		if err != nil {
			return fmt.Errorf("load theme: %w", err)
		}
		th = loaded
	}

	var logger *slog.Logger
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	b, err := tcell.New()
	if err != nil {
		return fmt.Errorf("create backend: %w", err)
	}

	s, err := core.NewSession(core.Config{
		Backend: b,
		Theme:   th,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	defer s.Close()

	buildUI(s)
	s.Run()
	return s.Err()
}

func buildUI(s *core.Session) {
	screen := s.Screen()
	root := s.Root()

	// The status line shares the root router so that status updates and
	// feedback bubbled from anywhere in the tree reach it.
	status := widgets.NewStatusLine(root, "Status", 0, core.WithRouter(root.Router()))
	status.Resize(screen.Width, 3).Move(0, screen.Height-3)

	host := core.New(root, "Tabs", core.Unfocusable())
	host.Resize(screen.Width, screen.Height-3)

	connection := widgets.NewTab(host, "Connection", 'c')
	about := widgets.NewTab(host, "About", 'b')

	buildConnectionTab(connection)
	buildAboutTab(about)

	root.Handle(sigConnect, func(data signal.Data) {
		hostname, _ := data["host"].(string)
		port, _ := data["port"].(int)

		var feedback signal.Data
		switch {
		case hostname == "":
			feedback = signal.Data{"message": "a hostname is required", "error": true}
		case port == 0:
			feedback = signal.Data{"message": "a port is required", "error": true}
		default:
			feedback = signal.Data{
				"message": fmt.Sprintf("connecting to %s:%d", hostname, port),
				"error":   false,
			}
		}
		root.Flush(signal.New(widgets.SigFeedback, feedback, false))
	})
}

func buildConnectionTab(tab *widgets.Tab) {
	region := tab.ContentRegion()

	// The outer translator renames the consolidated form record to the
	// application's CONNECT signal; the inner ones rename each field's
	// generic output key before the form merges it. Coordinates below
	// are relative to the content region, which the form inherits.
	outer := core.NewTranslator(region)
	outer.MapOutput(sigConnect, nil)

	form := core.NewForm(outer.Widget, signal.Data{
		"host":     "localhost",
		"port":     0,
		"password": "",
		"tls":      false,
	})

	hostField := fieldOf(form.Widget, "Host", 'h', "text", "host")
	hostField.Resize(32, 3).Move(2, 1)
	hostField.SetText("localhost")
	placeLabel(hostField.LinkedLabel())

	portT := core.NewTranslator(form.Widget)
	portT.MapOutput(signal.SigDataOut, map[string]string{"number": "port"})
	portField := widgets.NewNumericField(portT.Widget, "Port", 'p')
	portField.Resize(14, 3).Move(2, 4)
	placeLabel(portField.LinkedLabel())

	passField := fieldOf(form.Widget, "Password", 'w', "text", "password")
	passField.Resize(32, 3).Move(2, 7)
	passField.Obscure()
	placeLabel(passField.LinkedLabel())

	tlsT := core.NewTranslator(form.Widget)
	tlsT.MapOutput(signal.SigDataOut, map[string]string{"enabled": "tls"})
	tlsSwitch := widgets.NewFlipSwitch(tlsT.Widget, "TLS", 't')
	tlsSwitch.Move(2, 10)
	placeLabel(tlsSwitch.LinkedLabel())

	connect := newActionButton(form.Widget, "Connect", 'n',
		signal.New(core.SigSubmit, nil, false))
	connect.Fit().Move(2, 14)

	clear := newActionButton(form.Widget, "Clear", 'r',
		signal.New(core.SigClearForm, nil, false))
	clear.Fit().Move(14, 14)

	quit := newActionButton(form.Widget, "Quit", 'q',
		signal.New(signal.SigExit, nil, false))
	quit.Fit().Move(24, 14)
}

func buildAboutTab(tab *widgets.Tab) {
	region := tab.ContentRegion()
	text := widgets.NewText(region, "about", "")
	text.Offset(2, 1)
	text.AddLine("Retained-mode widget toolkit for terminal applications.")
	text.AddLine("")
	text.AddLine("Tab and Shift-Tab cycle between fields, Enter descends")
	text.AddLine("into a container, and Esc backs out one level.")
}

// fieldOf creates a text field behind its own translator so the field's
// generic output key reaches the form under the given name.
func fieldOf(parent *core.Widget, label string, hotkey rune, from, to string) *widgets.TextField {
	tr := core.NewTranslator(parent)
	tr.MapOutput(signal.SigDataOut, map[string]string{from: to})
	return widgets.NewTextField(tr.Widget, label, hotkey)
}

// placeLabel sits a field's label on its top border, left-aligned.
func placeLabel(l *widgets.Label) {
	l.Embellish(" ", " ").ToTop().ToLeft().Offset(2, 0)
}

// actionButton is a push button that bubbles a fixed signal when
// activated. It keeps input focus so a handler reacting to the signal
// may redirect focus, as the status line does for feedback.
type actionButton struct {
	*widgets.Button
	emit signal.Signal
}

func newActionButton(parent *core.Widget, label string, hotkey rune, emit signal.Signal) *actionButton {
	b := &actionButton{Button: widgets.NewButton(parent, label, hotkey), emit: emit}
	b.SetBehavior(b)
	return b
}

func (b *actionButton) Operate(ev terminal.KeyEvent) core.Outcome {
	if ev.Key == terminal.KeyEnter {
		b.Bubble(b.emit)
	}
	return core.Continue
}
