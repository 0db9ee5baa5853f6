package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/fedackb/ui-framework/pkg/ui/core"
	"github.com/fedackb/ui-framework/pkg/ui/signal"
	"github.com/fedackb/ui-framework/pkg/ui/terminal"
)

// Signal names consumed by the status line.
const (
	// SigFeedback displays a feedback message and grabs input focus.
	// Payload: "message" (string), "error" (bool).
	SigFeedback = "FEEDBACK"

	// SigPromptConfirm displays a confirmation prompt and grabs input
	// focus. Payload: "prompt" (string), "sigconfirm" (signal.Data of
	// the signal to emit on confirmation).
	SigPromptConfirm = "PROMPT_CONFIRM"
)

// Status line mode of operation while focused.
type statusMode int

const (
	statusIdle statusMode = iota
	statusFeedback
	statusConfirm
)

// StatusLine displays usage instructions, feedback messages, and
// confirmation prompts. Feedback and prompts seize input focus until
// the user acknowledges them.
type StatusLine struct {
	*core.Widget
	core.Base

	mode       statusMode
	isError    bool
	feedback   string
	prompt     string
	sigconfirm signal.Signal
	status     string
}

// NewStatusLine creates a status line under the given parent. To
// receive signals bubbled by widgets elsewhere in the tree, construct
// it with core.WithRouter sharing the root widget's router.
func NewStatusLine(parent *core.Widget, label string, hotkey rune, opts ...core.Option) *StatusLine {
	s := &StatusLine{}
	s.Widget = core.New(parent, label,
		append([]core.Option{core.WithHotkey(hotkey)}, opts...)...)
	s.SetBehavior(s)

	s.Handle(SigFeedback, s.displayFeedback)
	s.Handle(SigPromptConfirm, s.promptConfirm)
	s.Handle(signal.SigStatusUpdate, s.updateStatus)
	return s
}

// Draw paints the current status, feedback, or prompt with a border.
func (s *StatusLine) Draw(p *core.Painter) {
	const spacer = 3

	var text, postText string
	margin := [4]int{1, 1, 1, 1}
	attr := p.Style("status")
	width, _ := p.Size()

	// Format text according to focus state and mode of operation.
	if s.Session().Focus() == s.Widget {
		switch s.mode {
		case statusConfirm:
			text = s.prompt
			postText = "Enter:OK, Esc:Cancel"
		case statusFeedback:
			if s.isError {
				text = "ERROR: " + s.feedback
				attr = p.Style("error")
			} else {
				text = "SUCCESS: " + s.feedback
				attr = p.Style("success")
			}
			postText = "Enter/Esc:Continue"
		}
		margin[1] += runewidth.StringWidth(postText) + spacer
	} else {
		text = s.status
	}

	// Tag for redraw in order to animate the scroll.
	if runewidth.StringWidth(text) > width-margin[0]-margin[1] {
		s.TagRedraw()
	}

	p.DrawText(text, core.TextOptions{
		Row: 1, Margin: margin, Fit: core.FitAutoScroll, Attr: &attr,
	})
	p.DrawText(postText, core.TextOptions{
		Row:    1,
		Margin: [4]int{width - runewidth.StringWidth(postText) - 1, 1, 1, 1},
		Attr:   &attr,
	})
	p.DrawBorder(core.BorderOptions{Attr: &attr})
}

// Operate holds focus until the user confirms, cancels, or
// acknowledges.
func (s *StatusLine) Operate(ev terminal.KeyEvent) core.Outcome {
	switch s.mode {
	case statusConfirm:
		if ev.Key == terminal.KeyEnter {
			s.Bubble(s.sigconfirm)
			s.mode = statusIdle
			return core.End
		}
	case statusFeedback:
		if ev.Key == terminal.KeyEnter {
			s.mode = statusIdle
			return core.End
		}
	}
	return core.Continue
}

// Blur leaves any focused mode behind.
func (s *StatusLine) Blur() {
	s.mode = statusIdle
	s.TagRedraw()
}

func (s *StatusLine) displayFeedback(data signal.Data) {
	message, _ := data["message"].(string)
	isError, _ := data["error"].(bool)

	s.mode = statusFeedback
	s.feedback = message
	s.isError = isError
	s.Session().SetFocus(s.Widget, nil)
}

func (s *StatusLine) promptConfirm(data signal.Data) {
	prompt, _ := data["prompt"].(string)

	var sigconfirm signal.Signal
	switch v := data["sigconfirm"].(type) {
	case signal.Signal:
		sigconfirm = v
	case signal.Data:
		sigconfirm, _ = signal.FromData(v)
	}

	s.mode = statusConfirm
	s.prompt = prompt
	s.sigconfirm = sigconfirm
	s.Session().SetFocus(s.Widget, nil)
}

func (s *StatusLine) updateStatus(data signal.Data) {
	status, _ := data["status"].(string)

	s.ResetClock()
	s.status = status
	s.TagRedraw()
}
