// Package theme provides a state-based mapping of style names to render
// attributes. Widgets query it with their current interaction state, so
// a single theme covers default, focused, and disabled renditions.
package theme

import (
	"github.com/fedackb/ui-framework/pkg/ui/backend"
)

// State is a widget interaction state.
type State string

// Theme states
const (
	StateDefault  State = "default"
	StateFocused  State = "focused"
	StateDisabled State = "disabled"
)

// Theme maps (state, name) pairs to render styles.
type Theme struct {
	data map[State]map[string]backend.Style
}

// New creates an empty theme.
func New() *Theme {
	return &Theme{
		data: map[State]map[string]backend.Style{
			StateDefault:  {},
			StateFocused:  {},
			StateDisabled: {},
		},
	}
}

// Edit adds or replaces a theme entry. Unknown states are ignored.
func (t *Theme) Edit(state State, name string, style backend.Style) {
	entries, ok := t.data[state]
	if !ok {
		return
	}
	entries[name] = style
}

// Load merges all entries from the given data into this theme.
func (t *Theme) Load(data map[State]map[string]backend.Style) {
	for state, entries := range data {
		for name, style := range entries {
			t.Edit(state, name, style)
		}
	}
}

// Query retrieves a style without failing on absent entries.
// Missing states or names resolve to the neutral default style.
func (t *Theme) Query(state State, name string) backend.Style {
	if entries, ok := t.data[state]; ok {
		if style, ok := entries[name]; ok {
			return style
		}
	}
	return backend.DefaultStyle()
}

// Default returns a theme suitable for monochrome terminals: focus is
// indicated with reverse video, disabled entries render dim.
func Default() *Theme {
	t := New()
	base := backend.DefaultStyle()
	for _, name := range []string{"text", "label", "border", "status"} {
		t.Edit(StateDefault, name, base)
		t.Edit(StateFocused, name, base.Bold(true))
		t.Edit(StateDisabled, name, base.Dim(true))
	}
	t.Edit(StateFocused, "border", base.Reverse(true))
	t.Edit(StateFocused, "cursor", base.Reverse(true))
	t.Edit(StateDefault, "inactive", base.Dim(true))
	t.Edit(StateFocused, "inactive", base.Dim(true))
	t.Edit(StateDefault, "highlight", base.Reverse(true))
	t.Edit(StateFocused, "highlight", base.Reverse(true))
	t.Edit(StateDefault, "success", base.Foreground(backend.ColorGreen))
	t.Edit(StateDefault, "error", base.Foreground(backend.ColorRed))
	t.Edit(StateFocused, "success", base.Foreground(backend.ColorGreen))
	t.Edit(StateFocused, "error", base.Foreground(backend.ColorRed))
	return t
}
