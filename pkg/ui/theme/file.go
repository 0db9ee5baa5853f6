package theme

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fedackb/ui-framework/pkg/ui/backend"
)

// fileEntry is the YAML shape of a single theme item.
type fileEntry struct {
	FG    string   `yaml:"fg"`
	BG    string   `yaml:"bg"`
	Attrs []string `yaml:"attrs"`
}

// fileTheme is the YAML shape of a theme document:
//
//	focused:
//	  border: {fg: "#ffb74d", attrs: [bold]}
//	  text:   {fg: white, bg: black}
type fileTheme map[string]map[string]fileEntry

var namedColors = map[string]backend.Color{
	"black":   backend.ColorBlack,
	"red":     backend.ColorRed,
	"green":   backend.ColorGreen,
	"yellow":  backend.ColorYellow,
	"blue":    backend.ColorBlue,
	"magenta": backend.ColorMagenta,
	"cyan":    backend.ColorCyan,
	"white":   backend.ColorWhite,
}

var namedAttrs = map[string]backend.AttrMask{
	"bold":      backend.AttrBold,
	"blink":     backend.AttrBlink,
	"reverse":   backend.AttrReverse,
	"underline": backend.AttrUnderline,
	"dim":       backend.AttrDim,
	"italic":    backend.AttrItalic,
}

// Parse decodes a YAML theme document and merges it into a new theme.
func Parse(data []byte) (*Theme, error) {
	var doc fileTheme
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}

	t := New()
	for state, entries := range doc {
		for name, entry := range entries {
			style, err := entry.style()
			if err != nil {
				return nil, fmt.Errorf("theme entry %s.%s: %w", state, name, err)
			}
			t.Edit(State(state), name, style)
		}
	}
	return t, nil
}

// LoadFile reads and parses a YAML theme file.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme file: %w", err)
	}
	return Parse(data)
}

func (e fileEntry) style() (backend.Style, error) {
	style := backend.DefaultStyle()

	if e.FG != "" {
		c, err := parseColor(e.FG)
		if err != nil {
			return style, err
		}
		style = style.Foreground(c)
	}
	if e.BG != "" {
		c, err := parseColor(e.BG)
		if err != nil {
			return style, err
		}
		style = style.Background(c)
	}
	for _, attr := range e.Attrs {
		mask, ok := namedAttrs[strings.ToLower(attr)]
		if !ok {
			return style, fmt.Errorf("unknown attribute %q", attr)
		}
		_, _, attrs := style.Decompose()
		style = style.Attrs(attrs | mask)
	}
	return style, nil
}

func parseColor(s string) (backend.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("bad hex color %q", s)
		}
		return backend.ColorRGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	return 0, fmt.Errorf("unknown color %q", s)
}
