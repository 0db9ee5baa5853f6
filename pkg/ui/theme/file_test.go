package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedackb/ui-framework/pkg/ui/backend"
)

const sampleTheme = `
default:
  text: {fg: white, bg: black}
  border: {fg: "#ffb74d"}
focused:
  border: {fg: yellow, attrs: [bold, underline]}
`

func TestParse(t *testing.T) {
	th, err := Parse([]byte(sampleTheme))
	require.NoError(t, err)

	t.Run("named colors", func(t *testing.T) {
		fg, bg, _ := th.Query(StateDefault, "text").Decompose()
		assert.Equal(t, backend.ColorWhite, fg)
		assert.Equal(t, backend.ColorBlack, bg)
	})

	t.Run("hex colors", func(t *testing.T) {
		fg, _, _ := th.Query(StateDefault, "border").Decompose()
		assert.Equal(t, backend.ColorRGB(0xff, 0xb7, 0x4d), fg)
	})

	t.Run("attrs", func(t *testing.T) {
		_, _, attrs := th.Query(StateFocused, "border").Decompose()
		assert.NotZero(t, attrs&backend.AttrBold)
		assert.NotZero(t, attrs&backend.AttrUnderline)
	})

	t.Run("absent entries stay total", func(t *testing.T) {
		assert.Equal(t, backend.DefaultStyle(), th.Query(StateFocused, "text"))
	})
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "default: ["},
		{"unknown color", "default:\n  text: {fg: chartreuse}"},
		{"bad hex", "default:\n  text: {fg: \"#zzzzzz\"}"},
		{"unknown attr", "default:\n  text: {attrs: [sparkle]}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTheme), 0o644))

	th, err := LoadFile(path)
	require.NoError(t, err)
	fg, _, _ := th.Query(StateDefault, "text").Decompose()
	assert.Equal(t, backend.ColorWhite, fg)

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
