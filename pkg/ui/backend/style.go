package backend

// Color represents a terminal color.
// Values 0-255 are palette colors, values with the RGB bit set are true
// colors.
type Color int32

// Color constants
const (
	ColorDefault Color = -1
	ColorBlack   Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7

	// Bright variants
	ColorBrightBlack   Color = 8
	ColorBrightRed     Color = 9
	ColorBrightGreen   Color = 10
	ColorBrightYellow  Color = 11
	ColorBrightBlue    Color = 12
	ColorBrightMagenta Color = 13
	ColorBrightCyan    Color = 14
	ColorBrightWhite   Color = 15
)

// ColorRGB creates a true color from RGB components.
func ColorRGB(r, g, b uint8) Color {
	return Color(int32(r)<<16 | int32(g)<<8 | int32(b) | 0x01000000)
}

// IsRGB returns true if this is a true color (not palette).
func (c Color) IsRGB() bool {
	return c > 0 && c&0x01000000 != 0
}

// RGB returns the red, green, blue components of an RGB color.
// Returns 0, 0, 0 for non-RGB colors.
func (c Color) RGB() (r, g, b uint8) {
	if !c.IsRGB() {
		return 0, 0, 0
	}
	return uint8((c >> 16) & 0xFF), uint8((c >> 8) & 0xFF), uint8(c & 0xFF)
}

// AttrMask represents text attributes.
type AttrMask uint32

// Attribute flags
const (
	AttrBold AttrMask = 1 << iota
	AttrBlink
	AttrReverse
	AttrUnderline
	AttrDim
	AttrItalic
)

// Style combines foreground, background colors and attributes.
type Style struct {
	fg    Color
	bg    Color
	attrs AttrMask
}

// DefaultStyle returns the default style (default colors, no attributes).
func DefaultStyle() Style {
	return Style{fg: ColorDefault, bg: ColorDefault}
}

// NewStyle builds a style from explicit components.
func NewStyle(fg, bg Color, attrs AttrMask) Style {
	return Style{fg: fg, bg: bg, attrs: attrs}
}

// Decompose returns the style's components.
func (s Style) Decompose() (fg, bg Color, attrs AttrMask) {
	return s.fg, s.bg, s.attrs
}

// Foreground sets the foreground color.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background sets the background color.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

// Attrs replaces the attribute mask.
func (s Style) Attrs(m AttrMask) Style {
	s.attrs = m
	return s
}

// Bold enables or disables bold.
func (s Style) Bold(on bool) Style {
	return s.flag(AttrBold, on)
}

// Blink enables or disables blink.
func (s Style) Blink(on bool) Style {
	return s.flag(AttrBlink, on)
}

// Reverse enables or disables reverse video.
func (s Style) Reverse(on bool) Style {
	return s.flag(AttrReverse, on)
}

// Underline enables or disables underline.
func (s Style) Underline(on bool) Style {
	return s.flag(AttrUnderline, on)
}

// Dim enables or disables dim.
func (s Style) Dim(on bool) Style {
	return s.flag(AttrDim, on)
}

// Italic enables or disables italic.
func (s Style) Italic(on bool) Style {
	return s.flag(AttrItalic, on)
}

func (s Style) flag(m AttrMask, on bool) Style {
	if on {
		s.attrs |= m
	} else {
		s.attrs &^= m
	}
	return s
}
