package core

import (
	"fmt"
	"image/color"
)

// Color is a packed 24-bit RGB value with a presence bit.
// The zero value is ColorDefault, meaning "use the backend's default".
type Color uint32

const colorSet Color = 1 << 24

// ColorDefault leaves the foreground unchanged.
const ColorDefault Color = 0

// Named palette used by themes and overlays.
var (
	ColorBlack   = RGB(0x00, 0x00, 0x00)
	ColorWhite   = RGB(0xff, 0xff, 0xff)
	ColorRed     = RGB(0xff, 0x00, 0x00)
	ColorGreen   = RGB(0x00, 0xff, 0x00)
	ColorYellow  = RGB(0xff, 0xff, 0x00)
	ColorCyan    = RGB(0x00, 0xff, 0xff)
	ColorMagenta = RGB(0xff, 0x00, 0xff)
	ColorOrange  = RGB(0xff, 0x66, 0x00)
	ColorPurple  = RGB(0x80, 0x00, 0x80)
	ColorBrown   = RGB(0x8b, 0x45, 0x13)
	ColorGray    = RGB(0x88, 0x88, 0x88)
)

// RGB packs three channels into a Color.
func RGB(r, g, b uint8) Color {
	return colorSet | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// ParseHex parses "#rrggbb". Malformed input yields ColorDefault.
func ParseHex(s string) Color {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return ColorDefault
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return ColorDefault
	}
	return RGB(r, g, b)
}

// IsDefault reports whether c carries no explicit color.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// Channels returns the red, green and blue components.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex formats the color as "#rrggbb" (lipgloss accepts this form).
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.Channels()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGBA converts to an opaque image/color value.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.Channels()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Fade scales the channels toward black by f in [0,1].
func (c Color) Fade(f float64) Color {
	if c.IsDefault() {
		return c
	}
	f = ClampF(f, 0, 1)
	r, g, b := c.Channels()
	return RGB(uint8(float64(r)*f), uint8(float64(g)*f), uint8(float64(b)*f))
}
