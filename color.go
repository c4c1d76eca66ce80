package petrel

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault is the terminal's default color (no color set).
	ColorDefault ColorType = iota
	// ColorANSI is an ANSI 256-palette color (0-255).
	ColorANSI
	// ColorRGB is a 24-bit true color.
	ColorRGB
)

// Color is a terminal color: default, ANSI 256 palette, or true color.
// The zero value is the terminal default.
type Color struct {
	typ ColorType
	// For ANSI, r holds the palette index; for RGB, r/g/b hold components.
	r, g, b uint8
}

// DefaultColor returns the terminal's default color.
func DefaultColor() Color {
	return Color{typ: ColorDefault}
}

// ANSIColor returns a color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// Hex parses "#RRGGBB" or "#RGB" into an RGB color.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(normalizeHex(s))
	if err != nil {
		return Color{}, fmt.Errorf("petrel: invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// normalizeHex expands "#RGB" to "#RRGGBB" and ensures a leading '#',
// since colorful.Hex only accepts the long form.
func normalizeHex(s string) string {
	if len(s) > 0 && s[0] != '#' {
		s = "#" + s
	}
	if len(s) == 4 {
		return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	return s
}

// Named basic colors (ANSI palette indexes 0-15).
var (
	Black   = ANSIColor(0)
	Red     = ANSIColor(1)
	Green   = ANSIColor(2)
	Yellow  = ANSIColor(3)
	Blue    = ANSIColor(4)
	Magenta = ANSIColor(5)
	Cyan    = ANSIColor(6)
	White   = ANSIColor(7)

	Gray          = ANSIColor(8)
	BrightRed     = ANSIColor(9)
	BrightGreen   = ANSIColor(10)
	BrightYellow  = ANSIColor(11)
	BrightBlue    = ANSIColor(12)
	BrightMagenta = ANSIColor(13)
	BrightCyan    = ANSIColor(14)
	BrightWhite   = ANSIColor(15)
)

// Type returns the color's representation.
func (c Color) Type() ColorType { return c.typ }

// IsDefault reports whether this is the terminal default color.
func (c Color) IsDefault() bool { return c.typ == ColorDefault }

// ANSI returns the palette index. Panics if the color is not ANSI.
func (c Color) ANSI() uint8 {
	if c.typ != ColorANSI {
		panic(errors.New("petrel: ANSI() on non-ANSI color"))
	}
	return c.r
}

// RGB255 returns the red, green, and blue components.
// Panics if the color is not RGB.
func (c Color) RGB255() (r, g, b uint8) {
	if c.typ != ColorRGB {
		panic(errors.New("petrel: RGB255() on non-RGB color"))
	}
	return c.r, c.g, c.b
}

// Equal reports whether both colors are identical.
func (c Color) Equal(other Color) bool {
	return c == other
}

// Blend mixes c toward other by t in [0, 1] through a perceptual color
// space and returns the result as an RGB color. Default colors cannot be
// blended and are returned unchanged.
func (c Color) Blend(other Color, t float64) Color {
	if c.IsDefault() || other.IsDefault() {
		return c
	}
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	mixed := c.colorful().BlendLuv(other.colorful(), t).Clamped()
	r, g, b := mixed.RGB255()
	return RGB(r, g, b)
}

// Quantize256 maps the color onto the ANSI 256 palette, choosing the
// perceptually nearest entry. ANSI and default colors pass through.
func (c Color) Quantize256() Color {
	if c.typ != ColorRGB {
		return c
	}
	target := c.colorful()
	best := 0
	bestDist := -1.0
	// Skip the 16 base entries; their RGB values vary between terminals.
	for i := 16; i < 256; i++ {
		d := target.DistanceLuv(palette256(uint8(i)))
		if bestDist < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return ANSIColor(uint8(best))
}

// colorful converts to a colorful.Color for blending and distance math.
func (c Color) colorful() colorful.Color {
	var r, g, b uint8
	switch c.typ {
	case ColorRGB:
		r, g, b = c.r, c.g, c.b
	case ColorANSI:
		return palette256(c.r)
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// palette256 returns the canonical RGB value of an ANSI 256 palette entry.
func palette256(index uint8) colorful.Color {
	var r, g, b uint8
	switch {
	case index < 16:
		// Standard colors; canonical xterm values.
		base := [16][3]uint8{
			{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
			{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
			{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
			{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
		}
		r, g, b = base[index][0], base[index][1], base[index][2]
	case index < 232:
		// 6x6x6 color cube.
		n := index - 16
		steps := [6]uint8{0, 95, 135, 175, 215, 255}
		r = steps[n/36]
		g = steps[(n/6)%6]
		b = steps[n%6]
	default:
		// Grayscale ramp.
		v := 8 + 10*(index-232)
		r, g, b = v, v, v
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
