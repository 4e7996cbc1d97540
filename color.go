package mapstyle

import (
	"image/color"
	"strconv"
	"strings"
)

// Color represents a paint color with red, green, blue, and alpha
// components. Each component is in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

// Predefined colors.
var (
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Transparent = Color{0, 0, 0, 0}
)

// Color converts Color to the standard color.Color interface.
func (c Color) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// RGBA implements the color.Color interface directly.
// Returns alpha-premultiplied color components in the range [0, 65535].
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(clampUnit(c.A) * 65535)
	r = uint32(clampUnit(c.R) * clampUnit(c.A) * 65535)
	g = uint32(clampUnit(c.G) * clampUnit(c.A) * 65535)
	b = uint32(clampUnit(c.B) * clampUnit(c.A) * 65535)
	return
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	// Un-premultiply.
	return Color{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 65535,
	}
}

// ParseColor parses a render-theme color token. Themes use "#RRGGBB" for
// opaque colors and "#AARRGGBB" when an alpha channel is present; the '#'
// prefix is optional. Any other form is an error: theme loading must not
// silently substitute a default color.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, err
	}

	var r, g, b, a uint64
	switch len(hex) {
	case 6: // RRGGBB
		a = 0xff
		r, g, b = uint64(v>>16&0xff), uint64(v>>8&0xff), uint64(v&0xff)
	case 8: // AARRGGBB
		a = uint64(v >> 24 & 0xff)
		r, g, b = uint64(v>>16&0xff), uint64(v>>8&0xff), uint64(v&0xff)
	default:
		return Color{}, strconv.ErrSyntax
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
