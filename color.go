package tally

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(math.Round(c.R * 255))),
		G: uint8(clamp255(math.Round(c.G * 255))),
		B: uint8(clamp255(math.Round(c.B * 255))),
		A: uint8(clamp255(math.Round(c.A * 255))),
	}
}

// Hex renders the color as "#rrggbb", or "#rrggbbaa" when not opaque.
func (c RGBA) Hex() string {
	n := c.Color().(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// Opacity returns the alpha component.
func (c RGBA) Opacity() float64 {
	return c.A
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Named colors accepted by ParseColor.
var namedColors = map[string]RGBA{
	"white":       White,
	"black":       Black,
	"transparent": Transparent,
}

// ParseColor parses a color string.
// Supports "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA" and the names
// "white", "black" and "transparent".
func ParseColor(s string) (RGBA, error) {
	if c, ok := namedColors[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	hex = hex[1:]

	var r, g, b, a uint32
	a = 255

	var ok bool
	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) &&
			parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) &&
			parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	}
	if !ok {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// MustParseColor is like ParseColor but panics on error.
// It is meant for package-level color constants.
func MustParseColor(s string) RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)

// ColorOther is the color of all candidates that are not named
// individually, and of the turnout wedge.
const ColorOther = "#696969"

// ColorNeutral is the background track color of result bars.
const ColorNeutral = "#EEEEEE"
