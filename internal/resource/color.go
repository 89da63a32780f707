package resource

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 32-bit ARGB value
type Color uint32

// RGBA builds an opaque-aware color from its channels
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ParseColor parses #RGB, #RRGGBB and #AARRGGBB notations
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return 0, fmt.Errorf("invalid color %q: missing '#' prefix", s)
	}

	alpha := uint8(0xff)
	rgb := s
	switch len(s) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(s[1:3], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		alpha = uint8(a)
		rgb = "#" + s[3:]
	default:
		return 0, fmt.Errorf("invalid color %q: unexpected length", s)
	}

	c, err := colorful.Hex(rgb)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGBA(r, g, b, alpha), nil
}

// MustParseColor is ParseColor for literals known to be valid
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Alpha returns the alpha channel
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// RGB returns the color channels
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Colorful converts the color, dropping alpha
func (c Color) Colorful() colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}

// Hex formats opaque colors as #rrggbb and translucent ones as #aarrggbb
func (c Color) Hex() string {
	if c.Alpha() == 0xff {
		return c.Colorful().Hex()
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x%02x", c.Alpha(), r, g, b)
}

// String implements fmt.Stringer
func (c Color) String() string {
	return c.Hex()
}
