// Package palette holds the RGB fill colors used by card shapes and their
// SVG string forms.
package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/cardgen/pkg/errors"
)

// RGB is an 8-bit per channel color. Channels are always within 0..255.
type RGB struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// CSS returns the color as an SVG/CSS functional value, e.g. "rgb(0, 255, 0)".
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the color as a "#rrggbb" string.
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// ParseHex parses "#rrggbb" or "#rgb" into an RGB value.
func ParseHex(s string) (RGB, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid hex color %q", s)
	}
	r, g, b := col.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Dominant reports which channel carries the most intensity: 'r', 'g' or 'b'.
// Ties resolve in r, g, b order.
func (c RGB) Dominant() byte {
	switch {
	case c.R >= c.G && c.R >= c.B:
		return 'r'
	case c.G >= c.B:
		return 'g'
	default:
		return 'b'
	}
}
