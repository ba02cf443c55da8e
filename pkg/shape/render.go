package shape

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// RenderOption configures shape markup.
type RenderOption func(*renderer)

type renderer struct {
	hex bool
}

// WithHexColor writes fills as "#rrggbb" instead of "rgb(r, g, b)".
func WithHexColor() RenderOption { return func(r *renderer) { r.hex = true } }

func newRenderer(opts ...RenderOption) renderer {
	var r renderer
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Render returns the SVG element for p, e.g.
//
//	<circle cx="10" cy="20" r="5" fill="rgb(0, 255, 0)" fill-opacity="0.4" />
//
// Render is a pure function of its inputs. Parameters that do not suit the
// shape kind produce an INVALID_SHAPE_PARAMETERS error.
func Render(p Params, opts ...RenderOption) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	r := newRenderer(opts...)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	attrs := r.attrs(p)

	switch p.Kind {
	case Circle:
		canvas.Circle(p.X, p.Y, p.Radius, attrs...)
	case Rectangle:
		canvas.Rect(p.X, p.Y, p.Width, p.Height, attrs...)
	case Ellipse:
		canvas.Ellipse(p.X, p.Y, p.RX, p.RY, attrs...)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func (r renderer) attrs(p Params) []string {
	fill := p.Fill.CSS()
	if r.hex {
		fill = p.Fill.Hex()
	}
	return []string{
		fmt.Sprintf(`fill="%s"`, fill),
		fmt.Sprintf(`fill-opacity="%s"`, strconv.FormatFloat(p.Opacity, 'f', -1, 64)),
	}
}
