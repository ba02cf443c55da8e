package shape

import (
	"fmt"
	"strings"

	"github.com/matzehuels/cardgen/pkg/errors"
	"github.com/matzehuels/cardgen/pkg/palette"
)

// Kind identifies one of the three drawable shape variants.
type Kind int

const (
	Circle Kind = iota
	Rectangle
	Ellipse
)

// Kinds lists every shape kind in tag order.
var Kinds = []Kind{Circle, Rectangle, Ellipse}

var kindNames = map[Kind]string{
	Circle:    "circle",
	Rectangle: "rectangle",
	Ellipse:   "ellipse",
}

var kindAliases = map[string]Kind{
	"circle":    Circle,
	"c":         Circle,
	"rectangle": Rectangle,
	"rect":      Rectangle,
	"r":         Rectangle,
	"ellipse":   Ellipse,
	"e":         Ellipse,
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind parses a kind name or its one-letter alias (c, r, e).
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown shape kind: %q (must be circle, rectangle or ellipse)", s)
}

// Params is the full parameter record of one generated shape.
//
// Every size field is sampled for every shape; the Kind decides which ones are
// drawn. Circles use Radius, rectangles Width and Height, ellipses RX and RY.
type Params struct {
	Kind          Kind
	X, Y          int
	Radius        int
	Width, Height int
	RX, RY        int
	Fill          palette.RGB
	Opacity       float64
}

// Validate checks that p carries the fields its kind needs.
func (p Params) Validate() error {
	if !p.Kind.Valid() {
		return errors.New(errors.ErrCodeInvalidShapeParameters, "unknown shape kind %d", int(p.Kind))
	}
	if !(p.Opacity >= 0 && p.Opacity <= 1) {
		return errors.New(errors.ErrCodeInvalidShapeParameters, "%s: opacity %v outside [0, 1]", p.Kind, p.Opacity)
	}
	switch p.Kind {
	case Circle:
		// r=0 is a legal, invisible circle.
		if p.Radius < 0 {
			return errors.New(errors.ErrCodeInvalidShapeParameters, "circle: negative radius %d", p.Radius)
		}
	case Rectangle:
		if p.Width <= 0 || p.Height <= 0 {
			return errors.New(errors.ErrCodeInvalidShapeParameters, "rectangle: width and height required, got %dx%d", p.Width, p.Height)
		}
	case Ellipse:
		if p.RX <= 0 || p.RY <= 0 {
			return errors.New(errors.ErrCodeInvalidShapeParameters, "ellipse: rx and ry required, got %d/%d", p.RX, p.RY)
		}
	}
	return nil
}
