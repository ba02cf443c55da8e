package config

import (
	"slices"

	"github.com/matzehuels/cardgen/pkg/errors"
	"github.com/matzehuels/cardgen/pkg/random"
	"github.com/matzehuels/cardgen/pkg/shape"
)

// DefaultOpacityDecimals is the precision generated opacities are rounded to.
const DefaultOpacityDecimals = 1

// Limits enforced by Validate.
const (
	// MaxShapeCount bounds the number of shapes on one card.
	MaxShapeCount = 100_000

	// MaxCanvasSize bounds canvas width and height in pixels.
	MaxCanvasSize = 100_000

	// MaxShapeSize bounds the radius, side and radii ranges.
	MaxShapeSize = 100_000

	// MaxOpacityDecimals is the finest opacity precision; -1 disables rounding.
	MaxOpacityDecimals = 15
)

// CanvasConfig describes one card: the canvas and the ranges every shape on it
// is drawn from. Values are treated as read-only once built; the With* methods
// return modified copies.
type CanvasConfig struct {
	Name       string // preset name, also the default file stem
	Title      string // HTML document title
	Filename   string // output filename (no directories)
	Width      int    // canvas width in pixels
	Height     int    // canvas height in pixels
	Background string // CSS color of the canvas background
	ShapeCount int    // number of shapes drawn

	Kinds       []shape.Kind // kinds to choose from, uniformly
	RadiusRange random.Range // circle radius
	SideRange   random.Range // rectangle width and height
	RadiiRange  random.Range // ellipse rx and ry

	Color           random.ColorConstraint
	OpacityRange    random.FloatRange
	OpacityDecimals int
}

// New returns a configuration with the full default ranges: every kind, every
// color and every opacity.
func New(name string, width, height int) CanvasConfig {
	return CanvasConfig{
		Name:            name,
		Title:           name,
		Filename:        name + ".html",
		Width:           width,
		Height:          height,
		Background:      "white",
		Kinds:           slices.Clone(shape.Kinds),
		RadiusRange:     random.Range{Min: 0, Max: 100},
		SideRange:       random.Range{Min: 10, Max: 100},
		RadiiRange:      random.Range{Min: 10, Max: 30},
		Color:           random.FullColor,
		OpacityRange:    random.FloatRange{Min: 0, Max: 1},
		OpacityDecimals: DefaultOpacityDecimals,
	}
}

// XRange is the range of horizontal shape positions.
func (c CanvasConfig) XRange() random.Range { return random.Range{Min: 0, Max: c.Width} }

// YRange is the range of vertical shape positions.
func (c CanvasConfig) YRange() random.Range { return random.Range{Min: 0, Max: c.Height} }

// Validate checks that every shape drawn from c would be valid.
func (c CanvasConfig) Validate() error {
	if err := errors.ValidatePresetName(c.Name); err != nil {
		return err
	}
	if err := errors.ValidateFilename(c.Filename); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "%s: canvas must be positive, got %dx%d", c.Name, c.Width, c.Height)
	}
	if c.Width > MaxCanvasSize || c.Height > MaxCanvasSize {
		return errors.New(errors.ErrCodeInvalidConfig, "%s: canvas %dx%d exceeds %d pixels", c.Name, c.Width, c.Height, MaxCanvasSize)
	}
	if c.ShapeCount < 0 || c.ShapeCount > MaxShapeCount {
		return errors.New(errors.ErrCodeInvalidConfig, "%s: shape count %d outside [0, %d]", c.Name, c.ShapeCount, MaxShapeCount)
	}
	if len(c.Kinds) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "%s: no shape kinds", c.Name)
	}
	for _, k := range c.Kinds {
		if !k.Valid() {
			return errors.New(errors.ErrCodeInvalidConfig, "%s: unknown shape kind %d", c.Name, int(k))
		}
	}

	ranges := []struct {
		name string
		r    random.Range
		min  int
	}{
		{"radius", c.RadiusRange, 0},
		{"side", c.SideRange, 1},
		{"radii", c.RadiiRange, 1},
	}
	for _, rr := range ranges {
		if err := rr.r.Validate(c.Name + ": " + rr.name); err != nil {
			return err
		}
		if rr.r.Min < rr.min {
			return errors.New(errors.ErrCodeInvalidRange, "%s: %s must start at %d or more, got %d", c.Name, rr.name, rr.min, rr.r.Min)
		}
		if rr.r.Max > MaxShapeSize {
			return errors.New(errors.ErrCodeInvalidRange, "%s: %s must end at %d or less, got %d", c.Name, rr.name, MaxShapeSize, rr.r.Max)
		}
	}

	if err := c.Color.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRange, err, "%s: color", c.Name)
	}
	if err := c.OpacityRange.Validate(c.Name + ": opacity"); err != nil {
		return err
	}
	if c.OpacityRange.Min < 0 || c.OpacityRange.Max > 1 {
		return errors.New(errors.ErrCodeInvalidRange, "%s: opacity [%v, %v] outside [0, 1]", c.Name, c.OpacityRange.Min, c.OpacityRange.Max)
	}
	if c.OpacityDecimals < -1 || c.OpacityDecimals > MaxOpacityDecimals {
		return errors.New(errors.ErrCodeInvalidConfig, "%s: opacity decimals %d outside [-1, %d]", c.Name, c.OpacityDecimals, MaxOpacityDecimals)
	}
	return nil
}

// WithShapeCount returns a copy of c drawing n shapes.
func (c CanvasConfig) WithShapeCount(n int) CanvasConfig {
	c.ShapeCount = n
	return c
}

// WithBackground returns a copy of c with the given canvas background.
func (c CanvasConfig) WithBackground(color string) CanvasConfig {
	c.Background = color
	return c
}
