// Package generator draws random shapes from a card configuration.
//
// [Shape] samples a [shape.Params] record: the kind is picked uniformly from
// the configured kinds and every other field is drawn from its configured
// range. [Markup] additionally renders the record through [shape.Render].
//
//	src := random.New(42)
//	cfg := config.ThinkPad()
//	markup, params, err := generator.Markup(src, cfg)
package generator

import (
	"github.com/matzehuels/cardgen/pkg/config"
	"github.com/matzehuels/cardgen/pkg/random"
	"github.com/matzehuels/cardgen/pkg/shape"
)

// Shape samples one shape from cfg.
//
// All size fields are sampled whatever the kind, in a fixed order, so a seed
// produces the same sequence of records regardless of which kinds are drawn.
func Shape(src *random.Source, cfg config.CanvasConfig) (shape.Params, error) {
	var (
		p   shape.Params
		err error
	)

	if p.Kind, err = random.Pick(src, cfg.Kinds); err != nil {
		return p, err
	}

	ints := []struct {
		dst *int
		r   random.Range
	}{
		{&p.Radius, cfg.RadiusRange},
		{&p.Width, cfg.SideRange},
		{&p.Height, cfg.SideRange},
		{&p.RX, cfg.RadiiRange},
		{&p.RY, cfg.RadiiRange},
		{&p.X, cfg.XRange()},
		{&p.Y, cfg.YRange()},
	}
	for _, f := range ints {
		if *f.dst, err = src.Int(f.r); err != nil {
			return p, err
		}
	}

	if p.Fill, err = src.Color(cfg.Color); err != nil {
		return p, err
	}
	if p.Opacity, err = src.Float(cfg.OpacityRange, cfg.OpacityDecimals); err != nil {
		return p, err
	}
	return p, nil
}

// Markup samples one shape from cfg and renders it.
func Markup(src *random.Source, cfg config.CanvasConfig, opts ...shape.RenderOption) (string, shape.Params, error) {
	p, err := Shape(src, cfg)
	if err != nil {
		return "", p, err
	}
	markup, err := shape.Render(p, opts...)
	if err != nil {
		return "", p, err
	}
	return markup, p, nil
}
