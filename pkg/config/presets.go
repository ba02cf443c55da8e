package config

import (
	"slices"

	"github.com/matzehuels/cardgen/pkg/errors"
	"github.com/matzehuels/cardgen/pkg/random"
	"github.com/matzehuels/cardgen/pkg/shape"
)

// Built-in preset names.
const (
	PresetRandom   = "random"
	PresetMatrix   = "matrix"
	PresetThinkPad = "thinkpad"
)

// BuiltinNames lists the built-in presets in generation order.
var BuiltinNames = []string{PresetRandom, PresetMatrix, PresetThinkPad}

// Matrix is a huge, sparse card: small green rectangles on black.
func Matrix() CanvasConfig {
	c := New(PresetMatrix, 2000, 10000)
	c.Title = "Matrix"
	c.Background = "black"
	c.ShapeCount = 1000
	return c.
		OnlyKind(shape.Rectangle).
		WithSize(shape.Rectangle, SizeSmall).
		WithChannel(Red, 0).
		WithChannel(Green, 3).
		WithChannel(Blue, 0)
}

// ThinkPad is a wallpaper-sized card: red shapes on black.
func ThinkPad() CanvasConfig {
	c := New(PresetThinkPad, 1900, 1170)
	c.Title = "ThinkPad"
	c.Background = "black"
	c.ShapeCount = 300
	return c.
		WithChannel(Red, 3).
		WithChannel(Green, 0).
		WithChannel(Blue, 0)
}

// Random draws a fully randomized card from src: canvas size and background,
// kind selection, size classes, channel levels, opacity and shape count.
// The same seed always yields the same configuration.
func Random(src *random.Source) (CanvasConfig, error) {
	w, err := src.Int(random.Range{Min: 100, Max: 1440})
	if err != nil {
		return CanvasConfig{}, err
	}
	h, err := src.Int(random.Range{Min: 100, Max: 900})
	if err != nil {
		return CanvasConfig{}, err
	}
	bg, err := random.Pick(src, []string{"black", "white"})
	if err != nil {
		return CanvasConfig{}, err
	}

	c := New(PresetRandom, w, h)
	c.Title = "Random"
	c.Background = bg

	kind, err := random.Pick(src, shape.Kinds)
	if err != nil {
		return CanvasConfig{}, err
	}
	only, err := src.Int(random.Range{Min: 0, Max: 1})
	if err != nil {
		return CanvasConfig{}, err
	}
	if only == 1 {
		c = c.OnlyKind(kind)
	} else {
		c = c.ExcludeKind(kind)
	}

	n, err := src.Int(random.Range{Min: 1, Max: len(shape.Kinds)})
	if err != nil {
		return CanvasConfig{}, err
	}
	kinds, err := random.Sample(src, shape.Kinds, n)
	if err != nil {
		return CanvasConfig{}, err
	}
	for _, k := range kinds {
		s, err := random.Pick(src, Sizes)
		if err != nil {
			return CanvasConfig{}, err
		}
		c = c.WithSize(k, s)
	}

	if n, err = src.Int(random.Range{Min: 1, Max: len(Channels)}); err != nil {
		return CanvasConfig{}, err
	}
	channels, err := random.Sample(src, Channels, n)
	if err != nil {
		return CanvasConfig{}, err
	}
	for _, ch := range channels {
		lvl, err := src.Int(random.Range{Min: 0, Max: int(MaxChannelLevel)})
		if err != nil {
			return CanvasConfig{}, err
		}
		c = c.WithChannel(ch, Level(lvl))
	}

	// One level past the last leaves the full opacity range in place.
	lvl, err := src.Int(random.Range{Min: 0, Max: int(MaxOpacityLevel) + 1})
	if err != nil {
		return CanvasConfig{}, err
	}
	c = c.WithOpacity(Level(lvl))

	if c.ShapeCount, err = src.Int(random.Range{Min: 1, Max: 1000}); err != nil {
		return CanvasConfig{}, err
	}
	return c, nil
}

// Catalog resolves preset names to configurations: the built-ins plus any
// presets loaded from files. A loaded preset with a built-in name replaces it.
type Catalog struct {
	extra map[string]CanvasConfig
	order []string
}

// NewCatalog builds a catalog. Every extra preset is validated.
func NewCatalog(extra ...CanvasConfig) (*Catalog, error) {
	c := &Catalog{extra: make(map[string]CanvasConfig, len(extra))}
	for _, cfg := range extra {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.extra[cfg.Name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidPreset, "duplicate preset %q", cfg.Name)
		}
		c.extra[cfg.Name] = cfg
		if !isBuiltin(cfg.Name) {
			c.order = append(c.order, cfg.Name)
		}
	}
	return c, nil
}

// Names returns every preset name: built-ins first, then loaded presets in
// file order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(BuiltinNames)+len(c.order))
	names = append(names, BuiltinNames...)
	return append(names, c.order...)
}

// Lookup returns the configuration for name. src is only consumed by the
// random preset.
func (c *Catalog) Lookup(name string, src *random.Source) (CanvasConfig, error) {
	if cfg, ok := c.extra[name]; ok {
		return cfg, nil
	}
	switch name {
	case PresetRandom:
		return Random(src)
	case PresetMatrix:
		return Matrix(), nil
	case PresetThinkPad:
		return ThinkPad(), nil
	}
	return CanvasConfig{}, errors.New(errors.ErrCodeInvalidPreset, "unknown preset: %q", name)
}

func isBuiltin(name string) bool {
	return slices.Contains(BuiltinNames, name)
}
