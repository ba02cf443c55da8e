package config

import (
	"github.com/matzehuels/cardgen/pkg/random"
	"github.com/matzehuels/cardgen/pkg/shape"
)

// Size is a coarse size class for a shape kind.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

// Sizes lists every size class.
var Sizes = []Size{SizeSmall, SizeMedium, SizeLarge}

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "s"
	case SizeMedium:
		return "m"
	case SizeLarge:
		return "l"
	}
	return "?"
}

var sizeRanges = map[shape.Kind][3]random.Range{
	shape.Circle:    {{Min: 0, Max: 33}, {Min: 33, Max: 66}, {Min: 66, Max: 100}},
	shape.Rectangle: {{Min: 10, Max: 40}, {Min: 40, Max: 70}, {Min: 70, Max: 100}},
	shape.Ellipse:   {{Min: 10, Max: 17}, {Min: 17, Max: 24}, {Min: 24, Max: 30}},
}

// Channel names one color channel.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// Channels lists every channel.
var Channels = []Channel{Red, Green, Blue}

func (ch Channel) String() string {
	switch ch {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "?"
}

// Level is an intensity class: 0 none, 1 low, 2 medium, 3 high, 4 max.
type Level int

// MaxChannelLevel is the highest channel level.
const MaxChannelLevel Level = 4

var channelLevels = [...]random.Range{
	{Min: 0, Max: 0},
	{Min: 0, Max: 85},
	{Min: 85, Max: 170},
	{Min: 170, Max: 255},
	{Min: 255, Max: 255},
}

// MaxOpacityLevel is the highest opacity level.
const MaxOpacityLevel Level = 3

var opacityLevels = [...]random.FloatRange{
	{Min: 0, Max: 0.33},
	{Min: 0.33, Max: 0.66},
	{Min: 0.66, Max: 1},
	{Min: 1, Max: 1},
}

// OnlyKind returns a copy of c that draws nothing but k.
func (c CanvasConfig) OnlyKind(k shape.Kind) CanvasConfig {
	c.Kinds = []shape.Kind{k}
	return c
}

// ExcludeKind returns a copy of c that draws every kind except k.
func (c CanvasConfig) ExcludeKind(k shape.Kind) CanvasConfig {
	kinds := make([]shape.Kind, 0, len(shape.Kinds))
	for _, other := range shape.Kinds {
		if other != k {
			kinds = append(kinds, other)
		}
	}
	c.Kinds = kinds
	return c
}

// WithSize returns a copy of c with the size range of kind k set to class s.
// Unknown kinds or sizes leave c unchanged.
func (c CanvasConfig) WithSize(k shape.Kind, s Size) CanvasConfig {
	ranges, ok := sizeRanges[k]
	if !ok || s < SizeSmall || s > SizeLarge {
		return c
	}
	switch k {
	case shape.Circle:
		c.RadiusRange = ranges[s]
	case shape.Rectangle:
		c.SideRange = ranges[s]
	case shape.Ellipse:
		c.RadiiRange = ranges[s]
	}
	return c
}

// WithChannel returns a copy of c with channel ch restricted to level lvl.
// It clears any fixed color. Levels outside 0..4 leave c unchanged.
func (c CanvasConfig) WithChannel(ch Channel, lvl Level) CanvasConfig {
	if lvl < 0 || lvl > MaxChannelLevel {
		return c
	}
	r := channelLevels[lvl]
	c.Color.Fixed = nil
	switch ch {
	case Red:
		c.Color.Red = r
	case Green:
		c.Color.Green = r
	case Blue:
		c.Color.Blue = r
	}
	return c
}

// WithOpacity returns a copy of c with opacity restricted to level lvl
// (0 low, 1 medium, 2 high, 3 opaque). Levels outside 0..3 leave c unchanged.
func (c CanvasConfig) WithOpacity(lvl Level) CanvasConfig {
	if lvl < 0 || lvl > MaxOpacityLevel {
		return c
	}
	c.OpacityRange = opacityLevels[lvl]
	return c
}
