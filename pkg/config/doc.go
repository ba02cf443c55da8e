// Package config defines card configurations and the built-in presets.
//
// # Overview
//
// A [CanvasConfig] fixes the canvas of a card (size, background, title and
// output filename) and the ranges every shape is drawn from: which kinds,
// how large, which colors and how opaque.
//
// # Presets
//
// Three presets are built in:
//
//   - random: canvas size, background, kinds, sizes, colors, opacity and
//     shape count are all drawn from a [random.Source]
//   - matrix: 2000×10000 black canvas with 1000 small green rectangles
//   - thinkpad: 1900×1170 black canvas with 300 red shapes
//
// A [Catalog] resolves names to configurations and can be extended with
// presets loaded from a TOML file via [LoadFile]:
//
//	[[preset]]
//	name = "ocean"
//	width = 800
//	height = 600
//	background = "#001133"
//	shapes = 200
//	kinds = ["circle", "ellipse"]
//	radius = [10, 60]
//	red = [0, 0]
//	green = [0, 85]
//	blue = [170, 255]
//	opacity = [0.3, 0.8]
//
// A `fill = "#rrggbb"` key fixes the color of every shape instead.
//
// # Adjusters
//
// Configurations are tuned with coarse classes rather than raw numbers:
// [CanvasConfig.WithSize] (small, medium, large per kind),
// [CanvasConfig.WithChannel] (levels 0..4 per color channel),
// [CanvasConfig.WithOpacity] (levels 0..3) and
// [CanvasConfig.OnlyKind] / [CanvasConfig.ExcludeKind].
//
// [random.Source]: github.com/matzehuels/cardgen/pkg/random
package config
