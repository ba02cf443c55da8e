// Package pkg provides the core libraries for cardgen.
//
// # Overview
//
// cardgen draws random circles, rectangles and ellipses into a single SVG and
// wraps it in a static HTML page, a "card". The pkg directory is organized
// from the leaves up:
//
//  1. [random] - Seeded value source: integer and float ranges, colors
//  2. [shape] - Shape kinds, parameter records and SVG element rendering
//  3. [config] - Card configurations, built-in presets and TOML preset files
//  4. [generator] - Draws one shape record from a configuration
//  5. [canvas] - Accumulates shape elements into one SVG viewport
//  6. [document] - Wraps a viewport in an HTML page
//  7. [pipeline] - Orchestration (draw → assemble → wrap) used by CLI and server
//
// # Architecture
//
// The data flow of one card:
//
//	preset name + seed
//	         ↓
//	    [config] (resolve the card configuration)
//	         ↓
//	    [generator] + [shape] (draw and render each shape)
//	         ↓
//	    [canvas] (append in drawing order, finalize the svg element)
//	         ↓
//	    [document] (HTML page)
//	         ↓
//	    [io] (write random.html, matrix.html, thinkpad.html, ...)
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/cardgen/pkg/config"
//	    "github.com/matzehuels/cardgen/pkg/pipeline"
//	    "github.com/matzehuels/cardgen/pkg/random"
//	)
//
//	runner := pipeline.NewRunner(nil)
//	card, _ := runner.Generate(context.Background(), config.ThinkPad(), random.New(42))
//	_, _ = runner.WriteCard(context.Background(), card, ".")
//
// # Supporting Packages
//
// [palette] - RGB colors with CSS and hex forms.
//
// [errors] - Coded errors (INVALID_RANGE, INVALID_SHAPE_PARAMETERS, IO_FAILURE, ...).
//
// [io] - File output and JSON export of shape records.
//
// [report] - Shape record tables and summaries for the terminal.
//
// [cache] - Card cache for the preview server (memory, Redis).
//
// [observability] - Hooks for card and request events, with a Prometheus
// implementation in observability/metrics.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/pipeline/...           # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// [random]: https://pkg.go.dev/github.com/matzehuels/cardgen/pkg/random
// [shape]: https://pkg.go.dev/github.com/matzehuels/cardgen/pkg/shape
// [config]: https://pkg.go.dev/github.com/matzehuels/cardgen/pkg/config
// [generator]: https://pkg.go.dev/github.com/matzehuels/cardgen/pkg/generator
// [canvas]: https://pkg.go.dev/github.com/matzehuels/cardgen/pkg/canvas
// [document]: https://pkg.go.dev/github.com/matzehuels/cardgen/pkg/document
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/cardgen/pkg/pipeline
// [palette]: https://pkg.go.dev/github.com/matzehuels/cardgen/pkg/palette
// [errors]: https://pkg.go.dev/github.com/matzehuels/cardgen/pkg/errors
// [io]: https://pkg.go.dev/github.com/matzehuels/cardgen/pkg/io
// [report]: https://pkg.go.dev/github.com/matzehuels/cardgen/pkg/report
// [cache]: https://pkg.go.dev/github.com/matzehuels/cardgen/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/cardgen/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/cardgen/pkg/buildinfo
package pkg
