// Package pipeline provides the card generation run for cardgen.
//
// This package implements the complete configure → draw → assemble → wrap
// pipeline used by both the CLI and the preview server. Centralizing it keeps
// every entry point producing byte-identical cards for the same preset and
// seed.
//
// # Architecture
//
// One card goes through three stages:
//
//  1. Draw: sample ShapeCount shapes from the card configuration
//  2. Assemble: append the rendered shapes to an SVG canvas in drawing order
//  3. Wrap: embed the canvas in a minimal HTML document
//
// # Usage
//
// Create a Runner and generate a card:
//
//	runner := pipeline.NewRunner(logger)
//	src := random.New(42)
//	card, err := runner.Generate(ctx, config.ThinkPad(), src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := runner.WriteCard(ctx, card, ".")
//
// Several cards can be generated concurrently with [Runner.GenerateAll]; each
// [Job] owns its random source, so results do not depend on scheduling.
package pipeline

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/cardgen/pkg/config"
	"github.com/matzehuels/cardgen/pkg/random"
	"github.com/matzehuels/cardgen/pkg/shape"
)

// cancelCheckInterval is the number of shapes drawn between context checks.
const cancelCheckInterval = 256

// cardNamespace scopes card ids. Ids are name-based (uuid v5) so that the same
// preset and seed always map to the same id.
var cardNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/cardgen/cards"))

// =============================================================================
// Options
// =============================================================================

// Option configures a single Generate call.
type Option func(*options)

type options struct {
	records bool
	hex     bool
}

// WithRecords keeps the parameter record of every drawn shape on the card.
func WithRecords() Option { return func(o *options) { o.records = true } }

// WithHexColor renders fills as "#rrggbb" instead of "rgb(r, g, b)".
func WithHexColor() Option { return func(o *options) { o.hex = true } }

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) renderOptions() []shape.RenderOption {
	if o.hex {
		return []shape.RenderOption{shape.WithHexColor()}
	}
	return nil
}

// =============================================================================
// Results
// =============================================================================

// Card is one generated HTML document.
type Card struct {
	Name     string // preset name
	Title    string // document title
	Filename string // output filename, no directories
	ID       string // uuid v5 of name and seed
	Seed     uint64 // seed of the source the card was drawn from

	Width  int
	Height int

	// HTML is the complete document.
	HTML string

	// ShapeCount is the number of shapes drawn.
	ShapeCount int

	// Records holds one entry per drawn shape in drawing order.
	// It is nil unless WithRecords was given.
	Records []shape.Params

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains card generation statistics.
type Stats struct {
	Circles    int
	Rectangles int
	Ellipses   int
	Bytes      int
	Duration   time.Duration
}

// Count returns the number of drawn shapes of kind k.
func (s Stats) Count(k shape.Kind) int {
	switch k {
	case shape.Circle:
		return s.Circles
	case shape.Rectangle:
		return s.Rectangles
	case shape.Ellipse:
		return s.Ellipses
	}
	return 0
}

func (s *Stats) add(k shape.Kind) {
	switch k {
	case shape.Circle:
		s.Circles++
	case shape.Rectangle:
		s.Rectangles++
	case shape.Ellipse:
		s.Ellipses++
	}
}

// Job pairs a card configuration with the source it is drawn from.
type Job struct {
	Config config.CanvasConfig
	Source *random.Source
}

// CardID returns the id of the card drawn for preset name from seed.
func CardID(name string, seed uint64) string {
	return uuid.NewSHA1(cardNamespace, []byte(name+":"+strconv.FormatUint(seed, 10))).String()
}

// RecordsID returns the id of a card redrawn from records. Equal records give
// equal ids.
func RecordsID(name string, records []shape.Params) string {
	return uuid.NewSHA1(cardNamespace, fmt.Appendf([]byte(name+":records:"), "%v", records)).String()
}
