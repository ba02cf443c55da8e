package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/cardgen/pkg/canvas"
	"github.com/matzehuels/cardgen/pkg/config"
	"github.com/matzehuels/cardgen/pkg/document"
	"github.com/matzehuels/cardgen/pkg/errors"
	"github.com/matzehuels/cardgen/pkg/generator"
	"github.com/matzehuels/cardgen/pkg/io"
	"github.com/matzehuels/cardgen/pkg/observability"
	"github.com/matzehuels/cardgen/pkg/random"
	"github.com/matzehuels/cardgen/pkg/report"
	"github.com/matzehuels/cardgen/pkg/shape"
)

// Runner encapsulates card generation.
// Both the CLI and the preview server use it.
//
// The Runner is stateless except for the logger - it doesn't store cards.
// Multiple goroutines can safely use the same Runner as long as they do not
// share a random source.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Generate draws one card from cfg using src.
//
// Shapes are drawn, rendered and appended one at a time, so the SVG lists them
// in drawing order. If src is nil a runtime-seeded source is used; its seed is
// reported on the card. Any error aborts the card: no partial card is returned.
func (r *Runner) Generate(ctx context.Context, cfg config.CanvasConfig, src *random.Source, opts ...Option) (*Card, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = random.NewUnseeded()
	}
	o := newOptions(opts)
	renderOpts := o.renderOptions()

	card := newCard(cfg, CardID(cfg.Name, src.Seed()), src.Seed())
	draw := func(int) (string, shape.Params, error) {
		return generator.Markup(src, cfg, renderOpts...)
	}
	return r.run(ctx, cfg, card, cfg.ShapeCount, draw, o,
		fmt.Sprintf("preset %s, seed %d", cfg.Name, card.Seed))
}

// Redraw builds a card from shape records exported earlier instead of drawing
// new ones. cfg supplies the canvas, title and filename; its ranges and shape
// count are ignored. The card id is derived from the records, and Seed is 0.
func (r *Runner) Redraw(ctx context.Context, cfg config.CanvasConfig, records []shape.Params, opts ...Option) (*Card, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	renderOpts := o.renderOptions()

	card := newCard(cfg, RecordsID(cfg.Name, records), 0)
	draw := func(i int) (string, shape.Params, error) {
		p := records[i]
		markup, err := shape.Render(p, renderOpts...)
		return markup, p, err
	}
	return r.run(ctx, cfg, card, len(records), draw, o,
		fmt.Sprintf("preset %s, redrawn from %d shapes", cfg.Name, len(records)))
}

// drawFunc returns the markup and record of the i-th shape of a card.
type drawFunc func(i int) (string, shape.Params, error)

// run fills card with n shapes from draw, reporting it to the card hooks.
func (r *Runner) run(ctx context.Context, cfg config.CanvasConfig, card *Card, n int, draw drawFunc, o options, origin string) (*Card, error) {
	hooks := observability.Card()
	hooks.OnCardStart(ctx, cfg.Name, n)
	start := time.Now()

	err := r.assemble(ctx, cfg, card, n, draw, o, origin)

	duration := time.Since(start)
	card.Stats.Duration = duration
	drawn := card.ShapeCount
	if err != nil {
		drawn = 0
	}
	hooks.OnCardComplete(ctx, cfg.Name, drawn, duration, err)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Name, err)
	}

	r.Logger.Info("generated card",
		"preset", card.Name,
		"shapes", card.ShapeCount,
		"size", fmt.Sprintf("%dx%d", card.Width, card.Height),
		"seed", card.Seed,
		"duration", duration)
	return card, nil
}

func newCard(cfg config.CanvasConfig, id string, seed uint64) *Card {
	return &Card{
		Name:     cfg.Name,
		Title:    cfg.Title,
		Filename: cfg.Filename,
		ID:       id,
		Seed:     seed,
		Width:    cfg.Width,
		Height:   cfg.Height,
	}
}

func (r *Runner) assemble(ctx context.Context, cfg config.CanvasConfig, card *Card, n int, draw drawFunc, o options, origin string) error {
	if o.records {
		card.Records = make([]shape.Params, 0, n)
	}
	debug := r.Logger.GetLevel() <= log.DebugLevel

	c := canvas.New(cfg.Width, cfg.Height,
		canvas.WithBackground(cfg.Background),
		canvas.WithID("card-"+card.ID))

	for i := range n {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		markup, p, err := draw(i)
		if err != nil {
			return fmt.Errorf("shape %d: %w", i+1, err)
		}
		if debug {
			r.Logger.Debug("shape", "preset", cfg.Name, "n", i+1, "line", report.Line(p))
		}
		c.Append(markup)
		card.Stats.add(p.Kind)
		if o.records {
			card.Records = append(card.Records, p)
		}
	}
	card.ShapeCount = c.Len()

	r.Logger.Debug("assembled canvas", "preset", cfg.Name, "shapes", c.Len())

	card.HTML = document.Wrap(cfg.Title, c.Finalize(),
		document.WithComment("card "+card.ID),
		document.WithComment(origin))
	card.Stats.Bytes = len(card.HTML)
	return nil
}

// GenerateAll draws every job concurrently and returns the cards in job order.
// The first failure cancels the remaining jobs and is returned.
func (r *Runner) GenerateAll(ctx context.Context, jobs []Job, opts ...Option) ([]*Card, error) {
	cards := make([]*Card, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		g.Go(func() error {
			card, err := r.Generate(gctx, job.Config, job.Source, opts...)
			if err != nil {
				return err
			}
			cards[i] = card
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cards, nil
}

// WriteCard writes card.HTML to dir/card.Filename, overwriting any existing
// file, and returns the written path.
func (r *Runner) WriteCard(ctx context.Context, card *Card, dir string) (string, error) {
	if err := errors.ValidateFilename(card.Filename); err != nil {
		return "", err
	}
	path := filepath.Join(dir, card.Filename)
	if err := io.WriteFile(path, []byte(card.HTML)); err != nil {
		return "", err
	}
	observability.Card().OnCardWritten(ctx, path, len(card.HTML))
	r.Logger.Debug("wrote card", "path", path, "bytes", len(card.HTML))
	return path, nil
}
