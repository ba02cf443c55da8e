package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardgen/pkg/config"
	"github.com/matzehuels/cardgen/pkg/errors"
	"github.com/matzehuels/cardgen/pkg/io"
	"github.com/matzehuels/cardgen/pkg/pipeline"
	"github.com/matzehuels/cardgen/pkg/random"
	"github.com/matzehuels/cardgen/pkg/report"
)

// generateOpts holds the flags of the generate command.
type generateOpts struct {
	out    string
	seed   uint64
	seeded bool // seed was given explicitly; 0 is a valid seed
	count  int  // negative keeps the preset's count
	config string
	from   string // shape records to redraw instead of drawing
	table  bool
	json   bool
	hex    bool
}

func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{out: ".", count: -1}

	cmd := &cobra.Command{
		Use:   "generate [preset...]",
		Short: "Generate HTML cards from presets",
		Long: `Generate one HTML card per preset and write it to the output directory.

Without presets, the three built-ins (random, matrix, thinkpad) are generated.
Existing files are overwritten. Each card is reproducible from its preset and
seed; without --seed a fresh seed is chosen per card and logged.`,
		Example: `  cardgen generate
  cardgen generate thinkpad --seed 42
  cardgen generate matrix --count 50 --table
  cardgen generate neon --config presets.toml --out cards/
  cardgen generate thinkpad --from thinkpad.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seeded = cmd.Flags().Changed("seed")
			return c.runGenerate(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", opts.out, "output directory")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (default: fresh seed per card)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", opts.count, "shapes per card (default: preset count)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML file with extra presets")
	cmd.Flags().StringVar(&opts.from, "from", "", "redraw the shapes of a JSON records file on one preset's canvas")
	cmd.Flags().BoolVar(&opts.table, "table", false, "print a table of every drawn shape")
	cmd.Flags().BoolVar(&opts.json, "json", false, "also write shape records as <preset>.json")
	cmd.Flags().BoolVar(&opts.hex, "hex", false, "write fills as #rrggbb instead of rgb()")

	cmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return config.BuiltinNames, cobra.ShellCompDirectiveNoFileComp
	}

	return cmd
}

// runGenerate generates, writes and reports one card per preset name.
// An empty names list means the built-in presets.
func (c *CLI) runGenerate(ctx context.Context, names []string, opts generateOpts) error {
	logger := loggerFromContext(ctx)

	if opts.count > config.MaxShapeCount {
		return errors.New(errors.ErrCodeInvalidInput, "--count %d exceeds the maximum of %d", opts.count, config.MaxShapeCount)
	}

	if opts.from != "" && len(names) != 1 {
		return errors.New(errors.ErrCodeInvalidInput, "--from needs exactly one preset for the canvas, got %d", len(names))
	}

	catalog, err := c.loadCatalog(opts.config)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		names = config.BuiltinNames
	}
	names = c.dedupe(lowerAll(names))

	jobs, err := buildJobs(catalog, names, opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create output directory %s", opts.out)
	}

	var genOpts []pipeline.Option
	if opts.table || opts.json {
		genOpts = append(genOpts, pipeline.WithRecords())
	}
	if opts.hex {
		genOpts = append(genOpts, pipeline.WithHexColor())
	}

	prog := newProgress(logger)
	if opts.from != "" {
		card, err := c.redraw(ctx, jobs[0].Config, opts.from, genOpts)
		if err != nil {
			return err
		}
		if err := c.writeCard(ctx, card, opts); err != nil {
			return err
		}
		prog.done("redrew card", "preset", card.Name, "shapes", card.ShapeCount, "from", opts.from)
		return nil
	}

	stop := startSpinner(ctx, fmt.Sprintf("Drawing %d card(s)...", len(jobs)))
	cards, err := c.newRunner().GenerateAll(ctx, jobs, genOpts...)
	stop()
	if err != nil {
		return err
	}

	for _, card := range cards {
		if err := c.writeCard(ctx, card, opts); err != nil {
			return err
		}
	}

	prog.done("generated cards", "count", len(cards), "dir", opts.out)
	return nil
}

// redraw renders the records stored in path on the canvas of cfg.
func (c *CLI) redraw(ctx context.Context, cfg config.CanvasConfig, path string, opts []pipeline.Option) (*pipeline.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open records %s", path)
	}
	defer f.Close()

	records, err := io.ReadRecordsJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c.newRunner().Redraw(ctx, cfg, records, opts...)
}

// lowerAll lowercases preset names so differently cased duplicates collapse.
func lowerAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.ToLower(n)
	}
	return out
}

// buildJobs resolves every preset name into a configuration and its source.
func buildJobs(catalog *config.Catalog, names []string, opts generateOpts) ([]pipeline.Job, error) {
	jobs := make([]pipeline.Job, 0, len(names))
	for _, name := range names {
		src := random.NewUnseeded()
		if opts.seeded {
			src = random.New(opts.seed)
		}
		cfg, err := catalog.Lookup(name, src)
		if err != nil {
			return nil, err
		}
		if opts.count >= 0 {
			cfg = cfg.WithShapeCount(opts.count)
		}
		jobs = append(jobs, pipeline.Job{Config: cfg, Source: src})
	}
	return jobs, nil
}

// dedupe drops repeated preset names, which would write the same file twice.
func (c *CLI) dedupe(names []string) []string {
	var out []string
	for _, n := range names {
		if slices.Contains(out, n) {
			printWarning(c.Out, "skipping duplicate preset %q", n)
			continue
		}
		out = append(out, n)
	}
	return out
}

func (c *CLI) writeCard(ctx context.Context, card *pipeline.Card, opts generateOpts) error {
	path, err := c.newRunner().WriteCard(ctx, card, opts.out)
	if err != nil {
		return err
	}

	printSuccess(c.Out, "%s %s", styleTitle.Render(card.Title), styleDim.Render(fmt.Sprintf("(%dx%d, seed %d)", card.Width, card.Height, card.Seed)))
	printFile(c.Out, path)
	printStats(c.Out, card.Stats.Circles, card.Stats.Rectangles, card.Stats.Ellipses, card.Stats.Bytes)

	if opts.json {
		jsonPath := filepath.Join(opts.out, strings.TrimSuffix(card.Filename, filepath.Ext(card.Filename))+".json")
		if err := io.ExportRecordsJSON(card.Records, jsonPath); err != nil {
			return err
		}
		printFile(c.Out, jsonPath)
	}

	if opts.table {
		fmt.Fprintln(c.Out, report.Table(card.Records))
		printDetail(c.Out, "%s", report.Summary(card.Records))
	}
	return nil
}
