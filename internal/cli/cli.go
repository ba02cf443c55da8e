// Package cli implements the cardgen command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardgen/pkg/buildinfo"
	"github.com/matzehuels/cardgen/pkg/config"
	"github.com/matzehuels/cardgen/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "cardgen"

	// defaultAddr is the listen address of the preview server.
	defaultAddr = "localhost:8080"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives user-facing output (status lines, tables).
	Out io.Writer
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
//
// Run without a subcommand, cardgen writes the three built-in cards to the
// working directory.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "cardgen draws random shapes into HTML cards",
		Long: `cardgen generates static HTML pages ("cards") holding a single inline SVG
filled with random circles, rectangles and ellipses.

Without arguments it writes random.html, matrix.html and thinkpad.html to the
current directory, overwriting them.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), nil, generateOpts{out: ".", count: -1})
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner & Catalog Factories
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// loadCatalog returns the built-in presets plus those defined in path, if set.
func (c *CLI) loadCatalog(path string) (*config.Catalog, error) {
	if path == "" {
		return config.NewCatalog()
	}
	extra, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded presets", "file", path, "count", len(extra))
	return config.NewCatalog(extra...)
}
