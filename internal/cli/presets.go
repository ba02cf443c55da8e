package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardgen/pkg/config"
	"github.com/matzehuels/cardgen/pkg/random"
)

func (c *CLI) presetsCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List available presets",
		Long: `List the built-in presets and any presets defined in a TOML file.

The random preset is re-drawn on every run, so its row shows one sample.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := c.loadCatalog(configPath)
			if err != nil {
				return err
			}
			rows, err := presetRows(catalog)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.Out, styleTitle.Render("Presets"))
			fmt.Fprintln(c.Out, renderTable([]string{"NAME", "CANVAS", "SHAPES", "KINDS", "COLOR", "FILE"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML file with extra presets")
	return cmd
}

func presetRows(catalog *config.Catalog) ([][]string, error) {
	var rows [][]string
	for _, name := range catalog.Names() {
		cfg, err := catalog.Lookup(name, random.NewUnseeded())
		if err != nil {
			return nil, err
		}
		kinds := make([]string, len(cfg.Kinds))
		for i, k := range cfg.Kinds {
			kinds[i] = k.String()
		}
		rows = append(rows, []string{
			cfg.Name,
			fmt.Sprintf("%dx%d %s", cfg.Width, cfg.Height, cfg.Background),
			strconv.Itoa(cfg.ShapeCount),
			strings.Join(kinds, ", "),
			describeColor(cfg.Color),
			cfg.Filename,
		})
	}
	return rows, nil
}

// describeColor summarizes a color constraint, e.g. "r 170-255 g 0 b 0".
func describeColor(cc random.ColorConstraint) string {
	if cc.Fixed != nil {
		return cc.Fixed.Hex()
	}
	channel := func(label string, r random.Range) string {
		if r.Min == r.Max {
			return fmt.Sprintf("%s %d", label, r.Min)
		}
		return fmt.Sprintf("%s %d-%d", label, r.Min, r.Max)
	}
	return strings.Join([]string{
		channel("r", cc.Red),
		channel("g", cc.Green),
		channel("b", cc.Blue),
	}, " ")
}
