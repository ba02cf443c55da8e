package config

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cardgen/pkg/errors"
	"github.com/matzehuels/cardgen/pkg/palette"
	"github.com/matzehuels/cardgen/pkg/random"
	"github.com/matzehuels/cardgen/pkg/shape"
)

// presetFile is the TOML layout of a preset file:
//
//	[[preset]]
//	name = "ocean"
//	width = 800
//	height = 600
//	background = "#001133"
//	shapes = 200
//	kinds = ["circle", "ellipse"]
//	blue = [170, 255]
//	opacity = [0.3, 0.8]
type presetFile struct {
	Preset []presetEntry `toml:"preset"`
}

type presetEntry struct {
	Name            string    `toml:"name"`
	Title           string    `toml:"title"`
	Filename        string    `toml:"filename"`
	Width           int       `toml:"width"`
	Height          int       `toml:"height"`
	Background      string    `toml:"background"`
	Shapes          int       `toml:"shapes"`
	Kinds           []string  `toml:"kinds"`
	Radius          []int     `toml:"radius"`
	Side            []int     `toml:"side"`
	Radii           []int     `toml:"radii"`
	Red             []int     `toml:"red"`
	Green           []int     `toml:"green"`
	Blue            []int     `toml:"blue"`
	Fill            string    `toml:"fill"`
	Opacity         []float64 `toml:"opacity"`
	OpacityDecimals *int      `toml:"opacity_decimals"`
}

// LoadFile reads presets from a TOML file.
func LoadFile(path string) ([]CanvasConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open preset file %s", path)
	}
	defer f.Close()
	return Load(f)
}

// Load reads presets from TOML. Unknown keys are rejected so typos do not
// silently fall back to defaults. Every returned preset is validated.
func Load(r io.Reader) ([]CanvasConfig, error) {
	var file presetFile
	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse preset file")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}

	configs := make([]CanvasConfig, 0, len(file.Preset))
	for i, e := range file.Preset {
		cfg, err := e.toConfig()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "preset #%d", i+1)
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

func (e presetEntry) toConfig() (CanvasConfig, error) {
	c := New(e.Name, e.Width, e.Height)
	if e.Title != "" {
		c.Title = e.Title
	}
	if e.Filename != "" {
		c.Filename = e.Filename
	}
	if e.Background != "" {
		c.Background = e.Background
	}
	c.ShapeCount = e.Shapes

	if len(e.Kinds) > 0 {
		c.Kinds = c.Kinds[:0]
		for _, name := range e.Kinds {
			k, err := shape.ParseKind(name)
			if err != nil {
				return c, err
			}
			c.Kinds = append(c.Kinds, k)
		}
	}

	intRanges := []struct {
		key string
		raw []int
		dst *random.Range
	}{
		{"radius", e.Radius, &c.RadiusRange},
		{"side", e.Side, &c.SideRange},
		{"radii", e.Radii, &c.RadiiRange},
		{"red", e.Red, &c.Color.Red},
		{"green", e.Green, &c.Color.Green},
		{"blue", e.Blue, &c.Color.Blue},
	}
	for _, ir := range intRanges {
		if ir.raw == nil {
			continue
		}
		if len(ir.raw) != 2 {
			return c, errors.New(errors.ErrCodeInvalidConfig, "%s: want [min, max], got %v", ir.key, ir.raw)
		}
		*ir.dst = random.Range{Min: ir.raw[0], Max: ir.raw[1]}
	}

	if e.Fill != "" {
		fill, err := palette.ParseHex(e.Fill)
		if err != nil {
			return c, err
		}
		c.Color.Fixed = &fill
	}

	if e.Opacity != nil {
		if len(e.Opacity) != 2 {
			return c, errors.New(errors.ErrCodeInvalidConfig, "opacity: want [min, max], got %v", e.Opacity)
		}
		c.OpacityRange = random.FloatRange{Min: e.Opacity[0], Max: e.Opacity[1]}
	}
	if e.OpacityDecimals != nil {
		c.OpacityDecimals = *e.OpacityDecimals
	}
	return c, nil
}
