package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/cardgen/pkg/errors"
	"github.com/matzehuels/cardgen/pkg/palette"
	"github.com/matzehuels/cardgen/pkg/random"
	"github.com/matzehuels/cardgen/pkg/shape"
)

const oceanTOML = `
[[preset]]
name = "ocean"
title = "Ocean Floor"
width = 800
height = 600
background = "#001133"
shapes = 200
kinds = ["circle", "e"]
radius = [10, 60]
red = [0, 0]
green = [0, 85]
blue = [170, 255]
opacity = [0.3, 0.8]
opacity_decimals = 2

[[preset]]
name = "lime"
width = 100
height = 100
shapes = 10
fill = "#00ff00"
`

func TestLoad(t *testing.T) {
	configs, err := Load(strings.NewReader(oceanTOML))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("Load() returned %d presets, want 2", len(configs))
	}

	ocean := configs[0]
	if ocean.Name != "ocean" || ocean.Title != "Ocean Floor" || ocean.Filename != "ocean.html" {
		t.Errorf("ocean identity = %q %q %q", ocean.Name, ocean.Title, ocean.Filename)
	}
	if ocean.Width != 800 || ocean.Height != 600 || ocean.ShapeCount != 200 {
		t.Errorf("ocean canvas = %dx%d count %d", ocean.Width, ocean.Height, ocean.ShapeCount)
	}
	if ocean.Background != "#001133" {
		t.Errorf("ocean background = %q", ocean.Background)
	}
	if !slices.Equal(ocean.Kinds, []shape.Kind{shape.Circle, shape.Ellipse}) {
		t.Errorf("ocean kinds = %v", ocean.Kinds)
	}
	if ocean.RadiusRange != (random.Range{Min: 10, Max: 60}) {
		t.Errorf("ocean radius = %v", ocean.RadiusRange)
	}
	if ocean.Color.Blue != (random.Range{Min: 170, Max: 255}) || ocean.Color.Red != (random.Range{}) {
		t.Errorf("ocean color = %+v", ocean.Color)
	}
	if ocean.OpacityRange != (random.FloatRange{Min: 0.3, Max: 0.8}) || ocean.OpacityDecimals != 2 {
		t.Errorf("ocean opacity = %v (%d decimals)", ocean.OpacityRange, ocean.OpacityDecimals)
	}

	lime := configs[1]
	if lime.Color.Fixed == nil || *lime.Color.Fixed != (palette.RGB{G: 255}) {
		t.Errorf("lime fill = %v", lime.Color.Fixed)
	}
	if lime.OpacityDecimals != DefaultOpacityDecimals {
		t.Errorf("lime decimals = %d, want default", lime.OpacityDecimals)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
		code errors.Code
	}{
		{"syntax", `[[preset]`, errors.ErrCodeInvalidConfig},
		{"unknown key", "[[preset]]\nname = \"x\"\nwidth = 1\nheight = 1\ncolour = 3\n", errors.ErrCodeInvalidConfig},
		{"bad kind", "[[preset]]\nname = \"x\"\nwidth = 1\nheight = 1\nkinds = [\"triangle\"]\n", errors.ErrCodeInvalidConfig},
		{"bad range length", "[[preset]]\nname = \"x\"\nwidth = 1\nheight = 1\nradius = [1, 2, 3]\n", errors.ErrCodeInvalidConfig},
		{"reversed range", "[[preset]]\nname = \"x\"\nwidth = 1\nheight = 1\nradius = [9, 2]\n", errors.ErrCodeInvalidRange},
		{"bad fill", "[[preset]]\nname = \"x\"\nwidth = 1\nheight = 1\nfill = \"lime\"\n", errors.ErrCodeInvalidConfig},
		{"missing size", "[[preset]]\nname = \"x\"\n", errors.ErrCodeInvalidConfig},
		{"huge radius", "[[preset]]\nname = \"x\"\nwidth = 1\nheight = 1\nradius = [0, 9223372036854775807]\n", errors.ErrCodeInvalidRange},
		{"huge width", "[[preset]]\nname = \"x\"\nwidth = 9223372036854775807\nheight = 1\n", errors.ErrCodeInvalidConfig},
		{"opacity decimals", "[[preset]]\nname = \"x\"\nwidth = 1\nheight = 1\nopacity_decimals = 400\n", errors.ErrCodeInvalidConfig},
		{"nan opacity", "[[preset]]\nname = \"x\"\nwidth = 1\nheight = 1\nopacity = [nan, 1.0]\n", errors.ErrCodeInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.toml))
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	if err := os.WriteFile(path, []byte(oceanTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	configs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if len(configs) != 2 {
		t.Errorf("LoadFile() returned %d presets", len(configs))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("LoadFile(missing) error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadExamplePresets(t *testing.T) {
	configs, err := LoadFile(filepath.Join("..", "..", "examples", "presets.toml"))
	if err != nil {
		t.Fatalf("LoadFile(examples/presets.toml) error: %v", err)
	}

	var names []string
	for _, c := range configs {
		names = append(names, c.Name)
	}
	if !slices.Equal(names, []string{"ocean", "sunset", "mono"}) {
		t.Errorf("preset names = %v", names)
	}
	if configs[1].Filename != "sunset-card.html" {
		t.Errorf("sunset filename = %q", configs[1].Filename)
	}
	if configs[2].Color.Fixed == nil || configs[2].Color.Fixed.Hex() != "#222222" {
		t.Errorf("mono fill = %v", configs[2].Color.Fixed)
	}
}
