package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/cardgen/pkg/errors"
	"github.com/matzehuels/cardgen/pkg/palette"
	"github.com/matzehuels/cardgen/pkg/shape"
)

type recordFile struct {
	Shapes []record `json:"shapes"`
}

type record struct {
	Index   int     `json:"index"`
	Kind    string  `json:"kind"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Radius  int     `json:"radius"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	RX      int     `json:"rx"`
	RY      int     `json:"ry"`
	Fill    fill    `json:"fill"`
	Hex     string  `json:"hex"`
	Opacity float64 `json:"opacity"`
}

type fill struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// WriteFile writes data to path, creating or truncating the file.
// The parent directory must exist.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", filepath.Base(path))
	}
	return nil
}

// WriteRecordsJSON encodes shape records as indented JSON and writes them to w.
// Records are numbered from 1 in slice order, which is their drawing order.
func WriteRecordsJSON(records []shape.Params, w io.Writer) error {
	out := recordFile{Shapes: make([]record, len(records))}
	for i, p := range records {
		out.Shapes[i] = record{
			Index:   i + 1,
			Kind:    p.Kind.String(),
			X:       p.X,
			Y:       p.Y,
			Radius:  p.Radius,
			Width:   p.Width,
			Height:  p.Height,
			RX:      p.RX,
			RY:      p.RY,
			Fill:    fill{R: p.Fill.R, G: p.Fill.G, B: p.Fill.B},
			Hex:     p.Fill.Hex(),
			Opacity: p.Opacity,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode shape records")
	}
	return nil
}

// ExportRecordsJSON writes shape records to a JSON file at path.
func ExportRecordsJSON(records []shape.Params, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", filepath.Base(path))
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(errors.ErrCodeIO, cerr, "close %s", filepath.Base(path))
		}
	}()
	if err := WriteRecordsJSON(records, f); err != nil {
		return fmt.Errorf("export %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (r record) params() (shape.Params, error) {
	k, err := shape.ParseKind(r.Kind)
	if err != nil {
		return shape.Params{}, err
	}
	return shape.Params{
		Kind:    k,
		X:       r.X,
		Y:       r.Y,
		Radius:  r.Radius,
		Width:   r.Width,
		Height:  r.Height,
		RX:      r.RX,
		RY:      r.RY,
		Fill:    palette.RGB{R: r.Fill.R, G: r.Fill.G, B: r.Fill.B},
		Opacity: r.Opacity,
	}, nil
}
