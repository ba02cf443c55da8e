package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/cardgen/pkg/errors"
	"github.com/matzehuels/cardgen/pkg/shape"
)

// ReadRecordsJSON decodes shape records written by [WriteRecordsJSON].
//
// The "hex" field is informational and ignored; the fill object is
// authoritative. Each record is validated against its kind, so an export
// that could not have been rendered is rejected.
func ReadRecordsJSON(r io.Reader) ([]shape.Params, error) {
	var in recordFile
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode shape records")
	}

	out := make([]shape.Params, 0, len(in.Shapes))
	for i, rec := range in.Shapes {
		p, err := rec.params()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i+1, err)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("shape %d: %w", i+1, err)
		}
		out = append(out, p)
	}
	return out, nil
}
