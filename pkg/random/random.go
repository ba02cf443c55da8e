// Package random produces the randomized numbers and colors that parameterize
// card shapes.
//
// All randomness flows through an explicit [Source] handle. A Source built with
// [New] is fully reproducible: the same seed yields the same values in the same
// order, which is what makes cards regenerable and testable.
//
//	src := random.New(42)
//	r, err := src.Int(random.Range{Min: 0, Max: 100})
//	op, err := src.Float(random.FloatRange{Min: 0, Max: 1}, 1)
//
// Ranges are inclusive. A range whose Min exceeds its Max is rejected with an
// INVALID_RANGE error; bounds are never swapped.
package random

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/cardgen/pkg/errors"
	"github.com/matzehuels/cardgen/pkg/palette"
)

// Range is an inclusive integer range.
type Range struct {
	Min, Max int
}

// Validate reports an INVALID_RANGE error when Min > Max.
func (r Range) Validate(name string) error {
	return errors.ValidateRange(name, r.Min, r.Max)
}

// FloatRange is an inclusive floating-point range.
type FloatRange struct {
	Min, Max float64
}

// Validate reports an INVALID_RANGE error when Min > Max.
func (r FloatRange) Validate(name string) error {
	return errors.ValidateRange(name, r.Min, r.Max)
}

// ColorConstraint restricts generated colors.
// When Fixed is set every generated color equals it; otherwise each channel is
// drawn from its own range, which must lie within 0..255.
type ColorConstraint struct {
	Red, Green, Blue Range
	Fixed            *palette.RGB
}

// FullColor allows every channel its whole 0..255 range.
var FullColor = ColorConstraint{
	Red:   Range{0, 255},
	Green: Range{0, 255},
	Blue:  Range{0, 255},
}

// Validate checks every channel range.
func (c ColorConstraint) Validate() error {
	if c.Fixed != nil {
		return nil
	}
	for _, ch := range []struct {
		name string
		r    Range
	}{{"red", c.Red}, {"green", c.Green}, {"blue", c.Blue}} {
		if err := ch.r.Validate(ch.name); err != nil {
			return err
		}
		if ch.r.Min < 0 || ch.r.Max > 255 {
			return errors.New(errors.ErrCodeInvalidRange, "%s: [%d, %d] outside 0..255", ch.name, ch.r.Min, ch.r.Max)
		}
	}
	return nil
}

// Source is a random value generator bound to a single seeded PRNG.
// A Source is not safe for concurrent use.
type Source struct {
	rng  *rand.Rand
	seed uint64
}

// New creates a reproducible Source from seed.
func New(seed uint64) *Source {
	return &Source{
		rng:  rand.New(rand.NewPCG(seed, seed^0xdeadbeef)),
		seed: seed,
	}
}

// NewUnseeded creates a Source from a runtime-chosen seed.
// The seed is still recorded so the run can be reproduced with [New].
func NewUnseeded() *Source {
	return New(rand.Uint64())
}

// Seed returns the seed the Source was created with.
func (s *Source) Seed() uint64 { return s.seed }

// Int returns a uniformly distributed integer in [r.Min, r.Max].
// Any valid range works, including one spanning every int.
func (s *Source) Int(r Range) (int, error) {
	if err := r.Validate("int"); err != nil {
		return 0, err
	}
	// The span is computed in uint64 so wide ranges cannot overflow; the
	// offset is added back with wrapping int arithmetic.
	span := uint64(r.Max) - uint64(r.Min)
	if span == math.MaxUint64 {
		return int(s.rng.Uint64()), nil
	}
	return r.Min + int(s.rng.Uint64N(span+1)), nil
}

// Float returns a uniformly distributed value in [r.Min, r.Max] rounded to
// decimals places. Rounding never leaves the range: a rounded value that falls
// outside is clamped to the nearest bound. A negative decimals disables
// rounding, and so does a precision too fine to round to.
func (s *Source) Float(r FloatRange, decimals int) (float64, error) {
	if err := r.Validate("float"); err != nil {
		return 0, err
	}
	if math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return 0, errors.New(errors.ErrCodeInvalidRange, "float: [%v, %v] is not finite", r.Min, r.Max)
	}
	v := r.Min + s.rng.Float64()*(r.Max-r.Min)
	if decimals >= 0 {
		p := math.Pow10(decimals)
		if rounded := math.Round(v*p) / p; !math.IsNaN(rounded) && !math.IsInf(rounded, 0) {
			v = rounded
		}
	}
	return max(r.Min, min(v, r.Max)), nil
}

// Color returns a color satisfying c.
func (s *Source) Color(c ColorConstraint) (palette.RGB, error) {
	if err := c.Validate(); err != nil {
		return palette.RGB{}, err
	}
	if c.Fixed != nil {
		return *c.Fixed, nil
	}
	r, err := s.Int(c.Red)
	if err != nil {
		return palette.RGB{}, err
	}
	g, err := s.Int(c.Green)
	if err != nil {
		return palette.RGB{}, err
	}
	b, err := s.Int(c.Blue)
	if err != nil {
		return palette.RGB{}, err
	}
	return palette.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](s *Source, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, errors.New(errors.ErrCodeInvalidRange, "pick from empty set")
	}
	return items[s.rng.IntN(len(items))], nil
}

// Sample returns n distinct elements of items in random order.
func Sample[T any](s *Source, items []T, n int) ([]T, error) {
	if n < 0 || n > len(items) {
		return nil, errors.New(errors.ErrCodeInvalidRange, "sample %d of %d items", n, len(items))
	}
	out := make([]T, 0, n)
	for _, i := range s.rng.Perm(len(items))[:n] {
		out = append(out, items[i])
	}
	return out, nil
}
