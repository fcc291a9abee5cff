// Package confidence provides validated probability value types: significance
// levels, confidence levels, and the confidence intervals built from them.
//
// All types are immutable once constructed and safe for concurrent readers.
package confidence

import (
	"encoding/json"
	"fmt"
	"math"

	"confi/domain/core"
)

// Probability is a real number constrained to the closed unit interval [0, 1].
// It is the canonical fraction-form value underlying both SignificanceLevel
// and ConfidenceLevel.
//
// Equality is exact: percent construction performs a single division by 100
// in the same precision as fractional construction, so equal fractions built
// through either representation compare equal with no tolerance.
type Probability struct {
	fraction float64
}

// NewProbability creates a Probability from a value already in fraction form.
// Returns ErrOutOfRange if fraction is NaN or outside [0, 1].
func NewProbability(fraction float64) (Probability, error) {
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return Probability{}, core.NewOutOfRangeError(fraction)
	}
	return Probability{fraction: fraction}, nil
}

// ProbabilityFromPercent creates a Probability from a percentage, normalizing
// by dividing by 100. Returns ErrOutOfRange if the normalized fraction is NaN
// or outside [0, 1].
func ProbabilityFromPercent(percent float64) (Probability, error) {
	return NewProbability(percent / 100)
}

// Fraction returns the canonical fraction-form value.
func (p Probability) Fraction() float64 {
	return p.fraction
}

// Percent returns the value expressed as a percentage.
func (p Probability) Percent() float64 {
	return p.fraction * 100
}

func (p Probability) String() string {
	return fmt.Sprintf("%.3f%%", p.Percent())
}

// MarshalJSON encodes the probability as its bare fraction.
func (p Probability) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.fraction)
}

// UnmarshalJSON decodes and re-validates, so a decoded Probability can never
// hold an illegal value.
func (p *Probability) UnmarshalJSON(data []byte) error {
	var fraction float64
	if err := json.Unmarshal(data, &fraction); err != nil {
		return err
	}
	validated, err := NewProbability(fraction)
	if err != nil {
		return err
	}
	*p = validated
	return nil
}
