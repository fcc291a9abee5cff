package confidence

import (
	"encoding/json"
	"fmt"
)

// ConfidenceLevel is the degree of confidence associated with a value to be
// computed: the probability that a procedure produces a result containing the
// true value across repeated trials, expressed as a fraction.
type ConfidenceLevel struct {
	p Probability
}

// NewConfidenceLevel creates a confidence level from a fractional value.
// Returns ErrOutOfRange if fraction is NaN or outside [0, 1].
func NewConfidenceLevel(fraction float64) (ConfidenceLevel, error) {
	p, err := NewProbability(fraction)
	if err != nil {
		return ConfidenceLevel{}, err
	}
	return ConfidenceLevel{p: p}, nil
}

// ConfidenceLevelFromPercent creates a confidence level from a percentage.
// Returns ErrOutOfRange if the normalized fraction is NaN or outside [0, 1].
func ConfidenceLevelFromPercent(percent float64) (ConfidenceLevel, error) {
	p, err := ProbabilityFromPercent(percent)
	if err != nil {
		return ConfidenceLevel{}, err
	}
	return ConfidenceLevel{p: p}, nil
}

// Conventional confidence levels.

// NinetyPercentConfidence returns the 90% confidence level.
func NinetyPercentConfidence() ConfidenceLevel {
	return ConfidenceLevel{p: Probability{fraction: 0.9}}
}

// NinetyFivePercentConfidence returns the 95% confidence level.
func NinetyFivePercentConfidence() ConfidenceLevel {
	return ConfidenceLevel{p: Probability{fraction: 0.95}}
}

// NinetySevenPointFivePercentConfidence returns the 97.5% confidence level.
func NinetySevenPointFivePercentConfidence() ConfidenceLevel {
	return ConfidenceLevel{p: Probability{fraction: 0.975}}
}

// NinetyNinePercentConfidence returns the 99% confidence level.
func NinetyNinePercentConfidence() ConfidenceLevel {
	return ConfidenceLevel{p: Probability{fraction: 0.99}}
}

// NinetyNinePointFivePercentConfidence returns the 99.5% confidence level.
func NinetyNinePointFivePercentConfidence() ConfidenceLevel {
	return ConfidenceLevel{p: Probability{fraction: 0.995}}
}

// NinetyNinePointNinePercentConfidence returns the 99.9% confidence level.
func NinetyNinePointNinePercentConfidence() ConfidenceLevel {
	return ConfidenceLevel{p: Probability{fraction: 0.999}}
}

// Probability returns the underlying validated probability.
func (c ConfidenceLevel) Probability() Probability {
	return c.p
}

// Fraction returns the confidence level in fraction form.
func (c ConfidenceLevel) Fraction() float64 {
	return c.p.Fraction()
}

// Percent returns the confidence level as a percentage.
func (c ConfidenceLevel) Percent() float64 {
	return c.p.Percent()
}

// SignificanceLevel returns the complementary rejection threshold 1 - level.
func (c ConfidenceLevel) SignificanceLevel() SignificanceLevel {
	return SignificanceLevel{p: Probability{fraction: 1 - c.p.fraction}}
}

func (c ConfidenceLevel) String() string {
	return fmt.Sprintf("Confidence Level: %.3f%%", c.Percent())
}

// MarshalJSON encodes the level as its bare fraction.
func (c ConfidenceLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.p)
}

// UnmarshalJSON decodes and re-validates the fraction.
func (c *ConfidenceLevel) UnmarshalJSON(data []byte) error {
	var p Probability
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = ConfidenceLevel{p: p}
	return nil
}
