package confidence

import (
	"encoding/json"
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// SignificanceLevel is the threshold probability for rejecting a null
// hypothesis, expressed as a fraction. It represents the probability of a
// type I error: rejection of a null hypothesis which is in fact true.
//
// SignificanceLevel and ConfidenceLevel share the same validated domain but
// are deliberately distinct types, so a rejection threshold can never be
// passed where a coverage probability is expected.
type SignificanceLevel struct {
	p Probability
}

// NewSignificanceLevel creates a significance level from a fractional value.
// Returns ErrOutOfRange if fraction is NaN or outside [0, 1].
func NewSignificanceLevel(fraction float64) (SignificanceLevel, error) {
	p, err := NewProbability(fraction)
	if err != nil {
		return SignificanceLevel{}, err
	}
	return SignificanceLevel{p: p}, nil
}

// SignificanceLevelFromPercent creates a significance level from a
// percentage. Returns ErrOutOfRange if the normalized fraction is NaN or
// outside [0, 1].
func SignificanceLevelFromPercent(percent float64) (SignificanceLevel, error) {
	p, err := ProbabilityFromPercent(percent)
	if err != nil {
		return SignificanceLevel{}, err
	}
	return SignificanceLevel{p: p}, nil
}

// Conventional significance thresholds. These bypass the error return since
// the values are known to be valid.

// ZeroPointOnePercentSignificance returns the 0.1% significance level.
func ZeroPointOnePercentSignificance() SignificanceLevel {
	return SignificanceLevel{p: Probability{fraction: 0.001}}
}

// ZeroPointFivePercentSignificance returns the 0.5% significance level.
func ZeroPointFivePercentSignificance() SignificanceLevel {
	return SignificanceLevel{p: Probability{fraction: 0.005}}
}

// OnePercentSignificance returns the 1% significance level.
func OnePercentSignificance() SignificanceLevel {
	return SignificanceLevel{p: Probability{fraction: 0.01}}
}

// TwoPointFivePercentSignificance returns the 2.5% significance level.
func TwoPointFivePercentSignificance() SignificanceLevel {
	return SignificanceLevel{p: Probability{fraction: 0.025}}
}

// FivePercentSignificance returns the 5% significance level.
func FivePercentSignificance() SignificanceLevel {
	return SignificanceLevel{p: Probability{fraction: 0.05}}
}

// TenPercentSignificance returns the 10% significance level.
func TenPercentSignificance() SignificanceLevel {
	return SignificanceLevel{p: Probability{fraction: 0.1}}
}

// Probability returns the underlying validated probability.
func (s SignificanceLevel) Probability() Probability {
	return s.p
}

// Fraction returns the significance level in fraction form.
func (s SignificanceLevel) Fraction() float64 {
	return s.p.Fraction()
}

// Percent returns the significance level as a percentage.
func (s SignificanceLevel) Percent() float64 {
	return s.p.Percent()
}

// ConfidenceLevel returns the complementary coverage probability 1 - alpha.
func (s SignificanceLevel) ConfidenceLevel() ConfidenceLevel {
	return ConfidenceLevel{p: Probability{fraction: 1 - s.p.fraction}}
}

// StandardDeviations returns the number of standard deviations from the
// center of a standard normal distribution represented by the significance
// level. It is the inverse CDF evaluated at 1 - alpha: the one-sided z value
// beyond which the tail probability equals the level.
//
// alpha = 0 yields +Inf and alpha = 1 yields -Inf.
func (s SignificanceLevel) StandardDeviations() float64 {
	standard := distuv.Normal{Mu: 0, Sigma: 1}
	return standard.Quantile(1 - s.p.fraction)
}

func (s SignificanceLevel) String() string {
	return fmt.Sprintf("Significance Level: %.3f%%", s.Percent())
}

// MarshalJSON encodes the level as its bare fraction.
func (s SignificanceLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.p)
}

// UnmarshalJSON decodes and re-validates the fraction.
func (s *SignificanceLevel) UnmarshalJSON(data []byte) error {
	var p Probability
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = SignificanceLevel{p: p}
	return nil
}
