package confidence

import (
	"encoding/json"
	"fmt"
	"math"

	"confi/domain/core"
)

// ConfidenceInterval describes the range of values a quantity is expected to
// fall in, expressed to a given ConfidenceLevel. The range is closed on both
// ends. The level is carried for reporting; it does not alter containment.
type ConfidenceInterval struct {
	lower float64
	upper float64
	level ConfidenceLevel
}

// NewConfidenceInterval creates an interval from inclusive bounds and an
// already-validated confidence level. Returns ErrInvalidRange when
// lower > upper or when either bound is NaN. Bounds are never swapped: a
// reversed range is a caller bug and must surface, not be repaired.
func NewConfidenceInterval(lower, upper float64, level ConfidenceLevel) (ConfidenceInterval, error) {
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return ConfidenceInterval{}, core.NewUnorderedBoundError(lower, upper)
	}
	if lower > upper {
		return ConfidenceInterval{}, core.NewInvalidRangeError(lower, upper)
	}
	return ConfidenceInterval{lower: lower, upper: upper, level: level}, nil
}

// Contains reports whether value lies within the interval, inclusive on both
// ends.
func (ci ConfidenceInterval) Contains(value float64) bool {
	return value >= ci.lower && value <= ci.upper
}

// Lower returns the inclusive lower bound.
func (ci ConfidenceInterval) Lower() float64 {
	return ci.lower
}

// Upper returns the inclusive upper bound.
func (ci ConfidenceInterval) Upper() float64 {
	return ci.upper
}

// Level returns the confidence level associated with the interval.
func (ci ConfidenceInterval) Level() ConfidenceLevel {
	return ci.level
}

// Width returns the distance between the bounds.
func (ci ConfidenceInterval) Width() float64 {
	return ci.upper - ci.lower
}

// HalfWidth returns half the distance between the bounds.
func (ci ConfidenceInterval) HalfWidth() float64 {
	return ci.Width() / 2
}

// Midpoint returns the center of the interval.
func (ci ConfidenceInterval) Midpoint() float64 {
	return ci.lower + ci.HalfWidth()
}

func (ci ConfidenceInterval) String() string {
	return fmt.Sprintf("Confidence Interval: %.3e -> %.3e (%s)", ci.lower, ci.upper, ci.level)
}

type intervalJSON struct {
	Lower float64         `json:"lower"`
	Upper float64         `json:"upper"`
	Level ConfidenceLevel `json:"confidence_level"`
}

// MarshalJSON encodes the interval as an object with bounds and level.
func (ci ConfidenceInterval) MarshalJSON() ([]byte, error) {
	return json.Marshal(intervalJSON{Lower: ci.lower, Upper: ci.upper, Level: ci.level})
}

// UnmarshalJSON decodes and re-validates the bounds, so a decoded interval
// always satisfies lower <= upper.
func (ci *ConfidenceInterval) UnmarshalJSON(data []byte) error {
	var raw intervalJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	validated, err := NewConfidenceInterval(raw.Lower, raw.Upper, raw.Level)
	if err != nil {
		return err
	}
	*ci = validated
	return nil
}
