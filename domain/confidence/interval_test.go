package confidence

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confi/domain/core"
)

// TestIntervalContains tests closed-bound membership
func TestIntervalContains(t *testing.T) {
	level := NinetyFivePercentConfidence()
	interval, err := NewConfidenceInterval(1.0, 3.0, level)
	require.NoError(t, err)

	assert.True(t, interval.Contains(2.0))
	assert.True(t, interval.Contains(1.0), "lower bound is inclusive")
	assert.True(t, interval.Contains(3.0), "upper bound is inclusive")
	assert.False(t, interval.Contains(0.999))
	assert.False(t, interval.Contains(3.001))
	assert.False(t, interval.Contains(math.NaN()))
}

// TestIntervalDegenerate tests a zero-width interval
func TestIntervalDegenerate(t *testing.T) {
	interval, err := NewConfidenceInterval(2.0, 2.0, NinetyPercentConfidence())
	require.NoError(t, err)

	assert.True(t, interval.Contains(2.0))
	assert.False(t, interval.Contains(2.0000001))
	assert.Equal(t, 0.0, interval.Width())
}

// TestIntervalInvalidRange tests rejection of malformed bounds
func TestIntervalInvalidRange(t *testing.T) {
	level := NinetyFivePercentConfidence()

	tests := []struct {
		name  string
		lower float64
		upper float64
	}{
		{"reversed bounds", 3.0, 1.0},
		{"slightly reversed", 1.0000001, 1.0},
		{"nan lower", math.NaN(), 1.0},
		{"nan upper", 1.0, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfidenceInterval(tt.lower, tt.upper, level)
			require.Error(t, err)
			assert.True(t, core.IsInvalidRangeError(err), "expected ErrInvalidRange, got %v", err)
		})
	}
}

// TestIntervalAccessors tests bound and level read access
func TestIntervalAccessors(t *testing.T) {
	level := NinetyNinePercentConfidence()
	interval, err := NewConfidenceInterval(-1.5, 4.5, level)
	require.NoError(t, err)

	assert.Equal(t, -1.5, interval.Lower())
	assert.Equal(t, 4.5, interval.Upper())
	assert.Equal(t, level, interval.Level())
	assert.Equal(t, 6.0, interval.Width())
	assert.Equal(t, 3.0, interval.HalfWidth())
	assert.Equal(t, 1.5, interval.Midpoint())
}

// TestIntervalLevelDoesNotAffectContainment tests that membership depends
// only on the bounds
func TestIntervalLevelDoesNotAffectContainment(t *testing.T) {
	low, err := NewConfidenceInterval(1.0, 3.0, NinetyPercentConfidence())
	require.NoError(t, err)
	high, err := NewConfidenceInterval(1.0, 3.0, NinetyNinePointNinePercentConfidence())
	require.NoError(t, err)

	for _, v := range []float64{0.5, 1.0, 2.0, 3.0, 3.5} {
		assert.Equal(t, low.Contains(v), high.Contains(v), "containment diverged at %v", v)
	}
}

// TestIntervalString tests the display format
func TestIntervalString(t *testing.T) {
	interval, err := NewConfidenceInterval(1e-5, 4e-2, NinetyNinePercentConfidence())
	require.NoError(t, err)

	want := "Confidence Interval: 1.000e-05 -> 4.000e-02 (Confidence Level: 99.000%)"
	assert.Equal(t, want, interval.String())
}

// TestIntervalJSONRoundTrip tests the object encoding and re-validation
func TestIntervalJSONRoundTrip(t *testing.T) {
	original, err := NewConfidenceInterval(1.0, 3.0, NinetyFivePercentConfidence())
	require.NoError(t, err)

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lower":1,"upper":3,"confidence_level":0.95}`, string(data))

	var decoded ConfidenceInterval
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)

	var malformed ConfidenceInterval
	err = json.Unmarshal([]byte(`{"lower":3,"upper":1,"confidence_level":0.95}`), &malformed)
	require.Error(t, err)
	assert.True(t, core.IsInvalidRangeError(err))
}
