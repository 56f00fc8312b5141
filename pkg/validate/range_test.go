package validate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInUnitRange(t *testing.T) {
	testCases := []struct {
		Value    float64
		Expected bool
	}{
		{0, true},
		{0.5, true},
		{1, true},
		{-0.1, false},
		{1.1, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Expected, InUnitRange(tc.Value), "value %v", tc.Value)
	}
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite())
	assert.True(t, Finite(0, -3, 1e300))
	assert.False(t, Finite(1, math.NaN()))
	assert.False(t, Finite(math.Inf(-1)))
}

func TestPositive(t *testing.T) {
	assert.True(t, Positive(1, 0.01))
	assert.False(t, Positive(1, 0))
	assert.False(t, Positive(1e-7))
	assert.False(t, Positive(-2))
}
