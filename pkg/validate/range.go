// Package validate has small numeric checks shared by model validators.
package validate

import "math"

const floatingPointTolerance = 0.000001

// InRange reports whether value is in [start, end].
func InRange(start float64, end float64, value float64) bool {
	return value >= start && value <= end
}

// InUnitRange reports whether value is in [0, 1].
func InUnitRange(value float64) bool {
	return InRange(0, 1, value)
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Positive reports whether every value exceeds floatingPointTolerance.
func Positive(values ...float64) bool {
	for _, v := range values {
		if v <= floatingPointTolerance {
			return false
		}
	}
	return true
}
