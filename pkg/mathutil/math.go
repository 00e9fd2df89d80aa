// Package mathutil provides small math helpers shared by the analysis and
// scoring layers.
package mathutil

// MinFloat calculates the minimum of two float64 values.
func MinFloat(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}

// Clamp restricts value to the inclusive range [low, high].
func Clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}

	if value > high {
		return high
	}

	return value
}
