package mathutils

import "math"

type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

// Fraction clamps v into [0, 1].
func Fraction(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Round rounds to the nearest integer, halves away from zero.
func Round(v float64) int {
	return int(math.Round(v))
}

func RoundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))

	return math.Round(v*scale) / scale
}
