package rotladder

import "math"

const (
	// ScaleGap is the base per-tick scale increment.
	ScaleGap = 0.05
	// ScaleDiv is the threshold at which the increment switches rate.
	ScaleDiv = 0.51

	// lines is the number of rotating segments per glyph. It also divides the
	// increment below ScaleDiv.
	lines = 2
)

// ScaleFactor returns the coarse step index floor(scale / ScaleDiv).
func ScaleFactor(scale float64) float64 {
	return math.Floor(scale / ScaleDiv)
}

// MaxScale returns the part of scale above the i-th of n sub-ranges, never
// negative.
func MaxScale(scale float64, i, n int) float64 {
	return math.Max(0, scale-float64(i)/float64(n))
}

// DivideScale maps scale onto the i-th of n equal sub-ranges and normalizes
// the result to [0, 1].
func DivideScale(scale float64, i, n int) float64 {
	return math.Min(1/float64(n), MaxScale(scale, i, n)) * float64(n)
}

// MirrorScale blends between 1/a and 1/b using ScaleFactor(scale).
// a and b must be nonzero.
func MirrorScale(scale, a, b float64) float64 {
	k := ScaleFactor(scale)
	return (1-k)/a + k/b
}

// UpdateValue returns the signed scale delta for one tick.
func UpdateValue(scale float64, dir int, a, b float64) float64 {
	return MirrorScale(scale, a, b) * float64(dir) * ScaleGap
}
