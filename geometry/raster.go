package geometry

import (
	"github.com/sgostarter/libsketch/collections"
	"github.com/sgostarter/libsketch/mathutils"
)

// rasterOversample is the fixed parametric oversampling factor used before
// scanline evaluation. 2x the range width is enough to avoid visible
// aliasing on the small ranges (tens of pixels) this is used for.
const rasterOversample = 2

// CurveFromSamples builds a y=f(x) equation from ordered 2-D samples with
// monotonically increasing X, linearly interpolating between the two
// bracketing samples. The second return is false for x outside the sampled
// domain: there is no extrapolation.
func CurveFromSamples(samples []Point) func(x float64) (float64, bool) {
	return func(x float64) (float64, bool) {
		if len(samples) == 0 {
			return 0, false
		}

		if x < samples[0].X() || x > samples[len(samples)-1].X() {
			return 0, false
		}

		idx, ok := collections.FindIndexWhere(samples, func(p Point) bool {
			return p.X() >= x
		})
		if !ok {
			return 0, false
		}

		if idx == 0 {
			return samples[0].Y(), true
		}

		p1 := samples[idx-1]
		p2 := samples[idx]

		if p1.X() == p2.X() {
			return p2.Y(), true
		}

		return LineEquation(p1, p2)(x), true
	}
}

// RasterizeBezierQuadratic converts the continuous curve into one rounded Y
// per integer X in [start.X, end.X] inclusive, ascending. The curve's X must
// grow monotonically with t (control X inside the start/end span).
func RasterizeBezierQuadratic(start, end, control Point) []Point {
	eq := BezierQuadratic(start, control, end)

	startX := mathutils.Round(start.X())
	endX := mathutils.Round(end.X())

	steps := rasterOversample * (endX - startX)
	if steps < 1 {
		steps = 1
	}

	samples := make([]Point, 0, steps+1)

	for idx := 0; idx <= steps; idx++ {
		samples = append(samples, eq(float64(idx)/float64(steps)))
	}

	curve := CurveFromSamples(samples)

	points := make([]Point, 0, endX-startX+1)

	for x := startX; x <= endX; x++ {
		// rounding can push the first/last scanline just outside the
		// sampled span
		sx := mathutils.Clamp(float64(x), start.X(), end.X())

		y, ok := curve(sx)
		if !ok {
			y = samples[0].Y()
		}

		points = append(points, Pt(float64(x), float64(mathutils.Round(y))))
	}

	return points
}
