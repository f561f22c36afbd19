package geometry

// Point is an ordered fixed-length sequence of coordinates. The dimension is
// arbitrary (N >= 1) but must be consistent across the points of one
// operation; most callers use N=2 with X at index 0 and Y at index 1.
type Point []float64

func Pt(coords ...float64) Point {
	return coords
}

func (p Point) X() float64 {
	return p[0]
}

func (p Point) Y() float64 {
	return p[1]
}

func (p Point) Clone() Point {
	return append(Point{}, p...)
}

// Scale multiplies every coordinate by factor.
func (p Point) Scale(factor float64) Point {
	newP := make(Point, len(p))

	for idx := range p {
		newP[idx] = p[idx] * factor
	}

	return newP
}

// Lerp linearly interpolates between two points of the same dimension.
func Lerp(p1, p2 Point, t float64) Point {
	return LerpMaker(p1, p2)(t)
}

// LerpMaker precomputes the p2-p1 delta and returns an equation of t alone,
// for repeated evaluation at many fractions.
func LerpMaker(p1, p2 Point) CurveEquation {
	delta := make(Point, len(p1))

	for idx := range p1 {
		delta[idx] = p2[idx] - p1[idx]
	}

	return func(t float64) Point {
		p := make(Point, len(p1))

		for idx := range p1 {
			p[idx] = p1[idx] + t*delta[idx]
		}

		return p
	}
}

// LineEquation returns the y=f(x) equation of the straight line through two
// 2-D points. Vertical lines (p1.X == p2.X) are a precondition violation:
// the division is not guarded.
func LineEquation(p1, p2 Point) func(x float64) float64 {
	slope := (p2.Y() - p1.Y()) / (p2.X() - p1.X())
	intercept := p1.Y() - slope*p1.X()

	return func(x float64) float64 {
		return slope*x + intercept
	}
}
