package geometry

// CurveEquation maps a fraction t in [0,1] to a point on the curve. Built
// once from control points, evaluated repeatedly.
type CurveEquation func(t float64) Point

// BezierQuadratic builds the degree-2 Bézier equation via De Casteljau's
// construction: two nested lerps, not the expanded polynomial. Coincident
// control points are a precondition violation, not guarded.
func BezierQuadratic(start, control, end Point) CurveEquation {
	startSide := LerpMaker(start, control)
	endSide := LerpMaker(control, end)

	return func(t float64) Point {
		return Lerp(startSide(t), endSide(t), t)
	}
}

// BezierCubic builds the degree-3 equation from degree 2: three pairwise
// lerps give the intermediate triangle, then the quadratic construction
// runs on it at the same t.
func BezierCubic(start, control1, control2, end Point) CurveEquation {
	side1 := LerpMaker(start, control1)
	side2 := LerpMaker(control1, control2)
	side3 := LerpMaker(control2, end)

	return func(t float64) Point {
		return BezierQuadratic(side1(t), side2(t), side3(t))(t)
	}
}
