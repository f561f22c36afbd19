package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurveFromSamples(t *testing.T) {
	curve := CurveFromSamples([]Point{Pt(0, 0), Pt(2, 4), Pt(4, 0)})

	y, ok := curve(1)
	assert.True(t, ok)
	assert.InDelta(t, 2, y, 1e-12)

	y, ok = curve(3)
	assert.True(t, ok)
	assert.InDelta(t, 2, y, 1e-12)

	y, ok = curve(0)
	assert.True(t, ok)
	assert.InDelta(t, 0, y, 1e-12)

	y, ok = curve(4)
	assert.True(t, ok)
	assert.InDelta(t, 0, y, 1e-12)

	_, ok = curve(-0.5)
	assert.False(t, ok)

	_, ok = curve(4.5)
	assert.False(t, ok)
}

func TestCurveFromSamplesEmpty(t *testing.T) {
	curve := CurveFromSamples(nil)

	_, ok := curve(0)
	assert.False(t, ok)
}

func TestRasterizeBezierQuadratic(t *testing.T) {
	start := Pt(0, 0)
	end := Pt(10, 10)
	control := Pt(5, 0)

	points := RasterizeBezierQuadratic(start, end, control)

	assert.Len(t, points, 11)

	for idx, p := range points {
		assert.EqualValues(t, idx, p.X())
		assert.EqualValues(t, p.Y(), float64(int(p.Y())))
	}

	assert.EqualValues(t, 0, points[0].Y())
	assert.EqualValues(t, 10, points[10].Y())

	// control below the chord keeps the profile under the diagonal
	for _, p := range points[1:10] {
		assert.Less(t, p.Y(), p.X())
	}
}

func TestRasterizeBezierQuadraticNarrow(t *testing.T) {
	points := RasterizeBezierQuadratic(Pt(3, 5), Pt(3, 5), Pt(3, 5))

	assert.Len(t, points, 1)
	assert.EqualValues(t, 3, points[0].X())
	assert.EqualValues(t, 5, points[0].Y())
}
