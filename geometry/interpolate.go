package geometry

import (
	"fmt"
	"math"

	"github.com/sgostarter/libeasygo/cuserror"
)

type Mode string

const (
	ModeLinear          Mode = "linear"
	ModeQuadraticBezier Mode = "quadratic-bezier"
	ModeCubicBezier     Mode = "cubic-bezier"
	ModeEaseIn          Mode = "ease-in"
	ModeEaseOut         Mode = "ease-out"
	ModeEaseInOut       Mode = "ease-in-out"
	ModeStepUp          Mode = "step-up"
	ModeStepDown        Mode = "step-down"
)

const (
	DefaultEase = 0.42

	defaultStepFraction = 0.1
)

type StepOptions struct {
	Fraction float64 `yaml:"fraction" json:"fraction"`
	Ranges   Point   `yaml:"ranges" json:"ranges"`
}

type Options struct {
	Mode Mode `yaml:"mode" json:"mode"`

	Control1 Point `yaml:"control1,omitempty" json:"control1,omitempty"`
	Control2 Point `yaml:"control2,omitempty" json:"control2,omitempty"`

	// Ease should stay within (0, 0.5]; zero means DefaultEase. Values
	// outside the range are accepted and yield non-monotonic curves.
	Ease float64 `yaml:"ease,omitempty" json:"ease,omitempty"`

	Step *StepOptions `yaml:"step,omitempty" json:"step,omitempty"`

	// ActiveDimensions selects which axes get interpolated; an unselected
	// axis is pinned to the start point's value. Nil selects all axes.
	ActiveDimensions []bool `yaml:"active_dimensions,omitempty" json:"active_dimensions,omitempty"`
}

// InterpolateNPoints evaluates count evenly spaced interior points at
// t = 1/(count+1) .. count/(count+1). The endpoints themselves are excluded.
func InterpolateNPoints(eq CurveEquation, count int) []Point {
	points := make([]Point, 0, count)

	for idx := 1; idx <= count; idx++ {
		points = append(points, eq(float64(idx)/float64(count+1)))
	}

	return points
}

type modeFn func(start, end Point, count int, opts Options) []Point

var modeFns = map[Mode]modeFn{
	ModeLinear:          interpolateLinear,
	ModeQuadraticBezier: interpolateQuadraticBezier,
	ModeCubicBezier:     interpolateCubicBezier,
	ModeEaseIn:          interpolateEaseIn,
	ModeEaseOut:         interpolateEaseOut,
	ModeEaseInOut:       interpolateEaseInOut,
	ModeStepUp:          interpolateStepUp,
	ModeStepDown:        interpolateStepDown,
}

// Interpolate produces intermediate points between start and end according
// to opts.Mode. Curve modes return count points; step modes return count+1.
// An unknown mode is a caller error, not a condition to branch on.
func Interpolate(start, end Point, count int, opts Options) ([]Point, error) {
	fn, ok := modeFns[opts.Mode]
	if !ok {
		return nil, cuserror.NewWithErrorMsg(fmt.Sprintf("unsupported interpolation mode: %s", opts.Mode))
	}

	return maskDimensions(start, fn(start, end, count, opts), opts.ActiveDimensions), nil
}

func maskDimensions(start Point, points []Point, active []bool) []Point {
	if len(active) == 0 {
		return points
	}

	for _, p := range points {
		for dim := range p {
			if dim < len(active) && !active[dim] {
				p[dim] = start[dim]
			}
		}
	}

	return points
}

func easeOf(opts Options) float64 {
	if opts.Ease == 0 {
		return DefaultEase
	}

	return opts.Ease
}

func interpolateLinear(start, end Point, count int, _ Options) []Point {
	return InterpolateNPoints(LerpMaker(start, end), count)
}

func interpolateQuadraticBezier(start, end Point, count int, opts Options) []Point {
	control := opts.Control1
	if control == nil {
		control = start
	}

	return InterpolateNPoints(BezierQuadratic(start, control, end), count)
}

func interpolateCubicBezier(start, end Point, count int, opts Options) []Point {
	control1 := opts.Control1
	if control1 == nil {
		control1 = start
	}

	control2 := opts.Control2
	if control2 == nil {
		control2 = end
	}

	return InterpolateNPoints(BezierCubic(start, control1, control2, end), count)
}

// The ease controls scale the end point itself, not the start/end delta, so
// the curve shape depends on start only through the Bézier evaluation. That
// matches the historical behavior downstream renderers expect.
func interpolateEaseIn(start, end Point, count int, opts Options) []Point {
	return InterpolateNPoints(BezierQuadratic(start, end.Scale(easeOf(opts)), end), count)
}

func interpolateEaseOut(start, end Point, count int, opts Options) []Point {
	return InterpolateNPoints(BezierQuadratic(start, end.Scale(1-easeOf(opts)), end), count)
}

func interpolateEaseInOut(start, end Point, count int, opts Options) []Point {
	ease := easeOf(opts)

	return InterpolateNPoints(BezierCubic(start, end.Scale(ease), end.Scale(1-ease), end), count)
}

// Step modes are not curve based: a fixed per-dimension step is applied
// repeatedly from start, producing count+1 points that include the first
// step but not start itself. Ranges defaulting uses end for step-up and
// start for step-down; the asymmetry is deliberate.
func interpolateStepUp(start, end Point, count int, opts Options) []Point {
	fraction, ranges := stepDefaults(opts, end)

	return stepSeries(start, count, func(dim int, v float64) float64 {
		return math.Min(v+fraction*ranges[dim], ranges[dim])
	})
}

func interpolateStepDown(start, _ Point, count int, opts Options) []Point {
	fraction, ranges := stepDefaults(opts, start)

	return stepSeries(start, count, func(dim int, v float64) float64 {
		return math.Max(v-fraction*ranges[dim], 0)
	})
}

func stepDefaults(opts Options, from Point) (fraction float64, ranges Point) {
	fraction = defaultStepFraction
	ranges = from

	if opts.Step == nil {
		return
	}

	if opts.Step.Fraction != 0 {
		fraction = opts.Step.Fraction
	}

	if opts.Step.Ranges != nil {
		ranges = opts.Step.Ranges
	}

	return
}

func stepSeries(start Point, count int, next func(dim int, v float64) float64) []Point {
	points := make([]Point, 0, count+1)

	cur := start

	for n := 0; n <= count; n++ {
		p := make(Point, len(cur))

		for dim := range cur {
			p[dim] = next(dim, cur[dim])
		}

		points = append(points, p)
		cur = p
	}

	return points
}
