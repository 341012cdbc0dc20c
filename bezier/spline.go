package bezier

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bezier'
func tracer() tracing.Trace {
	return tracing.Select("bezier")
}

// NControls is the number of control points of a cubic segment.
const NControls = 4

// ErrIndexOutOfRange indicates a control point index outside of [0,3].
var ErrIndexOutOfRange = errors.New("control point index out of range")

// Spline is a cubic Bezier segment. Control point 0 is the start of the
// curve, control point 3 its end. The zero value is a spline collapsed to
// the origin and ready to use.
type Spline struct {
	ctrl [NControls]mgl64.Vec3
}

// New creates a spline with all control points at the origin.
func New() *Spline {
	return &Spline{}
}

// SetControl sets control point i to p. Indices outside of [0,3] are
// rejected with ErrIndexOutOfRange; they are never clamped.
func (s *Spline) SetControl(i int, p mgl64.Vec3) error {
	if i < 0 || i >= NControls {
		tracer().Errorf("cannot set control point %d", i)
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	s.ctrl[i] = p
	return nil
}

// MustSetControl is like SetControl, but panics on an invalid index.
func (s *Spline) MustSetControl(i int, p mgl64.Vec3) *Spline {
	if err := s.SetControl(i, p); err != nil {
		panic(err)
	}
	return s
}

// Control returns control point i.
func (s *Spline) Control(i int) (mgl64.Vec3, error) {
	if i < 0 || i >= NControls {
		return mgl64.Vec3{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return s.ctrl[i], nil
}

// Controls returns a copy of all four control points.
func (s *Spline) Controls() [NControls]mgl64.Vec3 {
	return s.ctrl
}

// Point returns the position on the curve for parameter t.
// t is not clamped: values outside [0,1] extrapolate the cubic.
// At t = 0 and t = 1 the result is exactly control point 0 and 3, respectively.
func (s *Spline) Point(t float64) mgl64.Vec3 {
	b0, b1, b2, b3 := bernstein(t)
	return s.ctrl[0].Mul(b0).
		Add(s.ctrl[1].Mul(b1)).
		Add(s.ctrl[2].Mul(b2)).
		Add(s.ctrl[3].Mul(b3))
}

// Tangent returns the first derivative dB/dt at t.
func (s *Spline) Tangent(t float64) mgl64.Vec3 {
	mt := 1 - t
	d0 := s.ctrl[1].Sub(s.ctrl[0]).Mul(3 * mt * mt)
	d1 := s.ctrl[2].Sub(s.ctrl[1]).Mul(6 * mt * t)
	d2 := s.ctrl[3].Sub(s.ctrl[2]).Mul(3 * t * t)
	return d0.Add(d1).Add(d2)
}

// Cubic Bernstein basis polynomials at t. For t = 0 and t = 1 exactly
// one of them is 1, the others are 0.
func bernstein(t float64) (float64, float64, float64, float64) {
	mt := 1 - t
	return mt * mt * mt, 3 * mt * mt * t, 3 * mt * t * t, t * t * t
}
