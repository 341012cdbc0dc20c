/*
Package cable implements the geometry for ropes and cables which are drawn as
cubic Bezier curves between an anchor and a (moving) target.

The root package holds numeric predicates, 3D vector helpers and poses.
Sub-packages contain the spline model (bezier), offset curves (curve),
color ramps (ramp), 2D footprints (polygon) and the per-frame rope
controller (rope).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package cable

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cable'
func tracer() tracing.Trace {
	return tracing.Select("cable")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Clamp restricts n to [lo,hi]. NaN is clamped to lo.
func Clamp(n, lo, hi float64) float64 {
	if !(n >= lo) {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// === Vectors ===============================================================

// Origin represents the frequently used constant (0,0,0).
var Origin = mgl64.Vec3{}

// Unit axes of the local frame. Up is +Y, forward is +Z and right is +X,
// i.e. Cross(Up, Forward) = Right.
var (
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
	Right   = mgl64.Vec3{1, 0, 0}
)

// V is a quick notation for constructing a vector from floats.
func V(x, y, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x, y, z}
}

// IsZero is a predicate: is every component of v = 0 ?
func IsZero(v mgl64.Vec3) bool {
	return Is0(v[0]) && Is0(v[1]) && Is0(v[2])
}

// IsFinite is a predicate: does v contain neither NaN nor Inf?
func IsFinite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// ZapV rounds each component of v to 0 if it "means" to be zero.
func ZapV(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{Zap(v[0]), Zap(v[1]), Zap(v[2])}
}

// Equal compares two vectors componentwise, up to Epsilon.
func Equal(v, w mgl64.Vec3) bool {
	return IsZero(v.Sub(w))
}

// Direction splits v into a unit direction and its length. For vectors of
// length (almost) 0 the direction is the zero vector; Direction never
// produces NaNs.
func Direction(v mgl64.Vec3) (mgl64.Vec3, float64) {
	l := v.Len()
	if Is0(l) {
		tracer().Debugf("degenerate direction for %s", VString(v))
		return Origin, l
	}
	return v.Mul(1 / l), l
}

// VString is a pretty Stringer for vectors.
func VString(v mgl64.Vec3) string {
	return fmt.Sprintf("(%g,%g,%g)", v[0], v[1], v[2])
}

// === Poses =================================================================

// Pose is a position together with a rotation. It is the minimal transform
// a rope needs to know about its anchor and target.
type Pose struct {
	pos mgl64.Vec3
	rot mgl64.Quat
}

// NewPose creates a pose. The rotation will be normalized; a zero
// quaternion is taken as the identity rotation.
func NewPose(pos mgl64.Vec3, rot mgl64.Quat) Pose {
	return Pose{pos: pos, rot: normalized(rot)}
}

// At creates an unrotated pose at pos.
func At(pos mgl64.Vec3) Pose {
	return Pose{pos: pos, rot: mgl64.QuatIdent()}
}

func normalized(q mgl64.Quat) mgl64.Quat {
	if Is0(q.Len()) {
		return mgl64.QuatIdent()
	}
	return q.Normalize()
}

// Position returns the pose's position.
func (p Pose) Position() mgl64.Vec3 {
	return p.pos
}

// Rotation returns the pose's rotation.
func (p Pose) Rotation() mgl64.Quat {
	return normalized(p.rot)
}

// Up returns the pose's up-axis, i.e. Up rotated by the pose's rotation.
func (p Pose) Up() mgl64.Vec3 {
	return p.Rotation().Rotate(Up)
}

// Forward returns the pose's forward-axis.
func (p Pose) Forward() mgl64.Vec3 {
	return p.Rotation().Rotate(Forward)
}

// ToLocal expresses a world position w relative to the pose.
func (p Pose) ToLocal(w mgl64.Vec3) mgl64.Vec3 {
	return p.Rotation().Inverse().Rotate(w.Sub(p.pos))
}

// ToWorld maps a position l, given relative to the pose, to world space.
func (p Pose) ToWorld(l mgl64.Vec3) mgl64.Vec3 {
	return p.pos.Add(p.Rotation().Rotate(l))
}

// Shifted returns a new pose translated by v.
func (p Pose) Shifted(v mgl64.Vec3) Pose {
	return Pose{pos: p.pos.Add(v), rot: p.Rotation()}
}

// Rotated returns a new pose, additionally rotated around axis by theta
// (radians, counterclockwise). The position is unchanged.
func (p Pose) Rotated(theta float64, axis mgl64.Vec3) Pose {
	q := mgl64.QuatRotate(theta, axis)
	return Pose{pos: p.pos, rot: normalized(q.Mul(p.Rotation()))}
}

// Debug Stringer for a pose.
func (p Pose) String() string {
	q := p.Rotation()
	return fmt.Sprintf("pose[%s|%g,%s]", VString(p.pos), q.W, VString(q.V))
}
