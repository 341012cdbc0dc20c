package rope

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/cable"
)

// Geometry is a snapshot of the anchor's and target's transforms, taken
// once per frame.
type Geometry struct {
	AnchorPosition mgl64.Vec3
	AnchorRotation mgl64.Quat
	AnchorUp       mgl64.Vec3
	TargetPosition mgl64.Vec3
}

// GeometryOf takes a snapshot of an anchor and a target.
func GeometryOf(anchor Anchor, target Locator) Geometry {
	return Geometry{
		AnchorPosition: anchor.Position(),
		AnchorRotation: anchor.Rotation(),
		AnchorUp:       anchor.Up(),
		TargetPosition: target.Position(),
	}
}

// Controls are the four control points of a rope's spline, in the anchor's
// local space. Start is always the origin, End the target's local position.
type Controls struct {
	Start, C1, C2, End mgl64.Vec3
}

// Points returns the control points as an array, in spline order.
func (c Controls) Points() [4]mgl64.Vec3 {
	return [4]mgl64.Vec3{c.Start, c.C1, c.C2, c.End}
}

// DeriveControls calculates the control points of a rope for a given
// geometry and configuration.
//
// The anchor→target vector is expressed in the anchor's local frame. Its
// length L and direction f span the rope's forward axis, and r = up × f is
// the lateral axis (not normalized). With m = OffsetCurve(OffsetTime):
//
//	C1 = f⋅L⋅ForwardOffset1 + r⋅RightOffset1⋅m
//	C2 = f⋅L⋅ForwardOffset2 + r⋅RightOffset2⋅m
//
// If anchor and target coincide, f is the zero vector and only the lateral
// terms remain. If up and f are parallel, r collapses to (almost) zero.
// Neither case is an error and neither produces NaNs.
func DeriveControls(g Geometry, cfg Config) Controls {
	delta := local(g.AnchorRotation).Rotate(g.TargetPosition.Sub(g.AnchorPosition))
	forward, length := cable.Direction(delta)
	right := g.AnchorUp.Cross(forward)
	m := 0.0
	if cfg.OffsetCurve != nil {
		m = cfg.OffsetCurve.Evaluate(cfg.OffsetTime)
	}
	c := Controls{
		Start: cable.Origin,
		C1:    forward.Mul(length * cfg.ForwardOffset1).Add(right.Mul(cfg.RightOffset1 * m)),
		C2:    forward.Mul(length * cfg.ForwardOffset2).Add(right.Mul(cfg.RightOffset2 * m)),
		End:   forward.Mul(length),
	}
	tracer().Debugf("rope length %g, controls %s and %s", length, cable.VString(c.C1), cable.VString(c.C2))
	return c
}

// Inverse of the anchor's rotation. A zero quaternion counts as no rotation.
func local(q mgl64.Quat) mgl64.Quat {
	if cable.Is0(q.Len()) {
		return mgl64.QuatIdent()
	}
	return q.Normalize().Inverse()
}
