/*
Package rope draws a rope (or cable, or tether) between an anchor and a
target, e.g. a grappling hook and its projectile.

Each frame a Controller reads the anchor's and target's transforms,
derives the four control points of a cubic Bezier spline in the anchor's
local space, samples the spline into a polyline and hands the polyline,
together with width and color, to a render surface.

Control points 1 and 2 are placed along the anchor→target direction at
configurable fractions of the rope's length, and shifted sideways by
configurable amounts. The sideways shift is scaled by an offset curve, which
is evaluated at a (usually animated) offset time. This makes the rope
wiggle, sag or whip.

Usage

	ctrl := rope.NewController(anchor, projectile, rope.DefaultConfig())
	ctrl.Attach(surface)
	for running {
	    ctrl.Tick()
	}

The controller is not safe for concurrent use. It is meant to be driven
from a single render loop.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package rope

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/gg"
	"github.com/npillmayer/cable/ramp"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rope'
func tracer() tracing.Trace {
	return tracing.Select("rope")
}

// Anchor provides the transform of the rope's anchor. The rope lives in the
// anchor's local space.
type Anchor interface {
	Position() mgl64.Vec3
	Rotation() mgl64.Quat
	Up() mgl64.Vec3
}

// Locator provides the position of the rope's target.
type Locator interface {
	Position() mgl64.Vec3
}

// Curve is a 1D curve, mapping a time to a scalar.
type Curve interface {
	Evaluate(t float64) float64
}

// ColorRamp is a color gradient, evaluated at t ∈ [0,1].
type ColorRamp interface {
	Evaluate(t float64) gg.RGBA
}

// Surface is a renderer for a strip along a polyline, given in the anchor's
// local space.
type Surface interface {
	SetPositions(points []mgl64.Vec3) // the number of points is len(points)
	SetWidths(start, end float64)
	SetColorRamp(r *ramp.Ramp)
}

// SurfaceOptions are settings a Controller requests once from a surface.
type SurfaceOptions struct {
	LocalSpace     bool // positions are relative to the anchor
	CornerVertices int  // vertices used to round corners of the strip
	CapVertices    int  // vertices used to round the ends of the strip
}

// SurfaceConfigurer is implemented by surfaces which accept SurfaceOptions.
type SurfaceConfigurer interface {
	Configure(SurfaceOptions)
}

// DefaultSurfaceOptions are requested from every SurfaceConfigurer.
var DefaultSurfaceOptions = SurfaceOptions{
	LocalSpace:     true,
	CornerVertices: 4,
	CapVertices:    4,
}
