// Package bezier holds the spline model of a rope: a single cubic Bezier
// segment given by four control points in the anchor's local space.
/*

A cubic Bezier segment is evaluated by the Bernstein blend

   B(t) = (1-t)³⋅P0 + 3(1-t)²t⋅P1 + 3(1-t)t²⋅P2 + t³⋅P3

P0 and P3 are the end points of the curve; P1 and P2 pull the curve
towards them but are, in general, never hit by any single t.

Usage

Clients create a spline once and overwrite its control points whenever
the geometry changes (typically once per frame):

   s := bezier.New()
   s.MustSetControl(3, mgl64.Vec3{0, 0, 10})
   p := s.Point(0.5)

The parameter t is not clamped. For t outside [0,1] the cubic polynomial is
simply extrapolated.


BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezier

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// AsString returns a spline as a (debugging) string, similar to MetaFont's
// output for a path with control points:
//
//	(0,0,0) .. controls (1.0000,0.0000,3.0000) and (-1.0000,0.0000,7.0000)
//	  .. (0,0,10)
func AsString(s *Spline) string {
	if s == nil {
		return "<nil spline>"
	}
	return fmt.Sprintf("%s .. controls %s and %s\n  .. %s",
		ptstring(s.ctrl[0], false), ptstring(s.ctrl[1], true),
		ptstring(s.ctrl[2], true), ptstring(s.ctrl[3], false))
}

func ptstring(p mgl64.Vec3, iscontrol bool) string {
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f,%.4f)", round(p[0]), round(p[1]), round(p[2]))
	}
	return fmt.Sprintf("(%.4g,%.4g,%.4g)", round(p[0]), round(p[1]), round(p[2]))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
