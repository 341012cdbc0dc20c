/*
Package polygon deals with 2D polygons and polylines, as footprints of
3D curves projected onto a plane. Footprints are used for culling and for
debug output; the heavy lifting is done by polyclip.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/schuko/tracing"
)

// L traces with key 'polygon'.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is a sequence of knots, either open (a polyline) or closed.
// To construct a polygon, start with NullPolygon() and extend it.
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls:
//
//	pg := NullPolygon().Knot(P(0, 0)).Knot(P(1, 3)).Knot(P(3, 0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// P is a quick notation for a 2D point.
func P(x, y float64) polyclip.Point {
	return polyclip.Point{X: x, Y: y}
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p polyclip.Point) *Polygon {
	pg.contour.Add(p)
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End leaves the polygon open. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Pt returns knot i.
func (pg *Polygon) Pt(i int) polyclip.Point {
	return pg.contour[i]
}

// Box creates a closed rectangle from two opposite corners.
func Box(a, b polyclip.Point) *Polygon {
	minx, maxx := math.Min(a.X, b.X), math.Max(a.X, b.X)
	miny, maxy := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return NullPolygon().Knot(P(minx, miny)).Knot(P(maxx, miny)).
		Knot(P(maxx, maxy)).Knot(P(minx, maxy)).Cycle()
}

// BoundingBox returns the smallest axis-aligned rectangle containing every
// knot. The bounding box of an empty polygon is the zero rectangle.
func (pg *Polygon) BoundingBox() polyclip.Rectangle {
	if pg == nil || pg.N() == 0 {
		return polyclip.Rectangle{}
	}
	return pg.contour.BoundingBox()
}

// Contains is a predicate: does a closed polygon contain p?
// Open polygons contain nothing.
func (pg *Polygon) Contains(p polyclip.Point) bool {
	if !pg.cycle || pg.N() < 3 {
		return false
	}
	return pg.contour.Contains(p)
}

// Overlaps is a predicate: do the bounding boxes of two polygons intersect?
func Overlaps(a, b *Polygon) bool {
	if a.N() == 0 || b.N() == 0 {
		return false
	}
	return a.BoundingBox().Overlaps(b.BoundingBox())
}

// Plane selects two of the three coordinate axes.
type Plane int

// Planes for projecting 3D points.
const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneZY
)

// Project creates an open polygon from 3D points, dropping the coordinate
// orthogonal to plane.
func Project(points []mgl64.Vec3, plane Plane) *Polygon {
	pg := NullPolygon()
	for _, v := range points {
		switch plane {
		case PlaneXZ:
			pg.Knot(P(v[0], v[2]))
		case PlaneZY:
			pg.Knot(P(v[2], v[1]))
		default:
			pg.Knot(P(v[0], v[1]))
		}
	}
	return pg.End()
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i, p := range pg.contour {
		if i > 0 {
			b.WriteString(" -- ")
		}
		fmt.Fprintf(&b, "(%.4g,%.4g)", p.X, p.Y)
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}
