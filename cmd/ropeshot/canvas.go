package main

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/gg"
	"github.com/npillmayer/cable"
	"github.com/npillmayer/cable/ramp"
	"github.com/npillmayer/cable/rope"
)

// canvas is a rope render surface drawing onto a gg context, looking down
// onto the world X/Z plane.
type canvas struct {
	dc         *gg.Context
	anchor     cable.Pose
	scale      float64
	points     []mgl64.Vec3
	start, end float64
	colors     *ramp.Ramp
	opts       rope.SurfaceOptions
}

var _ rope.Surface = (*canvas)(nil)
var _ rope.SurfaceConfigurer = (*canvas)(nil)

func newCanvas(dc *gg.Context, anchor cable.Pose, scale float64) *canvas {
	return &canvas{dc: dc, anchor: anchor, scale: scale}
}

func (c *canvas) SetPositions(points []mgl64.Vec3) {
	c.points = append(c.points[:0], points...)
}

func (c *canvas) SetWidths(start, end float64) {
	c.start, c.end = start, end
}

func (c *canvas) SetColorRamp(r *ramp.Ramp) {
	c.colors = r
}

func (c *canvas) Configure(opts rope.SurfaceOptions) {
	c.opts = opts
	if opts.CapVertices > 0 {
		c.dc.SetLineCap(gg.LineCapRound)
	}
	if opts.CornerVertices > 0 {
		c.dc.SetLineJoin(gg.LineJoinRound)
	}
}

// pixel maps a world position onto the image.
func (c *canvas) pixel(w mgl64.Vec3) (float64, float64) {
	x := float64(c.dc.Width())/2 + w[0]*c.scale
	y := float64(c.dc.Height())*0.9 - w[2]*c.scale
	return x, y
}

func (c *canvas) world(p mgl64.Vec3) mgl64.Vec3 {
	if c.opts.LocalSpace {
		return c.anchor.ToWorld(p)
	}
	return p
}

// draw strokes the polyline segment by segment, with width and color
// interpolated along the rope.
func (c *canvas) draw() error {
	n := len(c.points)
	for i := 1; i < n; i++ {
		t := float64(i-1) / float64(n-1)
		col := c.colors.Evaluate(t)
		c.dc.SetRGBA(col.R, col.G, col.B, col.A)
		c.dc.SetLineWidth((c.start + (c.end-c.start)*t) * c.scale)
		x0, y0 := c.pixel(c.world(c.points[i-1]))
		x1, y1 := c.pixel(c.world(c.points[i]))
		c.dc.DrawLine(x0, y0, x1, y1)
		if err := c.dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// gizmo marks a world position with a small green circle.
func (c *canvas) gizmo(w mgl64.Vec3) {
	x, y := c.pixel(w)
	c.dc.SetRGBA(0, 1, 0, 1)
	c.dc.SetLineWidth(1)
	c.dc.DrawCircle(x, y, 0.1*c.scale)
	_ = c.dc.Stroke()
}
