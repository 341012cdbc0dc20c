package rope

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/gg"
	"github.com/npillmayer/cable/ramp"
)

// Evaluator maps a curve parameter t to a position. *bezier.Spline is an
// Evaluator.
type Evaluator interface {
	Point(t float64) mgl64.Vec3
}

// SamplePolyline evaluates n points of s, evenly spaced in parameter space:
// point i is s.Point(i/(n-1)), including both t = 0 and t = 1.
// The points are written to dst, which is grown if its capacity is too small.
// n must be at least 2.
func SamplePolyline(s Evaluator, n int, dst []mgl64.Vec3) []mgl64.Vec3 {
	if cap(dst) < n {
		dst = make([]mgl64.Vec3, n)
	}
	dst = dst[:n]
	last := float64(n - 1)
	for i := range dst {
		dst[i] = s.Point(float64(i) / last)
	}
	return dst
}

// Style is the look of a rope for one frame.
type Style struct {
	StartWidth float64
	EndWidth   float64
	Color      gg.RGBA    // the rope's flat color
	Colors     *ramp.Ramp // flat ramp of Color, for the render surface
}

// StyleFor selects the style of a rope from its configuration. The color
// ramp is evaluated once, at ColorT, giving a single color for the whole
// rope. A missing ramp selects white.
func StyleFor(cfg Config) Style {
	c := gg.White
	if cfg.Colors != nil {
		c = cfg.Colors.Evaluate(cfg.ColorT)
	}
	return Style{
		StartWidth: cfg.Thickness,
		EndWidth:   cfg.Thickness,
		Color:      c,
		Colors:     ramp.Solid(c),
	}
}
