package rope

import (
	polyclip "github.com/akavel/polyclip-go"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/cable/bezier"
	"github.com/npillmayer/cable/polygon"
)

// Frame is the output of a single tick.
type Frame struct {
	Points   []mgl64.Vec3 // polyline in anchor space; valid until the next tick
	Controls Controls
	Style    Style
}

// Controller re-shapes a rope every frame. It owns the rope's spline and
// polyline buffer; anchor, target and render surface are collaborators
// owned by the host.
type Controller struct {
	anchor   Anchor
	target   Locator
	surface  Surface
	spline   *bezier.Spline
	config   Config
	controls Controls
	points   []mgl64.Vec3
	ready    bool
}

// NewController creates a controller for a rope from anchor to target.
// The configuration is clamped into its valid ranges. Either collaborator
// may be nil and be supplied later.
func NewController(anchor Anchor, target Locator, cfg Config) *Controller {
	return &Controller{
		anchor: anchor,
		target: target,
		config: cfg.Clamped(),
		points: make([]mgl64.Vec3, 0, MaxSamples),
	}
}

// Attach connects a render surface. The controller will (re-)initialize on
// the next call to EnsureReady or Tick.
func (c *Controller) Attach(s Surface) {
	c.surface = s
	c.ready = false
}

// SetAnchor replaces the rope's anchor.
func (c *Controller) SetAnchor(a Anchor) {
	c.anchor = a
}

// SetTarget replaces the rope's target, e.g. when a new projectile is fired.
func (c *Controller) SetTarget(t Locator) {
	c.target = t
}

// SetConfig replaces the configuration, clamped into valid ranges. If the
// controller is ready, the new style is applied immediately.
func (c *Controller) SetConfig(cfg Config) {
	c.config = cfg.Clamped()
	if c.ready {
		c.applyStyle()
	}
}

// Config returns the (clamped) configuration in use.
func (c *Controller) Config() Config {
	return c.config
}

// EnsureReady initializes the controller: it creates the spline, configures
// the render surface and applies the style. It returns false if anchor,
// target or surface are still missing, in which case the next call tries
// again. Calling EnsureReady on a ready controller does nothing.
func (c *Controller) EnsureReady() bool {
	if c.ready {
		return true
	}
	if c.surface == nil || c.anchor == nil || c.target == nil {
		tracer().Debugf("rope not ready: surface=%t anchor=%t target=%t",
			c.surface != nil, c.anchor != nil, c.target != nil)
		return false
	}
	if c.spline == nil {
		c.spline = bezier.New()
	}
	if conf, ok := c.surface.(SurfaceConfigurer); ok {
		conf.Configure(DefaultSurfaceOptions)
	}
	c.applyStyle()
	c.ready = true
	tracer().Infof("rope ready with %d samples", c.config.Samples)
	return true
}

// Tick is the per-frame hook of a rope. It derives the control points from
// the current geometry, samples the spline and pushes the polyline and the
// style to the render surface. If the controller cannot be made ready, Tick
// does nothing and returns false.
//
// Ticks do not accumulate state: identical geometry and configuration give
// identical frames.
func (c *Controller) Tick() (Frame, bool) {
	if !c.EnsureReady() {
		return Frame{}, false
	}
	c.UpdateControlPoints()
	style := c.UpdateRender()
	return Frame{
		Points:   c.points,
		Controls: c.controls,
		Style:    style,
	}, true
}

// UpdateControlPoints derives the control points from the current geometry
// and writes them into the spline. It returns the inner control points
// C1 and C2. Without anchor or target the spline is left unchanged.
func (c *Controller) UpdateControlPoints() (mgl64.Vec3, mgl64.Vec3) {
	if c.anchor == nil || c.target == nil {
		return c.controls.C1, c.controls.C2
	}
	if c.spline == nil {
		c.spline = bezier.New()
	}
	c.controls = DeriveControls(GeometryOf(c.anchor, c.target), c.config)
	for i, p := range c.controls.Points() {
		if err := c.spline.SetControl(i, p); err != nil {
			tracer().Errorf("rope spline: %v", err)
		}
	}
	return c.controls.C1, c.controls.C2
}

// UpdateRender samples the spline into the polyline and pushes positions,
// widths and color to the render surface. It returns the applied style.
func (c *Controller) UpdateRender() Style {
	if c.spline == nil {
		c.spline = bezier.New()
	}
	c.points = SamplePolyline(c.spline, c.config.Samples, c.points)
	if c.surface != nil {
		c.surface.SetPositions(c.points)
	}
	return c.applyStyle()
}

func (c *Controller) applyStyle() Style {
	style := StyleFor(c.config)
	if c.surface != nil {
		c.surface.SetWidths(style.StartWidth, style.EndWidth)
		c.surface.SetColorRamp(style.Colors)
	}
	return style
}

// --- Diagnostics -----------------------------------------------------------

// ControlPoints returns the inner control points C1 and C2 of the last
// update, in the anchor's local space.
func (c *Controller) ControlPoints() (mgl64.Vec3, mgl64.Vec3) {
	return c.controls.C1, c.controls.C2
}

// WorldControlPoints returns the inner control points of the last update in
// world space, e.g. for drawing gizmos. Without an anchor the local points
// are returned.
func (c *Controller) WorldControlPoints() (mgl64.Vec3, mgl64.Vec3) {
	return c.toWorld(c.controls.C1), c.toWorld(c.controls.C2)
}

// Spline returns the rope's spline, or nil before the first update.
func (c *Controller) Spline() *bezier.Spline {
	return c.spline
}

// Points returns the polyline of the last update, in the anchor's local
// space. The slice is re-used by the next update.
func (c *Controller) Points() []mgl64.Vec3 {
	return c.points
}

// Bounds returns the bounding rectangle of the rope's polyline, in world
// space and projected onto plane. It is the zero rectangle before the
// first update.
func (c *Controller) Bounds(plane polygon.Plane) polyclip.Rectangle {
	return c.Footprint(plane).BoundingBox()
}

// Footprint returns the rope's polyline in world space, projected onto plane.
func (c *Controller) Footprint(plane polygon.Plane) *polygon.Polygon {
	world := make([]mgl64.Vec3, len(c.points))
	for i, p := range c.points {
		world[i] = c.toWorld(p)
	}
	return polygon.Project(world, plane)
}

func (c *Controller) toWorld(p mgl64.Vec3) mgl64.Vec3 {
	if c.anchor == nil {
		return p
	}
	q := c.anchor.Rotation()
	if q.Len() == 0 {
		q = mgl64.QuatIdent()
	}
	return c.anchor.Position().Add(q.Normalize().Rotate(p))
}
