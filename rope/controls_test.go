package rope

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/cable"
	"github.com/npillmayer/cable/curve"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func straightAhead(distance float64) Geometry {
	return GeometryOf(cable.At(cable.Origin), cable.At(cable.V(0, 0, distance)))
}

func offsetConfig() Config {
	cfg := DefaultConfig()
	cfg.ForwardOffset1, cfg.ForwardOffset2 = 0.3, 0.7
	cfg.RightOffset1, cfg.RightOffset2 = 1, -0.5
	cfg.OffsetCurve = curve.Constant(0.8)
	return cfg
}

func assertVec(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	if !cable.Equal(want, got) {
		t.Errorf("expected %s, got %s", cable.VString(want), cable.VString(got))
	}
}

func TestConcreteScenario(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	cfg.ForwardOffset1 = 0.3
	cfg.RightOffset1 = 1
	cfg.OffsetCurve = curve.Constant(1)
	c := DeriveControls(straightAhead(10), cfg)
	// forward is +Z, right = up × forward = +X
	assertVec(t, cable.V(1, 0, 3), c.C1)
	assertVec(t, cable.Origin, c.Start)
	assertVec(t, cable.V(0, 0, 10), c.End)
}

func TestSymmetricOffsets(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := offsetConfig()
	cfg.ForwardOffset2 = cfg.ForwardOffset1
	cfg.RightOffset2 = cfg.RightOffset1
	g := GeometryOf(cable.At(cable.V(1, 2, 3)), cable.At(cable.V(-4, 7, 11)))
	c := DeriveControls(g, cfg)
	if c.C1 != c.C2 {
		t.Errorf("expected C1 == C2, have %s and %s", cable.VString(c.C1), cable.VString(c.C2))
	}
}

func TestScalingLaw(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := offsetConfig()
	near := DeriveControls(straightAhead(10), cfg)
	far := DeriveControls(straightAhead(20), cfg)
	// forward component (z) doubles, lateral component (x) stays
	assert.InDelta(t, 2*near.C1[2], far.C1[2], 1e-9)
	assert.InDelta(t, 2*near.C2[2], far.C2[2], 1e-9)
	assert.InDelta(t, near.C1[0], far.C1[0], 1e-9)
	assert.InDelta(t, near.C2[0], far.C2[0], 1e-9)
	assertVec(t, cable.V(0.8, 0, 3), near.C1)
	assertVec(t, cable.V(-0.4, 0, 7), near.C2)
}

func TestDegenerateLength(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := offsetConfig()
	p := cable.V(3, -1, 2)
	c := DeriveControls(GeometryOf(cable.At(p), cable.At(p)), cfg)
	for _, v := range c.Points() {
		assert.True(t, cable.IsFinite(v), "NaN or Inf in %s", cable.VString(v))
	}
	// forward term vanishes, right = up × 0 = 0
	right := cable.Up.Cross(cable.Origin)
	assertVec(t, right.Mul(cfg.RightOffset1*0.8), c.C1)
	assertVec(t, cable.Origin, c.End)
}

func TestParallelUp(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := offsetConfig()
	g := GeometryOf(cable.At(cable.Origin), cable.At(cable.V(0, 5, 0)))
	c := DeriveControls(g, cfg)
	// lateral basis collapses, only forward terms remain
	assertVec(t, cable.V(0, 1.5, 0), c.C1)
	assertVec(t, cable.V(0, 3.5, 0), c.C2)
	for _, v := range c.Points() {
		assert.True(t, cable.IsFinite(v))
	}
}

func TestRotatedAnchor(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := offsetConfig()
	anchor := cable.At(cable.V(1, 0, 0)).Rotated(math.Pi/2, cable.Up)
	g := GeometryOf(anchor, cable.At(cable.V(11, 0, 0)))
	c := DeriveControls(g, cfg)
	// the target lies on the anchor's local forward axis
	assertVec(t, cable.V(0, 0, 10), c.End)
	assertVec(t, cable.V(0.8, 0, 3), c.C1)
}

func TestNilOffsetCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := offsetConfig()
	cfg.OffsetCurve = nil
	c := DeriveControls(straightAhead(10), cfg)
	assertVec(t, cable.V(0, 0, 3), c.C1)
	assertVec(t, cable.V(0, 0, 7), c.C2)
}

func TestZeroRotation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := Geometry{
		AnchorUp:       cable.Up,
		TargetPosition: cable.V(0, 0, 4),
	}
	c := DeriveControls(g, offsetConfig())
	assertVec(t, cable.V(0, 0, 4), c.End)
}
