package polygon

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(P(0, 0)).Knot(P(1, 3)).Knot(P(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
	assert.Equal(t, "(0,0) -- (1,3) -- (3,0) -- cycle", AsString(pg))
	assert.True(t, pg.Contains(P(1, 1)))
	assert.False(t, pg.Contains(P(3, 3)))
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(P(0, 5), P(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	bb := box.BoundingBox()
	assert.Equal(t, P(0, 1), bb.Min)
	assert.Equal(t, P(4, 5), bb.Max)
}

func TestProjectAndOverlap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	line := []mgl64.Vec3{{0, 1, 0}, {1, 2, 5}, {2, 1, 10}}
	side := Project(line, PlaneZY)
	assert.False(t, side.IsCycle())
	assert.Equal(t, P(5, 2), side.Pt(1))
	top := Project(line, PlaneXZ)
	bb := top.BoundingBox()
	assert.Equal(t, P(0, 0), bb.Min)
	assert.Equal(t, P(2, 10), bb.Max)
	assert.True(t, Overlaps(top, Box(P(1, 1), P(5, 5))))
	assert.False(t, Overlaps(top, Box(P(3, 0), P(5, 5))))
	assert.False(t, Overlaps(top, NullPolygon()))
	assert.False(t, top.Contains(P(1, 1)), "open polylines contain nothing")
}
