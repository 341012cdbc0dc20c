package ramp

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := gg.RGBA2(0.2, 0.4, 0.6, 0.5)
	r := Solid(c)
	require.Len(t, r.ColorKeys(), 2)
	require.Len(t, r.AlphaKeys(), 2)
	assert.Equal(t, 0.0, r.ColorKeys()[0].Time)
	assert.Equal(t, 1.0, r.ColorKeys()[1].Time)
	assert.Equal(t, r.ColorKeys()[0].Color, r.ColorKeys()[1].Color)
	assert.Equal(t, AlphaKey{Time: 0, Alpha: 0.5}, r.AlphaKeys()[0])
	assert.Equal(t, AlphaKey{Time: 1, Alpha: 0.5}, r.AlphaKeys()[1])
	assert.True(t, r.IsSolid())
	for _, x := range []float64{0, 0.3, 1} {
		assert.Equal(t, c, r.Evaluate(x))
	}
}

func TestBlend(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := Between(gg.RGBA2(0, 0, 0, 0), gg.RGBA2(1, 0.5, 0, 1))
	assert.False(t, r.IsSolid())
	c := r.Evaluate(0.5)
	assert.InDelta(t, 0.5, c.R, 1e-12)
	assert.InDelta(t, 0.25, c.G, 1e-12)
	assert.InDelta(t, 0.5, c.A, 1e-12)
	// clamped outside of [0,1]
	assert.Equal(t, gg.RGBA2(1, 0.5, 0, 1), r.Evaluate(3))
	assert.Equal(t, gg.RGBA2(0, 0, 0, 0), r.Evaluate(-3))
}

func TestFixed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r, err := New(Fixed, []ColorKey{
		{Time: 0.5, Color: gg.RGB(0, 1, 0)},
		{Time: 0, Color: gg.RGB(1, 0, 0)},
		{Time: 1, Color: gg.RGB(0, 0, 1)},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, gg.RGB(0, 1, 0), r.Evaluate(0.25))
	assert.Equal(t, gg.RGB(0, 0, 1), r.Evaluate(0.75))
	assert.Equal(t, 1.0, r.Evaluate(0.75).A, "no alpha keys means opaque")
}

func TestPerceptual(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r, err := New(Perceptual, []ColorKey{
		{Time: 0, Color: gg.RGB(1, 1, 1)},
		{Time: 1, Color: gg.RGB(1, 1, 1)},
	}, nil)
	require.NoError(t, err)
	c := r.Evaluate(0.5)
	assert.InDelta(t, 1.0, c.R, 1e-6)
	assert.InDelta(t, 1.0, c.G, 1e-6)
	assert.InDelta(t, 1.0, c.B, 1e-6)
	r, err = New(Perceptual, []ColorKey{
		{Time: 0, Color: gg.RGB(0, 0, 0)},
		{Time: 1, Color: gg.RGB(1, 1, 1)},
	}, nil)
	require.NoError(t, err)
	mid := r.Evaluate(0.5)
	assert.Greater(t, mid.R, 0.0)
	assert.Less(t, mid.R, 1.0)
	assert.InDelta(t, mid.R, mid.G, 1e-6, "gray stays gray")
}

func TestEmptyAndNil(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var r *Ramp
	assert.Equal(t, gg.White, r.Evaluate(0.5))
	empty, err := New(Blend, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, gg.White, empty.Evaluate(0.5))
}

func TestKeyRange(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := New(Blend, []ColorKey{{Time: 1.5}}, nil)
	assert.ErrorIs(t, err, ErrKeyRange)
	_, err = New(Blend, nil, []AlphaKey{{Time: -0.1}})
	assert.ErrorIs(t, err, ErrKeyRange)
}

func TestParseMode(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, m := range []Mode{Blend, Fixed, Perceptual} {
		parsed, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	_, err := ParseMode("zigzag")
	assert.ErrorIs(t, err, ErrUnknownMode)
}
