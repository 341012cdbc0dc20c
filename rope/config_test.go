package rope

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/npillmayer/cable/ramp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigIsValid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, cfg.Samples, cfg.Clamped().Samples)
	assert.Equal(t, gg.White, StyleFor(cfg).Color)
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	cfg.Samples = 3
	cfg.RightOffset2 = -2.5
	cfg.ColorT = math.NaN()
	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrConfigRange)
	assert.Contains(t, err.Error(), "samples=3")
	assert.Contains(t, err.Error(), "right_offset_2=-2.5")
	assert.Contains(t, err.Error(), "color_t=NaN")
	assert.NoError(t, cfg.Clamped().Validate())
}

func TestClamped(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := Config{
		Samples:        1,
		Thickness:      -1,
		ColorT:         2,
		OffsetTime:     -0.5,
		ForwardOffset1: 1.5,
		ForwardOffset2: 0.5,
		RightOffset1:   3,
		RightOffset2:   -3,
	}.Clamped()
	assert.Equal(t, MinSamples, cfg.Samples)
	assert.Equal(t, 0.0, cfg.Thickness)
	assert.Equal(t, 1.0, cfg.ColorT)
	assert.Equal(t, 0.0, cfg.OffsetTime)
	assert.Equal(t, 1.0, cfg.ForwardOffset1)
	assert.Equal(t, 0.5, cfg.ForwardOffset2)
	assert.Equal(t, 2.0, cfg.RightOffset1)
	assert.Equal(t, -2.0, cfg.RightOffset2)
}

func TestStyleFor(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	cfg.Thickness = 0.7
	cfg.Colors = ramp.Between(gg.RGBA2(0, 0, 1, 0), gg.RGBA2(1, 0, 1, 1))
	cfg.ColorT = 0.25
	s := StyleFor(cfg)
	assert.Equal(t, 0.7, s.StartWidth)
	assert.Equal(t, 0.7, s.EndWidth)
	assert.InDelta(t, 0.25, s.Color.R, 1e-12)
	assert.InDelta(t, 0.25, s.Color.A, 1e-12)
	assert.Equal(t, s.Color, s.Colors.Evaluate(0))
	assert.Equal(t, s.Color, s.Colors.Evaluate(1))
	assert.Equal(t, s, StyleFor(cfg), "style is a pure function of the configuration")
}
