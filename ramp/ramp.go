/*
Package ramp implements color ramps: a gradient of color keys and alpha
keys over [0,1], which is evaluated at a single parameter.

Ropes use a ramp in two ways. A configured ramp is evaluated once per frame
to select the rope's color, and a flat ramp (see Solid) carries that color
to a renderer which expects a gradient along the rope.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package ramp

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gogpu/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ramp'
func tracer() tracing.Trace {
	return tracing.Select("ramp")
}

// Mode selects how colors between two keys are blended.
type Mode int

const (
	// Blend interpolates linearly between neighbouring keys.
	Blend Mode = iota
	// Fixed holds the color of the next key, without blending.
	Fixed
	// Perceptual interpolates colors in CIE-L*a*b* space.
	Perceptual
)

func (m Mode) String() string {
	switch m {
	case Blend:
		return "blend"
	case Fixed:
		return "fixed"
	case Perceptual:
		return "perceptual"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode parses the name of a blend mode. The empty string is Blend.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "blend":
		return Blend, nil
	case "fixed":
		return Fixed, nil
	case "perceptual":
		return Perceptual, nil
	}
	return Blend, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

var (
	// ErrUnknownMode indicates an unknown blend mode name.
	ErrUnknownMode = errors.New("unknown color ramp mode")
	// ErrKeyRange indicates a key outside of [0,1].
	ErrKeyRange = errors.New("color ramp key must be in [0,1]")
)

// ColorKey is a color at a position of the ramp. The alpha channel of
// Color is ignored; transparency comes from alpha keys.
type ColorKey struct {
	Time  float64
	Color gg.RGBA
}

// AlphaKey is an opacity at a position of the ramp.
type AlphaKey struct {
	Time  float64
	Alpha float64
}

// Ramp is a color gradient over [0,1]. A ramp without color keys is white,
// a ramp without alpha keys is opaque.
type Ramp struct {
	Mode   Mode
	colors []ColorKey
	alphas []AlphaKey
}

// New creates a ramp from color and alpha keys. Keys need not be ordered.
func New(mode Mode, colors []ColorKey, alphas []AlphaKey) (*Ramp, error) {
	r := &Ramp{Mode: mode}
	for _, k := range colors {
		if k.Time < 0 || k.Time > 1 {
			return nil, fmt.Errorf("%w: color key at %g", ErrKeyRange, k.Time)
		}
		r.colors = append(r.colors, k)
	}
	for _, k := range alphas {
		if k.Time < 0 || k.Time > 1 {
			return nil, fmt.Errorf("%w: alpha key at %g", ErrKeyRange, k.Time)
		}
		r.alphas = append(r.alphas, k)
	}
	sort.SliceStable(r.colors, func(i, j int) bool { return r.colors[i].Time < r.colors[j].Time })
	sort.SliceStable(r.alphas, func(i, j int) bool { return r.alphas[i].Time < r.alphas[j].Time })
	return r, nil
}

// Between creates a blending ramp from color c0 at 0 to color c1 at 1,
// including their alpha values.
func Between(c0, c1 gg.RGBA) *Ramp {
	return &Ramp{
		colors: []ColorKey{{Time: 0, Color: c0}, {Time: 1, Color: c1}},
		alphas: []AlphaKey{{Time: 0, Alpha: c0.A}, {Time: 1, Alpha: c1.A}},
	}
}

// Solid creates a flat ramp of a single color: two identical color keys
// at 0 and 1, and two identical alpha keys at 0 and 1.
func Solid(c gg.RGBA) *Ramp {
	return Between(c, c)
}

// IsSolid is a predicate: does the ramp evaluate to the same color everywhere?
func (r *Ramp) IsSolid() bool {
	if r == nil {
		return true
	}
	for i := 1; i < len(r.colors); i++ {
		if !sameRGB(r.colors[i].Color, r.colors[0].Color) {
			return false
		}
	}
	for i := 1; i < len(r.alphas); i++ {
		if r.alphas[i].Alpha != r.alphas[0].Alpha {
			return false
		}
	}
	return true
}

// ColorKeys returns a copy of the color keys.
func (r *Ramp) ColorKeys() []ColorKey {
	if r == nil {
		return nil
	}
	return append([]ColorKey(nil), r.colors...)
}

// AlphaKeys returns a copy of the alpha keys.
func (r *Ramp) AlphaKeys() []AlphaKey {
	if r == nil {
		return nil
	}
	return append([]AlphaKey(nil), r.alphas...)
}

// Evaluate returns the ramp's color at t. t is clamped to [0,1].
// A nil ramp evaluates to opaque white.
func (r *Ramp) Evaluate(t float64) gg.RGBA {
	if r == nil {
		return gg.White
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	c := r.rgb(t)
	c.A = r.alpha(t)
	return c
}

func (r *Ramp) rgb(t float64) gg.RGBA {
	n := len(r.colors)
	switch {
	case n == 0:
		return gg.White
	case t <= r.colors[0].Time:
		return r.colors[0].Color
	case t >= r.colors[n-1].Time:
		return r.colors[n-1].Color
	}
	i := sort.Search(n, func(i int) bool { return r.colors[i].Time > t })
	k0, k1 := r.colors[i-1], r.colors[i]
	f := (t - k0.Time) / (k1.Time - k0.Time)
	switch r.Mode {
	case Fixed:
		return k1.Color
	case Perceptual:
		return blendLab(k0.Color, k1.Color, f)
	}
	return k0.Color.Lerp(k1.Color, f)
}

func (r *Ramp) alpha(t float64) float64 {
	n := len(r.alphas)
	switch {
	case n == 0:
		return 1
	case t <= r.alphas[0].Time:
		return r.alphas[0].Alpha
	case t >= r.alphas[n-1].Time:
		return r.alphas[n-1].Alpha
	}
	i := sort.Search(n, func(i int) bool { return r.alphas[i].Time > t })
	k0, k1 := r.alphas[i-1], r.alphas[i]
	if r.Mode == Fixed {
		return k1.Alpha
	}
	f := (t - k0.Time) / (k1.Time - k0.Time)
	return k0.Alpha + (k1.Alpha-k0.Alpha)*f
}

func blendLab(c0, c1 gg.RGBA, f float64) gg.RGBA {
	a := colorful.Color{R: c0.R, G: c0.G, B: c0.B}
	b := colorful.Color{R: c1.R, G: c1.G, B: c1.B}
	c := a.BlendLab(b, f).Clamped()
	tracer().Debugf("lab blend %v -> %v at %g = %v", a, b, f, c)
	return gg.RGBA{R: c.R, G: c.G, B: c.B}
}

func sameRGB(a, b gg.RGBA) bool {
	return a.R == b.R && a.G == b.G && a.B == b.B
}
