/*
Package ropeconf reads rope configurations from YAML files and watches
them for changes, so ropes may be tuned while they are live.

A configuration file looks like this:

	samples: 24
	thickness: 0.15
	color:
	  mode: blend
	  colors:
	    - { t: 0, color: "#3a2a1a" }
	    - { t: 1, color: "#c8a060" }
	  alphas:
	    - { t: 0, alpha: 1 }
	color_t: 0.4
	offset_time: 0.25
	offset_curve:
	  smooth: true
	  keys:
	    - { t: 0, value: 0 }
	    - { t: 0.5, value: 1 }
	    - { t: 1, value: 0 }
	forward_offset: [0.3, 0.7]
	right_offset: [1, -1]

Missing entries take the values of rope.DefaultConfig.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package ropeconf

import (
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/gg"
	"github.com/npillmayer/cable/curve"
	"github.com/npillmayer/cable/ramp"
	"github.com/npillmayer/cable/rope"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'ropeconf'
func tracer() tracing.Trace {
	return tracing.Select("ropeconf")
}

// ErrMalformed indicates a configuration entry which cannot be interpreted.
var ErrMalformed = errors.New("malformed rope configuration")

// File is the YAML representation of a rope configuration.
type File struct {
	Samples       *int       `yaml:"samples"`
	Thickness     *float64   `yaml:"thickness"`
	Color         *RampSpec  `yaml:"color"`
	ColorT        float64    `yaml:"color_t"`
	OffsetTime    float64    `yaml:"offset_time"`
	OffsetCurve   *CurveSpec `yaml:"offset_curve"`
	ForwardOffset []float64  `yaml:"forward_offset"`
	RightOffset   []float64  `yaml:"right_offset"`
}

// RampSpec describes a color ramp.
type RampSpec struct {
	Mode   string         `yaml:"mode"`
	Colors []ColorKeySpec `yaml:"colors"`
	Alphas []AlphaKeySpec `yaml:"alphas"`
}

// AlphaKeySpec is an alpha key of a color ramp.
type AlphaKeySpec struct {
	Time  float64 `yaml:"t"`
	Alpha float64 `yaml:"alpha"`
}

// ColorKeySpec is a color key with the color given as a hex string,
// "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa".
type ColorKeySpec struct {
	Time  float64 `yaml:"t"`
	Color string  `yaml:"color"`
}

// CurveSpec describes an offset curve.
type CurveSpec struct {
	Smooth   bool      `yaml:"smooth"`
	Constant *float64  `yaml:"constant"`
	Keys     []KeySpec `yaml:"keys"`
}

// KeySpec is a key of an offset curve.
type KeySpec struct {
	Time  float64 `yaml:"t"`
	Value float64 `yaml:"value"`
	In    float64 `yaml:"in"`
	Out   float64 `yaml:"out"`
}

// Load reads and validates a rope configuration from a YAML file.
func Load(filename string) (rope.Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return rope.Config{}, fmt.Errorf("ropeconf: load %s: %w", filename, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return rope.Config{}, fmt.Errorf("ropeconf: %s: %w", filename, err)
	}
	tracer().Infof("loaded rope configuration %s", filename)
	return cfg, nil
}

// Parse reads and validates a rope configuration from YAML data.
func Parse(data []byte) (rope.Config, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return rope.Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	cfg, err := f.Config()
	if err != nil {
		return rope.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return rope.Config{}, err
	}
	return cfg, nil
}

// Config converts a file representation to a rope configuration. The
// result is not validated.
func (f File) Config() (rope.Config, error) {
	cfg := rope.DefaultConfig()
	if f.Samples != nil {
		cfg.Samples = *f.Samples
	}
	if f.Thickness != nil {
		cfg.Thickness = *f.Thickness
	}
	cfg.ColorT = f.ColorT
	cfg.OffsetTime = f.OffsetTime
	var err error
	if cfg.ForwardOffset1, cfg.ForwardOffset2, err = pair("forward_offset", f.ForwardOffset); err != nil {
		return cfg, err
	}
	if cfg.RightOffset1, cfg.RightOffset2, err = pair("right_offset", f.RightOffset); err != nil {
		return cfg, err
	}
	if f.Color != nil {
		r, err := f.Color.Ramp()
		if err != nil {
			return cfg, err
		}
		cfg.Colors = r
	}
	if f.OffsetCurve != nil {
		c, err := f.OffsetCurve.Curve()
		if err != nil {
			return cfg, err
		}
		cfg.OffsetCurve = c
	}
	return cfg, nil
}

// Ramp creates the color ramp described by spec.
func (spec RampSpec) Ramp() (*ramp.Ramp, error) {
	mode, err := ramp.ParseMode(spec.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	colors := make([]ramp.ColorKey, 0, len(spec.Colors))
	for _, k := range spec.Colors {
		if !isHex(k.Color) {
			return nil, fmt.Errorf("%w: color %q", ErrMalformed, k.Color)
		}
		colors = append(colors, ramp.ColorKey{Time: k.Time, Color: gg.Hex(k.Color)})
	}
	alphas := make([]ramp.AlphaKey, len(spec.Alphas))
	for i, k := range spec.Alphas {
		alphas[i] = ramp.AlphaKey{Time: k.Time, Alpha: k.Alpha}
	}
	r, err := ramp.New(mode, colors, alphas)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return r, nil
}

// Curve creates the offset curve described by spec. A constant takes
// precedence over keys.
func (spec CurveSpec) Curve() (*curve.Curve, error) {
	if spec.Constant != nil {
		return curve.Constant(*spec.Constant), nil
	}
	keys := make([]curve.Key, len(spec.Keys))
	for i, k := range spec.Keys {
		keys[i] = curve.Key{Time: k.Time, Value: k.Value, InTangent: k.In, OutTangent: k.Out}
	}
	c, err := curve.New(keys...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if spec.Smooth {
		c.Smooth()
	}
	return c, nil
}

func pair(name string, v []float64) (float64, float64, error) {
	switch len(v) {
	case 0:
		return 0, 0, nil
	case 2:
		return v[0], v[1], nil
	}
	return 0, 0, fmt.Errorf("%w: %s needs 2 values, has %d", ErrMalformed, name, len(v))
}

func isHex(s string) bool {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		if !('0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F') {
			return false
		}
	}
	return true
}
