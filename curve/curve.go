/*
Package curve implements 1-dimensional keyframe curves, mapping a time
parameter to a scalar. Ropes use them to animate the lateral offset of their
control points.

Between two neighbouring keys a curve is interpolated by a cubic Hermite
polynomial, using the out-tangent of the left key and the in-tangent of the
right key. Outside of the key range the curve is clamped to the value of the
first or last key. An infinite tangent turns a span into a step.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curve

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curve'
func tracer() tracing.Trace {
	return tracing.Select("curve")
}

// ErrInvalidKey indicates a key with a NaN or infinite time or value.
var ErrInvalidKey = errors.New("curve key must have finite time and value")

// Key is a keyframe of a curve.
type Key struct {
	Time       float64
	Value      float64
	InTangent  float64 // slope left of the key
	OutTangent float64 // slope right of the key
}

// Curve is a sequence of keys, ordered by time. The zero value is an empty
// curve which evaluates to 0 everywhere.
type Curve struct {
	keys []Key
}

// New creates a curve from a list of keys. Keys need not be ordered.
func New(keys ...Key) (*Curve, error) {
	c := &Curve{}
	for _, k := range keys {
		if err := c.AddKey(k); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Constant creates a curve with a single key, evaluating to v everywhere.
func Constant(v float64) *Curve {
	return &Curve{keys: []Key{{Value: v}}}
}

// Linear creates a straight line from (t0,v0) to (t1,v1), clamped outside.
func Linear(t0, v0, t1, v1 float64) *Curve {
	if t0 > t1 {
		t0, v0, t1, v1 = t1, v1, t0, v0
	}
	slope := 0.0
	if t1 > t0 {
		slope = (v1 - v0) / (t1 - t0)
	}
	return &Curve{keys: []Key{
		{Time: t0, Value: v0, InTangent: slope, OutTangent: slope},
		{Time: t1, Value: v1, InTangent: slope, OutTangent: slope},
	}}
}

// AddKey inserts a key, keeping keys ordered by time. A key at an existing
// time replaces the old one.
func (c *Curve) AddKey(k Key) error {
	if !finite(k.Time) || !finite(k.Value) {
		return fmt.Errorf("%w: (%g,%g)", ErrInvalidKey, k.Time, k.Value)
	}
	i := sort.Search(len(c.keys), func(i int) bool {
		return c.keys[i].Time >= k.Time
	})
	if i < len(c.keys) && c.keys[i].Time == k.Time {
		c.keys[i] = k
		return nil
	}
	c.keys = append(c.keys, Key{})
	copy(c.keys[i+1:], c.keys[i:])
	c.keys[i] = k
	return nil
}

// Keys returns a copy of the curve's keys.
func (c *Curve) Keys() []Key {
	if c == nil {
		return nil
	}
	keys := make([]Key, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// N returns the number of keys.
func (c *Curve) N() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Smooth sets automatic tangents for every key: inner keys get the slope
// between their neighbours, the first and last key the slope of their span.
func (c *Curve) Smooth() *Curve {
	n := len(c.keys)
	if n < 2 {
		return c
	}
	for i := range c.keys {
		l, r := i-1, i+1
		if l < 0 {
			l = 0
		}
		if r >= n {
			r = n - 1
		}
		slope := (c.keys[r].Value - c.keys[l].Value) / (c.keys[r].Time - c.keys[l].Time)
		c.keys[i].InTangent = slope
		c.keys[i].OutTangent = slope
	}
	return c
}

// Evaluate returns the curve's value at time t. A nil or empty curve
// evaluates to 0.
func (c *Curve) Evaluate(t float64) float64 {
	if c == nil || len(c.keys) == 0 {
		return 0
	}
	first, last := c.keys[0], c.keys[len(c.keys)-1]
	if t <= first.Time || len(c.keys) == 1 {
		return first.Value
	}
	if t >= last.Time {
		return last.Value
	}
	i := sort.Search(len(c.keys), func(i int) bool {
		return c.keys[i].Time > t
	})
	return hermite(c.keys[i-1], c.keys[i], t)
}

// Cubic Hermite interpolation between k0 and k1, k0.Time <= t < k1.Time.
func hermite(k0, k1 Key, t float64) float64 {
	if math.IsInf(k0.OutTangent, 0) || math.IsInf(k1.InTangent, 0) {
		return k0.Value
	}
	dt := k1.Time - k0.Time
	s := (t - k0.Time) / dt
	s2 := s * s
	s3 := s2 * s
	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2
	v := h00*k0.Value + h10*dt*k0.OutTangent + h01*k1.Value + h11*dt*k1.InTangent
	tracer().Debugf("curve(%g) = %g", t, v)
	return v
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
