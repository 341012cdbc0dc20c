package rope

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gg"
	"github.com/npillmayer/cable"
	"github.com/npillmayer/cable/ramp"
)

// Limits for configuration values.
const (
	MinSamples   = 4
	MaxSamples   = 64
	MaxThickness = 2.0
	MaxRight     = 2.0
)

// ErrConfigRange indicates configuration values outside of their range.
var ErrConfigRange = errors.New("rope configuration out of range")

// Config holds the operator-set parameters of a rope. It is re-applied
// every frame, so it may be edited while the rope is live.
type Config struct {
	Samples        int       // points of the polyline, [4,64]
	Thickness      float64   // width of the rope, [0,2]
	Colors         ColorRamp // ramp to select the rope's color from
	ColorT         float64   // position on Colors, [0,1]
	OffsetTime     float64   // position on OffsetCurve, [0,1]
	OffsetCurve    Curve     // scales the right offsets
	ForwardOffset1 float64   // fraction of rope length, [0,1]
	ForwardOffset2 float64   // fraction of rope length, [0,1]
	RightOffset1   float64   // lateral offset factor, [-2,2]
	RightOffset2   float64   // lateral offset factor, [-2,2]
}

// DefaultConfig returns a thin white rope of 4 points without offsets.
func DefaultConfig() Config {
	return Config{
		Samples:   MinSamples,
		Thickness: 0.1,
		Colors:    ramp.Solid(gg.White),
	}
}

// Validate reports every value outside of its range.
func (cfg Config) Validate() error {
	var bad []string
	check := func(name string, v, lo, hi float64) {
		if !(v >= lo && v <= hi) {
			bad = append(bad, fmt.Sprintf("%s=%g not in [%g,%g]", name, v, lo, hi))
		}
	}
	check("samples", float64(cfg.Samples), MinSamples, MaxSamples)
	check("thickness", cfg.Thickness, 0, MaxThickness)
	check("color_t", cfg.ColorT, 0, 1)
	check("offset_time", cfg.OffsetTime, 0, 1)
	check("forward_offset_1", cfg.ForwardOffset1, 0, 1)
	check("forward_offset_2", cfg.ForwardOffset2, 0, 1)
	check("right_offset_1", cfg.RightOffset1, -MaxRight, MaxRight)
	check("right_offset_2", cfg.RightOffset2, -MaxRight, MaxRight)
	if len(bad) > 0 {
		return fmt.Errorf("%w: %s", ErrConfigRange, strings.Join(bad, ", "))
	}
	return nil
}

// Clamped returns a copy of cfg with every value clamped into its range.
func (cfg Config) Clamped() Config {
	if cfg.Samples < MinSamples {
		cfg.Samples = MinSamples
	} else if cfg.Samples > MaxSamples {
		cfg.Samples = MaxSamples
	}
	cfg.Thickness = cable.Clamp(cfg.Thickness, 0, MaxThickness)
	cfg.ColorT = cable.Clamp(cfg.ColorT, 0, 1)
	cfg.OffsetTime = cable.Clamp(cfg.OffsetTime, 0, 1)
	cfg.ForwardOffset1 = cable.Clamp(cfg.ForwardOffset1, 0, 1)
	cfg.ForwardOffset2 = cable.Clamp(cfg.ForwardOffset2, 0, 1)
	cfg.RightOffset1 = cable.Clamp(cfg.RightOffset1, -MaxRight, MaxRight)
	cfg.RightOffset2 = cable.Clamp(cfg.RightOffset2, -MaxRight, MaxRight)
	return cfg
}
