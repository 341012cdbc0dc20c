// Command ropeshot renders an animated rope into a series of PNG images.
//
// A target is moved along an arc around the anchor while the rope's offset
// time runs from 0 to 1. The scene is seen from above (world X/Z plane).
//
//	ropeshot -config rope.yaml -frames 24 -output rope_%03d.png
//
// With -watch, ropeshot keeps running and re-renders whenever the
// configuration file changes.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/npillmayer/cable"
	"github.com/npillmayer/cable/curve"
	"github.com/npillmayer/cable/polygon"
	"github.com/npillmayer/cable/ramp"
	"github.com/npillmayer/cable/rope"
	"github.com/npillmayer/cable/ropeconf"
)

func main() {
	var (
		config = flag.String("config", "", "rope configuration (YAML)")
		frames = flag.Int("frames", 12, "number of frames")
		width  = flag.Int("width", 640, "image width")
		height = flag.Int("height", 400, "image height")
		scale  = flag.Float64("scale", 30, "pixels per world unit")
		radius = flag.Float64("radius", 9, "distance of the target from the anchor")
		output = flag.String("output", "rope_%03d.png", "output file pattern")
		watch  = flag.Bool("watch", false, "re-render when the configuration changes")
	)
	flag.Parse()

	cfg, err := loadConfig(*config)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	sh := &shooter{
		width:  *width,
		height: *height,
		scale:  *scale,
		radius: *radius,
		frames: *frames,
		output: *output,
	}
	if err := sh.render(cfg); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if !*watch || *config == "" {
		return
	}
	if err := sh.watch(*config); err != nil {
		log.Fatalf("Failed to watch %s: %v", *config, err)
	}
}

func loadConfig(filename string) (rope.Config, error) {
	if filename != "" {
		return ropeconf.Load(filename)
	}
	cfg := rope.DefaultConfig()
	cfg.Samples = 32
	cfg.Thickness = 0.2
	cfg.ForwardOffset1, cfg.ForwardOffset2 = 0.3, 0.65
	cfg.RightOffset1, cfg.RightOffset2 = 1.5, -1
	wave, err := curve.New(
		curve.Key{Time: 0, Value: 0},
		curve.Key{Time: 0.25, Value: 1},
		curve.Key{Time: 0.75, Value: -1},
		curve.Key{Time: 1, Value: 0},
	)
	if err != nil {
		return cfg, err
	}
	cfg.OffsetCurve = wave.Smooth()
	cfg.Colors = ramp.Between(gg.Hex("#5b3a1e"), gg.Hex("#d9b26f"))
	cfg.ColorT = 0.6
	return cfg, nil
}

type shooter struct {
	width, height int
	scale, radius float64
	frames        int
	output        string
}

func (sh *shooter) render(cfg rope.Config) error {
	anchor := cable.At(cable.Origin)
	ctrl := rope.NewController(anchor, nil, cfg)
	view := sh.view()
	n := sh.frames
	if n < 2 {
		n = 2
	}
	for k := 0; k < n; k++ {
		f := float64(k) / float64(n-1)
		angle := math.Pi * (0.15 + 0.7*f)
		ctrl.SetTarget(cable.At(cable.V(sh.radius*math.Cos(angle), 0, sh.radius*math.Sin(angle))))
		cfg.OffsetTime = f
		ctrl.SetConfig(cfg)

		dc := gg.NewContext(sh.width, sh.height)
		dc.ClearWithColor(gg.RGB(0.12, 0.13, 0.16))
		c := newCanvas(dc, anchor, sh.scale)
		ctrl.Attach(c)
		frame, ok := ctrl.Tick()
		if !ok {
			return fmt.Errorf("rope not ready in frame %d", k)
		}
		if polygon.Overlaps(ctrl.Footprint(polygon.PlaneXZ), view) {
			if err := c.draw(); err != nil {
				return err
			}
		} else {
			log.Printf("frame %d: rope out of view, skipped", k)
		}
		w1, w2 := ctrl.WorldControlPoints()
		c.gizmo(w1)
		c.gizmo(w2)
		c.gizmo(c.anchor.ToWorld(frame.Controls.End))

		name := fmt.Sprintf(sh.output, k)
		if err := dc.SavePNG(name); err != nil {
			return err
		}
		_ = dc.Close()
	}
	log.Printf("Rendered %d frames to %s (%dx%d)", n, sh.output, sh.width, sh.height)
	return nil
}

// view is the visible part of the world X/Z plane.
func (sh *shooter) view() *polygon.Polygon {
	w := float64(sh.width) / sh.scale / 2
	h := float64(sh.height) / sh.scale
	return polygon.Box(polygon.P(-w, -h/10), polygon.P(w, h*9/10))
}

func (sh *shooter) watch(filename string) error {
	w, err := ropeconf.NewWatcher(filepath.Dir(filename))
	if err != nil {
		return err
	}
	defer w.Close()
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	log.Printf("Watching %s, press Ctrl-C to stop", filename)
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(name) != filepath.Base(filename) {
				continue
			}
			cfg, err := ropeconf.Load(filename)
			if err != nil {
				log.Printf("Ignoring change: %v", err)
				continue
			}
			if err := sh.render(cfg); err != nil {
				return err
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher: %v", err)
		case <-interrupt:
			return nil
		}
	}
}
