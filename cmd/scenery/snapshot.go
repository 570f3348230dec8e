package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/taigrr/scenery/internal/config"
	"github.com/taigrr/scenery/internal/demo"
	"github.com/taigrr/scenery/internal/logger"
	"github.com/taigrr/scenery/pkg/loop"
)

// snapshot runs the demo off screen on a manual clock and writes the last
// frame to cfg.Snapshot.Path.
func snapshot(cfg *config.Config, opts demo.Options) error {
	d, err := demo.New(cfg.Demo.Name, cfg.Render.Width, cfg.Render.Height, opts)
	if err != nil {
		return err
	}

	if err := renderFrames(d, cfg.Render.FPS, cfg.Snapshot.Frames); err != nil {
		return err
	}

	c := d.Context()
	if err := c.Framebuffer.SavePNG(cfg.Snapshot.Path); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	logger.Info("wrote snapshot",
		zap.String("demo", c.Name),
		zap.String("path", cfg.Snapshot.Path),
		zap.Int("frames", cfg.Snapshot.Frames),
		zap.Int("width", c.Width),
		zap.Int("height", c.Height))
	return nil
}

// snapshotFPS is the frame rate used when the configured one is not
// positive. A manual clock only advances on Sleep, so frames need a rate.
const snapshotFPS = 60

// renderFrames steps d through n frames at fps without waiting on the
// wall clock.
func renderFrames(d demo.Demo, fps, n int) error {
	if fps <= 0 {
		fps = snapshotFPS
	}
	l := &loop.Loop{FPS: fps, Clock: loop.NewManualClock(time.Unix(0, 0))}
	n = max(n, 1)
	return l.Run(context.Background(), func(f loop.Frame) error {
		demo.Step(d, f)
		if f.Count+1 >= n {
			return loop.ErrStop
		}
		return nil
	})
}
