// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cogentcore.org/xmastree/config"
	"cogentcore.org/xmastree/scene"
)

// Animate runs the render loop of the scene for [config.Config.Frames]
// frames at [config.Config.FPS], printing the frame state of each frame.
// Without realtime, frame times are computed instead of waited for.
// If dir is not empty, every frame is also saved there as a PNG image.
func Animate(ctx context.Context, c *config.Config, w io.Writer, realtime bool, dir string) error {
	sc, err := NewScene(c)
	if err != nil {
		return err
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	fs := scene.FrameState{}
	var ticker *time.Ticker
	if realtime {
		ticker = time.NewTicker(time.Second / time.Duration(c.FPS))
		defer ticker.Stop()
	}
	stTime := time.Now()
	for frame := 0; frame < c.Frames; frame++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		now := float64(frame) / float64(c.FPS)
		if realtime {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case t := <-ticker.C:
				now = t.Sub(stTime).Seconds()
			}
		}
		fs.Step(now)
		star := scene.StarPosition(fs.Rotation, c.TreeHeight)
		fmt.Fprintf(w, "frame %4d  t %7.3f  rotation %7.4f  star y %6.4f\n", frame, now, fs.Rotation, star.Y)
		if dir != "" {
			fn := filepath.Join(dir, fmt.Sprintf("frame%04d.png", frame))
			if err := preview(sc, c, fn, fs); err != nil {
				return err
			}
		}
	}
	slog.Debug("animate done", "frames", c.Frames, "elapsed", time.Since(stTime))
	return nil
}
