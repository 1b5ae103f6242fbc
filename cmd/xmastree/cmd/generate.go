// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the xmastree tool.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/xmastree/base/iox/imagex"
	"cogentcore.org/xmastree/base/randx"
	"cogentcore.org/xmastree/config"
	"cogentcore.org/xmastree/export"
	"cogentcore.org/xmastree/logx"
	"cogentcore.org/xmastree/render"
	"cogentcore.org/xmastree/scene"
)

// NewScene generates the scene of the given config. A zero seed
// is replaced by a time-based one, which is logged so the
// scene can be made again.
func NewScene(c *config.Config) (*scene.Scene, error) {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		slog.Info("using random seed", "seed", seed)
	}
	sc, err := scene.New(c, randx.NewSysRand(seed))
	if err != nil {
		return nil, fmt.Errorf("generating scene: %w", err)
	}
	return sc, nil
}

// Stats prints the sizes and bounds of the meshes of the scene.
func Stats(c *config.Config, w io.Writer) error {
	sc, err := NewScene(c)
	if err != nil {
		return err
	}
	for _, md := range sc.Meshes {
		fmt.Fprintf(w, "%s %d vertices, %d triangles, bounds %v to %v\n", logx.CmdColor(fmt.Sprintf("%-9s", md.Name)), md.NumVertex(), md.NumTriangles(), md.BBox.Min, md.BBox.Max)
	}
	draws := sc.Draws(scene.FrameState{})
	fmt.Fprintf(w, "%s %d draws, %d vertices per frame\n", logx.CmdColor(fmt.Sprintf("%-9s", "frame")), len(draws), sc.NumVertex())
	return nil
}

// Export writes the scene to [config.Config.Output]: the baked mesh
// for .obj files, the scene summary for .yaml files, and a preview
// image for image files.
func Export(c *config.Config) error {
	if c.Output == "" {
		return fmt.Errorf("export: no output file given")
	}
	fn, err := c.OutputPath()
	if err != nil {
		return err
	}
	sc, err := NewScene(c)
	if err != nil {
		return err
	}
	if _, err := imagex.ExtToFormat(filepath.Ext(fn)); err == nil {
		return preview(sc, c, fn, scene.FrameState{})
	}
	if err := export.Save(sc, fn); err != nil {
		return err
	}
	slog.Info("exported scene", "file", fn)
	return nil
}

// Preview renders the scene at the given time in seconds from
// the start of the animation to [config.Config.Output].
func Preview(c *config.Config, at float64) error {
	fn, err := c.OutputPath()
	if err != nil {
		return err
	}
	if fn == "" {
		fn = "xmastree.png"
	}
	sc, err := NewScene(c)
	if err != nil {
		return err
	}
	fs := scene.FrameState{}
	fs.Step(at)
	return preview(sc, c, fn, fs)
}

func preview(sc *scene.Scene, c *config.Config, fn string, fs scene.FrameState) error {
	img, err := render.PreviewSupersampled(sc, fs, c.Width, c.Height, c.Supersample)
	if err != nil {
		return err
	}
	if err := render.Save(img, fn); err != nil {
		return err
	}
	slog.Info("saved preview", "file", fn, "rotation", fs.Rotation)
	return nil
}
