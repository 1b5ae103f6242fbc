// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene holds the meshes of the tree scene and the state
// a renderer needs to draw them: where each mesh instance goes,
// how the shared rotation advances from frame to frame, and the
// camera looking at the tree.
package scene

import (
	"fmt"
	"log/slog"

	"cogentcore.org/xmastree/base/randx"
	"cogentcore.org/xmastree/config"
	"cogentcore.org/xmastree/math32"
	"cogentcore.org/xmastree/shape"
)

// Names of the meshes of a [Scene].
const (
	TreeMesh     = "tree"
	OrnamentMesh = "ornament"
	StarMesh     = "star"
)

// Scene is the generated tree scene: the foliage, ornament and star
// meshes, the positions of the ornaments, and the camera.
// The meshes are generated once by [New] and not modified after.
type Scene struct {

	// the configuration the scene was generated from
	Config config.Config

	// meshes in the order they are drawn; use [Scene.Mesh] to look one up by name
	Meshes []*shape.MeshData

	// positions of the ornaments, from the bottom of the tree to the top
	Decorations []math32.Vector3

	// camera determines view onto scene
	Camera Camera
}

// New generates a new scene from the given configuration, drawing
// the foliage from the given random source (the global source if nil).
func New(cfg *config.Config, rnd randx.Rand) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sc := &Scene{Config: *cfg}
	sc.Camera.Defaults(cfg.TreeHeight)
	sc.Decorations = DecorationPositions(cfg.Decorations, cfg.TreeHeight, cfg.TreeWidth)

	tree, err := shape.GenerateFoliage(cfg.Triangles, cfg.TreeHeight, cfg.TreeWidth, rnd)
	if err != nil {
		return nil, fmt.Errorf("scene.New: %w", err)
	}
	orn, err := shape.GenerateOrnament()
	if err != nil {
		return nil, fmt.Errorf("scene.New: %w", err)
	}
	star, err := shape.GenerateStar()
	if err != nil {
		return nil, fmt.Errorf("scene.New: %w", err)
	}
	for _, md := range []*shape.MeshData{tree, orn, star} {
		if err := sc.AddMesh(md); err != nil {
			return nil, err
		}
	}
	slog.Debug("scene.Scene New", "triangles", cfg.Triangles, "decorations", cfg.Decorations, "vertices", sc.NumVertex())
	return sc, nil
}

// AddMesh adds the given mesh to the scene. Names must be unique.
func (sc *Scene) AddMesh(md *shape.MeshData) error {
	if _, err := sc.Mesh(md.Name); err == nil {
		return fmt.Errorf("scene.Scene AddMesh: mesh %q already exists", md.Name)
	}
	sc.Meshes = append(sc.Meshes, md)
	return nil
}

// Mesh returns the mesh with the given name.
func (sc *Scene) Mesh(name string) (*shape.MeshData, error) {
	for _, md := range sc.Meshes {
		if md.Name == name {
			return md, nil
		}
	}
	return nil, fmt.Errorf("scene.Scene Mesh: mesh %q not found", name)
}

// NumVertex returns the total number of vertices drawn per frame,
// counting each ornament instance.
func (sc *Scene) NumVertex() int {
	n := 0
	for _, d := range sc.Draws(FrameState{}) {
		if md, err := sc.Mesh(d.Mesh); err == nil {
			n += md.NumVertex()
		}
	}
	return n
}

// DecorationPositions returns the positions of n ornaments on a tree
// of the given height and width. Ornament i (from 1) is at height
// height*(1-i/(n+1))^2 on the surface of the cone, turned by 1.3*i
// radians around the trunk, so they spiral up and get closer together
// toward the top.
func DecorationPositions(n int, height, width float32) []math32.Vector3 {
	pos := make([]math32.Vector3, n)
	for i := 1; i <= n; i++ {
		f := 1 - float32(i)/float32(n+1)
		y := height * f * f
		rad := (height - y) * width / height
		ang := 1.3 * float32(i)
		pos[i-1] = math32.Vec3(rad*math32.Cos(ang), y, rad*math32.Sin(ang))
	}
	return pos
}

// StarPosition returns the position of the star above a tree of the
// given height; it bobs up and down three times per turn of the tree.
func StarPosition(rotation, height float32) math32.Vector3 {
	return math32.Vec3(0, height+0.4+math32.Sin(3*rotation)*0.15, 0)
}
