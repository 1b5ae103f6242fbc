// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"io"

	"cogentcore.org/xmastree/base/iox/yamlx"
	"cogentcore.org/xmastree/config"
	"cogentcore.org/xmastree/math32"
	"cogentcore.org/xmastree/scene"
)

// Summary describes a scene without its vertex data.
type Summary struct {
	Config config.Config `yaml:"config"`
	Meshes []MeshSummary `yaml:"meshes"`
	Draws  []DrawSummary `yaml:"draws"`
}

// MeshSummary gives the size and bounds of one mesh.
type MeshSummary struct {
	Name      string     `yaml:"name"`
	Vertices  int        `yaml:"vertices"`
	Triangles int        `yaml:"triangles"`
	Min       [3]float32 `yaml:"min,flow"`
	Max       [3]float32 `yaml:"max,flow"`
}

// DrawSummary is one draw call of the first frame.
type DrawSummary struct {
	Mesh     string     `yaml:"mesh"`
	Pos      [3]float32 `yaml:"pos,flow"`
	Rotation float32    `yaml:"rotation"`
}

func vec3Array(v math32.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// NewSummary returns the summary of the scene at rotation 0.
func NewSummary(sc *scene.Scene) *Summary {
	sm := &Summary{Config: sc.Config}
	for _, md := range sc.Meshes {
		ms := MeshSummary{Name: md.Name, Vertices: md.NumVertex(), Triangles: md.NumTriangles()}
		if !md.BBox.IsEmpty() {
			ms.Min = vec3Array(md.BBox.Min)
			ms.Max = vec3Array(md.BBox.Max)
		}
		sm.Meshes = append(sm.Meshes, ms)
	}
	for _, d := range sc.Draws(scene.FrameState{}) {
		sm.Draws = append(sm.Draws, DrawSummary{Mesh: d.Mesh, Pos: vec3Array(d.Pos), Rotation: d.Rotation})
	}
	return sm
}

// WriteYAML writes the summary of the scene as YAML.
func WriteYAML(w io.Writer, sc *scene.Scene) error {
	return yamlx.Write(NewSummary(sc), w)
}

// SaveYAML writes the summary of the scene to the given YAML file.
func SaveYAML(sc *scene.Scene, filename string) error {
	return yamlx.Save(NewSummary(sc), filename)
}
