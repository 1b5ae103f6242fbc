// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/xmastree/math32"
	"cogentcore.org/xmastree/shape"
)

// RotationSpeed is the turning speed of the tree, in radians per second.
const RotationSpeed = 0.4

// FrameState is the state a render loop carries from frame to frame.
// It is owned by the loop and passed to [Scene.Draws] on every frame.
type FrameState struct {

	// shared rotation of the tree and ornaments around the Y axis, in radians
	Rotation float32

	// time of the last frame, in seconds
	Then float64
}

// Step advances the state to the given time in seconds,
// turning the rotation by the time elapsed since the last frame,
// and returns the elapsed time. Time going backward counts as no time.
func (fs *FrameState) Step(now float64) float64 {
	dt := now - fs.Then
	fs.Then = now
	if dt < 0 {
		dt = 0
	}
	fs.Rotation += float32(dt) * RotationSpeed
	return dt
}

// Draw is one draw call: a mesh drawn with a rotation around
// the Y axis and a translation.
type Draw struct {

	// name of the mesh to draw
	Mesh string

	// translation of the mesh
	Pos math32.Vector3

	// rotation around the Y axis, in radians, applied after the translation
	Rotation float32
}

// Model returns the model matrix of the draw: the rotation
// times the translation, so translated meshes orbit the trunk.
func (d *Draw) Model() *math32.Matrix4 {
	rot := &math32.Matrix4{}
	rot.SetRotationY(d.Rotation)
	tr := &math32.Matrix4{}
	tr.SetTranslation(d.Pos.X, d.Pos.Y, d.Pos.Z)
	return rot.Mul(tr)
}

// Draws returns the draw calls of one frame, in order:
// the tree, every ornament, and the star. The tree and the ornaments
// share the frame rotation. The star is not rotated.
func (sc *Scene) Draws(fs FrameState) []Draw {
	draws := make([]Draw, 0, len(sc.Decorations)+2)
	draws = append(draws, Draw{Mesh: TreeMesh, Rotation: fs.Rotation})
	for _, pos := range sc.Decorations {
		draws = append(draws, Draw{Mesh: OrnamentMesh, Pos: pos, Rotation: fs.Rotation})
	}
	draws = append(draws, Draw{Mesh: StarMesh, Pos: StarPosition(fs.Rotation, sc.Config.TreeHeight)})
	return draws
}

// Bake returns the whole scene at rotation 0 as one mesh named "scene",
// with every ornament instance and the star copied into place.
func (sc *Scene) Bake() (*shape.MeshData, error) {
	gp := shape.NewGroup()
	for _, d := range sc.Draws(FrameState{}) {
		md, err := sc.Mesh(d.Mesh)
		if err != nil {
			return nil, err
		}
		gp.Add(shape.NewInstance(md, d.Pos))
	}
	return shape.NewMeshData("scene", gp)
}

// Buffers is the data a GPU layer uploads for one mesh: a position
// vertex buffer, a color vertex buffer and a 16-bit index buffer.
type Buffers struct {
	Name      string
	Positions []float32
	Colors    []float32
	Indices   []uint16

	// number of vertices to draw, which is the number of indices
	NumVertices int
}

// NewBuffers returns the buffers of the given mesh. It fails if
// the mesh has an index that does not fit in 16 bits.
func NewBuffers(md *shape.MeshData) (*Buffers, error) {
	if err := md.Validate(); err != nil {
		return nil, err
	}
	idx, err := md.Uint16Indices()
	if err != nil {
		return nil, err
	}
	return &Buffers{
		Name:        md.Name,
		Positions:   md.Positions,
		Colors:      md.Colors,
		Indices:     idx,
		NumVertices: len(idx),
	}, nil
}

// Buffers returns the buffers of every mesh of the scene, in the order of [Scene.Meshes].
func (sc *Scene) Buffers() ([]*Buffers, error) {
	bufs := make([]*Buffers, len(sc.Meshes))
	for i, md := range sc.Meshes {
		b, err := NewBuffers(md)
		if err != nil {
			return nil, err
		}
		bufs[i] = b
	}
	return bufs, nil
}
