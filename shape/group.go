// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/xmastree/math32"

// Group is a group of shapes, written one after another into
// the same arrays. It is used to bake a whole scene into one mesh.
type Group struct {
	ShapeBase

	// list of shapes in group
	Shapes []Mesh
}

// NewGroup returns a new Group of the given shapes.
func NewGroup(shapes ...Mesh) *Group {
	return &Group{Shapes: shapes}
}

// Add adds shapes to the group.
func (gp *Group) Add(shapes ...Mesh) {
	gp.Shapes = append(gp.Shapes, shapes...)
}

// MeshSize returns number of vertex, index points in this shape element.
func (gp *Group) MeshSize() (numVertex, numIndex int, hasColor bool) {
	numVertex = 0
	numIndex = 0
	hasColor = false
	for _, sh := range gp.Shapes {
		nv, ni, hc := sh.MeshSize()
		numVertex += nv
		numIndex += ni
		hasColor = hasColor || hc
	}
	return
}

// Set sets points in given allocated arrays, also updates offsets
func (gp *Group) Set(vertex, clrs math32.ArrayF32, index math32.ArrayU32) error {
	vo := gp.VertexOffset
	io := gp.IndexOffset
	gp.CBBox.SetEmpty()
	for _, sh := range gp.Shapes {
		sh.SetOffsets(vo, io)
		if err := sh.Set(vertex, clrs, index); err != nil {
			return err
		}
		gp.CBBox.ExpandByBox(sh.MeshBBox())
		nv, ni, _ := sh.MeshSize()
		vo += nv
		io += ni
	}
	return nil
}
