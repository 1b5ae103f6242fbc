// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape provides the procedural and fixed meshes of the
// tree scene, written into flat position, color, and index arrays
// that a renderer uploads verbatim.
package shape

import "cogentcore.org/xmastree/math32"

// Mesh is an interface for all shape-constructing elements.
// All Meshes must know in advance the number of vertex and index points
// they require, and the Set method writes the mesh data to arrays of
// appropriate size.
type Mesh interface {
	// MeshSize returns number of vertex, index points in this shape element,
	// and whether it has per-vertex color values.
	MeshSize() (numVertex, numIndex int, hasColor bool)

	// Set sets points in given allocated arrays: 3 floats per vertex,
	// 4 floats per color, one index per triangle corner.
	// Indexes are written relative to the full array, using the vertex offset.
	Set(vertex, clrs math32.ArrayF32, index math32.ArrayU32) error

	// MeshBBox returns the bounding box for the shape.
	// This is only valid after Set has been called.
	MeshBBox() math32.Box3

	// Offsets returns starting offset for vertices, indexes in full shape array,
	// in terms of points, not floats.
	Offsets() (vtxOffset, idxOffset int)

	// SetOffsets sets starting offset for vertices, indexes in full shape array,
	// in terms of points, not floats.
	SetOffsets(vtxOffset, idxOffset int)
}

// ShapeBase is the base shape element
type ShapeBase struct {

	// vertex offset, in points
	VertexOffset int

	// index offset, in points
	IndexOffset int

	// cubic bounding box in local coords
	CBBox math32.Box3

	// all shapes take a 3D position offset to enable composition
	Pos math32.Vector3
}

// Offsets returns starting offset for vertices, indexes in full shape array,
// in terms of points, not floats
func (sb *ShapeBase) Offsets() (vtxOffset, idxOffset int) {
	vtxOffset, idxOffset = sb.VertexOffset, sb.IndexOffset
	return
}

// SetOffsets sets starting offsets for vertices, indexes in full shape array
func (sb *ShapeBase) SetOffsets(vtxOffset, idxOffset int) {
	sb.VertexOffset, sb.IndexOffset = vtxOffset, idxOffset
}

// MeshBBox returns the bounding box for the shape, typically centered around 0
// This is only valid after Set has been called.
func (sb *ShapeBase) MeshBBox() math32.Box3 {
	return sb.CBBox
}

// SetColor sets color for given range of vertex indexes
func SetColor(clrs math32.ArrayF32, vtxOffset int, numVertex int, clr math32.Vector4) {
	cidx := vtxOffset * 4
	for vi := 0; vi < numVertex; vi++ {
		clr.ToSlice(clrs, cidx+vi*4)
	}
}

// BBoxFromVtxs returns the bounding box updated from the range of vertex points
func BBoxFromVtxs(vertex math32.ArrayF32, vtxOffset int, numVertex int) math32.Box3 {
	bb := math32.B3Empty()
	vidx := vtxOffset * 3
	var vtx math32.Vector3
	for vi := 0; vi < numVertex; vi++ {
		vtx.FromSlice(vertex, vidx+vi*3)
		bb.ExpandByPoint(vtx)
	}
	return bb
}
