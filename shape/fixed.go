// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/xmastree/math32"
)

// FixedMesh is a mesh given by literal tables: unit-sized vertex
// positions, triangles as corner-index triples, and one flat color
// for every vertex. Positions are multiplied by Scale and then
// offset by Pos. It has no randomness: every Set writes the same values.
type FixedMesh struct {
	ShapeBase

	// vertex positions, 3 floats per vertex, before scaling
	Vertices []float32

	// triangles as triples of indexes into Vertices
	Faces [][3]uint32

	// scale factor applied to all positions
	Scale float32

	// color of every vertex
	Color math32.Vector4
}

func (fm *FixedMesh) MeshSize() (numVertex, numIndex int, hasColor bool) {
	numVertex = len(fm.Vertices) / 3
	numIndex = 3 * len(fm.Faces)
	hasColor = true
	return
}

// Set sets points in given allocated arrays
func (fm *FixedMesh) Set(vertex, clrs math32.ArrayF32, index math32.ArrayU32) error {
	nv, _, _ := fm.MeshSize()
	vo := fm.VertexOffset
	io := fm.IndexOffset
	var vtx math32.Vector3
	for vi := 0; vi < nv; vi++ {
		vtx.FromSlice(fm.Vertices, vi*3)
		vtx.MulScalar(fm.Scale).Add(fm.Pos).ToSlice(vertex, (vo+vi)*3)
	}
	SetColor(clrs, vo, nv, fm.Color)
	for fi, face := range fm.Faces {
		for k, ci := range face {
			if int(ci) >= nv {
				return fmt.Errorf("shape.FixedMesh: face %d refers to vertex %d of %d", fi, ci, nv)
			}
			index[io+3*fi+k] = uint32(vo) + ci
		}
	}
	fm.CBBox = BBoxFromVtxs(vertex, vo, nv)
	return nil
}

// OrnamentScale is the size of an ornament relative to its unit table.
const OrnamentScale = 0.2

// OrnamentColor is the flat color of the ornaments.
var OrnamentColor = math32.Vec4(0, 0.263, 0.412, 1.0)

// ornamentVertices is an icosahedron with a circumradius of 1.902.
var ornamentVertices = []float32{
	0, 0, -1.902,
	0, 0, 1.902,
	-1.701, 0, -0.8507,
	1.701, 0, 0.8507,
	1.376, -1.000, -0.8507,
	1.376, 1.000, -0.8507,
	-1.376, -1.000, 0.8507,
	-1.376, 1.000, 0.8507,
	-0.5257, -1.618, -0.8507,
	-0.5257, 1.618, -0.8507,
	0.5257, -1.618, 0.8507,
	0.5257, 1.618, 0.8507,
}

var ornamentFaces = [][3]uint32{
	{1, 11, 7}, {1, 7, 6}, {1, 6, 10}, {1, 10, 3}, {1, 3, 11},
	{4, 8, 0}, {5, 4, 0}, {9, 5, 0}, {2, 9, 0}, {8, 2, 0},
	{11, 9, 7}, {7, 2, 6}, {6, 8, 10}, {10, 4, 3}, {3, 5, 11},
	{4, 10, 8}, {5, 3, 4}, {9, 11, 5}, {2, 7, 9}, {8, 6, 2},
}

// NewOrnament returns the ornament mesh hung on the tree.
func NewOrnament() *FixedMesh {
	return &FixedMesh{
		Vertices: ornamentVertices,
		Faces:    ornamentFaces,
		Scale:    OrnamentScale,
		Color:    OrnamentColor,
	}
}

// StarScale is the size of the star relative to its unit table.
const StarScale = 0.25

// StarColor is the flat color of the star.
var StarColor = math32.Vec4(1.0, 0.843, 0.0, 1.0)

// starVertices is a five-pointed star in the XY plane, points on a
// radius of 1 and notches on 0.382, with apexes at z = +/-0.3 giving
// it thickness. The rim starts at the top point and runs counter-clockwise.
var starVertices = []float32{
	0, 1, 0,
	-0.2245, 0.3090, 0,
	-0.9511, 0.3090, 0,
	-0.3633, -0.1180, 0,
	-0.5878, -0.8090, 0,
	0, -0.3820, 0,
	0.5878, -0.8090, 0,
	0.3633, -0.1180, 0,
	0.9511, 0.3090, 0,
	0.2245, 0.3090, 0,
	0, 0, 0.3,
	0, 0, -0.3,
}

var starFaces = [][3]uint32{
	{10, 0, 1}, {10, 1, 2}, {10, 2, 3}, {10, 3, 4}, {10, 4, 5},
	{10, 5, 6}, {10, 6, 7}, {10, 7, 8}, {10, 8, 9}, {10, 9, 0},
	{11, 1, 0}, {11, 2, 1}, {11, 3, 2}, {11, 4, 3}, {11, 5, 4},
	{11, 6, 5}, {11, 7, 6}, {11, 8, 7}, {11, 9, 8}, {11, 0, 9},
}

// NewStar returns the star mesh placed above the tree.
func NewStar() *FixedMesh {
	return &FixedMesh{
		Vertices: starVertices,
		Faces:    starFaces,
		Scale:    StarScale,
		Color:    StarColor,
	}
}

// GenerateOrnament returns the [MeshData] of the ornament.
func GenerateOrnament() (*MeshData, error) {
	return NewMeshData("ornament", NewOrnament())
}

// GenerateStar returns the [MeshData] of the star.
func GenerateStar() (*MeshData, error) {
	return NewMeshData("star", NewStar())
}
