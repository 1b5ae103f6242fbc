// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"math"
	"slices"

	"cogentcore.org/xmastree/math32"
)

// MeshData is the generated data of a [Mesh]: flat arrays of
// vertex positions (3 floats per vertex), vertex colors (4 floats per
// vertex) and triangle corner indexes (3 per triangle).
// It is produced once and not modified after.
type MeshData struct {
	// Name is the name of the mesh, used to refer to it in a scene.
	Name string

	// Positions has x, y, z for each vertex.
	Positions math32.ArrayF32

	// Colors has r, g, b, a for each vertex.
	Colors math32.ArrayF32

	// Indices has the three vertex indexes of each triangle.
	Indices math32.ArrayU32

	// BBox is the bounding box of Positions.
	BBox math32.Box3
}

// NewMeshData allocates arrays of the size given by [Mesh.MeshSize]
// and sets them from the given mesh, which is placed at offset 0.
// Meshes with a Validate method are validated before allocation.
func NewMeshData(name string, ms Mesh) (*MeshData, error) {
	if vl, ok := ms.(interface{ Validate() error }); ok {
		if err := vl.Validate(); err != nil {
			return nil, err
		}
	}
	nv, ni, _ := ms.MeshSize()
	md := &MeshData{
		Name:      name,
		Positions: math32.NewArrayF32(3*nv, 3*nv),
		Colors:    math32.NewArrayF32(4*nv, 4*nv),
		Indices:   math32.NewArrayU32(ni, ni),
	}
	ms.SetOffsets(0, 0)
	if err := ms.Set(md.Positions, md.Colors, md.Indices); err != nil {
		return nil, err
	}
	md.BBox = ms.MeshBBox()
	return md, nil
}

// NumVertex returns the number of vertices.
func (md *MeshData) NumVertex() int {
	return len(md.Positions) / 3
}

// NumTriangles returns the number of triangles.
func (md *MeshData) NumTriangles() int {
	return len(md.Indices) / 3
}

// Validate returns an error if the arrays are not consistent:
// positions and colors must describe the same vertices, and
// every index must refer to one of them.
func (md *MeshData) Validate() error {
	if len(md.Positions)%3 != 0 {
		return fmt.Errorf("shape.MeshData %q: %d position floats is not a multiple of 3", md.Name, len(md.Positions))
	}
	nv := md.NumVertex()
	if len(md.Colors) != 4*nv {
		return fmt.Errorf("shape.MeshData %q: %d color floats for %d vertices", md.Name, len(md.Colors), nv)
	}
	if len(md.Indices)%3 != 0 {
		return fmt.Errorf("shape.MeshData %q: %d indices is not a multiple of 3", md.Name, len(md.Indices))
	}
	for i, idx := range md.Indices {
		if int(idx) >= nv {
			return fmt.Errorf("shape.MeshData %q: index %d at %d is out of range for %d vertices", md.Name, idx, i, nv)
		}
	}
	return nil
}

// Uint16Indices returns the indices as 16-bit values, as required by
// 16-bit index buffers. It fails if any index does not fit.
func (md *MeshData) Uint16Indices() ([]uint16, error) {
	idx := make([]uint16, len(md.Indices))
	for i, v := range md.Indices {
		if v > math.MaxUint16 {
			return nil, fmt.Errorf("shape.MeshData %q: index %d does not fit in 16 bits; use fewer than %d vertices", md.Name, v, math.MaxUint16+1)
		}
		idx[i] = uint16(v)
	}
	return idx, nil
}

// Vertex returns the position of the given vertex.
func (md *MeshData) Vertex(vi int) math32.Vector3 {
	var v math32.Vector3
	md.Positions.GetVector3(vi*3, &v)
	return v
}

// VertexColor returns the color of the given vertex.
func (md *MeshData) VertexColor(vi int) math32.Vector4 {
	var c math32.Vector4
	md.Colors.GetVector4(vi*4, &c)
	return c
}

// Triangle returns the corners of the given triangle.
func (md *MeshData) Triangle(ti int) math32.Triangle {
	return math32.NewTriangle(md.Vertex(int(md.Indices[ti*3])), md.Vertex(int(md.Indices[ti*3+1])), md.Vertex(int(md.Indices[ti*3+2])))
}

// TriangleColor returns the color of the first corner of the given triangle,
// which is the face color for flat-colored meshes.
func (md *MeshData) TriangleColor(ti int) math32.Vector4 {
	return md.VertexColor(int(md.Indices[ti*3]))
}

// Equal returns whether the two meshes have identical arrays.
func (md *MeshData) Equal(other *MeshData) bool {
	return slices.Equal(md.Positions, other.Positions) && slices.Equal(md.Colors, other.Colors) && slices.Equal(md.Indices, other.Indices)
}
