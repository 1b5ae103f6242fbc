// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/xmastree/math32"
)

// Instance is a copy of already generated [MeshData] placed at Pos.
// It lets a [Group] combine meshes without generating them again,
// which matters for randomized meshes like [Foliage].
type Instance struct {
	ShapeBase

	// the mesh data to copy
	Data *MeshData
}

// NewInstance returns a new Instance of the given data at the given position.
func NewInstance(md *MeshData, pos math32.Vector3) *Instance {
	in := &Instance{Data: md}
	in.Pos = pos
	return in
}

func (in *Instance) MeshSize() (numVertex, numIndex int, hasColor bool) {
	return in.Data.NumVertex(), len(in.Data.Indices), true
}

// Set sets points in given allocated arrays
func (in *Instance) Set(vertex, clrs math32.ArrayF32, index math32.ArrayU32) error {
	if err := in.Data.Validate(); err != nil {
		return fmt.Errorf("shape.Instance: %w", err)
	}
	nv := in.Data.NumVertex()
	vo := in.VertexOffset
	for vi := 0; vi < nv; vi++ {
		in.Data.Vertex(vi).Add(in.Pos).ToSlice(vertex, (vo+vi)*3)
	}
	copy(clrs[vo*4:], in.Data.Colors)
	for i, idx := range in.Data.Indices {
		index[in.IndexOffset+i] = uint32(vo) + idx
	}
	in.CBBox = BBoxFromVtxs(vertex, vo, nv)
	return nil
}
