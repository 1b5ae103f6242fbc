// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"cogentcore.org/xmastree/base/randx"
	"cogentcore.org/xmastree/base/tolassert"
	"cogentcore.org/xmastree/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrnament(t *testing.T) {
	md, err := GenerateOrnament()
	require.NoError(t, err)
	assert.Equal(t, "ornament", md.Name)
	assert.Equal(t, 12, md.NumVertex())
	assert.Equal(t, 20, md.NumTriangles())
	assert.Len(t, md.Colors, 48)
	assert.NoError(t, md.Validate())

	tolAssertEqualVector(t, math32.Vec3(0, 0, -1.902*OrnamentScale), md.Vertex(0))
	for vi := 0; vi < md.NumVertex(); vi++ {
		assert.Equal(t, OrnamentColor, md.VertexColor(vi))
		// all vertices lie on the circumsphere
		tolassert.EqualTol(t, 1.902*OrnamentScale, md.Vertex(vi).Length(), 1.0e-3)
	}
	assert.Equal(t, math32.ArrayU32{1, 11, 7}, md.Indices[:3])
	for ti := 0; ti < md.NumTriangles(); ti++ {
		assert.Greater(t, md.Triangle(ti).Area(), float32(0))
	}
}

func TestStar(t *testing.T) {
	md, err := GenerateStar()
	require.NoError(t, err)
	assert.Equal(t, 12, md.NumVertex())
	assert.Equal(t, 20, md.NumTriangles())
	assert.NoError(t, md.Validate())
	for vi := 0; vi < md.NumVertex(); vi++ {
		assert.Equal(t, StarColor, md.VertexColor(vi))
		assert.LessOrEqual(t, md.Vertex(vi).Length(), float32(StarScale+1.0e-4))
	}
	tolAssertEqualVector(t, math32.Vec3(0, StarScale, 0), md.Vertex(0))
	tolassert.EqualTol(t, StarScale, md.BBox.Max.Y, 1.0e-5)
	tolassert.EqualTol(t, -0.8090*StarScale, md.BBox.Min.Y, 1.0e-5)
	tolassert.EqualTol(t, -0.3*StarScale, md.BBox.Min.Z, 1.0e-5)
	tolassert.EqualTol(t, 0.3*StarScale, md.BBox.Max.Z, 1.0e-5)
}

func TestFixedDeterministic(t *testing.T) {
	a, err := GenerateOrnament()
	require.NoError(t, err)
	b, err := GenerateOrnament()
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a, b)

	s1, err := GenerateStar()
	require.NoError(t, err)
	s2, err := GenerateStar()
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
}

func TestFixedMeshBadFace(t *testing.T) {
	fm := &FixedMesh{Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, Faces: [][3]uint32{{0, 1, 3}}, Scale: 1}
	_, err := NewMeshData("bad", fm)
	assert.Error(t, err)
}

func TestGroup(t *testing.T) {
	fo := NewFoliage(2, 3, 1.4, nil)
	or := NewOrnament()
	or.Pos = math32.Vec3(0, 10, 0)
	gp := NewGroup(fo)
	gp.Add(or)

	nv, ni, hc := gp.MeshSize()
	assert.Equal(t, 6+12, nv)
	assert.Equal(t, 6+60, ni)
	assert.True(t, hc)

	md, err := NewMeshData("scene", gp)
	require.NoError(t, err)
	assert.NoError(t, md.Validate())
	assert.Equal(t, math32.ArrayU32{0, 1, 2, 3, 4, 5}, md.Indices[:6])
	assert.Equal(t, math32.ArrayU32{6 + 1, 6 + 11, 6 + 7}, md.Indices[6:9])
	assert.Equal(t, FoliagePalette[1], md.VertexColor(5))
	assert.Equal(t, OrnamentColor, md.VertexColor(6))
	tolAssertEqualVector(t, math32.Vec3(0, 10, -1.902*OrnamentScale), md.Vertex(6))

	vo, io := or.Offsets()
	assert.Equal(t, 6, vo)
	assert.Equal(t, 6, io)
	assert.True(t, md.BBox.ContainsPoint(md.Vertex(0)))
	assert.True(t, md.BBox.ContainsPoint(md.Vertex(17)))
}

func TestUint16Indices(t *testing.T) {
	md, err := GenerateOrnament()
	require.NoError(t, err)
	idx, err := md.Uint16Indices()
	require.NoError(t, err)
	assert.Len(t, idx, 60)
	assert.Equal(t, uint16(11), idx[1])

	big := &MeshData{Name: "big", Indices: math32.ArrayU32{0, 65535, 65536}}
	_, err = big.Uint16Indices()
	assert.Error(t, err)
}

func TestMeshDataValidate(t *testing.T) {
	md := &MeshData{Positions: math32.ArrayF32{0, 0, 0, 1, 1, 1, 2, 2, 2}, Colors: make(math32.ArrayF32, 12), Indices: math32.ArrayU32{0, 1, 2}}
	assert.NoError(t, md.Validate())
	md.Indices[2] = 3
	assert.Error(t, md.Validate())
	md.Indices = math32.ArrayU32{0, 1}
	assert.Error(t, md.Validate())
	md.Indices = math32.ArrayU32{0, 1, 2}
	md.Colors = make(math32.ArrayF32, 8)
	assert.Error(t, md.Validate())
	md.Positions = md.Positions[:8]
	assert.Error(t, md.Validate())
}

func TestInstance(t *testing.T) {
	tree, err := GenerateFoliage(3, 3, 1.4, randx.NewSysRand(9))
	require.NoError(t, err)
	orn, err := GenerateOrnament()
	require.NoError(t, err)
	gp := NewGroup(NewInstance(tree, math32.Vector3{}), NewInstance(orn, math32.Vec3(1, 2, 3)))
	md, err := NewMeshData("baked", gp)
	require.NoError(t, err)
	assert.Equal(t, 9+12, md.NumVertex())
	assert.Equal(t, tree.Positions, md.Positions[:27])
	assert.Equal(t, tree.Colors, md.Colors[:36])
	assert.Equal(t, uint32(9+1), md.Indices[9])
	tolAssertEqualVector(t, orn.Vertex(4).Add(math32.Vec3(1, 2, 3)), md.Vertex(9+4))
	assert.Equal(t, OrnamentColor, md.VertexColor(20))

	bad := &MeshData{Indices: math32.ArrayU32{0, 1, 2}}
	_, err = NewMeshData("bad", NewInstance(bad, math32.Vector3{}))
	assert.Error(t, err)
}
