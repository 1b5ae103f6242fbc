// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/xmastree/base/randx"
	"cogentcore.org/xmastree/math32"
)

// FoliagePalette is the default set of face colors of the foliage,
// assigned to triangles in order.
var FoliagePalette = []math32.Vector4{
	math32.Vec4(0.553, 0.608, 0.416, 1.0),
	math32.Vec4(0.44, 0.58, 0.39, 1.0),
	math32.Vec4(0.29, 0.55, 0.39, 1.0),
	math32.Vec4(0.47, 0.62, 0.17, 1.0),
}

// MaxDirectionTries is the number of random directions that are drawn
// for one triangle before a degenerate direction is reported as an error.
const MaxDirectionTries = 64

// Triangle size ranges. The overall size scales all corners;
// corner A is smaller than B and C, which gives each triangle
// an asymmetric, leaf-like shape.
const (
	MinTriangleScale = 0.15
	MaxTriangleScale = 0.25
	MinCornerAScale  = 0.5
	MaxCornerAScale  = 0.7
	MinCornerBCScale = 0.9
	MaxCornerBCScale = 1.1
)

// Foliage is a cloud of independent, randomly placed, oriented and
// sized triangles filling a cone of the given Height and base Width
// (radius), standing on the XZ plane with its apex on +Y.
// Each triangle owns its 3 vertices, colored with one Palette color,
// so the index list is the identity ramp.
type Foliage struct {
	ShapeBase

	// number of triangles
	Triangles int

	// height of the cone
	Height float32

	// radius of the cone at its base
	Width float32

	// face colors, assigned by triangle index modulo the palette length
	Palette []math32.Vector4

	// random source; the global source is used if nil
	Rand randx.Rand
}

// NewFoliage returns a new Foliage shape with given number of triangles,
// cone size, and random source.
func NewFoliage(triangles int, height, width float32, rnd randx.Rand) *Foliage {
	fo := &Foliage{}
	fo.Defaults()
	fo.Triangles = triangles
	fo.Height = height
	fo.Width = width
	fo.Rand = rnd
	return fo
}

func (fo *Foliage) Defaults() {
	fo.Triangles = 1000
	fo.Height = 3
	fo.Width = 1.4
	fo.Palette = FoliagePalette
}

// Validate returns an error if the parameters cannot produce
// a finite mesh.
func (fo *Foliage) Validate() error {
	if fo.Triangles < 0 {
		return fmt.Errorf("shape.Foliage: number of triangles must not be negative: %d", fo.Triangles)
	}
	if !(fo.Height > 0) || math32.IsInf(fo.Height, 1) {
		return fmt.Errorf("shape.Foliage: height must be positive and finite: %g", fo.Height)
	}
	if !(fo.Width > 0) || math32.IsInf(fo.Width, 1) {
		return fmt.Errorf("shape.Foliage: width must be positive and finite: %g", fo.Width)
	}
	if len(fo.Palette) == 0 {
		return fmt.Errorf("shape.Foliage: palette is empty")
	}
	return nil
}

func (fo *Foliage) MeshSize() (numVertex, numIndex int, hasColor bool) {
	numVertex = 3 * fo.Triangles
	numIndex = numVertex
	hasColor = true
	return
}

// Set sets points in given allocated arrays
func (fo *Foliage) Set(vertex, clrs math32.ArrayF32, index math32.ArrayU32) error {
	if err := fo.Validate(); err != nil {
		return err
	}
	rnd := fo.Rand
	if rnd == nil {
		rnd = randx.NewGlobalRand()
	}
	vo := fo.VertexOffset
	io := fo.IndexOffset
	for i := 0; i < fo.Triangles; i++ {
		a, b, c, err := fo.triangle(rnd)
		if err != nil {
			return fmt.Errorf("shape.Foliage: triangle %d: %w", i, err)
		}
		vi := vo + 3*i
		a.Add(fo.Pos).ToSlice(vertex, vi*3)
		b.Add(fo.Pos).ToSlice(vertex, (vi+1)*3)
		c.Add(fo.Pos).ToSlice(vertex, (vi+2)*3)
		SetColor(clrs, vi, 3, fo.Palette[i%len(fo.Palette)])
		for k := 0; k < 3; k++ {
			index[io+3*i+k] = uint32(vi + k)
		}
	}
	fo.CBBox = BBoxFromVtxs(vertex, vo, 3*fo.Triangles)
	return nil
}

// center returns a random point inside the cone, at a tree-biased height.
func (fo *Foliage) center(rnd randx.Rand) math32.Vector3 {
	y := randx.TreeBiased(rnd) * fo.Height
	radLimit := (fo.Height - y) * fo.Width / fo.Height
	angle := 2 * math32.Pi * rnd.Float32()
	rad := rnd.Float32() * radLimit
	return math32.Vec3(rad*math32.Cos(angle), y, rad*math32.Sin(angle))
}

// triangle returns the three corners of one random foliage triangle.
func (fo *Foliage) triangle(rnd randx.Rand) (a, b, c math32.Vector3, err error) {
	ctr := fo.center(rnd)
	d1, d2, err := spanningAxes(rnd)
	if err != nil {
		return
	}
	scale := randx.UniformRange(MinTriangleScale, MaxTriangleScale, rnd)
	sa := randx.UniformRange(MinCornerAScale, MaxCornerAScale, rnd)
	sb := randx.UniformRange(MinCornerBCScale, MaxCornerBCScale, rnd)
	sc := randx.UniformRange(MinCornerBCScale, MaxCornerBCScale, rnd)

	a = ctr.Add(d1.MulScalar(sa * scale))
	b = ctr.Sub(d1.Add(d2).MulScalar(sb * scale))
	c = ctr.Sub(d1.Sub(d2).MulScalar(sc * scale))
	return
}

// spanningAxes returns two orthonormal random directions spanning the
// plane of a triangle: a random unit d1, and a random vector made
// orthogonal to d1 by Gram-Schmidt. Draws that are too short to
// normalize are redrawn.
func spanningAxes(rnd randx.Rand) (d1, d2 math32.Vector3, err error) {
	for try := 0; try < MaxDirectionTries; try++ {
		d1, err = randomVector(rnd).NormalTry()
		if err != nil {
			continue
		}
		v := randomVector(rnd)
		d2, err = v.Sub(d1.MulScalar(d1.Dot(v))).NormalTry()
		if err == nil {
			return
		}
	}
	return
}

// randomVector returns a vector with each component uniform in [-1, 1).
func randomVector(rnd randx.Rand) math32.Vector3 {
	return math32.Vec3(randx.UniformSigned(rnd), randx.UniformSigned(rnd), randx.UniformSigned(rnd))
}

// GenerateFoliage returns the [MeshData] of a new [Foliage] with the
// given number of triangles and cone size, using the given random source.
func GenerateFoliage(triangles int, height, width float32, rnd randx.Rand) (*MeshData, error) {
	return NewMeshData("tree", NewFoliage(triangles, height, width, rnd))
}
