// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws frames of a tree scene into images without a GPU,
// filling each flat-colored triangle with an anti-aliasing rasterizer
// in back-to-front order.
package render

import (
	"cmp"
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"slices"

	"cogentcore.org/xmastree/base/iox/imagex"
	"cogentcore.org/xmastree/math32"
	"cogentcore.org/xmastree/scene"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/vector"
)

// ClearColor is the background color of every frame.
var ClearColor = math32.Vec4(0.91, 0.875, 0.878, 1.0)

// Triangle is a triangle projected into an image.
type Triangle struct {

	// corners in pixel coordinates, with the normalized device depth in Z
	Corners [3]math32.Vector3

	// mean normalized device depth of the corners; larger is farther
	Depth float32

	// flat color of the triangle
	Color math32.Vector4
}

// Bounds returns the pixel rectangle covering the triangle.
func (tr *Triangle) Bounds() image.Rectangle {
	bb := math32.B3Empty()
	for _, c := range tr.Corners {
		bb.ExpandByPoint(c)
	}
	return image.Rect(int(math32.Floor(bb.Min.X)), int(math32.Floor(bb.Min.Y)), int(math32.Ceil(bb.Max.X)), int(math32.Ceil(bb.Max.Y)))
}

// Project returns every triangle drawn in the given frame of the scene,
// projected into an image of the given size and sorted back to front.
// Triangles with a corner behind the camera are dropped.
func Project(sc *scene.Scene, fs scene.FrameState, width, height int) ([]Triangle, error) {
	aspect := float32(width) / float32(height)
	var tris []Triangle
	for _, d := range sc.Draws(fs) {
		md, err := sc.Mesh(d.Mesh)
		if err != nil {
			return nil, err
		}
		cv := sc.Camera.CamView(&d, aspect)
		mvp := cv.MVP()
	triangles:
		for ti := 0; ti < md.NumTriangles(); ti++ {
			mt := md.Triangle(ti)
			tr := Triangle{Color: md.TriangleColor(ti)}
			for k, v := range []math32.Vector3{mt.A, mt.B, mt.C} {
				clip := math32.Vector4FromVector3(v, 1).MulMatrix4(mvp)
				if clip.W <= 0 {
					continue triangles
				}
				ndc := clip.PerspDiv()
				tr.Corners[k] = math32.Vec3((ndc.X+1)*0.5*float32(width), (1-ndc.Y)*0.5*float32(height), ndc.Z)
				tr.Depth += ndc.Z / 3
			}
			tris = append(tris, tr)
		}
	}
	slices.SortStableFunc(tris, func(a, b Triangle) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
	return tris, nil
}

// Preview renders the given frame of the scene into a new image
// of the given size.
func Preview(sc *scene.Scene, fs scene.FrameState, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render.Preview: image size must be positive: %dx%d", width, height)
	}
	tris, err := Project(sc, fs, width, height)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(ClearColor.NRGBA()), image.Point{}, draw.Src)
	ras := &vector.Rasterizer{}
	drawn := 0
	for i := range tris {
		tr := &tris[i]
		r := tr.Bounds().Intersect(img.Bounds())
		if r.Empty() {
			continue
		}
		// the rasterizer covers only r, with its origin at r.Min
		ras.Reset(r.Dx(), r.Dy())
		ox, oy := float32(r.Min.X), float32(r.Min.Y)
		ras.MoveTo(tr.Corners[0].X-ox, tr.Corners[0].Y-oy)
		ras.LineTo(tr.Corners[1].X-ox, tr.Corners[1].Y-oy)
		ras.LineTo(tr.Corners[2].X-ox, tr.Corners[2].Y-oy)
		ras.ClosePath()
		ras.Draw(img, r, image.NewUniform(tr.Color.NRGBA()), image.Point{})
		drawn++
	}
	slog.Debug("render.Preview", "rotation", fs.Rotation, "triangles", len(tris), "drawn", drawn)
	return img, nil
}

// PreviewSupersampled renders the frame factor times larger than the
// given size and scales it down with a box filter, which smooths the
// seams between neighboring triangles.
func PreviewSupersampled(sc *scene.Scene, fs scene.FrameState, width, height, factor int) (*image.RGBA, error) {
	if factor <= 1 {
		return Preview(sc, fs, width, height)
	}
	img, err := Preview(sc, fs, width*factor, height*factor)
	if err != nil {
		return nil, err
	}
	return transform.Resize(img, width, height, transform.Box), nil
}

// Save saves the image to the given file, in the format given
// by its extension (png, jpg, gif, tif, or bmp).
func Save(img image.Image, filename string) error {
	if err := imagex.Save(img, filename); err != nil {
		return fmt.Errorf("render.Save: %s: %w", filename, err)
	}
	return nil
}
