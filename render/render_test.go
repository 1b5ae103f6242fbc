// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"path/filepath"
	"testing"

	"cogentcore.org/xmastree/base/iox/imagex"
	"cogentcore.org/xmastree/base/randx"
	"cogentcore.org/xmastree/config"
	"cogentcore.org/xmastree/scene"
	"cogentcore.org/xmastree/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScene(t *testing.T, triangles, decorations int) *scene.Scene {
	t.Helper()
	cfg := config.New()
	cfg.Triangles = triangles
	cfg.Decorations = decorations
	sc, err := scene.New(cfg, randx.NewSysRand(7))
	require.NoError(t, err)
	return sc
}

func TestProject(t *testing.T) {
	sc := newTestScene(t, 200, 5)
	tris, err := Project(sc, scene.FrameState{Rotation: 1}, 400, 300)
	require.NoError(t, err)
	assert.Len(t, tris, 200+5*20+20)
	for i := 1; i < len(tris); i++ {
		assert.GreaterOrEqual(t, tris[i-1].Depth, tris[i].Depth)
	}
	for _, tr := range tris {
		assert.Greater(t, tr.Depth, float32(-1))
		assert.Less(t, tr.Depth, float32(1))
	}
}

func TestPreviewStar(t *testing.T) {
	// only the star is drawn
	sc := newTestScene(t, 0, 0)
	img, err := Preview(sc, scene.FrameState{}, 200, 200)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 200, 200), img.Bounds())

	bg := ClearColor.NRGBA()
	c := img.RGBAAt(0, 0)
	assert.Equal(t, bg.R, c.R)
	assert.Equal(t, bg.G, c.G)
	assert.Equal(t, bg.B, c.B)
	assert.Equal(t, uint8(255), c.A)

	assert.Greater(t, imagex.CountColor(img, shape.StarColor.NRGBA(), 2), 20)
	// the star is above the middle of the image
	for x := 0; x < 200; x++ {
		c := img.RGBAAt(x, 199)
		assert.Equal(t, bg.R, c.R)
	}
}

func TestPreviewTree(t *testing.T) {
	sc := newTestScene(t, 1000, 10)
	fs := scene.FrameState{}
	a, err := Preview(sc, fs, 160, 120)
	require.NoError(t, err)
	fs.Step(0.5)
	b, err := Preview(sc, fs, 160, 120)
	require.NoError(t, err)

	bg := ClearColor.NRGBA()
	fg := 0
	for i := 0; i < len(a.Pix); i += 4 {
		if a.Pix[i] != bg.R || a.Pix[i+1] != bg.G || a.Pix[i+2] != bg.B {
			fg++
		}
	}
	assert.Greater(t, fg, 160*120/20)
	assert.NotEqual(t, a.Pix, b.Pix)

	_, err = Preview(sc, fs, 0, 10)
	assert.Error(t, err)
}

func TestPreviewSupersampled(t *testing.T) {
	sc := newTestScene(t, 300, 4)
	fs := scene.FrameState{Rotation: 0.3}
	a, err := PreviewSupersampled(sc, fs, 50, 40, 1)
	require.NoError(t, err)
	b, err := Preview(sc, fs, 50, 40)
	require.NoError(t, err)
	assert.Equal(t, b.Pix, a.Pix)

	c, err := PreviewSupersampled(sc, fs, 50, 40, 3)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 50, 40), c.Bounds())
	bg := ClearColor.NRGBA()
	assert.Equal(t, bg.R, c.RGBAAt(0, 0).R)
	assert.Equal(t, bg.G, c.RGBAAt(0, 0).G)
}

func TestSave(t *testing.T) {
	sc := newTestScene(t, 50, 2)
	img, err := Preview(sc, scene.FrameState{}, 64, 48)
	require.NoError(t, err)
	fn := filepath.Join(t.TempDir(), "tree.png")
	require.NoError(t, Save(img, fn))

	back, f, err := imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, imagex.PNG, f)
	assert.Equal(t, img.Bounds(), back.Bounds())
	assert.Equal(t, img.Pix, imagex.AsRGBA(back).Pix)

	assert.Error(t, Save(img, filepath.Join(t.TempDir(), "tree.obj")))
}
