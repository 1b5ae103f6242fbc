// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtToFormat(t *testing.T) {
	cases := map[string]Formats{".png": PNG, "JPG": JPEG, "jpeg": JPEG, ".gif": GIF, "tif": TIFF, ".bmp": BMP}
	for ext, f := range cases {
		got, err := ExtToFormat(ext)
		assert.NoError(t, err, ext)
		assert.Equal(t, f, got, ext)
	}
	_, err := ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".obj")
	assert.Error(t, err)
	assert.Equal(t, "TIFF", TIFF.String())
}

func TestSaveOpen(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	red := color.RGBA{200, 10, 10, 255}
	img.SetRGBA(2, 3, red)
	dir := t.TempDir()
	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		fn := filepath.Join(dir, "img"+ext)
		require.NoError(t, Save(img, fn), ext)
		back, f, err := Open(fn)
		require.NoError(t, err, ext)
		exp, _ := ExtToFormat(ext)
		assert.Equal(t, exp, f)
		assert.Equal(t, img.Bounds(), back.Bounds())
		assert.Equal(t, 1, CountColor(back, red, 0), ext)
	}
	assert.Error(t, Save(img, filepath.Join(dir, "img.svg")))
}

func TestCompareColors(t *testing.T) {
	a := color.RGBA{10, 20, 30, 255}
	assert.True(t, CompareColors(a, color.RGBA{12, 18, 30, 255}, 2))
	assert.False(t, CompareColors(a, color.RGBA{13, 20, 30, 255}, 2))
}
