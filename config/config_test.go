// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, 1000, cfg.Triangles)
	assert.Equal(t, float32(3), cfg.TreeHeight)
	assert.Equal(t, float32(1.4), cfg.TreeWidth)
	assert.Equal(t, 10, cfg.Decorations)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cases := map[string]func(cfg *Config){
		"zero height":    func(cfg *Config) { cfg.TreeHeight = 0 },
		"negative width": func(cfg *Config) { cfg.TreeWidth = -1 },
		"negative count": func(cfg *Config) { cfg.Triangles = -1 },
		"too many":       func(cfg *Config) { cfg.Triangles = MaxTriangles + 1 },
		"decorations":    func(cfg *Config) { cfg.Decorations = -2 },
		"image size":     func(cfg *Config) { cfg.Width = 0 },
		"fps":            func(cfg *Config) { cfg.FPS = 0 },
		"supersample":    func(cfg *Config) { cfg.Supersample = 0 },
	}
	for name, mod := range cases {
		cfg := New()
		mod(cfg)
		assert.Error(t, cfg.Validate(), name)
	}

	cfg := New()
	cfg.Triangles = MaxTriangles
	assert.NoError(t, cfg.Validate())
	assert.Less(t, 3*cfg.Triangles, 65536)
}

func TestOpenSave(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "tree.toml")
	require.NoError(t, os.WriteFile(fn, []byte("Triangles = 500\nTreeHeight = 4.5\n"), 0o644))

	cfg, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Triangles)
	assert.Equal(t, float32(4.5), cfg.TreeHeight)
	assert.Equal(t, float32(1.4), cfg.TreeWidth) // default kept

	cfg.Decorations = 3
	out := filepath.Join(dir, "saved.toml")
	require.NoError(t, cfg.Save(out))
	back, err := Open(out)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)

	_, err = Open(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	cfg := New()
	require.NoError(t, cfg.Merge(&Config{Triangles: 42, Seed: 7}))
	assert.Equal(t, 42, cfg.Triangles)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, float32(3), cfg.TreeHeight)
	assert.Equal(t, 10, cfg.Decorations)
}

func TestOutputPath(t *testing.T) {
	cfg := New()
	cfg.Output = "tree.obj"
	p, err := cfg.OutputPath()
	require.NoError(t, err)
	assert.Equal(t, "tree.obj", p)
}
