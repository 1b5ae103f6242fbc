// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/xmastree/base/iox/yamlx"
	"cogentcore.org/xmastree/base/randx"
	"cogentcore.org/xmastree/config"
	"cogentcore.org/xmastree/scene"
	"cogentcore.org/xmastree/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScene(t *testing.T) *scene.Scene {
	t.Helper()
	cfg := config.New()
	cfg.Triangles = 30
	cfg.Decorations = 2
	sc, err := scene.New(cfg, randx.NewSysRand(3))
	require.NoError(t, err)
	return sc
}

func TestWriteOBJ(t *testing.T) {
	md, err := shape.GenerateOrnament()
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, WriteOBJ(&b, md))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 2+12+20)
	assert.Equal(t, "# 12 vertices, 20 triangles", lines[0])
	assert.Equal(t, "o ornament", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "v 0 0 -0.38"), lines[2])
	assert.True(t, strings.HasSuffix(lines[2], " 0 0.263 0.412"), lines[2])
	assert.Equal(t, "f 2 12 8", lines[14])
	assert.Equal(t, "f 9 7 3", lines[33])

	bad := &shape.MeshData{Name: "bad", Indices: []uint32{0, 1, 2}}
	assert.Error(t, WriteOBJ(&b, bad))
}

func TestSummary(t *testing.T) {
	sc := newTestScene(t)
	sm := NewSummary(sc)
	require.Len(t, sm.Meshes, 3)
	assert.Equal(t, MeshSummary{Name: "tree", Vertices: 90, Triangles: 30, Min: vec3Array(sc.Meshes[0].BBox.Min), Max: vec3Array(sc.Meshes[0].BBox.Max)}, sm.Meshes[0])
	require.Len(t, sm.Draws, 4)
	assert.Equal(t, "star", sm.Draws[3].Mesh)
	assert.Equal(t, vec3Array(sc.Decorations[1]), sm.Draws[2].Pos)

	var b bytes.Buffer
	require.NoError(t, WriteYAML(&b, sc))
	assert.Contains(t, b.String(), "name: ornament")
	back := &Summary{}
	require.NoError(t, yamlx.ReadBytes(back, b.Bytes()))
	assert.Equal(t, sm, back)
}

func TestSave(t *testing.T) {
	sc := newTestScene(t)
	dir := t.TempDir()

	obj := filepath.Join(dir, "tree.obj")
	require.NoError(t, Save(sc, obj))
	data, err := os.ReadFile(obj)
	require.NoError(t, err)
	assert.Equal(t, 90+2*12+12, strings.Count(string(data), "\nv "))
	assert.Equal(t, 30+2*20+20, strings.Count(string(data), "\nf "))

	yml := filepath.Join(dir, "tree.yaml")
	require.NoError(t, Save(sc, yml))
	back := &Summary{}
	require.NoError(t, yamlx.Open(back, yml))
	assert.Equal(t, 30, back.Config.Triangles)

	assert.Error(t, Save(sc, filepath.Join(dir, "tree.png")))
}
