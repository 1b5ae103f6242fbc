// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Triangles  int
	TreeHeight float32
}

func TestWriteRead(t *testing.T) {
	v := &testStruct{Triangles: 1000, TreeHeight: 3}
	b, err := WriteBytes(v)
	require.NoError(t, err)
	back := &testStruct{}
	require.NoError(t, ReadBytes(back, b))
	assert.Equal(t, v, back)
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	require.NoError(t, os.WriteFile(a, []byte("Triangles = 10\nTreeHeight = 2.5\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("Triangles = 20\n"), 0o644))

	v := &testStruct{}
	require.NoError(t, OpenFiles(v, a, b))
	assert.Equal(t, 20, v.Triangles)
	assert.Equal(t, float32(2.5), v.TreeHeight)

	assert.Error(t, OpenFiles(v, a, filepath.Join(dir, "missing.toml")))

	fn := filepath.Join(dir, "saved.toml")
	require.NoError(t, Save(v, fn))
	back := &testStruct{}
	require.NoError(t, Open(back, fn))
	assert.Equal(t, v, back)
}
