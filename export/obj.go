// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export writes tree scenes to files: baked meshes as
// Wavefront OBJ with vertex colors, and scene summaries as YAML.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/xmastree/scene"
	"cogentcore.org/xmastree/shape"
)

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// WriteOBJ writes the mesh as a Wavefront OBJ object. Each vertex line
// carries its position and its RGB color; faces use 1-based indexes.
func WriteOBJ(w io.Writer, md *shape.MeshData) error {
	if err := md.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", md.NumVertex(), md.NumTriangles())
	fmt.Fprintf(bw, "o %s\n", md.Name)
	for vi := 0; vi < md.NumVertex(); vi++ {
		p := md.Vertex(vi)
		c := md.VertexColor(vi)
		fmt.Fprintf(bw, "v %s %s %s %s %s %s\n", formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z), formatFloat(c.X), formatFloat(c.Y), formatFloat(c.Z))
	}
	for i := 0; i < len(md.Indices); i += 3 {
		fmt.Fprintf(bw, "f %d %d %d\n", md.Indices[i]+1, md.Indices[i+1]+1, md.Indices[i+2]+1)
	}
	return bw.Flush()
}

// SaveOBJ writes the mesh to the given OBJ file.
func SaveOBJ(md *shape.MeshData, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := WriteOBJ(f, md); err != nil {
		return err
	}
	return f.Close()
}

// Save writes the scene to the given file, in the format given by
// its extension: the baked mesh for .obj, and the summary for .yaml or .yml.
func Save(sc *scene.Scene, filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".obj":
		md, err := sc.Bake()
		if err != nil {
			return err
		}
		return SaveOBJ(md, filename)
	case ".yaml", ".yml":
		return SaveYAML(sc, filename)
	}
	return fmt.Errorf("export.Save: %s: extension not recognized, use .obj, .yaml or .yml", filename)
}
