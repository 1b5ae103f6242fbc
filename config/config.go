// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration struct
// of the tree scene and the xmastree tool.
package config

import (
	"fmt"

	"cogentcore.org/xmastree/base/iox/tomlx"
	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"
)

// MaxTriangles is the largest number of foliage triangles whose
// vertices can all be addressed by a 16-bit index buffer.
const MaxTriangles = 65535 / 3

// Config is the main config struct that contains all of the
// configuration options for generating and showing the scene.
type Config struct {

	// the number of foliage triangles (NUMBER_OF_TRIANGLES)
	Triangles int `default:"1000"`

	// the height of the foliage cone (TREE_HEIGHT)
	TreeHeight float32 `default:"3"`

	// the radius of the foliage cone at its base (TREE_WIDTH)
	TreeWidth float32 `default:"1.4"`

	// the number of ornaments hung on the tree (NUMBER_OF_DECORATIONS)
	Decorations int `default:"10"`

	// the random seed; 0 means a new seed each run
	Seed int64

	// the output file; the format is chosen by extension (.obj, .yaml, .png)
	Output string

	// the width of preview images in pixels
	Width int `default:"800"`

	// the height of preview images in pixels
	Height int `default:"800"`

	// preview images are rendered this many times larger and scaled down
	Supersample int `default:"1"`

	// the number of frames to step through in the animate command
	Frames int `default:"120"`

	// the frame rate of the animate command
	FPS int `default:"60"`
}

// Defaults sets the default values of all fields.
func (cfg *Config) Defaults() {
	cfg.Triangles = 1000
	cfg.TreeHeight = 3
	cfg.TreeWidth = 1.4
	cfg.Decorations = 10
	cfg.Width = 800
	cfg.Height = 800
	cfg.Supersample = 1
	cfg.Frames = 120
	cfg.FPS = 60
}

// New returns a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.Defaults()
	return cfg
}

// Validate returns an error if the configuration cannot produce a scene:
// the tree dimensions must be strictly positive, and the foliage must
// fit in a 16-bit index buffer.
func (cfg *Config) Validate() error {
	if cfg.Triangles < 0 || cfg.Triangles > MaxTriangles {
		return fmt.Errorf("config: Triangles must be in [0, %d]: %d", MaxTriangles, cfg.Triangles)
	}
	if !(cfg.TreeHeight > 0) {
		return fmt.Errorf("config: TreeHeight must be positive: %g", cfg.TreeHeight)
	}
	if !(cfg.TreeWidth > 0) {
		return fmt.Errorf("config: TreeWidth must be positive: %g", cfg.TreeWidth)
	}
	if cfg.Decorations < 0 {
		return fmt.Errorf("config: Decorations must not be negative: %d", cfg.Decorations)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("config: image size must be positive: %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Supersample < 1 || cfg.Supersample > 8 {
		return fmt.Errorf("config: Supersample must be in [1, 8]: %d", cfg.Supersample)
	}
	if cfg.Frames < 0 || cfg.FPS <= 0 {
		return fmt.Errorf("config: Frames must not be negative and FPS must be positive: %d, %d", cfg.Frames, cfg.FPS)
	}
	return nil
}

// Open returns the defaults overwritten by the values in the given TOML file.
func Open(filename string) (*Config, error) {
	cfg := New()
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	if err := tomlx.Open(cfg, fn); err != nil {
		return nil, fmt.Errorf("config: %s: %w", filename, err)
	}
	return cfg, nil
}

// Save writes the config to the given TOML file.
func (cfg *Config) Save(filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	return tomlx.Save(cfg, fn)
}

// Merge copies every non-zero field of overrides into cfg,
// so explicitly given values win over file and default values.
func (cfg *Config) Merge(overrides *Config) error {
	return copier.CopyWithOption(cfg, overrides, copier.Option{IgnoreEmpty: true})
}

// OutputPath returns [Config.Output] with a leading ~ expanded
// to the home directory.
func (cfg *Config) OutputPath() (string, error) {
	return homedir.Expand(cfg.Output)
}
