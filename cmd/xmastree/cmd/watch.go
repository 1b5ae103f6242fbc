// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/xmastree/base/errors"
	"cogentcore.org/xmastree/config"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Watch exports the scene of the given TOML config file, and exports
// it again every time the file is written, until the context is done.
// The apply function, if not nil, changes the config after each read.
// Errors reading the config or exporting are logged and do not stop
// the watch.
func Watch(ctx context.Context, filename string, apply func(c *config.Config) error) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	fn, err = filepath.Abs(fn)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// editors often replace the file, so the directory is watched
	if err := watcher.Add(filepath.Dir(fn)); err != nil {
		return err
	}

	update := func() {
		c, err := config.Open(fn)
		if err != nil {
			errors.Log(err)
			return
		}
		if apply != nil {
			if errors.Log(apply(c)) != nil {
				return
			}
		}
		errors.Log(Export(c))
	}
	update()
	slog.Info("watching config", "file", fn)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fn {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				slog.Debug("config changed", "op", event.Op.String())
				update()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
