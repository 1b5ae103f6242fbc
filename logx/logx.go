// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default logger setup and
// terminal color helpers used by the command line tools.
package logx

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through [InitLogger] or the -v / -q command line flags.
// It defaults to [slog.LevelInfo], [slog.LevelDebug] with the
// debug build tag, and [slog.LevelWarn] with the release build tag.
var UserLevel = defaultUserLevel

// UseColor is whether to use color in log messages. It is on by default.
var UseColor = true

// level is the dynamic level shared with the installed handler.
var level = new(slog.LevelVar)

// InitLogger sets the default slog logger to a text handler writing to w,
// filtered at [UserLevel].
func InitLogger(w io.Writer) {
	level.Set(UserLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// SetLevel changes [UserLevel] and the level of the installed handler.
func SetLevel(lvl slog.Level) {
	UserLevel = lvl
	level.Set(lvl)
}

var profile = termenv.EnvColorProfile()

func colorize(s string, hex string) string {
	if !UseColor {
		return s
	}
	return termenv.String(s).Foreground(profile.Color(hex)).String()
}

// SuccessColor returns the given string in the success color (green).
func SuccessColor(s string) string {
	return colorize(s, "#2e7d32")
}

// CmdColor returns the given string in the command / emphasis color (blue).
func CmdColor(s string) string {
	return colorize(s, "#1565c0")
}

// WarnColor returns the given string in the warning color (amber).
func WarnColor(s string) string {
	return colorize(s, "#ff8f00")
}

// ErrorColor returns the given string in the error color (red).
func ErrorColor(s string) string {
	return colorize(s, "#c62828")
}

// PrintlnInfo prints the given values with [fmt.Println] to w
// if [UserLevel] is at or below [slog.LevelInfo].
func PrintlnInfo(w io.Writer, a ...any) {
	if UserLevel <= slog.LevelInfo {
		fmt.Fprintln(w, a...)
	}
}
