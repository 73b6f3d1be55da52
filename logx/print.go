// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// Output is the terminal output that log messages and colored
// strings are written to and rendered for. It defaults to standard error
// with the color profile detected from the environment.
var Output = termenv.NewOutput(os.Stderr)

// color returns the given string styled with the given foreground color
// for [Output].
func color(c termenv.ANSIColor, s string) string {
	return Output.String(s).Foreground(c).String()
}

// CmdColor returns the given string colored for a command or file name.
func CmdColor(s string) string { return color(termenv.ANSICyan, s) }

// SuccessColor returns the given string colored for a successful result.
func SuccessColor(s string) string { return color(termenv.ANSIGreen, s) }

// WarnColor returns the given string colored for a warning.
func WarnColor(s string) string { return color(termenv.ANSIYellow, s) }

// ErrorColor returns the given string colored for an error.
func ErrorColor(s string) string { return color(termenv.ANSIRed, s) }

// LevelColor returns the given string colored for the given level.
// Messages at [slog.LevelInfo] are not colored.
func LevelColor(level slog.Level, s string) string {
	switch {
	case level >= slog.LevelError:
		return ErrorColor(s)
	case level >= slog.LevelWarn:
		return WarnColor(s)
	case level < slog.LevelInfo:
		return Output.String(s).Faint().String()
	}
	return s
}
