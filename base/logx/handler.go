// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger setup:
// a [slog] text handler filtered by [UserLevel] with the level
// names colored for terminal output.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// SetDefaultLogger sets the default logger to be a handler
// writing to [os.Stderr] at the current [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// NewHandler returns a new text [slog.Handler] writing to w. Messages
// below [UserLevel] are dropped, timestamps are omitted, and the level
// is colored when w is a color-capable terminal.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: userLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lvl, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				a.Value = slog.StringValue(out.String(lvl.String()).Foreground(LevelColor(lvl)).String())
			}
			return a
		},
	})
}

// LevelColor returns the terminal color used for the given level.
func LevelColor(level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return termenv.ANSIBrightRed
	case level >= slog.LevelWarn:
		return termenv.ANSIYellow
	case level >= slog.LevelInfo:
		return termenv.ANSICyan
	default:
		return termenv.ANSIBrightBlack
	}
}
