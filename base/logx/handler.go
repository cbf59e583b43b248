// Copyright (c) 2025, The Navis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// SetDefaultLogger sets the default logger to a [NewHandler] writing
// to [os.Stderr], filtered by [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// NewHandler returns a text handler writing to w that only emits records
// at or above [UserLevel]. Level names are colored when w is a terminal
// that supports it.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: userLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) != 0 || a.Key != slog.LevelKey {
				return a
			}
			if l, ok := a.Value.Any().(slog.Level); ok {
				a.Value = slog.StringValue(LevelString(out, l))
			}
			return a
		},
	})
}

// LevelString returns the name of the given level styled for out.
func LevelString(out *termenv.Output, l slog.Level) string {
	s := out.String(l.String())
	switch {
	case l >= slog.LevelError:
		s = s.Foreground(out.Color("1")).Bold()
	case l >= slog.LevelWarn:
		s = s.Foreground(out.Color("3"))
	case l >= slog.LevelInfo:
		s = s.Foreground(out.Color("4"))
	default:
		s = s.Faint()
	}
	return s.String()
}
