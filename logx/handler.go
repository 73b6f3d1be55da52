// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Handler is a [slog.Handler] that writes one human-readable line per
// record: the message colored by its level followed by its attributes
// as key=value pairs. It does not print times.
type Handler struct {
	w      io.Writer
	level  slog.Leveler
	mu     *sync.Mutex
	prefix string // pre-formatted attributes from WithAttrs
	group  string // current group prefix, with a trailing dot
}

// NewHandler returns a new [Handler] that writes to the given writer
// and shows records at or above the given level. If level is nil,
// [UserLevel] is used, as it is when it changes.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	if level == nil {
		level = &UserLevel
	}
	return &Handler{w: w, level: level, mu: &sync.Mutex{}}
}

// SetDefaultLogger sets the default [slog] logger to one
// that writes to [Output] with a [Handler] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(Output, nil)))
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	msg := r.Message
	if r.Level >= slog.LevelWarn {
		msg = r.Level.String() + ": " + msg
	}
	b.WriteString(LevelColor(r.Level, msg))
	b.WriteString(h.prefix)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.group, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	for _, a := range attrs {
		appendAttr(&b, h.group, a)
	}
	nh := *h
	nh.prefix += b.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.group += name + "."
	return &nh
}

// appendAttr writes the given attribute to b as " key=value",
// flattening groups into dotted keys.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			group += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, group, ga)
		}
		return
	}
	val := a.Value.String()
	if strings.ContainsAny(val, " \t\n\"=") {
		val = fmt.Sprintf("%q", val)
	}
	b.WriteString(" " + group + a.Key + "=" + val)
}
