// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/enumstringify/base/errors"
	"cogentcore.org/enumstringify/enumgen"
	"cogentcore.org/enumstringify/logx"
	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
)

// debounce is how long to wait after the last change
// before regenerating.
const debounce = 200 * time.Millisecond

// Watcher decides which file changes trigger regeneration.
type Watcher struct {

	// Output is the base name of the generated files, which never
	// trigger regeneration.
	Output string

	// Ignore are the compiled ignore patterns, matched
	// against base file names.
	Ignore []glob.Glob
}

// NewWatcher returns a new [Watcher] for the given
// configuration and ignore patterns.
func NewWatcher(cfg *enumgen.Config, ignore []string) (*Watcher, error) {
	w := &Watcher{Output: filepath.Base(cfg.Output)}
	for _, pat := range ignore {
		g, err := glob.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pat, err)
		}
		w.Ignore = append(w.Ignore, g)
	}
	return w, nil
}

// Triggers returns whether the given event should trigger regeneration.
func (w *Watcher) Triggers(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename) {
		return false
	}
	name := filepath.Base(ev.Name)
	if !strings.HasSuffix(name, ".go") || name == w.Output {
		return false
	}
	for _, g := range w.Ignore {
		if g.Match(name) {
			return false
		}
	}
	return true
}

// Watch generates enum methods for the given configuration and then
// regenerates them whenever a Go file in one of the packages changes,
// until the context is done. Generation errors are logged and do not
// stop watching.
func Watch(ctx context.Context, cfg *enumgen.Config, ignore []string) error {
	w, err := NewWatcher(cfg, ignore)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	pkgs, err := enumgen.ParsePackages(cfg)
	if err != nil {
		return err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	dirs := map[string]bool{}
	for _, pkg := range pkgs {
		for _, file := range pkg.GoFiles {
			dirs[filepath.Dir(file)] = true
		}
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("error watching %s: %w", dir, err)
		}
	}

	regenerate := func() {
		if errors.Log(enumgen.Generate(cfg)) == nil {
			slog.Info(logx.SuccessColor("regenerated enum methods"), "dirs", len(dirs))
		}
	}
	regenerate()
	slog.Info("watching for changes", "dirs", len(dirs))

	timer := time.NewTimer(debounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.Triggers(ev) {
				slog.Debug("file changed", "file", ev.Name, "op", ev.Op.String())
				timer.Reset(debounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "err", err)
		case <-timer.C:
			regenerate()
		}
	}
}
