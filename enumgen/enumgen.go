// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enumgen provides functions for generating string
// conversion methods for enum types marked with
//
//	//enumstringify:enum
//
// comment directives.
package enumgen

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/enumstringify/base/generate"
	"golang.org/x/tools/go/packages"
)

// ParsePackages parses the package(s) located in the configuration source directory.
func ParsePackages(cfg *Config) ([]*packages.Package, error) {
	flags, err := cfg.BuildFlagList()
	if err != nil {
		return nil, err
	}
	dir, pattern := cfg.Dir, "."
	if d, ok := strings.CutSuffix(dir, "..."); ok {
		dir, pattern = d, "./..."
	}
	pcfg := &packages.Config{
		Mode:       PackageModes(),
		Dir:        dir,
		BuildFlags: flags,
		// constants in test files are not part of the package API
		Tests: false,
	}
	pcfg.Overlay, err = generate.StubOverlay(pcfg, cfg.Output, pattern)
	if err != nil {
		return nil, fmt.Errorf("enumstringify: Generate: error listing packages: %w", err)
	}
	pkgs, err := generate.Load(pcfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("enumstringify: Generate: error parsing package: %w", err)
	}
	return pkgs, err
}

// Generate generates enum methods, using the
// configuration information, loading the packages from the
// configuration source directory, and writing the result
// to the configuration output file.
//
// It is a simple entry point to enumgen that does all
// of the steps; for more specific functionality, create
// a new [Generator] with [NewGenerator] and call methods on it.
func Generate(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	pkgs, err := ParsePackages(cfg)
	if err != nil {
		return err
	}
	return GeneratePkgs(cfg, pkgs)
}

// GeneratePkgs generates enum methods using
// the given configuration object and packages parsed
// from the configuration source directory,
// and writes the result to the config output file.
// It is a simple entry point to enumgen that does all
// of the steps; for more specific functionality, create
// a new [Generator] with [NewGenerator] and call methods on it.
func GeneratePkgs(cfg *Config, pkgs []*packages.Package) error {
	g := NewGenerator(cfg, pkgs)
	for _, pkg := range g.Pkgs {
		g.Pkg = pkg
		g.Buf.Reset()
		err := g.Find()
		if err != nil {
			return fmt.Errorf("enumstringify: Generate: error finding enum types for package %q: %w", pkg.Name, err)
		}
		g.PrintHeader()
		has, err := g.Generate()
		if !has {
			continue
		}
		if err != nil {
			return fmt.Errorf("enumstringify: Generate: error generating code for package %q: %w", pkg.Name, err)
		}
		err = g.Write()
		if err != nil {
			return fmt.Errorf("enumstringify: Generate: error writing code for package %q: %w", pkg.Name, err)
		}
		slog.Info("wrote enum methods", "package", pkg.PkgPath, "types", len(g.Types), "file", g.Filepath())
	}
	return nil
}

// Check loads the packages in the configuration source directory and
// resolves the string forms of all of their enum types without writing
// anything. It returns the resolved types of all packages.
func Check(cfg *Config) ([]*Type, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pkgs, err := ParsePackages(cfg)
	if err != nil {
		return nil, err
	}
	g := NewGenerator(cfg, pkgs)
	var all []*Type
	for _, pkg := range g.Pkgs {
		g.Pkg = pkg
		if err := g.Find(); err != nil {
			return nil, fmt.Errorf("enumstringify: Check: error finding enum types for package %q: %w", pkg.Name, err)
		}
		if err := g.Resolve(); err != nil {
			return nil, fmt.Errorf("enumstringify: Check: error resolving enum types for package %q: %w", pkg.Name, err)
		}
		all = append(all, g.Types...)
	}
	return all, nil
}
