// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package generate provides utilities for building code generators
// on top of [packages]: loading packages, walking their syntax,
// and formatting and writing generated files.
package generate

import (
	"fmt"
	"go/ast"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/imports"
)

// Tool is the name of the tool written in generated file headers.
const Tool = "enumstringify"

// PrintHeader prints a header to the given writer for a generated
// file in the given package with the given imports. Imports do not
// need to be set if they are all handled by [Format].
func PrintHeader(w io.Writer, pkg string, imports ...string) {
	fmt.Fprintf(w, "// Code generated by %q; DO NOT EDIT.\n\n", Tool)
	fmt.Fprintf(w, "package %s\n", pkg)
	if len(imports) > 0 {
		fmt.Fprint(w, "import (\n")
		for _, imp := range imports {
			fmt.Fprintf(w, "\t%q\n", imp)
		}
		fmt.Fprint(w, ")\n")
	}
}

// Load loads and returns the Go packages named by the given patterns
// using the given configuration. It returns an error if any of the
// packages have errors.
func Load(cfg *packages.Config, patterns ...string) ([]*packages.Package, error) {
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, err
	}
	var errs *multierror.Error
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = multierror.Append(errs, e)
		}
	})
	if err := errs.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("error loading packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found for %v", patterns)
	}
	return pkgs, nil
}

// StubOverlay returns a [packages.Config.Overlay] that replaces the file
// with the given name in each package named by the patterns with an empty
// file of the same package. A generator loads packages with it so that its
// previous output, which may no longer compile, is not type checked.
func StubOverlay(cfg *packages.Config, filename string, patterns ...string) (map[string][]byte, error) {
	lcfg := *cfg
	lcfg.Mode = packages.NeedName | packages.NeedFiles
	lcfg.Overlay = nil
	pkgs, err := packages.Load(&lcfg, patterns...)
	if err != nil {
		return nil, err
	}
	overlay := map[string][]byte{}
	for _, pkg := range pkgs {
		out := Filepath(pkg, filename)
		for _, file := range pkg.GoFiles {
			if file == out {
				overlay[file] = []byte("package " + pkg.Name + "\n")
			}
		}
	}
	return overlay, nil
}

// Inspect calls [ast.Inspect] on every file of the given package that
// is not itself generated, using the given function. The function
// returns whether to continue into the children of the node, and any
// error. Inspection stops at the first error.
func Inspect(pkg *packages.Package, f func(n ast.Node) (bool, error)) error {
	for _, file := range pkg.Syntax {
		if ast.IsGenerated(file) {
			continue
		}
		var terr error
		ast.Inspect(file, func(n ast.Node) bool {
			if terr != nil {
				return false
			}
			cont, err := f(n)
			if err != nil {
				terr = err
				return false
			}
			return cont
		})
		if terr != nil {
			return terr
		}
	}
	return nil
}

// Filepath returns the path of the file with the given name
// in the directory of the given package.
func Filepath(pkg *packages.Package, filename string) string {
	dir := "."
	if len(pkg.GoFiles) > 0 {
		dir = filepath.Dir(pkg.GoFiles[0])
	}
	return filepath.Join(dir, filename)
}

// Format formats the given Go source with [imports.Process], adding
// and removing imports as needed. The filename is used for error
// messages and to resolve local imports.
func Format(filename string, src []byte, opts *imports.Options) ([]byte, error) {
	b, err := imports.Process(filename, src, opts)
	if err != nil {
		return nil, fmt.Errorf("internal error: invalid Go generated in %s: %w; source:\n%s", filename, err, src)
	}
	return b, nil
}

// Write formats the given source with [Format] and writes it
// to the given file.
func Write(filename string, src []byte, opts *imports.Options) error {
	b, err := Format(filename, src, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
