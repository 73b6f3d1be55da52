// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumgen

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"log/slog"
	"text/template"

	"cogentcore.org/enumstringify/attr"
	"cogentcore.org/enumstringify/base/generate"
	"cogentcore.org/enumstringify/directive"
	"golang.org/x/tools/go/packages"
)

// Tool is the name of the tool in comment directives.
const Tool = "enumstringify"

// ErrNotEnum is returned when a type marked for generation
// is not a named integer type.
var ErrNotEnum = errors.New("enumstringify only works with enums")

// Generator holds the state of the generator.
// It is primarily used to buffer the output.
type Generator struct {
	Config *Config             // The configuration information
	Buf    bytes.Buffer        // The accumulated output.
	Pkgs   []*packages.Package // The packages we are scanning.
	Pkg    *packages.Package   // The packages we are currently on.
	Types  []*Type             // The enum types
}

// NewGenerator returns a new generator with the
// given configuration information and parsed packages.
func NewGenerator(config *Config, pkgs []*packages.Package) *Generator {
	return &Generator{Config: config, Pkgs: pkgs}
}

// PackageModes returns the package load modes needed for this generator
func PackageModes() packages.LoadMode {
	return packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedImports | packages.NeedTypes | packages.NeedTypesSizes | packages.NeedSyntax | packages.NeedTypesInfo
}

// Printf prints the formatted string to the
// accumulated output in [Generator.Buf]
func (g *Generator) Printf(format string, args ...any) {
	fmt.Fprintf(&g.Buf, format, args...)
}

// PrintHeader prints the header and package clause
// to the accumulated output
func (g *Generator) PrintHeader() {
	// the runtime package is external, so goimports
	// cannot find it; it handles everything else
	generate.PrintHeader(&g.Buf, g.Pkg.Name, "cogentcore.org/enumstringify")
}

// Find goes through all of the types in the package, finds those
// marked with enumstringify:enum, and adds them to [Generator.Types].
func (g *Generator) Find() error {
	g.Types = []*Type{}
	err := generate.Inspect(g.Pkg, g.Inspect)
	if err != nil {
		return fmt.Errorf("error while inspecting: %w", err)
	}
	return nil
}

// directives returns the annotations of all enumstringify:enum
// directives in the given comment groups, in order.
func directives(groups ...*ast.CommentGroup) ([]attr.Annotation, error) {
	var res []attr.Annotation
	for _, group := range groups {
		dirs, err := directive.ParseCommentGroup(group, Tool)
		if err != nil {
			return nil, err
		}
		for _, dir := range dirs {
			if dir.Directive != "enum" {
				return nil, fmt.Errorf("unrecognized %s directive %q (from %q)", Tool, dir.Directive, dir.String())
			}
			res = append(res, attr.Annotation(dir.Args))
		}
	}
	return res, nil
}

// Inspect looks at the given AST node and adds it
// to [Generator.Types] if it is marked with an appropriate
// comment directive. It returns whether the AST inspector should
// continue, and an error if there is one. It should only
// be called in [ast.Inspect].
func (g *Generator) Inspect(n ast.Node) (bool, error) {
	if _, ok := n.(*ast.FuncDecl); ok { // only package-level types can have methods generated
		return false, nil
	}
	gd, ok := n.(*ast.GenDecl)
	if !ok || gd.Tok != token.TYPE {
		return !ok, nil
	}
	for _, spec := range gd.Specs {
		ts := spec.(*ast.TypeSpec) // Guaranteed to succeed as this is TYPE.
		groups := []*ast.CommentGroup{ts.Doc, ts.Comment}
		if len(gd.Specs) == 1 { // the doc of the declaration belongs to its only type
			groups = append([]*ast.CommentGroup{gd.Doc}, groups...)
		}
		pos := g.Pkg.Fset.Position(ts.Pos())
		anns, err := directives(groups...)
		if err != nil {
			return false, fmt.Errorf("%v: %w", pos, err)
		}
		if len(anns) == 0 { // we must be told to add or we will not add
			continue
		}
		obj, ok := g.Pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
		if !ok {
			return false, fmt.Errorf("%v: no type information for %s", pos, ts.Name.Name)
		}
		basic, ok := obj.Type().Underlying().(*types.Basic)
		if !ok || basic.Info()&types.IsInteger == 0 || ts.TypeParams != nil {
			return false, fmt.Errorf("%v: type %s: %w", pos, ts.Name.Name, ErrNotEnum)
		}
		if obj.IsAlias() { // methods can only be declared on a defined type
			return false, fmt.Errorf("%v: type %s is an alias: %w", pos, ts.Name.Name, ErrNotEnum)
		}
		g.Types = append(g.Types, &Type{
			Name:        ts.Name.Name,
			Object:      obj,
			Pos:         pos,
			Unsigned:    basic.Info()&types.IsUnsigned != 0,
			Annotations: anns,
			Config:      g.Config,
		})
	}
	return false, nil
}

// Resolve finds the values of all of the types in [Generator.Types]
// and resolves their string forms. It logs any warnings.
func (g *Generator) Resolve() error {
	for _, typ := range g.Types {
		typ.Values = []Value{}
		err := generate.Inspect(g.Pkg, func(n ast.Node) (bool, error) {
			vals, cont, err := g.GenDecl(n, typ)
			typ.Values = append(typ.Values, vals...)
			return cont, err
		})
		if err != nil {
			return fmt.Errorf("%v: type %s: %w", typ.Pos, typ.Name, err)
		}
		values := make([]attr.Value, len(typ.Values))
		for i, v := range typ.Values {
			values[i] = attr.Value{Ident: v.Ident, Annotations: v.Annotations}
		}
		names, warnings, err := attr.Resolve(typ.Annotations, values)
		if err != nil {
			return fmt.Errorf("%v: type %s: %w", typ.Pos, typ.Name, err)
		}
		for i, n := range names {
			typ.Values[i].Text = n.Text
		}
		typ.Warnings = warnings
		for _, w := range warnings {
			slog.Warn(w, "type", typ.Name, "pos", typ.Pos.String())
		}
	}
	return nil
}

// GenDecl processes one declaration clause, returning the values
// of the given type that it declares. It returns whether the AST
// inspector should continue, and an error if there is one. It
// should only be called in [ast.Inspect].
func (g *Generator) GenDecl(node ast.Node, typ *Type) ([]Value, bool, error) {
	if _, ok := node.(*ast.FuncDecl); ok {
		return nil, false, nil
	}
	decl, ok := node.(*ast.GenDecl)
	if !ok {
		return nil, true, nil
	}
	if decl.Tok != token.CONST {
		// We only care about const declarations.
		return nil, false, nil
	}
	vals := []Value{}
	single := len(decl.Specs) == 1
	for _, spec := range decl.Specs {
		vspec := spec.(*ast.ValueSpec) // Guaranteed to succeed as this is CONST.
		var anns []attr.Annotation
		for _, n := range vspec.Names {
			if n.Name == "_" {
				continue
			}
			// the type checker has already carried down implicit types and values
			obj, ok := g.Pkg.TypesInfo.Defs[n].(*types.Const)
			if !ok || !types.Identical(obj.Type(), typ.Object.Type()) {
				continue
			}
			if anns == nil {
				var err error
				groups := []*ast.CommentGroup{vspec.Doc, vspec.Comment}
				if single { // the doc of the declaration belongs to its only spec
					groups = append([]*ast.CommentGroup{decl.Doc}, groups...)
				}
				anns, err = directives(groups...)
				if err != nil {
					return nil, false, fmt.Errorf("%v: %w", g.Pkg.Fset.Position(n.Pos()), err)
				}
			}
			vals = append(vals, Value{
				Ident:       n.Name,
				Str:         obj.Val().ExactString(),
				Annotations: anns,
			})
		}
	}
	return vals, false, nil
}

// Generate produces the code for the types
// stored in [Generator.Types] and stores them in
// [Generator.Buf]. It returns whether there were
// any types to generate methods for, and
// any error that occurred.
func (g *Generator) Generate() (bool, error) {
	if len(g.Types) == 0 {
		return false, nil
	}
	if err := g.Resolve(); err != nil {
		return true, err
	}
	for _, typ := range g.Types {
		g.BuildVars(typ)
		g.BuildString(typ)
		g.ExecTmpl(MethodsTmpl, typ)
		if typ.Config.Text {
			g.ExecTmpl(TextMethodsTmpl, typ)
		}
		if typ.Config.JSON {
			g.ExecTmpl(JSONMethodsTmpl, typ)
		}
		if typ.Config.YAML {
			g.ExecTmpl(YAMLMethodsTmpl, typ)
		}
		if typ.Config.SQL {
			g.ExecTmpl(SQLMethodsTmpl, typ)
		}
	}
	return true, nil
}

// ExecTmpl executes the given template with the given type and
// writes the result to [Generator.Buf]. It panics on any error,
// since all templates are static and take a [Type].
func (g *Generator) ExecTmpl(t *template.Template, typ *Type) {
	err := t.Execute(&g.Buf, typ)
	if err != nil {
		panic(fmt.Errorf("programmer error: internal error: error executing template: %w", err))
	}
}

// Filepath returns the path of the output file of the current package.
func (g *Generator) Filepath() string {
	return generate.Filepath(g.Pkg, g.Config.Output)
}

// Format returns the formatted content of [Generator.Buf].
func (g *Generator) Format() ([]byte, error) {
	return generate.Format(g.Filepath(), g.Buf.Bytes(), nil)
}

// Write formats the data in the the Generator's buffer
// ([Generator.Buf]) and writes it to the file specified by
// [Generator.Config.Output].
func (g *Generator) Write() error {
	return generate.Write(g.Filepath(), g.Buf.Bytes(), nil)
}
