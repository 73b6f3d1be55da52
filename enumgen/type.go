// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumgen

import (
	"go/token"
	"go/types"

	"cogentcore.org/enumstringify/attr"
	"cogentcore.org/enumstringify/base/ordmap"
)

// Type represents a parsed enum type.
type Type struct {
	Name        string            // The name of the type
	Object      *types.TypeName   // The type checker object of the type
	Pos         token.Position    // The position of the type declaration
	Unsigned    bool              // Whether the underlying type is an unsigned integer
	Annotations []attr.Annotation // The raw type-level annotations, in source order
	Values      []Value           // The declared values, in declaration order
	Warnings    []string          // Non-fatal problems found while resolving the values
	Config      *Config           // The configuration information of the generator
}

// Value represents a declared constant of an enum type.
type Value struct {
	Ident       string            // The identifier of the constant
	Text        string            // The resolved string form of the constant
	Str         string            // The constant value as given by the "go/constant" package
	Annotations []attr.Annotation // The raw annotations of the constant, in source order
}

// Unique returns the values of the type with at most one value per
// constant value, keeping the first declared one. These are the values
// of the String switch, Values and Strings, since a switch cannot have
// duplicate cases.
func (t *Type) Unique() []Value {
	seen := map[string]bool{}
	res := make([]Value, 0, len(t.Values))
	for _, v := range t.Values {
		if seen[v.Str] {
			continue
		}
		seen[v.Str] = true
		res = append(res, v)
	}
	return res
}

// Table returns the map from string forms to value identifiers used for
// parsing, in declaration order. When several values share a string form,
// the first declared one is kept.
func (t *Type) Table() *ordmap.Map[string, string] {
	om := ordmap.New[string, string]()
	for _, v := range t.Values {
		om.AddNew(v.Text, v.Ident)
	}
	return om
}
