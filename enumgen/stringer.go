// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on http://github.com/dmarkham/enumer and
// golang.org/x/tools/cmd/stringer:

// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumgen

// BuildVars declares the slice of values, the map from string forms
// to values used for parsing, and the slice of string forms of the
// given type.
func (g *Generator) BuildVars(typ *Type) {
	values := typ.Unique()

	g.Printf("\nvar _%sValues = []%s{", typ.Name, typ.Name)
	for i, v := range values {
		if i > 0 {
			g.Printf(", ")
		}
		g.Printf("%s", v.Ident)
	}
	g.Printf("}\n\n")

	g.Printf("var _%sNameToValueMap = map[string]%s{\n", typ.Name, typ.Name)
	for text, ident := range typ.Table().All() {
		g.Printf("\t%q: %s,\n", text, ident)
	}
	g.Printf("}\n\n")

	g.Printf("var _%sNames = []string{", typ.Name)
	for i, v := range values {
		if i > 0 {
			g.Printf(", ")
		}
		g.Printf("%q", v.Text)
	}
	g.Printf("}\n")
}

// BuildString generates the String method of the given type as a
// switch over its values. Constants with the same value as an earlier
// one are left out, since a switch cannot have duplicate cases.
func (g *Generator) BuildString(typ *Type) {
	g.Printf("\n// String returns the string representation of this %s value.\n", typ.Name)
	g.Printf("func (i %s) String() string {\n", typ.Name)
	g.Printf("\tswitch i {\n")
	for _, v := range typ.Unique() {
		g.Printf("\tcase %s:\n", v.Ident)
		g.Printf("\t\treturn %q\n", v.Text)
	}
	g.Printf("\t}\n")
	if typ.Unsigned {
		g.Printf("\treturn \"%s(\" + strconv.FormatUint(uint64(i), 10) + \")\"\n", typ.Name)
	} else {
		g.Printf("\treturn \"%s(\" + strconv.FormatInt(int64(i), 10) + \")\"\n", typ.Name)
	}
	g.Printf("}\n")
}
