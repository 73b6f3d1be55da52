// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumgen

import "text/template"

// MethodsTmpl generates the parsing and listing functions
// and methods that every enum type has.
var MethodsTmpl = template.Must(template.New("Methods").Parse(`
// Parse{{.Name}} returns the {{.Name}} value with the given string representation,
// or an [*enumstringify.ParseError] if there is no such value.
func Parse{{.Name}}(s string) ({{.Name}}, error) {
	return enumstringify.Parse(s, _{{.Name}}NameToValueMap, "{{.Name}}")
}

// SetString sets the {{.Name}} value from its string representation,
// and returns an error if the string is invalid.
func (i *{{.Name}}) SetString(s string) error {
	return enumstringify.SetString(i, s, _{{.Name}}NameToValueMap, "{{.Name}}")
}

// {{.Name}}Values returns all possible values for the type {{.Name}}.
func {{.Name}}Values() []{{.Name}} { return slices.Clone(_{{.Name}}Values) }

// {{.Name}}Strings returns the string representations of all possible values for the type {{.Name}}.
func {{.Name}}Strings() []string { return slices.Clone(_{{.Name}}Names) }

// Values returns all possible values for the type {{.Name}}.
func (i {{.Name}}) Values() []{{.Name}} { return {{.Name}}Values() }

// IsValid returns whether the value is a valid option for type {{.Name}}.
func (i {{.Name}}) IsValid() bool { return slices.Contains(_{{.Name}}Values, i) }
`))
