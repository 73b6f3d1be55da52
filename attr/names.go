// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attr

import (
	"fmt"
)

// Value is a single value of an enum type as declared,
// with the raw annotations attached to it.
type Value struct {
	Ident       string
	Annotations []Annotation
}

// Case is a single value of an enum type with its resolved rename.
type Case struct {

	// Ident is the identifier of the value.
	Ident string

	// Rename is the verbatim text of the value, or nil if it has none.
	Rename *string
}

// Name is the resolved text of a single value.
type Name struct {
	Ident string
	Text  string
}

// ResolveNames computes the text of each value, in the given order.
// A value with a rename uses it verbatim. Otherwise the prefix and
// suffix are added to the identifier and the case style, if any, is
// applied to the whole result.
func ResolveNames(tc TypeConfig, cases []Case) []Name {
	res := make([]Name, len(cases))
	for i, c := range cases {
		res[i] = Name{Ident: c.Ident, Text: tc.Text(c)}
	}
	return res
}

// Text returns the resolved text of the given value.
func (tc TypeConfig) Text(c Case) string {
	if c.Rename != nil {
		return *c.Rename
	}
	s := c.Ident
	if tc.Prefix != nil {
		s = *tc.Prefix + s
	}
	if tc.Suffix != nil {
		s += *tc.Suffix
	}
	if tc.Case != nil {
		s = tc.Case.Convert(s)
	}
	return s
}

// Resolve runs the whole resolution of one enum type: it resolves the
// type-level configuration and the rename of every value, then computes
// the names. It returns warnings for ignored attributes and for values
// that end up with the same text; in the latter case the first of them
// is the one its text parses to.
func Resolve(typeAnns []Annotation, values []Value) ([]Name, []string, error) {
	tc, warnings, err := ResolveType(typeAnns)
	if err != nil {
		return nil, nil, fmt.Errorf("type attributes: %w", err)
	}
	cases := make([]Case, len(values))
	for i, v := range values {
		cases[i].Ident = v.Ident
		rename, ok, err := ResolveCase(v.Annotations)
		if err != nil {
			return nil, nil, fmt.Errorf("attributes of %s: %w", v.Ident, err)
		}
		if ok {
			cases[i].Rename = &rename
		}
	}
	names := ResolveNames(tc, cases)
	first := map[string]string{}
	for _, n := range names {
		if prev, ok := first[n.Text]; ok {
			warnings = append(warnings, fmt.Sprintf("%s and %s both have the text %q; it parses to %s", prev, n.Ident, n.Text, prev))
			continue
		}
		first[n.Text] = n.Ident
	}
	return names, warnings, nil
}
