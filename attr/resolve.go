// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attr

import (
	"fmt"

	"cogentcore.org/enumstringify/strcase"
)

// TypeConfig is the configuration of an enum type folded from
// all of its annotations. A nil field was never set.
type TypeConfig struct {
	Case   *strcase.Case
	Prefix *string
	Suffix *string
}

// decodeAll parses and decodes all of the given annotations in order.
func decodeAll(anns []Annotation) ([]Attribute, error) {
	var res []Attribute
	for _, ann := range anns {
		recs, err := ParseTokens(ann)
		if err != nil {
			return nil, err
		}
		for _, rec := range recs {
			a, err := Decode(rec)
			if err != nil {
				return nil, err
			}
			res = append(res, a)
		}
	}
	return res, nil
}

// ResolveType folds the given type-level annotations into a [TypeConfig].
// Later attributes override earlier ones, across and within annotations.
// A rename has no meaning for a type; it is ignored and reported in the
// returned warnings. Any malformed annotation is an error.
func ResolveType(anns []Annotation) (TypeConfig, []string, error) {
	var tc TypeConfig
	var warnings []string
	attrs, err := decodeAll(anns)
	if err != nil {
		return TypeConfig{}, nil, err
	}
	for _, a := range attrs {
		switch a := a.(type) {
		case Prefix:
			s := string(a)
			tc.Prefix = &s
		case Suffix:
			s := string(a)
			tc.Suffix = &s
		case CaseStyle:
			c := strcase.Case(a)
			tc.Case = &c
		case Rename:
			warnings = append(warnings, fmt.Sprintf("rename %q is not supported on a type and is ignored", string(a)))
		}
	}
	return tc, warnings, nil
}

// ResolveCase returns the rename of a single value from its annotations,
// and whether there is one. The last rename wins; all other attributes
// are ignored. Any malformed annotation is an error.
func ResolveCase(anns []Annotation) (string, bool, error) {
	attrs, err := decodeAll(anns)
	if err != nil {
		return "", false, err
	}
	rename, ok := "", false
	for _, a := range attrs {
		if r, isRename := a.(Rename); isRename {
			rename, ok = string(r), true
		}
	}
	return rename, ok, nil
}
