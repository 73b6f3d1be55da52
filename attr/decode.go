// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attr

import (
	"strings"

	"cogentcore.org/enumstringify/strcase"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Attribute is a decoded attribute. It is one of [Prefix], [Suffix],
// [CaseStyle] or [Rename]; no other types implement it.
type Attribute interface {
	attribute()
}

// Prefix is the text prepended to every value identifier of a type.
type Prefix string

// Suffix is the text appended to every value identifier of a type.
type Suffix string

// CaseStyle is the case style applied to the prefixed
// and suffixed identifiers of a type.
type CaseStyle strcase.Case

// Rename is the verbatim text of a single value.
type Rename string

func (Prefix) attribute()    {}
func (Suffix) attribute()    {}
func (CaseStyle) attribute() {}
func (Rename) attribute()    {}

// minSimilarity is the minimum Levenshtein similarity for
// a case style name to be suggested in a [DecodeError].
const minSimilarity = 0.5

// Decode converts the given record into an [Attribute].
// The values of prefix, suffix and rename must be quoted strings;
// exactly one quote is removed from each end and nothing is unescaped.
// The value of case must be the quoted name of a [strcase.Case].
func Decode(r Record) (Attribute, error) {
	switch r.Key {
	case "prefix", "suffix", "rename":
		s, ok := unquote(r.Value)
		if !ok {
			return nil, &DecodeError{Err: ErrUnquotedString, Record: r}
		}
		switch r.Key {
		case "prefix":
			return Prefix(s), nil
		case "suffix":
			return Suffix(s), nil
		}
		return Rename(s), nil
	case "case":
		s, ok := unquote(r.Value)
		if ok {
			var c strcase.Case
			if err := c.SetString(s); err == nil {
				return CaseStyle(c), nil
			}
		} else {
			s = r.Value
		}
		return nil, &DecodeError{Err: ErrUnknownCaseStyle, Record: r, Suggestion: suggest(s)}
	}
	return nil, &DecodeError{Err: ErrUnsupportedKey, Record: r}
}

// unquote removes one double quote from each end of s.
// It reports false if s is not enclosed in double quotes.
func unquote(s string) (string, bool) {
	if len(s) < 2 || !strings.HasPrefix(s, `"`) || !strings.HasSuffix(s, `"`) {
		return "", false
	}
	return s[1 : len(s)-1], true
}

// suggest returns the case style name closest to s,
// or "" if none of them is close enough.
func suggest(s string) string {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best, bestSim := "", 0.0
	for _, name := range strcase.CaseStrings() {
		if sim := strutil.Similarity(s, name, lev); sim > bestSim {
			best, bestSim = name, sim
		}
	}
	if bestSim < minSimilarity {
		return ""
	}
	return best
}
