// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on https://github.com/ettle/strcase
// Copyright (c) 2020 Liyan David Chang under the MIT License

package strcase

import (
	"strings"
	"unicode"
)

// WordCase is an enumeration of the ways to format a word.
type WordCase int

const (
	// Original - Preserve the original input strcase
	Original WordCase = iota
	// LowerCase - All letters lower cased (example)
	LowerCase
	// UpperCase - All letters upper cased (EXAMPLE)
	UpperCase
	// TitleCase - Only first letter upper cased (Example)
	TitleCase
	// CamelCase - TitleCase except lower case first word (exampleText)
	CamelCase
	// SentenceCase - TitleCase for the first word and LowerCase for the rest (Example text)
	SentenceCase
	// ToggleCase - Only first letter lower cased (eXAMPLE)
	ToggleCase
	// AlternatingCase - Letters alternate between lower and upper case,
	// continuing across word boundaries (eXaMpLe TeXt)
	AlternatingCase
)

// convert splits the input into words and writes them back with the given
// word case, separated by the given delimiter (0 for none).
func convert(input string, delimiter rune, wordCase WordCase) string {
	words := Words(input)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(input) + len(words)) // In case we need to write delimiters where they weren't before

	upper := false // alternating state, carried across words
	for wi, word := range words {
		if wi > 0 && delimiter != 0 {
			b.WriteRune(delimiter)
		}
		first := true
		for _, r := range word {
			switch wordCase {
			case LowerCase:
				b.WriteRune(unicode.ToLower(r))
			case UpperCase:
				b.WriteRune(unicode.ToUpper(r))
			case TitleCase:
				b.WriteRune(titleRune(r, first))
			case CamelCase:
				b.WriteRune(titleRune(r, first && wi > 0))
			case SentenceCase:
				b.WriteRune(titleRune(r, first && wi == 0))
			case ToggleCase:
				if first {
					b.WriteRune(unicode.ToLower(r))
				} else {
					b.WriteRune(unicode.ToUpper(r))
				}
			case AlternatingCase:
				if !unicode.IsUpper(r) && !unicode.IsLower(r) {
					b.WriteRune(r)
					break
				}
				if upper {
					b.WriteRune(unicode.ToUpper(r))
				} else {
					b.WriteRune(unicode.ToLower(r))
				}
				upper = !upper
			default:
				b.WriteRune(r)
			}
			first = false
		}
	}
	return b.String()
}

// titleRune upper cases r if it starts a capitalized word and
// lower cases it otherwise.
func titleRune(r rune, capital bool) rune {
	if capital {
		return unicode.ToUpper(r)
	}
	return unicode.ToLower(r)
}
