// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strcase

// Case is a named casing style that can be applied to a string with [To].
// The string form of each value (see [Case.String]) is the name used for it
// in enumstringify directives.
//
//enumstringify:enum case="snake"
type Case int32

const (
	// Upper is UPPER CASE WITH SPACES.
	Upper Case = iota
	// Lower is lower case with spaces.
	Lower
	// Title is Title Case With Spaces.
	Title
	// Toggle is tOGGLE cASE wITH sPACES.
	Toggle
	// Camel is camelCase.
	Camel
	// Pascal is PascalCase.
	Pascal
	// UpperCamel is the same as [Pascal].
	UpperCamel
	// Snake is snake_case.
	Snake
	// UpperSnake is UPPER_SNAKE_CASE.
	UpperSnake
	// ScreamingSnake is the same as [UpperSnake].
	ScreamingSnake
	// Kebab is kebab-case.
	Kebab
	// Cobol is COBOL-CASE.
	Cobol
	// UpperKebab is the same as [Cobol].
	UpperKebab
	// Train is Train-Case.
	Train
	// Flat is flatcase.
	Flat
	// UpperFlat is UPPERFLATCASE.
	UpperFlat
	// Alternating is aLtErNaTiNg cAsE.
	Alternating
)

type format struct {
	delimiter rune
	wordCase  WordCase
}

var formats = map[Case]format{
	Upper:          {' ', UpperCase},
	Lower:          {' ', LowerCase},
	Title:          {' ', TitleCase},
	Toggle:         {' ', ToggleCase},
	Camel:          {0, CamelCase},
	Pascal:         {0, TitleCase},
	UpperCamel:     {0, TitleCase},
	Snake:          {'_', LowerCase},
	UpperSnake:     {'_', UpperCase},
	ScreamingSnake: {'_', UpperCase},
	Kebab:          {'-', LowerCase},
	Cobol:          {'-', UpperCase},
	UpperKebab:     {'-', UpperCase},
	Train:          {'-', TitleCase},
	Flat:           {0, LowerCase},
	UpperFlat:      {0, UpperCase},
	Alternating:    {' ', AlternatingCase},
}

// To returns s converted to the given case. Words are found with [Words].
// Invalid cases return s unchanged.
func To(c Case, s string) string {
	f, ok := formats[c]
	if !ok {
		return s
	}
	return convert(s, f.delimiter, f.wordCase)
}

// Convert returns s converted to this case. It is equivalent to [To].
func (c Case) Convert(s string) string {
	return To(c, s)
}
