// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on https://github.com/ettle/strcase
// Copyright (c) 2020 Liyan David Chang under the MIT License

package strcase

import "unicode"

// SplitAction defines if and how to split a string
type SplitAction int

const (
	// Noop - Continue to next character
	Noop SplitAction = iota
	// Split - Split between words
	// e.g. to split between wordsWithoutDelimiters
	Split
	// SkipSplit - Split the word and drop the character
	// e.g. to split words with delimiters
	SkipSplit
)

// SplitFn decides whether a word boundary falls before curr.
// prev and next are 0 at the start and end of the input.
type SplitFn func(prev, curr, next rune) SplitAction

// isDelimiter reports whether r separates words and is dropped from the output.
func isDelimiter(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// DefaultSplitFn splits on the delimiters _, - and space, on
// lower->upper, upper->digit, digit->upper, digit->lower and lower->digit
// transitions, and before the last letter of an acronym that starts a new
// capitalized word (HTTPServer -> HTTP Server).
func DefaultSplitFn(prev, curr, next rune) SplitAction {
	if isDelimiter(curr) {
		return SkipSplit
	}
	if prev == 0 {
		return Noop
	}
	pu, pl, pd := unicode.IsUpper(prev), unicode.IsLower(prev), isDigit(prev)
	cu, cl, cd := unicode.IsUpper(curr), unicode.IsLower(curr), isDigit(curr)
	switch {
	case pl && cu, pu && cd, pd && cu, pd && cl, pl && cd:
		return Split
	case pu && cu && unicode.IsLower(next):
		return Split
	}
	return Noop
}

// Words splits the given string into words using [DefaultSplitFn].
func Words(s string) []string {
	return SplitWords(s, DefaultSplitFn)
}

// SplitWords splits the given string into words using the given [SplitFn].
// Empty words are never returned.
func SplitWords(s string, fn SplitFn) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}
	var words []string
	addWord := func(start, end int) {
		if start < end {
			words = append(words, string(runes[start:end]))
		}
	}

	var prev, curr rune
	next := runes[0]
	wordStart := 0
	for i := 0; i < len(runes); i++ {
		prev = curr
		curr = next
		if i+1 == len(runes) {
			next = 0
		} else {
			next = runes[i+1]
		}

		switch fn(prev, curr, next) {
		case Split:
			addWord(wordStart, i)
			wordStart = i
		case SkipSplit:
			addWord(wordStart, i)
			wordStart = i + 1
		}
	}
	addWord(wordStart, len(runes))
	return words
}
