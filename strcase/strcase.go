// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on https://github.com/ettle/strcase
// Copyright (c) 2020 Liyan David Chang under the MIT License

// Package strcase provides functions for manipulating the case of strings (camelCase, kebab-case,
// snake_case, Title Case, etc). It is based on https://github.com/ettle/strcase, which is Copyright
// (c) 2020 Liyan David Chang under the MIT License. Words are split at delimiters (_, - and space),
// at case changes, at letter/digit changes and before the last letter of an acronym, so
// "PreError3Post" has the words "Pre", "Error", "3" and "Post". The named styles used by
// enumstringify directives are the values of [Case].
package strcase

//go:generate enumstringify

// ToWordCase returns the words of s formatted with the given
// word case and joined with the given delimiter (0 for none).
func ToWordCase(s string, wordCase WordCase, delimiter rune) string {
	return convert(s, delimiter, wordCase)
}

// ToSnake returns words in snake_case (lower case words with underscores).
func ToSnake(s string) string {
	return ToWordCase(s, LowerCase, '_')
}

// ToSNAKE returns words in SNAKE_CASE (upper case words with underscores).
// Also known as SCREAMING_SNAKE_CASE or UPPER_CASE.
func ToSNAKE(s string) string {
	return ToWordCase(s, UpperCase, '_')
}

// ToKebab returns words in kebab-case (lower case words with dashes).
// Also known as dash-case.
func ToKebab(s string) string {
	return ToWordCase(s, LowerCase, '-')
}

// ToKEBAB returns words in KEBAB-CASE (upper case words with dashes).
// Also known as SCREAMING-KEBAB-CASE or SCREAMING-DASH-CASE.
func ToKEBAB(s string) string {
	return ToWordCase(s, UpperCase, '-')
}

// ToCamel returns words in CamelCase (capitalized words concatenated together).
// Also known as UpperCamelCase.
func ToCamel(s string) string {
	return ToWordCase(s, TitleCase, 0)
}

// ToLowerCamel returns words in lowerCamelCase (capitalized words concatenated together,
// with first word lower case). Also known as camelCase or mixedCase.
func ToLowerCamel(s string) string {
	return ToWordCase(s, CamelCase, 0)
}

// ToTitle returns words in Title Case (capitalized words with spaces).
func ToTitle(s string) string {
	return ToWordCase(s, TitleCase, ' ')
}

// ToSentence returns words in Sentence case (lower case words with spaces, with the first word capitalized).
func ToSentence(s string) string {
	return ToWordCase(s, SentenceCase, ' ')
}
