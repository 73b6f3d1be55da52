// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attr

// Annotation is the raw token sequence of one directive
// attached to an enum type or to one of its values.
type Annotation []string

// Record is one key = value pair of an attribute list.
// The value is the raw token, so string values are still quoted.
type Record struct {
	Key   string
	Value string
}

// ParseTokens parses a list of tokens of the form
//
//	key = value [, key = value]*
//
// into records. It only checks the shape of the list; see [Decode]
// for the meaning of the records. An empty list has no records, but
// a comma must always be followed by another attribute.
func ParseTokens(tokens []string) ([]Record, error) {
	res := []Record{}
	for i := 0; i < len(tokens); {
		key := tokens[i]
		i++
		if i == len(tokens) {
			return nil, &SyntaxError{Err: ErrExpectedEquals, Key: key}
		}
		if tokens[i] != "=" {
			return nil, &SyntaxError{Err: ErrExpectedEquals, Key: key, Token: tokens[i]}
		}
		i++
		if i == len(tokens) {
			return nil, &SyntaxError{Err: ErrMissingValue, Key: key}
		}
		res = append(res, Record{Key: key, Value: tokens[i]})
		i++
		if i == len(tokens) {
			break
		}
		if tokens[i] != "," {
			return nil, &SyntaxError{Err: ErrExpectedComma, Token: tokens[i]}
		}
		i++
		if i == len(tokens) {
			return nil, &SyntaxError{Err: ErrTrailingComma, Key: key}
		}
	}
	return res, nil
}
