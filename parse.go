// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumstringify

import "fmt"

// ParseError is returned by generated parse functions when
// a string does not match the string form of any enum value.
type ParseError struct {

	// Input is the string that could not be parsed.
	Input string

	// Type is the name of the enum type.
	Type string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse string '%s' for enum %s", e.Input, e.Type)
}

// Parse returns the value for the given string in the given
// map of string forms to values. If there is no such value,
// it returns the zero value and a [*ParseError] naming the
// given type.
func Parse[T any](s string, valueMap map[string]T, typeName string) (T, error) {
	if v, ok := valueMap[s]; ok {
		return v, nil
	}
	var zero T
	return zero, &ParseError{Input: s, Type: typeName}
}

// SetString sets the given enum value from the given string
// using the given map of string forms to values. The value is
// left unchanged if the string is invalid.
func SetString[T any](i *T, s string, valueMap map[string]T, typeName string) error {
	v, err := Parse(s, valueMap, typeName)
	if err != nil {
		return err
	}
	*i = v
	return nil
}
