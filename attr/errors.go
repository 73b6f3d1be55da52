// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attr

import (
	"errors"
	"fmt"
)

// Errors in the shape of an attribute list, wrapped by [SyntaxError].
var (
	ErrExpectedEquals = errors.New("expected '='")
	ErrMissingValue   = errors.New("value must be specified")
	ErrExpectedComma  = errors.New("expected a comma-separated attribute list")
	ErrTrailingComma  = errors.New("expected another attribute after ','")
)

// Errors in the value of an attribute, wrapped by [DecodeError].
var (
	ErrUnquotedString   = errors.New("string must be enclosed in double quotes")
	ErrUnknownCaseStyle = errors.New("unknown case style")
	ErrUnsupportedKey   = errors.New("unsupported attribute")
)

// SyntaxError is returned by [ParseTokens] when an attribute
// list is malformed.
type SyntaxError struct {

	// Err is one of ErrExpectedEquals, ErrMissingValue,
	// ErrExpectedComma or ErrTrailingComma.
	Err error

	// Key is the key of the attribute being parsed, if any.
	Key string

	// Token is the offending token, if any.
	Token string
}

func (e *SyntaxError) Error() string {
	switch {
	case e.Token != "" && e.Key != "":
		return fmt.Sprintf("%v after '%s', got '%s'", e.Err, e.Key, e.Token)
	case e.Key != "":
		return fmt.Sprintf("%v after '%s'", e.Err, e.Key)
	case e.Token != "":
		return fmt.Sprintf("%v, got '%s'", e.Err, e.Token)
	}
	return e.Err.Error()
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// DecodeError is returned by [Decode] when the value of
// an attribute is invalid or its key is not supported.
type DecodeError struct {

	// Err is one of ErrUnquotedString, ErrUnknownCaseStyle
	// or ErrUnsupportedKey.
	Err error

	// Record is the attribute that could not be decoded.
	Record Record

	// Suggestion is the closest known case style name
	// for ErrUnknownCaseStyle, if there is a close one.
	Suggestion string
}

func (e *DecodeError) Error() string {
	switch {
	case e.Err == ErrUnsupportedKey:
		return fmt.Sprintf("%v: %s", e.Err, e.Record.Key)
	case e.Suggestion != "":
		return fmt.Sprintf("%s: %v: %s (did you mean %q?)", e.Record.Key, e.Err, e.Record.Value, e.Suggestion)
	}
	return fmt.Sprintf("%s: %v: %s", e.Record.Key, e.Err, e.Record.Value)
}

func (e *DecodeError) Unwrap() error { return e.Err }
