// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package enumstringify provides the runtime support used by code generated
with the enumstringify tool (see cmd/enumstringify), which generates
String and Parse methods for Go enum types.

An enum type is marked for generation with a comment directive, which can
also configure how the string form of each value is derived:

	//enumstringify:enum prefix="Pre", suffix="Post", case="flat"
	type Status int

	const (
		Start Status = iota // "prestartpost"
		Stop                // "prestoppost"
	)

The recognized type attributes are prefix, suffix and case; prefix and
suffix are added to the name of each constant before the case style
(see [cogentcore.org/enumstringify/strcase.Case]) is applied to the
whole string. A single constant can be given a fixed string with rename,
which takes precedence over all type attributes:

	const (
		Gandalf Istari = iota //enumstringify:enum rename="Ólorin"
		Saruman
	)

Values are parsed back with the generated Parse<Type> function and
SetString method, which return a [*ParseError] for unknown strings.
*/
package enumstringify
