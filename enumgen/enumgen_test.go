// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/enumstringify/attr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeModule writes a module containing a single package
// with the given Go source to a temporary directory.
func writeModule(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/enums\n\ngo 1.22\n"), 0666))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "enums.go"), []byte(src), 0666))
	return dir
}

func testConfig(dir string) *Config {
	cfg := NewConfig()
	cfg.Dir = dir
	return cfg
}

func readOutput(t *testing.T, dir string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, "enumstringify.go"))
	require.NoError(t, err)
	return string(b)
}

func assertNoOutput(t *testing.T, dir string) {
	t.Helper()
	_, err := os.Stat(filepath.Join(dir, "enumstringify.go"))
	assert.True(t, os.IsNotExist(err), "expected no output file")
}

const statusSrc = `package enums

// Status is the status of a job.
//
//enumstringify:enum prefix="Pre", suffix="Post", case="flat"
type Status int

const (
	Start Status = iota
	Stop
)
`

func TestGenerate(t *testing.T) {
	dir := writeModule(t, statusSrc)
	require.NoError(t, Generate(testConfig(dir)))

	have := readOutput(t, dir)
	assert.Contains(t, have, `// Code generated by "enumstringify"; DO NOT EDIT.`)
	assert.Contains(t, have, "package enums")
	assert.Contains(t, have, `"cogentcore.org/enumstringify"`)
	assert.Contains(t, have, "var _StatusValues = []Status{Start, Stop}")
	assert.Regexp(t, `"prestartpost":\s+Start,`, have)
	assert.Regexp(t, `"prestoppost":\s+Stop,`, have)
	assert.Contains(t, have, `var _StatusNames = []string{"prestartpost", "prestoppost"}`)
	assert.Contains(t, have, "case Start:\n\t\treturn \"prestartpost\"")
	assert.Contains(t, have, "case Stop:\n\t\treturn \"prestoppost\"")
	assert.Contains(t, have, `return "Status(" + strconv.FormatInt(int64(i), 10) + ")"`)
	assert.Contains(t, have, "func ParseStatus(s string) (Status, error)")
	assert.Contains(t, have, "func (i *Status) SetString(s string) error")
	assert.Contains(t, have, "func StatusValues() []Status")
	assert.Contains(t, have, "func StatusStrings() []string")
	assert.Contains(t, have, "func (i Status) IsValid() bool")
	assert.Contains(t, have, "func (i Status) MarshalText() ([]byte, error)")
	assert.NotContains(t, have, "MarshalJSON")
	assert.NotContains(t, have, "MarshalYAML")
	assert.NotContains(t, have, "driver.Value")
}

func TestGenerateOptions(t *testing.T) {
	dir := writeModule(t, statusSrc)
	cfg := testConfig(dir)
	cfg.Output = "status_string.go"
	cfg.Text = false
	cfg.JSON = true
	cfg.YAML = true
	cfg.SQL = true
	require.NoError(t, Generate(cfg))

	b, err := os.ReadFile(filepath.Join(dir, "status_string.go"))
	require.NoError(t, err)
	have := string(b)
	assert.NotContains(t, have, "MarshalText")
	assert.Contains(t, have, "func (i Status) MarshalJSON() ([]byte, error)")
	assert.Contains(t, have, "func (i *Status) UnmarshalYAML(unmarshal func(any) error) error")
	assert.Contains(t, have, "func (i Status) Value() (driver.Value, error)")
	assert.Contains(t, have, "func (i *Status) Scan(value any) error")
	assert.Contains(t, have, `"encoding/json"`)
	assert.Contains(t, have, `"database/sql/driver"`)
	assert.Contains(t, have, `"fmt"`)
}

func TestCheck(t *testing.T) {
	dir := writeModule(t, `package enums

//enumstringify:enum prefix="Pre"
type Istari uint8

const (
	Gandalf Istari = iota //enumstringify:enum rename="Ólorin"
	Saruman
)

// Radagast is the brown wizard.
//
//enumstringify:enum rename="Aiwendil"
const Radagast Istari = 2

// Numbers has an alias and a value shared by two texts.
type (
	Numbers int //enumstringify:enum case="snake"

	Unmarked int
)

const (
	NumberOne Numbers = iota + 1
	NumberTwo
	// Deuce is another name for two.
	//
	//enumstringify:enum rename="number_two"
	Deuce = NumberTwo
	Other Unmarked = 0
	_ Numbers = 100
)

func local() {
	//enumstringify:enum
	type inner string
	_ = inner("")
}
`)
	types, err := Check(testConfig(dir))
	require.NoError(t, err)
	require.Len(t, types, 2)

	istari := types[0]
	assert.Equal(t, "Istari", istari.Name)
	assert.True(t, istari.Unsigned)
	assert.Equal(t, []attr.Annotation{{"prefix", "=", `"Pre"`}}, istari.Annotations)
	require.Len(t, istari.Values, 3)
	assert.Equal(t, "Ólorin", istari.Values[0].Text)
	assert.Equal(t, "PreSaruman", istari.Values[1].Text)
	assert.Equal(t, "Radagast", istari.Values[2].Ident)
	assert.Equal(t, "Aiwendil", istari.Values[2].Text)
	assert.Empty(t, istari.Warnings)

	numbers := types[1]
	assert.Equal(t, "Numbers", numbers.Name)
	assert.False(t, numbers.Unsigned)
	require.Len(t, numbers.Values, 3)
	assert.Equal(t, "number_one", numbers.Values[0].Text)
	assert.Equal(t, "number_two", numbers.Values[1].Text)
	assert.Equal(t, "Deuce", numbers.Values[2].Ident)
	assert.Equal(t, "2", numbers.Values[2].Str)
	require.Len(t, numbers.Warnings, 1)
	assert.Contains(t, numbers.Warnings[0], "NumberTwo and Deuce")

	unique := numbers.Unique()
	require.Len(t, unique, 2)
	assert.Equal(t, "NumberTwo", unique[1].Ident)
	assert.Equal(t, []string{"number_one", "number_two"}, numbers.Table().Keys())
	assert.Equal(t, []string{"NumberOne", "NumberTwo"}, numbers.Table().Values())
}

func TestGenerateNotEnum(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"string", `package enums

//enumstringify:enum
type Name string
`},
		{"alias", `package enums

type Color = int //enumstringify:enum

const Red Color = 0
`},
		{"generic", `package enums

//enumstringify:enum
type Level[T any] int
`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := writeModule(t, test.src)
			err := Generate(testConfig(dir))
			assert.ErrorIs(t, err, ErrNotEnum)
			assert.ErrorContains(t, err, "enumstringify only works with enums")
			assertNoOutput(t, dir)
		})
	}
}

func TestGenerateMalformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  error
	}{
		{"unknown case", `package enums

//enumstringify:enum case="Flat"
type Status int

const Start Status = 0
`, attr.ErrUnknownCaseStyle},
		{"missing equals", `package enums

//enumstringify:enum prefix "Pre"
type Status int

const Start Status = 0
`, attr.ErrExpectedEquals},
		{"unquoted rename", `package enums

//enumstringify:enum
type Status int

const (
	Start Status = iota
	Stop //enumstringify:enum rename=halt
)
`, attr.ErrUnquotedString},
		{"unquoted rename on a single constant", `package enums

//enumstringify:enum
type Status int

//enumstringify:enum rename=halt
const Stop Status = 1
`, attr.ErrUnquotedString},
		{"missing value", `package enums

//enumstringify:enum
type Status int

const (
	Start Status = iota //enumstringify:enum rename=
)
`, attr.ErrMissingValue},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := writeModule(t, test.src)
			err := Generate(testConfig(dir))
			assert.ErrorIs(t, err, test.err)
			assert.ErrorContains(t, err, "enums.go:")
			assertNoOutput(t, dir)
		})
	}
}

func TestGenerateAfterRename(t *testing.T) {
	dir := writeModule(t, statusSrc)
	cfg := testConfig(dir)
	require.NoError(t, Generate(cfg))
	require.NoError(t, Generate(cfg))
	assert.Contains(t, readOutput(t, dir), "case Stop:")

	// the previous output refers to Stop, which no longer exists
	src := strings.Replace(statusSrc, "\tStop\n", "\tHalt\n", 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "enums.go"), []byte(src), 0666))
	require.NoError(t, Generate(cfg))
	have := readOutput(t, dir)
	assert.Contains(t, have, "var _StatusValues = []Status{Start, Halt}")
	assert.Regexp(t, `"prehaltpost":\s+Halt,`, have)
	assert.NotContains(t, have, "Stop")

	types, err := Check(cfg)
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "prehaltpost", types[0].Values[1].Text)
}

func TestGenerateUnknownDirective(t *testing.T) {
	dir := writeModule(t, `package enums

//enumstringify:bitflag
type Status int

const Start Status = 0
`)
	err := Generate(testConfig(dir))
	assert.ErrorContains(t, err, `unrecognized enumstringify directive "bitflag"`)
	assertNoOutput(t, dir)
}

func TestGenerateIgnoresOtherTools(t *testing.T) {
	dir := writeModule(t, `package enums

//go:generate stringer -type=Status
//enums:enum trimprefix=Status "unterminated
type Status int

const Start Status = 0
`)
	require.NoError(t, Generate(testConfig(dir)))
	assertNoOutput(t, dir)
}

func TestGenerateInvalidConfig(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Output = "enumstringify.txt"
	assert.ErrorContains(t, Generate(cfg), "invalid configuration")
}
