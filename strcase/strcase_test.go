// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strcase

import (
	"errors"
	"testing"

	"cogentcore.org/enumstringify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"Start", []string{"Start"}},
		{"PreError3Post", []string{"Pre", "Error", "3", "Post"}},
		{"HTTPServer", []string{"HTTP", "Server"}},
		{"helloWorld", []string{"hello", "World"}},
		{"  a_b-c d ", []string{"a", "b", "c", "d"}},
		{"__hello__world__", []string{"hello", "world"}},
		{"ab2cd", []string{"ab", "2", "cd"}},
		{"V2Beta", []string{"V", "2", "Beta"}},
		{"ÓlorinTheGrey", []string{"Ólorin", "The", "Grey"}},
		{"😀Japanese🥳", []string{"😀Japanese🥳"}},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Words(test.in), "Words(%q)", test.in)
	}
}

func TestTo(t *testing.T) {
	tests := []struct {
		c    Case
		in   string
		want string
	}{
		{Upper, "A", "A"},
		{Upper, "Zero", "ZERO"},
		{Upper, "PreError3Post", "PRE ERROR 3 POST"},
		{Lower, "Red", "red"},
		{Lower, "PreError3Post", "pre error 3 post"},
		{Title, "hello_world", "Hello World"},
		{Toggle, "HelloWorld", "hELLO wORLD"},
		{Camel, "PreStartPost", "preStartPost"},
		{Camel, "__hello__world__", "helloWorld"},
		{Pascal, "pre_start_post", "PreStartPost"},
		{UpperCamel, "pre-start-post", "PreStartPost"},
		{Snake, "HTTPServer", "http_server"},
		{Snake, "Error3", "error_3"},
		{Snake, "Version2Beta", "version_2_beta"},
		{UpperSnake, "helloWorld", "HELLO_WORLD"},
		{ScreamingSnake, "helloWorld", "HELLO_WORLD"},
		{Kebab, "Hello World", "hello-world"},
		{Cobol, "helloWorld", "HELLO-WORLD"},
		{UpperKebab, "helloWorld", "HELLO-WORLD"},
		{Train, "hello_world", "Hello-World"},
		{Flat, "PreStartPost", "prestartpost"},
		{Flat, "pre-start-post", "prestartpost"},
		{UpperFlat, "PreLowPost", "PRELOWPOST"},
		{Alternating, "HelloWorld", "hElLo WoRlD"},
		{Alternating, "a1b", "a 1 B"},
		{Flat, "ÓlorinTheGrey", "ólorinthegrey"},
		{Snake, "😀Japanese🥳", "😀japanese🥳"},
		{Snake, "", ""},
		{Case(100), "LeaveMe", "LeaveMe"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, To(test.c, test.in), "To(%v, %q)", test.c, test.in)
		assert.Equal(t, test.want, test.c.Convert(test.in))
	}
}

func TestToDeterministic(t *testing.T) {
	for _, c := range CaseValues() {
		assert.Equal(t, To(c, "PreSomeHTTPValue42Post"), To(c, "PreSomeHTTPValue42Post"), "%v", c)
	}
}

func TestConvenience(t *testing.T) {
	assert.Equal(t, "foo_bar", ToSnake("FooBar"))
	assert.Equal(t, "FOO_BAR", ToSNAKE("fooBar"))
	assert.Equal(t, "foo-bar", ToKebab("FooBar"))
	assert.Equal(t, "FOO-BAR", ToKEBAB("fooBar"))
	assert.Equal(t, "FooBar", ToCamel("foo_bar"))
	assert.Equal(t, "fooBar", ToLowerCamel("FooBar"))
	assert.Equal(t, "Foo Bar", ToTitle("foo_bar"))
	assert.Equal(t, "Foo bar", ToSentence("FooBar"))
	assert.Equal(t, "build_flags", ToSnake("build-flags"))
}

func TestCaseStrings(t *testing.T) {
	assert.Equal(t, []string{"upper", "lower", "title", "toggle", "camel", "pascal", "upper_camel",
		"snake", "upper_snake", "screaming_snake", "kebab", "cobol", "upper_kebab", "train",
		"flat", "upper_flat", "alternating"}, CaseStrings())

	for _, c := range CaseValues() {
		assert.True(t, c.IsValid())
		p, err := ParseCase(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, p)
	}

	assert.False(t, Case(-1).IsValid())
	assert.Equal(t, "Case(42)", Case(42).String())

	_, err := ParseCase("UpperFlat")
	var perr *enumstringify.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "Case", perr.Type)

	var c Case
	require.NoError(t, c.UnmarshalText([]byte("kebab")))
	assert.Equal(t, Kebab, c)
	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "kebab", string(text))
	assert.Error(t, c.UnmarshalText([]byte("KEBAB")))
	assert.Equal(t, Kebab, c)
}
