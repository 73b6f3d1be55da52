// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package directive

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type test struct {
	Source string     // the comment text
	Dir    *Directive // the expected directive (nil if there is none)
	String string     // the expected string representation
}

var tests = []test{
	{
		Source: `//enumstringify:enum prefix="Pre", suffix="Post", case="flat"`,
		Dir: &Directive{
			Tool:      "enumstringify",
			Directive: "enum",
			Args:      []string{"prefix", "=", `"Pre"`, ",", "suffix", "=", `"Post"`, ",", "case", "=", `"flat"`},
		},
		String: `//enumstringify:enum prefix="Pre", suffix="Post", case="flat"`,
	},
	{
		Source: "//enumstringify:enum",
		Dir:    &Directive{Tool: "enumstringify", Directive: "enum", Args: []string{}},
		String: "//enumstringify:enum",
	},
	{
		Source: `enumstringify:enum rename = "Ólorin"`,
		Dir:    &Directive{Tool: "enumstringify", Directive: "enum", Args: []string{"rename", "=", `"Ólorin"`}},
		String: `//enumstringify:enum rename="Ólorin"`,
	},
	{
		Source: `//enumstringify:enum prefix = MyPrefix suffix`,
		Dir:    &Directive{Tool: "enumstringify", Directive: "enum", Args: []string{"prefix", "=", "MyPrefix", "suffix"}},
		String: `//enumstringify:enum prefix=MyPrefix suffix`,
	},
	{
		Source: `//enumstringify:enum rename="x" // trailing comment`,
		Dir:    &Directive{Tool: "enumstringify", Directive: "enum", Args: []string{"rename", "=", `"x"`}},
		String: `//enumstringify:enum rename="x"`,
	},
	{
		Source: `//enums:enum trimprefix=Button`,
	},
	{
		Source: `//go:generate enumstringify "unterminated`,
	},
	{
		Source: `// enumstringify:enum prefix="Pre"`,
	},
	{
		Source: `// Status is the status of a job.`,
	},
}

func TestParse(t *testing.T) {
	for _, test := range tests {
		have, err := Parse(test.Source, "enumstringify")
		require.NoError(t, err, test.Source)
		assert.Equal(t, test.Dir, have, test.Source)
	}
}

func TestString(t *testing.T) {
	for _, test := range tests {
		if test.Dir == nil {
			assert.Equal(t, "<nil>", test.Dir.String())
			continue
		}
		assert.Equal(t, test.String, test.Dir.String())
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse(`//enumstringify:enum rename="unterminated`, "enumstringify")
	assert.Error(t, err)

	_, err = Parse(`//enumstringify:enum rename=#`, "enumstringify")
	assert.Error(t, err)
}

func TestParseCommentGroup(t *testing.T) {
	group := &ast.CommentGroup{List: []*ast.Comment{
		{Text: "// Istari are the wizards of Middle-earth."},
		{Text: `//enumstringify:enum prefix="Pre"`},
		{Text: "//go:generate stringer -type=Istari"},
		{Text: `//enumstringify:enum case="snake"`},
	}}
	dirs, err := ParseCommentGroup(group, "enumstringify")
	require.NoError(t, err)
	require.Len(t, dirs, 2)
	assert.Equal(t, []string{"prefix", "=", `"Pre"`}, dirs[0].Args)
	assert.Equal(t, []string{"case", "=", `"snake"`}, dirs[1].Args)

	dirs, err = ParseCommentGroup(nil, "enumstringify")
	require.NoError(t, err)
	assert.Empty(t, dirs)
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize(`case="upper_flat",prefix=""`)
	require.NoError(t, err)
	assert.Equal(t, []string{"case", "=", `"upper_flat"`, ",", "prefix", "=", `""`}, tokens)

	tokens, err = Tokenize("")
	require.NoError(t, err)
	assert.Empty(t, tokens)

	tokens, err = Tokenize("rename = `raw`;")
	require.NoError(t, err)
	assert.Equal(t, []string{"rename", "=", "`raw`", ";"}, tokens)
}
