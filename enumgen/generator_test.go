// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumgen

import (
	"testing"

	"cogentcore.org/enumstringify/base/generate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	cfg := NewConfig()
	cfg.JSON = true
	cfg.YAML = true
	cfg.SQL = true
	g := NewGenerator(cfg, nil)
	typ := &Type{
		Name:     "Severity",
		Unsigned: true,
		Config:   cfg,
		Values: []Value{
			{Ident: "Low", Text: "low", Str: "0"},
			{Ident: "High", Text: `say "hi"`, Str: "1"},
			{Ident: "Highest", Text: "highest", Str: "1"},
		},
	}
	generate.PrintHeader(&g.Buf, "enums", "cogentcore.org/enumstringify")
	g.BuildVars(typ)
	g.BuildString(typ)
	g.ExecTmpl(MethodsTmpl, typ)
	g.ExecTmpl(TextMethodsTmpl, typ)
	g.ExecTmpl(JSONMethodsTmpl, typ)
	g.ExecTmpl(YAMLMethodsTmpl, typ)
	g.ExecTmpl(SQLMethodsTmpl, typ)

	b, err := generate.Format("severity.go", g.Buf.Bytes(), nil)
	require.NoError(t, err)
	have := string(b)
	assert.Contains(t, have, "var _SeverityValues = []Severity{Low, High}")
	assert.Contains(t, have, `var _SeverityNames = []string{"low", "say \"hi\""}`)
	assert.Regexp(t, `"highest":\s+Highest,`, have)
	assert.NotContains(t, have, "case Highest:")
	assert.Contains(t, have, `return "Severity(" + strconv.FormatUint(uint64(i), 10) + ")"`)
	assert.Contains(t, have, `return enumstringify.Parse(s, _SeverityNameToValueMap, "Severity")`)
	assert.Contains(t, have, "func (i Severity) MarshalText() ([]byte, error)")
	assert.Contains(t, have, "func (i Severity) MarshalJSON() ([]byte, error)")
	assert.Contains(t, have, "func (i Severity) MarshalYAML() (any, error)")
	assert.Contains(t, have, "func (i *Severity) Scan(value any) error")
	for _, imp := range []string{"slices", "strconv", "fmt", "encoding/json", "database/sql/driver"} {
		assert.Contains(t, have, `"`+imp+`"`)
	}
}

func TestBuildEmpty(t *testing.T) {
	cfg := NewConfig()
	g := NewGenerator(cfg, nil)
	typ := &Type{Name: "Empty", Config: cfg}
	generate.PrintHeader(&g.Buf, "enums", "cogentcore.org/enumstringify")
	g.BuildVars(typ)
	g.BuildString(typ)
	g.ExecTmpl(MethodsTmpl, typ)

	b, err := generate.Format("empty.go", g.Buf.Bytes(), nil)
	require.NoError(t, err)
	assert.Contains(t, string(b), "var _EmptyValues = []Empty{}")
	assert.Contains(t, string(b), `return "Empty(" + strconv.FormatInt(int64(i), 10) + ")"`)
}
