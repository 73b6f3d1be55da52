// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package directive implements the recognition and tokenization
// of Go comment directives of the form
//
//	//tool:directive arg0 = value0, arg1 = value1
//
// Directives for other tools are recognized by their tool name alone
// and are never tokenized, so they can use any syntax.
package directive

import (
	"fmt"
	"go/ast"
	"go/scanner"
	"go/token"
	"strings"
	"unicode"
)

// Directive represents a comment directive
// that has been parsed or created in code.
type Directive struct {

	// Tool is the name of the tool that
	// the directive is for.
	Tool string

	// Directive is the actual directive
	// string that is placed after the
	// name of the tool and a colon.
	Directive string

	// Args are the raw Go tokens passed to the directive,
	// with string literals still quoted.
	Args []string
}

// String returns the directive as a formatted string suitable for use in
// code. It includes two slashes (`//`) at the start.
func (d *Directive) String() string {
	if d == nil {
		return "<nil>"
	}
	res := "//" + d.Tool + ":" + d.Directive
	if len(d.Args) > 0 {
		res += " " + JoinTokens(d.Args)
	}
	return res
}

// Parse parses the given comment string and returns the [Directive] inside it
// if it is a directive for the given tool. If it is not, it returns nil without
// looking at the rest of the comment. Directives are of the form:
//
//	//tool:directive tokens...
//
// (the two slashes are optional). The directive name is the first token
// and the remaining tokens are the arguments.
func Parse(comment string, tool string) (*Directive, error) {
	comment = strings.TrimPrefix(comment, "//")
	rs := []rune(comment)
	if len(rs) == 0 || unicode.IsSpace(rs[0]) { // directives must not have whitespace as their first character
		return nil, nil
	}
	before, after, found := strings.Cut(comment, ":")
	if !found || before != tool {
		return nil, nil
	}
	tokens, err := Tokenize(after)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s directive %q: %w", tool, comment, err)
	}
	directive := &Directive{Tool: tool}
	if len(tokens) > 0 {
		directive.Directive = tokens[0]
		directive.Args = tokens[1:]
	}
	return directive, nil
}

// ParseComment parses the given AST comment
// and returns any [Directive] for the given tool inside it.
// It is a helper function that calls [Parse]
// on the text of the comment.
func ParseComment(comment *ast.Comment, tool string) (*Directive, error) {
	return Parse(comment.Text, tool)
}

// ParseCommentGroup parses the given AST comment
// group and returns a slice of all [Directive]s for the given tool
// inside it, in source order. It is a helper function that calls
// [ParseComment] on each comment in the group. A nil group has
// no directives.
func ParseCommentGroup(group *ast.CommentGroup, tool string) ([]*Directive, error) {
	res := []*Directive{}
	if group == nil {
		return res, nil
	}
	for _, comment := range group.List {
		dir, err := ParseComment(comment, tool)
		if err != nil {
			return nil, err
		}
		if dir != nil {
			res = append(res, dir)
		}
	}
	return res, nil
}

// Tokenize splits the given source into Go tokens using [scanner.Scanner].
// Identifiers, keywords and literals are returned as they appear in the
// source (string literals keep their quotes), and operators as their
// symbols. Comments and automatically inserted semicolons are dropped.
func Tokenize(src string) ([]string, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))
	var errs scanner.ErrorList
	var s scanner.Scanner
	s.Init(file, []byte(src), errs.Add, 0)
	tokens := []string{}
	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}
		if lit == "" {
			lit = tok.String()
		}
		tokens = append(tokens, lit)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// JoinTokens joins the given tokens back into directive source,
// with no space around "=" and no space before ",".
func JoinTokens(tokens []string) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 && tok != "," && tok != "=" && tokens[i-1] != "=" {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return b.String()
}
