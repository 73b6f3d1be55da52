// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command enumstringify generates string conversion methods for
// Go enum types marked with enumstringify:enum comment directives.
// It is typically run through go generate:
//
//	//go:generate enumstringify
//
// Defaults for the flags can be set in an enumstringify.toml file
// in the current directory.
package main

import (
	"fmt"
	"os"

	"cogentcore.org/enumstringify/logx"
	"github.com/alecthomas/kong"
)

func main() {
	parser, ctx, err := parse(&CLI{}, os.Args[1:], kong.UsageOnError())
	if parser == nil {
		fmt.Fprintln(os.Stderr, logx.ErrorColor(err.Error()))
		os.Exit(1)
	}
	parser.FatalIfErrorf(err)
	parser.FatalIfErrorf(ctx.Run())
}

// parse parses the given command line arguments into the given [CLI],
// applying the defaults from the configuration file if there is one.
// The returned parser is nil if the [CLI] or the configuration file
// is invalid.
func parse(cli *CLI, args []string, options ...kong.Option) (*kong.Kong, *kong.Context, error) {
	options = append([]kong.Option{
		kong.Name("enumstringify"),
		kong.Description("Generate string conversion methods for Go enum types."),
		kong.Configuration(TOML, ConfigFile),
	}, options...)
	parser, err := kong.New(cli, options...)
	if err != nil {
		return nil, nil, err
	}
	ctx, err := parser.Parse(args)
	return parser, ctx, err
}
