// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/enumstringify/strcase"
	"github.com/alecthomas/kong"
	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the name of the configuration file that
// is loaded from the current directory if it exists.
const ConfigFile = "enumstringify.toml"

// TOML is a [kong.ConfigurationLoader] that reads flag defaults from
// TOML. Flags are looked up by name and by their snake_case name, first
// in the table of the selected command and then at the top level:
//
//	output = "enums_string.go"
//	build_flags = "-tags=debug"
//
//	[gen]
//	json = true
func TOML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := toml.NewDecoder(r).Decode(&values); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", ConfigFile, err)
	}
	var f kong.ResolverFunc = func(ctx *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		keys := []string{flag.Name, strcase.ToSnake(flag.Name)}
		if cmd := ctx.Selected(); cmd != nil {
			if table, ok := values[cmd.Name].(map[string]any); ok {
				if v, ok := lookup(table, keys); ok {
					return v, nil
				}
			}
		}
		if v, ok := lookup(values, keys); ok {
			return v, nil
		}
		return nil, nil
	}
	return f, nil
}

// lookup returns the first non-table value in the given table
// for any of the given keys.
func lookup(table map[string]any, keys []string) (any, bool) {
	for _, key := range keys {
		v, ok := table[key]
		if !ok {
			continue
		}
		if _, isTable := v.(map[string]any); isTable {
			continue
		}
		if list, isList := v.([]any); isList {
			strs := make([]string, len(list))
			for i, e := range list {
				strs[i] = fmt.Sprint(e)
			}
			return strings.Join(strs, ","), true
		}
		return v, true
	}
	return nil, false
}
