// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/enumstringify/enumgen"
	"cogentcore.org/enumstringify/logx"
	"github.com/davecgh/go-spew/spew"
	"github.com/mitchellh/go-homedir"
)

// CLI is the command line interface of enumstringify.
type CLI struct {
	Debug   bool `help:"Show debug messages."`
	Verbose bool `short:"v" help:"Show informational messages."`
	Quiet   bool `short:"q" help:"Only show errors."`

	Gen     GenCmd     `cmd:"" default:"withargs" help:"Generate enum methods (the default command)."`
	Check   CheckCmd   `cmd:"" help:"Resolve the string forms of enum values and report problems without generating files."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

// AfterApply sets up logging from the verbosity flags.
func (c *CLI) AfterApply() error {
	logx.UserLevel = logx.LevelFromFlags(c.Debug, c.Verbose, c.Quiet)
	logx.SetDefaultLogger()
	return nil
}

// expandDir expands a leading ~ in the source directory of the given config.
func expandDir(cfg *enumgen.Config) error {
	dir, err := homedir.Expand(cfg.Dir)
	if err != nil {
		return fmt.Errorf("invalid source directory %q: %w", cfg.Dir, err)
	}
	cfg.Dir = dir
	return nil
}

// GenCmd generates enum methods.
type GenCmd struct {
	enumgen.Config `embed:""`

	Watch  bool     `short:"w" help:"Watch for changes and regenerate."`
	Ignore []string `default:"*_test.go" help:"Glob patterns of file names whose changes do not trigger regeneration in watch mode."`
}

func (c *GenCmd) Run() error {
	if err := expandDir(&c.Config); err != nil {
		return err
	}
	if !c.Watch {
		return enumgen.Generate(&c.Config)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return Watch(ctx, &c.Config, c.Ignore)
}

// CheckCmd resolves enum types without generating files.
type CheckCmd struct {
	enumgen.Config `embed:""`

	Dump bool `help:"Dump the resolved types."`
}

func (c *CheckCmd) Run() error {
	if err := expandDir(&c.Config); err != nil {
		return err
	}
	types, err := enumgen.Check(&c.Config)
	if err != nil {
		return err
	}
	warnings := 0
	for _, typ := range types {
		warnings += len(typ.Warnings)
		slog.Debug("resolved enum type", "type", typ.Name, "values", len(typ.Values), "pos", typ.Pos.String())
		if c.Dump {
			fmt.Fprintf(os.Stdout, "%s: %s\n", logx.CmdColor(typ.Pos.String()), typ.Name)
			dumper.Fdump(os.Stdout, typ.Values)
		}
	}
	msg := fmt.Sprintf("%d enum types checked with %d warnings", len(types), warnings)
	if warnings > 0 {
		fmt.Fprintln(os.Stdout, logx.WarnColor(msg))
	} else {
		fmt.Fprintln(os.Stdout, logx.SuccessColor(msg))
	}
	return nil
}

var dumper = spew.ConfigState{Indent: "\t", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}
