// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumgen

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mattn/go-shellwords"
)

// Config contains the configuration information
// used by enumstringify.
type Config struct {

	// the source directory to run enumstringify on (can be set to multiple through paths like ./...)
	Dir string `default:"." arg:"" optional:"" help:"The source directory to run enumstringify on (can be set to multiple through paths like ./...)." validate:"required"`

	// the output file location relative to the package on which enumstringify is being called
	Output string `default:"enumstringify.go" help:"The output file location relative to the package on which enumstringify is being called." validate:"required,endswith=.go"`

	// whether to generate text marshaling methods
	Text bool `default:"true" negatable:"" help:"Whether to generate text marshaling methods."`

	// whether to generate JSON marshaling methods (note that text marshaling methods will also work for JSON, so this should be unnecessary in almost all cases; see the text option)
	JSON bool `help:"Whether to generate JSON marshaling methods (text marshaling methods also work for JSON)."`

	// whether to generate YAML marshaling methods
	YAML bool `help:"Whether to generate YAML marshaling methods."`

	// whether to generate methods that implement the SQL Scanner and Valuer interfaces
	SQL bool `help:"Whether to generate methods that implement the SQL Scanner and Valuer interfaces."`

	// extra build flags passed to the go tool when loading packages, as one shell-quoted string
	BuildFlags string `help:"Extra build flags passed to the go tool when loading packages, as one shell-quoted string (eg: -tags=debug)."`
}

// NewConfig returns a new [Config] with the default values.
func NewConfig() *Config {
	return &Config{Dir: ".", Output: "enumstringify.go", Text: true}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate returns an error if the configuration is not valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := c.BuildFlagList(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// BuildFlagList splits [Config.BuildFlags] into separate
// arguments the way a shell would.
func (c *Config) BuildFlagList() ([]string, error) {
	flags, err := shellwords.Parse(c.BuildFlags)
	if err != nil {
		return nil, fmt.Errorf("error parsing build flags %q: %w", c.BuildFlags, err)
	}
	return flags, nil
}
