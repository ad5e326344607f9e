// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command temporal parses, formats and validates the canonical text
// representations of the temporal value types.
package main

import (
	"context"
	"io"
	"os"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: temporal
summary: parse, format and validate canonical temporal text
commands:
  - name: types
    summary: list the supported types with their canonical patterns
  - name: parse
    summary: parse each text as the named type and print its canonical form
    arguments:
      - <type>
      - <text>
      - ...
  - name: check
    summary: verify that every line in the named files round trips exactly
    arguments:
      - <type>
      - <file>
      - ...
  - name: now
    summary: print the current, or specified, instant in all of its forms
`

// CommonFlags are shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'yaml configuration file, its logging section overrides the logging flags'"`
}

// Config represents the optional yaml configuration file.
type Config struct {
	Logging cmdutil.LoggingConfig `yaml:"logging"`
}

// withLogger returns a context containing the logger configured by the
// flags and the configuration file, if any.
func (cf *CommonFlags) withLogger(ctx context.Context) (context.Context, func(), error) {
	cfg := Config{Logging: cf.LoggingConfig()}
	if len(cf.Config) > 0 {
		if err := cmdyaml.ParseConfigFile(ctx, cf.Config, &cfg); err != nil {
			return ctx, nil, err
		}
	}
	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { logger.Close() }, nil
}

func newCommandSet(out io.Writer, now func() time.Time) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	c := &commands{out: out, now: now}
	cmdSet.Set("types").MustRunnerAndFlags(c.types,
		subcmd.MustRegisteredFlagSet(&typesFlags{}))
	cmdSet.Set("parse").MustRunnerAndFlags(c.parse,
		subcmd.MustRegisteredFlagSet(&parseFlags{}))
	cmdSet.Set("check").MustRunnerAndFlags(c.check,
		subcmd.MustRegisteredFlagSet(&checkFlags{}))
	cmdSet.Set("now").MustRunnerAndFlags(c.nowCmd,
		subcmd.MustRegisteredFlagSet(&nowFlags{}))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet(os.Stdout, time.Now))
}
