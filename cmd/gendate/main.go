// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command gendate parses, displays, converts and compares genealogical
// dates. Its behaviour may be configured using a YAML file, see the
// config command for a description of its format.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/gendate/config"
	"cloudeng.io/gendate/display"
	"cloudeng.io/logging/ctxlog"
)

const commands = `name: gendate
summary: parse, display, convert and compare genealogical dates
commands:
  - name: parse
    summary: parse dates and print their displayed and serialized forms
    arguments:
      - <date>
      - ...
  - name: display
    summary: display dates given in their serialized YAML form, eg. "[0, 3, 0, [0, 0, 1900, false], '', 0]"
    arguments:
      - <serialized-date>
      - ...
  - name: convert
    summary: convert a date to another calendar
    arguments:
      - <calendar>
      - <date>
  - name: range
    summary: print the earliest and latest Gregorian days that dates may refer to
    arguments:
      - <date>
      - ...
  - name: match
    summary: compare two dates using one of =, <, <<, > or >>
    arguments:
      - <date>
      - <operator>
      - <date>
  - name: sort
    summary: print dates in chronological order
    arguments:
      - <date>
      - ...
  - name: sdn
    summary: print the serial day number of a date and the same day in every calendar
    arguments:
      - <date>
  - name: diff
    summary: print the approximate difference between two dates in years, months and days
    arguments:
      - <date>
      - <date>
  - name: offset
    summary: add years, months and days to a date
    arguments:
      - <date>
      - <years>
      - <months>
      - <days>
  - name: styles
    summary: list the available display styles
  - name: config
    summary: describe the configuration file and print the configuration in effect
`

var cmdSet = subcmd.MustFromYAML(commands)

// CommonFlags are the flags shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'YAML configuration file, see the config command for its format'"`
}

// DisplayFlags are the flags for commands that display dates.
type DisplayFlags struct {
	CommonFlags
	Style string `subcmd:"style,,'display style, either its pattern or its number, overrides the configuration'"`
}

// ParseFlags are the flags for the parse command.
type ParseFlags struct {
	DisplayFlags
	NoText bool `subcmd:"no-text,false,'omit the original text from the serialized form'"`
}

var cli = &runner{out: os.Stdout}

func init() {
	cmdSet.Set("parse").MustRunnerAndFlags(cli.parse,
		subcmd.MustRegisterFlagStruct(&ParseFlags{}, nil, nil))
	cmdSet.Set("display").MustRunnerAndFlags(cli.display,
		subcmd.MustRegisterFlagStruct(&DisplayFlags{}, nil, nil))
	cmdSet.Set("convert").MustRunnerAndFlags(cli.convert,
		subcmd.MustRegisterFlagStruct(&DisplayFlags{}, nil, nil))
	cmdSet.Set("range").MustRunnerAndFlags(cli.ranges,
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	cmdSet.Set("match").MustRunnerAndFlags(cli.match,
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	cmdSet.Set("sort").MustRunnerAndFlags(cli.sort,
		subcmd.MustRegisterFlagStruct(&DisplayFlags{}, nil, nil))
	cmdSet.Set("sdn").MustRunnerAndFlags(cli.sdn,
		subcmd.MustRegisterFlagStruct(&DisplayFlags{}, nil, nil))
	cmdSet.Set("diff").MustRunnerAndFlags(cli.diff,
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	cmdSet.Set("offset").MustRunnerAndFlags(cli.offset,
		subcmd.MustRegisterFlagStruct(&DisplayFlags{}, nil, nil))
	cmdSet.Set("styles").MustRunnerAndFlags(cli.styles,
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	cmdSet.Set("config").MustRunnerAndFlags(cli.config,
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}

// configure loads the configuration file, if any, and returns a context
// carrying a logger created from the configuration's logging section as
// overridden by the logging flags. The returned closer must be closed
// once the command is done.
func (cf *CommonFlags) configure(ctx context.Context) (context.Context, config.Config, io.Closer, error) {
	cfg := config.Default()
	if len(cf.Config) > 0 {
		var err error
		if cfg, err = config.LoadFile(cf.Config); err != nil {
			return ctx, cfg, nil, err
		}
	}
	lc := cfg.Logging
	if cf.Level > 0 {
		lc.Level = cf.Level
	}
	if len(cf.File) > 0 {
		lc.File = cf.File
	}
	if len(cf.Config) == 0 && len(cf.Format) > 0 {
		lc.Format = cf.Format
	}
	lc.SourceCode = lc.SourceCode || cf.SourceCode
	logger, err := lc.NewLogger()
	if err != nil {
		return ctx, cfg, nil, err
	}
	logger.Debug("configuration",
		"file", cf.Config,
		"locale", cfg.Display.Locale,
		"style", cfg.Display.Style.String(),
		"entry_order", cfg.Parse.EntryOrder.String(),
		"calendar", cfg.Parse.Calendar.String())
	return ctxlog.Context(ctx, logger.Logger), cfg, logger, nil
}

// formatter returns the configured formatter with its style overridden
// by the --style flag if set.
func (df *DisplayFlags) formatter(cfg config.Config) (display.Formatter, error) {
	f := cfg.Formatter()
	if len(df.Style) == 0 {
		return f, nil
	}
	style, err := display.ParseStyle(df.Style)
	if err != nil {
		return f, err
	}
	f.Style = style
	return f, nil
}
