// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package config provides the YAML configuration for parsing, displaying
// and matching dates, eg:
//
//	display:
//	  style: "D. Month YYYY"
//	  locale: de
//	parse:
//	  entry_order: dmy
//	  calendar: gregorian
//	ranges:
//	  before: 50
//	  after: 50
//	  about: 50
//	logging:
//	  level: 1
//	  format: text
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/structdoc"
	"cloudeng.io/errors"
	"cloudeng.io/gendate"
	"cloudeng.io/gendate/calendars"
	"cloudeng.io/gendate/display"
	"cloudeng.io/gendate/locale"
	"cloudeng.io/gendate/parser"
)

// Display configures how dates are formatted.
type Display struct {
	Style  display.Style `yaml:"style" cmd:"display style, either its pattern, eg. 'Month D, YYYY', or its number, 0-12"`
	Locale string        `yaml:"locale" cmd:"BCP 47 language tag used for month names and other words, eg. en, fr-CA"`
}

// ParseOptions configures how dates are parsed.
type ParseOptions struct {
	EntryOrder parser.EntryOrder  `yaml:"entry_order" cmd:"order of the fields in numeric dates: mdy, dmy or ymd"`
	Calendar   calendars.Calendar `yaml:"calendar" cmd:"calendar assumed for dates that do not name one"`
}

// Config represents the complete configuration.
type Config struct {
	Display Display               `yaml:"display" cmd:"date display options"`
	Parse   ParseOptions          `yaml:"parse" cmd:"date parsing options"`
	Ranges  gendate.Ranges        `yaml:"ranges" cmd:"widths used when matching imprecise dates"`
	Logging cmdutil.LoggingConfig `yaml:"logging" cmd:"logging options"`
}

// Default returns the default configuration: English, the
// "Month D, YYYY" style, month/day/year entry order, the Gregorian
// calendar and ranges of 50 years.
func Default() Config {
	return Config{
		Display: Display{Style: display.LongMonthDayYear, Locale: "en"},
		Parse:   ParseOptions{EntryOrder: parser.MonthDayYear, Calendar: calendars.Gregorian},
		Ranges:  gendate.DefaultRanges(),
		Logging: cmdutil.LoggingConfig{Format: "text"},
	}
}

// Parse parses a YAML configuration. Fields that are not specified retain
// their default values.
func Parse(spec []byte) (Config, error) {
	cfg := Default()
	if err := cmdutil.ParseYAMLConfig(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// LoadFile is like Parse but reads the configuration from a file.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if err := cmdutil.ParseYAMLConfigFile(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%v: %w", path, err)
	}
	return cfg, nil
}

// Validate returns an error describing every invalid value in the
// configuration.
func (c Config) Validate() error {
	errs := &errors.M{}
	if !c.Display.Style.Valid() {
		errs.Append(fmt.Errorf("display.style: invalid style %d", int(c.Display.Style)))
	}
	if _, err := locale.Lookup(c.Display.Locale); err != nil {
		errs.Append(fmt.Errorf("display.locale: %q: %w", c.Display.Locale, err))
	}
	if c.Parse.EntryOrder < parser.MonthDayYear || c.Parse.EntryOrder > parser.YearMonthDay {
		errs.Append(fmt.Errorf("parse.entry_order: invalid order %d", int(c.Parse.EntryOrder)))
	}
	if !c.Parse.Calendar.Valid() {
		errs.Append(fmt.Errorf("parse.calendar: invalid calendar %d", int(c.Parse.Calendar)))
	}
	for _, r := range []struct {
		name  string
		years int
	}{
		{"before", c.Ranges.Before},
		{"after", c.Ranges.After},
		{"about", c.Ranges.About},
	} {
		if r.years < 0 {
			errs.Append(fmt.Errorf("ranges.%v: must not be negative: %d", r.name, r.years))
		}
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		errs.Append(fmt.Errorf("logging.format: unknown log format %q", c.Logging.Format))
	}
	return errs.Err()
}

// Names returns the locale selected by the configuration, or English if
// the locale is invalid.
func (c Config) Names() *locale.Names {
	n, err := locale.Lookup(c.Display.Locale)
	if err != nil {
		return locale.English()
	}
	return n
}

// Parser returns a parser for the configured locale, entry order and
// calendar. A nil logger disables logging.
func (c Config) Parser(logger *slog.Logger) *parser.Parser {
	opts := []parser.Option{
		parser.WithLocale(c.Names()),
		parser.WithEntryOrder(c.Parse.EntryOrder),
		parser.WithCalendar(c.Parse.Calendar),
	}
	if logger != nil {
		opts = append(opts, parser.WithLogger(logger))
	}
	return parser.New(opts...)
}

// Formatter returns a formatter for the configured style and locale.
func (c Config) Formatter() display.Formatter {
	return display.New(c.Display.Style, c.Names())
}

// Matcher returns a matcher for the configured ranges.
func (c Config) Matcher() gendate.Matcher {
	return gendate.NewMatcher(c.Ranges)
}

// Describe returns a description of the YAML configuration file.
func Describe() (string, error) {
	desc, err := structdoc.Describe(&Config{}, "cmd", "YAML configuration file options\n")
	if err != nil {
		return "", err
	}
	var out strings.Builder
	out.WriteString(desc.Detail)
	out.WriteString(structdoc.FormatFields(0, 2, desc.Fields))
	return out.String(), nil
}
