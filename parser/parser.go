// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package parser converts free form text into genealogical dates. Parsing
// never fails: text that cannot be understood is returned as a text only
// date that preserves the original input.
//
// The parser recognises, in order: a leading quality (estimated,
// calculated), a trailing calendar name in parentheses, ranges
// ("between X and Y", "bet X - Y"), spans ("from X to Y"), a leading
// modifier (about, abt, est, circa, c., before, bef, after, aft) and then
// a single date in one of the following forms:
//
//	June 11, 1900    month name, day and year
//	11 June 1900     day, month name and year
//	1900-06-11       ISO 8601
//	11/06/1900       numeric, in the configured entry order
//	06/1900          month and year
//	June             month name alone
//	1720/21          year, with an optional dual year
//
// A ? in place of a number means that the field is unknown, eg.
// "??/11/1900". A literal 0 is not accepted in place of ?.
package parser

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"cloudeng.io/gendate"
	"cloudeng.io/gendate/calendars"
	"cloudeng.io/gendate/locale"
)

// Result is the outcome of parsing, either Parsed or Unstructured.
type Result interface {
	result()
}

// Parsed is returned when the text was understood.
type Parsed struct {
	Date gendate.Date
}

// Unstructured is returned when the text was not understood.
type Unstructured struct {
	Text string
}

func (Parsed) result()       {}
func (Unstructured) result() {}

type options struct {
	order    EntryOrder
	names    *locale.Names
	calendar calendars.Calendar
	logger   *slog.Logger
}

// Option represents an option to New.
type Option func(*options)

// WithEntryOrder sets the order in which day, month and year are
// expected in purely numeric dates. The default is MonthDayYear.
func WithEntryOrder(v EntryOrder) Option {
	return func(o *options) {
		o.order = v
	}
}

// WithLocale sets the locale used for month names and for the words
// used for modifiers, qualities, ranges and spans. English words and
// month abbreviations are always accepted.
func WithLocale(v *locale.Names) Option {
	return func(o *options) {
		o.names = v
	}
}

// WithCalendar sets the calendar for dates that do not specify one.
func WithCalendar(v calendars.Calendar) Option {
	return func(o *options) {
		o.calendar = v
	}
}

// WithLogger sets the logger used to report text that could not be
// parsed, at debug level.
func WithLogger(v *slog.Logger) Option {
	return func(o *options) {
		o.logger = v
	}
}

// Parser parses dates. It is safe for concurrent use.
type Parser struct {
	opts    options
	rangeRe *regexp.Regexp
	spanRe  *regexp.Regexp
}

// New creates a new Parser with the supplied options.
func New(opts ...Option) *Parser {
	p := &Parser{}
	p.opts.names = locale.English()
	p.opts.logger = slog.New(slog.DiscardHandler)
	for _, o := range opts {
		o(&p.opts)
	}
	en := locale.English()
	p.rangeRe = compoundRegexp(
		merge(p.opts.names.RangeWords, en.RangeWords),
		merge(p.opts.names.RangeSeps, en.RangeSeps))
	p.spanRe = compoundRegexp(
		merge(p.opts.names.SpanWords, en.SpanWords),
		merge(p.opts.names.SpanSeps, en.SpanSeps))
	return p
}

func merge(a, b []string) []string {
	words := slices.Concat(a, b)
	slices.SortFunc(words, func(x, y string) int {
		return len(y) - len(x)
	})
	return slices.Compact(words)
}

func alternatives(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

// compoundRegexp matches "<start> X <sep> Y".
func compoundRegexp(starts, seps []string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?i)^(?:%s)\.?\s+(.+?)\s+(?:%s)\.?\s+(.+)$`,
		alternatives(starts), alternatives(seps)))
}

// Parse parses text, returning a text only date if it cannot be
// understood.
func (p *Parser) Parse(text string) gendate.Date {
	switch r := p.ParseResult(text).(type) {
	case Parsed:
		return r.Date
	case Unstructured:
		return gendate.NewText(r.Text)
	}
	return gendate.NewText(text)
}

// ParseResult parses text and reports whether it was understood. Empty
// text yields an empty date.
func (p *Parser) ParseResult(text string) Result {
	s := strings.Join(strings.Fields(text), " ")
	if len(s) == 0 {
		var d gendate.Date
		d.SetCalendar(p.opts.calendar)
		return Parsed{Date: d}
	}
	d, ok := p.parse(s)
	if !ok {
		p.opts.logger.Debug("date not understood", "text", text)
		return Unstructured{Text: text}
	}
	d.SetText(text)
	return Parsed{Date: d}
}

var (
	calendarSuffixRe = regexp.MustCompile(`^(.*?)\s*\(([^()]+)\)$`)
	firstWordRe      = regexp.MustCompile(`^(\S+)\s+(.+)$`)
)

func (p *Parser) parse(s string) (gendate.Date, bool) {
	var d gendate.Date
	quality := gendate.QualNone
	if m := firstWordRe.FindStringSubmatch(s); m != nil {
		if q, ok := p.opts.names.Quality(m[1]); ok {
			quality, s = q, m[2]
		}
	}
	cal := p.opts.calendar
	if m := calendarSuffixRe.FindStringSubmatch(s); m != nil {
		c, ok := p.opts.names.ParseCalendar(m[2])
		if !ok {
			return d, false
		}
		cal, s = c, m[1]
	}
	for _, compound := range []struct {
		re  *regexp.Regexp
		mod gendate.Modifier
	}{
		{p.rangeRe, gendate.ModRange},
		{p.spanRe, gendate.ModSpan},
	} {
		m := compound.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		start, ok := p.single(cal, m[1])
		if !ok {
			continue
		}
		stop, ok := p.single(cal, m[2])
		if !ok {
			continue
		}
		err := d.Set(quality, compound.mod, cal, []gendate.Value{start, stop}, "")
		return d, err == nil
	}
	modifier := gendate.ModNone
	if m := firstWordRe.FindStringSubmatch(s); m != nil {
		if mod, ok := p.opts.names.Modifier(m[1]); ok {
			modifier, s = mod, m[2]
		}
	}
	v, ok := p.single(cal, s)
	if !ok {
		return d, false
	}
	err := d.Set(quality, modifier, cal, []gendate.Value{v}, "")
	return d, err == nil
}
