// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package display formats dates for people to read. The output of a
// Formatter can be parsed by the parser package configured with the same
// locale and, for the numeric styles, the matching entry order.
package display

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/gendate"
	"cloudeng.io/gendate/calendars"
	"cloudeng.io/gendate/locale"
)

// Formatter displays dates using a Style and the strings for a locale.
// A nil Names uses English.
type Formatter struct {
	Style Style
	Names *locale.Names
}

// New returns a Formatter for the specified style and locale.
func New(style Style, names *locale.Names) Formatter {
	return Formatter{Style: style, Names: names}
}

func (f Formatter) names() *locale.Names {
	if f.Names == nil {
		return locale.English()
	}
	return f.Names
}

// Display returns the text for d. Text only dates are displayed as their
// text and dates with no known fields as the empty string. Dates in
// calendars other than the Gregorian are followed by the name of their
// calendar in parentheses.
func (f Formatter) Display(d gendate.Date) string {
	if d.Modifier() == gendate.ModTextOnly {
		return d.Text()
	}
	start := d.StartDate()
	if start.IsEmpty() {
		return ""
	}
	n := f.names()
	cal := d.Calendar()
	words := make([]string, 0, 6)
	words = append(words, n.QualityPrefix(d.Quality()))
	switch d.Modifier() {
	case gendate.ModRange:
		words = append(words, n.RangeStart, f.Value(cal, start), n.RangeSep, f.stop(cal, d.StopDate()))
	case gendate.ModSpan:
		words = append(words, n.SpanStart, f.Value(cal, start), n.SpanSep, f.stop(cal, d.StopDate()))
	default:
		words = append(words, n.ModifierPrefix(d.Modifier()), f.Value(cal, start))
	}
	if cal != calendars.Gregorian {
		words = append(words, "("+n.CalendarName(cal)+")")
	}
	return join(words)
}

// stop renders an unknown stop date as "????".
func (f Formatter) stop(cal calendars.Calendar, v gendate.Value) string {
	if v.IsEmpty() {
		return "????"
	}
	return f.Value(cal, v)
}

func join(words []string) string {
	var out strings.Builder
	for _, w := range words {
		if len(w) == 0 {
			continue
		}
		if out.Len() > 0 {
			out.WriteByte(' ')
		}
		out.WriteString(w)
	}
	return out.String()
}

// Value returns the text for a single set of date fields in calendar cal,
// without any modifier, quality or calendar name.
func (f Formatter) Value(cal calendars.Calendar, v gendate.Value) string {
	if v.IsEmpty() {
		return ""
	}
	if l, ok := f.Style.numeric(); ok {
		return numeric(l, v)
	}
	n := f.names()
	switch f.Style {
	case UpperMonthDayYear:
		return monthFirst(n.Upper(n.ShortMonthName(cal, v.Month)), v)
	case ShortMonthDayYear:
		return monthFirst(n.ShortMonthName(cal, v.Month), v)
	case DayDotMonthYear:
		return dayFirst(n.MonthName(cal, v.Month), v)
	}
	return monthFirst(n.MonthName(cal, v.Month), v)
}

// year returns the year, with the last digit of the following year for
// dual dates, or ???? if it is unknown.
func year(v gendate.Value) string {
	if v.Year == 0 {
		return "????"
	}
	if v.DualYear {
		return fmt.Sprintf("%d/%d", v.Year, (v.Year+1)%10)
	}
	return strconv.Itoa(v.Year)
}

// Month D, YYYY: unknown fields are omitted except that a known month
// and day with an unknown year is shown as "Month D, ????".
func monthFirst(month string, v gendate.Value) string {
	switch {
	case v.Month == 0 || len(month) == 0:
		return year(v)
	case v.Day == 0 && v.Year == 0:
		return month
	case v.Day == 0:
		return month + " " + year(v)
	}
	return fmt.Sprintf("%s %d, %s", month, v.Day, year(v))
}

// D. Month YYYY
func dayFirst(month string, v gendate.Value) string {
	switch {
	case v.Month == 0 || len(month) == 0:
		return year(v)
	case v.Day == 0 && v.Year == 0:
		return month
	case v.Day == 0:
		return month + " " + year(v)
	}
	return fmt.Sprintf("%d. %s %s", v.Day, month, year(v))
}

func twoDigits(n int) string {
	if n == 0 {
		return "??"
	}
	return fmt.Sprintf("%02d", n)
}

func numeric(l numericLayout, v gendate.Value) string {
	if v.Month == 0 && v.Day == 0 {
		return year(v)
	}
	fields := make([]string, 3)
	for i, c := range l.order {
		switch c {
		case 'd':
			fields[i] = twoDigits(v.Day)
		case 'm':
			fields[i] = twoDigits(v.Month)
		case 'y':
			fields[i] = year(v)
		}
	}
	return strings.Join(fields, l.sep)
}
