// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"cloudeng.io/gendate"
	"cloudeng.io/gendate/calendars"
)

// EntryOrder is the order of the fields in a numeric date such as
// 11/12/1900.
type EntryOrder int

const (
	MonthDayYear EntryOrder = iota
	DayMonthYear
	YearMonthDay
)

var entryOrderNames = []string{"mdy", "dmy", "ymd"}

func (o EntryOrder) String() string {
	if o < 0 || int(o) >= len(entryOrderNames) {
		return fmt.Sprintf("EntryOrder(%d)", int(o))
	}
	return entryOrderNames[o]
}

// ParseEntryOrder parses mdy, dmy or ymd, ignoring case.
func ParseEntryOrder(s string) (EntryOrder, error) {
	for i, n := range entryOrderNames {
		if strings.EqualFold(n, s) {
			return EntryOrder(i), nil
		}
	}
	return MonthDayYear, fmt.Errorf("unrecognised entry order: %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (o EntryOrder) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *EntryOrder) UnmarshalText(text []byte) error {
	v, err := ParseEntryOrder(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

const (
	monthPat   = "(\\p{L}[\\p{L}\\p{M}'`’.\\- ]*?)"
	dayPat     = `(\d{1,2}|\?{1,2})`
	yearPat    = `(\d+|\?{1,4})(?:/(\d{1,2}))?`
	numPat     = `(\d+|\?{1,4})`
	commaOrSep = `(?:\s*,\s*|\s+)`
)

var (
	monthDayYearRe = regexp.MustCompile(`^` + monthPat + `\.?\s+` + dayPat + commaOrSep + yearPat + `$`)
	monthNumberRe  = regexp.MustCompile(`^` + monthPat + `\.?` + commaOrSep + yearPat + `$`)
	dayMonthYearRe = regexp.MustCompile(`^` + dayPat + `\.?\s+` + monthPat + `\.?(?:` + commaOrSep + yearPat + `)?$`)
	isoRe          = regexp.MustCompile(`^(\d{3,4})-(\d{1,2}|\?{1,2})(?:-(\d{1,2}|\?{1,2}))?$`)
	numericRe      = regexp.MustCompile(`^` + numPat + `([/.\-])` + numPat + `([/.\-])` + numPat + `$`)
	monthYearRe    = regexp.MustCompile(`^(\d{1,2}|\?{1,2})[/.\-](\d{3,}|\?{1,4})$`)
	yearMonthRe    = regexp.MustCompile(`^(\d{3,})[/.\-](\d{1,2}|\?{1,2})$`)
	monthOnlyRe    = regexp.MustCompile(`^` + monthPat + `\.?$`)
	yearOnlyRe     = regexp.MustCompile(`^(\d+)(?:/(\d{1,2}))?$`)
)

// single parses a date that has neither a modifier nor a quality, trying
// each of the supported forms in turn until one yields a valid date.
func (p *Parser) single(cal calendars.Calendar, s string) (gendate.Value, bool) {
	for _, form := range []func(calendars.Calendar, string) (gendate.Value, bool){
		p.monthDayYear,
		p.monthNumber,
		p.dayMonthYear,
		p.iso,
		p.numeric,
		p.monthYear,
		p.monthOnly,
		p.yearOnly,
	} {
		v, ok := form(cal, s)
		if !ok {
			continue
		}
		if v, ok = validate(cal, v); ok {
			return v, true
		}
	}
	return gendate.Value{}, false
}

func (p *Parser) month(cal calendars.Calendar, name string) (int, bool) {
	return p.opts.names.ParseMonth(cal, name)
}

// number parses a numeric field, returning 0 for an unknown (? or
// absent) field. A literal 0 is rejected.
func number(tok string) (int, bool) {
	if strings.Trim(tok, "?") == "" {
		return 0, true
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// year parses a year and an optional dual year suffix, which must
// contain the trailing digits of the following year, eg. 1720/21 or
// 1720/1.
func year(tok, dual string) (int, bool, bool) {
	y, ok := number(tok)
	if !ok {
		return 0, false, false
	}
	if len(dual) == 0 {
		return y, false, true
	}
	if y == 0 {
		return 0, false, false
	}
	d, err := strconv.Atoi(dual)
	if err != nil {
		return 0, false, false
	}
	mod := 10
	if len(dual) == 2 {
		mod = 100
	}
	if (y+1)%mod != d {
		return 0, false, false
	}
	return y, true, true
}

func fields(dayTok, monthTok string, y int, dual bool) (gendate.Value, bool) {
	d, ok := number(dayTok)
	if !ok {
		return gendate.Value{}, false
	}
	m, ok := number(monthTok)
	if !ok {
		return gendate.Value{}, false
	}
	return gendate.Value{Day: d, Month: m, Year: y, DualYear: dual}, true
}

// June 11, 1900
func (p *Parser) monthDayYear(cal calendars.Calendar, s string) (gendate.Value, bool) {
	m := monthDayYearRe.FindStringSubmatch(s)
	if m == nil {
		return gendate.Value{}, false
	}
	month, ok := p.month(cal, m[1])
	if !ok {
		return gendate.Value{}, false
	}
	y, dual, ok := year(m[3], m[4])
	if !ok {
		return gendate.Value{}, false
	}
	day, ok := number(m[2])
	return gendate.Value{Day: day, Month: month, Year: y, DualYear: dual}, ok
}

// June 11 or June 1900: a one or two digit number no greater than 31 is
// a day, anything else is a year.
func (p *Parser) monthNumber(cal calendars.Calendar, s string) (gendate.Value, bool) {
	m := monthNumberRe.FindStringSubmatch(s)
	if m == nil {
		return gendate.Value{}, false
	}
	month, ok := p.month(cal, m[1])
	if !ok {
		return gendate.Value{}, false
	}
	if len(m[3]) == 0 && len(m[2]) <= 2 {
		if n, err := strconv.Atoi(m[2]); err == nil && n <= 31 {
			if n == 0 {
				return gendate.Value{}, false
			}
			return gendate.Value{Day: n, Month: month}, true
		}
	}
	y, dual, ok := year(m[2], m[3])
	return gendate.Value{Month: month, Year: y, DualYear: dual}, ok
}

// 11 June 1900, 11. Juni 1900 or 11 JUN
func (p *Parser) dayMonthYear(cal calendars.Calendar, s string) (gendate.Value, bool) {
	m := dayMonthYearRe.FindStringSubmatch(s)
	if m == nil {
		return gendate.Value{}, false
	}
	month, ok := p.month(cal, m[2])
	if !ok {
		return gendate.Value{}, false
	}
	y, dual, ok := year(m[3], m[4])
	if !ok {
		return gendate.Value{}, false
	}
	day, ok := number(m[1])
	return gendate.Value{Day: day, Month: month, Year: y, DualYear: dual}, ok
}

// 1900-06-11 or 1900-06
func (p *Parser) iso(_ calendars.Calendar, s string) (gendate.Value, bool) {
	m := isoRe.FindStringSubmatch(s)
	if m == nil {
		return gendate.Value{}, false
	}
	y, ok := number(m[1])
	if !ok {
		return gendate.Value{}, false
	}
	return fields(m[3], m[2], y, false)
}

// 11/12/1900, 11.12.1900 or 11-12-1900 in the configured order. Both
// separators must be the same.
func (p *Parser) numeric(_ calendars.Calendar, s string) (gendate.Value, bool) {
	m := numericRe.FindStringSubmatch(s)
	if m == nil || m[2] != m[4] {
		return gendate.Value{}, false
	}
	var dayTok, monthTok, yearTok string
	switch p.opts.order {
	case DayMonthYear:
		dayTok, monthTok, yearTok = m[1], m[3], m[5]
	case YearMonthDay:
		yearTok, monthTok, dayTok = m[1], m[3], m[5]
	default:
		monthTok, dayTok, yearTok = m[1], m[3], m[5]
	}
	y, ok := number(yearTok)
	if !ok {
		return gendate.Value{}, false
	}
	return fields(dayTok, monthTok, y, false)
}

// 06/1900, or 1900/06 when the entry order is YearMonthDay.
func (p *Parser) monthYear(_ calendars.Calendar, s string) (gendate.Value, bool) {
	var monthTok, yearTok string
	if p.opts.order == YearMonthDay {
		m := yearMonthRe.FindStringSubmatch(s)
		if m == nil {
			return gendate.Value{}, false
		}
		yearTok, monthTok = m[1], m[2]
	} else {
		m := monthYearRe.FindStringSubmatch(s)
		if m == nil {
			return gendate.Value{}, false
		}
		monthTok, yearTok = m[1], m[2]
	}
	y, ok := number(yearTok)
	if !ok {
		return gendate.Value{}, false
	}
	return fields("", monthTok, y, false)
}

func (p *Parser) monthOnly(cal calendars.Calendar, s string) (gendate.Value, bool) {
	m := monthOnlyRe.FindStringSubmatch(s)
	if m == nil {
		return gendate.Value{}, false
	}
	month, ok := p.month(cal, m[1])
	return gendate.Value{Month: month}, ok
}

// 1900, 1720/21 or 1720/1
func (p *Parser) yearOnly(_ calendars.Calendar, s string) (gendate.Value, bool) {
	m := yearOnlyRe.FindStringSubmatch(s)
	if m == nil {
		return gendate.Value{}, false
	}
	y, dual, ok := year(m[1], m[2])
	if !ok || y == 0 {
		return gendate.Value{}, false
	}
	return gendate.Value{Year: y, DualYear: dual}, true
}

// validate checks v against calendar cal. A day without a month is
// discarded. When the year is unknown the day is checked against the
// longest possible length of the month.
func validate(cal calendars.Calendar, v gendate.Value) (gendate.Value, bool) {
	if v.Month == 0 {
		v.Day = 0
		return v, !v.IsEmpty()
	}
	var n int
	if v.Year != 0 {
		n = calendars.DaysInMonth(cal, v.Year, v.Month)
	} else {
		n = calendars.MaxDaysInMonth(cal, v.Month)
	}
	if n == 0 || v.Day > n {
		return v, false
	}
	return v, true
}
