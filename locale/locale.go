// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package locale provides the translatable strings used to parse and
// display dates: month names, the words used for modifiers, qualities,
// ranges and spans, and calendar names. Tables are provided for English,
// French and German and are selected using a BCP 47 language tag.
//
// Month names are always resolved against the selected table first and
// then against the English names and GEDCOM style abbreviations (JAN,
// FEB, ...) so that such tokens are understood regardless of locale.
package locale

import (
	"strings"
	"unicode/utf8"

	"cloudeng.io/gendate"
	"cloudeng.io/gendate/calendars"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Names contains the strings for a single locale. The word lists used
// for parsing are matched case insensitively and without any trailing
// period, so "Abt." matches "abt".
type Names struct {
	Tag language.Tag

	// Gregorian and Julian month names. The names for other calendars
	// are not translated.
	Months      [12]string
	ShortMonths [12]string

	// Calendar names indexed by calendars.Calendar.
	Calendars []string

	// Words used when displaying dates.
	Before, After, About  string
	Estimated, Calculated string
	RangeStart, RangeSep  string
	SpanStart, SpanSep    string

	// Words recognised when parsing dates.
	ModifierWords         map[string]gendate.Modifier
	QualityWords          map[string]gendate.Quality
	RangeWords, RangeSeps []string
	SpanWords, SpanSeps   []string
}

var (
	supported = []*Names{english, french, german}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.French, language.German})
)

// English returns the English table.
func English() *Names { return english }

// French returns the French table.
func French() *Names { return french }

// German returns the German table.
func German() *Names { return german }

// Supported returns the tags of the supported locales.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supported))
	for i, n := range supported {
		tags[i] = n.Tag
	}
	return tags
}

// ForTag returns the table that best matches tag, or English if there
// is no reasonable match.
func ForTag(tag language.Tag) *Names {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return english
	}
	return supported[idx]
}

// Lookup returns the table for the specified BCP 47 tag, eg. "fr-CA".
func Lookup(name string) (*Names, error) {
	tag, err := language.Parse(name)
	if err != nil {
		return nil, err
	}
	return ForTag(tag), nil
}

// Normalize folds the case of s and removes surrounding white space and
// a single trailing period.
func Normalize(s string) string {
	return cases.Fold().String(strings.TrimSuffix(strings.TrimSpace(s), "."))
}

// Upper returns s in upper case according to the locale's rules.
func (n *Names) Upper(s string) string {
	return cases.Upper(n.Tag).String(s)
}

// MonthName returns the full name of a month in calendar cal.
func (n *Names) MonthName(cal calendars.Calendar, month int) string {
	if cal != calendars.Gregorian && cal != calendars.Julian {
		return calendars.MonthName(cal, month)
	}
	if month < 1 || month > 12 {
		return ""
	}
	return n.Months[month-1]
}

// ShortMonthName returns the abbreviated name of a month in calendar cal.
// Months of calendars other than Gregorian and Julian are not abbreviated.
func (n *Names) ShortMonthName(cal calendars.Calendar, month int) string {
	if cal != calendars.Gregorian && cal != calendars.Julian {
		return calendars.MonthName(cal, month)
	}
	if month < 1 || month > 12 {
		return ""
	}
	return n.ShortMonths[month-1]
}

// CalendarName returns the name of cal in this locale.
func (n *Names) CalendarName(cal calendars.Calendar) string {
	if !cal.Valid() || int(cal) >= len(n.Calendars) {
		return cal.String()
	}
	return n.Calendars[cal]
}

// ParseCalendar resolves a calendar name in this locale or in English.
func (n *Names) ParseCalendar(name string) (calendars.Calendar, bool) {
	t := Normalize(name)
	for _, names := range []*Names{n, english} {
		for i, cn := range names.Calendars {
			if Normalize(cn) == t {
				return calendars.Calendar(i), true
			}
		}
	}
	if cal, err := calendars.ParseCalendar(t); err == nil {
		return cal, true
	}
	return calendars.Gregorian, false
}

func (n *Names) monthTables(cal calendars.Calendar) [][]string {
	switch cal {
	case calendars.Gregorian, calendars.Julian:
		return [][]string{n.Months[:], n.ShortMonths[:], english.Months[:], english.ShortMonths[:], gedcomMonths[:]}
	case calendars.Hebrew:
		return [][]string{calendars.MonthNames(cal), hebrewAliases, gedcomHebrewMonths}
	case calendars.French:
		return [][]string{calendars.MonthNames(cal), gedcomFrenchMonths}
	}
	return [][]string{calendars.MonthNames(cal)}
}

// ParseMonth returns the number of the month named by token in calendar
// cal. Exact matches against any of the names are preferred; otherwise a
// token of at least three letters may be a prefix of a month name.
func (n *Names) ParseMonth(cal calendars.Calendar, token string) (int, bool) {
	t := Normalize(token)
	if len(t) == 0 {
		return 0, false
	}
	tables := n.monthTables(cal)
	for _, tbl := range tables {
		for i, name := range tbl {
			if Normalize(name) == t {
				return i + 1, true
			}
		}
	}
	if utf8.RuneCountInString(t) < 3 {
		return 0, false
	}
	for _, tbl := range tables {
		for i, name := range tbl {
			if strings.HasPrefix(Normalize(name), t) {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// Modifier returns the modifier named by word in this locale or in
// English.
func (n *Names) Modifier(word string) (gendate.Modifier, bool) {
	t := Normalize(word)
	if m, ok := n.ModifierWords[t]; ok {
		return m, true
	}
	m, ok := english.ModifierWords[t]
	return m, ok
}

// Quality returns the quality named by word in this locale or in English.
func (n *Names) Quality(word string) (gendate.Quality, bool) {
	t := Normalize(word)
	if q, ok := n.QualityWords[t]; ok {
		return q, true
	}
	q, ok := english.QualityWords[t]
	return q, ok
}

// ModifierPrefix returns the word displayed before a date with modifier m.
func (n *Names) ModifierPrefix(m gendate.Modifier) string {
	switch m {
	case gendate.ModBefore:
		return n.Before
	case gendate.ModAfter:
		return n.After
	case gendate.ModAbout:
		return n.About
	}
	return ""
}

// QualityPrefix returns the word displayed before a date of quality q.
func (n *Names) QualityPrefix(q gendate.Quality) string {
	switch q {
	case gendate.QualEstimated:
		return n.Estimated
	case gendate.QualCalculated:
		return n.Calculated
	}
	return ""
}
