// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package display_test

import (
	"fmt"
	"testing"

	"cloudeng.io/gendate"
	"cloudeng.io/gendate/calendars"
	"cloudeng.io/gendate/display"
	"cloudeng.io/gendate/locale"
	"cloudeng.io/gendate/parser"
	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, q gendate.Quality, m gendate.Modifier, cal calendars.Calendar, values ...gendate.Value) gendate.Date {
	t.Helper()
	var d gendate.Date
	require.NoError(t, d.Set(q, m, cal, values, ""))
	return d
}

func TestValue(t *testing.T) {
	full := gendate.Value{Year: 1900, Month: 6, Day: 11}
	monthYear := gendate.Value{Year: 1900, Month: 6}
	yearOnly := gendate.Value{Year: 1900}
	monthDay := gendate.Value{Month: 6, Day: 11}
	monthOnly := gendate.Value{Month: 6}
	dual := gendate.Value{Year: 1720, Month: 2, Day: 3, DualYear: true}

	for _, tc := range []struct {
		style display.Style
		value gendate.Value
		want  string
	}{
		{display.LongMonthDayYear, full, "June 11, 1900"},
		{display.LongMonthDayYear, monthYear, "June 1900"},
		{display.LongMonthDayYear, yearOnly, "1900"},
		{display.LongMonthDayYear, monthDay, "June 11, ????"},
		{display.LongMonthDayYear, monthOnly, "June"},
		{display.LongMonthDayYear, dual, "February 3, 1720/1"},
		{display.LongMonthDayYear, gendate.Value{Year: 1729, DualYear: true}, "1729/0"},
		{display.UpperMonthDayYear, full, "JUN 11, 1900"},
		{display.UpperMonthDayYear, monthYear, "JUN 1900"},
		{display.ShortMonthDayYear, full, "Jun 11, 1900"},
		{display.ShortMonthDayYear, monthDay, "Jun 11, ????"},
		{display.NumericMDYSlash, full, "06/11/1900"},
		{display.NumericMDYDash, full, "06-11-1900"},
		{display.NumericMDYDot, full, "06.11.1900"},
		{display.NumericDMYSlash, full, "11/06/1900"},
		{display.NumericDMYDash, full, "11-06-1900"},
		{display.NumericDMYDot, full, "11.06.1900"},
		{display.NumericYMDSlash, full, "1900/06/11"},
		{display.NumericYMDDash, full, "1900-06-11"},
		{display.NumericYMDDot, full, "1900.06.11"},
		{display.NumericMDYSlash, monthYear, "06/??/1900"},
		{display.NumericMDYSlash, yearOnly, "1900"},
		{display.NumericDMYDot, monthDay, "11.06.????"},
		{display.NumericYMDDash, monthOnly, "????-06-??"},
		{display.DayDotMonthYear, full, "11. June 1900"},
		{display.DayDotMonthYear, monthYear, "June 1900"},
		{display.DayDotMonthYear, monthDay, "11. June ????"},
		{display.DayDotMonthYear, yearOnly, "1900"},
		{display.LongMonthDayYear, gendate.Value{}, ""},
	} {
		f := display.New(tc.style, nil)
		if got, want := f.Value(calendars.Gregorian, tc.value), tc.want; got != want {
			t.Errorf("%v: %v: got %q, want %q", tc.style, tc.value, got, want)
		}
	}
}

func TestDisplay(t *testing.T) {
	f := display.New(display.LongMonthDayYear, locale.English())
	for _, tc := range []struct {
		date gendate.Date
		want string
	}{
		{gendate.Date{}, ""},
		{gendate.NewText("summer 1920"), "summer 1920"},
		{gendate.NewText(""), ""},
		{gendate.New(calendars.Gregorian, 0, 6, 11), "June 11, ????"},
		{mustSet(t, gendate.QualNone, gendate.ModAbout, calendars.Gregorian, gendate.Value{Year: 1900}), "about 1900"},
		{mustSet(t, gendate.QualNone, gendate.ModBefore, calendars.Gregorian, gendate.Value{Year: 1900, Month: 6}), "before June 1900"},
		{mustSet(t, gendate.QualNone, gendate.ModAfter, calendars.Gregorian, gendate.Value{Year: 1900}), "after 1900"},
		{mustSet(t, gendate.QualEstimated, gendate.ModNone, calendars.Gregorian, gendate.Value{Year: 1900}), "estimated 1900"},
		{mustSet(t, gendate.QualCalculated, gendate.ModAbout, calendars.Gregorian, gendate.Value{Year: 1900}), "calculated about 1900"},
		{mustSet(t, gendate.QualNone, gendate.ModRange, calendars.Gregorian,
			gendate.Value{Year: 1994}, gendate.Value{Year: 1999}), "between 1994 and 1999"},
		{mustSet(t, gendate.QualNone, gendate.ModSpan, calendars.Gregorian,
			gendate.Value{Year: 1994, Month: 3}, gendate.Value{Year: 1999, Month: 5, Day: 2}), "from March 1994 to May 2, 1999"},
		{mustSet(t, gendate.QualNone, gendate.ModRange, calendars.Gregorian,
			gendate.Value{Year: 1900}, gendate.Value{}), "between 1900 and ????"},
		{mustSet(t, gendate.QualNone, gendate.ModSpan, calendars.Gregorian,
			gendate.Value{Year: 1900, Month: 6}, gendate.Value{}), "from June 1900 to ????"},
		{gendate.New(calendars.Julian, 1900, 2, 29), "February 29, 1900 (Julian)"},
		{gendate.New(calendars.Hebrew, 5784, 1, 1), "Tishri 1, 5784 (Hebrew)"},
		{gendate.New(calendars.French, 1, 13, 0), "Extra 1 (French Republican)"},
		{mustSet(t, gendate.QualEstimated, gendate.ModRange, calendars.Julian,
			gendate.Value{Year: 1700}, gendate.Value{Year: 1710}), "estimated between 1700 and 1710 (Julian)"},
	} {
		if got, want := f.Display(tc.date), tc.want; got != want {
			t.Errorf("%v: got %q, want %q", tc.date, got, want)
		}
	}
}

func TestLocales(t *testing.T) {
	d := mustSet(t, gendate.QualNone, gendate.ModAbout, calendars.Julian, gendate.Value{Year: 1900, Month: 3, Day: 11})
	r := mustSet(t, gendate.QualEstimated, gendate.ModSpan, calendars.Gregorian,
		gendate.Value{Year: 1900}, gendate.Value{Year: 1910, Month: 8})
	for _, tc := range []struct {
		names *locale.Names
		style display.Style
		date  gendate.Date
		want  string
	}{
		{locale.French(), display.DayDotMonthYear, d, "vers 11. mars 1900 (julien)"},
		{locale.French(), display.LongMonthDayYear, r, "estimé de 1900 à août 1910"},
		{locale.German(), display.DayDotMonthYear, d, "um 11. März 1900 (julianisch)"},
		{locale.German(), display.UpperMonthDayYear, d, "um MÄR 11, 1900 (julianisch)"},
		{locale.German(), display.NumericDMYDot, r, "geschätzt von 1900 bis ??.08.1910"},
	} {
		if got, want := display.New(tc.style, tc.names).Display(tc.date), tc.want; got != want {
			t.Errorf("%v: got %q, want %q", tc.style, got, want)
		}
	}
}

func entryOrder(s display.Style) parser.EntryOrder {
	switch s {
	case display.NumericDMYSlash, display.NumericDMYDash, display.NumericDMYDot:
		return parser.DayMonthYear
	case display.NumericYMDSlash, display.NumericYMDDash, display.NumericYMDDot:
		return parser.YearMonthDay
	}
	return parser.MonthDayYear
}

func TestParseDisplayed(t *testing.T) {
	dates := []gendate.Date{
		gendate.New(calendars.Gregorian, 1900, 6, 11),
		gendate.New(calendars.Gregorian, 1900, 6, 0),
		gendate.New(calendars.Gregorian, 1900, 0, 0),
		gendate.New(calendars.Gregorian, 0, 6, 11),
		gendate.New(calendars.Julian, 1700, 2, 29),
		gendate.New(calendars.Hebrew, 5784, 6, 14),
		gendate.New(calendars.Islamic, 1445, 9, 1),
		gendate.New(calendars.Persian, 1403, 12, 29),
		gendate.New(calendars.French, 2, 1, 1),
		mustSet(t, gendate.QualNone, gendate.ModAbout, calendars.Gregorian, gendate.Value{Year: 1900}),
		mustSet(t, gendate.QualNone, gendate.ModBefore, calendars.Gregorian, gendate.Value{Year: 1900, Month: 1, Day: 31}),
		mustSet(t, gendate.QualCalculated, gendate.ModAfter, calendars.Gregorian, gendate.Value{Year: 1900, Month: 12}),
		mustSet(t, gendate.QualEstimated, gendate.ModNone, calendars.Julian, gendate.Value{Year: 1600}),
		mustSet(t, gendate.QualNone, gendate.ModRange, calendars.Gregorian,
			gendate.Value{Year: 1994}, gendate.Value{Year: 1999}),
		mustSet(t, gendate.QualEstimated, gendate.ModSpan, calendars.Gregorian,
			gendate.Value{Year: 1994, Month: 3, Day: 1}, gendate.Value{Year: 1999, Month: 5}),
	}
	for _, names := range []*locale.Names{locale.English(), locale.French(), locale.German()} {
		for _, style := range display.Styles() {
			f := display.New(style, names)
			p := parser.New(parser.WithLocale(names), parser.WithEntryOrder(entryOrder(style)))
			for _, d := range dates {
				text := f.Display(d)
				if got := p.Parse(text); !got.IsEqual(d) {
					t.Errorf("%v: %v: %v: %q parsed as %v", names.Tag, style, d, text, got)
				}
			}
		}
	}
	dual := gendate.Date{}
	require.NoError(t, dual.Set(gendate.QualNone, gendate.ModNone, calendars.Gregorian,
		[]gendate.Value{{Year: 1720, Month: 2, Day: 3, DualYear: true}}, ""))
	for _, style := range []display.Style{display.LongMonthDayYear, display.ShortMonthDayYear, display.DayDotMonthYear} {
		text := display.New(style, nil).Display(dual)
		if got := parser.New().Parse(text); !got.IsEqual(dual) {
			t.Errorf("%v: %q parsed as %v", style, text, got)
		}
	}
}

func TestStyles(t *testing.T) {
	if got, want := len(display.Styles()), 13; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, s := range display.Styles() {
		p, err := display.ParseStyle(s.String())
		require.NoError(t, err)
		if got, want := p, s; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		p, err = display.ParseStyle(fmt.Sprint(int(s)))
		require.NoError(t, err)
		if got, want := p, s; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		buf, err := s.MarshalText()
		require.NoError(t, err)
		require.NoError(t, p.UnmarshalText(buf))
		if got, want := p, s; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	for _, bad := range []string{"13", "-1", "mon d, yyyy", ""} {
		_, err := display.ParseStyle(bad)
		require.Error(t, err, bad)
	}
}

func ExampleFormatter_Display() {
	p := parser.New()
	for _, style := range []display.Style{display.LongMonthDayYear, display.NumericYMDDash, display.DayDotMonthYear} {
		f := display.New(style, nil)
		fmt.Println(f.Display(p.Parse("June 11")), "|", f.Display(p.Parse("abt 1 Tishri 5784 (Hebrew)")))
	}
	// Output:
	// June 11, ???? | about Tishri 1, 5784 (Hebrew)
	// ????-06-11 | about 5784-01-01 (Hebrew)
	// 11. June ???? | about 1. Tishri 5784 (Hebrew)
}
