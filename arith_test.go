// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gendate_test

import (
	"testing"

	"cloudeng.io/gendate"
	"cloudeng.io/gendate/calendars"
	"github.com/stretchr/testify/require"
)

func TestConvertCalendar(t *testing.T) {
	d := gendate.New(calendars.Gregorian, 2023, 9, 16)
	require.NoError(t, d.ConvertCalendar(calendars.Hebrew))
	if got, want := d.StartDate(), (gendate.Value{Year: 5784, Month: 1, Day: 1}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.Calendar(), calendars.Hebrew; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	r := mustSet(t, gendate.QualNone, gendate.ModRange, calendars.Gregorian, "",
		gendate.Value{Year: 1900}, gendate.Value{Year: 1910, Month: 3, Day: 1})
	require.NoError(t, r.ConvertCalendar(calendars.Julian))
	if got, want := r.StartDate(), (gendate.Value{Year: 1899, Month: 12, Day: 20}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := r.StopDate(), (gendate.Value{Year: 1910, Month: 2, Day: 16}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Conversion to the same calendar is a no-op.
	before := r
	require.NoError(t, r.ConvertCalendar(calendars.Julian))
	if !r.IsEqual(before) {
		t.Errorf("got %v, want %v", r, before)
	}
}

func TestConvertCalendarUndefined(t *testing.T) {
	d := gendate.New(calendars.Gregorian, 1700, 5, 1)
	before := d
	err := d.ConvertCalendar(calendars.French)
	require.ErrorIs(t, err, gendate.ErrConversionUndefined)
	if !d.IsEqual(before) {
		t.Errorf("got %v, want %v", d, before)
	}

	// A month and day without a year do not identify a day.
	for _, d := range []gendate.Date{
		gendate.New(calendars.Julian, 0, 6, 11),
		mustSet(t, gendate.QualNone, gendate.ModRange, calendars.Julian, "",
			gendate.Value{Year: 1700, Month: 3}, gendate.Value{Month: 7}),
	} {
		before := d
		require.ErrorIs(t, d.ConvertCalendar(calendars.Hebrew), gendate.ErrConversionUndefined)
		if !d.IsEqual(before) || d.Calendar() != calendars.Julian {
			t.Errorf("got %v, want %v", d, before)
		}
	}

	// Empty and text only dates have no fields to convert.
	var empty gendate.Date
	require.NoError(t, empty.ConvertCalendar(calendars.French))
	if got, want := empty.Calendar(), calendars.French; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	txt := gendate.NewText("in the reign of George III")
	require.NoError(t, txt.ConvertCalendar(calendars.Islamic))
	if got, want := txt.Text(), "in the reign of George III"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	require.ErrorIs(t, txt.ConvertCalendar(calendars.Calendar(20)), gendate.ErrConversionUndefined)
}

func TestConvertCalendarRoundTrip(t *testing.T) {
	for _, d := range []gendate.Date{
		gendate.New(calendars.Gregorian, 1850, 6, 15),
		gendate.New(calendars.Gregorian, 1900, 0, 0),
		gendate.New(calendars.Gregorian, 1999, 12, 0),
		mustSet(t, gendate.QualNone, gendate.ModSpan, calendars.Gregorian, "",
			gendate.Value{Year: 1801, Month: 2}, gendate.Value{Year: 1850, Month: 12, Day: 31}),
	} {
		for _, cal := range calendars.All() {
			c := d
			require.NoError(t, c.ConvertCalendar(cal))
			if got, want := c.SortValue(), d.SortValue(); got != want {
				t.Errorf("%v: %v: got %v, want %v", d, cal, got, want)
			}
			require.NoError(t, c.ConvertCalendar(calendars.Gregorian))
			if got, want := c.SortValue(), d.SortValue(); got != want {
				t.Errorf("%v: %v: got %v, want %v", d, cal, got, want)
			}
		}
	}
}

func TestOffset(t *testing.T) {
	y, m, d := gendate.New(calendars.Gregorian, 2000, 1, 1).Offset(31)
	if y != 2000 || m != 2 || d != 1 {
		t.Errorf("got %v/%v/%v", y, m, d)
	}
	y, m, d = gendate.New(calendars.Gregorian, 2000, 3, 1).Offset(-1)
	if y != 2000 || m != 2 || d != 29 {
		t.Errorf("got %v/%v/%v", y, m, d)
	}
	y, m, d = gendate.New(calendars.Hebrew, 5784, 1, 1).Offset(30)
	if y != 5784 || m != 2 || d != 1 {
		t.Errorf("got %v/%v/%v", y, m, d)
	}
	y, m, d = gendate.NewText("x").Offset(30)
	if y != 0 || m != 0 || d != 0 {
		t.Errorf("got %v/%v/%v", y, m, d)
	}
}

func TestCopyOffsetYMD(t *testing.T) {
	for _, tc := range []struct {
		start         gendate.Value
		years, months int
		days          int
		expected      gendate.Value
	}{
		{gendate.Value{Year: 2000, Month: 1, Day: 31}, 0, 1, 0, gendate.Value{Year: 2000, Month: 3, Day: 2}},
		{gendate.Value{Year: 2000, Month: 11, Day: 15}, 0, 3, 0, gendate.Value{Year: 2001, Month: 2, Day: 15}},
		{gendate.Value{Year: 2000, Month: 3, Day: 15}, 0, -3, 0, gendate.Value{Year: 1999, Month: 12, Day: 15}},
		{gendate.Value{Year: 2000, Month: 3, Day: 15}, 0, -15, 0, gendate.Value{Year: 1998, Month: 12, Day: 15}},
		{gendate.Value{Year: 2000, Month: 1, Day: 1}, 1, 0, -1, gendate.Value{Year: 2000, Month: 12, Day: 31}},
		{gendate.Value{Year: 2000, Month: 2, Day: 29}, 1, 0, 0, gendate.Value{Year: 2001, Month: 3, Day: 1}},
		{gendate.Value{Year: 1900}, 0, 14, 0, gendate.Value{Year: 1901}},
		{gendate.Value{Year: 1900, Month: 5}, 0, 0, 10, gendate.Value{Year: 1900, Month: 5}},
	} {
		d := gendate.New(calendars.Gregorian, tc.start.Year, tc.start.Month, tc.start.Day)
		n := d.CopyOffsetYMD(tc.years, tc.months, tc.days)
		if got, want := n.StartDate(), tc.expected; got != want {
			t.Errorf("%v + (%v, %v, %v): got %v, want %v", tc.start, tc.years, tc.months, tc.days, got, want)
		}
		if got, want := n.SortValue(), gendate.New(calendars.Gregorian, tc.expected.Year, tc.expected.Month, tc.expected.Day).SortValue(); got != want {
			t.Errorf("%v: got %v, want %v", tc.start, got, want)
		}
		// The original is unchanged.
		if got, want := d.StartDate(), tc.start; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	unknown := gendate.New(calendars.Gregorian, 0, 6, 11)
	if n := unknown.CopyOffsetYMD(1, 1, 1); !n.IsEqual(unknown) {
		t.Errorf("got %v, want %v", n, unknown)
	}

	j := gendate.New(calendars.Julian, 1750, 6, 1)
	n := j.CopyOffsetYMD(0, 0, 10)
	if got, want := n.Calendar(), calendars.Julian; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := n.StartDate(), (gendate.Value{Year: 1750, Month: 6, Day: 11}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSub(t *testing.T) {
	for _, tc := range []struct {
		a, b gendate.Date
		diff gendate.Diff
	}{
		{gendate.New(calendars.Gregorian, 2000, 3, 15), gendate.New(calendars.Gregorian, 1990, 1, 10), gendate.Diff{Years: 10, Months: 2, Days: 5}},
		{gendate.New(calendars.Gregorian, 2000, 1, 5), gendate.New(calendars.Gregorian, 1999, 3, 10), gendate.Diff{Years: 0, Months: 9, Days: 26}},
		{gendate.New(calendars.Gregorian, 2000, 0, 0), gendate.New(calendars.Gregorian, 1990, 0, 0), gendate.Diff{Years: 10}},
		{gendate.New(calendars.Gregorian, 2000, 5, 1), gendate.New(calendars.Gregorian, 2000, 5, 1), gendate.Diff{}},
		{gendate.New(calendars.Julian, 1899, 12, 20), gendate.New(calendars.Gregorian, 1890, 1, 1), gendate.Diff{Years: 10}},
		{gendate.New(calendars.Gregorian, 1990, 1, 10), gendate.New(calendars.Gregorian, 2000, 3, 15), gendate.Diff{Years: -10, Months: -2, Days: -5}},
		{gendate.New(calendars.Gregorian, 1999, 3, 10), gendate.New(calendars.Gregorian, 2000, 1, 5), gendate.Diff{Years: 0, Months: -9, Days: -26}},
	} {
		if got, want := tc.a.Sub(tc.b), tc.diff; got != want {
			t.Errorf("%v - %v: got %v, want %v", tc.a, tc.b, got, want)
		}
	}
}
