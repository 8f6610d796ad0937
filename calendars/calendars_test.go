// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars_test

import (
	"fmt"
	"testing"

	"cloudeng.io/gendate/calendars"
)

func TestKnownDates(t *testing.T) {
	for _, tc := range []struct {
		cal          calendars.Calendar
		y, m, d      int
		sdn          int64
		gy, gm, gday int
	}{
		{calendars.Gregorian, 2000, 1, 1, 2451545, 2000, 1, 1},
		{calendars.Gregorian, 1582, 10, 15, 2299161, 1582, 10, 15},
		{calendars.Julian, 1582, 10, 5, 2299161, 1582, 10, 15},
		{calendars.Julian, 1582, 10, 4, 2299160, 1582, 10, 14},
		{calendars.Julian, 1900, 2, 29, 2415092, 1900, 3, 13},
		{calendars.Hebrew, 5784, 1, 1, 2460204, 2023, 9, 16},
		{calendars.French, 1, 1, 1, 2375840, 1792, 9, 22},
		{calendars.Persian, 1403, 1, 1, 2460390, 2024, 3, 20},
		{calendars.Persian, 1, 1, 1, 1948321, 622, 3, 22},
		{calendars.Islamic, 1, 1, 1, 1948440, 622, 7, 19},
	} {
		if got, want := calendars.ToSDN(tc.cal, tc.y, tc.m, tc.d), tc.sdn; got != want {
			t.Errorf("%v %v/%v/%v: got %v, want %v", tc.cal, tc.y, tc.m, tc.d, got, want)
		}
		y, m, d := calendars.FromSDN(tc.cal, tc.sdn)
		if y != tc.y || m != tc.m || d != tc.d {
			t.Errorf("%v %v: got %v/%v/%v, want %v/%v/%v", tc.cal, tc.sdn, y, m, d, tc.y, tc.m, tc.d)
		}
		y, m, d = calendars.FromSDN(calendars.Gregorian, tc.sdn)
		if y != tc.gy || m != tc.gm || d != tc.gday {
			t.Errorf("%v %v: got %v/%v/%v, want %v/%v/%v", tc.cal, tc.sdn, y, m, d, tc.gy, tc.gm, tc.gday)
		}
	}
}

func sweep(t *testing.T, cal calendars.Calendar, from, to int64) {
	py, pm, pd := calendars.FromSDN(cal, from-1)
	for sdn := from; sdn < to; sdn++ {
		y, m, d := calendars.FromSDN(cal, sdn)
		if y == 0 {
			t.Fatalf("%v: %v: unexpected zero date", cal, sdn)
		}
		if got, want := calendars.ToSDN(cal, y, m, d), sdn; got != want {
			t.Fatalf("%v: %v/%v/%v: got %v, want %v", cal, y, m, d, got, want)
		}
		if d < 1 || d > calendars.DaysInMonth(cal, y, m) {
			t.Fatalf("%v: %v/%v/%v: day out of range", cal, y, m, d)
		}
		if py != 0 {
			next := d == pd+1 && m == pm && y == py
			newMonth := d == 1 && m > pm && y == py
			newYear := d == 1 && m == 1 && y == py+1
			if !next && !newMonth && !newYear {
				t.Fatalf("%v: %v/%v/%v does not follow %v/%v/%v", cal, y, m, d, py, pm, pd)
			}
		}
		py, pm, pd = y, m, d
	}
}

func TestRoundTrip(t *testing.T) {
	for _, cal := range calendars.All() {
		first := calendars.ToSDN(cal, 1, 1, 1)
		sweep(t, cal, first, first+5000)
		// 1750, or the calendar's epoch if later, to 2100 Gregorian.
		sweep(t, cal, max(first, 2360235), 2488070)
	}
}

func TestOutOfDomain(t *testing.T) {
	for _, cal := range calendars.All() {
		if got, want := calendars.ToSDN(cal, 0, 1, 1), int64(0); got != want {
			t.Errorf("%v: got %v, want %v", cal, got, want)
		}
		if got, want := calendars.ToSDN(cal, -10, 1, 1), int64(0); got != want {
			t.Errorf("%v: got %v, want %v", cal, got, want)
		}
		first := calendars.ToSDN(cal, 1, 1, 1)
		if y, m, d := calendars.FromSDN(cal, first-1); y != 0 || m != 0 || d != 0 {
			t.Errorf("%v: %v: got %v/%v/%v, want 0/0/0", cal, first-1, y, m, d)
		}
		if y, m, d := calendars.FromSDN(cal, first); y != 1 || m != 1 || d != 1 {
			t.Errorf("%v: %v: got %v/%v/%v, want 1/1/1", cal, first, y, m, d)
		}
	}
	if got, want := calendars.ToSDN(calendars.Calendar(99), 2000, 1, 1), int64(0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if y, _, _ := calendars.FromSDN(calendars.Calendar(99), 2451545); y != 0 {
		t.Errorf("got %v, want 0", y)
	}
}

func TestPartialDates(t *testing.T) {
	// Unknown month and day are projected onto the first of the year.
	if got, want := calendars.ToSDN(calendars.Gregorian, 2000, 0, 0), int64(2451545); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendars.ToSDN(calendars.Gregorian, 2000, 3, 0), calendars.ToSDN(calendars.Gregorian, 2000, 3, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDaysInMonth(t *testing.T) {
	for _, tc := range []struct {
		cal         calendars.Calendar
		year, month int
		days        int
	}{
		{calendars.Gregorian, 1900, 2, 28},
		{calendars.Gregorian, 2000, 2, 29},
		{calendars.Gregorian, 2023, 4, 30},
		{calendars.Gregorian, 2023, 12, 31},
		{calendars.Gregorian, 2023, 13, 0},
		{calendars.Julian, 1900, 2, 29},
		{calendars.Julian, 1700, 2, 29},
		{calendars.Julian, 1701, 2, 28},
		{calendars.Julian, 1701, 9, 30},
		{calendars.Hebrew, 5784, 6, 30},
		{calendars.Hebrew, 5784, 7, 29},
		{calendars.Hebrew, 5783, 6, 0},
		{calendars.Hebrew, 5783, 13, 29},
		{calendars.French, 1, 13, 5},
		{calendars.French, 3, 13, 6},
		{calendars.French, 3, 1, 30},
		{calendars.Persian, 1403, 1, 31},
		{calendars.Persian, 1403, 7, 30},
		{calendars.Islamic, 1, 1, 30},
		{calendars.Islamic, 1, 2, 29},
		{calendars.Islamic, 1, 12, 29},
		{calendars.Islamic, 2, 12, 30},
	} {
		if got, want := calendars.DaysInMonth(tc.cal, tc.year, tc.month), tc.days; got != want {
			t.Errorf("%v %v/%v: got %v, want %v", tc.cal, tc.year, tc.month, got, want)
		}
		if tc.days > calendars.MaxDaysInMonth(tc.cal, tc.month) {
			t.Errorf("%v %v/%v: exceeds max days", tc.cal, tc.year, tc.month)
		}
	}
}

func TestMonthLengths(t *testing.T) {
	// Gregorian and Julian month lengths agree with the SDN arithmetic.
	for year := 1580; year <= 2030; year++ {
		for month := 1; month <= 12; month++ {
			next, ny := month+1, year
			if next > 12 {
				next, ny = 1, year+1
			}
			if got, want := calendars.GregorianDaysInMonth(year, month),
				int(calendars.GregorianToSDN(ny, next, 1)-calendars.GregorianToSDN(year, month, 1)); got != want {
				t.Errorf("gregorian %v/%v: got %v, want %v", year, month, got, want)
			}
			if got, want := calendars.JulianDaysInMonth(year, month),
				int(calendars.JulianToSDN(ny, next, 1)-calendars.JulianToSDN(year, month, 1)); got != want {
				t.Errorf("julian %v/%v: got %v, want %v", year, month, got, want)
			}
		}
	}
	for _, month := range []int{0, 13} {
		if got, want := calendars.GregorianDaysInMonth(2000, month), 0; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := calendars.JulianDaysInMonth(2000, month), 0; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestLeapYears(t *testing.T) {
	for _, tc := range []struct {
		cal  calendars.Calendar
		year int
		leap bool
	}{
		{calendars.Gregorian, 1900, false},
		{calendars.Gregorian, 2000, true},
		{calendars.Julian, 1900, true},
		{calendars.Hebrew, 5784, true},
		{calendars.Hebrew, 5783, false},
		{calendars.French, 3, true},
		{calendars.French, 4, false},
		{calendars.Islamic, 2, true},
		{calendars.Islamic, 1, false},
	} {
		if got, want := calendars.IsLeapYear(tc.cal, tc.year), tc.leap; got != want {
			t.Errorf("%v %v: got %v, want %v", tc.cal, tc.year, got, want)
		}
	}
}

func TestCalendarNames(t *testing.T) {
	for _, cal := range calendars.All() {
		txt, err := cal.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var c calendars.Calendar
		if err := c.UnmarshalText(txt); err != nil {
			t.Errorf("%s: %v", txt, err)
		}
		if got, want := c, cal; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := len(calendars.MonthNames(cal)), calendars.MonthsInYear(cal, 1); got != want {
			t.Errorf("%v: got %v, want %v", cal, got, want)
		}
	}
	if _, err := calendars.ParseCalendar("mayan"); err == nil {
		t.Errorf("expected an error")
	}
	if got, want := calendars.MonthName(calendars.Hebrew, 13), "Elul"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendars.MonthName(calendars.Gregorian, 13), ""; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func ExampleFromSDN() {
	sdn := calendars.ToSDN(calendars.Gregorian, 2023, 9, 16)
	fmt.Println(calendars.FromSDN(calendars.Hebrew, sdn))
	// Output:
	// 5784 1 1
}
