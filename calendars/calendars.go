// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendars provides conversions between dates in the Gregorian,
// Julian, Hebrew, French Republican, Persian and Islamic calendars and a
// serial day number (SDN). The SDN is a count of days from a fixed epoch and
// provides a common axis for comparing dates expressed in different
// calendars.
//
// All conversions are pure functions. A year that precedes a calendar's
// epoch has no mapping: ToSDN returns 0 and FromSDN returns (0, 0, 0) for
// such values.
package calendars

import (
	"fmt"
	"strings"
)

// Calendar identifies a calendar system. The integer values are persisted
// and must not change.
type Calendar int

const (
	Gregorian Calendar = iota
	Julian
	Hebrew
	French
	Persian
	Islamic
	numCalendars
)

var calendarNames = [numCalendars]string{
	Gregorian: "Gregorian",
	Julian:    "Julian",
	Hebrew:    "Hebrew",
	French:    "French Republican",
	Persian:   "Persian",
	Islamic:   "Islamic",
}

// All returns all of the supported calendars in the order of their
// integer values.
func All() []Calendar {
	return []Calendar{Gregorian, Julian, Hebrew, French, Persian, Islamic}
}

// Valid returns true if c is one of the supported calendars.
func (c Calendar) Valid() bool {
	return c >= Gregorian && c < numCalendars
}

func (c Calendar) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Calendar(%d)", int(c))
	}
	return calendarNames[c]
}

// ParseCalendar parses a calendar name in any case. The French Republican
// calendar may be referred to as either "french" or "french republican".
func ParseCalendar(name string) (Calendar, error) {
	lc := strings.ToLower(strings.TrimSpace(name))
	for i, n := range calendarNames {
		if lc == strings.ToLower(n) {
			return Calendar(i), nil
		}
	}
	if lc == "french" {
		return French, nil
	}
	return Gregorian, fmt.Errorf("unknown calendar: %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (c Calendar) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid calendar: %d", int(c))
	}
	return []byte(strings.ToLower(strings.Fields(c.String())[0])), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Calendar) UnmarshalText(text []byte) error {
	cal, err := ParseCalendar(string(text))
	if err != nil {
		return err
	}
	*c = cal
	return nil
}

// ToSDN returns the serial day number for the specified date in calendar c.
// Month and day are clamped to at least 1 so that partially known dates are
// projected onto the first day of the month or year. A year less than 1,
// or an invalid calendar, yields 0.
func ToSDN(c Calendar, year, month, day int) int64 {
	if year < 1 {
		return 0
	}
	month, day = max(month, 1), max(day, 1)
	switch c {
	case Gregorian:
		return GregorianToSDN(year, month, day)
	case Julian:
		return JulianToSDN(year, month, day)
	case Hebrew:
		return HebrewToSDN(year, month, day)
	case French:
		return FrenchToSDN(year, month, day)
	case Persian:
		return PersianToSDN(year, month, day)
	case Islamic:
		return IslamicToSDN(year, month, day)
	}
	return 0
}

// FromSDN returns the year, month and day in calendar c for the specified
// serial day number. It returns (0, 0, 0) if sdn precedes the calendar's
// epoch or c is not a valid calendar.
func FromSDN(c Calendar, sdn int64) (year, month, day int) {
	switch c {
	case Gregorian:
		return SDNToGregorian(sdn)
	case Julian:
		return SDNToJulian(sdn)
	case Hebrew:
		return SDNToHebrew(sdn)
	case French:
		return SDNToFrench(sdn)
	case Persian:
		return SDNToPersian(sdn)
	case Islamic:
		return SDNToIslamic(sdn)
	}
	return 0, 0, 0
}

// MonthsInYear returns the highest month number used in the specified year.
// The Hebrew calendar always numbers Elul as 13; in a non-leap year month 6
// (Adar I) is skipped and has no days. The French Republican calendar uses
// month 13 for the complementary days.
func MonthsInYear(c Calendar, year int) int {
	switch c {
	case Hebrew, French:
		return 13
	}
	return 12
}

// DaysInMonth returns the number of days in the specified month, or 0
// if the month does not exist in that year, as is the case for the
// Hebrew month of Adar I in a non-leap year.
func DaysInMonth(c Calendar, year, month int) int {
	if year < 1 || month < 1 || month > MonthsInYear(c, year) {
		return 0
	}
	switch c {
	case Gregorian:
		return GregorianDaysInMonth(year, month)
	case Julian:
		return JulianDaysInMonth(year, month)
	}
	start := ToSDN(c, year, month, 1)
	var next int64
	if month == MonthsInYear(c, year) {
		next = ToSDN(c, year+1, 1, 1)
	} else {
		next = ToSDN(c, year, month+1, 1)
	}
	return int(next - start)
}

var maxDays = [numCalendars][]int{
	Gregorian: {31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	Julian:    {31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	Hebrew:    {30, 30, 30, 29, 30, 30, 29, 30, 29, 30, 29, 30, 29},
	French:    {30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 6},
	Persian:   {31, 31, 31, 31, 31, 31, 30, 30, 30, 30, 30, 30},
	Islamic:   {30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 30, 30},
}

// MaxDaysInMonth returns the largest number of days that the specified month
// can have in any year. It is used to validate dates whose year is unknown.
func MaxDaysInMonth(c Calendar, month int) int {
	if !c.Valid() || month < 1 || month > len(maxDays[c]) {
		return 0
	}
	return maxDays[c][month-1]
}

// IsLeapYear returns true if year is a leap year in calendar c. For the
// Hebrew calendar this is a year with 13 months.
func IsLeapYear(c Calendar, year int) bool {
	switch c {
	case Gregorian:
		return IsLeap(year)
	case Julian:
		return year%4 == 0
	case Hebrew:
		return year > 0 && hebrewMonthsPerYear[(year-1)%19] == 13
	case French:
		return DaysInMonth(French, year, 13) == 6
	case Persian:
		return DaysInMonth(Persian, year, 12) == 30
	case Islamic:
		return (14+11*year)%30 < 11
	}
	return false
}
