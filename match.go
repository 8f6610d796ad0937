// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gendate

import (
	"cmp"
	"fmt"
	"strings"

	"cloudeng.io/gendate/calendars"
	"golang.org/x/text/cases"
)

// Ranges specifies, in years, how far the interval covered by a before,
// after or about date extends.
type Ranges struct {
	Before int `yaml:"before" cmd:"years covered by a before date"`
	After  int `yaml:"after" cmd:"years covered by an after date"`
	About  int `yaml:"about" cmd:"years either side of an about or estimated date"`
}

// DefaultRanges returns the default of 50 years for each of Before,
// After and About.
func DefaultRanges() Ranges {
	return Ranges{Before: 50, After: 50, About: 50}
}

// YMD is a Gregorian year, month and day that may lie outside of the
// normal ranges, eg. day 31 of a 30 day month. YMDs are ordered
// lexicographically.
type YMD struct {
	Year, Month, Day int
}

// Compare returns -1, 0 or +1 depending on whether y is before, the same
// as or after o.
func (y YMD) Compare(o YMD) int {
	if c := cmp.Compare(y.Year, o.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(y.Month, o.Month); c != 0 {
		return c
	}
	return cmp.Compare(y.Day, o.Day)
}

func (y YMD) String() string {
	return fmt.Sprintf("(%d, %d, %d)", y.Year, y.Month, y.Day)
}

// gregorianYMD converts y from calendar cal, leaving it unchanged if it has
// no Gregorian equivalent.
func gregorianYMD(cal calendars.Calendar, y YMD) YMD {
	gy, gm, gd := calendars.SDNToGregorian(calendars.ToSDN(cal, y.Year, y.Month, y.Day))
	if gy == 0 {
		return y
	}
	return YMD{Year: gy, Month: gm, Day: gd}
}

func (y YMD) offset(days int) YMD {
	sdn := calendars.GregorianToSDN(y.Year, y.Month, y.Day)
	if sdn == 0 {
		return y
	}
	ny, nm, nd := calendars.SDNToGregorian(sdn + int64(days))
	if ny == 0 {
		return y
	}
	return YMD{Year: ny, Month: nm, Day: nd}
}

// Comparison is an operator used by Matcher.Match.
type Comparison int

const (
	Overlaps     Comparison = iota // = and ==
	StartsBefore                   // <
	WhollyBefore                   // <<
	EndsAfter                      // >
	WhollyAfter                    // >>
	numComparisons
)

var comparisonOps = [numComparisons]string{"=", "<", "<<", ">", ">>"}

func (c Comparison) String() string {
	if c < 0 || c >= numComparisons {
		return fmt.Sprintf("Comparison(%d)", int(c))
	}
	return comparisonOps[c]
}

// ParseComparison parses one of =, ==, <, <<, > or >>.
func ParseComparison(op string) (Comparison, error) {
	if op == "==" {
		return Overlaps, nil
	}
	for i, o := range comparisonOps {
		if op == o {
			return Comparison(i), nil
		}
	}
	return Overlaps, fmt.Errorf("unknown comparison operator: %q", op)
}

// Matcher performs fuzzy comparisons between dates by expanding each into
// the Gregorian interval it may refer to.
type Matcher struct {
	Ranges Ranges
}

// NewMatcher returns a Matcher that uses the specified ranges.
func NewMatcher(r Ranges) Matcher {
	return Matcher{Ranges: r}
}

// StartStopRange returns the earliest and latest Gregorian days that d
// may refer to. Unknown months and days extend the interval to the start
// and end of the year or month; a compound date whose stop year is unknown
// uses its start year. Dates in other calendars are expanded in their own
// calendar and each end converted to Gregorian. Before, after and about (or
// estimated) dates are widened by the number of years specified in the
// Matcher's Ranges.
func (m Matcher) StartStopRange(d Date) (minYMD, maxYMD YMD) {
	start, stop := d.StartDate(), d.StopDate()
	if start.DualYear {
		start.Year++
	}
	if stop.DualYear {
		stop.Year++
	}
	if stop.IsEmpty() {
		stop = start
	}
	if stop.Year == 0 {
		stop.Year = start.Year
	}
	minYMD = YMD{Year: start.Year, Month: max(start.Month, 1), Day: max(start.Day, 1)}
	maxYMD = YMD{Year: stop.Year, Month: stop.Month, Day: stop.Day}
	if cal := d.calendar; cal != calendars.Gregorian && start.Year != 0 {
		if maxYMD.Month == 0 {
			maxYMD.Month = calendars.MonthsInYear(cal, maxYMD.Year)
		}
		if maxYMD.Day == 0 {
			maxYMD.Day = max(calendars.DaysInMonth(cal, maxYMD.Year, maxYMD.Month), 1)
		}
		minYMD, maxYMD = gregorianYMD(cal, minYMD), gregorianYMD(cal, maxYMD)
	}
	if maxYMD.Month == 0 {
		maxYMD.Month = 12
	}
	if maxYMD.Day == 0 {
		maxYMD.Day = 31
	}

	switch {
	case d.modifier == ModBefore:
		maxYMD = minYMD.offset(-1)
		minYMD = YMD{Year: maxYMD.Year - m.Ranges.Before, Month: maxYMD.Month, Day: maxYMD.Day}
	case d.modifier == ModAfter:
		minYMD = maxYMD.offset(1)
		maxYMD = YMD{Year: minYMD.Year + m.Ranges.After, Month: minYMD.Month, Day: minYMD.Day}
	case d.modifier == ModAbout || d.quality == QualEstimated:
		minYMD.Year -= m.Ranges.About
		maxYMD.Year += m.Ranges.About
	}
	return
}

// Match compares a and b using the specified operator:
//
//	=   the intervals of a and b overlap
//	<   a starts before b ends
//	<<  a ends before b starts
//	>   a ends after b starts
//	>>  a starts after b ends
//
// Text only dates are compared by their text: = is true if the text of
// either contains the other, ignoring case, and every other operator is
// false. A text only date never matches a structured date and an empty
// date, including a text only date with no text, never matches anything.
func (m Matcher) Match(a, b Date, op Comparison) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	aText, bText := a.modifier == ModTextOnly, b.modifier == ModTextOnly
	if aText || bText {
		if op != Overlaps || !aText || !bText {
			return false
		}
		fold := cases.Fold()
		at, bt := fold.String(a.text), fold.String(b.text)
		return strings.Contains(at, bt) || strings.Contains(bt, at)
	}
	aMin, aMax := m.StartStopRange(a)
	bMin, bMax := m.StartStopRange(b)
	switch op {
	case Overlaps:
		within := func(v, lo, hi YMD) bool {
			return lo.Compare(v) <= 0 && v.Compare(hi) <= 0
		}
		return within(bMin, aMin, aMax) || within(bMax, aMin, aMax) ||
			within(aMin, bMin, bMax) || within(aMax, bMin, bMax)
	case StartsBefore:
		return aMin.Compare(bMax) < 0
	case WhollyBefore:
		return aMax.Compare(bMin) < 0
	case EndsAfter:
		return aMax.Compare(bMin) > 0
	case WhollyAfter:
		return aMin.Compare(bMax) > 0
	}
	return false
}
