// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gendate

import (
	"fmt"

	"cloudeng.io/gendate/calendars"
)

// ConvertCalendar converts the date to the target calendar preserving the
// point in time it refers to. Each half of a compound date is converted
// through its own SDN, so that unknown month and day fields of a partially
// known date are projected onto the first of the month or year. Empty and
// text only dates merely change their calendar. ErrConversionUndefined is
// returned, and the date left unchanged, if the date cannot be expressed in
// the target calendar or if a known month or day has no known year.
func (d *Date) ConvertCalendar(target calendars.Calendar) error {
	if !target.Valid() {
		return fmt.Errorf("%w: %v", ErrConversionUndefined, target)
	}
	if target == d.calendar {
		return nil
	}
	if d.modifier == ModTextOnly || d.IsEmpty() {
		d.calendar = target
		return nil
	}
	start, ok := convertValue(d.calendar, target, d.start)
	if !ok {
		return fmt.Errorf("%w: %v to %v", ErrConversionUndefined, d, target)
	}
	stop := d.stop
	if d.modifier.IsCompound() {
		if stop, ok = convertValue(d.calendar, target, d.stop); !ok {
			return fmt.Errorf("%w: %v to %v", ErrConversionUndefined, d, target)
		}
	}
	d.calendar, d.start, d.stop = target, start, stop
	d.computeSortValue()
	return nil
}

func convertValue(from, to calendars.Calendar, v Value) (Value, bool) {
	if v.IsEmpty() {
		return v, true
	}
	// Month and day alone do not identify a day in another calendar.
	if v.Year == 0 {
		return v, false
	}
	sdn := calendars.ToSDN(from, v.Year, v.Month, v.Day)
	y, m, d := calendars.FromSDN(to, sdn)
	if y == 0 && m == 0 && d == 0 {
		return v, false
	}
	return Value{Year: y, Month: m, Day: d, DualYear: v.DualYear}, true
}

// Offset returns the fields, in the date's own calendar, of the day that
// is days after (or before if negative) the start of the date.
func (d Date) Offset(days int) (year, month, day int) {
	if d.sortval == 0 {
		return 0, 0, 0
	}
	return calendars.FromSDN(d.calendar, d.sortval+int64(days))
}

// CopyOffsetYMD returns a copy of the date with the specified number of
// years, months and days added to it. The arithmetic is performed in the
// Gregorian calendar: years and months are added to their fields with
// months carried into years, then the day offset is added by way of the
// SDN. The result is converted back to the date's calendar. Dates with an
// unknown year, and text only dates, are returned unchanged.
func (d Date) CopyOffsetYMD(years, months, days int) Date {
	if d.modifier == ModTextOnly || d.start.Year == 0 {
		return d
	}
	orig := d.calendar
	if err := d.ConvertCalendar(calendars.Gregorian); err != nil {
		return d
	}
	d.start = offsetValue(d.start, years, months, days)
	if d.modifier.IsCompound() && d.stop.Year != 0 {
		d.stop = offsetValue(d.stop, years, months, days)
	}
	d.computeSortValue()
	// The result stays Gregorian if it precedes the original calendar's epoch.
	_ = d.ConvertCalendar(orig)
	return d
}

func offsetValue(v Value, years, months, days int) Value {
	v.Year += years
	if months != 0 {
		if v.Month == 0 {
			// An unknown month remains unknown; only whole years apply.
			v.Year += int(floorDiv(int64(months), 12))
		} else {
			m0 := int64(v.Month - 1 + months)
			v.Year += int(floorDiv(m0, 12))
			v.Month = int(m0-floorDiv(m0, 12)*12) + 1
		}
	}
	if v.Month == 0 || v.Day == 0 || v.Year < 1 {
		return v
	}
	if days != 0 || v.Day > 28 {
		sdn := calendars.GregorianToSDN(v.Year, v.Month, v.Day) + int64(days)
		y, m, d := calendars.SDNToGregorian(sdn)
		if y != 0 {
			v.Year, v.Month, v.Day = y, m, d
		}
	}
	return v
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Diff is the approximate difference between two dates.
type Diff struct {
	Years, Months, Days int
}

func (d Diff) String() string {
	return fmt.Sprintf("(%d, %d, %d)", d.Years, d.Months, d.Days)
}

// Sub returns the difference d - o as years, months and days. Unknown
// fields are treated as 1 and the subtraction borrows 12 months from a
// year and 31 days from a month, regardless of calendar, so the result
// is an approximation. Both dates are compared in the Gregorian calendar.
// If d is before o every component of the result is zero or negative.
func (d Date) Sub(o Date) Diff {
	a, b := d.gregorianStart(), o.gregorianStart()
	ya := YMD{Year: orOne(a.Year), Month: orOne(a.Month), Day: orOne(a.Day)}
	yb := YMD{Year: orOne(b.Year), Month: orOne(b.Month), Day: orOne(b.Day)}
	if ya.Compare(yb) < 0 {
		r := sub(yb, ya)
		return Diff{Years: -r.Years, Months: -r.Months, Days: -r.Days}
	}
	return sub(ya, yb)
}

// sub returns a - b where a is not before b.
func sub(a, b YMD) Diff {
	y1, m1, d1 := a.Year, a.Month, a.Day
	y2, m2, d2 := b.Year, b.Month, b.Day
	if d2 > d1 {
		if m2 > m1 {
			y1--
			m1 += 12
		}
		m1--
		d1 += 31
	}
	if m2 > m1 {
		y1--
		m1 += 12
	}
	diff := Diff{Years: y1 - y2, Months: m1 - m2, Days: d1 - d2}
	if diff.Days > 31 {
		diff.Months += diff.Days / 31
		diff.Days %= 31
	}
	if diff.Months > 12 {
		diff.Years += diff.Months / 12
		diff.Months %= 12
	}
	return diff
}

func (d Date) gregorianStart() Value {
	// d is left in its own calendar if it has no Gregorian equivalent.
	_ = d.ConvertCalendar(calendars.Gregorian)
	return d.StartDate()
}

func orOne(v int) int {
	if v == 0 {
		return 1
	}
	return v
}
