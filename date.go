// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gendate

import (
	"cmp"
	"fmt"
	"strings"

	"cloudeng.io/errors"
	"cloudeng.io/gendate/calendars"
)

// Value holds the fields of one half of a Date. A zero Day, Month or Year
// means that the field is unknown. DualYear is set for dates recorded with
// both the old and new style year, eg. 1720/1, in which case Year is the
// earlier of the two.
type Value struct {
	Day, Month, Year int
	DualYear         bool
}

// IsEmpty returns true if none of the day, month or year are known.
func (v Value) IsEmpty() bool {
	return v.Day == 0 && v.Month == 0 && v.Year == 0
}

func (v Value) String() string {
	s := fmt.Sprintf("%04d-%02d-%02d", v.Year, v.Month, v.Day)
	if v.DualYear {
		s += "/d"
	}
	return s
}

// Date represents a genealogical date. The zero value is an empty date
// in the Gregorian calendar.
type Date struct {
	calendar calendars.Calendar
	modifier Modifier
	quality  Quality
	start    Value
	stop     Value
	text     string
	sortval  int64
}

// New returns a simple date with the specified fields in calendar cal.
func New(cal calendars.Calendar, year, month, day int) Date {
	d := Date{calendar: cal}
	d.SetYearMonthDay(year, month, day)
	return d
}

// NewText returns a text only date.
func NewText(text string) Date {
	var d Date
	d.SetAsText(text)
	return d
}

func (d *Date) computeSortValue() {
	if d.modifier == ModTextOnly || d.start.IsEmpty() {
		d.sortval = 0
		return
	}
	d.sortval = calendars.ToSDN(d.calendar, max(d.start.Year, 1), d.start.Month, d.start.Day)
}

// SetYearMonthDay sets the start fields of the date. The values are stored
// as given without validation. A text only date becomes a simple date.
func (d *Date) SetYearMonthDay(year, month, day int) {
	if d.modifier == ModTextOnly {
		d.modifier = ModNone
	}
	d.start.Year, d.start.Month, d.start.Day = year, month, day
	d.computeSortValue()
}

// SetAsText makes the date a text only date. All fields are cleared.
func (d *Date) SetAsText(text string) {
	d.modifier = ModTextOnly
	d.text = text
	d.start, d.stop = Value{}, Value{}
	d.sortval = 0
}

// Set replaces the entire contents of the date. values must contain a
// single Value for simple dates, two (start and stop) for ranges and spans
// and at most one, which is ignored, for text only dates. The returned
// error wraps ErrInvalidDate and describes every problem found; the date is
// unchanged when an error is returned.
func (d *Date) Set(quality Quality, modifier Modifier, cal calendars.Calendar, values []Value, text string) error {
	errs := &errors.M{}
	if !quality.Valid() {
		errs.Append(fmt.Errorf("%w: quality %d", ErrInvalidDate, int(quality)))
	}
	if !cal.Valid() {
		errs.Append(fmt.Errorf("%w: calendar %d", ErrInvalidDate, int(cal)))
	}
	switch {
	case !modifier.Valid():
		errs.Append(fmt.Errorf("%w: modifier %d", ErrInvalidDate, int(modifier)))
	case modifier == ModTextOnly:
		if len(values) > 1 {
			errs.Append(fmt.Errorf("%w: %v: expected at most 1 value, got %d", ErrInvalidDate, modifier, len(values)))
		}
	case modifier.IsCompound():
		if len(values) != 2 {
			errs.Append(fmt.Errorf("%w: %v: expected 2 values, got %d", ErrInvalidDate, modifier, len(values)))
		}
	default:
		if len(values) != 1 {
			errs.Append(fmt.Errorf("%w: %v: expected 1 value, got %d", ErrInvalidDate, modifier, len(values)))
		}
	}
	for _, v := range values {
		if v.Day < 0 || v.Month < 0 || v.Year < 0 {
			errs.Append(fmt.Errorf("%w: negative field in %v", ErrInvalidDate, v))
		}
	}
	if err := errs.Err(); err != nil {
		return err
	}
	*d = Date{calendar: cal, modifier: modifier, quality: quality, text: text}
	if modifier != ModTextOnly {
		d.start = values[0]
		if modifier.IsCompound() {
			d.stop = values[1]
		}
	}
	d.computeSortValue()
	return nil
}

// SetQuality sets the quality of the date.
func (d *Date) SetQuality(q Quality) {
	d.quality = q
}

// SetModifier changes the modifier of the date. Changing to a non-compound
// modifier discards the stop value and changing to ModTextOnly discards
// all of the fields, keeping only the text.
func (d *Date) SetModifier(m Modifier) {
	if m == ModTextOnly {
		d.SetAsText(d.text)
		return
	}
	d.modifier = m
	if !m.IsCompound() {
		d.stop = Value{}
	}
	d.computeSortValue()
}

// SetStop sets the stop value of a range or span. It has no effect on
// other dates.
func (d *Date) SetStop(v Value) {
	if d.modifier.IsCompound() {
		d.stop = v
	}
}

// SetDualYear sets the dual year flag on the start value.
func (d *Date) SetDualYear(dual bool) {
	if d.modifier != ModTextOnly {
		d.start.DualYear = dual
	}
}

// SetText sets the text of the date. For a text only date this is its
// content, for other dates it is a comment.
func (d *Date) SetText(text string) {
	d.text = text
}

// SetCalendar relabels the fields of the date as being in calendar cal
// without converting them. Use ConvertCalendar to preserve the point in
// time instead.
func (d *Date) SetCalendar(cal calendars.Calendar) {
	d.calendar = cal
	d.computeSortValue()
}

// Calendar returns the calendar that the fields are expressed in.
func (d Date) Calendar() calendars.Calendar { return d.calendar }

// Modifier returns the modifier of the date.
func (d Date) Modifier() Modifier { return d.modifier }

// Quality returns the quality of the date.
func (d Date) Quality() Quality { return d.quality }

// Text returns the text of the date.
func (d Date) Text() string { return d.text }

// SortValue returns the SDN of the start of the date, with unknown fields
// treated as 1, or 0 for empty and text only dates.
func (d Date) SortValue() int64 { return d.sortval }

// StartDate returns the start value, or the empty Value for a text only
// date.
func (d Date) StartDate() Value {
	if d.modifier == ModTextOnly {
		return Value{}
	}
	return d.start
}

// StopDate returns the stop value of a range or span and the empty Value
// for all other dates.
func (d Date) StopDate() Value {
	if !d.modifier.IsCompound() {
		return Value{}
	}
	return d.stop
}

func (d Date) Year() int      { return d.StartDate().Year }
func (d Date) Month() int     { return d.StartDate().Month }
func (d Date) Day() int       { return d.StartDate().Day }
func (d Date) DualYear() bool { return d.StartDate().DualYear }

func (d Date) StopYear() int      { return d.StopDate().Year }
func (d Date) StopMonth() int     { return d.StopDate().Month }
func (d Date) StopDay() int       { return d.StopDate().Day }
func (d Date) StopDualYear() bool { return d.StopDate().DualYear }

// IsCompound returns true for ranges and spans.
func (d Date) IsCompound() bool {
	return d.modifier.IsCompound()
}

// IsEmpty returns true if the date carries no information: a text only
// date with empty text, or any other date with no known fields.
func (d Date) IsEmpty() bool {
	if d.modifier == ModTextOnly {
		return len(d.text) == 0
	}
	return d.start.IsEmpty() && d.stop.IsEmpty()
}

// IsRegular returns true for an exact, unqualified date whose day, month
// and year are all known.
func (d Date) IsRegular() bool {
	return d.modifier == ModNone && d.quality == QualNone &&
		d.start.Day != 0 && d.start.Month != 0 && d.start.Year != 0
}

// IsEqual compares every field of the two dates. Two text only dates are
// equal if their text is the same. It is stricter than Compare, which only
// considers the sort value.
func (d Date) IsEqual(o Date) bool {
	if d.modifier == ModTextOnly && o.modifier == ModTextOnly {
		return d.text == o.text
	}
	return d.calendar == o.calendar &&
		d.modifier == o.modifier &&
		d.quality == o.quality &&
		d.start == o.start &&
		d.stop == o.stop
}

// Compare returns -1, 0 or +1 according to the sort values of a and b.
func Compare(a, b Date) int {
	return cmp.Compare(a.sortval, b.sortval)
}

// Less returns true if d sorts before o.
func (d Date) Less(o Date) bool {
	return d.sortval < o.sortval
}

// String returns a representation of the date intended for debugging,
// use the display package to format dates for users.
func (d Date) String() string {
	var out strings.Builder
	if d.modifier == ModTextOnly {
		fmt.Fprintf(&out, "text(%q)", d.text)
		return out.String()
	}
	if d.quality != QualNone {
		out.WriteString(d.quality.String())
		out.WriteByte(' ')
	}
	if d.modifier != ModNone {
		out.WriteString(d.modifier.String())
		out.WriteByte(' ')
	}
	out.WriteString(d.start.String())
	if d.modifier.IsCompound() {
		out.WriteString(" - ")
		out.WriteString(d.stop.String())
	}
	if d.calendar != calendars.Gregorian {
		fmt.Fprintf(&out, " (%v)", d.calendar)
	}
	return out.String()
}
