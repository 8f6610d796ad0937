// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package gendate provides a date type suited to genealogical records.
// A Date may be exact, partially known (an unknown day, month or year is
// stored as 0), qualified by a modifier (before, after, about), a range
// ("between 1880 and 1885"), a span ("from 1880 to 1885") or free text that
// could not be interpreted. Each Date records the calendar its fields are
// expressed in and caches a sort value, the serial day number (SDN) of its
// start, that provides a total order across calendars.
//
// Dates are values; copying a Date yields an independent Date. The zero
// value is an empty Gregorian date.
//
// Parsing and display are provided by the parser and display packages and
// the calendar arithmetic by the calendars package.
package gendate
