// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package display

import (
	"fmt"
	"strconv"
)

// Style selects the format used to display the fields of a date.
type Style int

const (
	LongMonthDayYear  Style = iota // Month D, YYYY
	UpperMonthDayYear              // MON D, YYYY
	ShortMonthDayYear              // Mon D, YYYY
	NumericMDYSlash                // MM/DD/YYYY
	NumericMDYDash                 // MM-DD-YYYY
	NumericMDYDot                  // MM.DD.YYYY
	NumericDMYSlash                // DD/MM/YYYY
	NumericDMYDash                 // DD-MM-YYYY
	NumericDMYDot                  // DD.MM.YYYY
	NumericYMDSlash                // YYYY/MM/DD
	NumericYMDDash                 // YYYY-MM-DD
	NumericYMDDot                  // YYYY.MM.DD
	DayDotMonthYear                // D. Month YYYY
	numStyles
)

var styleNames = [numStyles]string{
	"Month D, YYYY",
	"MON D, YYYY",
	"Mon D, YYYY",
	"MM/DD/YYYY",
	"MM-DD-YYYY",
	"MM.DD.YYYY",
	"DD/MM/YYYY",
	"DD-MM-YYYY",
	"DD.MM.YYYY",
	"YYYY/MM/DD",
	"YYYY-MM-DD",
	"YYYY.MM.DD",
	"D. Month YYYY",
}

// Styles returns all of the supported styles.
func Styles() []Style {
	s := make([]Style, numStyles)
	for i := range s {
		s[i] = Style(i)
	}
	return s
}

// Valid returns true if s is a supported style.
func (s Style) Valid() bool {
	return s >= 0 && s < numStyles
}

// String returns the pattern that describes the style, eg. "MM/DD/YYYY".
func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// ParseStyle accepts either the pattern returned by String, which is
// case sensitive since "MON D, YYYY" and "Mon D, YYYY" differ only in
// case, or the style's number.
func ParseStyle(s string) (Style, error) {
	for i, n := range styleNames {
		if n == s {
			return Style(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && Style(n).Valid() {
		return Style(n), nil
	}
	return LongMonthDayYear, fmt.Errorf("unrecognised display style: %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid display style: %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(text []byte) error {
	v, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

type numericLayout struct {
	sep   string
	order [3]byte
}

func (s Style) numeric() (numericLayout, bool) {
	var l numericLayout
	switch s {
	case NumericMDYSlash, NumericMDYDash, NumericMDYDot:
		l.order = [3]byte{'m', 'd', 'y'}
	case NumericDMYSlash, NumericDMYDash, NumericDMYDot:
		l.order = [3]byte{'d', 'm', 'y'}
	case NumericYMDSlash, NumericYMDDash, NumericYMDDot:
		l.order = [3]byte{'y', 'm', 'd'}
	default:
		return l, false
	}
	l.sep = [...]string{"/", "-", "."}[(s-NumericMDYSlash)%3]
	return l, true
}
