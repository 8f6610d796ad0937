// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gendate

import "cloudeng.io/errors"

var (
	// ErrInvalidDate is returned by Set and Unserialize when the quality,
	// modifier, calendar and values supplied are inconsistent.
	ErrInvalidDate = errors.New("invalid date")

	// ErrConversionUndefined is returned by ConvertCalendar when a date
	// has no representation in the requested calendar, for example a
	// date that precedes the calendar's epoch.
	ErrConversionUndefined = errors.New("calendar conversion undefined")
)
