// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

const (
	frSDNOffset     = 2375474
	frDaysPer4Years = 1461
	frDaysPerMonth  = 30
)

// FrenchToSDN returns the SDN for the specified French Republican date.
// Year 1 began on 22 September 1792 (Gregorian). Months 1-12 have 30 days
// and month 13 holds the 5 or 6 complementary days.
func FrenchToSDN(year, month, day int) int64 {
	if year < 1 {
		return 0
	}
	return int64(year)*frDaysPer4Years/4 +
		int64(month-1)*frDaysPerMonth +
		int64(day) + frSDNOffset
}

// SDNToFrench returns the French Republican date for the specified SDN.
func SDNToFrench(sdn int64) (year, month, day int) {
	if sdn <= frSDNOffset+frDaysPer4Years/4 {
		return 0, 0, 0
	}
	temp := (sdn-frSDNOffset)*4 - 1
	y := temp / frDaysPer4Years
	dayOfYear := (temp % frDaysPer4Years) / 4
	return int(y), int(dayOfYear/frDaysPerMonth) + 1, int(dayOfYear%frDaysPerMonth) + 1
}
