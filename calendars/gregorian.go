// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

const (
	grgSDNOffset       = 32045
	grgDaysPer5Months  = 153
	grgDaysPer4Years   = 1461
	grgDaysPer400Years = 146097

	jlnSDNOffset = 32083
)

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeap returns true if the given year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// GregorianDaysInMonth returns the number of days in the given month of
// the given Gregorian year. It returns 0 for a month outside of 1-12.
func GregorianDaysInMonth(year, month int) int {
	return monthLength(month, IsLeap(year))
}

// JulianDaysInMonth is like GregorianDaysInMonth for the Julian calendar,
// where every fourth year is a leap year.
func JulianDaysInMonth(year, month int) int {
	return monthLength(month, year%4 == 0)
}

func monthLength(month int, leap bool) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && leap {
		return 29
	}
	return daysPerMonth[month-1]
}

// marchBased shifts the start of the year to March so that the leap day
// is the last day of the year.
func marchBased(year, month int) (int64, int64) {
	y, m := int64(year)+4800, int64(month)
	if m > 2 {
		return y, m - 3
	}
	return y - 1, m + 9
}

// GregorianToSDN returns the SDN for the specified Gregorian date.
func GregorianToSDN(year, month, day int) int64 {
	if year < 1 {
		return 0
	}
	y, m := marchBased(year, month)
	return (y/100)*grgDaysPer400Years/4 +
		(y%100)*grgDaysPer4Years/4 +
		(m*grgDaysPer5Months+2)/5 +
		int64(day) - grgSDNOffset
}

// SDNToGregorian returns the Gregorian date for the specified SDN.
func SDNToGregorian(sdn int64) (year, month, day int) {
	if sdn <= 0 {
		return 0, 0, 0
	}
	temp := (sdn+grgSDNOffset)*4 - 1
	century := temp / grgDaysPer400Years
	temp = ((temp%grgDaysPer400Years)/4)*4 + 3
	y := century*100 + temp/grgDaysPer4Years
	dayOfYear := (temp%grgDaysPer4Years)/4 + 1
	return fromMarchBased(y, dayOfYear)
}

// JulianToSDN returns the SDN for the specified Julian date.
func JulianToSDN(year, month, day int) int64 {
	if year < 1 {
		return 0
	}
	y, m := marchBased(year, month)
	return y*grgDaysPer4Years/4 +
		(m*grgDaysPer5Months+2)/5 +
		int64(day) - jlnSDNOffset
}

// SDNToJulian returns the Julian date for the specified SDN.
func SDNToJulian(sdn int64) (year, month, day int) {
	if sdn <= 0 {
		return 0, 0, 0
	}
	temp := (sdn+jlnSDNOffset)*4 - 1
	y := temp / grgDaysPer4Years
	dayOfYear := (temp%grgDaysPer4Years)/4 + 1
	return fromMarchBased(y, dayOfYear)
}

func fromMarchBased(y, dayOfYear int64) (year, month, day int) {
	temp := dayOfYear*5 - 3
	m := temp / grgDaysPer5Months
	d := (temp%grgDaysPer5Months)/5 + 1
	if m < 10 {
		m += 3
	} else {
		y++
		m -= 9
	}
	y -= 4800
	if y <= 0 {
		return 0, 0, 0
	}
	return int(y), int(m), int(d)
}
