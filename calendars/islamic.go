// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

// ismEpoch is the SDN of 1 Muharram 1 AH (16 July 622, Julian).
const ismEpoch = 1948440

// IslamicToSDN returns the SDN for the specified date in the arithmetic
// (tabular) Islamic calendar. Odd months have 30 days and even months 29,
// with the twelfth month having 30 days in leap years.
func IslamicToSDN(year, month, day int) int64 {
	if year < 1 {
		return 0
	}
	y, m := int64(year), int64(month)
	monthDays := ceilDiv(59*(m-1), 2)
	return int64(day) + monthDays + (y-1)*354 + floorDiv(3+11*y, 30) + ismEpoch - 1
}

// SDNToIslamic returns the Islamic date for the specified SDN.
func SDNToIslamic(sdn int64) (year, month, day int) {
	if sdn < ismEpoch {
		return 0, 0, 0
	}
	y := floorDiv(30*(sdn-ismEpoch)+10646, 10631)
	first := IslamicToSDN(int(y), 1, 1)
	// Months average 29.5 days, doubled to stay in integer arithmetic.
	m := min(12, ceilDiv(2*(sdn-29-first), 59)+1)
	d := sdn - IslamicToSDN(int(y), int(m), 1) + 1
	return int(y), int(m), int(d)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

func ceilDiv(a, b int64) int64 {
	return -floorDiv(-a, b)
}
