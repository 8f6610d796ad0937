// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

const (
	prsEpoch          = 1948320 // one day before 1 Farvardin 1 AP.
	prsDaysPerCycle   = 1029983 // days in a 2820 year grand cycle.
	prsCycleEpoch     = 2121446 // 1 Farvardin 475 AP, the start of a grand cycle.
	prsYearsPerCycle  = 2820
	prsCycleFirstYear = 474
)

// PersianToSDN returns the SDN for the specified date in the arithmetic
// Persian (Solar Hijri) calendar. The first six months have 31 days,
// the next five 30 and the last 29, or 30 in a leap year.
func PersianToSDN(year, month, day int) int64 {
	if year < 1 {
		return 0
	}
	epbase := int64(year) - prsCycleFirstYear
	epyear := prsCycleFirstYear + floorMod(epbase, prsYearsPerCycle)
	m := int64(month)
	var monthDays int64
	if m <= 7 {
		monthDays = (m - 1) * 31
	} else {
		monthDays = (m-1)*30 + 6
	}
	return monthDays +
		(epyear*682-110)/2816 +
		(epyear-1)*365 + int64(day) +
		floorDiv(epbase, prsYearsPerCycle)*prsDaysPerCycle +
		prsEpoch
}

// SDNToPersian returns the Persian date for the specified SDN.
func SDNToPersian(sdn int64) (year, month, day int) {
	if sdn <= prsEpoch {
		return 0, 0, 0
	}
	depoch := sdn - prsCycleEpoch
	cycle := floorDiv(depoch, prsDaysPerCycle)
	cyear := floorMod(depoch, prsDaysPerCycle)
	var ycycle int64
	if cyear == prsDaysPerCycle-1 {
		ycycle = prsYearsPerCycle
	} else {
		aux1, aux2 := cyear/366, cyear%366
		ycycle = (2134*aux1+2816*aux2+2815)/1028522 + aux1 + 1
	}
	y := ycycle + prsYearsPerCycle*cycle + prsCycleFirstYear
	if y < 1 {
		return 0, 0, 0
	}
	yday := sdn - PersianToSDN(int(y), 1, 1) + 1
	var m int64
	if yday <= 186 {
		m = ceilDiv(yday, 31)
	} else {
		m = ceilDiv(yday-6, 30)
	}
	d := sdn - PersianToSDN(int(y), int(m), 1) + 1
	return int(y), int(m), int(d)
}
