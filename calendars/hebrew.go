// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

// The Hebrew calendar is computed from the time of the molad (new moon)
// of Tishri measured in halakim (1/1080 of an hour) and the four
// postponement rules (dehiyyot). Months are numbered from Tishri (1) to
// Elul (13); month 6 (Adar I) only exists in leap years and month 7 is
// Adar in a common year and Adar II in a leap year.
const (
	hbrHalakimPerDay          = 25920
	hbrHalakimPerLunarCycle   = 29*hbrHalakimPerDay + 13753
	hbrHalakimPerMetonicCycle = hbrHalakimPerLunarCycle * (12*19 + 7)
	hbrSDNOffset              = 347997
	hbrMaxSDN                 = 324542846
	hbrNewMoonOfCreation      = 31524
	hbrNoon                   = 18 * 1080
	hbrAM3_11_20              = 9*1080 + 204
	hbrAM9_32_43              = 15*1080 + 589

	hbrSunday    = 0
	hbrMonday    = 1
	hbrTuesday   = 2
	hbrWednesday = 3
	hbrFriday    = 5
)

var (
	hebrewMonthsPerYear = [19]int{12, 12, 13, 12, 12, 13, 12, 13, 12, 12, 13, 12, 12, 13, 12, 12, 13, 12, 13}

	// months elapsed before the start of each year of the metonic cycle.
	hebrewYearOffset = [19]int64{0, 12, 24, 37, 49, 61, 74, 86, 99, 111, 123, 136, 148, 160, 173, 185, 197, 210, 222}
)

type molad struct {
	day, halakim int64
}

func (m molad) advance(months int64) molad {
	h := m.halakim + hbrHalakimPerLunarCycle*months
	return molad{day: m.day + h/hbrHalakimPerDay, halakim: h % hbrHalakimPerDay}
}

func moladOfMetonicCycle(cycle int64) molad {
	total := hbrNewMoonOfCreation + cycle*hbrHalakimPerMetonicCycle
	return molad{day: total / hbrHalakimPerDay, halakim: total % hbrHalakimPerDay}
}

func isHebrewLeap(metonicYear int64) bool {
	switch metonicYear {
	case 2, 5, 7, 10, 13, 16, 18:
		return true
	}
	return false
}

func followsHebrewLeap(metonicYear int64) bool {
	switch metonicYear {
	case 3, 6, 8, 11, 14, 17, 0:
		return true
	}
	return false
}

// tishri1 applies the postponement rules to the molad of Tishri to
// obtain the first day of the year.
func tishri1(metonicYear int64, m molad) int64 {
	t := m.day
	dow := t % 7
	if m.halakim >= hbrNoon ||
		(!isHebrewLeap(metonicYear) && dow == hbrTuesday && m.halakim >= hbrAM3_11_20) ||
		(followsHebrewLeap(metonicYear) && dow == hbrMonday && m.halakim >= hbrAM9_32_43) {
		t++
		dow = (dow + 1) % 7
	}
	if dow == hbrWednesday || dow == hbrFriday || dow == hbrSunday {
		t++
	}
	return t
}

// tishriMolad finds the molad of Tishri closest to day, where day is
// measured from the Hebrew epoch.
func tishriMolad(day int64) (cycle, metonicYear int64, m molad) {
	cycle = (day + 310) / 6940
	m = moladOfMetonicCycle(cycle)
	for m.day < day-6940+310 {
		cycle++
		h := m.halakim + hbrHalakimPerMetonicCycle
		m = molad{day: m.day + h/hbrHalakimPerDay, halakim: h % hbrHalakimPerDay}
	}
	for metonicYear = 0; metonicYear < 18; metonicYear++ {
		if m.day > day-74 {
			break
		}
		m = m.advance(int64(hebrewMonthsPerYear[metonicYear]))
	}
	return
}

func startOfHebrewYear(year int64) (metonicYear int64, m molad, first int64) {
	cycle := (year - 1) / 19
	metonicYear = (year - 1) % 19
	m = moladOfMetonicCycle(cycle).advance(hebrewYearOffset[metonicYear])
	first = tishri1(metonicYear, m)
	return
}

// HebrewToSDN returns the SDN for the specified Hebrew date. It returns
// 0 for a month outside of 1-13.
func HebrewToSDN(year, month, day int) int64 {
	if year < 1 {
		return 0
	}
	y, d := int64(year), int64(day)
	var sdn int64
	switch month {
	case 1, 2:
		_, _, first := startOfHebrewYear(y)
		if month == 1 {
			sdn = first + d - 1
		} else {
			sdn = first + d + 29
		}
	case 3:
		metonicYear, m, first := startOfHebrewYear(y)
		m = m.advance(int64(hebrewMonthsPerYear[metonicYear]))
		after := tishri1((metonicYear+1)%19, m)
		if length := after - first; length == 355 || length == 385 {
			sdn = first + d + 59
		} else {
			sdn = first + d + 58
		}
	case 4, 5, 6:
		_, _, after := startOfHebrewYear(y + 1)
		adars := int64(59)
		if hebrewMonthsPerYear[(y-1)%19] == 12 {
			adars = 29
		}
		switch month {
		case 4:
			sdn = after + d - adars - 237
		case 5:
			sdn = after + d - adars - 208
		default:
			sdn = after + d - adars - 178
		}
	case 7, 8, 9, 10, 11, 12, 13:
		_, _, after := startOfHebrewYear(y + 1)
		offsets := [...]int64{207, 178, 148, 119, 89, 60, 30}
		sdn = after + d - offsets[month-7]
	default:
		return 0
	}
	return sdn + hbrSDNOffset
}

// SDNToHebrew returns the Hebrew date for the specified SDN.
func SDNToHebrew(sdn int64) (year, month, day int) {
	if sdn <= hbrSDNOffset || sdn > hbrMaxSDN {
		return 0, 0, 0
	}
	y, m, d := sdnToHebrew(sdn - hbrSDNOffset)
	return int(y), int(m), int(d)
}

func sdnToHebrew(input int64) (year, month, day int64) {
	cycle, metonicYear, mol := tishriMolad(input)
	moladDay := mol.day
	first := tishri1(metonicYear, mol)
	var after int64

	if input >= first {
		// Tishri 1 found at the start of the year.
		year = cycle*19 + metonicYear + 1
		if input < first+59 {
			if input < first+30 {
				return year, 1, input - first + 1
			}
			return year, 2, input - first - 29
		}
		// The length of the year is needed, so find Tishri 1 of the next year.
		mol = mol.advance(int64(hebrewMonthsPerYear[metonicYear]))
		after = tishri1((metonicYear+1)%19, mol)
	} else {
		// Tishri 1 found at the end of the year.
		year = cycle*19 + metonicYear
		if input >= first-177 {
			// One of the last 6 months of the year.
			switch {
			case input > first-30:
				return year, 13, input - first + 30
			case input > first-60:
				return year, 12, input - first + 60
			case input > first-89:
				return year, 11, input - first + 89
			case input > first-119:
				return year, 10, input - first + 119
			case input > first-148:
				return year, 9, input - first + 148
			default:
				return year, 8, input - first + 178
			}
		}
		month = 7
		day = input - first + 207
		if day > 0 {
			return year, month, day
		}
		if hebrewMonthsPerYear[(year-1)%19] == 13 {
			month--
			day += 30
			if day > 0 {
				return year, month, day
			}
			month--
		} else {
			month -= 2
		}
		day += 30
		if day > 0 {
			return year, month, day
		}
		month--
		day += 29
		if day > 0 {
			return year, month, day
		}
		// The length of the year is needed, so find Tishri 1 of this year.
		after = first
		_, metonicYear, mol = tishriMolad(moladDay - 365)
		first = tishri1(metonicYear, mol)
	}

	day = input - first - 29
	if length := after - first; length == 355 || length == 385 {
		// Heshvan has 30 days.
		if day <= 30 {
			return year, 2, day
		}
		day -= 30
	} else {
		if day <= 29 {
			return year, 2, day
		}
		day -= 29
	}
	return year, 3, day
}
