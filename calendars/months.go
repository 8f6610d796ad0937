// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

var monthNames = [numCalendars][]string{
	Gregorian: gregorianMonths,
	Julian:    gregorianMonths,
	Hebrew: {
		"Tishri", "Heshvan", "Kislev", "Tevet", "Shevat", "AdarI",
		"AdarII", "Nisan", "Iyyar", "Sivan", "Tammuz", "Av", "Elul",
	},
	French: {
		"Vendémiaire", "Brumaire", "Frimaire", "Nivôse", "Pluviôse",
		"Ventôse", "Germinal", "Floréal", "Prairial", "Messidor",
		"Thermidor", "Fructidor", "Extra",
	},
	Persian: {
		"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
		"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand",
	},
	Islamic: {
		"Muharram", "Safar", "Rabi`al-Awwal", "Rabi`ath-Thani",
		"Jumada l-Ula", "Jumada t-Tania", "Rajab", "Sha`ban",
		"Ramadan", "Shawwal", "Dhu l-Qa`da", "Dhu l-Hijja",
	},
}

var gregorianMonths = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthNames returns the conventional names of the months of calendar c,
// indexed from 0 for month 1. The Gregorian and Julian names are in English;
// locale specific names are provided by the locale package.
func MonthNames(c Calendar) []string {
	if !c.Valid() {
		return nil
	}
	return append([]string(nil), monthNames[c]...)
}

// MonthName returns the name of the specified month or the empty string
// if the month is out of range.
func MonthName(c Calendar, month int) string {
	if !c.Valid() || month < 1 || month > len(monthNames[c]) {
		return ""
	}
	return monthNames[c][month-1]
}
