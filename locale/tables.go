// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package locale

import (
	"cloudeng.io/gendate"
	"golang.org/x/text/language"
)

var english = &Names{
	Tag: language.English,
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	ShortMonths: [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	Calendars: []string{
		"Gregorian", "Julian", "Hebrew", "French Republican", "Persian", "Islamic",
	},
	Before:     "before",
	After:      "after",
	About:      "about",
	Estimated:  "estimated",
	Calculated: "calculated",
	RangeStart: "between",
	RangeSep:   "and",
	SpanStart:  "from",
	SpanSep:    "to",
	ModifierWords: map[string]gendate.Modifier{
		"before": gendate.ModBefore,
		"bef":    gendate.ModBefore,
		"after":  gendate.ModAfter,
		"aft":    gendate.ModAfter,
		"about":  gendate.ModAbout,
		"abt":    gendate.ModAbout,
		"est":    gendate.ModAbout,
		"circa":  gendate.ModAbout,
		"around": gendate.ModAbout,
		"c":      gendate.ModAbout,
		"ca":     gendate.ModAbout,
	},
	QualityWords: map[string]gendate.Quality{
		"estimated":  gendate.QualEstimated,
		"calculated": gendate.QualCalculated,
		"calc":       gendate.QualCalculated,
	},
	RangeWords: []string{"between", "betw", "bet"},
	RangeSeps:  []string{"and", "-"},
	SpanWords:  []string{"from"},
	SpanSeps:   []string{"to", "-"},
}

var french = &Names{
	Tag: language.French,
	Months: [12]string{
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	},
	ShortMonths: [12]string{
		"janv", "févr", "mars", "avr", "mai", "juin",
		"juil", "août", "sept", "oct", "nov", "déc",
	},
	Calendars: []string{
		"grégorien", "julien", "hébreu", "républicain", "persan", "islamique",
	},
	Before:     "avant",
	After:      "après",
	About:      "vers",
	Estimated:  "estimé",
	Calculated: "calculé",
	RangeStart: "entre",
	RangeSep:   "et",
	SpanStart:  "de",
	SpanSep:    "à",
	ModifierWords: map[string]gendate.Modifier{
		"avant":   gendate.ModBefore,
		"av":      gendate.ModBefore,
		"après":   gendate.ModAfter,
		"apr":     gendate.ModAfter,
		"ap":      gendate.ModAfter,
		"vers":    gendate.ModAbout,
		"environ": gendate.ModAbout,
		"env":     gendate.ModAbout,
	},
	QualityWords: map[string]gendate.Quality{
		"estimé":   gendate.QualEstimated,
		"estimée":  gendate.QualEstimated,
		"calculé":  gendate.QualCalculated,
		"calculée": gendate.QualCalculated,
	},
	RangeWords: []string{"entre"},
	RangeSeps:  []string{"et"},
	SpanWords:  []string{"de", "du"},
	SpanSeps:   []string{"à", "au"},
}

var german = &Names{
	Tag: language.German,
	Months: [12]string{
		"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	},
	ShortMonths: [12]string{
		"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
		"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
	},
	Calendars: []string{
		"gregorianisch", "julianisch", "hebräisch", "französisch republikanisch", "persisch", "islamisch",
	},
	Before:     "vor",
	After:      "nach",
	About:      "um",
	Estimated:  "geschätzt",
	Calculated: "errechnet",
	RangeStart: "zwischen",
	RangeSep:   "und",
	SpanStart:  "von",
	SpanSep:    "bis",
	ModifierWords: map[string]gendate.Modifier{
		"vor":   gendate.ModBefore,
		"nach":  gendate.ModAfter,
		"um":    gendate.ModAbout,
		"etwa":  gendate.ModAbout,
		"ungef": gendate.ModAbout,
	},
	QualityWords: map[string]gendate.Quality{
		"geschätzt": gendate.QualEstimated,
		"errechnet": gendate.QualCalculated,
		"berechnet": gendate.QualCalculated,
	},
	RangeWords: []string{"zwischen"},
	RangeSeps:  []string{"und"},
	SpanWords:  []string{"von", "vom"},
	SpanSeps:   []string{"bis"},
}

// GEDCOM style abbreviations that are accepted for every locale.
var gedcomMonths = [12]string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

var gedcomHebrewMonths = []string{
	"tsh", "csh", "ksl", "tvt", "shv", "adr",
	"ads", "nsn", "iyr", "svn", "tmz", "aav", "ell",
}

var gedcomFrenchMonths = []string{
	"vend", "brum", "frim", "nivo", "pluv", "vent",
	"germ", "flor", "prai", "mess", "ther", "fruc", "comp",
}

// Adar, without a qualifier, is month 7 in a common year.
var hebrewAliases = []string{6: "adar"}
