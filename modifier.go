// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gendate

import "fmt"

// Modifier qualifies how the fields of a Date are to be interpreted. The
// integer values are persisted and must not change.
type Modifier int

const (
	ModNone Modifier = iota
	ModBefore
	ModAfter
	ModAbout
	ModRange
	ModSpan
	ModTextOnly
	numModifiers
)

var modifierNames = [numModifiers]string{
	ModNone:     "none",
	ModBefore:   "before",
	ModAfter:    "after",
	ModAbout:    "about",
	ModRange:    "range",
	ModSpan:     "span",
	ModTextOnly: "text",
}

// Valid returns true if m is a defined modifier.
func (m Modifier) Valid() bool {
	return m >= ModNone && m < numModifiers
}

// IsCompound returns true for the modifiers that require both a start
// and a stop value.
func (m Modifier) IsCompound() bool {
	return m == ModRange || m == ModSpan
}

func (m Modifier) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Modifier(%d)", int(m))
	}
	return modifierNames[m]
}

// Quality is an annotation on a Date that is independent of its modifier.
// The integer values are persisted and must not change.
type Quality int

const (
	QualNone Quality = iota
	QualEstimated
	QualCalculated
	numQualities
)

var qualityNames = [numQualities]string{
	QualNone:       "none",
	QualEstimated:  "estimated",
	QualCalculated: "calculated",
}

// Valid returns true if q is a defined quality.
func (q Quality) Valid() bool {
	return q >= QualNone && q < numQualities
}

func (q Quality) String() string {
	if !q.Valid() {
		return fmt.Sprintf("Quality(%d)", int(q))
	}
	return qualityNames[q]
}
