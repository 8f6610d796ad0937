// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gendate

import (
	"fmt"

	"cloudeng.io/gendate/calendars"
	"gopkg.in/yaml.v3"
)

// Tuple is the persisted form of a Date. Fields holds one Value for simple
// and text only dates and two for ranges and spans. The enum codes are
// stable across versions.
//
// In YAML a Tuple is written as the flow sequence
//
//	[calendar, modifier, quality, [day, month, year, dual, ...], text, sortvalue]
type Tuple struct {
	Calendar  int
	Modifier  int
	Quality   int
	Fields    []Value
	Text      string
	SortValue int64
}

// Serialize returns the persisted form of the date. If noText is set the
// text is omitted.
func (d Date) Serialize(noText bool) Tuple {
	t := Tuple{
		Calendar:  int(d.calendar),
		Modifier:  int(d.modifier),
		Quality:   int(d.quality),
		SortValue: d.sortval,
	}
	if !noText {
		t.Text = d.text
	}
	switch {
	case d.modifier == ModTextOnly:
		t.Fields = []Value{{}}
	case d.modifier.IsCompound():
		t.Fields = []Value{d.start, d.stop}
	default:
		t.Fields = []Value{d.start}
	}
	return t
}

// Unserialize creates a Date from its persisted form. The sort value is
// recomputed rather than trusted. Any inconsistency in the tuple results
// in an error that wraps ErrInvalidDate.
func Unserialize(t Tuple) (Date, error) {
	var d Date
	err := d.Set(Quality(t.Quality), Modifier(t.Modifier), calendars.Calendar(t.Calendar), t.Fields, t.Text)
	return d, err
}

// MarshalYAML implements yaml.Marshaler.
func (t Tuple) MarshalYAML() (any, error) {
	fields := make([]any, 0, len(t.Fields)*4)
	for _, v := range t.Fields {
		fields = append(fields, v.Day, v.Month, v.Year, v.DualYear)
	}
	n := &yaml.Node{}
	if err := n.Encode([]any{t.Calendar, t.Modifier, t.Quality, fields, t.Text, t.SortValue}); err != nil {
		return nil, err
	}
	n.Style = yaml.FlowStyle
	return n, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Tuple) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 6 {
		return fmt.Errorf("%w: line %d: expected a sequence of 6 elements", ErrInvalidDate, node.Line)
	}
	var tup Tuple
	c := node.Content
	for i, dst := range []any{&tup.Calendar, &tup.Modifier, &tup.Quality} {
		if err := c[i].Decode(dst); err != nil {
			return err
		}
	}
	fields := c[3]
	if fields.Kind != yaml.SequenceNode || len(fields.Content)%4 != 0 {
		return fmt.Errorf("%w: line %d: fields must be a sequence of day, month, year, dual", ErrInvalidDate, fields.Line)
	}
	for i := 0; i < len(fields.Content); i += 4 {
		var v Value
		for j, dst := range []any{&v.Day, &v.Month, &v.Year, &v.DualYear} {
			if err := fields.Content[i+j].Decode(dst); err != nil {
				return err
			}
		}
		tup.Fields = append(tup.Fields, v)
	}
	if err := c[4].Decode(&tup.Text); err != nil {
		return err
	}
	if err := c[5].Decode(&tup.SortValue); err != nil {
		return err
	}
	*t = tup
	return nil
}
