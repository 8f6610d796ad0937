// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package timeline merges dates from many records, eg. the events of a
// family, into chronological order.
package timeline

import (
	"iter"
	"slices"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/gendate"
)

// Entry is a labelled date.
type Entry struct {
	Label string
	Date  gendate.Date
	seq   uint64
}

// Less orders entries by the sort value of their dates and then by the
// order in which they were added.
func (e Entry) Less(o Entry) bool {
	if c := gendate.Compare(e.Date, o.Date); c != 0 {
		return c < 0
	}
	return e.seq < o.seq
}

// Timeline orders entries by date. Text only and empty dates have a sort
// value of 0 and hence appear first. The zero value is ready to use; a
// Timeline is not safe for concurrent use.
type Timeline struct {
	h   heap.Heap[Entry]
	seq uint64
}

// Add adds a labelled date.
func (t *Timeline) Add(label string, d gendate.Date) {
	t.h.Push(Entry{Label: label, Date: d, seq: t.seq})
	t.seq++
}

// Len returns the number of entries remaining.
func (t *Timeline) Len() int {
	return t.h.Len()
}

// Peek returns the earliest entry without removing it.
func (t *Timeline) Peek() (Entry, bool) {
	if t.h.Len() == 0 {
		return Entry{}, false
	}
	return t.h[0], true
}

// Next removes and returns the earliest entry.
func (t *Timeline) Next() (Entry, bool) {
	if t.h.Len() == 0 {
		return Entry{}, false
	}
	return t.h.Pop(), true
}

// All returns an iterator over the entries in chronological order. The
// timeline itself is not modified.
func (t *Timeline) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		h := heap.Heap[Entry](slices.Clone(t.h))
		for h.Len() > 0 {
			if !yield(h.Pop()) {
				return
			}
		}
	}
}
