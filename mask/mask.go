// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mask

import (
	"fmt"

	"github.com/grailbio/activity/interval"
)

// Mask is a boolean array of a known or unknown length, stored as the set of
// intervals whose positions are true.
//
// The interval list is normalized lazily.  Setting a range to true just
// appends it to a raw list; the first operation that needs the canonical form
// (Get, Text, Count, ...) normalizes the raw list into an interval.Union and
// keeps that until the next raw append.
type Mask struct {
	// length is the domain length, or interval.UnknownLength.
	length interval.PosType
	// Exactly one of raw and union is current.  raw is an arbitrary interval
	// list (unsorted, overlapping, or empty intervals allowed) and is current
	// while normalized is false; union is current otherwise.
	raw        []interval.Interval
	union      interval.Union
	normalized bool
}

// Zeros returns an all-false mask.  A negative length means the length is
// unknown; such a mask can still be read and written with explicit bounds.
func Zeros(length interval.PosType) *Mask {
	if length < 0 {
		length = interval.UnknownLength
	}
	return &Mask{length: length, normalized: true}
}

// FromDense returns a mask equal to values, with length len(values).
func FromDense(values []bool) *Mask {
	m := Zeros(interval.PosType(len(values)))
	var u interval.Union
	inside := false
	// Every transition is an endpoint.
	for i, v := range values {
		if v != inside {
			u = append(u, interval.PosType(i))
			inside = v
		}
	}
	if inside {
		u = append(u, interval.PosType(len(values)))
	}
	m.union = u
	return m
}

// FromText parses a textual interval list (see interval.ParseIntervals), e.g.
//   m, err := FromText("1:4, 5:20, 21:25", 50)
// An empty string yields an all-false mask.  If length is known, every
// interval must lie within [0, length).
func FromText(s string, length interval.PosType) (*Mask, error) {
	ivs, err := interval.ParseIntervals(s)
	if err != nil {
		return nil, err
	}
	m := Zeros(length)
	if err := m.AddIntervals(ivs); err != nil {
		return nil, err
	}
	return m, nil
}

// Length returns the domain length, or interval.UnknownLength.
func (m *Mask) Length() interval.PosType {
	return m.length
}

// Len returns the domain length, failing with interval.ErrUnknownLength if it
// isn't known.
func (m *Mask) Len() (interval.PosType, error) {
	if m.length < 0 {
		return 0, interval.ErrUnknownLength
	}
	return m.length, nil
}

// canonical normalizes the interval list if necessary and returns it.
func (m *Mask) canonical() interval.Union {
	if !m.normalized {
		m.union = interval.UnionOf(m.raw)
		m.raw = nil
		m.normalized = true
	}
	return m.union
}

// pairs returns the current interval list without normalizing it.  The
// result must not be modified.
func (m *Mask) pairs() []interval.Interval {
	if m.normalized {
		return m.union.Intervals()
	}
	return m.raw
}

// appendRaw adds intervals to the raw list, switching to the raw
// representation if necessary.
func (m *Mask) appendRaw(ivs ...interval.Interval) {
	if len(ivs) == 0 {
		return
	}
	if m.normalized {
		m.raw = m.union.Intervals()
		m.union = nil
		m.normalized = false
	}
	m.raw = append(m.raw, ivs...)
}

// clear removes r from the mask.
func (m *Mask) clear(r interval.Interval) {
	if r.Empty() {
		return
	}
	if m.normalized {
		// Removing a range from a normalized list leaves it normalized.
		m.union = interval.NewUnion(interval.NonIntersection(r, m.union.Intervals()))
		return
	}
	m.raw = interval.NonIntersection(r, m.raw)
}

// Get returns the dense values of the selected range.  The result has exactly
// as many elements as the resolved range.
func (m *Mask) Get(item interval.Item) ([]bool, error) {
	r, err := interval.Resolve(item, m.length)
	if err != nil {
		return nil, err
	}
	dense := make([]bool, r.Len())
	for _, iv := range m.canonical().Intersection(r) {
		for pos := iv.Start; pos < iv.End; pos++ {
			dense[pos-r.Start] = true
		}
	}
	return dense, nil
}

// Contains returns the value at pos.
func (m *Mask) Contains(pos interval.PosType) (bool, error) {
	if _, err := interval.Resolve(interval.Index(pos), m.length); err != nil {
		return false, err
	}
	return m.canonical().Contains(pos), nil
}

// Set assigns a to the selected range.  A scalar true is recorded in O(1); a
// scalar false removes the range; a dense pattern replaces the range
// position-by-position.  On error the mask is left unchanged.
func (m *Mask) Set(item interval.Item, a Assignment) error {
	r, err := interval.Resolve(item, m.length)
	if err != nil {
		return err
	}
	switch a.kind {
	case scalarAssignment:
		switch a.value {
		case 1:
			if !r.Empty() {
				m.appendRaw(r)
			}
		case 0:
			m.clear(r)
		default:
			return &ValueError{Value: a.value}
		}
	case denseAssignment:
		if n := interval.PosType(len(a.dense)); n != r.Len() {
			return &ShapeError{A: n, B: r.Len()}
		}
		pattern := FromDense(a.dense)
		m.clear(r)
		m.appendRaw(interval.Shift(pattern.union.Intervals(), r.Start)...)
	default:
		panic(a)
	}
	return nil
}

// AddIntervals sets every interval of ivs to true.  It is equivalent to
// calling Set(interval.Slice(iv.Start, iv.End), True) for each one, but only
// checks bounds once per interval and appends in bulk.  Nothing is added if
// any interval is out of range.
func (m *Mask) AddIntervals(ivs []interval.Interval) error {
	resolved := make([]interval.Interval, 0, len(ivs))
	for _, iv := range ivs {
		r, err := interval.Resolve(interval.Slice(iv.Start, iv.End), m.length)
		if err != nil {
			return err
		}
		if !r.Empty() {
			resolved = append(resolved, r)
		}
	}
	m.appendRaw(resolved...)
	return nil
}

// Union returns a new mask which is true wherever m or other is.  Both masks
// must have the same length (both unknown counts as the same).  The result is
// not normalized until it is first read.
func (m *Mask) Union(other *Mask) (*Mask, error) {
	if m.length != other.length {
		return nil, &ShapeError{A: m.length, B: other.length}
	}
	a, b := m.pairs(), other.pairs()
	raw := make([]interval.Interval, 0, len(a)+len(b))
	raw = append(raw, a...)
	raw = append(raw, b...)
	return &Mask{length: m.length, raw: raw}, nil
}

// Intersect returns a new mask which is true wherever both m and other are.
func (m *Mask) Intersect(other *Mask) (*Mask, error) {
	if m.length != other.length {
		return nil, &ShapeError{A: m.length, B: other.length}
	}
	return &Mask{
		length:     m.length,
		union:      m.canonical().Intersect(other.canonical()),
		normalized: true,
	}, nil
}

// Invert returns the complement of m.  It requires a known length.
func (m *Mask) Invert() (*Mask, error) {
	if m.length < 0 {
		return nil, interval.ErrUnknownLength
	}
	return &Mask{
		length:     m.length,
		union:      m.canonical().Complement(m.length),
		normalized: true,
	}, nil
}

// Count returns the number of true positions.
func (m *Mask) Count() interval.PosType {
	return m.canonical().Covered()
}

// Intervals returns the normalized intervals of m.
func (m *Mask) Intervals() []interval.Interval {
	return m.canonical().Intervals()
}

// Clone returns an independent copy of m.
func (m *Mask) Clone() *Mask {
	c := &Mask{length: m.length, normalized: m.normalized}
	if m.normalized {
		c.union = append(interval.Union(nil), m.union...)
	} else {
		c.raw = append([]interval.Interval(nil), m.raw...)
	}
	return c
}

// Equal returns whether m and other have the same length and the same true
// positions.
func (m *Mask) Equal(other *Mask) bool {
	return m.length == other.length && m.canonical().Equal(other.canonical())
}

// Text returns the canonical textual form of m, e.g. "1:4, 5:20".  An
// all-false mask yields "".
func (m *Mask) Text() string {
	return m.canonical().String()
}

// String implements fmt.Stringer.
func (m *Mask) String() string {
	return fmt.Sprintf("Mask(%q, length=%s)", m.Text(), lengthString(m.length))
}

// MarshalText implements encoding.TextMarshaler.
func (m *Mask) MarshalText() ([]byte, error) {
	return []byte(m.Text()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.  The receiver keeps its
// length, so it should come from Zeros (or be a previously-used mask); the
// zero Mask has length 0 and only accepts "".
func (m *Mask) UnmarshalText(text []byte) error {
	parsed, err := FromText(string(text), m.length)
	if err != nil {
		return err
	}
	*m = *parsed
	return nil
}
