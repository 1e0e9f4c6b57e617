// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

// Union is a normalized interval set stored as a length-2N sequence of
// endpoints: the start of interval #k (numbering from zero) is in element [2k]
// and its end is in element [2k+1].  The sequence is strictly increasing, so
// no two intervals overlap or touch.
// Advantages of this representation over a length-N sequence of {start, end}
// structs include simpler complement code, and reuse of standard binary and
// exponential search over a flat slice.
type Union []PosType

// UnionOf normalizes raw and returns it as a Union.
func UnionOf(raw []Interval) Union {
	return NewUnion(Normalize(raw))
}

// NewUnion flattens an already-normalized interval list.  It does not verify
// normalization; use UnionOf for arbitrary input.
func NewUnion(normalized []Interval) Union {
	if len(normalized) == 0 {
		return nil
	}
	u := make(Union, 0, 2*len(normalized))
	for _, iv := range normalized {
		u = append(u, iv.Start, iv.End)
	}
	return u
}

// NumIntervals returns the number of disjoint intervals in the union.
func (u Union) NumIntervals() int {
	return len(u) / 2
}

// At returns interval #k.
func (u Union) At(k int) Interval {
	return Interval{Start: u[2*k], End: u[2*k+1]}
}

// Intervals returns the union as an interval list.
func (u Union) Intervals() []Interval {
	if len(u) == 0 {
		return nil
	}
	ivs := make([]Interval, u.NumIntervals())
	for k := range ivs {
		ivs[k] = u.At(k)
	}
	return ivs
}

// Covered returns the total number of positions in the union.
func (u Union) Covered() PosType {
	var n PosType
	for k := 0; k < len(u); k += 2 {
		n += u[k+1] - u[k]
	}
	return n
}

// Contains checks whether pos is inside the union.
func (u Union) Contains(pos PosType) bool {
	return NewEndpointIndex(pos, u).Contained()
}

// Intersection returns the parts of the union overlapping q, each clipped to
// q, in increasing order.  The first candidate is located by binary search, so
// the cost is logarithmic in the union size plus linear in the output size.
func (u Union) Intersection(q Interval) []Interval {
	if q.Empty() {
		return nil
	}
	var ivs []Interval
	var start, end PosType
	us := NewUnionScannerAt(u, q.Start)
	for us.Scan(&start, &end, q.End) {
		ivs = append(ivs, Interval{Start: start, End: end})
	}
	return ivs
}

// Intersect returns the positions contained in both u and v.
func (u Union) Intersect(v Union) Union {
	var result Union
	var start, end PosType
	// u's starts are increasing, so the search into v can resume where the
	// previous interval left off.
	var ei EndpointIndex
	for k := 0; k < len(u); k += 2 {
		ei.Update(u[k], v)
		if ei.Finished(v) {
			break
		}
		us := newUnionScannerAtIndex(v, u[k], ei)
		for us.Scan(&start, &end, u[k+1]) {
			result = append(result, start, end)
		}
	}
	return result
}

// Complement returns the positions in [0, length) which are not in u.  u must
// not extend past length.
func (u Union) Complement(length PosType) Union {
	var result Union
	prev := PosType(0)
	for k := 0; k < len(u); k += 2 {
		if u[k] > prev {
			result = append(result, prev, u[k])
		}
		prev = u[k+1]
	}
	if length > prev {
		result = append(result, prev, length)
	}
	return result
}

// Equal returns whether u and v contain the same positions.
func (u Union) Equal(v Union) bool {
	if len(u) != len(v) {
		return false
	}
	for i := range u {
		if u[i] != v[i] {
			return false
		}
	}
	return true
}

// String returns the union in the textual interval-list format.
func (u Union) String() string {
	return FormatIntervals(u.Intervals())
}
