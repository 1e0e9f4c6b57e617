// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

import (
	"sort"
	"strconv"
)

// Interval is the half-open range [Start, End).  An Interval with
// Start >= End is empty.
type Interval struct {
	Start PosType
	End   PosType
}

// Len returns the number of positions covered by the interval.
func (iv Interval) Len() PosType {
	if iv.End <= iv.Start {
		return 0
	}
	return iv.End - iv.Start
}

// Empty returns whether the interval covers no positions.
func (iv Interval) Empty() bool {
	return iv.Start >= iv.End
}

// String returns the interval in "start:end" form.
func (iv Interval) String() string {
	return strconv.FormatInt(int64(iv.Start), 10) + ":" + strconv.FormatInt(int64(iv.End), 10)
}

// Normalize returns the canonical form of an arbitrary interval list: empty
// intervals are dropped, the rest are sorted by start, and overlapping or
// touching intervals are merged.  The input is not modified.
func Normalize(raw []Interval) []Interval {
	sorted := make([]Interval, 0, len(raw))
	for _, iv := range raw {
		if iv.Start < iv.End {
			sorted = append(sorted, iv)
		}
	}
	if len(sorted) == 0 {
		return nil
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	// Merge in place; the write index never passes the read index.
	merged := sorted[:1]
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// NonIntersection returns raw with the positions in [q.Start, q.End) removed.
// Intervals straddling a boundary of q are split, leaving at most two pieces;
// intervals entirely outside q are kept unchanged and in their original
// order.  raw need not be normalized, but if it is, so is the result.
func NonIntersection(q Interval, raw []Interval) []Interval {
	result := make([]Interval, 0, len(raw)+1)
	for _, iv := range raw {
		if iv.Start >= iv.End {
			continue
		}
		if q.Empty() || iv.End <= q.Start || iv.Start >= q.End {
			result = append(result, iv)
			continue
		}
		if iv.Start < q.Start {
			result = append(result, Interval{Start: iv.Start, End: q.Start})
		}
		if iv.End > q.End {
			result = append(result, Interval{Start: q.End, End: iv.End})
		}
	}
	return result
}

// Shift returns a copy of ivs with every endpoint moved by offset.
func Shift(ivs []Interval, offset PosType) []Interval {
	shifted := make([]Interval, len(ivs))
	for i, iv := range ivs {
		shifted[i] = Interval{Start: iv.Start + offset, End: iv.End + offset}
	}
	return shifted
}
