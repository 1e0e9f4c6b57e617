// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

import "strconv"

// Item selects either a single position or a contiguous slice of a
// one-dimensional domain.  The zero Item is the slice [0:0].
type Item struct {
	start, stop, step PosType
	isIndex           bool
	// openStop is set for slices that run to the end of the domain.
	openStop bool
}

// Index returns an Item selecting position i.
func Index(i PosType) Item {
	return Item{start: i, isIndex: true}
}

// Slice returns an Item selecting [start, stop).
func Slice(start, stop PosType) Item {
	return Item{start: start, stop: stop}
}

// SliceFrom returns an Item selecting everything from start to the end of the
// domain.
func SliceFrom(start PosType) Item {
	return Item{start: start, openStop: true}
}

// All returns an Item selecting the whole domain.
func All() Item {
	return SliceFrom(0)
}

// WithStep returns a copy of the slice with the given step.  Only a step of 1
// (or 0, meaning the default) resolves successfully.
func (it Item) WithStep(step PosType) Item {
	it.step = step
	return it
}

// String returns the item in ParseSlice syntax.
func (it Item) String() string {
	if it.isIndex {
		return strconv.FormatInt(int64(it.start), 10)
	}
	s := strconv.FormatInt(int64(it.start), 10) + ":"
	if !it.openStop {
		s += strconv.FormatInt(int64(it.stop), 10)
	}
	if it.step != 0 {
		s += ":" + strconv.FormatInt(int64(it.step), 10)
	}
	return s
}

// Resolve converts item into an absolute interval within a domain of the
// given length (UnknownLength if unbounded).
//
// An index i resolves to [i, i+1), and fails with *IndexError unless
// 0 <= i < length.  A slice resolves with the usual half-open conventions; a
// slice with stop < start is empty.  Slice bounds must lie in [0, length].
// An open-ended slice fails with ErrUnknownLength if the length is unknown,
// since nothing bounds it.
func Resolve(item Item, length PosType) (Interval, error) {
	known := length >= 0
	if item.isIndex {
		i := item.start
		if i < 0 || (known && i >= length) {
			return Interval{}, &IndexError{Index: i, Length: lengthOrUnknown(length)}
		}
		return Interval{Start: i, End: i + 1}, nil
	}
	if item.step != 0 && item.step != 1 {
		return Interval{}, ErrUnsupportedStep
	}
	start := item.start
	stop := item.stop
	if item.openStop {
		if !known {
			return Interval{}, ErrUnknownLength
		}
		stop = length
	}
	if start < 0 || (known && start > length) {
		return Interval{}, &IndexError{Index: start, Length: lengthOrUnknown(length)}
	}
	if stop < 0 || (known && stop > length) {
		return Interval{}, &IndexError{Index: stop, Length: lengthOrUnknown(length)}
	}
	if stop < start {
		stop = start
	}
	return Interval{Start: start, End: stop}, nil
}

func lengthOrUnknown(length PosType) PosType {
	if length < 0 {
		return UnknownLength
	}
	return length
}
