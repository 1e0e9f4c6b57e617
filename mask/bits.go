// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mask

import (
	"github.com/grailbio/activity/interval"
	"github.com/grailbio/base/bitset"
)

// allOnes is a fully-set bitset word.
const allOnes = ^uintptr(0)

// FromBits returns a mask equal to the first length bits of bits, in
// github.com/grailbio/base/bitset layout.  bits must hold at least length
// bits.
func FromBits(bits []uintptr, length int) (*Mask, error) {
	if length < 0 {
		return nil, interval.ErrUnknownLength
	}
	if capacity := len(bits) * bitset.BitsPerWord; capacity < length {
		return nil, &ShapeError{A: interval.PosType(capacity), B: interval.PosType(length)}
	}
	m := Zeros(interval.PosType(length))
	var u interval.Union
	inside := false
	for i := 0; i < length; {
		if i%bitset.BitsPerWord == 0 {
			// Whole words that don't contain a transition can be skipped.
			word := bits[i/bitset.BitsPerWord]
			if (word == 0 && !inside) || (word == allOnes && inside) {
				i += bitset.BitsPerWord
				continue
			}
		}
		if bitset.Test(bits, i) != inside {
			u = append(u, interval.PosType(i))
			inside = !inside
		}
		i++
	}
	if inside {
		u = append(u, interval.PosType(length))
	}
	m.union = u
	return m, nil
}

// Bits returns the selected range as a bitset; bit k corresponds to position
// start+k of the resolved range.
func (m *Mask) Bits(item interval.Item) ([]uintptr, error) {
	r, err := interval.Resolve(item, m.length)
	if err != nil {
		return nil, err
	}
	n := int(r.Len())
	bits := make([]uintptr, (n+bitset.BitsPerWord-1)/bitset.BitsPerWord)
	for _, iv := range m.canonical().Intersection(r) {
		setRange(bits, int(iv.Start-r.Start), int(iv.End-r.Start))
	}
	return bits, nil
}

// setRange sets bits [start, end), filling aligned whole words directly.
func setRange(bits []uintptr, start, end int) {
	for ; start < end && start%bitset.BitsPerWord != 0; start++ {
		bitset.Set(bits, start)
	}
	for ; start+bitset.BitsPerWord <= end; start += bitset.BitsPerWord {
		bits[start/bitset.BitsPerWord] = allOnes
	}
	for ; start < end; start++ {
		bitset.Set(bits, start)
	}
}
