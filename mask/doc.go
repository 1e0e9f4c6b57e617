// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package mask provides Mask, a one-dimensional boolean array stored as a
// set of half-open intervals.  It is meant for sparse activity regions (e.g.
// speech-active samples) over sequences far too long to hold as a dense
// []bool, while reading and writing like one.
//
// A Mask is not safe for concurrent mutation.  Reads may normalize the
// interval list as a side effect, so concurrent readers are only safe once the
// mask has been normalized (e.g. by calling Text or Intervals) and no writer
// is active.  Clone a mask to hand it to another goroutine.
package mask
