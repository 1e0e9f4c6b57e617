// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mask

import (
	"fmt"

	"github.com/grailbio/activity/interval"
)

// ShapeError is returned when two sizes that must agree do not: the domain
// lengths of two combined masks, or the length of a dense assignment and the
// range it is assigned to.
type ShapeError struct {
	A, B interval.PosType
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("mask: shape mismatch (%s vs. %s)", lengthString(e.A), lengthString(e.B))
}

// ValueError is returned for a scalar assignment of anything other than 0 or
// 1.
type ValueError struct {
	Value int
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("mask: cannot assign %d, only 0 and 1 are allowed", e.Value)
}

func lengthString(length interval.PosType) string {
	if length < 0 {
		return "unknown"
	}
	return fmt.Sprintf("%d", length)
}
