// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

var (
	// ErrUnknownLength is returned by operations which need a domain length
	// (open-ended slices, Len, complements) when none is known.
	ErrUnknownLength = errors.E(errors.Invalid, "interval: operation requires a known domain length")
	// ErrUnsupportedStep is returned when a slice step other than 1 is
	// requested.
	ErrUnsupportedStep = errors.E(errors.NotSupported, "interval: only slice steps of 1 are supported")
)

// ParseError is returned for a malformed textual interval list.
type ParseError struct {
	// Token is the offending substring.
	Token string
	// Err is the underlying number-parsing error, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("interval: malformed interval %q: %v", e.Token, e.Err)
	}
	return fmt.Sprintf("interval: malformed interval %q", e.Token)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IndexError is returned when an index or slice bound falls outside
// [0, Length).  Length is UnknownLength if the domain is unbounded.
type IndexError struct {
	Index  PosType
	Length PosType
}

func (e *IndexError) Error() string {
	if e.Length < 0 {
		return fmt.Sprintf("interval: index %d out of range", e.Index)
	}
	return fmt.Sprintf("interval: index %d out of range for length %d", e.Index, e.Length)
}
