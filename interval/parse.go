// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIntervals parses a comma-separated list of "start:end" tokens, e.g.
//   "1:4, 5:20, 21:25"
// Whitespace around tokens is ignored, as is a single trailing comma.  An
// empty (or all-whitespace) string yields no intervals.  Tokens may appear in
// any order and may overlap; the result is returned as written, without
// normalization.
func ParseIntervals(s string) ([]Interval, error) {
	var ivs []Interval
	tokens := strings.Split(s, ",")
	for i, token := range tokens {
		trimmed := strings.TrimSpace(token)
		if trimmed == "" {
			if i == len(tokens)-1 {
				continue
			}
			return nil, &ParseError{Token: token}
		}
		iv, err := parseInterval(trimmed)
		if err != nil {
			return nil, err
		}
		ivs = append(ivs, iv)
	}
	return ivs, nil
}

func parseInterval(token string) (iv Interval, err error) {
	colonPos := strings.IndexByte(token, ':')
	if colonPos == -1 {
		err = &ParseError{Token: token}
		return
	}
	if iv.Start, err = parsePos(token, token[:colonPos]); err != nil {
		return
	}
	if iv.End, err = parsePos(token, token[colonPos+1:]); err != nil {
		return
	}
	if iv.Start >= iv.End {
		err = &ParseError{Token: token, Err: fmt.Errorf("start %d is not below end %d", iv.Start, iv.End)}
	}
	return
}

// parsePos parses a single nonnegative decimal coordinate of token.
func parsePos(token, field string) (PosType, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
	if err != nil {
		return 0, &ParseError{Token: token, Err: err}
	}
	if n < 0 {
		return 0, &ParseError{Token: token, Err: fmt.Errorf("negative coordinate %d", n)}
	}
	return PosType(n), nil
}

// FormatIntervals returns ivs in the textual interval-list format, joined by
// ", ".  No trailing comma is emitted, and an empty list yields "".
func FormatIntervals(ivs []Interval) string {
	var buf []byte
	for i, iv := range ivs {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = strconv.AppendInt(buf, int64(iv.Start), 10)
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, int64(iv.End), 10)
	}
	return string(buf)
}

// ParseSlice parses an index or slice expression of one of the forms
//   [index]
//   [start]:[stop]
//   [start]:[stop]:[step]
// where start, stop and step may each be omitted.  An omitted start means 0,
// and an omitted stop means "to the end of the domain".  Bounds are not
// checked here; see Resolve.
func ParseSlice(s string) (Item, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Item{}, &ParseError{Token: s}
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return Item{}, &ParseError{Token: s}
	}
	if len(parts) == 1 {
		i, err := parseSigned(s, parts[0])
		if err != nil {
			return Item{}, err
		}
		return Index(i), nil
	}
	var item Item
	var start PosType
	if field := strings.TrimSpace(parts[0]); field != "" {
		var err error
		if start, err = parseSigned(s, field); err != nil {
			return Item{}, err
		}
	}
	if field := strings.TrimSpace(parts[1]); field != "" {
		stop, err := parseSigned(s, field)
		if err != nil {
			return Item{}, err
		}
		item = Slice(start, stop)
	} else {
		item = SliceFrom(start)
	}
	if len(parts) == 3 {
		if field := strings.TrimSpace(parts[2]); field != "" {
			step, err := parseSigned(s, field)
			if err != nil {
				return Item{}, err
			}
			item = item.WithStep(step)
		}
	}
	return item, nil
}

// parseSigned is parsePos without the sign restriction; negative bounds are
// rejected later by Resolve with a more useful error.
func parseSigned(token, field string) (PosType, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
	if err != nil {
		return 0, &ParseError{Token: token, Err: err}
	}
	return PosType(n), nil
}
