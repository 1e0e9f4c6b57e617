// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rttm

import (
	"bufio"
	"io"
	"math/big"
	"sort"

	"github.com/grailbio/activity/interval"
	"github.com/grailbio/activity/mask"
	"github.com/grailbio/base/log"
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/pkg/errors"
)

// Opts defines behavior of this package's loading functions.
type Opts struct {
	// SampleRate is the number of samples per second used to convert segment
	// times into mask positions.
	SampleRate int
	// Length is the domain length of every returned mask, or
	// interval.UnknownLength.  With a known length, segments extending past it
	// are an error.
	Length interval.PosType
}

// DefaultOpts is the default configuration.
var DefaultOpts = Opts{
	SampleRate: 16000,
	Length:     interval.UnknownLength,
}

// Masks holds one mask per recording and speaker, keyed by file id, then by
// speaker name.
type Masks map[string]map[string]*mask.Mask

// Key identifies one mask in a Masks.
type Key struct {
	FileID  string
	Speaker string
}

// Get returns the mask for the given file id and speaker, or nil if there is
// none.
func (ms Masks) Get(fileID, speaker string) *mask.Mask {
	return ms[fileID][speaker]
}

// Keys returns all (file id, speaker) pairs, sorted.
func (ms Masks) Keys() []Key {
	var keys []Key
	for fileID, speakers := range ms {
		for speaker := range speakers {
			keys = append(keys, Key{FileID: fileID, Speaker: speaker})
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].FileID != keys[j].FileID {
			return keys[i].FileID < keys[j].FileID
		}
		return keys[i].Speaker < keys[j].Speaker
	})
	return keys
}

func (ms Masks) getOrCreate(fileID, speaker string, length interval.PosType) *mask.Mask {
	speakers := ms[fileID]
	if speakers == nil {
		speakers = make(map[string]*mask.Mask)
		ms[fileID] = speakers
	}
	m := speakers[speaker]
	if m == nil {
		m = mask.Zeros(length)
		speakers[speaker] = m
	}
	return m
}

// Token positions within an RTTM line.
const (
	typeField     = 0
	fileIDField   = 1
	beginField    = 3
	durationField = 4
	nameField     = 7
	nField        = 9
)

// getTokens identifies up to the first len(tokens) tokens from curLine,
// returning the number of tokens saved.  Any (group of) characters <= ' ' is
// treated as a delimiter.
func getTokens(tokens [][]byte, curLine []byte) int {
	posEnd := 0
	lineLen := len(curLine)
	for tokenIdx := range tokens {
		pos := posEnd
		for ; pos != lineLen; pos++ {
			if curLine[pos] > ' ' {
				break
			}
		}
		if pos == lineLen {
			return tokenIdx
		}
		posEnd = pos
		for ; posEnd != lineLen; posEnd++ {
			if curLine[posEnd] <= ' ' {
				break
			}
		}
		tokens[tokenIdx] = curLine[pos:posEnd]
	}
	return len(tokens)
}

// parseSeconds parses a nonnegative decimal time exactly.
func parseSeconds(token []byte) (*big.Rat, error) {
	// SetString retains no reference to its argument, so the unsafe
	// conversion is fine here.
	t, ok := new(big.Rat).SetString(gunsafe.BytesToString(token))
	if !ok {
		return nil, errors.Errorf("invalid time %q", token)
	}
	if t.Sign() < 0 {
		return nil, errors.Errorf("negative time %q", token)
	}
	return t, nil
}

// toSamples converts seconds to a whole number of samples.
func toSamples(seconds *big.Rat, sampleRate int) (interval.PosType, error) {
	samples := new(big.Rat).Mul(seconds, big.NewRat(int64(sampleRate), 1))
	if !samples.IsInt() {
		return 0, errors.Errorf("time %s is not a whole number of samples at %d Hz", seconds.FloatString(6), sampleRate)
	}
	if !samples.Num().IsInt64() {
		return 0, errors.Errorf("time %s overflows", seconds.FloatString(6))
	}
	return interval.PosType(samples.Num().Int64()), nil
}

// parseSegment converts the begin and duration tokens of a line into a
// sample range.
func parseSegment(beginToken, durationToken []byte, sampleRate int) (iv interval.Interval, err error) {
	var begin, duration *big.Rat
	if begin, err = parseSeconds(beginToken); err != nil {
		return
	}
	if duration, err = parseSeconds(durationToken); err != nil {
		return
	}
	if iv.Start, err = toSamples(begin, sampleRate); err != nil {
		return
	}
	iv.End, err = toSamples(new(big.Rat).Add(begin, duration), sampleRate)
	return
}

// Read loads the segments of an RTTM stream into masks.
func Read(reader io.Reader, opts Opts) (Masks, error) {
	if opts.SampleRate <= 0 {
		return nil, errors.Errorf("rttm.Read: invalid sample rate %d", opts.SampleRate)
	}
	scanner := bufio.NewScanner(reader)
	masks := Masks{}
	var tokens [nField][]byte
	lineIdx := 0
	nSegment := 0
	for scanner.Scan() {
		lineIdx++
		curLine := scanner.Bytes()
		nToken := getTokens(tokens[:], curLine)
		if nToken == 0 {
			continue
		}
		if nToken <= nameField {
			return nil, errors.Errorf("rttm.Read: line %d has fewer tokens than expected", lineIdx)
		}
		if typ := gunsafe.BytesToString(tokens[typeField]); typ != "SPEAKER" {
			return nil, errors.Errorf("rttm.Read: unsupported segment type %q on line %d", typ, lineIdx)
		}
		iv, err := parseSegment(tokens[beginField], tokens[durationField], opts.SampleRate)
		if err != nil {
			return nil, errors.Wrapf(err, "rttm.Read: line %d", lineIdx)
		}
		// Map keys must not alias the scanner buffer, so these are real copies.
		fileID := string(tokens[fileIDField])
		speaker := string(tokens[nameField])
		m := masks.getOrCreate(fileID, speaker, opts.Length)
		if err := m.Set(interval.Slice(iv.Start, iv.End), mask.True); err != nil {
			return nil, errors.Wrapf(err, "rttm.Read: line %d", lineIdx)
		}
		nSegment++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Debug.Printf("RTTM loaded, %d segment(s) from %d recording(s).", nSegment, len(masks))
	return masks, nil
}
