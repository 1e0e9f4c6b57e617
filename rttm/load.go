// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rttm

import (
	"context"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/klauspost/compress/gzip"
)

// Load is a wrapper for Read that takes a path instead of an io.Reader.  Any
// path supported by github.com/grailbio/base/file works; files ending in .gz
// are decompressed.
func Load(ctx context.Context, path string, opts Opts) (masks Masks, err error) {
	var infile file.File
	if infile, err = file.Open(ctx, path); err != nil {
		return nil, errors.E(err, "rttm.Load:", path)
	}
	defer func() {
		if cerr := infile.Close(ctx); cerr != nil && err == nil {
			err = errors.E(cerr, "rttm.Load:", path)
		}
	}()
	reader := io.Reader(infile.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		var gz *gzip.Reader
		if gz, err = gzip.NewReader(reader); err != nil {
			return nil, errors.E(err, "rttm.Load:", path)
		}
		defer gz.Close() // nolint: errcheck
		reader = gz
	}
	if masks, err = Read(reader, opts); err != nil {
		return nil, errors.E(err, path)
	}
	return masks, nil
}
