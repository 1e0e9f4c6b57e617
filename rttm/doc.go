// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*Package rttm loads speaker segmentations in RTTM format into activity masks.

  Each line of an RTTM file describes one segment:
    <type> <file-id> <channel-id> <begin-time> <duration> <ortho> <stype> <name> <conf>
  e.g.
    SPEAKER S02_U06.ENH 1   40.60    3.22 <NA> <NA> P05 <NA>
  Only SPEAKER lines are supported.  Times are in seconds; they are converted
  to sample indices at Opts.SampleRate and must land on whole samples.  The
  segments of each (file-id, name) pair are collected into one mask.
*/
package rttm
