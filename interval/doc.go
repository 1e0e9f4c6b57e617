// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*Package interval implements interval-union arithmetic over half-open integer
  ranges [start, end), as used by activity masks over very long sample
  sequences.
  (Note the 'union'.  Overlapping and touching intervals are merged, not
  tracked separately.)
  It assumes every position fits in a PosType.  Raw interval lists may be
  unsorted, overlapping, or even empty; Normalize and UnionOf turn them into the
  unique sorted, disjoint, non-adjacent form.
*/
package interval
