package interval

import (
	"math"
	"sort"
)

// This file includes support datatypes and functions for representing an
// interval-union as a []PosType containing a sorted sequence of
// interval-endpoints, and iterating over the intervals.
//
// For example, given the intervals
//   [5, 15)
//   [7, 17)
//   [17, 19)
//   [20, 25)
// the interval-union would be
//   [5, 19) U [20, 25)
// so the sorted sequence of endpoints would be
//   {5, 19, 20, 25}.
//
// UnionScanner can be used to iterate over these positions as follows:
//   us := NewUnionScanner(Union{5, 19, 20, 25})
//   var start, end PosType
//   for us.Scan(&start, &end, 22) {
//     fmt.Printf("[%d, %d) ", start, end)
//   }
// This prints "[5, 19) [20, 22) ".  A second loop with limit 30 picks up where
// we left off and prints "[22, 25) ".
//
// NewUnionScannerAt starts the iteration at an arbitrary position instead of
// the first interval; this is how range queries against a mask are answered.

// PosType is the type used to represent interval coordinates.  Sample-level
// masks over long recordings overflow int32 quickly, so this is 64 bits wide.
type PosType int64

// PosTypeMax is the maximum value that can be represented by a PosType.
const PosTypeMax = math.MaxInt64

// UnknownLength is the domain length of a mask whose total size is not known.
// Operations which need a bound (open-ended slices, Len) fail with
// ErrUnknownLength in that case.
const UnknownLength = PosType(-1)

// SearchPosTypes returns the index of x in a[], or the position where x would
// be inserted if x isn't in a (this could be len(a)).  It's exactly the same
// as sort.SearchInts(), except for PosType.
func SearchPosTypes(a []PosType, x PosType) EndpointIndex {
	return EndpointIndex(sort.Search(len(a), func(i int) bool { return a[i] >= x }))
}

// ExpsearchPosType performs "exponential search"
// (https://en.wikipedia.org/wiki/Exponential_search ), checking a[idx], then
// a[idx + 1], then a[idx + 3], then a[idx + 7], etc., and finishing with
// binary search once it's either found an element larger than the target or
// has hit the end of the slice.  It's usually a better choice than
// SearchPosTypes when iterating.
func ExpsearchPosType(a []PosType, x PosType, idx EndpointIndex) EndpointIndex {
	nextIncr := EndpointIndex(1)
	startIdx := idx
	endIdx := EndpointIndex(len(a))
	for idx < endIdx {
		if a[idx] >= x {
			endIdx = idx
			break
		}
		startIdx = idx + 1
		idx += nextIncr
		nextIncr *= 2
	}
	// Inlined sort.Search; startIdx is usually equal to endIdx here.
	for startIdx < endIdx {
		midIdx := EndpointIndex(uint(startIdx+endIdx) >> 1)
		if a[midIdx] >= x {
			endIdx = midIdx
		} else {
			startIdx = midIdx + 1
		}
	}
	return startIdx
}

// EndpointIndex is intended to represent the result of
// SearchPosTypes(endpoints, pos+1).
// NOTE THE "+1"!  This is necessary to get SearchPosTypes to line up with our
// usual left-closed right-open intervals.
type EndpointIndex int

// NewEndpointIndex returns an EndpointIndex initialized to
// SearchPosTypes(endpoints, pos+1).
func NewEndpointIndex(pos PosType, endpoints []PosType) EndpointIndex {
	return SearchPosTypes(endpoints, pos+1)
}

// Contained returns whether we're inside an interval.
func (ei EndpointIndex) Contained() bool {
	return ei&1 != 0
}

// Finished returns whether we're past all the intervals.
func (ei EndpointIndex) Finished(endpoints []PosType) bool {
	return ei >= EndpointIndex(len(endpoints))
}

// Begin returns:
// - the index for the beginning of the current interval, if we're inside an
//   interval
// - otherwise, the index for the beginning of the next interval
func (ei EndpointIndex) Begin() EndpointIndex {
	return ei & (^EndpointIndex(1))
}

// Update updates the EndpointIndex to refer to newPos, which cannot be smaller
// than the previous position referred to by this EndpointIndex.  It is
// substantially faster than NewEndpointIndex when the position is increasing
// slowly.
func (ei *EndpointIndex) Update(newPos PosType, endpoints []PosType) {
	*ei = ExpsearchPosType(endpoints, newPos+1, *ei)
}

// UnionScanner supports iteration over an interval-union.
// Invariants:
//   endpointIdx is the index of the end of the interval containing pos
//   pos is either contained in an interval, or is PosTypeMax
type UnionScanner struct {
	endpoints   []PosType
	pos         PosType
	endpointIdx EndpointIndex
}

// NewUnionScanner returns a UnionScanner initialized to the first interval.
func NewUnionScanner(endpoints []PosType) UnionScanner {
	startPos := PosType(PosTypeMax)
	startEndpointIdx := EndpointIndex(0)
	// May as well make this not crash when there are no intervals.
	if len(endpoints) >= 1 {
		startPos = endpoints[0]
		startEndpointIdx = 1
	}
	return UnionScanner{
		endpoints:   endpoints,
		pos:         startPos,
		endpointIdx: startEndpointIdx,
	}
}

// NewUnionScannerAt returns a UnionScanner initialized to the first
// within-union position >= pos.
func NewUnionScannerAt(endpoints []PosType, pos PosType) UnionScanner {
	return newUnionScannerAtIndex(endpoints, pos, NewEndpointIndex(pos, endpoints))
}

// newUnionScannerAtIndex is NewUnionScannerAt with a precomputed
// ei == SearchPosTypes(endpoints, pos+1).
func newUnionScannerAtIndex(endpoints []PosType, pos PosType, ei EndpointIndex) UnionScanner {
	if ei.Contained() {
		return UnionScanner{
			endpoints:   endpoints,
			pos:         pos,
			endpointIdx: ei,
		}
	}
	if ei.Finished(endpoints) {
		return UnionScanner{
			endpoints:   endpoints,
			pos:         PosTypeMax,
			endpointIdx: ei,
		}
	}
	return UnionScanner{
		endpoints:   endpoints,
		pos:         endpoints[ei],
		endpointIdx: ei + 1,
	}
}

// Pos returns the next position to be iterated over, or PosTypeMax if there
// aren't any.
func (us *UnionScanner) Pos() PosType {
	return us.pos
}

// Scan is written so that the following loop can be used to iterate over all
// within-interval positions up to (and not including) limit:
//   for us.Scan(&start, &end, limit) {
//     for pos := start; pos < end; pos++ {
//       // ...do stuff with pos...
//     }
//   }
func (us *UnionScanner) Scan(start *PosType, end *PosType, limit PosType) bool {
	if us.pos >= limit {
		return false
	}
	*start = us.pos
	intervalEnd := us.endpoints[us.endpointIdx]
	if intervalEnd > limit {
		us.pos = limit
		*end = limit
		return true
	}
	*end = intervalEnd
	us.endpointIdx++
	if us.endpointIdx.Finished(us.endpoints) {
		us.pos = PosTypeMax
	} else {
		us.pos = us.endpoints[us.endpointIdx]
		us.endpointIdx++
	}
	return true
}
