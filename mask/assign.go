package mask

type assignmentKind uint8

const (
	scalarAssignment assignmentKind = iota
	denseAssignment
)

// Assignment is the right-hand side of Mask.Set: either a scalar written to
// every position of the range, or a dense pattern covering the range exactly.
// The zero Assignment is the scalar 0.
type Assignment struct {
	kind  assignmentKind
	value int
	dense []bool
}

var (
	// True sets every position of a range.
	True = Scalar(true)
	// False clears every position of a range.
	False = Scalar(false)
)

// Scalar returns a scalar assignment of v.
func Scalar(v bool) Assignment {
	if v {
		return Assignment{value: 1}
	}
	return Assignment{}
}

// Int returns a scalar assignment of v, which must be 0 or 1 by the time it
// reaches Set.
func Int(v int) Assignment {
	return Assignment{value: v}
}

// Dense returns an assignment of a dense pattern.  len(values) must equal the
// length of the range it is assigned to.
func Dense(values []bool) Assignment {
	return Assignment{kind: denseAssignment, dense: values}
}
