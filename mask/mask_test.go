package mask

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/grailbio/activity/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, m *Mask, item interval.Item, a Assignment) {
	t.Helper()
	require.NoError(t, m.Set(item, a))
}

func mustGet(t *testing.T, m *Mask, item interval.Item) []bool {
	t.Helper()
	dense, err := m.Get(item)
	require.NoError(t, err)
	return dense
}

func TestSetScenario(t *testing.T) {
	m := Zeros(50)
	mustSet(t, m, interval.Slice(10, 15), True)
	assert.Equal(t, "10:15", m.Text())
	mustSet(t, m, interval.Slice(5, 10), True)
	assert.Equal(t, "5:15", m.Text())
	mustSet(t, m, interval.Slice(1, 4), True)
	assert.Equal(t, "1:4, 5:15", m.Text())
	mustSet(t, m, interval.Slice(15, 20), True)
	assert.Equal(t, "1:4, 5:20", m.Text())
	mustSet(t, m, interval.Slice(21, 25), True)
	assert.Equal(t, "1:4, 5:20, 21:25", m.Text())
	mustSet(t, m, interval.Slice(10, 15), True)
	assert.Equal(t, "1:4, 5:20, 21:25", m.Text())
	mustSet(t, m, interval.Slice(0, 50), True)
	mustSet(t, m, interval.Slice(0, 0), True)
	assert.Equal(t, "0:50", m.Text())
	assert.Equal(t, `Mask("0:50", length=50)`, m.String())

	assert.Equal(t, []bool{true, true, true}, mustGet(t, m, interval.Slice(3, 6)))
	mustSet(t, m, interval.Slice(3, 6), Dense([]bool{true, false, true}))
	assert.Equal(t, "0:4, 5:50", m.Text())
	assert.Equal(t, []bool{true, false, true}, mustGet(t, m, interval.Slice(3, 6)))
	mustSet(t, m, interval.Slice(10, 13), Dense([]bool{false, true, false}))
	assert.Equal(t, "0:4, 5:10, 11:12, 13:50", m.Text())
}

func TestSetClear(t *testing.T) {
	m := Zeros(50)
	mustSet(t, m, interval.All(), True)
	mustSet(t, m, interval.Slice(10, 40), False)
	assert.Equal(t, "0:10, 40:50", m.Text())
	mustSet(t, m, interval.Index(0), Int(0))
	mustSet(t, m, interval.Index(49), Int(0))
	assert.Equal(t, "1:10, 40:49", m.Text())
	mustSet(t, m, interval.Index(20), Int(1))
	assert.Equal(t, "1:10, 20:21, 40:49", m.Text())
}

func TestGet(t *testing.T) {
	m := Zeros(50)
	assert.Equal(t, make([]bool, 7), mustGet(t, m, interval.Slice(19, 26)))
	mustSet(t, m, interval.Slice(10, 20), True)
	mustSet(t, m, interval.Slice(25, 30), True)
	assert.Equal(t, "10:20, 25:30", m.Text())
	assert.Equal(t,
		[]bool{true, false, false, false, false, false, true},
		mustGet(t, m, interval.Slice(19, 26)))
	assert.Equal(t, []bool{true}, mustGet(t, m, interval.Index(10)))
	assert.Equal(t, []bool{false}, mustGet(t, m, interval.Index(20)))
	assert.Len(t, mustGet(t, m, interval.All()), 50)
	assert.Len(t, mustGet(t, m, interval.Slice(30, 20)), 0)

	ok, err := m.Contains(29)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = m.Contains(30)
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = m.Contains(50)
	var ierr *interval.IndexError
	assert.True(t, errors.As(err, &ierr))
}

func TestFromText(t *testing.T) {
	m, err := FromText("1:4, 5:20, 21:25", 50)
	require.NoError(t, err)
	assert.Equal(t, "1:4, 5:20, 21:25", m.Text())
	assert.Equal(t, `Mask("1:4, 5:20, 21:25", length=50)`, m.String())

	m, err = FromText("1:4,", 50)
	require.NoError(t, err)
	assert.Equal(t, "1:4", m.Text())

	m, err = FromText("0:142464640,", 242464640)
	require.NoError(t, err)
	assert.Equal(t, "0:142464640", m.Text())

	m, err = FromText("21:25, 1:4, 3:10", 50)
	require.NoError(t, err)
	assert.Equal(t, "1:10, 21:25", m.Text())

	m, err = FromText("", 10)
	require.NoError(t, err)
	assert.Equal(t, "", m.Text())
	assert.Equal(t, make([]bool, 10), mustGet(t, m, interval.Slice(0, 10)))

	_, err = FromText("1:4, oops", 50)
	var perr *interval.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "oops", perr.Token)

	_, err = FromText("1:4, 45:51", 50)
	var ierr *interval.IndexError
	require.True(t, errors.As(err, &ierr))
	assert.Equal(t, interval.PosType(51), ierr.Index)
}

func TestFromDense(t *testing.T) {
	m := FromDense([]bool{true, true, false, true, false, false, true, true, false})
	assert.Equal(t, `Mask("0:2, 3:4, 6:8", length=9)`, m.String())
	for _, d := range [][]bool{
		{true, true, true, true},
		{false, false, false, false},
		{false, true, true, false},
		{true, false, false, true},
		{},
	} {
		assert.Equal(t, d, mustGet(t, FromDense(d), interval.All()))
	}
}

func TestFromDenseRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 200; iter++ {
		d := randomDense(r, r.Intn(300))
		m := FromDense(d)
		assert.Equal(t, d, mustGet(t, m, interval.Slice(0, interval.PosType(len(d)))))
		var count interval.PosType
		for _, v := range d {
			if v {
				count++
			}
		}
		assert.Equal(t, count, m.Count())
	}
}

func randomDense(r *rand.Rand, n int) []bool {
	d := make([]bool, n)
	// Runs make transitions at both ends more likely than independent bits.
	v := r.Intn(2) == 0
	for i := range d {
		if r.Intn(5) == 0 {
			v = !v
		}
		d[i] = v
	}
	return d
}

func TestUnknownLength(t *testing.T) {
	m := Zeros(interval.UnknownLength)
	assert.Equal(t, `Mask("", length=unknown)`, m.String())
	mustSet(t, m, interval.Slice(2, 3), True)
	assert.Equal(t, `Mask("2:3", length=unknown)`, m.String())
	assert.Equal(t, []bool{false, false, true, false, false}, mustGet(t, m, interval.Slice(0, 5)))
	assert.Len(t, mustGet(t, m, interval.Slice(0, 10)), 10)

	_, err := m.Get(interval.All())
	assert.True(t, errors.Is(err, interval.ErrUnknownLength))
	_, err = m.Len()
	assert.True(t, errors.Is(err, interval.ErrUnknownLength))
	_, err = m.Invert()
	assert.True(t, errors.Is(err, interval.ErrUnknownLength))
	assert.Equal(t, interval.UnknownLength, m.Length())

	mustSet(t, m, interval.Index(1000000000), True)
	ok, err := m.Contains(1000000000)
	require.NoError(t, err)
	assert.True(t, ok)

	n, err := Zeros(7).Len()
	require.NoError(t, err)
	assert.Equal(t, interval.PosType(7), n)
}

func TestSetErrorsLeaveMaskUnchanged(t *testing.T) {
	m, err := FromText("1:4, 10:20", 30)
	require.NoError(t, err)
	mustSet(t, m, interval.Slice(22, 24), True) // leave a raw append pending

	var verr *ValueError
	require.True(t, errors.As(m.Set(interval.Slice(0, 5), Int(2)), &verr))
	assert.Equal(t, 2, verr.Value)

	var serr *ShapeError
	require.True(t, errors.As(m.Set(interval.Slice(0, 5), Dense([]bool{true})), &serr))
	assert.Equal(t, interval.PosType(1), serr.A)
	assert.Equal(t, interval.PosType(5), serr.B)

	var ierr *interval.IndexError
	require.True(t, errors.As(m.Set(interval.Slice(25, 31), False), &ierr))
	require.True(t, errors.As(m.Set(interval.Index(-1), True), &ierr))
	assert.True(t, errors.Is(m.Set(interval.All().WithStep(2), True), interval.ErrUnsupportedStep))
	require.True(t, errors.As(m.AddIntervals([]interval.Interval{{Start: 0, End: 1}, {Start: 29, End: 31}}), &ierr))

	assert.Equal(t, "1:4, 10:20, 22:24", m.Text())
}

func TestIdempotentSetTrue(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for iter := 0; iter < 100; iter++ {
		base := FromDense(randomDense(r, 100))
		start := interval.PosType(r.Intn(100))
		item := interval.Slice(start, start+interval.PosType(r.Intn(int(100-start)+1)))
		once, twice := base.Clone(), base.Clone()
		mustSet(t, once, item, True)
		mustSet(t, twice, item, True)
		mustSet(t, twice, item, True)
		assert.Equal(t, once.Intervals(), twice.Intervals())
	}
}

// TestSetMatchesDense applies random operations to both a mask and a dense
// array and checks that they always agree.
func TestSetMatchesDense(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	const n = 120
	for iter := 0; iter < 50; iter++ {
		m := Zeros(n)
		dense := make([]bool, n)
		for op := 0; op < 40; op++ {
			start := r.Intn(n + 1)
			stop := start + r.Intn(n-start+1)
			item := interval.Slice(interval.PosType(start), interval.PosType(stop))
			switch r.Intn(4) {
			case 0:
				mustSet(t, m, item, True)
				for i := start; i < stop; i++ {
					dense[i] = true
				}
			case 1:
				mustSet(t, m, item, False)
				for i := start; i < stop; i++ {
					dense[i] = false
				}
			case 2:
				pattern := randomDense(r, stop-start)
				mustSet(t, m, item, Dense(pattern))
				copy(dense[start:stop], pattern)
			case 3:
				assert.Equal(t, dense[start:stop], mustGet(t, m, item))
			}
		}
		assert.Equal(t, dense, mustGet(t, m, interval.All()))
		assert.Equal(t, FromDense(dense).Text(), m.Text())
	}
}

func TestClearRestore(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for iter := 0; iter < 100; iter++ {
		m := FromDense(randomDense(r, 80))
		mustSet(t, m, interval.Slice(5, 9), True) // unnormalized state
		before := m.Clone()
		start := interval.PosType(r.Intn(80))
		item := interval.Slice(start, start+interval.PosType(r.Intn(int(80-start)+1)))
		mustSet(t, m, item, Dense(mustGet(t, m, item)))
		assert.True(t, before.Equal(m), "%v vs. %v", before, m)
	}
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for iter := 0; iter < 100; iter++ {
		m := FromDense(randomDense(r, 200))
		parsed, err := FromText(m.Text(), m.Length())
		require.NoError(t, err)
		assert.True(t, m.Equal(parsed))

		text, err := m.MarshalText()
		require.NoError(t, err)
		unmarshaled := Zeros(200)
		require.NoError(t, unmarshaled.UnmarshalText(text))
		assert.True(t, m.Equal(unmarshaled))
	}
	var zero Mask
	assert.Error(t, zero.UnmarshalText([]byte("0:1")))
	assert.NoError(t, zero.UnmarshalText([]byte("")))
}

func TestUnion(t *testing.T) {
	a, err := FromText("0:5, 20:25", 50)
	require.NoError(t, err)
	b, err := FromText("5:10, 30:31", 50)
	require.NoError(t, err)
	u, err := a.Union(b)
	require.NoError(t, err)
	assert.Equal(t, "0:10, 20:25, 30:31", u.Text())
	// Operands are untouched.
	assert.Equal(t, "0:5, 20:25", a.Text())
	assert.Equal(t, "5:10, 30:31", b.Text())

	var serr *ShapeError
	_, err = a.Union(Zeros(49))
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, interval.PosType(50), serr.A)
	assert.Equal(t, interval.PosType(49), serr.B)
	_, err = a.Union(Zeros(interval.UnknownLength))
	require.True(t, errors.As(err, &serr))

	unknown, err := Zeros(interval.UnknownLength).Union(Zeros(-5))
	require.NoError(t, err)
	assert.Equal(t, "", unknown.Text())
}

func TestUnionLaws(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	union := func(a, b *Mask) *Mask {
		u, err := a.Union(b)
		require.NoError(t, err)
		return u
	}
	for iter := 0; iter < 100; iter++ {
		a := FromDense(randomDense(r, 64))
		b := FromDense(randomDense(r, 64))
		c := FromDense(randomDense(r, 64))
		mustSet(t, c, interval.Slice(3, 7), True)
		assert.True(t, union(a, b).Equal(union(b, a)))
		assert.True(t, union(union(a, b), c).Equal(union(a, union(b, c))))
		assert.True(t, union(a, a).Equal(a))
	}
}

func TestIntersectInvert(t *testing.T) {
	a, err := FromText("0:10, 20:30", 40)
	require.NoError(t, err)
	b, err := FromText("5:25", 40)
	require.NoError(t, err)
	both, err := a.Intersect(b)
	require.NoError(t, err)
	assert.Equal(t, "5:10, 20:25", both.Text())

	inv, err := a.Invert()
	require.NoError(t, err)
	assert.Equal(t, "10:20, 30:40", inv.Text())
	assert.Equal(t, interval.PosType(20), inv.Count())

	_, err = a.Intersect(Zeros(41))
	var serr *ShapeError
	assert.True(t, errors.As(err, &serr))
}

func TestClone(t *testing.T) {
	m := Zeros(20)
	mustSet(t, m, interval.Slice(2, 4), True)
	c := m.Clone()
	mustSet(t, c, interval.Slice(10, 12), True)
	assert.Equal(t, "2:4", m.Text())
	assert.Equal(t, "2:4, 10:12", c.Text())
	n := c.Clone()
	mustSet(t, n, interval.Index(3), False)
	assert.Equal(t, "2:4, 10:12", c.Text())
	assert.Equal(t, "2:3, 10:12", n.Text())
	assert.False(t, n.Equal(c))
	assert.False(t, Zeros(5).Equal(Zeros(6)))
}
