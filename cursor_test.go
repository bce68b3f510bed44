package fcl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildNames(t *testing.T, ratio uint32) *ByteList {
	t.Helper()
	arrays := [][]int8{
		bytesOf("foo"), bytesOf("foobar"), bytesOf("football"), bytesOf("fool"),
		bytesOf("fooled"), bytesOf("fond"),
	}
	l, err := BuildByteListFromSlice(ratio, arrays)
	require.NoError(t, err)
	return l
}

// Invariant 4: a full forward cursor scan matches random access.
func TestCursorForwardMatchesRandomAccess(t *testing.T) {
	l := buildNames(t, 2)
	cur, err := l.Iterator(0)
	require.NoError(t, err)
	for i := uint32(0); i < l.Len(); i++ {
		assert.True(t, cur.HasNext())
		assert.Equal(t, i, cur.NextIndex())
		got, err := cur.Next()
		require.NoError(t, err)
		want, err := l.Get(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.False(t, cur.HasNext())
	_, err = cur.Next()
	assert.ErrorIs(t, err, ErrNoSuchElement)
}

// Cursor construction mid-block must fast-forward to the same place a
// scan from 0 would have reached.
func TestCursorMidBlockConstruction(t *testing.T) {
	l := buildNames(t, 3)
	cur, err := l.Iterator(2)
	require.NoError(t, err)
	got, err := cur.Next()
	require.NoError(t, err)
	want, err := l.Get(2)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCursorAtEndHasNoNext(t *testing.T) {
	l := buildNames(t, 3)
	cur, err := l.Iterator(l.Len())
	require.NoError(t, err)
	assert.False(t, cur.HasNext())
	assert.True(t, cur.HasPrevious())
}

// Design note: previous() must clear in_sync so the following next()
// falls back to a full reconstruction instead of misreading pos.
func TestCursorPreviousThenNextResynchronises(t *testing.T) {
	l := buildNames(t, 2)
	cur, err := l.Iterator(0)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := cur.Next()
		require.NoError(t, err)
	}
	assert.Equal(t, uint32(3), cur.NextIndex())

	back, err := cur.Previous()
	require.NoError(t, err)
	want, err := l.Get(2)
	require.NoError(t, err)
	assert.Equal(t, want, back)
	assert.False(t, cur.inSync)

	fwd, err := cur.Next()
	require.NoError(t, err)
	assert.Equal(t, want, fwd)
	assert.Equal(t, uint32(3), cur.NextIndex())

	nxt, err := cur.Next()
	require.NoError(t, err)
	want3, err := l.Get(3)
	require.NoError(t, err)
	assert.Equal(t, want3, nxt)
}

// Invariant 5: next_index/previous_index track position through an
// arbitrary interleaving of forward/backward motion.
func TestCursorBidirectionalInterleaving(t *testing.T) {
	l := buildNames(t, 2)
	cur, err := l.Iterator(0)
	require.NoError(t, err)

	pos := uint32(0)
	moves := []int{1, 1, 1, -1, 1, -1, -1, 1, 1, -1, 1, 1}
	for _, m := range moves {
		if m > 0 {
			require.True(t, cur.HasNext())
			assert.Equal(t, pos, cur.NextIndex())
			got, err := cur.Next()
			require.NoError(t, err)
			want, err := l.Get(pos)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			pos++
		} else {
			require.True(t, cur.HasPrevious())
			assert.Equal(t, pos-1, cur.PreviousIndex())
			got, err := cur.Previous()
			require.NoError(t, err)
			pos--
			want, err := l.Get(pos)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}
}

func TestCursorPreviousPastStartFails(t *testing.T) {
	l := buildNames(t, 2)
	cur, err := l.Iterator(0)
	require.NoError(t, err)
	_, err = cur.Previous()
	assert.ErrorIs(t, err, ErrNoSuchElement)
}

// Ratio 1 degeneracy: every record is an anchor, so the cursor never
// takes the in-sync delta branch.
func TestCursorRatioOneDegeneracy(t *testing.T) {
	l := buildNames(t, 1)
	cur, err := l.Iterator(0)
	require.NoError(t, err)
	for i := uint32(0); i < l.Len(); i++ {
		_, err := cur.Next()
		require.NoError(t, err)
	}
}
