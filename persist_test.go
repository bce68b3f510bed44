package fcl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpcpool/fcl/bigarray"
	"github.com/rpcpool/fcl/varint"
)

// Invariant 3: serialize -> deserialize recovers the same content.
func TestPersistenceRoundTrip(t *testing.T) {
	arrays := [][]uint16{{1, 2, 3}, {1, 2, 3, 4}, {9}, {}, {9, 9, 9}}
	l, err := BuildUnsignedShortListFromSlice(2, arrays)
	require.NoError(t, err)

	data, err := l.MarshalBinary()
	require.NoError(t, err)

	loaded, err := LoadUnsignedShortList(data)
	require.NoError(t, err)

	require.Equal(t, l.Len(), loaded.Len())
	require.Equal(t, l.Ratio(), loaded.Ratio())
	for i, a := range arrays {
		got, err := loaded.Get(uint32(i))
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
}

// Invariant 8: the rebuilt index has ceil(n/ratio) entries, each
// pointing at a self-describing anchor.
func TestRebuildIndexShape(t *testing.T) {
	arrays := make([][]int32, 0, 13)
	for i := 0; i < 13; i++ {
		arrays = append(arrays, []int32{int32(i), int32(i) + 1})
	}
	l, err := BuildIntListFromSlice(4, arrays)
	require.NoError(t, err)

	data, err := l.MarshalBinary()
	require.NoError(t, err)
	loaded, err := LoadIntList(data)
	require.NoError(t, err)

	assert.Equal(t, 4, len(loaded.index)) // ceil(13/4) == 4
	for block, pos := range loaded.index {
		length, n, err := loaded.readVarint(pos)
		require.NoError(t, err)
		arr, err := loaded.Get(uint32(block) * loaded.ratio)
		require.NoError(t, err)
		assert.Equal(t, uint32(len(arr)), length)
		assert.True(t, n > 0)
	}
}

// Invariant 9: building the same input with the same ratio is
// deterministic at the byte level.
func TestBuildIsDeterministic(t *testing.T) {
	arrays := [][]int8{bytesOf("alpha"), bytesOf("album"), bytesOf("alpine")}
	a, err := BuildByteListFromSlice(3, arrays)
	require.NoError(t, err)
	b, err := BuildByteListFromSlice(3, arrays)
	require.NoError(t, err)

	aBuf := make([]int8, a.buffer.Len())
	a.buffer.CopyOut(aBuf, 0)
	bBuf := make([]int8, b.buffer.Len())
	b.buffer.CopyOut(bBuf, 0)
	assert.Equal(t, aBuf, bBuf)

	aBytes, err := a.MarshalBinary()
	require.NoError(t, err)
	bBytes, err := b.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, aBytes, bBytes)
}

func TestLoadRejectsBadMagic(t *testing.T) {
	l, err := BuildByteListFromSlice(2, [][]int8{{1, 2}})
	require.NoError(t, err)
	data, err := l.MarshalBinary()
	require.NoError(t, err)
	data[0] ^= 0xFF
	_, err = LoadByteList(data)
	assert.ErrorIs(t, err, ErrDataCorruption)
}

func TestLoadRejectsChecksumMismatch(t *testing.T) {
	l, err := BuildByteListFromSlice(2, [][]int8{{1, 2, 3}})
	require.NoError(t, err)
	data, err := l.MarshalBinary()
	require.NoError(t, err)
	data[len(data)-1] ^= 0xFF
	_, err = LoadByteList(data)
	assert.ErrorIs(t, err, ErrDataCorruption)
}

func TestLoadRejectsWidthMismatch(t *testing.T) {
	l, err := BuildByteListFromSlice(2, [][]int8{{1, 2, 3}})
	require.NoError(t, err)
	data, err := l.MarshalBinary()
	require.NoError(t, err)
	_, err = Load[int16](varint.Int16Codec{}, data)
	assert.ErrorIs(t, err, ErrDataCorruption)
}

func TestLoadRejectsTruncatedData(t *testing.T) {
	l, err := BuildByteListFromSlice(2, [][]int8{{1, 2, 3}})
	require.NoError(t, err)
	data, err := l.MarshalBinary()
	require.NoError(t, err)
	_, err = LoadByteList(data[:len(data)-2])
	assert.ErrorIs(t, err, ErrDataCorruption)
}

func TestFromBufferRejectsBadRatio(t *testing.T) {
	_, err := FromBuffer[int8](varint.Int8Codec{}, 0, 0, bigarray.New[int8]())
	assert.ErrorIs(t, err, ErrInvalidRatio)
}
