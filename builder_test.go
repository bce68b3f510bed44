package fcl

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpcpool/fcl/varint"
)

func TestCommonPrefixLen(t *testing.T) {
	assert.Equal(t, uint32(3), commonPrefixLen([]int8{1, 2, 3, 4}, []int8{1, 2, 3, 9}))
	assert.Equal(t, uint32(0), commonPrefixLen([]int8{1}, []int8{2}))
	assert.Equal(t, uint32(2), commonPrefixLen([]int8{1, 2}, []int8{1, 2, 3}))
	assert.Equal(t, uint32(0), commonPrefixLen(nil, []int8{1}))
}

func TestBuilderAddThenBuildMatchesInput(t *testing.T) {
	b, err := NewBuilder[int32](varint.Int32Codec{}, 3)
	require.NoError(t, err)

	arrays := [][]int32{{1, 2, 3}, {1, 2, 3, 4}, {1, 9}, {9, 9}, {}}
	for _, a := range arrays {
		require.NoError(t, b.Add(a))
	}
	l, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, uint32(len(arrays)), l.Len())
	for i, a := range arrays {
		got, err := l.Get(uint32(i))
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
}

// A caller-reused array buffer must not corrupt the builder's own
// notion of "the previous array" used for prefix comparison.
func TestBuilderOwnsItsPrefixState(t *testing.T) {
	b, err := NewBuilder[int8](varint.Int8Codec{}, 4)
	require.NoError(t, err)

	shared := make([]int8, 4)
	copy(shared, []int8{1, 2, 3, 4})
	require.NoError(t, b.Add(shared))

	copy(shared, []int8{1, 2, 9, 9})
	require.NoError(t, b.Add(shared))

	copy(shared, []int8{5, 5, 5, 5})
	require.NoError(t, b.Add(shared))

	l, err := b.Build()
	require.NoError(t, err)

	got0, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, []int8{1, 2, 3, 4}, got0)

	got1, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, []int8{1, 2, 9, 9}, got1)

	got2, err := l.Get(2)
	require.NoError(t, err)
	assert.Equal(t, []int8{5, 5, 5, 5}, got2)
}

func TestBuildContextHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	seen := 0
	seq := func(yield func([]int8) bool) {
		for i := 0; i < 10; i++ {
			if i == 3 {
				cancel()
			}
			seen++
			if !yield([]int8{int8(i)}) {
				return
			}
		}
	}
	_, err := BuildContext[int8](ctx, varint.Int8Codec{}, 2, seq)
	require.True(t, errors.Is(err, context.Canceled))
	assert.LessOrEqual(t, seen, 5)
}
