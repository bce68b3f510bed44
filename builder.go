package fcl

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/rpcpool/fcl/bigarray"
	"github.com/rpcpool/fcl/varint"
)

// Builder consumes arrays in order and produces an immutable
// FrontCodedList. A Builder is single-use: once Build returns, further
// calls to Add are meaningless (the returned list shares no mutable
// state with the builder, but nothing stops a caller from continuing
// to add — doing so simply has no effect on the list already handed
// out).
type Builder[E varint.Element] struct {
	ratio  uint32
	codec  varint.Codec[E]
	buffer *bigarray.BigArray[E]
	index  []int64
	n      uint32

	prev    []E // previous array, owned copy, for prefix comparison
	scratch []E // reusable record-encoding scratch
}

// NewBuilder returns a Builder that will front-code arrays of element
// type E into blocks of the given ratio (one anchor every ratio
// arrays). ratio must be >= 1.
func NewBuilder[E varint.Element](codec varint.Codec[E], ratio uint32) (*Builder[E], error) {
	if ratio < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRatio, ratio)
	}
	return &Builder[E]{
		ratio:  ratio,
		codec:  codec,
		buffer: bigarray.New[E](),
	}, nil
}

// Add appends the next array in logical order.
func (b *Builder[E]) Add(arr []E) error {
	i := b.n
	if i%b.ratio == 0 {
		block := int64(i / b.ratio)
		for int64(len(b.index)) <= block {
			b.index = append(b.index, 0)
		}
		b.index[block] = b.buffer.Len()
		b.writeAnchor(arr)
	} else {
		common := commonPrefixLen(b.prev, arr)
		b.writeDelta(arr, common)
	}
	b.prev = append(b.prev[:0], arr...)
	b.n++
	return nil
}

// Build finalizes the builder into an immutable FrontCodedList.
func (b *Builder[E]) Build() (*FrontCodedList[E], error) {
	index := make([]int64, len(b.index))
	copy(index, b.index)
	slog.Debug("front-coded list built",
		"count", b.n, "ratio", b.ratio,
		"blocks", len(index), "bufferElems", b.buffer.Len())
	l := &FrontCodedList[E]{
		n:      b.n,
		ratio:  b.ratio,
		codec:  b.codec,
		buffer: b.buffer,
		index:  index,
	}
	// The list now owns the buffer; later Add calls write elsewhere.
	b.buffer = bigarray.New[E]()
	return l, nil
}

func (b *Builder[E]) scratchOfLen(n int) []E {
	if cap(b.scratch) < n {
		b.scratch = make([]E, n)
	}
	return b.scratch[:n]
}

// writeAnchor writes a self-contained record: length, then every
// element of arr.
func (b *Builder[E]) writeAnchor(arr []E) {
	length := uint32(len(arr))
	headerLen := b.codec.Count(length)
	rec := b.scratchOfLen(headerLen + len(arr))
	b.codec.Write(rec, 0, length)
	copy(rec[headerLen:], arr)
	b.buffer.Append(rec)
}

// writeDelta writes a record relative to the previous array: suffix
// length, common-prefix length, then the unshared suffix elements.
func (b *Builder[E]) writeDelta(arr []E, common uint32) {
	suffixLen := uint32(len(arr)) - common
	n1 := b.codec.Count(suffixLen)
	n2 := b.codec.Count(common)
	rec := b.scratchOfLen(n1 + n2 + int(suffixLen))
	b.codec.Write(rec, 0, suffixLen)
	b.codec.Write(rec, n1, common)
	copy(rec[n1+n2:], arr[int(common):])
	b.buffer.Append(rec)
}

// commonPrefixLen returns the length of the longest common prefix of a
// and b: the greedy maximum, stopping at the first mismatch or at the
// shorter array's end.
func commonPrefixLen[E comparable](a, b []E) uint32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return uint32(i)
}

// BuildFromSlice builds a FrontCodedList from a finite collection of
// arrays, already in memory.
func BuildFromSlice[E varint.Element](codec varint.Codec[E], ratio uint32, arrays [][]E) (*FrontCodedList[E], error) {
	b, err := NewBuilder(codec, ratio)
	if err != nil {
		return nil, err
	}
	for _, a := range arrays {
		if err := b.Add(a); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// BuildFromSeq builds a FrontCodedList from a producing iterator over
// arrays.
func BuildFromSeq[E varint.Element](codec varint.Codec[E], ratio uint32, seq iter.Seq[[]E]) (*FrontCodedList[E], error) {
	return BuildContext(context.Background(), codec, ratio, seq)
}

// BuildContext is BuildFromSeq with a cooperative abort signal: ctx is
// checked between arrays, and a canceled context discards the
// partially-built structure and returns ctx.Err(), mirroring how this
// package's teacher cancels its own CPU-intensive construction phase.
// This adds no concurrency — the builder is still driven by one
// goroutine, one array at a time.
func BuildContext[E varint.Element](ctx context.Context, codec varint.Codec[E], ratio uint32, seq iter.Seq[[]E]) (*FrontCodedList[E], error) {
	b, err := NewBuilder(codec, ratio)
	if err != nil {
		return nil, err
	}
	for arr := range seq {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := b.Add(arr); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
