package fcl

import (
	"fmt"

	"github.com/rpcpool/fcl/bigarray"
	"github.com/rpcpool/fcl/varint"
)

// FromBuffer reconstructs a FrontCodedList from its persisted parts —
// element count, ratio and the raw element buffer — none of which
// includes the block index. The index is never serialized: it is
// cheap to recompute and doing so keeps the wire format immune to any
// future change in how the index is shaped in memory.
//
// buffer must already contain the front-coded bytes in exactly the
// layout Build produced them in; FromBuffer does not validate that
// beyond what the walk itself trips over (a malformed buffer surfaces
// as ErrDataCorruption).
func FromBuffer[E varint.Element](codec varint.Codec[E], ratio uint32, n uint32, buffer *bigarray.BigArray[E]) (*FrontCodedList[E], error) {
	if ratio < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRatio, ratio)
	}
	index, err := rebuildIndex(buffer, codec, n, ratio)
	if err != nil {
		return nil, err
	}
	return &FrontCodedList[E]{
		n:      n,
		ratio:  ratio,
		codec:  codec,
		buffer: buffer,
		index:  index,
	}, nil
}

// rebuildIndex walks the buffer once from front to back, recording
// the offset of every anchor record, exactly mirroring the walk
// extract and recordSpan do per-lookup — the same decomposition, just
// run once over every record instead of on demand.
func rebuildIndex[E varint.Element](buffer *bigarray.BigArray[E], codec varint.Codec[E], n, ratio uint32) ([]int64, error) {
	blocks := 0
	if n > 0 {
		blocks = int((n-1)/ratio) + 1
	}
	index := make([]int64, 0, blocks)

	var pos int64
	for i := uint32(0); i < n; i++ {
		if i%ratio == 0 {
			index = append(index, pos)
			length, n1, err := readVarintAt(buffer, codec, pos)
			if err != nil {
				return nil, err
			}
			pos += n1 + int64(length)
			continue
		}
		suffixLen, n1, err := readVarintAt(buffer, codec, pos)
		if err != nil {
			return nil, err
		}
		_, n2, err := readVarintAt(buffer, codec, pos+n1)
		if err != nil {
			return nil, err
		}
		pos += n1 + n2 + int64(suffixLen)
	}
	if pos > buffer.Len() {
		return nil, fmt.Errorf("%w: rebuilt walk ran %d elements past buffer of length %d", ErrDataCorruption, pos-buffer.Len(), buffer.Len())
	}
	return index, nil
}

// readVarintAt is readVarint's standalone twin, used during index
// rebuild before a FrontCodedList (and its bound readVarint method)
// exists to call.
func readVarintAt[E varint.Element](buffer *bigarray.BigArray[E], codec varint.Codec[E], pos int64) (uint32, int64, error) {
	span := int64(codec.MaxSpan())
	if avail := buffer.Len() - pos; avail < span {
		span = avail
	}
	if span <= 0 {
		return 0, 0, fmt.Errorf("%w: varint read at %d past end of buffer (len %d)", ErrDataCorruption, pos, buffer.Len())
	}
	// The window is one element longer than any varint and zero past
	// got, so a varint cut off by the buffer's end decodes to an n
	// beyond got instead of reading out of bounds.
	var window [varint.MaxSpanBound + 1]E
	got := buffer.CopyOut(window[:span], pos)
	v, n := codec.Read(window[:], 0)
	if int64(n) > int64(got) {
		return 0, 0, fmt.Errorf("%w: truncated varint at %d", ErrDataCorruption, pos)
	}
	return v, int64(n), nil
}
