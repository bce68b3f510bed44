// Package fcl implements an immutable, compact, random-access list of
// fixed-width-element arrays, compressed by front coding: arrays are
// stored in the order given, every ratio-th array verbatim (an
// "anchor") and every other array as (length of its unshared suffix,
// length of its shared prefix with the predecessor, the suffix itself)
// relative to its immediate predecessor.
//
// The list never mutates after construction. Concurrent reads are
// always safe; a Cursor is not — it owns mutable scan state and must
// not be shared between goroutines.
package fcl

import (
	"fmt"

	"github.com/rpcpool/fcl/bigarray"
	"github.com/rpcpool/fcl/varint"
)

// FrontCodedList is an immutable list of arrays of element type E,
// compressed by front coding. See the package doc for the format.
type FrontCodedList[E varint.Element] struct {
	n      uint32
	ratio  uint32
	codec  varint.Codec[E]
	buffer *bigarray.BigArray[E]
	index  []int64
}

// Len returns the number of arrays in the list.
func (l *FrontCodedList[E]) Len() uint32 { return l.n }

// Ratio returns the block size: one anchor record every Ratio arrays.
func (l *FrontCodedList[E]) Ratio() uint32 { return l.ratio }

// readVarint decodes the length marker starting at buffer offset pos,
// returning the value and the number of elements it occupied. The
// window it reads is bounded by the codec's maximum possible span, so
// this never materializes more of the buffer than the header itself
// needs — the payload that follows is always copied in bulk, never
// decoded element by element.
func (l *FrontCodedList[E]) readVarint(pos int64) (uint32, int64, error) {
	return readVarintAt(l.buffer, l.codec, pos)
}

// ArrayLength returns the length of the i-th array without
// reconstructing it.
func (l *FrontCodedList[E]) ArrayLength(i uint32) (uint32, error) {
	if i >= l.n {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, l.n)
	}
	return l.arrayLength(i)
}

// arrayLength is ArrayLength without the bounds check, shared by
// ArrayLength and Get, which have already checked that i is in range.
func (l *FrontCodedList[E]) arrayLength(i uint32) (uint32, error) {
	length, _, err := l.recordSpan(i)
	return length, err
}

// recordSpan walks from the nearest anchor to record i, the same walk
// extract does while copying, and reports both the array's length and
// the buffer offset immediately past its payload — the position a
// Cursor resumes its fast path from after a fallback reconstruction.
// ArrayLength and the Cursor's fallback path both use this walk;
// rebuildIndex performs its own walk of the same record layout.
func (l *FrontCodedList[E]) recordSpan(i uint32) (length uint32, endPos int64, err error) {
	block := i / l.ratio
	delta := i % l.ratio
	pos := l.index[block]
	anchorLen, n, err := l.readVarint(pos)
	if err != nil {
		return 0, 0, err
	}
	if delta == 0 {
		return anchorLen, pos + n + int64(anchorLen), nil
	}
	pos += n + int64(anchorLen)
	var suffixLen, common uint32
	for j := uint32(0); j < delta; j++ {
		sLen, n1, err := l.readVarint(pos)
		if err != nil {
			return 0, 0, err
		}
		cLen, n2, err := l.readVarint(pos + n1)
		if err != nil {
			return 0, 0, err
		}
		suffixLen, common = sLen, cLen
		pos += n1 + n2 + int64(suffixLen)
	}
	return suffixLen + common, pos, nil
}

// Get reconstructs and returns the i-th array as a freshly allocated,
// caller-owned slice. Mutating the result never affects the list or
// any other result.
func (l *FrontCodedList[E]) Get(i uint32) ([]E, error) {
	if i >= l.n {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, l.n)
	}
	length, err := l.arrayLength(i)
	if err != nil {
		return nil, err
	}
	out := make([]E, length)
	if _, err := l.extract(i, out, 0, int(length)); err != nil {
		return nil, err
	}
	return out, nil
}

// GetInto reconstructs up to cap elements of the i-th array into
// dst[offset:offset+cap], without allocating.
//
// Let r be the return value and n = ArrayLength(i). If r >= 0, r == n
// and dst[offset:offset+r] holds the whole array. If r < 0, n == cap-r
// and dst[offset:offset+cap] holds the first cap elements of the
// array.
func (l *FrontCodedList[E]) GetInto(i uint32, dst []E, offset, cap int) (int32, error) {
	if i >= l.n {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, l.n)
	}
	if offset < 0 || cap < 0 || offset+cap > len(dst) {
		return 0, fmt.Errorf("%w: offset %d, cap %d, len(dst) %d", ErrInvalidRange, offset, cap, len(dst))
	}
	length, err := l.extract(i, dst, offset, cap)
	if err != nil {
		return 0, err
	}
	if cap >= int(length) {
		return int32(length), nil
	}
	return int32(cap) - int32(length), nil
}

// GetFull is GetInto(i, dst, 0, len(dst)).
func (l *FrontCodedList[E]) GetFull(i uint32, dst []E) (int32, error) {
	return l.GetInto(i, dst, 0, len(dst))
}

// extract reconstructs up to cap elements of array i into
// dst[offset:offset+cap] and returns array_length(i). It copies each
// element of the buffer at most once: rather than replaying every
// delta on the path from the anchor, it tracks how many leading
// elements of the final array are already known to be correct
// (written) and only (re)copies the range that turns out not to be a
// prefix of the final array after all.
func (l *FrontCodedList[E]) extract(i uint32, dst []E, offset, cap int) (uint32, error) {
	delta := i % l.ratio
	pos0 := l.index[i/l.ratio]
	anchorLen, n0, err := l.readVarint(pos0)
	if err != nil {
		return 0, err
	}
	if delta == 0 {
		written := int(anchorLen)
		if written > cap {
			written = cap
		}
		if written > 0 {
			l.buffer.CopyOut(dst[offset:offset+written], pos0+n0)
		}
		return anchorLen, nil
	}

	written := 0
	prevPos := pos0 + n0
	prevLen := int64(anchorLen)
	prevCommon := uint32(0) // anchor payload position 0 is array position 0
	var suffixLen, common uint32
	var payloadPos int64

	for j := uint32(0); j < delta; j++ {
		recPos := prevPos + prevLen
		sLen, n1, err := l.readVarint(recPos)
		if err != nil {
			return 0, err
		}
		cLen, n2, err := l.readVarint(recPos + n1)
		if err != nil {
			return 0, err
		}
		suffixLen, common = sLen, cLen
		payloadPos = recPos + n1 + n2

		effectiveCommon := int(common)
		if effectiveCommon > cap {
			effectiveCommon = cap
		}
		if effectiveCommon > written {
			// prevPos's own payload position 0 is array position
			// prevCommon, not 0, so the source offset for logical
			// position `written` has to account for that shift.
			n := effectiveCommon - written
			l.buffer.CopyOut(dst[offset+written:offset+written+n], prevPos+int64(written)-int64(prevCommon))
		}
		written = effectiveCommon

		prevPos = payloadPos
		prevLen = int64(suffixLen)
		prevCommon = common
	}

	if written < cap {
		n := int(suffixLen)
		if rem := cap - written; n > rem {
			n = rem
		}
		if n > 0 {
			// Same shift as above: payloadPos is array position
			// common, not 0.
			l.buffer.CopyOut(dst[offset+written:offset+written+n], payloadPos+int64(written)-int64(common))
		}
	}

	return suffixLen + common, nil
}

// Iterator returns a bidirectional cursor positioned to return the
// array at logical index start on its first Next call. start must be
// in [0, Len()]; start == Len() yields a cursor with no more elements
// to return going forward.
func (l *FrontCodedList[E]) Iterator(start uint32) (*Cursor[E], error) {
	if start > l.n {
		return nil, fmt.Errorf("%w: start %d, length %d", ErrIndexOutOfRange, start, l.n)
	}
	return newCursor(l, start)
}
