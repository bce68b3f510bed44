// Package bigarray implements a thin, segmented, 64-bit-addressable
// buffer of a single element type.
//
// A front-coded list's encoded buffer is logically one contiguous
// sequence of elements, but a single Go slice is an awkward place to
// put an unbounded, build-once, read-many buffer: growth means
// repeated whole-buffer copies, and very large lists would want to
// avoid ever allocating one gigantic backing array. BigArray instead
// holds a sequence of fixed-size segments and exposes only the
// operations the rest of this module needs — sequential element
// access and bulk range copies — addressed by int64 offset, mirroring
// how the original format addresses its buffer through a segmented
// "big array" to sidestep a 2^31-element limit.
package bigarray

// segmentSize is the element count per segment. A power of two keeps
// the offset-to-segment arithmetic a shift and a mask.
const segmentSize = 1 << 16

const (
	segmentShift = 16
	segmentMask  = segmentSize - 1
)

// BigArray is a growable, segmented sequence of elements of type E,
// addressed by int64 offset.
type BigArray[E any] struct {
	segments [][]E
	length   int64
}

// New returns an empty BigArray.
func New[E any]() *BigArray[E] {
	return &BigArray[E]{}
}

// Len returns the number of elements currently stored.
func (b *BigArray[E]) Len() int64 {
	return b.length
}

// At returns the element at offset i.
func (b *BigArray[E]) At(i int64) E {
	return b.segments[i>>segmentShift][i&segmentMask]
}

// Set overwrites the element at offset i. i must be < Len().
func (b *BigArray[E]) Set(i int64, v E) {
	b.segments[i>>segmentShift][i&segmentMask] = v
}

// Grow appends n zero-valued elements, allocating new segments as
// needed, and returns the offset of the first appended element.
func (b *BigArray[E]) Grow(n int64) int64 {
	start := b.length
	remaining := n
	for remaining > 0 {
		segIdx := int(b.length >> segmentShift)
		if segIdx == len(b.segments) {
			b.segments = append(b.segments, make([]E, 0, segmentSize))
		}
		seg := &b.segments[segIdx]
		room := int64(segmentSize - len(*seg))
		take := remaining
		if take > room {
			take = room
		}
		*seg = (*seg)[:int64(len(*seg))+take]
		remaining -= take
		b.length += take
	}
	return start
}

// Append grows the array by len(src) elements and copies src into them,
// returning the offset of the first appended element.
func (b *BigArray[E]) Append(src []E) int64 {
	start := b.Grow(int64(len(src)))
	b.CopyIn(src, start)
	return start
}

// Truncate discards elements beyond offset n, releasing any now-unused
// trailing segments.
func (b *BigArray[E]) Truncate(n int64) {
	if n >= b.length {
		return
	}
	lastSeg := int((n + segmentSize - 1) >> segmentShift)
	if lastSeg < len(b.segments) {
		b.segments = b.segments[:lastSeg]
	}
	if lastSeg > 0 {
		within := n - int64(lastSeg-1)*segmentSize
		// Zero the discarded tail so a later Grow re-exposes zeros.
		seg := b.segments[lastSeg-1]
		clear(seg[within:])
		b.segments[lastSeg-1] = seg[:within]
	}
	b.length = n
}

// CopyOut copies min(len(dst), Len()-i) elements starting at offset i
// into dst, returning the number of elements copied.
func (b *BigArray[E]) CopyOut(dst []E, i int64) int {
	total := int64(len(dst))
	if avail := b.length - i; avail < total {
		total = avail
	}
	if total <= 0 {
		return 0
	}
	written := int64(0)
	for written < total {
		pos := i + written
		seg := b.segments[pos>>segmentShift]
		within := pos & segmentMask
		n := int64(len(seg)) - within
		if rem := total - written; n > rem {
			n = rem
		}
		copy(dst[written:written+n], seg[within:within+n])
		written += n
	}
	return int(total)
}

// CopyIn copies all of src into the array starting at offset i. The
// destination range [i, i+len(src)) must already be within Len().
func (b *BigArray[E]) CopyIn(src []E, i int64) {
	written := int64(0)
	total := int64(len(src))
	for written < total {
		pos := i + written
		seg := b.segments[pos>>segmentShift]
		within := pos & segmentMask
		n := int64(len(seg)) - within
		if rem := total - written; n > rem {
			n = rem
		}
		copy(seg[within:within+n], src[written:written+n])
		written += n
	}
}

// Segments returns the underlying segment slices in order, for bulk
// operations (serialization, checksumming) that want to walk the whole
// buffer without going through the offset-addressed accessors.
func (b *BigArray[E]) Segments() [][]E {
	return b.segments
}

// FromSegments reconstructs a BigArray from segment slices already
// populated by the caller (e.g. during deserialization). Ownership of
// segs passes to the returned BigArray.
func FromSegments[E any](segs [][]E) *BigArray[E] {
	b := &BigArray[E]{segments: segs}
	for _, seg := range segs {
		b.length += int64(len(seg))
	}
	return b
}
