package fcl

import (
	"fmt"

	"github.com/rpcpool/fcl/varint"
)

// Cursor is a bidirectional, stateful positional iterator over a
// FrontCodedList. It is not safe for concurrent use: every call
// mutates the cursor's scan position and its internal scratch buffer.
// The slices Next returns are copies of that scratch buffer, owned by
// the caller.
//
// Moving forward stays on a fast path that decodes one delta record
// per step and copies only the unshared suffix onto the end of the
// previous array already sitting in scratch. Calling Previous breaks
// that path: the cursor falls back to the reader's ordinary
// reconstruction (rerunning the walk from the nearest anchor) on its
// next forward step, then resumes the fast path from there.
type Cursor[E varint.Element] struct {
	list *FrontCodedList[E]

	i   uint32 // index Next() will return
	pos int64  // buffer offset of the delta record at i, valid only if inSync

	scratch []E // last reconstructed array, live prefix in [0:len)
	inSync  bool
}

// newCursor builds a cursor positioned so its first Next call returns
// the array at start. It fast-forwards from the nearest anchor at or
// before start rather than replaying the whole list from index 0.
func newCursor[E varint.Element](l *FrontCodedList[E], start uint32) (*Cursor[E], error) {
	c := &Cursor[E]{list: l}
	if start == 0 || start == l.n {
		c.i = start
		return c, nil
	}
	c.i = start - start%l.ratio
	steps := start % l.ratio
	for j := uint32(0); j < steps; j++ {
		if _, err := c.Next(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// HasNext reports whether Next would succeed.
func (c *Cursor[E]) HasNext() bool { return c.i < c.list.n }

// HasPrevious reports whether Previous would succeed.
func (c *Cursor[E]) HasPrevious() bool { return c.i > 0 }

// NextIndex returns the index Next would return.
func (c *Cursor[E]) NextIndex() uint32 { return c.i }

// PreviousIndex returns the index Previous would return. Only
// meaningful when HasPrevious is true.
func (c *Cursor[E]) PreviousIndex() uint32 { return c.i - 1 }

// ensureLen grows scratch's capacity to at least n elements, keeping
// any existing content at the front, then reslices it to length n.
func (c *Cursor[E]) ensureLen(n int) {
	if cap(c.scratch) < n {
		grown := make([]E, n)
		copy(grown, c.scratch)
		c.scratch = grown
		return
	}
	c.scratch = c.scratch[:n]
}

// Next reconstructs and returns the array at NextIndex, advancing the
// cursor by one. The returned slice is a fresh copy, safe to retain
// past the next cursor call.
func (c *Cursor[E]) Next() ([]E, error) {
	if !c.HasNext() {
		return nil, fmt.Errorf("%w: no next element at index %d", ErrNoSuchElement, c.i)
	}
	l := c.list
	var length uint32

	switch {
	case c.i%l.ratio == 0:
		pos := l.index[c.i/l.ratio]
		anchorLen, n, err := l.readVarint(pos)
		if err != nil {
			return nil, err
		}
		c.ensureLen(int(anchorLen))
		if anchorLen > 0 {
			l.buffer.CopyOut(c.scratch[:anchorLen], pos+n)
		}
		c.pos = pos + n + int64(anchorLen)
		length = anchorLen
		c.inSync = true

	case c.inSync:
		sLen, n1, err := l.readVarint(c.pos)
		if err != nil {
			return nil, err
		}
		cLen, n2, err := l.readVarint(c.pos + n1)
		if err != nil {
			return nil, err
		}
		total := int(cLen) + int(sLen)
		c.ensureLen(total)
		if sLen > 0 {
			l.buffer.CopyOut(c.scratch[cLen:cLen+sLen], c.pos+n1+n2)
		}
		c.pos += n1 + n2 + int64(sLen)
		length = cLen + sLen

	default:
		arrLen, endPos, err := l.recordSpan(c.i)
		if err != nil {
			return nil, err
		}
		c.ensureLen(int(arrLen))
		if _, err := l.extract(c.i, c.scratch, 0, int(arrLen)); err != nil {
			return nil, err
		}
		c.pos = endPos
		length = arrLen
		c.inSync = true
	}

	out := make([]E, length)
	copy(out, c.scratch[:length])
	c.i++
	return out, nil
}

// Previous reconstructs and returns the array at PreviousIndex,
// stepping the cursor back by one. It does not maintain the forward
// fast path's scan state; the next Next call after a Previous falls
// back to a full reconstruction before resuming the fast path.
func (c *Cursor[E]) Previous() ([]E, error) {
	if !c.HasPrevious() {
		return nil, fmt.Errorf("%w: no previous element at index %d", ErrNoSuchElement, c.i)
	}
	c.inSync = false
	c.i--
	return c.list.Get(c.i)
}
