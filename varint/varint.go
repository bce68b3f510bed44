// Package varint implements the per-element-width length encodings used
// by a front-coded list to store array lengths and common-prefix counts
// inline in its own element buffer.
//
// Each primitive element width gets its own encoding because the unit of
// encoding is the width of the buffer itself: a list of int32 shares its
// buffer between payload elements and length markers, so the length
// markers must be expressed in int32s, not bytes. See the package-level
// codecs below for the five supported widths.
package varint

// Element is the set of primitive types a front-coded buffer may hold.
// int32/uint32 share the 4-byte direct encoding and int64/uint64 share
// the 8-byte direct encoding; int16/uint16 each get their own 2-byte
// variant because the continuation bit lives in different places for a
// signed vs. an unsigned host type.
type Element interface {
	comparable
	~int8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// Codec reads and writes non-negative lengths as a self-delimiting run
// of elements of type E. Read never needs an externally supplied length:
// the encoding carries its own extent.
//
// Implementations assume v is non-negative (it always is: lengths and
// common-prefix counts) and that buf has the headroom Count(v) reports;
// both are guaranteed by callers in this module, never by Codec itself.
type Codec[E Element] interface {
	// Count returns the number of elements Write would consume for v.
	Count(v uint32) int
	// Write encodes v into buf starting at pos and returns Count(v).
	Write(buf []E, pos int, v uint32) int
	// Read decodes the value starting at pos, returning it along with
	// the number of elements consumed (equal to what Count reported at
	// write time).
	Read(buf []E, pos int) (v uint32, n int)
	// MaxSpan is the largest value Count can ever return for this
	// codec. Callers that only want to decode a header — not copy a
	// payload — use it to size a small fixed read window instead of
	// guessing how much of the buffer a varint might occupy.
	MaxSpan() int
	// Width is the byte size of one element of E — 1, 2, 4 or 8.
	Width() int
	// Signed reports whether E is a signed integer type. Persistence
	// records it alongside Width so a loader can tell Int16Codec's
	// buffer apart from Uint16Codec's without the Go type to check
	// against.
	Signed() bool
}

// MaxSpanBound is the largest MaxSpan of any codec in this package,
// usable as a fixed-size scratch array bound by callers generic over E.
const MaxSpanBound = 5
