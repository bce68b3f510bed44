package varint

// Uint32Codec stores v directly in one element: a 32-bit host has no
// need to split a 32-bit length across elements.
type Uint32Codec struct{}

func (Uint32Codec) MaxSpan() int { return 1 }

func (Uint32Codec) Width() int { return 4 }

func (Uint32Codec) Signed() bool { return false }

func (Uint32Codec) Count(uint32) int { return 1 }

func (Uint32Codec) Write(buf []uint32, pos int, v uint32) int {
	buf[pos] = v
	return 1
}

func (Uint32Codec) Read(buf []uint32, pos int) (uint32, int) {
	return buf[pos], 1
}

// Int32Codec is Uint32Codec's signed counterpart.
type Int32Codec struct{}

func (Int32Codec) MaxSpan() int { return 1 }

func (Int32Codec) Width() int { return 4 }

func (Int32Codec) Signed() bool { return true }

func (Int32Codec) Count(uint32) int { return 1 }

func (Int32Codec) Write(buf []int32, pos int, v uint32) int {
	buf[pos] = int32(v)
	return 1
}

func (Int32Codec) Read(buf []int32, pos int) (uint32, int) {
	return uint32(buf[pos]), 1
}
