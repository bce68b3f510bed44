package varint

// Uint64Codec stores v directly in one element. The source format
// always spends a full 8-byte element on a length marker even though
// lengths here never exceed 32 bits; compressing that further would be
// a format change, not something this package permits itself.
type Uint64Codec struct{}

func (Uint64Codec) MaxSpan() int { return 1 }

func (Uint64Codec) Width() int { return 8 }

func (Uint64Codec) Signed() bool { return false }

func (Uint64Codec) Count(uint32) int { return 1 }

func (Uint64Codec) Write(buf []uint64, pos int, v uint32) int {
	buf[pos] = uint64(v)
	return 1
}

func (Uint64Codec) Read(buf []uint64, pos int) (uint32, int) {
	return uint32(buf[pos]), 1
}

// Int64Codec is Uint64Codec's signed counterpart.
type Int64Codec struct{}

func (Int64Codec) MaxSpan() int { return 1 }

func (Int64Codec) Width() int { return 8 }

func (Int64Codec) Signed() bool { return true }

func (Int64Codec) Count(uint32) int { return 1 }

func (Int64Codec) Write(buf []int64, pos int, v uint32) int {
	buf[pos] = int64(v)
	return 1
}

func (Int64Codec) Read(buf []int64, pos int) (uint32, int) {
	return uint32(buf[pos]), 1
}
