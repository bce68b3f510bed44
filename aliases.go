package fcl

import "github.com/rpcpool/fcl/varint"

// The generic FrontCodedList/Builder work for any supported element
// width, but spec.md's design notes describe this as a family of
// per-width classes built from one template (§9). These aliases and
// constructors are that per-width surface, each one just binding the
// generic implementation to a fixed element type and its codec.

// ByteList is a front-coded list of signed 8-bit element arrays.
type ByteList = FrontCodedList[int8]

// ShortList is a front-coded list of signed 16-bit element arrays.
type ShortList = FrontCodedList[int16]

// UnsignedShortList is a front-coded list of unsigned 16-bit element
// arrays.
type UnsignedShortList = FrontCodedList[uint16]

// IntList is a front-coded list of signed 32-bit element arrays.
type IntList = FrontCodedList[int32]

// LongList is a front-coded list of signed 64-bit element arrays.
type LongList = FrontCodedList[int64]

// NewByteBuilder returns a Builder for ByteList.
func NewByteBuilder(ratio uint32) (*Builder[int8], error) {
	return NewBuilder[int8](varint.Int8Codec{}, ratio)
}

// NewShortBuilder returns a Builder for ShortList.
func NewShortBuilder(ratio uint32) (*Builder[int16], error) {
	return NewBuilder[int16](varint.Int16Codec{}, ratio)
}

// NewUnsignedShortBuilder returns a Builder for UnsignedShortList.
func NewUnsignedShortBuilder(ratio uint32) (*Builder[uint16], error) {
	return NewBuilder[uint16](varint.Uint16Codec{}, ratio)
}

// NewIntBuilder returns a Builder for IntList.
func NewIntBuilder(ratio uint32) (*Builder[int32], error) {
	return NewBuilder[int32](varint.Int32Codec{}, ratio)
}

// NewLongBuilder returns a Builder for LongList.
func NewLongBuilder(ratio uint32) (*Builder[int64], error) {
	return NewBuilder[int64](varint.Int64Codec{}, ratio)
}

// BuildByteListFromSlice builds a ByteList from arrays already in memory.
func BuildByteListFromSlice(ratio uint32, arrays [][]int8) (*ByteList, error) {
	return BuildFromSlice[int8](varint.Int8Codec{}, ratio, arrays)
}

// BuildShortListFromSlice builds a ShortList from arrays already in memory.
func BuildShortListFromSlice(ratio uint32, arrays [][]int16) (*ShortList, error) {
	return BuildFromSlice[int16](varint.Int16Codec{}, ratio, arrays)
}

// BuildUnsignedShortListFromSlice builds an UnsignedShortList from
// arrays already in memory.
func BuildUnsignedShortListFromSlice(ratio uint32, arrays [][]uint16) (*UnsignedShortList, error) {
	return BuildFromSlice[uint16](varint.Uint16Codec{}, ratio, arrays)
}

// BuildIntListFromSlice builds an IntList from arrays already in memory.
func BuildIntListFromSlice(ratio uint32, arrays [][]int32) (*IntList, error) {
	return BuildFromSlice[int32](varint.Int32Codec{}, ratio, arrays)
}

// BuildLongListFromSlice builds a LongList from arrays already in memory.
func BuildLongListFromSlice(ratio uint32, arrays [][]int64) (*LongList, error) {
	return BuildFromSlice[int64](varint.Int64Codec{}, ratio, arrays)
}

// LoadByteList decodes a ByteList previously produced by MarshalBinary.
func LoadByteList(data []byte) (*ByteList, error) {
	return Load[int8](varint.Int8Codec{}, data)
}

// LoadShortList decodes a ShortList previously produced by MarshalBinary.
func LoadShortList(data []byte) (*ShortList, error) {
	return Load[int16](varint.Int16Codec{}, data)
}

// LoadUnsignedShortList decodes an UnsignedShortList previously
// produced by MarshalBinary.
func LoadUnsignedShortList(data []byte) (*UnsignedShortList, error) {
	return Load[uint16](varint.Uint16Codec{}, data)
}

// LoadIntList decodes an IntList previously produced by MarshalBinary.
func LoadIntList(data []byte) (*IntList, error) {
	return Load[int32](varint.Int32Codec{}, data)
}

// LoadLongList decodes a LongList previously produced by MarshalBinary.
func LoadLongList(data []byte) (*LongList, error) {
	return Load[int64](varint.Int64Codec{}, data)
}
