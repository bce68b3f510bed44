package fcl

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/valyala/bytebufferpool"

	"github.com/rpcpool/fcl/bigarray"
	"github.com/rpcpool/fcl/internal/continuity"
	"github.com/rpcpool/fcl/varint"
)

// Wire format (all multi-byte fields little-endian):
//
//	magic      [8]byte  "FCLIST01"
//	version    uint8
//	elemWidth  uint8     // 1, 2, 4 or 8 — checked against the loading codec
//	elemKind   uint8     // 0 unsigned, 1 signed — checked against the loading codec
//	ratio      uint32
//	n          uint32
//	bufLen     uint64    // element count in buffer, not byte count
//	checksum   uint64    // xxhash64 of the bufLen*elemWidth buffer bytes
//	buffer     bufLen*elemWidth bytes
//
// The block index is deliberately absent: Load rebuilds it with
// FromBuffer, which runs rebuildIndex over the buffer, so the persisted
// form can never drift from how the index is actually derived.
const (
	magic       = "FCLIST01"
	wireVersion = 1
	headerLen   = 8 + 1 + 1 + 1 + 4 + 4 + 8 + 8
)

// MarshalBinary encodes the list into the form Load reads back.
func (l *FrontCodedList[E]) MarshalBinary() ([]byte, error) {
	width := l.codec.Width()
	if width != 1 && width != 2 && width != 4 && width != 8 {
		return nil, fmt.Errorf("%w: unsupported element width %d", ErrDataCorruption, width)
	}

	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	var tmp [8]byte
	for _, seg := range l.buffer.Segments() {
		for _, v := range seg {
			u := uint64(v)
			switch width {
			case 1:
				bb.WriteByte(byte(u))
			case 2:
				binary.LittleEndian.PutUint16(tmp[:2], uint16(u))
				bb.Write(tmp[:2])
			case 4:
				binary.LittleEndian.PutUint32(tmp[:4], uint32(u))
				bb.Write(tmp[:4])
			case 8:
				binary.LittleEndian.PutUint64(tmp[:8], u)
				bb.Write(tmp[:8])
			}
		}
	}
	payload := bb.Bytes()
	checksum := xxhash.Sum64(payload)

	out := make([]byte, 0, headerLen+len(payload))
	out = append(out, magic...)
	out = append(out, wireVersion, byte(width), kindByte(l.codec.Signed()))
	out = binary.LittleEndian.AppendUint32(out, l.ratio)
	out = binary.LittleEndian.AppendUint32(out, l.n)
	out = binary.LittleEndian.AppendUint64(out, uint64(l.buffer.Len()))
	out = binary.LittleEndian.AppendUint64(out, checksum)
	out = append(out, payload...)
	return out, nil
}

func kindByte(signed bool) byte {
	if signed {
		return 1
	}
	return 0
}

// Load decodes a list previously produced by MarshalBinary, given the
// codec its elements were encoded with. It sanity-checks the stored
// width and signedness against codec and verifies the buffer checksum
// before rebuilding the block index, returning ErrDataCorruption on
// any mismatch, truncation or checksum failure.
func Load[E varint.Element](codec varint.Codec[E], data []byte) (*FrontCodedList[E], error) {
	if len(data) < headerLen {
		return nil, fmt.Errorf("%w: header truncated, got %d bytes, want at least %d", ErrDataCorruption, len(data), headerLen)
	}

	version := data[8]
	width := int(data[9])
	signed := data[10] != 0
	ratio := binary.LittleEndian.Uint32(data[11:])
	n := binary.LittleEndian.Uint32(data[15:])
	bufLen := int64(binary.LittleEndian.Uint64(data[19:]))
	checksum := binary.LittleEndian.Uint64(data[27:])
	payload := data[headerLen:]

	err := continuity.New().
		Step(func() error {
			if string(data[:8]) != magic {
				return fmt.Errorf("%w: bad magic", ErrDataCorruption)
			}
			return nil
		}).
		Step(func() error {
			if version != wireVersion {
				return fmt.Errorf("%w: unsupported version %d", ErrDataCorruption, version)
			}
			return nil
		}).
		Step(func() error {
			if width != codec.Width() || signed != codec.Signed() {
				return fmt.Errorf("%w: codec mismatch (stored width=%d signed=%v, loader width=%d signed=%v)",
					ErrDataCorruption, width, signed, codec.Width(), codec.Signed())
			}
			return nil
		}).
		Step(func() error {
			want := bufLen * int64(width)
			if int64(len(payload)) != want {
				return fmt.Errorf("%w: buffer truncated, want %d bytes, got %d", ErrDataCorruption, want, len(payload))
			}
			return nil
		}).
		Step(func() error {
			if xxhash.Sum64(payload) != checksum {
				return fmt.Errorf("%w: checksum mismatch", ErrDataCorruption)
			}
			return nil
		}).
		Err()
	if err != nil {
		return nil, err
	}

	buffer, err := decodeBuffer[E](payload, bufLen, width)
	if err != nil {
		return nil, err
	}
	return FromBuffer(codec, ratio, n, buffer)
}

// decodeBuffer turns the raw little-endian payload back into a
// BigArray, reading it a segment's worth of elements at a time rather
// than in one pass over a bufLen-sized intermediate slice.
func decodeBuffer[E varint.Element](payload []byte, bufLen int64, width int) (*bigarray.BigArray[E], error) {
	const chunkElems = 1 << 16
	buffer := bigarray.New[E]()
	chunk := make([]E, 0, chunkElems)
	for i := int64(0); i < bufLen; i += chunkElems {
		end := i + chunkElems
		if end > bufLen {
			end = bufLen
		}
		chunk = chunk[:0]
		for j := i; j < end; j++ {
			off := int(j) * width
			var u uint64
			switch width {
			case 1:
				u = uint64(payload[off])
			case 2:
				u = uint64(binary.LittleEndian.Uint16(payload[off:]))
			case 4:
				u = uint64(binary.LittleEndian.Uint32(payload[off:]))
			case 8:
				u = binary.LittleEndian.Uint64(payload[off:])
			}
			chunk = append(chunk, E(u))
		}
		buffer.Append(chunk)
	}
	return buffer, nil
}
