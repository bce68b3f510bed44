package fcl

import "errors"

// Sentinel errors for the failure classes this package defines. Every
// exported function that can fail wraps one of these with fmt.Errorf
// and %w, so errors.Is keeps matching regardless of call depth. The
// one exception is a canceled BuildContext, which returns ctx.Err()
// as is.
var (
	// ErrIndexOutOfRange is returned when a logical index is outside
	// the bounds the called operation accepts.
	ErrIndexOutOfRange = errors.New("fcl: index out of range")

	// ErrInvalidRange is returned when an offset/cap pair passed to a
	// fill-into-buffer read does not satisfy offset+cap <= len(dst)
	// and cap >= 0.
	ErrInvalidRange = errors.New("fcl: invalid offset/cap")

	// ErrInvalidRatio is returned when a builder is constructed with
	// ratio < 1.
	ErrInvalidRatio = errors.New("fcl: ratio must be >= 1")

	// ErrNoSuchElement is returned by a Cursor's Next/Previous when the
	// cursor is already at the corresponding end.
	ErrNoSuchElement = errors.New("fcl: no such element")

	// ErrDataCorruption is returned when rebuilding the block index
	// or decoding a persisted list would need to read past the end of
	// the buffer, or when a stored checksum does not match.
	ErrDataCorruption = errors.New("fcl: data corruption")
)
