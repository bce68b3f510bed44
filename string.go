package fcl

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// String renders the list as a bracketed, comma-separated sequence of
// bracketed arrays — e.g. "[[1,2,3],[4,5]]" — walking it with a
// Cursor rather than touching the block index directly. It exists for
// debugging only; the exact text has no compatibility guarantee.
func (l *FrontCodedList[E]) String() string {
	cur, err := l.Iterator(0)
	if err != nil {
		return fmt.Sprintf("<fcl: %v>", err)
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for first := true; cur.HasNext(); first = false {
		arr, err := cur.Next()
		if err != nil {
			return fmt.Sprintf("<fcl: %v>", err)
		}
		if !first {
			sb.WriteByte(',')
		}
		sb.WriteByte('[')
		for j, v := range arr {
			if j > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "%d", int64(v))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}

// Summary returns a one-line, human-readable description of the
// list's size — array count, block ratio and buffer footprint — for
// logging, not for parsing.
func (l *FrontCodedList[E]) Summary() string {
	byteLen := uint64(l.buffer.Len()) * uint64(l.codec.Width())
	return fmt.Sprintf("fcl: %s arrays, ratio %d, buffer %s (%s elements)",
		humanize.Comma(int64(l.n)), l.ratio,
		humanize.Bytes(byteLen), humanize.Comma(l.buffer.Len()))
}
