package ajis

import (
	"io"

	"github.com/afrowaveltd/ajis-go/internal/source"
)

// Source is the byte-supply contract a walk consumes, per spec §4.1.
// It is declared independently of internal/scanner's matching interface
// (same method set, no shared import) so internal/source's two
// implementations satisfy both by structural typing without creating an
// import cycle between this public package and the internal engine.
type Source interface {
	ReadByte() (b byte, ok bool, err error)
	UnreadByte()
	Offset() int
	Mark()
	Slice() []byte
	Release()
}

// NewSpanSource returns a Source over an already-materialized byte slice.
// data must not be mutated for the lifetime of the walk. Every Slice
// handed to the Visitor is a direct, zero-copy view into data.
func NewSpanSource(data []byte) Source {
	return source.NewSpan(data)
}

// NewStreamSource returns a Source over an io.Reader, buffering internally
// with a compacting scheme so a single token may straddle arbitrarily many
// underlying reads without losing contiguity.
func NewStreamSource(r io.Reader) Source {
	return source.NewStream(r)
}

// NewStreamSourceSize is like NewStreamSource but refills in readSize-byte
// chunks from r instead of the default chunk size; sizes below bufio's
// 16-byte minimum are raised to 16. Engines use this to
// trade refill frequency for peak per-read memory footprint; it has no
// effect on the events or errors a walk produces.
func NewStreamSourceSize(r io.Reader, readSize int) Source {
	return source.NewStreamSize(r, readSize)
}
