package source

import (
	"bufio"
	"io"
)

// Stream is a Source over an io.Reader. It maintains a compacting internal
// buffer: bytes before the current mark are discarded on Release, and bytes
// from the mark onward accumulate across refills so a single token may
// straddle arbitrarily many underlying reads without losing contiguity,
// satisfying spec.md §4.1's "contiguous UTF-8 span" guarantee for stream
// sources.
type Stream struct {
	r   *bufio.Reader
	buf []byte

	bufStart int // absolute offset corresponding to buf[0]
	pos      int // index into buf of the next unread byte
	markPos  int // index into buf of the current token's start

	eof bool
}

// defaultReadSize is the chunk size used to refill from the underlying
// reader when no explicit size is requested.
const defaultReadSize = 4096

// NewStream constructs a Stream source reading from r, refilling in
// defaultReadSize chunks.
func NewStream(r io.Reader) *Stream {
	return NewStreamSize(r, defaultReadSize)
}

// NewStreamSize constructs a Stream source reading from r, refilling in
// readSize-byte chunks. A smaller readSize trades refill frequency for a
// smaller peak footprint per underlying read, independent of how large the
// compacting token buffer grows. bufio.NewReaderSize raises any readSize
// below its 16-byte minimum to 16.
func NewStreamSize(r io.Reader, readSize int) *Stream {
	if readSize <= 0 {
		readSize = defaultReadSize
	}
	return &Stream{r: bufio.NewReaderSize(r, readSize)}
}

func (s *Stream) ReadByte() (b byte, ok bool, err error) {
	if s.pos < len(s.buf) {
		b = s.buf[s.pos]
		s.pos++
		return b, true, nil
	}
	if s.eof {
		return 0, false, nil
	}
	nb, rerr := s.r.ReadByte()
	if rerr != nil {
		if rerr == io.EOF {
			s.eof = true
			return 0, false, nil
		}
		return 0, false, rerr
	}
	s.buf = append(s.buf, nb)
	s.pos++
	return nb, true, nil
}

// UnreadByte pushes back the single most recently read byte. It must not be
// called more than once between successful ReadByte calls, and never
// immediately after Release.
func (s *Stream) UnreadByte() {
	if s.pos > s.markPos {
		s.pos--
	}
}

func (s *Stream) Offset() int { return s.bufStart + s.pos }

func (s *Stream) Mark() { s.markPos = s.pos }

// Slice returns the bytes from the last Mark() to the current position.
// The returned slice aliases the internal buffer and is only valid until
// the next Mark, ReadByte, or Release call — the scanner must finish
// classifying/copying it before advancing further, matching the
// callback-scoped lifetime spec.md §3 requires of a Slice.
func (s *Stream) Slice() []byte { return s.buf[s.markPos:s.pos] }

// Release discards buffered bytes before the current mark, compacting the
// buffer to its origin. Call this once a token has been fully emitted and
// its bytes are no longer needed, so the buffer does not grow unbounded
// over a long stream.
func (s *Stream) Release() {
	if s.markPos == 0 {
		return
	}
	n := copy(s.buf, s.buf[s.markPos:])
	s.buf = s.buf[:n]
	s.bufStart += s.markPos
	s.pos -= s.markPos
	s.markPos = 0
}
