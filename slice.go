package ajis

import "github.com/afrowaveltd/ajis-go/internal/sliceflags"

// SliceFlags is a bitmask over the closed set of slice classification
// flags described in spec §3.
type SliceFlags = sliceflags.Flags

const (
	HasEscapes        = sliceflags.HasEscapes
	HasNonAscii       = sliceflags.HasNonAscii
	IsIdentifierStyle = sliceflags.IsIdentifierStyle
	IsNumberHex       = sliceflags.IsNumberHex
	IsNumberBinary    = sliceflags.IsNumberBinary
	IsNumberOctal     = sliceflags.IsNumberOctal
	IsNumberTyped     = sliceflags.IsNumberTyped
)

// Slice is a callback-scoped UTF-8 byte view, per spec §3/§4.4. Bytes
// aliases the producing Source's internal buffer; a caller that needs the
// content past the return of the OnEvent call that received it must copy
// Bytes itself.
type Slice struct {
	Bytes []byte
	Flags SliceFlags
}

// Has reports whether all bits of want are set on the slice's flags.
func (s Slice) Has(want SliceFlags) bool { return s.Flags.Has(want) }
