package ajis

import "github.com/afrowaveltd/ajis-go/internal/events"

// EventKind is one member of the closed set of event kinds a walk can
// produce. See the package-level constants for the full set.
type EventKind = events.Kind

// The closed set of event kinds, mirroring spec §6.2. Declared here as
// aliases of the internal/events constants so callers never need to import
// an internal package to match on event kind.
const (
	BeginObject = events.BeginObject
	EndObject   = events.EndObject
	BeginArray  = events.BeginArray
	EndArray    = events.EndArray
	Name        = events.Name
	String      = events.String
	Number      = events.Number
	True        = events.True
	False       = events.False
	Null        = events.Null
	Identifier  = events.Identifier
	Comment     = events.Comment
	Directive   = events.Directive
	EndDocument = events.EndDocument
)

// Event is a single notification delivered to a Visitor's OnEvent hook.
// Slice is only populated for kinds where EventKind.HasValueSlice is true,
// and aliases the input source's buffer: it is only valid for the
// duration of the OnEvent call that received it.
type Event struct {
	Kind   EventKind
	Slice  Slice
	Offset int
	Line   int // 1-based; 0 unless Config.CaptureLineColumn was set
	Column int // 1-based; 0 unless Config.CaptureLineColumn was set
}
