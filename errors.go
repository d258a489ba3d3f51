package ajis

import "github.com/afrowaveltd/ajis-go/internal/diag"

// ErrorCode is one member of the closed diagnostic taxonomy of spec §7.
type ErrorCode = diag.Code

const (
	IoError                      = diag.IoError
	OutOfMemory                  = diag.OutOfMemory
	UnexpectedEndOfInput         = diag.UnexpectedEndOfInput
	UnexpectedToken              = diag.UnexpectedToken
	InvalidCharacter             = diag.InvalidCharacter
	InvalidEscapeSequence        = diag.InvalidEscapeSequence
	InvalidUnicodeEscape         = diag.InvalidUnicodeEscape
	InvalidNumber                = diag.InvalidNumber
	InvalidLiteral               = diag.InvalidLiteral
	TrailingGarbage              = diag.TrailingGarbage
	MaxDepthExceeded             = diag.MaxDepthExceeded
	MaxTokenBytesExceeded        = diag.MaxTokenBytesExceeded
	MaxDocumentBytesExceeded     = diag.MaxDocumentBytesExceeded
	MaxStringBytesExceeded       = diag.MaxStringBytesExceeded
	MaxPropertyNameBytesExceeded = diag.MaxPropertyNameBytesExceeded
	NotAllowedInJsonMode         = diag.NotAllowedInJsonMode
	FeatureDisabled              = diag.FeatureDisabled
	VisitorAbort                 = diag.VisitorAbort
)

// Error is the structured diagnostic a walk surfaces through a Visitor's
// OnError hook. It implements the standard error interface, so callers
// that only care about message text can use it directly; callers that
// need to branch on the failure kind should switch on Code.
type Error = diag.Error
