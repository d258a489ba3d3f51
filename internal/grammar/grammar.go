// Package grammar implements the container/name-value state machine of
// spec.md §4.3: it pulls tokens from a scanner, tracks the object/array
// stack, enforces depth and size limits, and feeds a flat event stream to
// a caller-supplied Emitter. It knows nothing of the public ajis.Visitor
// type — that adapter lives in the root package — so this package stays a
// candidate for reuse by any future engine variant without pulling in the
// public API's import graph.
package grammar

import (
	"github.com/afrowaveltd/ajis-go/internal/diag"
	"github.com/afrowaveltd/ajis-go/internal/events"
	"github.com/afrowaveltd/ajis-go/internal/options"
	"github.com/afrowaveltd/ajis-go/internal/scanner"
	"github.com/afrowaveltd/ajis-go/internal/sliceflags"
)

// Event is the grammar driver's output record: an event kind, its payload
// bytes (nil for kinds with no slice), the flags computed over that
// payload, and the source offset/line/column of the token that produced it.
type Event struct {
	Kind    events.Kind
	Raw     []byte
	Flags   sliceflags.Flags
	Offset  int
	Line    int
	Column  int
}

// Emitter receives one Event at a time and returns whether the walk should
// continue. Its Raw slice is only valid for the duration of the call, per
// the callback-scoped lifetime of spec.md §3.
type Emitter func(Event) (cont bool)

// Driver runs the grammar state machine described in spec.md §4.3 over
// tokens pulled from sc, honoring the limits and mode flags in ro.
type Driver struct {
	sc    *scanner.Scanner
	ro    *options.Resolved
	depth int
}

// New constructs a Driver reading tokens from sc under the resolved
// options ro. ro must be the same Resolved value sc was constructed with.
func New(sc *scanner.Scanner, ro *options.Resolved) *Driver {
	return &Driver{sc: sc, ro: ro}
}

// Run drives a complete walk: exactly one root value followed by optional
// trailing comments/directives/whitespace and end of input. It returns nil
// on success (having already delivered END_DOCUMENT to emit) or the first
// diagnostic error encountered (having delivered no END_DOCUMENT).
func (d *Driver) Run(emit Emitter) *diag.Error {
	if err := d.readValue(emit); err != nil {
		return err
	}
	for {
		tok, terr := d.sc.Next()
		if terr != nil {
			return terr
		}
		if err := d.checkDocumentBytes(tok); err != nil {
			return err
		}
		switch tok.Kind {
		case scanner.Comment:
			if err := d.emitPayload(emit, events.Comment, tok); err != nil {
				return err
			}
		case scanner.Directive:
			if err := d.emitPayload(emit, events.Directive, tok); err != nil {
				return err
			}
		case scanner.End:
			emit(Event{Kind: events.EndDocument, Offset: tok.Start, Line: tok.Line, Column: tok.Column})
			return nil
		default:
			return d.err(diag.TrailingGarbage, tok)
		}
	}
}

func (d *Driver) checkDocumentBytes(tok scanner.Token) *diag.Error {
	if d.ro.MaxDocumentBytes > 0 && tok.End > d.ro.MaxDocumentBytes {
		return d.err(diag.MaxDocumentBytesExceeded, tok)
	}
	return nil
}

// err builds a diagnostic for tok, attaching line/column when the caller
// asked for it. Every grammar-level error site goes through here so
// CaptureLineColumn behaves identically whether the failure originates in
// the scanner or in the container/name-value state machine above it.
func (d *Driver) err(code diag.Code, tok scanner.Token) *diag.Error {
	e := diag.New(code, tok.Start)
	if d.ro.CaptureLineColumn {
		e = e.WithLineColumn(tok.Line, tok.Column)
	}
	return e
}

func (d *Driver) checkAbort(cont bool, offset, line, column int) *diag.Error {
	if cont || !d.ro.AllowVisitorAbort {
		return nil
	}
	e := diag.New(diag.VisitorAbort, offset)
	if d.ro.CaptureLineColumn {
		e = e.WithLineColumn(line, column)
	}
	return e
}

// emitPayload emits a single slice-carrying event whose payload is the raw
// token content, unconditionally (no identifier/number classification).
func (d *Driver) emitPayload(emit Emitter, kind events.Kind, tok scanner.Token) *diag.Error {
	flags := sliceflags.Compute(tok.Content, false, false)
	cont := emit(Event{Kind: kind, Raw: tok.Content, Flags: flags, Offset: tok.Start, Line: tok.Line, Column: tok.Column})
	return d.checkAbort(cont, tok.Start, tok.Line, tok.Column)
}

// nextSignificant pulls tokens from the scanner, transparently emitting any
// Comment/Directive tokens encountered (they never affect grammar state),
// and returns the first token that matters structurally.
func (d *Driver) nextSignificant(emit Emitter) (scanner.Token, *diag.Error) {
	for {
		tok, terr := d.sc.Next()
		if terr != nil {
			return scanner.Token{}, terr
		}
		if err := d.checkDocumentBytes(tok); err != nil {
			return scanner.Token{}, err
		}
		switch tok.Kind {
		case scanner.Comment:
			if err := d.emitPayload(emit, events.Comment, tok); err != nil {
				return scanner.Token{}, err
			}
		case scanner.Directive:
			if err := d.emitPayload(emit, events.Directive, tok); err != nil {
				return scanner.Token{}, err
			}
		default:
			return tok, nil
		}
	}
}

// readValue recognises exactly one value (scalar, object, or array) and
// reports it, recursing into readObject/readArray for containers. The
// recursion depth is bounded by MaxDepth, which is checked on every push in
// readObject/readArray, so this never recurses deeper than the configured
// limit regardless of input.
func (d *Driver) readValue(emit Emitter) *diag.Error {
	tok, err := d.nextSignificant(emit)
	if err != nil {
		return err
	}
	return d.readValueFrom(emit, tok)
}

func (d *Driver) disabledErr(tok scanner.Token) *diag.Error {
	if d.ro.Mode == options.StrictJSON {
		return d.err(diag.NotAllowedInJsonMode, tok)
	}
	return d.err(diag.FeatureDisabled, tok)
}

func (d *Driver) emitScalar(emit Emitter, kind events.Kind, tok scanner.Token, isNumber bool) *diag.Error {
	if kind == events.String && d.ro.MaxStringBytes > 0 && len(tok.Content) > d.ro.MaxStringBytes {
		return d.err(diag.MaxStringBytesExceeded, tok)
	}
	isIdentifier := tok.Kind == scanner.Identifier
	flags := sliceflags.Compute(tok.Content, isIdentifier, isNumber)
	cont := emit(Event{Kind: kind, Raw: tok.Content, Flags: flags, Offset: tok.Start, Line: tok.Line, Column: tok.Column})
	return d.checkAbort(cont, tok.Start, tok.Line, tok.Column)
}

func (d *Driver) pushDepth(openTok scanner.Token) *diag.Error {
	if d.depth >= d.ro.MaxDepth {
		return d.err(diag.MaxDepthExceeded, openTok)
	}
	d.depth++
	return nil
}

func (d *Driver) popDepth() { d.depth-- }

func (d *Driver) emitStruct(emit Emitter, kind events.Kind, tok scanner.Token) *diag.Error {
	cont := emit(Event{Kind: kind, Offset: tok.Start, Line: tok.Line, Column: tok.Column})
	return d.checkAbort(cont, tok.Start, tok.Line, tok.Column)
}

// readObject handles an Object from its opening '{' (already consumed by
// the caller, passed as openTok) through its matching '}'.
func (d *Driver) readObject(emit Emitter, openTok scanner.Token) *diag.Error {
	if err := d.pushDepth(openTok); err != nil {
		return err
	}
	defer d.popDepth()
	if err := d.emitStruct(emit, events.BeginObject, openTok); err != nil {
		return err
	}

	afterComma := false
	for {
		tok, err := d.nextSignificant(emit)
		if err != nil {
			return err
		}
		if tok.Kind == scanner.RBrace {
			if afterComma && !d.ro.AllowTrailingCommas {
				return d.err(diag.UnexpectedToken, tok)
			}
			return d.emitStruct(emit, events.EndObject, tok)
		}
		if tok.Kind == scanner.End {
			if d.ro.Lax.TolerateUnclosedContainers {
				return d.emitStruct(emit, events.EndObject, tok)
			}
			return d.err(diag.UnexpectedEndOfInput, tok)
		}
		if err := d.readName(emit, tok); err != nil {
			return err
		}
		if err := d.expectColon(emit); err != nil {
			return err
		}
		if err := d.readValue(emit); err != nil {
			return err
		}

		tok, err = d.nextSignificant(emit)
		if err != nil {
			return err
		}
		switch tok.Kind {
		case scanner.RBrace:
			return d.emitStruct(emit, events.EndObject, tok)
		case scanner.Comma:
			afterComma = true
			continue
		case scanner.End:
			if d.ro.Lax.TolerateUnclosedContainers {
				return d.emitStruct(emit, events.EndObject, tok)
			}
			return d.err(diag.UnexpectedEndOfInput, tok)
		default:
			return d.err(diag.UnexpectedToken, tok)
		}
	}
}

// readName consumes a property-name token (String always; Identifier when
// unquoted property names are enabled) and emits the NAME event.
func (d *Driver) readName(emit Emitter, tok scanner.Token) *diag.Error {
	switch tok.Kind {
	case scanner.String:
		if d.ro.MaxPropertyNameBytes > 0 && len(tok.Content) > d.ro.MaxPropertyNameBytes {
			return d.err(diag.MaxPropertyNameBytesExceeded, tok)
		}
		flags := sliceflags.Compute(tok.Content, false, false)
		cont := emit(Event{Kind: events.Name, Raw: tok.Content, Flags: flags, Offset: tok.Start, Line: tok.Line, Column: tok.Column})
		return d.checkAbort(cont, tok.Start, tok.Line, tok.Column)
	case scanner.Identifier:
		if !d.ro.AllowUnquotedPropertyNames {
			return d.disabledErr(tok)
		}
		if d.ro.MaxPropertyNameBytes > 0 && len(tok.Content) > d.ro.MaxPropertyNameBytes {
			return d.err(diag.MaxPropertyNameBytesExceeded, tok)
		}
		flags := sliceflags.Compute(tok.Content, true, false)
		cont := emit(Event{Kind: events.Name, Raw: tok.Content, Flags: flags, Offset: tok.Start, Line: tok.Line, Column: tok.Column})
		return d.checkAbort(cont, tok.Start, tok.Line, tok.Column)
	case scanner.End:
		return d.err(diag.UnexpectedEndOfInput, tok)
	default:
		return d.err(diag.UnexpectedToken, tok)
	}
}

func (d *Driver) expectColon(emit Emitter) *diag.Error {
	tok, err := d.nextSignificant(emit)
	if err != nil {
		return err
	}
	if tok.Kind == scanner.End {
		return d.err(diag.UnexpectedEndOfInput, tok)
	}
	if tok.Kind != scanner.Colon {
		return d.err(diag.UnexpectedToken, tok)
	}
	return nil
}

// readArray handles an Array from its opening '[' (already consumed,
// passed as openTok) through its matching ']'.
func (d *Driver) readArray(emit Emitter, openTok scanner.Token) *diag.Error {
	if err := d.pushDepth(openTok); err != nil {
		return err
	}
	defer d.popDepth()
	if err := d.emitStruct(emit, events.BeginArray, openTok); err != nil {
		return err
	}

	tok, err := d.nextSignificant(emit)
	if err != nil {
		return err
	}
	if tok.Kind == scanner.RBracket {
		return d.emitStruct(emit, events.EndArray, tok)
	}
	if tok.Kind == scanner.End {
		if d.ro.Lax.TolerateUnclosedContainers {
			return d.emitStruct(emit, events.EndArray, tok)
		}
		return d.err(diag.UnexpectedEndOfInput, tok)
	}

	for {
		if err := d.readValueFrom(emit, tok); err != nil {
			return err
		}

		tok, err = d.nextSignificant(emit)
		if err != nil {
			return err
		}
		switch tok.Kind {
		case scanner.RBracket:
			return d.emitStruct(emit, events.EndArray, tok)
		case scanner.Comma:
			tok, err = d.nextSignificant(emit)
			if err != nil {
				return err
			}
			if tok.Kind == scanner.RBracket {
				if !d.ro.AllowTrailingCommas {
					return d.err(diag.UnexpectedToken, tok)
				}
				return d.emitStruct(emit, events.EndArray, tok)
			}
			if tok.Kind == scanner.End {
				if d.ro.Lax.TolerateUnclosedContainers {
					return d.emitStruct(emit, events.EndArray, tok)
				}
				return d.err(diag.UnexpectedEndOfInput, tok)
			}
			continue
		case scanner.End:
			if d.ro.Lax.TolerateUnclosedContainers {
				return d.emitStruct(emit, events.EndArray, tok)
			}
			return d.err(diag.UnexpectedEndOfInput, tok)
		default:
			return d.err(diag.UnexpectedToken, tok)
		}
	}
}

// readValueFrom recognises one value given its first token already pulled
// from the stream (used by readArray, which must peek ']' vs a value
// before knowing whether a value follows).
func (d *Driver) readValueFrom(emit Emitter, tok scanner.Token) *diag.Error {
	switch tok.Kind {
	case scanner.LBrace:
		return d.readObject(emit, tok)
	case scanner.LBracket:
		return d.readArray(emit, tok)
	case scanner.String:
		return d.emitScalar(emit, events.String, tok, false)
	case scanner.Number:
		return d.emitScalar(emit, events.Number, tok, true)
	case scanner.True:
		return d.emitScalar(emit, events.True, tok, false)
	case scanner.False:
		return d.emitScalar(emit, events.False, tok, false)
	case scanner.Null:
		return d.emitScalar(emit, events.Null, tok, false)
	case scanner.Identifier:
		if !d.ro.Lax.AllowBareIdentifierValues {
			return d.disabledErr(tok)
		}
		return d.emitScalar(emit, events.Identifier, tok, false)
	case scanner.End:
		return d.err(diag.UnexpectedEndOfInput, tok)
	default:
		return d.err(diag.UnexpectedToken, tok)
	}
}
