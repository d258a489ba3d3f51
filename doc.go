// Package ajis implements the StreamWalk core of the AJIS ("Afrowave
// JSON-Interchange Syntax") format: a deterministic, single-pass,
// allocation-aware parser that turns UTF-8 bytes into a flat sequence of
// lexical events delivered to a caller-supplied Visitor.
//
// StreamWalk recognises a superset of JSON — comments, directives,
// unquoted identifiers, alternate number bases, and a handful of other
// extensions — behind a three-way mode preset (Strict-JSON, AJIS, Lax) and
// a set of individually toggleable options. It does not build a tree,
// decode escapes, convert numbers, or resolve directives; those are the
// job of a layer built on top of the event stream this package produces.
//
// # Usage
//
//	cfg := ajis.NewConfig(ajis.ModeAJIS)
//	src := ajis.NewSpanSource(data)
//	err := ajis.Walk(src, cfg, myVisitor)
//
// A Visitor implementation receives OnEvent for every recognised token,
// OnError at most once on failure, and OnComplete exactly once on success.
// Slices handed to OnEvent alias the input source's buffer and are only
// valid for the duration of that call.
package ajis
