// Package scanner implements the StreamWalk scanner of spec.md §4.2: a
// single-pass, forward-only byte recogniser producing one Token per call to
// Next. It never decodes escapes, never converts numbers, and never builds
// a tree — consistent with spec.md §1's abstract non-goals, which bind the
// whole engine and not just the grammar driver.
package scanner

// Kind is the lexical category of a recognised Token.
type Kind uint8

const (
	LBrace Kind = iota
	RBrace
	LBracket
	RBracket
	Colon
	Comma
	String
	Number
	True
	False
	Null
	Identifier
	Comment
	Directive
	End
)

// Token is a lexer-level record: a kind plus the byte range(s) that make it
// up. Start/End is the whole lexeme, including any delimiters (the opening
// and closing quote of a string, the "//" or "/*"..."*/" of a comment, the
// leading "#" of a directive). Content is the payload that becomes a
// Slice: the interior of a string, the trimmed body of a comment or
// directive, or the same bytes as the whole lexeme for tokens with no
// delimiter to strip (numbers, identifiers). Content aliases the input
// source's internal buffer and is only valid until the next call to the
// Scanner that produced it — callers must finish using or copying it
// before asking for the next token, matching the callback-scoped slice
// lifetime spec.md §3 requires.
type Token struct {
	Kind          Kind
	Start, End    int
	Content       []byte
	Line, Column  int // 1-based; always tracked, but 0 on the End token
}
