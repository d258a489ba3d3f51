package scanner

import (
	"github.com/afrowaveltd/ajis-go/internal/diag"
	"github.com/afrowaveltd/ajis-go/internal/options"
)

// Source is the byte-supply contract the scanner consumes. It is declared
// here, independently of internal/source, purely by the method set: any
// type with this shape satisfies it, which is how internal/source.Span and
// internal/source.Stream serve both this package and the public ajis.Source
// interface without an import between any of the three.
type Source interface {
	ReadByte() (b byte, ok bool, err error)
	UnreadByte()
	Offset() int
	Mark()
	Slice() []byte
	Release()
}

type posSnapshot struct {
	line, col   int
	atLineStart bool
	sawCR       bool
}

// Scanner recognises one Token at a time from a Source, per spec.md §4.2.
// It never looks more than one byte past what it needs to decide a token's
// kind, and it never retains bytes beyond the current token.
type Scanner struct {
	src Source
	ro  *options.Resolved

	line, col   int
	atLineStart bool
	sawCR       bool
	prev        posSnapshot

	bomChecked bool
}

// New constructs a Scanner reading from src under the resolved options ro.
// ro must outlive the Scanner and must not be mutated during a walk.
func New(src Source, ro *options.Resolved) *Scanner {
	return &Scanner{src: src, ro: ro, line: 1, col: 1, atLineStart: true}
}

func (s *Scanner) offset() int { return s.src.Offset() }

func (s *Scanner) readByte() (byte, bool, error) {
	b, ok, err := s.src.ReadByte()
	if err != nil || !ok {
		return b, ok, err
	}
	s.prev = posSnapshot{s.line, s.col, s.atLineStart, s.sawCR}
	switch b {
	case '\n':
		if !s.sawCR {
			s.line++
		}
		s.col = 1
		s.atLineStart = true
		s.sawCR = false
	case '\r':
		s.line++
		s.col = 1
		s.atLineStart = true
		s.sawCR = true
	default:
		s.col++
		s.atLineStart = false
		s.sawCR = false
	}
	return b, true, nil
}

func (s *Scanner) unreadByte() {
	s.src.UnreadByte()
	s.line, s.col, s.atLineStart, s.sawCR = s.prev.line, s.prev.col, s.prev.atLineStart, s.prev.sawCR
}

func isIdentStart(b byte) bool {
	return b == '$' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// featureError reports the right diagnostic code for syntax that is
// lexically recognisable but disabled by the current options: under
// Strict-JSON it is always NotAllowedInJsonMode (the syntax is an AJIS
// extension forbidden by the preset), otherwise FeatureDisabled (the caller
// could have turned it on but chose not to).
func (s *Scanner) featureError(offset int) *diag.Error {
	if s.ro.Mode == options.StrictJSON {
		return diag.New(diag.NotAllowedInJsonMode, offset)
	}
	return diag.New(diag.FeatureDisabled, offset)
}

func (s *Scanner) withLineColumn(e *diag.Error, line, col int) *diag.Error {
	if s.ro.CaptureLineColumn {
		return e.WithLineColumn(line, col)
	}
	return e
}

// skipBOM discards a leading EF BB BF byte-order mark at offset 0. Any other
// byte sequence starting with 0xEF can never begin a legal top-level token
// (no production starts with a raw non-ASCII byte), so a partial match is
// left for the ordinary dispatch below to reject uniformly.
func (s *Scanner) skipBOM() error {
	s.bomChecked = true
	b0, ok, err := s.readByte()
	if err != nil || !ok || b0 != 0xEF {
		if ok {
			s.unreadByte()
		}
		return err
	}
	b1, ok, err := s.readByte()
	if err != nil {
		return err
	}
	if !ok || b1 != 0xBB {
		if ok {
			s.unreadByte()
		}
		return nil
	}
	b2, ok, err := s.readByte()
	if err != nil {
		return err
	}
	if !ok || b2 != 0xBF {
		if ok {
			s.unreadByte()
		}
		return nil
	}
	return nil
}

// Next recognises and returns the next token, which may be a structural,
// value, or skippable (Comment/Directive) token — StreamWalk has no notion
// of a token the caller must discard; every recognised lexeme becomes an
// event eventually. Next returns a Token with Kind==End, Start and End at
// the end-of-input offset, and a nil error at a clean end of input.
//
// The Token's Content aliases the source's internal buffer. Next releases
// the previous token's buffer region as its first action, on the
// assumption that the caller (the grammar driver) has already finished
// delivering the previous token to the visitor by the time it asks for the
// next one — the single-threaded, synchronous-visitor contract of
// spec.md §5 guarantees this.
func (s *Scanner) Next() (Token, *diag.Error) {
	s.src.Release()
	if !s.bomChecked {
		if err := s.skipBOM(); err != nil {
			return Token{}, diag.New(diag.IoError, s.offset())
		}
	}
	for {
		b, ok, err := s.readByte()
		if err != nil {
			return Token{}, diag.New(diag.IoError, s.offset())
		}
		if !ok {
			return Token{Kind: End, Start: s.offset(), End: s.offset()}, nil
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		startLine, startCol := s.prev.line, s.prev.col
		s.unreadByte()
		return s.dispatch(startLine, startCol)
	}
}

func (s *Scanner) dispatch(startLine, startCol int) (Token, *diag.Error) {
	s.src.Mark()
	atLineStart := s.atLineStart
	b, _, err := s.readByte()
	if err != nil {
		return Token{}, diag.New(diag.IoError, s.offset())
	}
	start := s.offset() - 1

	switch b {
	case '{':
		return s.structTok(LBrace, start), nil
	case '}':
		return s.structTok(RBrace, start), nil
	case '[':
		return s.structTok(LBracket, start), nil
	case ']':
		return s.structTok(RBracket, start), nil
	case ':':
		return s.structTok(Colon, start), nil
	case ',':
		return s.structTok(Comma, start), nil
	case '"':
		return s.scanString(start, startLine, startCol, '"')
	case '\'':
		if !s.ro.AllowSingleQuotes {
			return Token{}, s.withLineColumn(s.featureError(start), startLine, startCol)
		}
		return s.scanString(start, startLine, startCol, '\'')
	case '/':
		return s.scanSlashIntro(start, startLine, startCol)
	case '#':
		if atLineStart && s.ro.AllowDirectives {
			return s.scanDirective(start, startLine, startCol)
		}
		if atLineStart {
			return Token{}, s.withLineColumn(s.featureError(start), startLine, startCol)
		}
		return Token{}, s.withLineColumn(diag.New(diag.InvalidCharacter, start), startLine, startCol)
	case '+':
		if !s.ro.AllowLeadingPlusOnNumbers {
			return Token{}, s.withLineColumn(s.featureError(start), startLine, startCol)
		}
		return s.scanNumber(start, startLine, startCol, b)
	case '-':
		return s.scanNumber(start, startLine, startCol, b)
	}
	if isDigit(b) {
		return s.scanNumber(start, startLine, startCol, b)
	}
	if isIdentStart(b) {
		return s.scanWord(start, startLine, startCol)
	}
	return Token{}, s.withLineColumn(diag.New(diag.InvalidCharacter, start), startLine, startCol)
}

func (s *Scanner) structTok(k Kind, start int) Token {
	end := s.offset()
	return Token{Kind: k, Start: start, End: end, Line: s.prev.line, Column: s.prev.col}
}

func (s *Scanner) scanSlashIntro(start, startLine, startCol int) (Token, *diag.Error) {
	if !s.ro.AllowComments {
		return Token{}, s.withLineColumn(s.featureError(start), startLine, startCol)
	}
	b, ok, err := s.readByte()
	if err != nil {
		return Token{}, diag.New(diag.IoError, s.offset())
	}
	if !ok {
		return Token{}, s.withLineColumn(diag.New(diag.InvalidCharacter, start), startLine, startCol)
	}
	switch b {
	case '/':
		return s.scanLineComment(start, startLine, startCol)
	case '*':
		return s.scanBlockComment(start, startLine, startCol)
	}
	return Token{}, s.withLineColumn(diag.New(diag.InvalidCharacter, start), startLine, startCol)
}

// sliceFrom returns the bytes of the source's current Mark-to-here span,
// restricted to [contentStart, contentEnd), given that Mark was set at
// markOffset (always the token's Start in this scanner).
func (s *Scanner) sliceFrom(markOffset, contentStart, contentEnd int) []byte {
	raw := s.src.Slice()
	return raw[contentStart-markOffset : contentEnd-markOffset]
}

func (s *Scanner) scanLineComment(start, startLine, startCol int) (Token, *diag.Error) {
	contentStart := s.offset()
	for {
		b, ok, err := s.readByte()
		if err != nil {
			return Token{}, diag.New(diag.IoError, s.offset())
		}
		if !ok || b == '\n' {
			if ok {
				s.unreadByte()
			}
			break
		}
		if b == '\r' {
			s.unreadByte()
			break
		}
		if s.offset()-start > s.ro.MaxTokenBytes {
			return Token{}, s.withLineColumn(diag.New(diag.MaxTokenBytesExceeded, start), startLine, startCol)
		}
	}
	end := s.offset()
	body := s.sliceFrom(start, contentStart, end)
	trimmed := trimBoth(body)
	return Token{Kind: Comment, Start: start, End: end, Content: body[trimmed[0]:trimmed[1]], Line: startLine, Column: startCol}, nil
}

func (s *Scanner) scanBlockComment(start, startLine, startCol int) (Token, *diag.Error) {
	contentStart := s.offset()
	contentEnd := contentStart
	for {
		b, ok, err := s.readByte()
		if err != nil {
			return Token{}, diag.New(diag.IoError, s.offset())
		}
		if !ok {
			if s.ro.Mode == options.Lax {
				end := s.offset()
				body := s.sliceFrom(start, contentStart, end)
				trimmed := trimBoth(body)
				return Token{Kind: Comment, Start: start, End: end, Content: body[trimmed[0]:trimmed[1]], Line: startLine, Column: startCol}, nil
			}
			return Token{}, s.withLineColumn(diag.New(diag.UnexpectedEndOfInput, start), startLine, startCol)
		}
		if b == '*' {
			nb, ok2, err2 := s.readByte()
			if err2 != nil {
				return Token{}, diag.New(diag.IoError, s.offset())
			}
			if ok2 && nb == '/' {
				end := s.offset()
				body := s.sliceFrom(start, contentStart, contentEnd)
				trimmed := trimBoth(body)
				return Token{Kind: Comment, Start: start, End: end, Content: body[trimmed[0]:trimmed[1]], Line: startLine, Column: startCol}, nil
			}
			if ok2 {
				s.unreadByte()
			}
			contentEnd = s.offset()
			continue
		}
		if s.offset()-start > s.ro.MaxTokenBytes {
			return Token{}, s.withLineColumn(diag.New(diag.MaxTokenBytesExceeded, start), startLine, startCol)
		}
		contentEnd = s.offset()
	}
}

func (s *Scanner) scanDirective(start, startLine, startCol int) (Token, *diag.Error) {
	contentStart := s.offset()
	for {
		b, ok, err := s.readByte()
		if err != nil {
			return Token{}, diag.New(diag.IoError, s.offset())
		}
		if !ok || b == '\n' {
			if ok {
				s.unreadByte()
			}
			break
		}
		if b == '\r' {
			s.unreadByte()
			break
		}
		if s.offset()-start > s.ro.MaxTokenBytes {
			return Token{}, s.withLineColumn(diag.New(diag.MaxTokenBytesExceeded, start), startLine, startCol)
		}
	}
	end := s.offset()
	body := s.sliceFrom(start, contentStart, end)
	trimmed := trimBoth(body)
	return Token{Kind: Directive, Start: start, End: end, Content: body[trimmed[0]:trimmed[1]], Line: startLine, Column: startCol}, nil
}

// trimBoth trims leading/trailing spaces and tabs from b and returns the
// surviving [start,end) offsets relative to b's own start.
func trimBoth(b []byte) [2]int {
	start, end := 0, len(b)
	for start < end && (b[start] == ' ' || b[start] == '\t') {
		start++
	}
	for end > start && (b[end-1] == ' ' || b[end-1] == '\t') {
		end--
	}
	return [2]int{start, end}
}

func (s *Scanner) scanString(start, startLine, startCol int, quote byte) (Token, *diag.Error) {
	contentStart := s.offset()
	for {
		b, ok, err := s.readByte()
		if err != nil {
			return Token{}, diag.New(diag.IoError, s.offset())
		}
		if !ok {
			if s.ro.Mode == options.Lax {
				end := s.offset()
				return Token{Kind: String, Start: start, End: end, Content: s.sliceFrom(start, contentStart, end), Line: startLine, Column: startCol}, nil
			}
			return Token{}, s.withLineColumn(diag.New(diag.UnexpectedEndOfInput, start), startLine, startCol)
		}
		if b == quote {
			contentEnd := s.offset() - 1
			end := s.offset()
			return Token{Kind: String, Start: start, End: end, Content: s.sliceFrom(start, contentStart, contentEnd), Line: startLine, Column: startCol}, nil
		}
		if b == '\\' {
			eb, ok, err := s.readByte()
			if err != nil {
				return Token{}, diag.New(diag.IoError, s.offset())
			}
			if !ok {
				if s.ro.Mode == options.Lax {
					end := s.offset()
					return Token{Kind: String, Start: start, End: end, Content: s.sliceFrom(start, contentStart, end), Line: startLine, Column: startCol}, nil
				}
				return Token{}, s.withLineColumn(diag.New(diag.UnexpectedEndOfInput, start), startLine, startCol)
			}
			if !isValidEscape(eb) && s.ro.Mode != options.Lax {
				return Token{}, s.withLineColumn(diag.New(diag.InvalidEscapeSequence, s.offset()-2), startLine, startCol)
			}
			if eb == 'u' {
				if err := s.scanUnicodeEscapeDigits(startLine, startCol); err != nil && s.ro.Mode != options.Lax {
					return Token{}, err
				}
			}
			if s.offset()-start > s.ro.MaxTokenBytes {
				return Token{}, s.withLineColumn(diag.New(diag.MaxTokenBytesExceeded, start), startLine, startCol)
			}
			continue
		}
		if b < 0x20 && s.ro.Mode != options.Lax {
			return Token{}, s.withLineColumn(diag.New(diag.InvalidCharacter, s.offset()-1), startLine, startCol)
		}
		if s.offset()-start > s.ro.MaxTokenBytes {
			return Token{}, s.withLineColumn(diag.New(diag.MaxTokenBytesExceeded, start), startLine, startCol)
		}
	}
}

func isValidEscape(b byte) bool {
	switch b {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u':
		return true
	}
	return false
}

func (s *Scanner) scanUnicodeEscapeDigits(startLine, startCol int) *diag.Error {
	for i := 0; i < 4; i++ {
		b, ok, err := s.readByte()
		if err != nil {
			return diag.New(diag.IoError, s.offset())
		}
		if !ok || !isHexDigit(b) {
			if ok {
				s.unreadByte()
			}
			return s.withLineColumn(diag.New(diag.InvalidUnicodeEscape, s.offset()), startLine, startCol)
		}
	}
	return nil
}

// scanNumber recognises a JSON number plus the AJIS extensions: an optional
// leading sign (the caller has already gated '+' on AllowLeadingPlusOnNumbers),
// alternate numeral bases, digit separators, and the NaN/Infinity/-Infinity
// literals, per spec.md §4.2.
func (s *Scanner) scanNumber(start, startLine, startCol int, first byte) (Token, *diag.Error) {
	if first == '-' && s.ro.AllowNaNAndInfinity {
		if b, ok := s.peekByte(); ok && b == 'I' {
			if s.matchWord("Infinity") {
				end := s.offset()
				return Token{Kind: Number, Start: start, End: end, Content: s.sliceFrom(start, start, end), Line: startLine, Column: startCol}, nil
			}
			return Token{}, s.withLineColumn(diag.New(diag.InvalidNumber, start), startLine, startCol)
		}
	}

	// first is the sign or the first digit, already consumed by dispatch.
	// If it was a sign, the actual first digit still needs reading.
	firstDigit := first
	if first == '+' || first == '-' {
		b, ok, err := s.readByte()
		if err != nil {
			return Token{}, diag.New(diag.IoError, s.offset())
		}
		if !ok || !isDigit(b) {
			if ok {
				s.unreadByte()
			}
			return Token{}, s.withLineColumn(diag.New(diag.InvalidNumber, start), startLine, startCol)
		}
		firstDigit = b
	}

	if firstDigit == '0' {
		if base, ok := s.tryNumberBase(); ok {
			if !s.ro.AllowNumberBases {
				return Token{}, s.withLineColumn(s.featureError(start), startLine, startCol)
			}
			if err := s.scanDigitsOfBase(base, start, startLine, startCol); err != nil {
				return Token{}, err
			}
			end := s.offset()
			return Token{Kind: Number, Start: start, End: end, Content: s.sliceFrom(start, start, end), Line: startLine, Column: startCol}, nil
		}
		// A leading zero must not be followed by another digit (no
		// leading-zero integers in the JSON number grammar).
		if b, ok := s.peekByte(); ok && (isDigit(b) || b == '_') {
			return Token{}, s.withLineColumn(diag.New(diag.InvalidNumber, start), startLine, startCol)
		}
	} else {
		if err := s.consumeMoreDigits(start, startLine, startCol); err != nil {
			return Token{}, err
		}
	}

	// Fractional part.
	if b, ok := s.peekByte(); ok && b == '.' {
		s.readByte()
		if err := s.requireDigits(start, startLine, startCol); err != nil {
			return Token{}, err
		}
	}

	// Exponent.
	if b, ok := s.peekByte(); ok && (b == 'e' || b == 'E') {
		s.readByte()
		if b2, ok := s.peekByte(); ok && (b2 == '+' || b2 == '-') {
			s.readByte()
		}
		if err := s.requireDigits(start, startLine, startCol); err != nil {
			return Token{}, err
		}
	}

	end := s.offset()
	return Token{Kind: Number, Start: start, End: end, Content: s.sliceFrom(start, start, end), Line: startLine, Column: startCol}, nil
}

// peekByte reads one byte and immediately pushes it back, for one-byte
// lookahead decisions that must not consume on a non-match.
func (s *Scanner) peekByte() (byte, bool) {
	b, ok, err := s.readByte()
	if err != nil || !ok {
		return 0, false
	}
	s.unreadByte()
	return b, true
}

// matchWord consumes exactly word if the upcoming bytes spell it. On a
// mismatch it only pushes back the single mismatching byte, leaving any
// matched prefix consumed — acceptable because every call site treats a
// mismatch as an immediately terminal error for the current token, so the
// exact resulting source position is never relied upon afterward.
func (s *Scanner) matchWord(word string) bool {
	for i := 0; i < len(word); i++ {
		b, ok, err := s.readByte()
		if err != nil || !ok || b != word[i] {
			if ok {
				s.unreadByte()
			}
			return false
		}
	}
	return true
}

// tryNumberBase is called with the number's leading '0' already consumed.
// It peeks the next byte for a base-letter and, on a match, consumes it too.
func (s *Scanner) tryNumberBase() (byte, bool) {
	b, ok := s.peekByte()
	if !ok {
		return 0, false
	}
	switch b {
	case 'x', 'X', 'b', 'B', 'o', 'O':
		s.readByte()
		return b, true
	}
	return 0, false
}

func (s *Scanner) scanDigitsOfBase(base byte, start, startLine, startCol int) *diag.Error {
	valid := isHexDigit
	if base == 'b' || base == 'B' {
		valid = func(b byte) bool { return b == '0' || b == '1' }
	} else if base == 'o' || base == 'O' {
		valid = func(b byte) bool { return b >= '0' && b <= '7' }
	}
	count := 0
	lastWasSep := false
	for {
		b, ok, err := s.readByte()
		if err != nil {
			return diag.New(diag.IoError, s.offset())
		}
		if !ok {
			break
		}
		if b == '_' {
			if !s.ro.AllowDigitSeparators || count == 0 || lastWasSep {
				s.unreadByte()
				break
			}
			lastWasSep = true
			continue
		}
		if !valid(b) {
			s.unreadByte()
			break
		}
		lastWasSep = false
		count++
		if s.offset()-start > s.ro.MaxTokenBytes {
			return s.withLineColumn(diag.New(diag.MaxTokenBytesExceeded, start), startLine, startCol)
		}
	}
	if count == 0 || lastWasSep {
		return s.withLineColumn(diag.New(diag.InvalidNumber, start), startLine, startCol)
	}
	return nil
}

// consumeMoreDigits consumes zero or more additional decimal digits (with
// digit separators between them, when enabled) beyond a first digit the
// caller already consumed. A trailing separator with nothing after it is an
// error.
func (s *Scanner) consumeMoreDigits(start, startLine, startCol int) *diag.Error {
	lastWasSep := false
	for {
		b, ok, err := s.readByte()
		if err != nil {
			return diag.New(diag.IoError, s.offset())
		}
		if !ok {
			break
		}
		if b == '_' {
			if !s.ro.AllowDigitSeparators || lastWasSep {
				s.unreadByte()
				break
			}
			lastWasSep = true
			continue
		}
		if !isDigit(b) {
			s.unreadByte()
			break
		}
		lastWasSep = false
		if s.offset()-start > s.ro.MaxTokenBytes {
			return s.withLineColumn(diag.New(diag.MaxTokenBytesExceeded, start), startLine, startCol)
		}
	}
	if lastWasSep {
		return s.withLineColumn(diag.New(diag.InvalidNumber, start), startLine, startCol)
	}
	return nil
}

// requireDigits consumes one or more decimal digits, used for the
// fractional and exponent parts of a number where at least one digit is
// mandatory and none has been consumed yet.
func (s *Scanner) requireDigits(start, startLine, startCol int) *diag.Error {
	b, ok, err := s.readByte()
	if err != nil {
		return diag.New(diag.IoError, s.offset())
	}
	if !ok || !isDigit(b) {
		if ok {
			s.unreadByte()
		}
		return s.withLineColumn(diag.New(diag.InvalidNumber, start), startLine, startCol)
	}
	return s.consumeMoreDigits(start, startLine, startCol)
}

// scanWord consumes the maximal run of identifier-class bytes starting at
// start and classifies the whole spelling at once: this produces the same
// tie-break outcomes as an incremental true/false/null -> typed-literal ->
// identifier attempt order (spec.md §4.2's "Tie-breaks"), because none of
// these productions share a spelling prefix, while being far simpler to get
// right across EOF and boundary cases.
func (s *Scanner) scanWord(start, startLine, startCol int) (Token, *diag.Error) {
	for {
		b, ok, err := s.readByte()
		if err != nil {
			return Token{}, diag.New(diag.IoError, s.offset())
		}
		if !ok || !isIdentCont(b) {
			if ok {
				s.unreadByte()
			}
			break
		}
		if s.offset()-start > s.ro.MaxTokenBytes {
			return Token{}, s.withLineColumn(diag.New(diag.MaxTokenBytesExceeded, start), startLine, startCol)
		}
	}
	end := s.offset()
	word := s.sliceFrom(start, start, end)

	// TRUE/FALSE/NULL carry no slice (spec.md §6.2): the kind alone is the
	// payload, so Content is left nil for these three.
	switch string(word) {
	case "true":
		return Token{Kind: True, Start: start, End: end, Line: startLine, Column: startCol}, nil
	case "false":
		return Token{Kind: False, Start: start, End: end, Line: startLine, Column: startCol}, nil
	case "null":
		return Token{Kind: Null, Start: start, End: end, Line: startLine, Column: startCol}, nil
	}
	tok := Token{Start: start, End: end, Content: word, Line: startLine, Column: startCol}
	if s.ro.AllowNaNAndInfinity && (string(word) == "NaN" || string(word) == "Infinity") {
		tok.Kind = Number
		return tok, nil
	}
	if s.ro.Mode != options.StrictJSON && isTypedLiteralWord(word) {
		tok.Kind = Number
		return tok, nil
	}
	// An unrecognized word is always tokenized as an Identifier, regardless
	// of Mode: the scanner's job is lexical recognition, not legality.
	// Whether an Identifier may appear here (trailing garbage after the
	// root value, an unquoted property name, a bare identifier value) is a
	// grammar-level, position-dependent decision (internal/grammar's
	// disabledErr and its Run/readName/readValueFrom call sites), mirroring
	// how String/Identifier property names are already handled.
	tok.Kind = Identifier
	return tok, nil
}

func isTypedLiteralWord(word []byte) bool {
	if len(word) < 2 || word[0] < 'A' || word[0] > 'Z' {
		return false
	}
	for _, b := range word[1:] {
		if b < '0' || b > '9' {
			return false
		}
	}
	return true
}
