// Package options implements the mode/option matrix of spec.md §4.6: a
// Config record a caller assembles (by preset and then by hand), and a
// Resolve step that collapses it into a frozen Resolved vector the scanner
// and grammar driver consult for the rest of a walk. No component mutates a
// Resolved value after Resolve returns it, satisfying the determinism axiom
// of §4.6: fixed input plus fixed resolved options always yields the same
// event sequence and the same error tuple.
package options

// Mode selects one of the three syntax presets of spec.md §4.6.
type Mode int

const (
	StrictJSON Mode = iota
	AJIS
	Lax
)

func (m Mode) String() string {
	switch m {
	case StrictJSON:
		return "Strict-JSON"
	case AJIS:
		return "AJIS"
	case Lax:
		return "Lax"
	default:
		return "Unknown"
	}
}

// LaxOptions gathers the two recovery toggles spec.md §9's open questions
// promote into explicit configuration rather than silently guessed
// behavior. Both are off in a zero Config; the Lax preset turns on
// AllowBareIdentifierValues only.
type LaxOptions struct {
	// AllowBareIdentifierValues permits an Identifier token standalone in
	// value position (spec.md §9, first bullet). Meaningful only in Lax;
	// AJIS and Strict-JSON never accept a bare identifier as a value.
	AllowBareIdentifierValues bool

	// TolerateUnclosedContainers makes end-of-input inside an open Object or
	// Array close it gracefully instead of reporting
	// UnexpectedEndOfInput (spec.md §9, second bullet). Off by default even
	// under Lax: callers must opt in explicitly.
	TolerateUnclosedContainers bool
}

// Config is the immutable-once-resolved configuration record of spec.md
// §6.5. Construct one with New, which applies the Mode's preset defaults,
// then flip individual fields before passing it to Walk.
type Config struct {
	Mode Mode

	AllowComments              bool
	AllowDirectives            bool
	AllowTrailingCommas        bool
	AllowSingleQuotes          bool
	AllowUnquotedPropertyNames bool
	AllowNumberBases           bool
	AllowDigitSeparators       bool
	AllowLeadingPlusOnNumbers  bool
	AllowNaNAndInfinity        bool

	// AllowVisitorAbort enables the cooperative-abort continuation decision
	// of spec.md §4.5. It is independent of Mode.
	AllowVisitorAbort bool

	MaxDepth              int
	MaxTokenBytes         int
	MaxDocumentBytes      int // 0 means unlimited
	MaxStringBytes        int // 0 means unlimited
	MaxPropertyNameBytes  int // 0 means unlimited
	CaptureLineColumn     bool
	IncludePreviewInErrors bool
	PreviewBytes          int

	Lax LaxOptions
}

// Sane defaults for the optional numeric limits; spec.md leaves the exact
// numbers to the implementation (§4.6 only names the options, not their
// defaults).
const (
	defaultMaxDepth      = 1000
	defaultMaxTokenBytes = 1 << 20 // 1 MiB
	defaultPreviewBytes  = 32
)

// New returns a Config pre-populated with mode's preset defaults, per the
// table in spec.md §4.6. The returned value is a plain mutable struct: flip
// any field before calling Resolve/Walk to override a single default
// without abandoning the rest of the preset.
func New(mode Mode) Config {
	c := Config{
		Mode:              mode,
		AllowVisitorAbort: true,
		MaxDepth:          defaultMaxDepth,
		MaxTokenBytes:     defaultMaxTokenBytes,
		PreviewBytes:      defaultPreviewBytes,
	}
	switch mode {
	case StrictJSON:
		// All allow* flags left false; see Resolve for the hard enforcement.
	case AJIS:
		c.AllowComments = true
		c.AllowDirectives = true
		c.AllowTrailingCommas = true
		c.AllowUnquotedPropertyNames = true
		c.AllowNumberBases = true
		c.AllowDigitSeparators = true
	case Lax:
		c.AllowComments = true
		c.AllowDirectives = true
		c.AllowTrailingCommas = true
		c.AllowUnquotedPropertyNames = true
		c.AllowNumberBases = true
		c.AllowDigitSeparators = true
		c.Lax.AllowBareIdentifierValues = true
	}
	return c
}

// Resolved is the frozen, validated vector consulted during a walk. It is
// never mutated after Resolve produces it.
type Resolved struct {
	Config
}

// Resolve validates and freezes cfg. Strict-JSON forces every syntax allow*
// flag (all but AllowVisitorAbort) and Lax suboption off regardless of what
// the caller set, since the mode
// preset is a hard contract ("All 'allow*' flags above forced OFF",
// spec.md §4.6), not merely a default a caller may silently violate.
func Resolve(cfg Config) Resolved {
	r := Resolved{Config: cfg}
	if r.MaxDepth <= 0 {
		r.MaxDepth = defaultMaxDepth
	}
	if r.MaxTokenBytes <= 0 {
		r.MaxTokenBytes = defaultMaxTokenBytes
	}
	if r.IncludePreviewInErrors && r.PreviewBytes <= 0 {
		r.PreviewBytes = defaultPreviewBytes
	}
	if r.Mode == StrictJSON {
		r.AllowComments = false
		r.AllowDirectives = false
		r.AllowTrailingCommas = false
		r.AllowSingleQuotes = false
		r.AllowUnquotedPropertyNames = false
		r.AllowNumberBases = false
		r.AllowDigitSeparators = false
		r.AllowLeadingPlusOnNumbers = false
		r.AllowNaNAndInfinity = false
		r.Lax = LaxOptions{}
	}
	if r.Mode != Lax {
		r.Lax.AllowBareIdentifierValues = false
		r.Lax.TolerateUnclosedContainers = false
	}
	return r
}
