package sliceflags

import "testing"

func TestCompute(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		desc         string
		raw          string
		isIdentifier bool
		isNumber     bool
		want         Flags
	}{
		{"plain string", "hello", false, false, 0},
		{"escaped string", `a\nb`, false, false, HasEscapes},
		{"non-ascii string", "café", false, false, HasNonAscii},
		{"identifier", "fieldName", true, false, IsIdentifierStyle},
		{"decimal number", "123", false, true, 0},
		{"negative decimal", "-123", false, true, 0},
		{"hex number", "0xFF", false, true, IsNumberHex},
		{"negative hex", "-0xFF", false, true, IsNumberHex},
		{"binary number", "0b101", false, true, IsNumberBinary},
		{"octal number", "0o17", false, true, IsNumberOctal},
		{"typed literal", "T1707489221", false, true, IsNumberTyped},
		{"NaN is not typed", "NaN", false, true, 0},
		{"escapes and non-ascii", `café\n`, false, false, HasEscapes | HasNonAscii},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			got := Compute([]byte(tc.raw), tc.isIdentifier, tc.isNumber)
			if got != tc.want {
				t.Errorf("Compute(%q, %v, %v) = %v, want %v", tc.raw, tc.isIdentifier, tc.isNumber, got, tc.want)
			}
		})
	}
}

func TestHasNonAsciiIsOverBytesNotRunes(t *testing.T) {
	t.Parallel()

	// "é" is two UTF-8 bytes (0xC3 0xA9), both >= 0x80: a single decoded
	// scalar must still set the byte-level flag, per spec.md §9's third
	// open-question note.
	got := Compute([]byte("é"), false, false)
	if !got.Has(HasNonAscii) {
		t.Errorf("Compute(%q, ...) missing HasNonAscii", "é")
	}
}

func TestFlagsHas(t *testing.T) {
	t.Parallel()

	f := HasEscapes | IsNumberHex
	if !f.Has(HasEscapes) {
		t.Error("Has(HasEscapes) = false, want true")
	}
	if f.Has(HasNonAscii) {
		t.Error("Has(HasNonAscii) = true, want false")
	}
	if !f.Has(HasEscapes | IsNumberHex) {
		t.Error("Has(HasEscapes|IsNumberHex) = false, want true")
	}
}
