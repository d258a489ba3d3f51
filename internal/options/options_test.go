package options

import "testing"

func TestNewPresets(t *testing.T) {
	t.Parallel()

	strict := New(StrictJSON)
	if strict.AllowComments || strict.AllowTrailingCommas || strict.AllowNumberBases {
		t.Errorf("StrictJSON preset has an allow* flag on: %+v", strict)
	}

	ajis := New(AJIS)
	for name, got := range map[string]bool{
		"AllowComments":              ajis.AllowComments,
		"AllowDirectives":            ajis.AllowDirectives,
		"AllowTrailingCommas":        ajis.AllowTrailingCommas,
		"AllowUnquotedPropertyNames": ajis.AllowUnquotedPropertyNames,
		"AllowNumberBases":           ajis.AllowNumberBases,
		"AllowDigitSeparators":       ajis.AllowDigitSeparators,
	} {
		if !got {
			t.Errorf("AJIS preset: %s = false, want true", name)
		}
	}
	if ajis.AllowSingleQuotes || ajis.AllowLeadingPlusOnNumbers || ajis.AllowNaNAndInfinity {
		t.Errorf("AJIS preset has an off-by-default flag on: %+v", ajis)
	}

	lax := New(Lax)
	if !lax.Lax.AllowBareIdentifierValues {
		t.Errorf("Lax preset: AllowBareIdentifierValues = false, want true")
	}
	if lax.Lax.TolerateUnclosedContainers {
		t.Errorf("Lax preset: TolerateUnclosedContainers = true, want false (opt-in only)")
	}
}

func TestResolveEnforcesStrictJSON(t *testing.T) {
	t.Parallel()

	cfg := New(AJIS)
	cfg.Mode = StrictJSON // simulate a caller hand-flipping flags after picking AJIS defaults
	ro := Resolve(cfg)

	if ro.AllowComments || ro.AllowDirectives || ro.AllowTrailingCommas ||
		ro.AllowSingleQuotes || ro.AllowUnquotedPropertyNames || ro.AllowNumberBases ||
		ro.AllowDigitSeparators || ro.AllowLeadingPlusOnNumbers || ro.AllowNaNAndInfinity {
		t.Errorf("Resolve did not force Strict-JSON's allow* flags off: %+v", ro.Config)
	}
	if ro.Lax != (LaxOptions{}) {
		t.Errorf("Resolve did not zero Lax suboptions under Strict-JSON: %+v", ro.Lax)
	}
}

func TestResolveZeroesLaxOutsideLaxMode(t *testing.T) {
	t.Parallel()

	cfg := Config{Mode: AJIS, Lax: LaxOptions{AllowBareIdentifierValues: true, TolerateUnclosedContainers: true}}
	ro := Resolve(cfg)

	if ro.Lax.AllowBareIdentifierValues || ro.Lax.TolerateUnclosedContainers {
		t.Errorf("Resolve left Lax suboptions on under AJIS mode: %+v", ro.Lax)
	}
}

func TestResolveAppliesDefaults(t *testing.T) {
	t.Parallel()

	ro := Resolve(Config{Mode: AJIS})
	if ro.MaxDepth != defaultMaxDepth {
		t.Errorf("MaxDepth = %d, want default %d", ro.MaxDepth, defaultMaxDepth)
	}
	if ro.MaxTokenBytes != defaultMaxTokenBytes {
		t.Errorf("MaxTokenBytes = %d, want default %d", ro.MaxTokenBytes, defaultMaxTokenBytes)
	}

	ro2 := Resolve(Config{Mode: AJIS, IncludePreviewInErrors: true})
	if ro2.PreviewBytes != defaultPreviewBytes {
		t.Errorf("PreviewBytes = %d, want default %d", ro2.PreviewBytes, defaultPreviewBytes)
	}
}

func TestModeString(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		mode Mode
		want string
	}{
		{StrictJSON, "Strict-JSON"},
		{AJIS, "AJIS"},
		{Lax, "Lax"},
		{Mode(99), "Unknown"},
	} {
		if got := tc.mode.String(); got != tc.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tc.mode, got, tc.want)
		}
	}
}
