package grammar

import (
	"testing"

	"github.com/afrowaveltd/ajis-go/internal/diag"
	"github.com/afrowaveltd/ajis-go/internal/events"
	"github.com/afrowaveltd/ajis-go/internal/options"
	"github.com/afrowaveltd/ajis-go/internal/scanner"
	"github.com/afrowaveltd/ajis-go/internal/source"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type gotEvent struct {
	Kind events.Kind
	Raw  string
}

func run(t *testing.T, input string, ro options.Resolved) ([]gotEvent, *diag.Error) {
	t.Helper()
	sc := scanner.New(source.NewSpan([]byte(input)), &ro)
	d := New(sc, &ro)
	var got []gotEvent
	err := d.Run(func(ev Event) bool {
		got = append(got, gotEvent{ev.Kind, string(ev.Raw)})
		return true
	})
	return got, err
}

func TestEmptyObject(t *testing.T) {
	t.Parallel()

	ro := options.Resolve(options.New(options.StrictJSON))
	got, err := run(t, `{}`, ro)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []gotEvent{{events.BeginObject, ""}, {events.EndObject, ""}, {events.EndDocument, ""}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFlatObject(t *testing.T) {
	t.Parallel()

	ro := options.Resolve(options.New(options.StrictJSON))
	got, err := run(t, `{"a":1,"b":"x"}`, ro)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []gotEvent{
		{events.BeginObject, ""},
		{events.Name, "a"}, {events.Number, "1"},
		{events.Name, "b"}, {events.String, "x"},
		{events.EndObject, ""},
		{events.EndDocument, ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNestedArray(t *testing.T) {
	t.Parallel()

	ro := options.Resolve(options.New(options.StrictJSON))
	got, err := run(t, `[1,[2,3],null]`, ro)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []gotEvent{
		{events.BeginArray, ""},
		{events.Number, "1"},
		{events.BeginArray, ""}, {events.Number, "2"}, {events.Number, "3"}, {events.EndArray, ""},
		{events.Null, ""},
		{events.EndArray, ""},
		{events.EndDocument, ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTrailingGarbage(t *testing.T) {
	t.Parallel()

	ro := options.Resolve(options.New(options.StrictJSON))
	_, err := run(t, `1 x`, ro)
	if err == nil || err.Code != diag.TrailingGarbage || err.Offset != 2 {
		t.Fatalf("err = %v, want TrailingGarbage at offset 2", err)
	}
}

func TestDepthLimit(t *testing.T) {
	t.Parallel()

	cfg := options.New(options.StrictJSON)
	cfg.MaxDepth = 2
	ro := options.Resolve(cfg)
	// three nested arrays exceeds a depth limit of 2; the third '[' is at offset 2.
	_, err := run(t, `[[[]]]`, ro)
	if err == nil || err.Code != diag.MaxDepthExceeded || err.Offset != 2 {
		t.Fatalf("err = %v, want MaxDepthExceeded at offset 2", err)
	}
}

func TestAJISExtensions(t *testing.T) {
	t.Parallel()

	cfg := options.New(options.AJIS)
	ro := options.Resolve(cfg)
	got, err := run(t, `{id: 0xFF, /* note */ tags: [1,2,]}`, ro)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []gotEvent{
		{events.BeginObject, ""},
		{events.Name, "id"}, {events.Number, "0xFF"},
		{events.Comment, "note"},
		{events.Name, "tags"},
		{events.BeginArray, ""}, {events.Number, "1"}, {events.Number, "2"}, {events.EndArray, ""},
		{events.EndObject, ""},
		{events.EndDocument, ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAJISExtensionsRejectedUnderStrictJSON(t *testing.T) {
	t.Parallel()

	ro := options.Resolve(options.New(options.StrictJSON))
	_, err := run(t, `{id: 0xFF, /* note */ tags: [1,2,]}`, ro)
	if err == nil || err.Code != diag.NotAllowedInJsonMode || err.Offset != 1 {
		t.Fatalf("err = %v, want NotAllowedInJsonMode at offset 1", err)
	}
}

func TestTrailingCommaRequiresOption(t *testing.T) {
	t.Parallel()

	ro := options.Resolve(options.New(options.StrictJSON))
	_, err := run(t, `[1,2,]`, ro)
	if err == nil || err.Code != diag.UnexpectedToken {
		t.Fatalf("err = %v, want UnexpectedToken", err)
	}
}

func TestVisitorAbort(t *testing.T) {
	t.Parallel()

	cfg := options.New(options.StrictJSON)
	cfg.AllowVisitorAbort = true
	ro := options.Resolve(cfg)
	sc := scanner.New(source.NewSpan([]byte(`[1,2,3]`)), &ro)
	d := New(sc, &ro)

	var seen int
	err := d.Run(func(ev Event) bool {
		seen++
		return seen < 2 // abort right after BEGIN_ARRAY
	})
	if err == nil || err.Code != diag.VisitorAbort {
		t.Fatalf("err = %v, want VisitorAbort", err)
	}
}

func TestVisitorAbortIgnoredWhenDisabled(t *testing.T) {
	t.Parallel()

	cfg := options.New(options.StrictJSON)
	cfg.AllowVisitorAbort = false
	ro := options.Resolve(cfg)

	sc := scanner.New(source.NewSpan([]byte(`[1]`)), &ro)
	d := New(sc, &ro)
	var seen int
	err := d.Run(func(ev Event) bool {
		seen++
		return false
	})
	if err != nil {
		t.Fatalf("err = %v, want nil (abort disabled, walk runs to completion)", err)
	}
	if seen == 0 {
		t.Fatalf("no events observed")
	}
}

func TestUnclosedObjectDefaultsToError(t *testing.T) {
	t.Parallel()

	ro := options.Resolve(options.New(options.Lax))
	_, err := run(t, `{"a":1`, ro)
	if err == nil || err.Code != diag.UnexpectedEndOfInput {
		t.Fatalf("err = %v, want UnexpectedEndOfInput (TolerateUnclosedContainers off by default)", err)
	}
}

func TestUnclosedObjectToleratedWhenOptedIn(t *testing.T) {
	t.Parallel()

	cfg := options.New(options.Lax)
	cfg.Lax.TolerateUnclosedContainers = true
	ro := options.Resolve(cfg)
	got, err := run(t, `{"a":1`, ro)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []gotEvent{
		{events.BeginObject, ""},
		{events.Name, "a"}, {events.Number, "1"},
		{events.EndObject, ""},
		{events.EndDocument, ""},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBareIdentifierValueOnlyUnderLax(t *testing.T) {
	t.Parallel()

	ajisRo := options.Resolve(options.New(options.AJIS))
	if _, err := run(t, `fieldName`, ajisRo); err == nil {
		t.Fatalf("AJIS mode accepted a bare identifier value, want an error")
	}

	laxRo := options.Resolve(options.New(options.Lax))
	got, err := run(t, `fieldName`, laxRo)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []gotEvent{{events.Identifier, "fieldName"}, {events.EndDocument, ""}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
