package ajis

import (
	"github.com/afrowaveltd/ajis-go/internal/diag"
	"github.com/afrowaveltd/ajis-go/internal/grammar"
	"github.com/afrowaveltd/ajis-go/internal/options"
	"github.com/afrowaveltd/ajis-go/internal/scanner"
)

// previewable is satisfied by Source implementations that retain their
// entire input regardless of read position. Only a span source does: a
// stream source discards bytes as its buffer compacts, so it cannot answer
// a preview request once the walk has moved past them.
type previewable interface {
	FullBytes() []byte
}

// Walk drives a complete StreamWalk over src under cfg, delivering events,
// at most one error, and (on success) exactly one completion notification
// to visitor. It returns the same error passed to visitor.OnError, or nil
// on success — most callers only need one of the two channels, so both
// are provided.
func Walk(src Source, cfg Config, visitor Visitor) *Error {
	return runWalk(src, cfg, visitor)
}

// runWalk is the single implementation every Engine.Run delegates to: per
// spec §4.7, the choice of engine changes memory/throughput behavior, never
// the produced event sequence, so there is exactly one code path from
// resolved options through to visitor calls.
func runWalk(src Source, cfg Config, visitor Visitor) *Error {
	ro := options.Resolve(cfg)

	sc := scanner.New(src, &ro)
	driver := grammar.New(sc, &ro)

	emit := func(ev grammar.Event) bool {
		out := Event{
			Kind:   ev.Kind,
			Slice:  Slice{Bytes: ev.Raw, Flags: ev.Flags},
			Offset: ev.Offset,
		}
		if ro.CaptureLineColumn {
			out.Line, out.Column = ev.Line, ev.Column
		}
		return visitor.OnEvent(out)
	}

	// driver.Run emits END_DOCUMENT itself before returning nil on success
	// (see internal/grammar), so completion and error are already mutually
	// exclusive at this call boundary: exactly one of the two branches
	// below runs.
	if err := driver.Run(emit); err != nil {
		if ro.IncludePreviewInErrors {
			if ps, ok := src.(previewable); ok {
				if p := diag.Preview(ps.FullBytes(), err.Offset, ro.PreviewBytes); p != nil {
					err = err.WithPreview(p)
				}
			}
		}
		visitor.OnError(err)
		return err
	}
	visitor.OnComplete()
	return nil
}
