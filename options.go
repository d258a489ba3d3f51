package ajis

import "github.com/afrowaveltd/ajis-go/internal/options"

// Mode selects one of the three syntax presets described in spec §4.6.
type Mode = options.Mode

const (
	ModeStrictJSON = options.StrictJSON
	ModeAJIS       = options.AJIS
	ModeLax        = options.Lax
)

// LaxOptions gathers the two Lax-only recovery toggles spec §9 promotes
// from open questions into explicit configuration.
type LaxOptions = options.LaxOptions

// Config is the immutable-once-resolved configuration record consulted for
// the duration of a walk, per spec §6.5. Build one with NewConfig, then
// flip individual fields before passing it to Walk.
type Config = options.Config

// NewConfig returns a Config pre-populated with mode's preset defaults.
func NewConfig(mode Mode) Config {
	return options.New(mode)
}
