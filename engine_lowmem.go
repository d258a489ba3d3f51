package ajis

import "io"

// lowMemReadSize is a small stream refill chunk size, trading more
// frequent underlying reads for a smaller peak buffer when memory is at a
// premium (e.g. many concurrent walks over small inputs).
const lowMemReadSize = 256

// lowMemEngine favors a small peak memory footprint over throughput. It
// drives the identical scanner/grammar pipeline as balancedEngine — per
// spec §4.7, engine choice must never change the event sequence for a
// given input and resolved options, only resource use.
type lowMemEngine struct{}

func newLowMemEngine() Engine { return lowMemEngine{} }

func (lowMemEngine) Info() EngineInfo {
	return EngineInfo{
		ID:           2,
		Name:         "lowmem",
		Capabilities: CapStreaming | CapLowMemory,
	}
}

func (lowMemEngine) NewStreamSource(r io.Reader) Source {
	return NewStreamSourceSize(r, lowMemReadSize)
}

func (lowMemEngine) Run(src Source, cfg Config, visitor Visitor) *Error {
	return runWalk(src, cfg, visitor)
}
