package ajis

import "io"

// balancedReadSize is the default stream refill chunk size: large enough
// to amortize read syscalls for typical documents without the unbounded
// per-read footprint a raw io.Reader would have.
const balancedReadSize = 4096

// balancedEngine is the default Engine: a conventional-sized stream buffer
// and the shared scanner/grammar pipeline with no further tuning.
type balancedEngine struct{}

func newBalancedEngine() Engine { return balancedEngine{} }

func (balancedEngine) Info() EngineInfo {
	return EngineInfo{
		ID:           1,
		Name:         "balanced",
		Capabilities: CapStreaming | CapRandomAccess | CapHighThroughput,
	}
}

func (balancedEngine) NewStreamSource(r io.Reader) Source {
	return NewStreamSourceSize(r, balancedReadSize)
}

func (balancedEngine) Run(src Source, cfg Config, visitor Visitor) *Error {
	return runWalk(src, cfg, visitor)
}
