// Package wcc configuration: tunables of the Afforest pipeline and their
// functional options.
package wcc

import (
	"errors"
	"fmt"
)

// Sentinel errors for WCC execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wcc: invalid option supplied")
)

// Defaults of the Afforest pipeline.
const (
	// DefaultChunkSize is the number of nodes a worker claims per steal.
	DefaultChunkSize = 64
	// DefaultNeighborRounds is the number of outgoing neighbors sampled per
	// node during the subgraph-sampling phase.
	DefaultNeighborRounds = 2
	// DefaultSamplingSize is the number of random probes used to locate the
	// largest intermediate component.
	DefaultSamplingSize = 1024
	// DefaultSeed seeds the probe PRNG; a fixed seed keeps runs
	// reproducible.
	DefaultSeed = 42
)

// Options holds the tunables of the pipeline.
type Options struct {
	// ChunkSize is the number of nodes processed per steal by one worker.
	ChunkSize int

	// NeighborRounds is the per-node sample width of the first phase.
	NeighborRounds int

	// SamplingSize is the number of random component probes.
	SamplingSize int

	// Seed seeds the probe PRNG.
	Seed uint64

	// internal error recorded during option parsing
	err error
}

// Option configures the pipeline via functional arguments. Invalid values
// are recorded and surfaced as ErrOptionViolation when Wcc is invoked.
type Option func(*Options)

// DefaultOptions returns the default pipeline tunables.
func DefaultOptions() Options {
	return Options{
		ChunkSize:      DefaultChunkSize,
		NeighborRounds: DefaultNeighborRounds,
		SamplingSize:   DefaultSamplingSize,
		Seed:           DefaultSeed,
	}
}

// WithChunkSize sets the per-steal node chunk; must be positive.
func WithChunkSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: ChunkSize must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.ChunkSize = n
	}
}

// WithNeighborRounds sets the per-node sample width; must be positive.
func WithNeighborRounds(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: NeighborRounds must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.NeighborRounds = n
	}
}

// WithSamplingSize sets the number of random component probes; must be
// positive.
func WithSamplingSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: SamplingSize must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.SamplingSize = n
	}
}

// WithSeed seeds the probe PRNG.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}
