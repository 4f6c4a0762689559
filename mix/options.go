// SPDX-License-Identifier: EPL-2.0

package mix

import "github.com/ossrs/go-oryx-lib/errors"

// AllocFunc returns a zeroed scratch buffer of the given length or an error
// when the memory is not available.
type AllocFunc func(frames int) ([]float32, error)

// Config holds construction-time engine settings.
type Config struct {
	// ChunkSize is the requested scratch length in frames. The pool may
	// settle on a smaller value when allocation fails.
	ChunkSize int
	// Alloc provides scratch memory. Nil means DefaultAlloc.
	Alloc AllocFunc
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used when no option is given.
func DefaultConfig() Config {
	return Config{
		ChunkSize: DefaultChunkSize,
		Alloc:     DefaultAlloc,
	}
}

// WithChunkSize sets the requested scratch length. Non-positive values are ignored.
func WithChunkSize(frames int) Option {
	return func(cfg *Config) {
		if frames > 0 {
			cfg.ChunkSize = frames
		}
	}
}

// WithAllocator replaces the scratch allocator.
func WithAllocator(alloc AllocFunc) Option {
	return func(cfg *Config) {
		if alloc != nil {
			cfg.Alloc = alloc
		}
	}
}

// ApplyOptions applies opts on top of DefaultConfig.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// DefaultAlloc allocates with make and reports a failed allocation
// (for example an impossible length) as an error instead of a panic.
func DefaultAlloc(frames int) (buf []float32, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = errors.Errorf("allocate %v frames: %v", frames, r)
		}
	}()

	return make([]float32, frames), nil
}
