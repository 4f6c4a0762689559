// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"context"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"
)

// ScratchPool holds one pre-allocated buffer per channel. Mixed samples for
// a chunk land here first so that reading every input of the chunk is never
// disturbed by writing its outputs. Buffers are never reallocated.
type ScratchPool struct {
	buffers [][]float32
	chunk   int
}

// NewScratchPool allocates channels buffers of chunkSize frames. When any
// allocation fails every buffer is dropped, the chunk size is halved and the
// whole set retried, down to MinChunkSize (or chunkSize when smaller).
func NewScratchPool(ctx context.Context, channels, chunkSize int, alloc AllocFunc) (*ScratchPool, error) {
	if channels < 0 {
		return nil, errors.Wrapf(ErrInvalidChannels, "scratch for %v channels", channels)
	}
	if channels > MaxChannels {
		return nil, errors.Wrapf(ErrTooManyChannels, "scratch for %v channels", channels)
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if alloc == nil {
		alloc = DefaultAlloc
	}

	floor := min(MinChunkSize, chunkSize)
	size := chunkSize
	for {
		buffers, err := allocateAll(channels, size, alloc)
		if err == nil {
			return &ScratchPool{buffers: buffers, chunk: size}, nil
		}

		if size <= floor {
			logger.Ef(ctx, "scratch allocation failed, channels=%v, size=%v, err %+v", channels, size, err)
			return nil, errors.Wrapf(ErrScratchExhausted, "channels=%v, size=%v, cause %v", channels, size, err)
		}

		next := max(size/2, floor)
		logger.Wf(ctx, "scratch allocation failed, channels=%v, shrink size %v to %v, err %v", channels, size, next, err)
		size = next
	}
}

func allocateAll(channels, size int, alloc AllocFunc) ([][]float32, error) {
	buffers := make([][]float32, channels)
	for c := range buffers {
		buf, err := alloc(size)
		if err != nil {
			return nil, errors.Wrapf(err, "channel %v", c)
		}
		if len(buf) < size {
			return nil, errors.Errorf("channel %v got %v of %v frames", c, len(buf), size)
		}
		buffers[c] = buf[:size]
	}
	return buffers, nil
}

// ChunkSize is the per-channel buffer length the pool settled on.
func (p *ScratchPool) ChunkSize() int { return p.chunk }

// Channels is the number of buffers held.
func (p *ScratchPool) Channels() int { return len(p.buffers) }

// Buffer returns the scratch buffer of channel c, or nil out of range.
func (p *ScratchPool) Buffer(c int) []float32 {
	if c < 0 || c >= len(p.buffers) {
		return nil
	}
	return p.buffers[c]
}

// Release drops every buffer. The pool is unusable afterwards.
func (p *ScratchPool) Release() {
	p.buffers = nil
	p.chunk = 0
}
