// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"context"

	"github.com/ossrs/go-oryx-lib/errors"
)

// Engine rematrixes planar float32 audio in place. Process is meant to be
// called from a single real-time goroutine; configuration arrives through
// the engine's Publisher. Engines share no state with each other.
type Engine struct {
	channels int
	pub      *Publisher
	pool     *ScratchPool
}

// NewEngine builds an engine for a fixed channel count. If the host channel
// count changes the engine must be rebuilt. A zero channel engine is valid
// and processes nothing.
func NewEngine(ctx context.Context, channels int, opts ...Option) (*Engine, error) {
	if channels < 0 {
		return nil, errors.Wrapf(ErrInvalidChannels, "new engine, channels=%v", channels)
	}
	if channels > MaxChannels {
		return nil, errors.Wrapf(ErrTooManyChannels, "new engine, channels=%v, max=%v", channels, MaxChannels)
	}

	cfg := ApplyOptions(opts...)
	pool, err := NewScratchPool(ctx, channels, cfg.ChunkSize, cfg.Alloc)
	if err != nil {
		return nil, errors.Wrapf(err, "new engine, channels=%v, chunk=%v", channels, cfg.ChunkSize)
	}

	return &Engine{
		channels: channels,
		pub:      NewPublisher(channels),
		pool:     pool,
	}, nil
}

// Channels is the channel count fixed at construction.
func (e *Engine) Channels() int { return e.channels }

// ChunkSize is the number of frames mixed per scratch pass.
func (e *Engine) ChunkSize() int { return e.pool.ChunkSize() }

// Publisher is the engine's own snapshot slot.
func (e *Engine) Publisher() *Publisher { return e.pub }

// NewParameterSet returns a control-side parameter set bound to this engine.
// Each set commits its whole configuration, so with several sets the last
// Commit wins; share one set between control goroutines to merge edits.
func (e *Engine) NewParameterSet() *ParameterSet { return NewParameterSet(e.pub) }

// Close releases the scratch buffers. It must not race with Process;
// later Process calls leave buffers untouched.
func (e *Engine) Close() {
	e.pool.Release()
}

// Process rematrixes the first frames samples of buf in place and returns
// buf. A nil channel reads as silence and is never written. Process does not
// block, allocate or fail.
func (e *Engine) Process(buf [][]float32, frames int) [][]float32 {
	snap := e.pub.Acquire()

	channels := min(e.channels, snap.channels, len(buf), e.pool.Channels())
	chunk := e.pool.ChunkSize()
	if channels == 0 || frames <= 0 || chunk == 0 {
		return buf
	}

	for c := range channels {
		if buf[c] != nil {
			frames = min(frames, len(buf[c]))
		}
	}

	for offset := 0; offset < frames; offset += chunk {
		n := min(chunk, frames-offset)

		for c := range channels {
			if buf[c] == nil {
				continue
			}
			if snap.permutation {
				selectRow(e.pool.buffers[c][:n], buf[:channels], snap.route[c], offset)
			} else {
				e.mixRow(e.pool.buffers[c][:n], buf[:channels], &snap.matrix[c], offset)
			}
		}

		for c := range channels {
			if buf[c] == nil {
				continue
			}
			if g := snap.scale[c]; g == 1 {
				copy(buf[c][offset:offset+n], e.pool.buffers[c][:n])
			} else {
				scaleInto(buf[c][offset:offset+n], e.pool.buffers[c][:n], g)
			}
		}
	}

	return buf
}

// mixRow sums the weighted inputs of one output row into dst. Zero weights
// and nil inputs contribute nothing; a row without contributors leaves dst
// exactly zero.
func (e *Engine) mixRow(dst []float32, in [][]float32, weights *[MaxChannels]float32, offset int) {
	n := len(dst)
	first := true

	for c, src := range in {
		w := weights[c]
		if w == 0 || src == nil {
			continue
		}

		src = src[offset : offset+n]
		switch {
		case !first:
			mulAdd(dst, src, w)
		case w == 1:
			copy(dst, src)
		default:
			scaleInto(dst, src, w)
		}
		first = false
	}

	if first {
		clear(dst)
	}
}

// selectRow copies input in into dst. A negative route or a missing input
// leaves dst zero.
func selectRow(dst []float32, in [][]float32, route, offset int) {
	if route < 0 || route >= len(in) || in[route] == nil {
		clear(dst)
		return
	}
	copy(dst, in[route][offset:offset+len(dst)])
}
