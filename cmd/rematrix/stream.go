// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/binary"
	"io"
	"math"
	"sync"

	"github.com/ik5/rematrix/audio"
)

// floatReader exposes a source as little-endian float32 bytes, the layout
// the sound card player pulls. Done closes once the source is exhausted.
type floatReader struct {
	src      audio.Source
	samples  []float32
	raw      []byte
	pending  []byte
	err      error

	done     chan struct{}
	doneOnce sync.Once
}

func newFloatReader(src audio.Source) *floatReader {
	channels := max(src.Channels(), 1)
	size := max(src.BufSize(), channels)
	size -= size % channels

	return &floatReader{
		src:      src,
		samples:  make([]float32, size),
		raw:      make([]byte, 0, size*4),
		done:     make(chan struct{}),
	}
}

func (r *floatReader) Done() <-chan struct{} { return r.done }

func (r *floatReader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		if r.err != nil {
			r.finish()
			return 0, r.err
		}
		r.fill()
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

func (r *floatReader) fill() {
	n, err := r.src.ReadSamples(r.samples)
	r.err = err

	buf := r.raw[:0]
	for _, v := range r.samples[:n] {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	r.raw = buf
	r.pending = buf

	if n == 0 && err == nil {
		r.err = io.ErrNoProgress
	}
}

func (r *floatReader) finish() {
	r.doneOnce.Do(func() { close(r.done) })
}
