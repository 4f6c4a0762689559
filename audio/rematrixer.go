// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/rematrix/mix"
)

// Rematrixer is a Source that runs every block read from src through a
// mix.Engine. The engine and its parameters stay owned by the caller, so a
// control goroutine can commit new weights while another goroutine reads.
type Rematrixer struct {
	src      Source
	eng      *mix.Engine
	channels int
	planar   [][]float32
}

// NewRematrixer wraps src. The engine must have been built for the same
// channel count as src.
func NewRematrixer(src Source, eng *mix.Engine) (*Rematrixer, error) {
	channels := src.Channels()
	if channels != eng.Channels() {
		return nil, errors.Wrapf(ErrChannelMismatch, "source %d, engine %d", channels, eng.Channels())
	}

	block := max(eng.ChunkSize(), 1)
	planar := make([][]float32, channels)
	for c := range planar {
		planar[c] = make([]float32, block)
	}

	return &Rematrixer{
		src:      src,
		eng:      eng,
		channels: channels,
		planar:   planar,
	}, nil
}

func (r *Rematrixer) SampleRate() int { return r.src.SampleRate() }
func (r *Rematrixer) Channels() int   { return r.channels }
func (r *Rematrixer) BufSize() int    { return r.src.BufSize() }

// Engine returns the engine the rematrixer feeds.
func (r *Rematrixer) Engine() *mix.Engine { return r.eng }

func (r *Rematrixer) Close() error {
	if err := r.src.Close(); err != nil {
		return errors.Wrapf(err, "close source")
	}
	return nil
}

// ReadSamples reads from the wrapped source into dst and rematrixes the
// samples in place. len(dst) must be a multiple of Channels.
func (r *Rematrixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if r.channels == 0 || len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	n, err := r.src.ReadSamples(dst)
	n -= n % r.channels
	if n > 0 {
		if perr := r.process(dst[:n]); perr != nil {
			return 0, perr
		}
	}
	return n, err
}

func (r *Rematrixer) process(samples []float32) error {
	step := len(r.planar[0]) * r.channels
	for off := 0; off < len(samples); off += step {
		seg := samples[off:min(off+step, len(samples))]

		frames, err := Deinterleave(r.planar, seg, r.channels)
		if err != nil {
			return errors.Wrapf(err, "deinterleave at %v", off)
		}
		if frames == 0 {
			return nil
		}

		r.eng.Process(r.planar, frames)
		if _, err := Interleave(seg, r.planar, frames); err != nil {
			return errors.Wrapf(err, "interleave at %v", off)
		}
	}
	return nil
}
