// SPDX-License-Identifier: EPL-2.0

package rematrix

import (
	"context"
	"io"
	"slices"

	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/rematrix/audio"
	"github.com/ik5/rematrix/mix"
	"github.com/ik5/rematrix/utils"
)

// Pipeline is a Rematrixer together with the engine and parameter set that
// drive it. Params may be used from a control goroutine while another
// goroutine reads samples.
type Pipeline struct {
	*audio.Rematrixer

	Params *mix.ParameterSet
	eng    *mix.Engine
}

// NewPipeline builds an engine sized for src and wraps src with it. The
// engine starts as identity at 0 dB.
func NewPipeline(ctx context.Context, src audio.Source, opts ...mix.Option) (*Pipeline, error) {
	eng, err := mix.NewEngine(ctx, src.Channels(), opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "pipeline, channels=%v", src.Channels())
	}

	rm, err := audio.NewRematrixer(src, eng)
	if err != nil {
		eng.Close()
		return nil, errors.Wrapf(err, "pipeline")
	}

	return &Pipeline{
		Rematrixer: rm,
		Params:     eng.NewParameterSet(),
		eng:        eng,
	}, nil
}

// Configure applies u and commits it.
func (p *Pipeline) Configure(u mix.Update) mix.Changes {
	p.Params.Apply(u)
	return p.Params.Commit()
}

// Close closes the source and releases the engine. No read may be in
// flight.
func (p *Pipeline) Close() error {
	err := p.Rematrixer.Close()
	p.eng.Close()
	return err
}

// RematrixToPCM16 runs every sample of src through an engine configured by
// update and collects the result as interleaved 16-bit PCM. It returns the
// samples and the source's sample rate. The source is closed on return.
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm16, rate, err := rematrix.RematrixToPCM16(ctx, src, mix.Update{
//	    Routes: map[int]int{0: 1, 1: 0},
//	}, 4096)
func RematrixToPCM16(ctx context.Context, src audio.Source, update mix.Update, bufferSize int, opts ...mix.Option) ([]int16, int, error) {
	p, err := NewPipeline(ctx, src, opts...)
	if err != nil {
		src.Close()
		return nil, 0, err
	}
	defer p.Close()

	p.Configure(update)

	pcm16, err := p.ReadAllPCM16(bufferSize)
	if err != nil {
		return nil, p.SampleRate(), err
	}
	return pcm16, p.SampleRate(), nil
}

// ReadAllPCM16 drains the pipeline in reads of bufferSize samples and
// returns everything as interleaved 16-bit PCM.
func (p *Pipeline) ReadAllPCM16(bufferSize int) ([]int16, error) {
	channels := p.Channels()
	if channels < 1 {
		return nil, errors.Wrapf(mix.ErrInvalidChannels, "source has no channels")
	}
	bufferSize = max(bufferSize, channels)
	bufferSize -= bufferSize % channels
	buf := make([]float32, bufferSize)
	pcm16 := make([]int16, 0, p.SampleRate()*channels)

	for {
		n, err := p.ReadSamples(buf)
		if n > 0 {
			start := len(pcm16)
			pcm16 = slices.Grow(pcm16, n)[:start+n]
			utils.Float32ToInt16Slice(pcm16[start:], buf[:n])
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "rematrix after %v samples", len(pcm16))
		}
	}

	return pcm16, nil
}
