// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/rematrix/audio"
	"github.com/ik5/rematrix/formats/internal/pcm"
)

// WAVE format tags accepted by the decoder.
const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

type Decoder struct{}

// Decode reads the header of an integer PCM WAV stream (8, 16, 24 or 32
// bits, any channel count) and returns a Source positioned at the first
// sample. Inputs that cannot seek are buffered in memory.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.ReadSeeker(r)
	if err != nil {
		return nil, errors.Wrapf(err, "wav")
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, errors.Wrapf(ErrNotWavFile, "%v", err)
	}
	if dec.NumChans == 0 {
		return nil, ErrNotWavFile
	}

	switch dec.WavAudioFormat {
	case formatPCM, formatExtensible:
	default:
		return nil, errors.Wrapf(ErrUnsupportedEncoding, "format tag %#x", dec.WavAudioFormat)
	}

	if err := dec.FwdToPCM(); err != nil || dec.PCMChunk == nil {
		return nil, errors.Wrapf(ErrUnsupportedWavLayout, "no data chunk")
	}

	src, err := pcm.NewSource(dec, int(dec.SampleRate), int(dec.NumChans), int(dec.BitDepth), true)
	if err != nil {
		return nil, errors.Wrapf(err, "wav")
	}
	return src, nil
}
