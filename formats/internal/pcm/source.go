// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer decoders to audio.Source.
package pcm

import (
	"bytes"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ossrs/go-oryx-lib/errors"
)

var ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")

// Reader is the part of the go-audio wav and aiff decoders used here.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source converts integer PCM from a Reader into float32 samples.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	bias       int
	scale      float32
	buf        *goaudio.IntBuffer
}

// NewSource wraps dec. unsigned8 marks 8-bit data stored with a 128 bias,
// as WAV does.
func NewSource(dec Reader, sampleRate, channels, bitDepth int, unsigned8 bool) (*Source, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, errors.Wrapf(ErrUnsupportedBitDepth, "bits=%v", bitDepth)
	}
	if channels <= 0 {
		return nil, errors.Errorf("invalid channel count %v", channels)
	}

	bias := 0
	if bitDepth == 8 && unsigned8 {
		bias = 128
	}

	return &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		bias:       bias,
		scale:      1 / float32(int64(1)<<(bitDepth-1)),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			Data:           make([]int, 4096-4096%channels),
			SourceBitDepth: bitDepth,
		},
	}, nil
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return cap(s.buf.Data) }
func (s *Source) Close() error    { return nil }

// ReadSamples fills dst with whole frames. A decoder that returns no data
// ends the stream with io.EOF; io.EOF from the decoder is passed through
// unwrapped.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, nil
	}

	if cap(s.buf.Data) < want {
		s.buf.Data = make([]int, want)
	}
	s.buf.Data = s.buf.Data[:want]

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil && err != io.EOF {
		err = errors.Wrapf(err, "read pcm")
	}

	n -= n % s.channels
	if n <= 0 {
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}

	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v-s.bias) * s.scale
	}
	return n, err
}

// ReadSeeker returns r itself when it can seek, otherwise it buffers the
// whole stream in memory. The go-audio decoders need to seek.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "buffer input")
	}
	return bytes.NewReader(data), nil
}
