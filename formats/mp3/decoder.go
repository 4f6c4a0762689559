// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/rematrix/audio"
	"github.com/ik5/rematrix/utils"
)

// go-mp3 always decodes to interleaved stereo 16-bit little-endian.
const (
	channels   = 2
	frameBytes = channels * 2
)

// mp3Reader is the part of gomp3.Decoder the source needs.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// carry is the number of bytes of an incomplete frame at buf[0:].
	carry int
}

func newSource(dec mp3Reader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

// ReadSamples returns whole stereo frames only; a frame split across two
// decoder reads is completed on the next call.
func (s *source) ReadSamples(dst []float32) (int, error) {
	need := len(dst) / channels * frameBytes
	if need == 0 {
		return 0, nil
	}

	if cap(s.buf) < need {
		grown := make([]byte, need)
		copy(grown, s.buf[:s.carry])
		s.buf = grown
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf[s.carry:])
	total := s.carry + n
	whole := total - total%frameBytes

	samples := utils.PCM16LEToFloat32(dst, s.buf[:whole])
	s.carry = copy(s.buf, s.buf[whole:total])

	switch {
	case err == io.EOF:
		return samples, io.EOF
	case err != nil:
		return samples, errors.Wrapf(err, "mp3 read")
	}
	return samples, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, errors.Wrapf(err, "mp3")
	}
	return newSource(dec), nil
}
