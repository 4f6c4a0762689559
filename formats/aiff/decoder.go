// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"io"

	goaiff "github.com/go-audio/aiff"
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/rematrix/audio"
	"github.com/ik5/rematrix/formats/internal/pcm"
)

type Decoder struct{}

// Decode reads an uncompressed AIFF stream of 8, 16, 24 or 32 bits.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.ReadSeeker(r)
	if err != nil {
		return nil, errors.Wrapf(err, "aiff")
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	// AIFF 8-bit samples are signed.
	src, err := pcm.NewSource(dec, format.SampleRate, format.NumChannels, int(dec.BitDepth), false)
	if err != nil {
		return nil, errors.Wrapf(err, "aiff")
	}
	return src, nil
}
