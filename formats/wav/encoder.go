// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/rematrix/audio"
	"github.com/ik5/rematrix/formats/internal/pcm"
	"github.com/ik5/rematrix/utils"
)

// Encode drains src into ws as integer PCM WAV of bitDepth bits (8, 16, 24
// or 32) and returns the number of frames written. The encoder patches the
// header sizes on completion, which is why ws must seek.
func Encode(ws io.WriteSeeker, src audio.Source, bitDepth int) (int, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return 0, errors.Wrapf(pcm.ErrUnsupportedBitDepth, "bits=%v", bitDepth)
	}
	channels := src.Channels()
	if channels < 1 {
		return 0, errors.Wrapf(ErrInvalidChannels, "channels=%v", channels)
	}

	enc := gowav.NewEncoder(ws, src.SampleRate(), bitDepth, channels, formatPCM)

	size := max(src.BufSize(), channels)
	size -= size % channels
	samples := make([]float32, size)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: src.SampleRate()},
		Data:           make([]int, size),
		SourceBitDepth: bitDepth,
	}

	// 8-bit WAV is unsigned.
	bias := 0
	if bitDepth == 8 {
		bias = 128
	}

	frames := 0
	for {
		n, err := src.ReadSamples(samples)
		n -= n % channels
		if n > 0 {
			buf.Data = buf.Data[:n]
			for i, v := range samples[:n] {
				buf.Data[i] = utils.FloatToInt(v, bitDepth) + bias
			}
			if werr := enc.Write(buf); werr != nil {
				return frames, errors.Wrapf(werr, "encode at frame %v", frames)
			}
			frames += n / channels
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return frames, errors.Wrapf(err, "read at frame %v", frames)
		}
	}

	// An empty source still yields a valid header and data chunk.
	if frames == 0 {
		buf.Data = buf.Data[:0]
		if err := enc.Write(buf); err != nil {
			return 0, errors.Wrapf(err, "encode empty")
		}
	}

	if err := enc.Close(); err != nil {
		return frames, errors.Wrapf(err, "finish wav")
	}
	return frames, nil
}
