// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files.
//
// # Decoding
//
// Decoder accepts integer PCM at 8, 16, 24 or 32 bits with any channel
// count, including WAVE_FORMAT_EXTENSIBLE headers. Parsing is done by
// github.com/go-audio/wav; samples come out as float32 in [-1, 1]:
//
//	file, _ := os.Open("surround.wav")
//	source, err := wav.Decoder{}.Decode(file)
//
// Readers that cannot seek are buffered in memory first.
//
// # Writing
//
// WriteWAV16 writes a complete 16-bit file in one pass and works on any
// io.Writer, including stdout:
//
//	err := wav.WriteWAV16(os.Stdout, 48000, 6, samples)
//
// Encode drains an audio.Source through the go-audio encoder at a chosen
// bit depth. It needs an io.WriteSeeker because the header is patched once
// the length is known:
//
//	f, _ := os.Create("out.wav")
//	frames, err := wav.Encode(f, source, 24)
//
// # Errors
//
//   - ErrNotWavFile: the input is not RIFF/WAVE
//   - ErrUnsupportedEncoding: float or compressed sample data
//   - ErrUnsupportedWavLayout: no data chunk
//   - ErrInvalidChannels, ErrPartialFrame: bad writer arguments
//
// Errors are wrapped with context; compare with errors.Cause from
// github.com/ossrs/go-oryx-lib/errors.
package wav
