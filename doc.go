// SPDX-License-Identifier: EPL-2.0

// Package rematrix routes and mixes the channels of an audio stream in real
// time.
//
// The engine lives in the mix subpackage: for every output channel it sums
// weighted input channels, applies a per-channel gain normalized by the
// number of active routes, and writes the result back into the host buffer.
// Weights and gains are changed from a control goroutine and published
// atomically, so audio never sees a half-applied configuration.
//
// # Quick Start
//
// RematrixToPCM16 processes a whole decoded stream in one call:
//
//	file, _ := os.Open("stereo.wav")
//	src, _ := wav.Decoder{}.Decode(file)
//
//	// swap left and right, pull the right channel down 6 dB
//	pcm16, rate, err := rematrix.RematrixToPCM16(ctx, src, mix.Update{
//	    Routes:  map[int]int{0: 1, 1: 0},
//	    GainsDB: map[int]float64{1: -6},
//	}, 4096)
//
//	out, _ := os.Create("swapped.wav")
//	err = wav.WriteWAV16(out, rate, 2, pcm16)
//
// # Live Control
//
// NewPipeline returns a Source whose parameters may change while it is
// being read, for example by a playback callback:
//
//	p, _ := rematrix.NewPipeline(ctx, src)
//	go play(p)
//
//	p.Params.SetMatrixWeight(0, 1, 50)
//	p.Params.Commit()
//
// # Packages
//
//   - mix: engine, parameters, snapshots, scratch memory and presets
//   - audio: Source interface, Rematrixer, planar conversion, registry
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: decoders
//   - utils: sample format conversion
//
// See the individual subpackages for more detailed documentation.
package rematrix
