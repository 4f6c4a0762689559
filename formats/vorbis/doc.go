// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio with github.com/jfreymuth/oggvorbis.
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//
// The Source keeps the stream's own channel count and Vorbis channel
// order (for 5.1: FL, C, FR, SL, SR, LFE). Use explicit matrix weights
// rather than the downmix51 preset, which assumes FL, FR, C, LFE, SL, SR.
package vorbis
