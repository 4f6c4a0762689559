// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer III audio with
// github.com/hajimehoshi/go-mp3.
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//
// go-mp3 always produces stereo, so the Source reports two channels even
// for mono files; a mono file has identical left and right samples. Rebuild
// the engine for two channels when feeding it MP3 input.
package mp3
