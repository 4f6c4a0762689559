// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files with github.com/go-audio/aiff.
//
//	file, _ := os.Open("stems.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//
// Supported sample sizes are 8, 16, 24 and 32 bits with any channel count.
// Samples come out as interleaved float32 in [-1, 1]. AIFF-C compressed
// files are rejected.
//
// Decode returns ErrNotAiffFile for foreign input and
// ErrUnsupportedAiffLayout when the COMM chunk is unusable; bit depth
// errors wrap the shared PCM sentinel.
package aiff
