// SPDX-License-Identifier: EPL-2.0

// Package utils holds sample format conversions shared by the decoders,
// the WAV writers and the root helpers.
package utils

import "encoding/binary"

// FloatToInt converts x to a signed integer sample of the given bit depth.
// Input is clamped to [-1,1] and scaled by 2^(bits-1), so integer samples
// decoded with the same scale convert back unchanged. 1 saturates at the
// most positive value. NaN maps to 0.
func FloatToInt(x float32, bits int) int {
	if x != x {
		return 0
	}
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	full := int64(1) << (bits - 1)
	return int(min(int64(float64(x)*float64(full)), full-1))
}

func Float32ToInt16(x float32) int16 {
	return int16(FloatToInt(x, 16))
}

// Float32ToInt16Slice converts min(len(dst), len(src)) samples and returns
// the count.
func Float32ToInt16Slice(dst []int16, src []float32) int {
	n := min(len(dst), len(src))
	for i, v := range src[:n] {
		dst[i] = Float32ToInt16(v)
	}
	return n
}

// PCM16LEToFloat32 decodes little-endian int16 samples from src into dst.
// A trailing odd byte is ignored. It returns the number of samples written.
func PCM16LEToFloat32(dst []float32, src []byte) int {
	n := min(len(dst), len(src)/2)
	for i := range n {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(src[2*i:]))) / 32768
	}
	return n
}
