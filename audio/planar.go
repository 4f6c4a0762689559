// SPDX-License-Identifier: EPL-2.0

package audio

// Deinterleave copies interleaved src into the planar dst and returns the
// number of frames written. Frames stop at the shortest non-nil dst channel;
// nil dst channels are skipped.
func Deinterleave(dst [][]float32, src []float32, channels int) (int, error) {
	if channels <= 0 || len(src)%channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if len(dst) < channels {
		return 0, ErrChannelMismatch
	}

	frames := len(src) / channels
	for c := range channels {
		if dst[c] != nil {
			frames = min(frames, len(dst[c]))
		}
	}

	for c := range channels {
		ch := dst[c]
		if ch == nil {
			continue
		}
		ch = ch[:frames]
		for f := range ch {
			ch[f] = src[f*channels+c]
		}
	}
	return frames, nil
}

// Interleave writes frames frames of the planar src into dst and returns the
// number of samples written. A nil src channel is written as silence.
func Interleave(dst []float32, src [][]float32, frames int) (int, error) {
	channels := len(src)
	if channels == 0 || len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	frames = min(max(frames, 0), len(dst)/channels)
	for c, ch := range src {
		if ch == nil {
			for f := range frames {
				dst[f*channels+c] = 0
			}
			continue
		}
		n := min(frames, len(ch))
		for f := range n {
			dst[f*channels+c] = ch[f]
		}
		for f := n; f < frames; f++ {
			dst[f*channels+c] = 0
		}
	}
	return frames * channels, nil
}
