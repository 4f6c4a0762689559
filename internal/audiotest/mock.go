// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds deterministic audio fixtures shared by the tests of
// several packages: an interleaved MockSource and planar buffer builders.
package audiotest

import (
	"io"
	"math"
	"math/rand/v2"
)

// Waveform returns the sample value for a frame index and channel.
type Waveform func(frame, channel int) float32

// MockSource is an in-memory interleaved source. It satisfies audio.Source
// without importing it so that package audio can use it in its own tests.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	waveform   Waveform
	closed     bool
}

// NewMockSource creates a source producing frames frames of waveform.
func NewMockSource(sampleRate, channels, frames int, waveform Waveform) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewChannelSource gives each channel the constant level levels[channel].
func NewChannelSource(sampleRate, frames int, levels ...float32) *MockSource {
	return NewMockSource(sampleRate, len(levels), frames, func(_, channel int) float32 {
		return levels[channel]
	})
}

// NewSineSource plays the same sine tone on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

// Close marks the source closed; see Closed.
func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds to the first frame.
func (m *MockSource) Reset() { m.pos = 0 }

// ReadSamples writes whole interleaved frames and returns io.EOF together
// with the last frames.
func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.pos)
	for f := range n {
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(m.pos+f, c)
		}
	}
	m.pos += n

	if m.pos >= m.frames {
		return n * m.channels, io.EOF
	}
	return n * m.channels, nil
}

// NewConstantPlanar returns channels buffers of frames samples set to v.
func NewConstantPlanar(channels, frames int, v float32) [][]float32 {
	buf := make([][]float32, channels)
	for c := range buf {
		buf[c] = make([]float32, frames)
	}
	FillPlanar(buf, v)
	return buf
}

// NewNoisePlanar returns reproducible uniform noise in [-1, 1).
func NewNoisePlanar(channels, frames int, seed uint64) [][]float32 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	buf := make([][]float32, channels)
	for c := range buf {
		buf[c] = make([]float32, frames)
		for s := range buf[c] {
			buf[c][s] = rng.Float32()*2 - 1
		}
	}
	return buf
}

// FillPlanar sets every sample of every non-nil channel to v.
func FillPlanar(buf [][]float32, v float32) {
	for _, ch := range buf {
		for s := range ch {
			ch[s] = v
		}
	}
}

// ClonePlanar deep-copies buf, keeping nil channels nil.
func ClonePlanar(buf [][]float32) [][]float32 {
	out := make([][]float32, len(buf))
	for c, ch := range buf {
		if ch != nil {
			out[c] = append([]float32(nil), ch...)
		}
	}
	return out
}
