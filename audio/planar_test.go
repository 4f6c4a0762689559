// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"slices"
	"testing"
)

func TestDeinterleave(t *testing.T) {
	t.Parallel()

	src := []float32{1, 2, 3, 4, 5, 6}
	dst := [][]float32{make([]float32, 3), make([]float32, 3)}

	frames, err := Deinterleave(dst, src, 2)
	if err != nil {
		t.Fatalf("Deinterleave() error = %v", err)
	}
	if frames != 3 {
		t.Errorf("frames = %d, want 3", frames)
	}
	if !slices.Equal(dst[0], []float32{1, 3, 5}) || !slices.Equal(dst[1], []float32{2, 4, 6}) {
		t.Errorf("dst = %v", dst)
	}
}

func TestDeinterleave_ShortAndNilChannels(t *testing.T) {
	t.Parallel()

	src := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	dst := [][]float32{make([]float32, 2), nil, make([]float32, 8)}

	frames, err := Deinterleave(dst, src, 3)
	if err != nil {
		t.Fatalf("Deinterleave() error = %v", err)
	}
	if frames != 2 {
		t.Errorf("frames = %d, want 2", frames)
	}
	if !slices.Equal(dst[2][:3], []float32{3, 6, 0}) {
		t.Errorf("dst[2] = %v, want [3 6 0 ...]", dst[2])
	}
}

func TestDeinterleave_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		dst      [][]float32
		src      []float32
		channels int
		want     error
	}{
		{"partial frame", [][]float32{{0}, {0}}, []float32{1, 2, 3}, 2, ErrInvalidDstSize},
		{"zero channels", nil, []float32{1}, 0, ErrInvalidDstSize},
		{"too few buffers", [][]float32{{0}}, []float32{1, 2}, 2, ErrChannelMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Deinterleave(tt.dst, tt.src, tt.channels); err != tt.want {
				t.Errorf("Deinterleave() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInterleave(t *testing.T) {
	t.Parallel()

	src := [][]float32{{1, 3, 5}, nil, {2, 4}}
	dst := make([]float32, 9)
	for i := range dst {
		dst[i] = -1
	}

	n, err := Interleave(dst, src, 3)
	if err != nil {
		t.Fatalf("Interleave() error = %v", err)
	}
	if n != 9 {
		t.Errorf("n = %d, want 9", n)
	}
	want := []float32{1, 0, 2, 3, 0, 4, 5, 0, 0}
	if !slices.Equal(dst, want) {
		t.Errorf("dst = %v, want %v", dst, want)
	}
}

func TestInterleave_ClampsFrames(t *testing.T) {
	t.Parallel()

	src := [][]float32{{1, 2, 3}, {4, 5, 6}}
	dst := make([]float32, 4)

	n, err := Interleave(dst, src, 10)
	if err != nil {
		t.Fatalf("Interleave() error = %v", err)
	}
	if n != 4 || !slices.Equal(dst, []float32{1, 4, 2, 5}) {
		t.Errorf("Interleave() = %d %v", n, dst)
	}

	if _, err := Interleave(make([]float32, 3), src, 1); err != ErrInvalidDstSize {
		t.Errorf("odd dst error = %v, want ErrInvalidDstSize", err)
	}
	if _, err := Interleave(dst, nil, 1); err != ErrInvalidDstSize {
		t.Errorf("no channels error = %v, want ErrInvalidDstSize", err)
	}
}

func TestPlanar_RoundTrip(t *testing.T) {
	t.Parallel()

	src := make([]float32, 8*64)
	for i := range src {
		src[i] = float32(i)
	}
	planar := make([][]float32, 8)
	for c := range planar {
		planar[c] = make([]float32, 64)
	}

	frames, err := Deinterleave(planar, src, 8)
	if err != nil {
		t.Fatal(err)
	}
	out := make([]float32, len(src))
	if _, err := Interleave(out, planar, frames); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(out, src) {
		t.Error("interleave after deinterleave changed samples")
	}
}
