// SPDX-License-Identifier: EPL-2.0

package rematrix_test

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ik5/rematrix"
	"github.com/ik5/rematrix/formats/wav"
	"github.com/ik5/rematrix/mix"
)

// Example_swapChannels decodes a stereo WAV, swaps left and right and
// writes the result back as WAV.
func Example_swapChannels() {
	in := new(bytes.Buffer)
	_ = wav.WriteWAV16(in, 8000, 2, []int16{1000, -1000, 2000, -2000})

	src, err := wav.Decoder{}.Decode(in)
	if err != nil {
		fmt.Println(err)
		return
	}

	pcm16, rate, err := rematrix.RematrixToPCM16(context.Background(), src, mix.Update{
		Routes: map[int]int{0: 1, 1: 0},
	}, 4096)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(rate, pcm16)

	out := new(bytes.Buffer)
	if err := wav.WriteWAV16(out, rate, 2, pcm16); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out.Len())
	// Output:
	// 8000 [-1000 1000 -2000 2000]
	// 52
}

// Example_downmix folds a 5.1 frame into stereo with the downmix51 preset.
// The left output has three active routes, so the front-left sample is
// divided by three.
func Example_downmix() {
	in := new(bytes.Buffer)
	// FL, FR, C, LFE, SL, SR
	_ = wav.WriteWAV16(in, 48000, 6, []int16{8192, 0, 0, 16384, 0, 0})

	src, err := wav.Decoder{}.Decode(in)
	if err != nil {
		fmt.Println(err)
		return
	}

	p, err := rematrix.NewPipeline(context.Background(), src)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer p.Close()

	if err := mix.ApplyPreset(p.Params, "downmix51"); err != nil {
		fmt.Println(err)
		return
	}
	p.Params.Commit()

	buf := make([]float32, 6)
	n, _ := p.ReadSamples(buf)
	fmt.Println(n, buf[:2], buf[2:])
	// Output:
	// 6 [0.083333336 0] [0 0 0 0]
}
