// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/rematrix/formats/wav"
)

// Example_roundTrip writes a stereo 16-bit file and decodes it again.
func Example_roundTrip() {
	samples := []int16{16384, -16384, 8192, -8192}

	file := new(bytes.Buffer)
	if err := wav.WriteWAV16(file, 16000, 2, samples); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Wrote %d bytes\n", file.Len())

	source, err := wav.Decoder{}.Decode(file)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%d Hz, %d channels\n", source.SampleRate(), source.Channels())

	buf := make([]float32, 8)
	n, err := source.ReadSamples(buf)
	if err != nil && err != io.EOF {
		fmt.Println(err)
		return
	}
	fmt.Println(buf[:n])
	// Output:
	// Wrote 52 bytes
	// 16000 Hz, 2 channels
	// [0.5 -0.5 0.25 -0.25]
}
