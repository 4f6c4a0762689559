// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming side of the rematrix pipeline.
//
// This package contains:
//   - Source interface for interleaved float32 audio
//   - Rematrixer, a Source that runs a mix.Engine over another Source
//   - Deinterleave and Interleave for host buffer conversion
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of the pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders in the formats packages return a Source, and the Rematrixer both
// consumes and implements it, so stages chain freely.
//
// # Rematrixing
//
// The engine works on planar buffers while sources deliver interleaved
// frames. The Rematrixer converts in blocks of the engine chunk size using
// buffers allocated once at construction:
//
//	eng, _ := mix.NewEngine(ctx, src.Channels())
//	params := eng.NewParameterSet()
//	_ = mix.ApplyPreset(params, "swap")
//	params.Commit()
//
//	rm, _ := audio.NewRematrixer(src, eng)
//	n, err := rm.ReadSamples(buf)
//
// Parameters may be committed from another goroutine while ReadSamples
// runs; each block sees one complete configuration.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.ForPath("input.wav")
//
// # Sample Format
//
// Samples are float32, nominally in [-1.0, 1.0]. Gains above 0 dB may push
// values outside that range; clamping happens when converting to integer
// PCM.
//
// # Error Handling
//
// ReadSamples returns io.EOF when the stream is exhausted:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
