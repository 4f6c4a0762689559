// SPDX-License-Identifier: EPL-2.0

// Package mix implements a real-time channel rematrix engine.
//
// For every output channel the engine computes a weighted sum of the input
// channels, applies a per-channel gain normalized by the number of active
// routes, and writes the result back into the caller's planar buffer.
//
// # Threads
//
// Two sides meet in this package:
//   - The control side owns a ParameterSet, changes weights and gains, and
//     calls Commit.
//   - The real-time side calls Engine.Process once per host buffer.
//
// Commit builds an immutable Snapshot and publishes it through the engine's
// Publisher with a single atomic pointer swap. Process acquires exactly one
// snapshot per call and uses it for the whole buffer, so a buffer never sees
// rows from two configurations.
//
//	eng, err := mix.NewEngine(ctx, 2)
//	if err != nil {
//	    return err
//	}
//	params := eng.NewParameterSet()
//	params.SetRoute(0, 1)
//	params.SetRoute(1, 0)
//	params.Commit()
//
//	// real-time goroutine
//	eng.Process(planar, frames)
//
// # Weights and Gains
//
// Weights are authored as percentages in [0,100] and stored as [0,1].
// Gains are authored in dB within [-30,30] and converted to a linear
// multiplier once per update. Out-of-range input is clamped, never rejected.
//
// The gain phase computes
//
//	out = mixed * gain / max(1, activeRoutes)
//
// so summing several unity-weight inputs averages instead of clipping, and a
// row without active routes is exact silence.
//
// # Memory
//
// All scratch memory is allocated by NewEngine, one buffer of ChunkSize
// frames per channel. If allocation fails the chunk size is halved and
// retried down to MinChunkSize; below that NewEngine returns
// ErrScratchExhausted. Process never allocates.
package mix
