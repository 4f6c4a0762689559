// SPDX-License-Identifier: EPL-2.0

package mix

const (
	// MaxChannels is the largest speaker layout the engine can rematrix.
	MaxChannels = 8

	// DefaultChunkSize is the number of frames processed per scratch pass.
	DefaultChunkSize = 1024

	// MinChunkSize is the smallest scratch length the pool shrinks to
	// before giving up.
	MinChunkSize = 64

	// MinGainDB and MaxGainDB bound the authored per-channel gain.
	MinGainDB = -30.0
	MaxGainDB = 30.0

	// MaxWeightPercent is the top of the authored weight scale.
	MaxWeightPercent = 100.0
)
