// SPDX-License-Identifier: EPL-2.0

package mix

import "github.com/ossrs/go-oryx-lib/errors"

var (
	ErrInvalidChannels  = errors.New("channel count must not be negative")
	ErrTooManyChannels  = errors.New("channel count exceeds MaxChannels")
	ErrScratchExhausted = errors.New("scratch allocation failed at minimum chunk size")
	ErrUnknownPreset    = errors.New("unknown matrix preset")
)
