// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ossrs/go-oryx-lib/errors"

var (
	ErrInvalidDstSize  = errors.New("dst size must be multiple of channels")
	ErrChannelMismatch = errors.New("source and engine channel counts differ")
)
