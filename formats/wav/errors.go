// SPDX-License-Identifier: EPL-2.0

package wav

import "github.com/ossrs/go-oryx-lib/errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedEncoding  = errors.New("only integer PCM WAV is supported")
	ErrInvalidChannels      = errors.New("invalid WAV channel count")
	ErrPartialFrame         = errors.New("sample count is not a multiple of channels")
)
