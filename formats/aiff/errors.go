// SPDX-License-Identifier: EPL-2.0

package aiff

import "github.com/ossrs/go-oryx-lib/errors"

var (
	// ErrNotAiffFile indicates the input is not a valid AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedAiffLayout indicates a header without usable format data
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
