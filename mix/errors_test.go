// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"testing"

	"github.com/ossrs/go-oryx-lib/errors"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrInvalidChannels", ErrInvalidChannels, "channel count must not be negative"},
		{"ErrTooManyChannels", ErrTooManyChannels, "channel count exceeds MaxChannels"},
		{"ErrScratchExhausted", ErrScratchExhausted, "scratch allocation failed at minimum chunk size"},
		{"ErrUnknownPreset", ErrUnknownPreset, "unknown matrix preset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.want)
			}

			wrapped := errors.Wrapf(tt.err, "context %v", 1)
			if errors.Cause(wrapped) != tt.err {
				t.Errorf("errors.Cause(wrapped %s) lost the sentinel", tt.name)
			}
		})
	}
}
