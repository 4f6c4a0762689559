// SPDX-License-Identifier: EPL-2.0

//go:build headless

package main

import (
	"io"

	"github.com/ik5/rematrix/audio"
)

type headlessPlayback struct {
	reader *floatReader
}

// startPlayback drains src without a device, so -play still exercises the
// control loop on machines without audio.
func startPlayback(src audio.Source) (playback, error) {
	r := newFloatReader(src)
	go io.Copy(io.Discard, r)
	return &headlessPlayback{reader: r}, nil
}

func (p *headlessPlayback) Done() <-chan struct{} { return p.reader.Done() }

func (p *headlessPlayback) Close() error { return nil }
