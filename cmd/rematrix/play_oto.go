// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package main

import (
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/rematrix/audio"
)

type otoPlayback struct {
	player *oto.Player
	reader *floatReader
	done   chan struct{}
}

// startPlayback opens the default output device at the source's rate and
// channel count and starts pulling from src on the device goroutine.
func startPlayback(src audio.Source) (playback, error) {
	op := &oto.NewContextOptions{
		SampleRate:   src.SampleRate(),
		ChannelCount: src.Channels(),
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, errors.Wrapf(err, "open device rate=%v, channels=%v", op.SampleRate, op.ChannelCount)
	}
	<-ready

	r := newFloatReader(src)
	player := ctx.NewPlayer(r)
	player.Play()

	p := &otoPlayback{player: player, reader: r, done: make(chan struct{})}
	go p.waitDrained()
	return p, nil
}

// waitDrained closes done after the source ended and the device played out
// what it had buffered.
func (p *otoPlayback) waitDrained() {
	<-p.reader.Done()
	for p.player.IsPlaying() {
		time.Sleep(20 * time.Millisecond)
	}
	close(p.done)
}

func (p *otoPlayback) Done() <-chan struct{} { return p.done }

func (p *otoPlayback) Close() error {
	p.player.Pause()
	if err := p.player.Close(); err != nil {
		return errors.Wrapf(err, "close player")
	}
	return nil
}
