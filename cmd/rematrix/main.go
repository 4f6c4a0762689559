// SPDX-License-Identifier: EPL-2.0

// Command rematrix routes the channels of an audio file through the
// rematrix engine and writes a WAV file or plays the result live.
//
//	rematrix -in surround.wav -preset downmix51 -out stereo.wav
//	rematrix -in song.mp3 -route 0=1,1=0 -gain 0=-6 -out - > swapped.wav
//	rematrix -in song.ogg -play
//
// In -play mode stdin takes commands such as "mix 0 1 50" followed by
// "commit"; type "help" for the list.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"
	"golang.org/x/term"

	"github.com/ik5/rematrix"
	"github.com/ik5/rematrix/audio"
	"github.com/ik5/rematrix/formats/aiff"
	"github.com/ik5/rematrix/formats/mp3"
	"github.com/ik5/rematrix/formats/vorbis"
	"github.com/ik5/rematrix/formats/wav"
	"github.com/ik5/rematrix/mix"
)

// playback is a running sound card stream.
type playback interface {
	// Done closes when the stream has played out.
	Done() <-chan struct{}
	Close() error
}

func main() {
	ctx := logger.WithContext(context.Background())

	if err := doMain(ctx); err != nil {
		logger.Ef(ctx, "run err %+v", err)
		os.Exit(1)
	}

	logger.Tf(ctx, "run ok")
}

func doMain(ctx context.Context) error {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "load .env")
	}
	setEnvDefault("REMATRIX_CHUNK", "1024")
	setEnvDefault("REMATRIX_BUFFER", "4096")
	setEnvDefault("REMATRIX_PRESET", "")

	o, err := parseFlags(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Cause(err) == flag.ErrHelp {
		return nil
	} else if err != nil {
		return errors.Wrapf(err, "parse flags")
	}
	logger.Tf(ctx, "load .env as REMATRIX_CHUNK=%v, REMATRIX_BUFFER=%v, REMATRIX_PRESET=%v",
		os.Getenv("REMATRIX_CHUNK"), os.Getenv("REMATRIX_BUFFER"), os.Getenv("REMATRIX_PRESET"))

	update, err := parseUpdate(o.mix, o.gain, o.route)
	if err != nil {
		return errors.Wrapf(err, "parse update")
	}

	// Install signals.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		for s := range sc {
			logger.Tf(ctx, "Got signal %v", s)
			cancel()
		}
	}()

	src, err := openSource(newRegistry(), o.in)
	if err != nil {
		return err
	}
	logger.Tf(ctx, "open %v rate=%v, channels=%v", o.in, src.SampleRate(), src.Channels())

	var opts []mix.Option
	if o.chunk > 0 {
		opts = append(opts, mix.WithChunkSize(o.chunk))
	}
	p, err := rematrix.NewPipeline(ctx, src, opts...)
	if err != nil {
		src.Close()
		return errors.Wrapf(err, "create pipeline")
	}
	defer p.Close()

	if o.preset != "" {
		if err := mix.ApplyPreset(p.Params, o.preset); err != nil {
			return err
		}
	}
	p.Params.Apply(update)
	logger.Tf(ctx, "configure preset=%v, chunk=%v, changes=%v",
		o.preset, p.Engine().ChunkSize(), describeChanges(p.Params.Commit()))

	if o.play {
		return play(ctx, p)
	}
	return render(ctx, p, o)
}

func setEnvDefault(key, value string) {
	if os.Getenv(key) == "" {
		os.Setenv(key, value)
	}
}

func newRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	return r
}

func openSource(r *audio.Registry, path string) (audio.Source, error) {
	dec, ok := r.ForPath(path)
	if !ok {
		return nil, errors.Errorf("no decoder for %v, known %v", filepath.Ext(path), r.Formats())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %v", path)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "decode %v", path)
	}
	return &fileSource{Source: src, f: f}, nil
}

// fileSource closes the file under a decoded source.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	err := s.Source.Close()
	if ferr := s.f.Close(); err == nil {
		err = ferr
	}
	return err
}

func render(ctx context.Context, p *rematrix.Pipeline, o *options) error {
	if o.bits != 16 {
		f, err := os.Create(o.out)
		if err != nil {
			return errors.Wrapf(err, "create %v", o.out)
		}
		defer f.Close()

		frames, err := wav.Encode(f, p, o.bits)
		if err != nil {
			return errors.Wrapf(err, "encode %v", o.out)
		}
		logger.Tf(ctx, "wrote %v frames of %v-bit PCM to %v", frames, o.bits, o.out)
		return nil
	}

	var w io.Writer = os.Stdout
	if o.out != "" && o.out != "-" {
		f, err := os.Create(o.out)
		if err != nil {
			return errors.Wrapf(err, "create %v", o.out)
		}
		defer f.Close()
		w = f
	} else if term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("refusing to write WAV to a terminal, redirect stdout or use -out")
	}

	pcm16, err := p.ReadAllPCM16(o.buffer)
	if err != nil {
		return err
	}
	if err := wav.WriteWAV16(w, p.SampleRate(), p.Channels(), pcm16); err != nil {
		return errors.Wrapf(err, "write wav")
	}
	logger.Tf(ctx, "wrote %v frames of 16-bit PCM", len(pcm16)/p.Channels())
	return nil
}

func play(ctx context.Context, p *rematrix.Pipeline) error {
	pb, err := startPlayback(p)
	if err != nil {
		return err
	}
	defer pb.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Tf(ctx, "playing, type help for commands")
	}
	go func() {
		quit, err := runControl(ctx, os.Stdin, os.Stdout, p.Params)
		if err != nil {
			logger.Wf(ctx, "control err %+v", err)
		}
		// Without stdin the file still plays to the end.
		if quit {
			cancel()
		}
	}()

	select {
	case <-pb.Done():
		logger.Tf(ctx, "playback finished")
	case <-ctx.Done():
		logger.Tf(ctx, "playback stopped")
	}
	return nil
}
