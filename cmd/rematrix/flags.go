// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"io"
	"strconv"
	"strings"

	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/rematrix/mix"
)

var errBadList = errors.New("malformed list")

type options struct {
	in     string
	out    string
	mix    string
	gain   string
	route  string
	preset string
	chunk  int
	buffer int
	bits   int
	play   bool
}

// parseFlags reads the command line. Defaults for -chunk, -buffer and
// -preset come from getenv so that a .env file can set them.
func parseFlags(args []string, getenv func(string) string, output io.Writer) (*options, error) {
	chunk, err := envInt(getenv, "REMATRIX_CHUNK")
	if err != nil {
		return nil, err
	}
	buffer, err := envInt(getenv, "REMATRIX_BUFFER")
	if err != nil {
		return nil, err
	}

	o := &options{}
	fs := flag.NewFlagSet("rematrix", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&o.in, "in", "", "Input file (wav, aiff, mp3, ogg)")
	fs.StringVar(&o.out, "out", "", "Output WAV file, or - for stdout")
	fs.StringVar(&o.mix, "mix", "", "Matrix weights as out:in=percent,...")
	fs.StringVar(&o.gain, "gain", "", "Output gains as out=dB,...")
	fs.StringVar(&o.route, "route", "", "Exclusive routes as out=in,... (in -1 mutes)")
	fs.StringVar(&o.preset, "preset", getenv("REMATRIX_PRESET"), "Preset: "+strings.Join(mix.PresetNames(), ", "))
	fs.IntVar(&o.chunk, "chunk", chunk, "Engine chunk size in frames")
	fs.IntVar(&o.buffer, "buffer", buffer, "Read size in samples")
	fs.IntVar(&o.bits, "bits", 16, "Output bit depth: 8, 16, 24 or 32")
	fs.BoolVar(&o.play, "play", false, "Play through the sound card and read commands from stdin")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if o.in == "" {
		return nil, errors.New("no input, use -in")
	}
	if o.play && o.out != "" {
		return nil, errors.New("-play and -out are exclusive")
	}
	switch o.bits {
	case 8, 16, 24, 32:
	default:
		return nil, errors.Errorf("invalid -bits %v", o.bits)
	}
	if o.bits != 16 && (o.out == "" || o.out == "-") {
		return nil, errors.Errorf("-bits %v needs a file for -out", o.bits)
	}
	return o, nil
}

func envInt(getenv func(string) string, key string) (int, error) {
	v := getenv(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %v=%v", key, v)
	}
	return n, nil
}

// parseUpdate turns the -mix, -gain and -route lists into one update.
func parseUpdate(mixList, gainList, routeList string) (mix.Update, error) {
	var u mix.Update

	for _, item := range splitList(mixList) {
		key, value, ok := strings.Cut(item, "=")
		if !ok {
			return u, errors.Wrapf(errBadList, "mix item %q", item)
		}
		outStr, inStr, ok := strings.Cut(key, ":")
		if !ok {
			return u, errors.Wrapf(errBadList, "mix item %q", item)
		}
		out, err := parseChannel(outStr)
		if err != nil {
			return u, errors.Wrapf(err, "mix item %q", item)
		}
		in, err := parseChannel(inStr)
		if err != nil {
			return u, errors.Wrapf(err, "mix item %q", item)
		}
		pct, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return u, errors.Wrapf(err, "mix item %q", item)
		}
		if u.Weights == nil {
			u.Weights = make(map[mix.Crosspoint]float64)
		}
		u.Weights[mix.Crosspoint{Out: out, In: in}] = pct
	}

	for _, item := range splitList(gainList) {
		key, value, ok := strings.Cut(item, "=")
		if !ok {
			return u, errors.Wrapf(errBadList, "gain item %q", item)
		}
		out, err := parseChannel(key)
		if err != nil {
			return u, errors.Wrapf(err, "gain item %q", item)
		}
		db, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return u, errors.Wrapf(err, "gain item %q", item)
		}
		if u.GainsDB == nil {
			u.GainsDB = make(map[int]float64)
		}
		u.GainsDB[out] = db
	}

	for _, item := range splitList(routeList) {
		key, value, ok := strings.Cut(item, "=")
		if !ok {
			return u, errors.Wrapf(errBadList, "route item %q", item)
		}
		out, err := parseChannel(key)
		if err != nil {
			return u, errors.Wrapf(err, "route item %q", item)
		}
		in, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return u, errors.Wrapf(err, "route item %q", item)
		}
		if u.Routes == nil {
			u.Routes = make(map[int]int)
		}
		u.Routes[out] = in
	}

	return u, nil
}

func splitList(s string) []string {
	var items []string
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseChannel(s string) (int, error) {
	c, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if c < 0 || c >= mix.MaxChannels {
		return 0, errors.Errorf("channel %v out of range [0,%v)", c, mix.MaxChannels)
	}
	return c, nil
}
