// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/rematrix/mix"
)

const controlHelp = `commands:
  mix O I PCT    set weight of input I on output O in percent
  gain O DB      set gain of output O in dB
  route O I      make I the only input of O, -1 mutes
  preset NAME    apply a preset (%v)
  reset          identity matrix, 0 dB
  commit         publish staged changes
  quit           stop playback
`

// runControl reads one command per line from r and applies it to params.
// Replies go to w. It stops at EOF, when ctx is done or on quit, which it
// reports as true.
func runControl(ctx context.Context, r io.Reader, w io.Writer, params *mix.ParameterSet) (bool, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return false, nil
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		quit, err := runCommand(ctx, w, params, fields)
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		if quit {
			return true, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return false, errors.Wrapf(err, "read commands")
	}
	return false, nil
}

func runCommand(ctx context.Context, w io.Writer, params *mix.ParameterSet, fields []string) (quit bool, err error) {
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "mix":
		v, err := parseArgs(args, 3)
		if err != nil {
			return false, errors.Wrapf(err, "mix O I PCT")
		}
		params.SetMatrixWeight(int(v[0]), int(v[1]), v[2])
	case "gain":
		v, err := parseArgs(args, 2)
		if err != nil {
			return false, errors.Wrapf(err, "gain O DB")
		}
		params.SetGain(int(v[0]), v[1])
	case "route":
		v, err := parseArgs(args, 2)
		if err != nil {
			return false, errors.Wrapf(err, "route O I")
		}
		params.SetRoute(int(v[0]), int(v[1]))
	case "preset":
		if len(args) != 1 {
			return false, errors.New("preset NAME")
		}
		if err := mix.ApplyPreset(params, args[0]); err != nil {
			return false, err
		}
	case "reset":
		params.Reset()
	case "commit":
		changes := params.Commit()
		logger.Tf(ctx, "commit changes=%v", describeChanges(changes))
		fmt.Fprintf(w, "committed: %v\n", describeChanges(changes))
	case "help", "?":
		fmt.Fprintf(w, controlHelp, strings.Join(mix.PresetNames(), ", "))
	case "quit", "exit":
		return true, nil
	default:
		return false, errors.Errorf("unknown command %q, try help", cmd)
	}

	return false, nil
}

func parseArgs(args []string, want int) ([]float64, error) {
	if len(args) != want {
		return nil, errors.Errorf("want %v arguments, got %v", want, len(args))
	}

	v := make([]float64, want)
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, err
		}
		v[i] = f
	}
	return v, nil
}

func describeChanges(c mix.Changes) string {
	if !c.Any() {
		return "none"
	}

	var parts []string
	if c.Has(mix.MatrixChanged) {
		parts = append(parts, "matrix")
	}
	if c.Has(mix.GainChanged) {
		parts = append(parts, "gain")
	}
	if c.Has(mix.RoutingChanged) {
		parts = append(parts, "routing")
	}
	return strings.Join(parts, ",")
}
