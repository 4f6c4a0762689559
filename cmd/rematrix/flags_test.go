// SPDX-License-Identifier: EPL-2.0

package main

import (
	"io"
	"reflect"
	"testing"

	"github.com/ik5/rematrix/mix"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	env := envMap(map[string]string{
		"REMATRIX_CHUNK":  "512",
		"REMATRIX_BUFFER": "2048",
		"REMATRIX_PRESET": "swap",
	})

	o, err := parseFlags([]string{"-in", "a.wav", "-out", "b.wav"}, env, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if o.chunk != 512 || o.buffer != 2048 || o.preset != "swap" {
		t.Errorf("env defaults = chunk %d, buffer %d, preset %q", o.chunk, o.buffer, o.preset)
	}
	if o.bits != 16 {
		t.Errorf("bits = %d, want 16", o.bits)
	}

	o, err = parseFlags([]string{"-in", "a.wav", "-chunk", "64", "-preset", "mono", "-play"}, env, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if o.chunk != 64 || o.preset != "mono" || !o.play {
		t.Errorf("flags did not override env: %+v", o)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"no input", []string{"-out", "x.wav"}, nil},
		{"play with out", []string{"-in", "a.wav", "-play", "-out", "x.wav"}, nil},
		{"bad bits", []string{"-in", "a.wav", "-bits", "12", "-out", "x.wav"}, nil},
		{"24-bit to stdout", []string{"-in", "a.wav", "-bits", "24"}, nil},
		{"bad env chunk", []string{"-in", "a.wav"}, map[string]string{"REMATRIX_CHUNK": "big"}},
		{"unknown flag", []string{"-in", "a.wav", "-loud"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := parseFlags(tt.args, envMap(tt.env), io.Discard); err == nil {
				t.Error("parseFlags() error = nil, want error")
			}
		})
	}
}

func TestParseUpdate(t *testing.T) {
	t.Parallel()

	u, err := parseUpdate("0:1=50, 1:0=25", "0=-6,1=3.5", "2=-1,3=0")
	if err != nil {
		t.Fatalf("parseUpdate() error = %v", err)
	}

	want := mix.Update{
		Weights: map[mix.Crosspoint]float64{{Out: 0, In: 1}: 50, {Out: 1, In: 0}: 25},
		GainsDB: map[int]float64{0: -6, 1: 3.5},
		Routes:  map[int]int{2: -1, 3: 0},
	}
	if !reflect.DeepEqual(u, want) {
		t.Errorf("parseUpdate() = %+v, want %+v", u, want)
	}

	empty, err := parseUpdate("", " ", "")
	if err != nil {
		t.Fatalf("empty parseUpdate() error = %v", err)
	}
	if !reflect.DeepEqual(empty, mix.Update{}) {
		t.Errorf("empty parseUpdate() = %+v, want zero", empty)
	}
}

func TestParseUpdate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                 string
		mixList, gain, route string
	}{
		{"mix without value", "0:1", "", ""},
		{"mix without colon", "01=50", "", ""},
		{"mix bad percent", "0:1=half", "", ""},
		{"mix channel out of range", "0:32=50", "", ""},
		{"gain without value", "", "0", ""},
		{"gain negative channel", "", "-1=3", ""},
		{"route bad input", "", "", "0=left"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := parseUpdate(tt.mixList, tt.gain, tt.route); err == nil {
				t.Error("parseUpdate() error = nil, want error")
			}
		})
	}
}
