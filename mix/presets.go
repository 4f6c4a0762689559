// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"sort"

	"github.com/ossrs/go-oryx-lib/errors"
)

// Preset fills a parameter set with a ready-made routing. Presets touch
// weights only; gains are left as they are.
type Preset func(p *ParameterSet)

// Channel order used by Downmix51 (FL, FR, C, LFE, SL, SR).
const (
	frontLeft = iota
	frontRight
	center
	lfe
	surroundLeft
	surroundRight
)

var presets = map[string]Preset{
	"identity":  Identity,
	"silence":   Silence,
	"swap":      SwapPairs,
	"mono":      MonoSum,
	"downmix51": Downmix51,
}

// PresetNames lists the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset runs the named preset on p.
func ApplyPreset(p *ParameterSet, name string) error {
	preset, ok := presets[name]
	if !ok {
		return errors.Wrapf(ErrUnknownPreset, "preset %q", name)
	}
	preset(p)
	return nil
}

// Identity routes every channel to itself.
func Identity(p *ParameterSet) {
	for c := range MaxChannels {
		p.SetRoute(c, c)
	}
}

// Silence mutes every row.
func Silence(p *ParameterSet) {
	for c := range MaxChannels {
		p.SetRoute(c, -1)
	}
}

// SwapPairs exchanges channels 0<->1, 2<->3 and so on. An unpaired last
// channel keeps its own signal.
func SwapPairs(p *ParameterSet) {
	channels := p.Channels()
	for c := range MaxChannels {
		partner := c ^ 1
		if partner >= channels {
			partner = c
		}
		p.SetRoute(c, partner)
	}
}

// MonoSum feeds every used input into every used output at full weight.
// Normalization by the active route count turns the sum into an average.
func MonoSum(p *ParameterSet) {
	channels := p.Channels()
	for out := range MaxChannels {
		for in := range MaxChannels {
			percent := 0.0
			if out < channels && in < channels {
				percent = MaxWeightPercent
			}
			p.SetMatrixWeight(out, in, percent)
		}
	}
}

// Downmix51 folds a 5.1 layout (FL, FR, C, LFE, SL, SR) into the first two
// channels. Center and surrounds enter at -3 dB, the LFE is dropped and
// outputs 2..5 are muted.
func Downmix51(p *ParameterSet) {
	const side = 70.71067811865476

	Silence(p)
	p.Apply(Update{Weights: map[Crosspoint]float64{
		{Out: frontLeft, In: frontLeft}:      MaxWeightPercent,
		{Out: frontLeft, In: center}:         side,
		{Out: frontLeft, In: surroundLeft}:   side,
		{Out: frontRight, In: frontRight}:    MaxWeightPercent,
		{Out: frontRight, In: center}:        side,
		{Out: frontRight, In: surroundRight}: side,
	}})
}
