// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"math"
	"sync"
)

var maxLinearGain = DBToLinear(MaxGainDB)

// Changes describes what a Commit actually changed. Callers use it for
// change notification only; correctness never depends on it.
type Changes uint8

const (
	// RoutingChanged means the set of active routes changed in some row.
	RoutingChanged Changes = 1 << iota
	// GainChanged means at least one linear gain changed.
	GainChanged
	// MatrixChanged means at least one weight value changed.
	MatrixChanged
)

// Has reports whether all bits of flag are set.
func (c Changes) Has(flag Changes) bool { return c&flag == flag }

// Any reports whether anything changed.
func (c Changes) Any() bool { return c != 0 }

// Crosspoint addresses one matrix weight.
type Crosspoint struct {
	Out int
	In  int
}

// Update is a structured parameter change coming from a configuration
// collaborator. Routes are applied first, then Weights, then GainsDB.
type Update struct {
	// Weights maps a crosspoint to a weight in percent [0,100].
	Weights map[Crosspoint]float64
	// GainsDB maps an output channel to a gain in dB [-30,30].
	GainsDB map[int]float64
	// Routes maps an output channel to its single input; negative mutes.
	Routes map[int]int
}

// ParameterSet is the control-side configuration of one engine. It may be
// mutated from several control goroutines; the real-time path only ever
// sees the snapshots it commits.
type ParameterSet struct {
	mu sync.Mutex

	pub    *Publisher
	matrix [MaxChannels][MaxChannels]float32
	gainDB [MaxChannels]float64
	gains  [MaxChannels]float32

	// lastActive is the route pattern of the previous commit.
	lastActive [MaxChannels][MaxChannels]bool
	pending    Changes
}

// NewParameterSet returns identity weights and 0 dB gains bound to pub.
func NewParameterSet(pub *Publisher) *ParameterSet {
	p := &ParameterSet{pub: pub}
	p.reset()
	for c := range MaxChannels {
		p.lastActive[c][c] = true
	}
	return p
}

// Channels is the channel count of the bound publisher.
func (p *ParameterSet) Channels() int {
	if p.pub == nil {
		return 0
	}
	return p.pub.Channels()
}

// SetMatrixWeight stores percent/100 as the contribution of input in to
// output out. Percent is clamped to [0,100]. It returns false when the
// stored value is unchanged or the indices are out of range.
func (p *ParameterSet) SetMatrixWeight(out, in int, percent float64) bool {
	if !validIndex(out) || !validIndex(in) {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.setWeight(out, in, PercentToWeight(percent))
}

// SetGain stores the linear multiplier for db, clamped to [-30,30] dB.
func (p *ParameterSet) SetGain(out int, db float64) bool {
	if !validIndex(out) {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.setGain(out, db)
}

// SetRoute makes in the sole full-weight source of out. A negative in mutes
// the row.
func (p *ParameterSet) SetRoute(out, in int) bool {
	if !validIndex(out) || in >= MaxChannels {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.setRoute(out, in)
}

// Apply performs every change of u under a single lock.
func (p *ParameterSet) Apply(u Update) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	changed := false
	for out, in := range u.Routes {
		if validIndex(out) && in < MaxChannels && p.setRoute(out, in) {
			changed = true
		}
	}
	for cp, percent := range u.Weights {
		if validIndex(cp.Out) && validIndex(cp.In) && p.setWeight(cp.Out, cp.In, PercentToWeight(percent)) {
			changed = true
		}
	}
	for out, db := range u.GainsDB {
		if validIndex(out) && p.setGain(out, db) {
			changed = true
		}
	}

	return changed
}

// Reset restores the identity matrix and 0 dB on every channel.
func (p *ParameterSet) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	before := p.matrix
	beforeGains := p.gains
	p.reset()
	if before != p.matrix {
		p.pending |= MatrixChanged
	}
	if beforeGains != p.gains {
		p.pending |= GainChanged
	}
}

// Weight returns the stored weight in [0,1].
func (p *ParameterSet) Weight(out, in int) float32 {
	if !validIndex(out) || !validIndex(in) {
		return 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.matrix[out][in]
}

// GainDB returns the clamped gain in dB as last set.
func (p *ParameterSet) GainDB(out int) float64 {
	if !validIndex(out) {
		return 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.gainDB[out]
}

// Snapshot builds an unpublished snapshot of the current values.
func (p *ParameterSet) Snapshot() *Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	return NewSnapshot(p.Channels(), &p.matrix, &p.gains)
}

// Commit recomputes active route counts, publishes a new snapshot and
// returns what changed since the previous commit.
func (p *ParameterSet) Commit() Changes {
	p.mu.Lock()
	defer p.mu.Unlock()

	changes := p.pending
	for out := range MaxChannels {
		for in := range MaxChannels {
			active := p.matrix[out][in] > 0
			if active != p.lastActive[out][in] {
				changes |= RoutingChanged
				p.lastActive[out][in] = active
			}
		}
	}
	p.pending = 0

	if p.pub != nil {
		p.pub.Publish(NewSnapshot(p.pub.Channels(), &p.matrix, &p.gains))
	}

	return changes
}

func (p *ParameterSet) reset() {
	for out := range MaxChannels {
		for in := range MaxChannels {
			p.matrix[out][in] = 0
		}
		p.matrix[out][out] = 1
		p.gainDB[out] = 0
		p.gains[out] = 1
	}
}

func (p *ParameterSet) setWeight(out, in int, w float32) bool {
	if math.Float32bits(p.matrix[out][in]) == math.Float32bits(w) {
		return false
	}

	p.matrix[out][in] = w
	p.pending |= MatrixChanged
	return true
}

func (p *ParameterSet) setGain(out int, db float64) bool {
	db = ClampDB(db)
	linear := DBToLinear(db)
	p.gainDB[out] = db

	if math.Float32bits(p.gains[out]) == math.Float32bits(linear) {
		return false
	}

	p.gains[out] = linear
	p.pending |= GainChanged
	return true
}

func (p *ParameterSet) setRoute(out, in int) bool {
	changed := false
	for c := range MaxChannels {
		var w float32
		if c == in {
			w = 1
		}
		if p.setWeight(out, c, w) {
			changed = true
		}
	}
	return changed
}

// PercentToWeight clamps percent to [0,100] and scales it to [0,1].
// NaN maps to 0.
func PercentToWeight(percent float64) float32 {
	switch {
	case math.IsNaN(percent), percent <= 0:
		return 0
	case percent >= MaxWeightPercent:
		return 1
	}
	return float32(percent / MaxWeightPercent)
}

// ClampDB limits db to [MinGainDB, MaxGainDB]. NaN maps to 0 dB.
func ClampDB(db float64) float64 {
	switch {
	case math.IsNaN(db):
		return 0
	case db < MinGainDB:
		return MinGainDB
	case db > MaxGainDB:
		return MaxGainDB
	}
	return db
}

// DBToLinear converts decibels to an amplitude multiplier, 10^(db/20).
func DBToLinear(db float64) float32 {
	return float32(math.Pow(10, db/20))
}
