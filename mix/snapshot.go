// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"sync/atomic"
)

// Snapshot is one complete, immutable engine configuration. The real-time
// path reads nothing else. Once handed to a Publisher a snapshot is never
// written again; a new configuration always produces a new value.
type Snapshot struct {
	channels   int
	generation uint64

	matrix [MaxChannels][MaxChannels]float32
	gains  [MaxChannels]float32
	active [MaxChannels]int

	// scale is gain / max(1, active), or exactly 0 for a row with no routes.
	scale [MaxChannels]float32
	// route is the sole input of a one-hot row, -1 otherwise.
	route       [MaxChannels]int
	permutation bool
}

// NewSnapshot builds a snapshot from a weight matrix and linear gains.
// Weights are clamped to [0,1] and gains to finite non-negative values so the
// result always satisfies the engine invariants.
func NewSnapshot(channels int, matrix *[MaxChannels][MaxChannels]float32, gains *[MaxChannels]float32) *Snapshot {
	s := &Snapshot{channels: clampChannels(channels)}

	for out := range MaxChannels {
		for in := range MaxChannels {
			s.matrix[out][in] = clampWeight(matrix[out][in])
		}
		s.gains[out] = clampLinear(gains[out])
	}

	s.derive()
	return s
}

// IdentitySnapshot routes every channel to itself at unity gain.
func IdentitySnapshot(channels int) *Snapshot {
	var matrix [MaxChannels][MaxChannels]float32
	var gains [MaxChannels]float32
	for c := range MaxChannels {
		matrix[c][c] = 1
		gains[c] = 1
	}

	return NewSnapshot(channels, &matrix, &gains)
}

// derive recomputes the active route counts and every value derived from them.
// Only input columns below channels exist on the engine, so weights past
// them neither mix nor count.
func (s *Snapshot) derive() {
	s.permutation = true

	for out := range MaxChannels {
		count := 0
		route := -1
		for in := range s.channels {
			w := s.matrix[out][in]
			if w > 0 {
				count++
				route = in
			}
		}
		s.active[out] = count

		if count == 0 {
			s.scale[out] = 0
		} else {
			s.scale[out] = s.gains[out] / float32(count)
		}

		switch {
		case count == 1 && s.matrix[out][route] == 1:
			s.route[out] = route
		case count == 0:
			s.route[out] = -1
		default:
			s.route[out] = -1
			if out < s.channels {
				s.permutation = false
			}
		}
	}
}

// Channels is the number of channels the snapshot was built for.
func (s *Snapshot) Channels() int { return s.channels }

// Generation is the publish sequence number, 0 until published.
func (s *Snapshot) Generation() uint64 { return s.generation }

// Weight returns matrix[out][in], or 0 for indices out of range.
func (s *Snapshot) Weight(out, in int) float32 {
	if !validIndex(out) || !validIndex(in) {
		return 0
	}
	return s.matrix[out][in]
}

// Gain returns the linear gain of an output channel.
func (s *Snapshot) Gain(out int) float32 {
	if !validIndex(out) {
		return 0
	}
	return s.gains[out]
}

// ActiveRoutes is the number of strictly positive weights in a row on the
// snapshot's live input columns.
func (s *Snapshot) ActiveRoutes(out int) int {
	if !validIndex(out) {
		return 0
	}
	return s.active[out]
}

// Multiplier is the effective per-sample factor gain / max(1, active)
// applied in the gain phase.
func (s *Snapshot) Multiplier(out int) float32 {
	if !validIndex(out) {
		return 0
	}
	return s.scale[out]
}

// Route reports the single live input feeding out when its row is one-hot
// at 1.0.
func (s *Snapshot) Route(out int) (int, bool) {
	if !validIndex(out) || s.route[out] < 0 {
		return -1, false
	}
	return s.route[out], true
}

// IsPermutation reports whether every used row is empty or a one-hot 1.0
// select, so the matrix only copies or mutes channels. Process then selects
// inputs instead of summing rows.
func (s *Snapshot) IsPermutation() bool { return s.permutation }

// Publisher hands snapshots from control goroutines to the real-time
// goroutine through a single atomic pointer.
type Publisher struct {
	channels int
	current  atomic.Pointer[Snapshot]
}

// NewPublisher returns a publisher already holding the identity snapshot, so
// Acquire never returns nil.
func NewPublisher(channels int) *Publisher {
	p := &Publisher{channels: clampChannels(channels)}
	p.Publish(IdentitySnapshot(p.channels))
	return p
}

// Channels is the engine channel count this publisher serves.
func (p *Publisher) Channels() int { return p.channels }

// Publish stores a private copy of s and makes it visible to Acquire.
// Generations strictly increase in store order even with concurrent
// publishers. It may allocate and is meant for control goroutines only.
func (p *Publisher) Publish(s *Snapshot) {
	if s == nil {
		return
	}

	next := *s
	for {
		cur := p.current.Load()
		next.generation = 1
		if cur != nil {
			next.generation = cur.generation + 1
		}
		if p.current.CompareAndSwap(cur, &next) {
			return
		}
	}
}

// Acquire returns the most recently published snapshot. It never blocks,
// allocates or fails.
func (p *Publisher) Acquire() *Snapshot {
	return p.current.Load()
}

func validIndex(c int) bool {
	return c >= 0 && c < MaxChannels
}

func clampChannels(channels int) int {
	if channels < 0 {
		return 0
	}
	return min(channels, MaxChannels)
}

func clampWeight(w float32) float32 {
	switch {
	case w != w, w <= 0:
		return 0
	case w >= 1:
		return 1
	}
	return w
}

func clampLinear(g float32) float32 {
	switch {
	case g != g, g <= 0:
		return 0
	case g > maxLinearGain:
		return maxLinearGain
	}
	return g
}
