// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"math"
	"sync"
	"testing"
)

func TestIdentitySnapshot(t *testing.T) {
	t.Parallel()

	s := IdentitySnapshot(6)

	if s.Channels() != 6 {
		t.Errorf("Channels() = %d, want 6", s.Channels())
	}
	if !s.IsPermutation() {
		t.Error("IsPermutation() = false, want true")
	}
	for c := range 6 {
		if route, ok := s.Route(c); !ok || route != c {
			t.Errorf("Route(%d) = %d, %v; want %d, true", c, route, ok, c)
		}
		if s.ActiveRoutes(c) != 1 || s.Multiplier(c) != 1 {
			t.Errorf("row %d: active=%d multiplier=%v", c, s.ActiveRoutes(c), s.Multiplier(c))
		}
	}
}

func TestNewSnapshot_ClampsAndDerives(t *testing.T) {
	t.Parallel()

	var matrix [MaxChannels][MaxChannels]float32
	var gains [MaxChannels]float32

	matrix[0][0] = 2
	matrix[0][1] = -1
	matrix[0][2] = 0.5
	matrix[1][3] = float32(math.NaN())
	gains[0] = 3
	gains[1] = float32(math.Inf(1))
	gains[2] = -1

	s := NewSnapshot(4, &matrix, &gains)

	if got := s.Weight(0, 0); got != 1 {
		t.Errorf("Weight(0, 0) = %v, want 1", got)
	}
	if got := s.Weight(0, 1); got != 0 {
		t.Errorf("Weight(0, 1) = %v, want 0", got)
	}
	if got := s.Weight(1, 3); got != 0 {
		t.Errorf("NaN weight = %v, want 0", got)
	}
	if got := s.ActiveRoutes(0); got != 2 {
		t.Errorf("ActiveRoutes(0) = %d, want 2", got)
	}
	if got := s.Multiplier(0); got != 1.5 {
		t.Errorf("Multiplier(0) = %v, want 1.5", got)
	}
	if got := s.Gain(1); got != maxLinearGain {
		t.Errorf("Gain(1) = %v, want %v", got, maxLinearGain)
	}
	if got := s.Multiplier(1); got != 0 {
		t.Errorf("Multiplier of empty row = %v, want 0", got)
	}
	if got := s.Gain(2); got != 0 {
		t.Errorf("negative gain = %v, want 0", got)
	}
	if s.IsPermutation() {
		t.Error("IsPermutation() = true for a mixing row")
	}
	if _, ok := s.Route(0); ok {
		t.Error("Route(0) ok for a two input row")
	}
}

func TestSnapshot_OutOfRange(t *testing.T) {
	t.Parallel()

	s := IdentitySnapshot(2)
	if s.Weight(-1, 0) != 0 || s.Weight(0, MaxChannels) != 0 {
		t.Error("Weight out of range should be 0")
	}
	if s.Gain(MaxChannels) != 0 || s.ActiveRoutes(-1) != 0 || s.Multiplier(99) != 0 {
		t.Error("row accessors out of range should be 0")
	}
	if _, ok := s.Route(-1); ok {
		t.Error("Route(-1) ok")
	}
}

func TestPublisher_AcquireNeverNil(t *testing.T) {
	t.Parallel()

	for _, channels := range []int{-3, 0, 2, MaxChannels, MaxChannels + 4} {
		p := NewPublisher(channels)
		s := p.Acquire()
		if s == nil {
			t.Fatalf("Acquire() = nil for %d channels", channels)
		}
		if s.Channels() != p.Channels() || p.Channels() < 0 || p.Channels() > MaxChannels {
			t.Errorf("channels %d: publisher %d, snapshot %d", channels, p.Channels(), s.Channels())
		}
	}
}

func TestPublisher_PublishCopies(t *testing.T) {
	t.Parallel()

	p := NewPublisher(2)
	s := IdentitySnapshot(2)
	p.Publish(s)
	p.Publish(nil)

	got := p.Acquire()
	if got == s {
		t.Error("Publish() stored the caller's pointer")
	}
	if s.Generation() != 0 {
		t.Errorf("caller snapshot generation = %d, want 0", s.Generation())
	}
	if got.Generation() != 2 {
		t.Errorf("Generation() = %d, want 2", got.Generation())
	}
}

func TestPublisher_ConcurrentAcquire(t *testing.T) {
	t.Parallel()

	p := NewPublisher(2)
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 1000 {
			p.Publish(IdentitySnapshot(2))
		}
	}()
	go func() {
		defer wg.Done()
		var last uint64
		for range 1000 {
			g := p.Acquire().Generation()
			if g < last {
				t.Errorf("generation went backwards: %d after %d", g, last)
				return
			}
			last = g
		}
	}()
	wg.Wait()
}

func TestSnapshot_DeadColumnsIgnored(t *testing.T) {
	t.Parallel()

	var matrix [MaxChannels][MaxChannels]float32
	var gains [MaxChannels]float32
	matrix[0][0] = 1
	matrix[0][4] = 1
	matrix[1][1] = 1
	matrix[1][6] = 0.3
	gains[0], gains[1] = 1, 1

	s := NewSnapshot(2, &matrix, &gains)

	for c := range 2 {
		if got := s.ActiveRoutes(c); got != 1 {
			t.Errorf("ActiveRoutes(%d) = %d, want 1", c, got)
		}
		if got := s.Multiplier(c); got != 1 {
			t.Errorf("Multiplier(%d) = %v, want 1", c, got)
		}
		if route, ok := s.Route(c); !ok || route != c {
			t.Errorf("Route(%d) = %d, %v; want %d, true", c, route, ok, c)
		}
	}
	if !s.IsPermutation() {
		t.Error("IsPermutation() = false with weights only in dead columns")
	}
}

func TestPublisher_ConcurrentPublishKeepsOrder(t *testing.T) {
	t.Parallel()

	const (
		writers = 4
		each    = 500
	)

	p := NewPublisher(2)
	var wg sync.WaitGroup

	wg.Add(writers)
	for range writers {
		go func() {
			defer wg.Done()
			for range each {
				p.Publish(IdentitySnapshot(2))
			}
		}()
	}
	wg.Wait()

	// The identity snapshot installed by NewPublisher is generation 1.
	if got := p.Acquire().Generation(); got != writers*each+1 {
		t.Errorf("Generation() = %d, want %d", got, writers*each+1)
	}
}
