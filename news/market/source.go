// Package market produces the synthetic market figures shown by the bot.
// None of the numbers are real: every value is drawn from a Source within
// documented bounds.
package market

import (
	"math/rand/v2"
	"sync"
)

// Source yields floats in [0, 1). Implementations must be safe for concurrent use.
type Source interface {
	Float64() float64
}

// Rand is the production Source backed by the math/rand/v2 global generator.
type Rand struct{}

// NewRand returns the production Source.
func NewRand() Rand { return Rand{} }

// Float64 returns a pseudo-random value in [0, 1).
func (Rand) Float64() float64 { return rand.Float64() }

// Constant always returns the same value.
type Constant float64

// Float64 returns the constant clamped into [0, 1).
func (c Constant) Float64() float64 { return clampUnit(float64(c)) }

// Sequence replays a fixed list of values, wrapping around at the end.
type Sequence struct {
	mu     sync.Mutex
	values []float64
	next   int
}

// NewSequence returns a Sequence over values. An empty list behaves like Constant(0).
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: append([]float64(nil), values...)}
}

// Float64 returns the next value of the sequence.
func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return clampUnit(v)
}

// Between maps the next value of src onto [lo, hi].
func Between(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Pick returns an index in [0, n) drawn from src.
func Pick(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v >= 1:
		return 0.999999
	default:
		return v
	}
}
