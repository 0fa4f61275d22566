// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package coin

import (
	crand "crypto/rand"
	"math/rand/v2"
	"sync"
)

// Outcome is one side of the coin.
type Outcome string

const (
	Heads Outcome = "heads"
	Tails Outcome = "tails"
)

// Outcomes lists both sides in a fixed order.
var Outcomes = [2]Outcome{Heads, Tails}

// Valid reports whether o is one of the two sides.
func (o Outcome) Valid() bool {
	return o == Heads || o == Tails
}

func (o Outcome) String() string {
	return string(o)
}

// Source draws independent, uniformly distributed outcomes.
// Implementations must be safe for concurrent use.
type Source interface {
	Draw() Outcome
}

type cryptoSource struct{}

// NewCrypto returns a Source backed by crypto/rand.
func NewCrypto() Source {
	return cryptoSource{}
}

func (cryptoSource) Draw() Outcome {
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand.Read never returns an error on supported platforms
		panic("coin: read random byte: " + err.Error())
	}
	return Outcomes[b[0]&1]
}

type seededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded returns a reproducible Source. Two sources built with the same
// seed produce the same sequence of outcomes.
func NewSeeded(seed uint64) Source {
	return &seededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Draw() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Outcomes[s.rng.IntN(2)]
}

type sequenceSource struct {
	mu   sync.Mutex
	seq  []Outcome
	next int
}

// NewSequence returns a Source that replays seq in order, wrapping around
// when it runs out. It panics if seq is empty.
func NewSequence(seq ...Outcome) Source {
	if len(seq) == 0 {
		panic("coin: empty sequence")
	}
	return &sequenceSource{seq: append([]Outcome(nil), seq...)}
}

func (s *sequenceSource) Draw() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.seq[s.next%len(s.seq)]
	s.next++
	return o
}
