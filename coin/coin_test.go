// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package coin

import (
	"math"
	"sync"
	"testing"
)

func TestDrawReturnsValidOutcome(t *testing.T) {
	sources := map[string]Source{
		"crypto": NewCrypto(),
		"seeded": NewSeeded(42),
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				if o := src.Draw(); !o.Valid() {
					t.Fatalf("draw %d: unexpected outcome %q", i, o)
				}
			}
		})
	}
}

func TestDrawIsRoughlyUniform(t *testing.T) {
	const draws = 10000

	sources := map[string]Source{
		"crypto": NewCrypto(),
		"seeded": NewSeeded(7),
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			heads := 0
			for i := 0; i < draws; i++ {
				if src.Draw() == Heads {
					heads++
				}
			}

			// 5 standard deviations is 2.5% for 10k draws
			share := float64(heads) / draws
			if math.Abs(share-0.5) > 0.03 {
				t.Errorf("Expected heads share near 0.5, got %.4f", share)
			}
		})
	}
}

func TestSeededIsReproducible(t *testing.T) {
	a := NewSeeded(1234)
	b := NewSeeded(1234)

	for i := 0; i < 200; i++ {
		if x, y := a.Draw(), b.Draw(); x != y {
			t.Fatalf("draw %d differs: %s vs %s", i, x, y)
		}
	}
}

func TestSequenceWrapsAround(t *testing.T) {
	src := NewSequence(Heads, Tails, Tails)

	want := []Outcome{Heads, Tails, Tails, Heads, Tails}
	for i, w := range want {
		if got := src.Draw(); got != w {
			t.Errorf("draw %d: expected %s, got %s", i, w, got)
		}
	}
}

func TestSequencePanicsWhenEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for empty sequence")
		}
	}()
	NewSequence()
}

func TestSourcesAreConcurrencySafe(t *testing.T) {
	src := NewSequence(Heads, Tails)

	var wg sync.WaitGroup
	counts := make([]int, 8)
	for g := range counts {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				if src.Draw() == Heads {
					counts[g]++
				}
			}
		}(g)
	}
	wg.Wait()

	total := 0
	for _, c := range counts {
		total += c
	}
	if total != 2000 {
		t.Errorf("Expected exactly half of 4000 draws to be heads, got %d", total)
	}
}

func TestOutcomeValid(t *testing.T) {
	tests := []struct {
		outcome Outcome
		valid   bool
	}{
		{Heads, true},
		{Tails, true},
		{"edge", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.outcome.Valid(); got != tt.valid {
			t.Errorf("Outcome(%q).Valid() = %v, want %v", tt.outcome, got, tt.valid)
		}
	}
}
