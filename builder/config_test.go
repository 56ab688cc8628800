// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
	"testing"
)

// TestBuilderConfigDefaults verifies the deterministic defaults.
func TestBuilderConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if cfg.step != defaultStep {
		t.Errorf("default step: expected %d, got %d", defaultStep, cfg.step)
	}
}

// TestRNGOptions verifies that WithSeed is reproducible and WithRand is
// stored as given.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. WithRand stores the exact pointer.
	exp := rand.New(rand.NewSource(123))
	if got := newBuilderConfig(WithRand(exp)).rng; got != exp {
		t.Errorf("WithRand: expected %p, got %p", exp, got)
	}

	// 2. Equal seeds yield equal streams.
	a := newBuilderConfig(WithSeed(42)).rng
	b := newBuilderConfig(WithSeed(42)).rng
	for i := 0; i < 4; i++ {
		if x, y := a.Int63(), b.Int63(); x != y {
			t.Fatalf("WithSeed(42) draw %d: %d != %d", i, x, y)
		}
	}

	// 3. Later options override earlier ones.
	if got := newBuilderConfig(WithSeed(1), WithRand(exp)).rng; got != exp {
		t.Errorf("last option should win")
	}
}

// TestOptionPanics verifies that meaningless option values fail fast.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func(){
		"WithRand(nil)": func() { WithRand(nil) },
		"WithStep(0)":   func() { WithStep(0) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
