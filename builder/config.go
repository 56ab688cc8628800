// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig aggregates the knobs constructors read. It is passed by value.
type builderConfig struct {
	// rng drives Shuffled and Random; nil means no randomness is available.
	rng *rand.Rand
	// step is the stride of Range, Descending and Shuffled; never 0.
	step int
}

const defaultStep = 1

// newBuilderConfig applies opts over the defaults, last one wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:  nil,
		step: defaultStep,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
