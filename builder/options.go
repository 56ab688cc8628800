// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// BuilderOption customizes the config shared by every constructor of one
// Values or Fill call.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a new RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStep sets the stride between consecutive generated values.
// Negative strides are allowed. Panics on 0.
func WithStep(step int) BuilderOption {
	if step == 0 {
		panic("builder: WithStep(0)")
	}

	return func(c *builderConfig) { c.step = step }
}
