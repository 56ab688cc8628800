// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlds/core"
)

const (
	methodShuffled = "Shuffled"
	methodRandom   = "Random"
	minRandomMax   = 1
)

// Shuffled appends a permutation of 0, step, ..., (n-1)*step drawn from the
// config RNG (Fisher-Yates via rand.Shuffle).
// Validation order: n first, then RNG presence.
// Complexity: O(n) time, O(n) scratch.
func Shuffled(n int) Constructor {
	return func(dst core.Appender[int], cfg builderConfig) error {
		if n < minValues {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodShuffled, n, minValues, ErrTooFewValues)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodShuffled, ErrNeedRandSource)
		}
		perm := make([]int, n)
		for i := range perm {
			perm[i] = i * cfg.step
		}
		cfg.rng.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		for _, v := range perm {
			dst.Append(v)
		}

		return nil
	}
}

// Random appends n uniform draws from [0, upper). Duplicates are possible.
// Validation order: n, upper, then RNG presence.
// Complexity: O(n).
func Random(n, upper int) Constructor {
	return func(dst core.Appender[int], cfg builderConfig) error {
		if n < minValues {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minValues, ErrTooFewValues)
		}
		if upper < minRandomMax {
			return fmt.Errorf("%s: upper=%d < min=%d: %w", methodRandom, upper, minRandomMax, ErrTooFewValues)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			dst.Append(cfg.rng.Intn(upper))
		}

		return nil
	}
}
