// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewValues indicates a size parameter (n, max, len(vs)) below the
// minimum the constructor accepts.
var ErrTooFewValues = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG;
// supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the composition itself is malformed
// (nil constructor, nil destination).
var ErrConstructFailed = errors.New("builder: construction failed")
