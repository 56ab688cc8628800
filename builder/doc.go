// SPDX-License-Identifier: MIT

// Package builder produces deterministic integer fixtures and streams them
// into any container that can Append.
//
// A fixture is an ordered composition of Constructors:
//
//	vals, err := builder.Values(
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Range(0, 4),    // 0 1 2 3
//		builder.Shuffled(3),    // a permutation of 0 1 2
//		builder.Literal(42),    // 42
//	)
//
// Fill runs the same composition against a core.Appender[int], so every
// list in this module can be populated without an intermediate slice:
//
//	l := cdll.New[int]()
//	err := builder.Fill(l, nil, builder.Descending(10, 5))
//
// Constructors:
//
//	Range(start, n)       start, start+step, ... (n values)
//	Descending(start, n)  start, start-step, ... (n values)
//	Literal(vs...)        vs as given
//	Shuffled(n)           a permutation of 0, step, ..., (n-1)*step; needs an RNG
//	Random(n, upper)      n uniform draws from [0, upper); needs an RNG
//
// Options resolve into an immutable config before any constructor runs:
// WithSeed and WithRand supply the RNG, WithStep sets the stride of Range,
// Descending and Shuffled. Option constructors panic on meaningless input;
// constructors return errors and never panic.
//
// Determinism: identical options, seed and constructor order always yield
// identical values. Constructors share one RNG stream in call order.
//
// Errors:
//
//	ErrTooFewValues     a size parameter below its minimum
//	ErrNeedRandSource   a stochastic constructor without WithSeed/WithRand
//	ErrConstructFailed  a nil constructor or nil destination
package builder
