// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlds/core"
)

// Constructor appends a deterministic run of values to dst using the resolved
// config. Constructors validate their parameters before appending anything.
type Constructor func(dst core.Appender[int], cfg builderConfig) error

// Fill resolves bopts once and runs cons against dst in order.
// The first failing constructor aborts the run; values appended by earlier
// constructors stay in dst.
// Complexity: O(len(bopts)) plus the cost of each constructor.
func Fill(dst core.Appender[int], bopts []BuilderOption, cons ...Constructor) error {
	if dst == nil {
		return fmt.Errorf("Fill: nil destination: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Fill: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(dst, cfg); err != nil {
			return fmt.Errorf("Fill: %w", err)
		}
	}

	return nil
}

// Values runs cons like Fill and returns the produced values as a slice.
func Values(bopts []BuilderOption, cons ...Constructor) ([]int, error) {
	var out sliceAppender
	if err := Fill(&out, bopts, cons...); err != nil {
		return nil, err
	}

	return out, nil
}

// sliceAppender adapts a slice to core.Appender.
type sliceAppender []int

func (s *sliceAppender) Append(v int) { *s = append(*s, v) }
