// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlds/builder"
	"github.com/katalvlaran/lvlds/cdll"
	"github.com/katalvlaran/lvlds/core"
	"github.com/katalvlaran/lvlds/csll"
	"github.com/katalvlaran/lvlds/dll"
	"github.com/katalvlaran/lvlds/sll"
)

const (
	kindKey    = "kind"
	seedKey    = "seed"
	shuffleKey = "shuffle"
)

var errUnknownKind = errors.New("unknown list kind")

var commandList = &cobra.Command{
	Use:   "list [values...]",
	Short: "Build a linked list from values or a shuffled fixture and print it",
	RunE:  runList,
}

func init() {
	commandList.Flags().String(kindKey, "sll", "list kind: sll, dll, csll or cdll")
	commandList.Flags().Int64(seedKey, 1, "seed for --shuffle")
	commandList.Flags().Int(shuffleKey, 0, "append a seeded permutation of 0..n-1 instead of values")
	mainCommand.AddCommand(commandList)
}

// newSequence returns an empty list of the requested kind.
func newSequence(kind string) (core.Sequence[int], error) {
	switch kind {
	case "sll":
		return sll.New[int](), nil
	case "dll":
		return dll.New[int](), nil
	case "csll":
		return csll.New[int](), nil
	case "cdll":
		return cdll.New[int](), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownKind, kind)
	}
}

func runList(cmd *cobra.Command, args []string) error {
	v, err := getViper(cmd)
	if err != nil {
		return err
	}
	seq, err := newSequence(v.GetString(kindKey))
	if err != nil {
		return err
	}

	var cons builder.Constructor
	if n := v.GetInt(shuffleKey); n > 0 {
		cons = builder.Shuffled(n)
	} else {
		values, err := parseInts(args)
		if err != nil {
			return err
		}
		cons = builder.Literal(values...)
	}
	if err := builder.Fill(seq, []builder.BuilderOption{builder.WithSeed(v.GetInt64(seedKey))}, cons); err != nil {
		return err
	}
	logger.Debug("list built", zap.String("kind", v.GetString(kindKey)), zap.Int("len", seq.Len()))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, seq)
	fmt.Fprintln(out, "len:", seq.Len())

	return nil
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", a, err)
		}
		values = append(values, n)
	}

	return values, nil
}
