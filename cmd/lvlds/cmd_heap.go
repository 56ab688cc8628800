// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlds/heap"
)

const (
	capacityKey = "capacity"
	variantKey  = "variant"
)

var commandHeap = &cobra.Command{
	Use:   "heap values...",
	Short: "Insert values into a heap, print its level order and drain it",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHeap,
}

func init() {
	commandHeap.Flags().Int(capacityKey, 0, "heap capacity (default: number of values)")
	commandHeap.Flags().String(variantKey, "max", "heap variant: max or min")
	mainCommand.AddCommand(commandHeap)
}

func runHeap(cmd *cobra.Command, args []string) error {
	v, err := getViper(cmd)
	if err != nil {
		return err
	}
	variant, err := heap.ParseVariant(v.GetString(variantKey))
	if err != nil {
		return err
	}
	values, err := parseInts(args)
	if err != nil {
		return err
	}
	capacity := v.GetInt(capacityKey)
	if capacity == 0 {
		capacity = len(values)
	}

	h, err := heap.New[int](capacity)
	if err != nil {
		return err
	}
	for _, x := range values {
		if err := h.Insert(x, variant); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "level order:", h)
	drained := make([]int, 0, h.Size())
	for !h.IsEmpty() {
		x, err := h.Extract(variant)
		if err != nil {
			return err
		}
		drained = append(drained, x)
	}
	fmt.Fprintln(out, "drained:", drained)

	return nil
}
