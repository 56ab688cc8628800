// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlds/avl"
)

var commandAVL = &cobra.Command{
	Use:   "avl values...",
	Short: "Insert values into an AVL tree and print its traversals and balance",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAVL,
}

func init() {
	mainCommand.AddCommand(commandAVL)
}

func runAVL(cmd *cobra.Command, args []string) error {
	values, err := parseInts(args)
	if err != nil {
		return err
	}
	tr := avl.New[int]()
	for _, x := range values {
		if err := tr.Insert(x); err != nil {
			if errors.Is(err, avl.ErrDuplicate) {
				logger.Info("skipping duplicate", zap.Int("value", x))
				continue
			}
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "level order:", tr)
	fmt.Fprintln(out, "in order:   ", tr.InOrder())
	fmt.Fprintln(out, "height:     ", tr.Height())
	return tr.Walk(avl.OrderLevel, avl.WithOnVisit(func(x int, depth int) error {
		n, err := tr.Search(x)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s%d (h=%d, b=%+d)\n", strings.Repeat("  ", depth), x, n.Height(), n.Balance())
		return err
	}))
}
