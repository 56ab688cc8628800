// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlds/internal/scenario"
)

var commandScenario = &cobra.Command{
	Use:   "scenario [name...]",
	Short: "Run end-to-end scenarios S1..S6 (all by default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScenarios(cmd, args)
	},
}

func init() {
	mainCommand.AddCommand(commandScenario)
}

func runScenarios(cmd *cobra.Command, names []string) error {
	if len(names) == 0 {
		names = scenario.Names()
	}
	failed := 0
	for _, name := range names {
		res, err := scenario.Run(name)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), res)
		if !res.Passed() {
			failed++
			logger.Warn("scenario failed", zap.String("name", res.Name))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(names))
	}

	return nil
}
