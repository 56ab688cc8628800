// SPDX-License-Identifier: MIT

// Command lvlds drives the containers from the command line: it runs the
// end-to-end scenarios and builds lists, heaps and trees from arguments.
//
// Every flag can also be set through an LVLDS_-prefixed environment
// variable, e.g. LVLDS_LOG_LEVEL=debug or LVLDS_CAPACITY=16.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envPrefix   = "LVLDS"
	logLevelKey = "log-level"
)

var (
	logger = zap.NewNop()

	mainCommand = &cobra.Command{
		Use:               "lvlds",
		Short:             "Positional sequence containers, heap and AVL playground",
		SilenceUsage:      true,
		PersistentPreRunE: preRun,
	}
)

func init() {
	mainCommand.PersistentFlags().String(logLevelKey, "info", "log level (debug, info, warn, error)")
}

func main() {
	err := mainCommand.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// preRun builds the logger once flags and environment are resolved.
func preRun(cmd *cobra.Command, _ []string) error {
	v, err := getViper(cmd)
	if err != nil {
		return err
	}
	logger, err = newLogger(v.GetString(logLevelKey))
	if err != nil {
		return err
	}
	logger.Debug("starting", zap.String("command", cmd.Name()))

	return nil
}

// getViper binds the flags visible to cmd and layers LVLDS_* environment
// variables over their defaults.
func getViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	if err := v.BindPFlags(cmd.InheritedFlags()); err != nil {
		return nil, err
	}

	return v, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true

	return cfg.Build()
}
