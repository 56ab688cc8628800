// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlds/queue"
)

const (
	producersKey = "producers"
	itemsKey     = "items"
)

var commandQueue = &cobra.Command{
	Use:   "queue",
	Short: "Run producers and a consumer over a blocking queue and print its metrics",
	Args:  cobra.NoArgs,
	RunE:  runQueue,
}

func init() {
	commandQueue.Flags().Int(capacityKey, 4, "queue capacity (0 = unbounded)")
	commandQueue.Flags().Int(producersKey, 2, "number of producer goroutines")
	commandQueue.Flags().Int(itemsKey, 10, "values put by each producer")
	mainCommand.AddCommand(commandQueue)
}

func runQueue(cmd *cobra.Command, _ []string) error {
	v, err := getViper(cmd)
	if err != nil {
		return err
	}
	producers, items := v.GetInt(producersKey), v.GetInt(itemsKey)

	reg := prometheus.NewRegistry()
	q, err := queue.NewBlocking[int](v.GetInt(capacityKey),
		queue.WithLogger(logger.Named("queue")),
		queue.WithMetrics("lvlds", reg),
	)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for i := 0; i < items; i++ {
				if err := q.Put(ctx, p*items+i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		q.Close()
	}()

	sum, count := 0, 0
	for {
		x, err := q.Take(context.WithoutCancel(ctx))
		if err != nil {
			break
		}
		sum += x
		count++
	}
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Debug("drained", zap.Int("count", count))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "consumed %d values, sum %d\n", count, sum)
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			// exactly one of counter or gauge is set
			value := m.GetCounter().GetValue() + m.GetGauge().GetValue()
			fmt.Fprintf(out, "%s %g\n", mf.GetName(), value)
		}
	}

	return nil
}
