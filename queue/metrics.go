// SPDX-License-Identifier: MIT

package queue

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics groups the collectors of one Blocking queue. A nil *metrics is a
// valid no-op.
type metrics struct {
	length   prometheus.Gauge
	enqueued prometheus.Counter
	dequeued prometheus.Counter
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		length: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_length",
			Help:      "Number of values currently held by the queue",
		}),
		enqueued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queue_enqueued_total",
			Help:      "Number of values accepted by the queue",
		}),
		dequeued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queue_dequeued_total",
			Help:      "Number of values handed out by the queue",
		}),
	}
	err := errors.Join(
		registerer.Register(m.length),
		registerer.Register(m.enqueued),
		registerer.Register(m.dequeued),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *metrics) onEnqueue(length int) {
	if m == nil {
		return
	}
	m.enqueued.Inc()
	m.length.Set(float64(length))
}

func (m *metrics) onDequeue(length int) {
	if m == nil {
		return
	}
	m.dequeued.Inc()
	m.length.Set(float64(length))
}

func (m *metrics) onClear() {
	if m == nil {
		return
	}
	m.length.Set(0)
}
