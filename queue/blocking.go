// SPDX-License-Identifier: MIT

package queue

import (
	"context"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlds/core"
)

var _ Queue[int] = (*Blocking[int])(nil)

// BlockingOption configures NewBlocking.
type BlockingOption func(*blockingOptions)

type blockingOptions struct {
	log        *zap.Logger
	namespace  string
	registerer prometheus.Registerer
}

// WithLogger attaches a logger for lifecycle events. A nil logger is ignored.
func WithLogger(log *zap.Logger) BlockingOption {
	return func(o *blockingOptions) {
		if log != nil {
			o.log = log
		}
	}
}

// WithMetrics registers a length gauge and enqueue/dequeue counters under
// namespace. Panics if registerer is nil.
func WithMetrics(namespace string, registerer prometheus.Registerer) BlockingOption {
	if registerer == nil {
		panic("queue: WithMetrics: registerer must not be nil")
	}

	return func(o *blockingOptions) {
		o.namespace = namespace
		o.registerer = registerer
	}
}

// Blocking is a goroutine-safe FIFO over a linked queue. Put and Take wait on
// condition variables; a bounded queue makes Put wait while full.
//
// After Close, Put and Enqueue fail with ErrClosed; Take and Dequeue keep
// draining what is left and fail with ErrClosed once it is gone.
type Blocking[T comparable] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond
	items    *Linked[T]
	capacity int // 0 = unbounded
	closed   bool

	log     *zap.Logger
	metrics *metrics
}

// NewBlocking returns an open queue. capacity 0 means unbounded.
// Returns an error if capacity is negative or metric registration fails.
func NewBlocking[T comparable](capacity int, opts ...BlockingOption) (*Blocking[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("queue: NewBlocking: negative capacity %d", capacity)
	}
	o := blockingOptions{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	q := &Blocking[T]{
		items:    NewLinked[T](),
		capacity: capacity,
		log:      o.log,
	}
	q.notEmpty = sync.NewCond(&q.mu)
	q.notFull = sync.NewCond(&q.mu)

	if o.registerer != nil {
		m, err := newMetrics(o.namespace, o.registerer)
		if err != nil {
			return nil, fmt.Errorf("queue: NewBlocking: registering metrics: %w", err)
		}
		q.metrics = m
	}

	return q, nil
}

// Put appends v, waiting while the queue is full.
// Returns ctx.Err() if ctx ends first, or ErrClosed.
func (q *Blocking[T]) Put(ctx context.Context, v T) error {
	stop := context.AfterFunc(ctx, q.wake(q.notFull))
	defer stop()

	q.mu.Lock()
	defer q.mu.Unlock()

	for !q.closed && q.full() {
		if err := ctx.Err(); err != nil {
			return err
		}
		q.notFull.Wait()
	}
	if q.closed {
		return fmt.Errorf("queue: Put: %w", ErrClosed)
	}
	q.push(v)

	return nil
}

// Take removes the front value, waiting while the queue is empty.
// Returns ctx.Err() if ctx ends first, or ErrClosed once a closed queue
// is drained.
func (q *Blocking[T]) Take(ctx context.Context) (T, error) {
	stop := context.AfterFunc(ctx, q.wake(q.notEmpty))
	defer stop()

	q.mu.Lock()
	defer q.mu.Unlock()

	for !q.closed && q.items.IsEmpty() {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		q.notEmpty.Wait()
	}
	if q.items.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("queue: Take: %w", ErrClosed)
	}

	return q.pop(), nil
}

// Enqueue appends v without waiting. Returns core.ErrFull or ErrClosed.
func (q *Blocking[T]) Enqueue(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return fmt.Errorf("queue: Enqueue: %w", ErrClosed)
	}
	if q.full() {
		return fmt.Errorf("queue: Enqueue: %w (capacity %d)", core.ErrFull, q.capacity)
	}
	q.push(v)

	return nil
}

// Dequeue removes the front value without waiting.
// Returns core.ErrEmpty on an open empty queue, ErrClosed on a closed one.
func (q *Blocking[T]) Dequeue() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.items.IsEmpty() {
		var zero T
		if q.closed {
			return zero, fmt.Errorf("queue: Dequeue: %w", ErrClosed)
		}
		return zero, fmt.Errorf("queue: Dequeue: %w", core.ErrEmpty)
	}

	return q.pop(), nil
}

// Peek returns the front value without removing it.
func (q *Blocking[T]) Peek() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.items.Peek()
}

// Size returns the number of queued values.
func (q *Blocking[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.items.Size()
}

// IsEmpty reports whether Size() == 0.
func (q *Blocking[T]) IsEmpty() bool { return q.Size() == 0 }

// Capacity returns the bound, or 0 when unbounded.
func (q *Blocking[T]) Capacity() int { return q.capacity }

// Clear drops every queued value and wakes blocked producers.
func (q *Blocking[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items.Clear()
	q.metrics.onClear()
	q.notFull.Broadcast()
}

// Close rejects further puts and wakes every waiter. Idempotent.
func (q *Blocking[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.log.Debug("queue closed", zap.Int("pending", q.items.Size()))
	q.notEmpty.Broadcast()
	q.notFull.Broadcast()
}

// full must be called with mu held.
func (q *Blocking[T]) full() bool {
	return q.capacity > 0 && q.items.Size() >= q.capacity
}

// push must be called with mu held and room available.
func (q *Blocking[T]) push(v T) {
	_ = q.items.Enqueue(v)
	q.metrics.onEnqueue(q.items.Size())
	q.notEmpty.Broadcast()
}

// pop must be called with mu held on a non-empty queue.
func (q *Blocking[T]) pop() T {
	v, _ := q.items.Dequeue()
	q.metrics.onDequeue(q.items.Size())
	q.notFull.Broadcast()

	return v
}

// wake returns a callback that broadcasts c under mu, so a waiter that has
// just checked ctx.Err() cannot miss it.
func (q *Blocking[T]) wake(c *sync.Cond) func() {
	return func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		c.Broadcast()
	}
}
