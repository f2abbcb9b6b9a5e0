// Package queue defines the contract for enqueuing and consuming
// interaction events.
//
// The interaction log is append-only with no ordering requirement, so
// a bounded in-memory channel is sufficient.
package queue

import (
	"context"
	"sync"
	"time"

	"github.com/okian/berth/internal/domain/model"
	"github.com/okian/berth/pkg/metrics"
)

// Default queue configuration constants.
const (
	defaultCapacity = 10000
)

// Event is the payload type flowing through the queue.
type Event = model.Interaction

// Queue provides non-blocking enqueue and channel-based dequeue.
type Queue interface {
	// Enqueue adds an event. Returns false if the queue is full or
	// closed and the event was not enqueued.
	Enqueue(ctx context.Context, e Event) bool

	// Dequeue returns a channel receiving events as they arrive. The
	// channel is closed when the queue is closed.
	Dequeue(ctx context.Context) <-chan Event

	// Len returns the current number of queued events.
	Len(ctx context.Context) int

	// Close shuts the queue down. After closing, no new events can be
	// enqueued and the dequeue channel is closed.
	Close() error

	// IsClosed reports whether the queue has been closed.
	IsClosed() bool
}

// InMemoryQueue implements Queue on a buffered channel.
type InMemoryQueue struct {
	events   chan Event
	capacity int

	mu     sync.RWMutex
	closed bool
}

// NewInMemoryQueue creates a bounded in-memory queue.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{
		capacity: defaultCapacity,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.events = make(chan Event, q.capacity)

	metrics.UpdateQueueCapacity(q.capacity)
	metrics.UpdateQueueSize(0)
	metrics.UpdateQueueUtilization(0.0)

	return q
}

// Enqueue adds an event to the queue.
func (q *InMemoryQueue) Enqueue(ctx context.Context, e Event) bool {
	start := time.Now()
	defer func() {
		metrics.RecordQueueLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()

	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "closed")
		return false
	}

	select {
	case q.events <- e:
		metrics.RecordQueueEnqueue()
		size := len(q.events)
		metrics.UpdateQueueSize(size)
		metrics.UpdateQueueUtilization(float64(size) / float64(q.capacity))
		return true
	case <-ctx.Done():
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "context_cancelled")
		return false
	default:
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "queue_full")
		return false
	}
}

// Dequeue returns the receive channel.
func (q *InMemoryQueue) Dequeue(_ context.Context) <-chan Event {
	return q.events
}

// Len returns the current number of queued events.
func (q *InMemoryQueue) Len(_ context.Context) int {
	return len(q.events)
}

// Close shuts the queue down. Events already queued remain readable
// until drained.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	q.closed = true
	close(q.events)
	return nil
}

// IsClosed reports whether the queue has been closed.
func (q *InMemoryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
