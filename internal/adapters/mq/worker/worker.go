// Package worker runs the recorder pool that drains the interaction
// queue into the store.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/okian/berth/internal/domain/model"
	"github.com/okian/berth/pkg/logger"
	"github.com/okian/berth/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerCount  = 4
	poolShutdownTimeout = 30 * time.Second
)

// Event is what workers read off the queue.
type Event = model.Interaction

// Recorder appends interaction events to durable storage.
type Recorder interface {
	AppendInteraction(ctx context.Context, ev model.Interaction) error
}

// Queue defines how workers receive events.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Event
}

// Worker drains one queue subscription into the recorder.
type Worker struct {
	queue    Queue
	recorder Recorder
	name     string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewWorker creates a worker with configuration options.
func NewWorker(queue Queue, recorder Recorder, opts ...Option) *Worker {
	w := &Worker{
		queue:    queue,
		recorder: recorder,
		name:     "recorder",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("recorder"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run processes events until the context is cancelled, the queue is
// closed or Shutdown is called.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	events := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := w.process(ctx, ev); err != nil {
				w.logger.Error(ctx, "recording interaction failed", logger.Error(err))
			}
		}
	}
}

// Shutdown stops the worker, honoring ctx for the wait.
func (w *Worker) Shutdown(ctx context.Context) error {
	close(w.shutdown)
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("worker shutdown: %w", ctx.Err())
	}
}

func (w *Worker) process(ctx context.Context, ev Event) error {
	start := time.Now()
	defer func() {
		metrics.RecordWorkerLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()

	metrics.RecordQueueDequeue()
	if err := w.recorder.AppendInteraction(ctx, ev); err != nil {
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "append_failed")
		return fmt.Errorf("append interaction %s/%s: %w", ev.StudentID, ev.InternshipID, err)
	}
	metrics.RecordInteractionRecorded()
	return nil
}

// Pool manages a fixed set of workers over one queue.
type Pool struct {
	workers []*Worker

	logger logger.Logger
}

// NewPool creates workerCount workers reading from queue.
func NewPool(workerCount int, queue Queue, recorder Recorder) *Pool {
	if workerCount < 1 {
		workerCount = max(defaultWorkerCount, runtime.NumCPU())
	}

	p := &Pool{
		workers: make([]*Worker, workerCount),
		logger:  logger.Get().Named("recorder-pool"),
	}
	for i := range p.workers {
		p.workers[i] = NewWorker(queue, recorder, WithName("recorder-"+strconv.Itoa(i)))
	}

	metrics.UpdateWorkerCount(workerCount)
	return p
}

// Size returns the number of workers in the pool.
func (p *Pool) Size() int {
	return len(p.workers)
}

// Start launches every worker.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
	p.logger.Info(ctx, "recorder pool started", logger.Int("workers", len(p.workers)))
}

// Stop shuts all workers down, bounded by the pool shutdown timeout.
func (p *Pool) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), poolShutdownTimeout)
	defer cancel()

	var wg sync.WaitGroup
	for _, w := range p.workers {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := w.Shutdown(ctx); err != nil {
				p.logger.Warn(ctx, "worker shutdown failed", logger.Error(err))
			}
		}()
	}
	wg.Wait()
	p.logger.Info(ctx, "recorder pool stopped")
}
