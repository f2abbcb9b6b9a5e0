// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	eventqueue "github.com/okian/berth/internal/adapters/mq/queue"
	workerpool "github.com/okian/berth/internal/adapters/mq/worker"
	repository "github.com/okian/berth/internal/adapters/repository"
	"github.com/okian/berth/internal/domain/analytics"
	"github.com/okian/berth/internal/domain/model"
	"github.com/okian/berth/internal/domain/ranking"
	"github.com/okian/berth/internal/domain/scoring"
	"github.com/okian/berth/internal/domain/types"
	"github.com/okian/berth/pkg/logger"
	"github.com/okian/berth/pkg/metrics"
)

// Store backend kinds.
const (
	storeMemory = "memory"
	storeSQLite = "sqlite"
)

// Service wires the store, scorer, ranker, aggregator and the
// interaction ingestion pipeline behind one facade.
type Service struct {
	mu sync.RWMutex

	// Core components, built in Start.
	store      repository.Store
	matcher    *scoring.Matcher
	ranker     *ranking.Ranker
	aggregator *analytics.Aggregator
	queue      eventqueue.Queue
	pool       *workerpool.Pool

	// Configuration.
	storeKind   string
	dbPath      string
	queueSize   int
	workerCount int
	weights     scoring.Weights

	// State.
	started bool

	// Logging.
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMemoryStore selects the in-memory store backend.
func WithMemoryStore() Option {
	return func(s *Service) {
		s.storeKind = storeMemory
	}
}

// WithSQLiteStore selects the SQLite store backend at path.
func WithSQLiteStore(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.storeKind = storeSQLite
			s.dbPath = path
		}
	}
}

// WithQueueSize bounds the interaction queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithWorkerCount sets the number of recorder workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithWeights overrides the match scorer weights.
func WithWeights(w scoring.Weights) Option {
	return func(s *Service) {
		s.weights = w
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		storeKind:   storeMemory,
		queueSize:   10_000,
		workerCount: runtime.NumCPU(),
		weights:     scoring.DefaultWeights(),
		logger:      nil, // resolved in Start
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting matching service...")

	switch s.storeKind {
	case storeSQLite:
		store, err := repository.NewSQLiteStore(ctx, s.dbPath)
		if err != nil {
			return fmt.Errorf("start: %w", err)
		}
		s.store = store
		s.logger.Info(ctx, "using sqlite store", logger.String("path", s.dbPath))
	default:
		s.store = repository.NewMemStore(ctx)
		s.logger.Info(ctx, "using in-memory store")
	}

	s.matcher = scoring.NewMatcher(scoring.WithWeights(s.weights))
	s.ranker = ranking.New(s.store, s.matcher)
	s.aggregator = analytics.New(s.store)

	s.queue = eventqueue.NewInMemoryQueue(
		eventqueue.WithCapacity(s.queueSize),
	)
	s.pool = workerpool.NewPool(s.workerCount, s.queue, s.store)
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "matching service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.String("store", s.storeKind),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping matching service...")

	if q, ok := s.queue.(*eventqueue.InMemoryQueue); ok {
		_ = q.Close()
	}
	if s.pool != nil {
		s.pool.Stop()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn(ctx, "store close failed", logger.Error(err))
		}
	}

	s.started = false
	s.logger.Info(ctx, "matching service stopped")
}

// AddStudent adds a student, replacing any existing record with the
// same ID.
func (s *Service) AddStudent(ctx context.Context, st model.Student) error {
	if err := s.store.PutStudent(ctx, st); err != nil {
		return fmt.Errorf("add student: %w", err)
	}
	s.logger.Debug(ctx, "student stored", logger.String("studentID", st.ID))
	return nil
}

// Students lists all students.
func (s *Service) Students(ctx context.Context) ([]model.Student, error) {
	return s.store.Students(ctx)
}

// AddInternship adds an internship, replacing any existing record with
// the same ID.
func (s *Service) AddInternship(ctx context.Context, in model.Internship) error {
	if err := s.store.PutInternship(ctx, in); err != nil {
		return fmt.Errorf("add internship: %w", err)
	}
	s.logger.Debug(ctx, "internship stored", logger.String("internshipID", in.ID))
	return nil
}

// Internships lists the catalog.
func (s *Service) Internships(ctx context.Context) ([]model.Internship, error) {
	return s.store.Internships(ctx)
}

// Recommend returns up to topN internships ranked by match score for
// the given student. An unknown student yields an empty list.
func (s *Service) Recommend(ctx context.Context, studentID string, topN int) ([]types.MatchResult, error) {
	start := time.Now()
	defer func() {
		metrics.RecordMatchLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()
	return s.ranker.Rank(ctx, studentID, topN)
}

// MatchBreakdown exposes the individual scoring signals for one
// (student, internship) pair. Used by debugging surfaces.
func (s *Service) MatchBreakdown(student model.Student, internship model.Internship) scoring.Breakdown {
	return s.matcher.Match(student, internship)
}

// RecordInteraction stamps the event with the current time and
// enqueues it for asynchronous recording. Returns false only on
// backpressure.
func (s *Service) RecordInteraction(ctx context.Context, ev model.Interaction) bool {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	if !s.queue.Enqueue(ctx, ev) {
		metrics.RecordInteractionDropped()
		s.logger.Warn(ctx, "interaction dropped on backpressure",
			logger.String("studentID", ev.StudentID),
			logger.String("internshipID", ev.InternshipID),
		)
		return false
	}
	return true
}

// Analytics returns the catalog-wide summary.
func (s *Service) Analytics(ctx context.Context) (types.Summary, error) {
	return s.aggregator.Summarize(ctx)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":     s.started,
		"store":       s.storeKind,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
	}

	if !s.started {
		return stats
	}

	ctx := context.Background()
	queueLen := s.queue.Len(ctx)
	stats["queueLength"] = queueLen
	metrics.UpdateQueueSize(queueLen)
	metrics.UpdateWorkerCount(s.workerCount)

	if students, err := s.store.Students(ctx); err == nil {
		stats["totalStudents"] = len(students)
		metrics.UpdateTotalStudents(len(students))
	}
	if internships, err := s.store.Internships(ctx); err == nil {
		stats["totalInternships"] = len(internships)
		metrics.UpdateTotalInternships(len(internships))
	}
	if interactions, err := s.store.Interactions(ctx); err == nil {
		stats["totalInteractions"] = len(interactions)
		metrics.UpdateTotalInteractions(len(interactions))
	}

	return stats
}
