package repository

import (
	"context"
	"sync"
	"time"

	"github.com/okian/berth/internal/domain/model"
	"github.com/okian/berth/pkg/metrics"
)

// MemStore is an in-memory Store. Entities live in insertion-order
// slices with an ID index; a RWMutex serializes writers against
// readers while leaving concurrent reads free.
type MemStore struct {
	mu sync.RWMutex

	students      []model.Student
	studentIdx    map[string]int
	internships   []model.Internship
	internshipIdx map[string]int
	interactions  []model.Interaction
}

// NewMemStore creates an empty in-memory store.
func NewMemStore(_ context.Context) *MemStore {
	return &MemStore{
		studentIdx:    make(map[string]int),
		internshipIdx: make(map[string]int),
	}
}

// PutStudent adds or replaces a student. Replacement keeps the
// original catalog position.
func (m *MemStore) PutStudent(_ context.Context, s model.Student) error {
	if s.ID == "" {
		return ErrEmptyID
	}
	defer observeUpdate(time.Now())

	m.mu.Lock()
	defer m.mu.Unlock()

	if i, ok := m.studentIdx[s.ID]; ok {
		m.students[i] = copyStudent(s)
		return nil
	}
	m.studentIdx[s.ID] = len(m.students)
	m.students = append(m.students, copyStudent(s))
	return nil
}

// Student looks up a student by ID.
func (m *MemStore) Student(_ context.Context, id string) (model.Student, bool, error) {
	defer observeQuery(time.Now())

	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.studentIdx[id]
	if !ok {
		return model.Student{}, false, nil
	}
	return copyStudent(m.students[i]), true, nil
}

// Students lists all students in insertion order.
func (m *MemStore) Students(_ context.Context) ([]model.Student, error) {
	defer observeQuery(time.Now())

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Student, len(m.students))
	for i, s := range m.students {
		out[i] = copyStudent(s)
	}
	return out, nil
}

// PutInternship adds or replaces an internship.
func (m *MemStore) PutInternship(_ context.Context, in model.Internship) error {
	if in.ID == "" {
		return ErrEmptyID
	}
	defer observeUpdate(time.Now())

	m.mu.Lock()
	defer m.mu.Unlock()

	if i, ok := m.internshipIdx[in.ID]; ok {
		m.internships[i] = copyInternship(in)
		return nil
	}
	m.internshipIdx[in.ID] = len(m.internships)
	m.internships = append(m.internships, copyInternship(in))
	return nil
}

// Internships lists the catalog in insertion order.
func (m *MemStore) Internships(_ context.Context) ([]model.Internship, error) {
	defer observeQuery(time.Now())

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Internship, len(m.internships))
	for i, in := range m.internships {
		out[i] = copyInternship(in)
	}
	return out, nil
}

// AppendInteraction appends an interaction event.
func (m *MemStore) AppendInteraction(_ context.Context, ev model.Interaction) error {
	defer observeUpdate(time.Now())

	m.mu.Lock()
	defer m.mu.Unlock()

	if ev.Rating != nil {
		r := *ev.Rating
		ev.Rating = &r
	}
	m.interactions = append(m.interactions, ev)
	return nil
}

// Interactions lists all interaction events in append order.
func (m *MemStore) Interactions(_ context.Context) ([]model.Interaction, error) {
	defer observeQuery(time.Now())

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Interaction, len(m.interactions))
	for i, ev := range m.interactions {
		if ev.Rating != nil {
			r := *ev.Rating
			ev.Rating = &r
		}
		out[i] = ev
	}
	return out, nil
}

// Close is a no-op for the in-memory store.
func (m *MemStore) Close() error {
	return nil
}

// Stored entities are returned as copies so callers can never mutate
// shared label slices.
func copyStudent(s model.Student) model.Student {
	s.Skills = append([]string(nil), s.Skills...)
	s.PreferredLocations = append([]string(nil), s.PreferredLocations...)
	s.PreferredIndustries = append([]string(nil), s.PreferredIndustries...)
	return s
}

func copyInternship(in model.Internship) model.Internship {
	in.RequiredSkills = append([]string(nil), in.RequiredSkills...)
	return in
}

func observeUpdate(start time.Time) {
	metrics.RecordStoreUpdateLatency(float64(time.Since(start).Microseconds()) / 1000)
}

func observeQuery(start time.Time) {
	metrics.RecordStoreQueryLatency(float64(time.Since(start).Microseconds()) / 1000)
}
