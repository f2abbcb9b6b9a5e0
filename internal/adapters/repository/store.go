// Package repository defines the persistent store interface and its
// implementations.
package repository

import (
	"context"

	"github.com/okian/berth/internal/domain/model"
)

// Store owns the student, internship and interaction collections. The
// matching core only ever reads entities; writers must serialize with
// readers of the same collection (the implementations handle this).
//
// Iteration order of Students and Internships is insertion order of
// the first add: re-adding an existing ID replaces the record in
// place and keeps its original position. This is the catalog order
// ranking ties fall back to.
type Store interface {
	// PutStudent adds a student, replacing any record with the same ID.
	PutStudent(ctx context.Context, s model.Student) error

	// Student looks up a student by ID. Absence is reported through the
	// bool, never as an error.
	Student(ctx context.Context, id string) (model.Student, bool, error)

	// Students lists all students in insertion order.
	Students(ctx context.Context) ([]model.Student, error)

	// PutInternship adds an internship, replacing any record with the
	// same ID.
	PutInternship(ctx context.Context, in model.Internship) error

	// Internships lists the catalog in insertion order.
	Internships(ctx context.Context) ([]model.Internship, error)

	// AppendInteraction appends an interaction event. No uniqueness, no
	// validation of the referenced IDs.
	AppendInteraction(ctx context.Context, ev model.Interaction) error

	// Interactions lists all interaction events in append order.
	Interactions(ctx context.Context) ([]model.Interaction, error)

	// Close releases any underlying resources.
	Close() error
}
