// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/berth/internal/domain/model"
)

// Bounds for numeric request fields, checked at the boundary so the
// scoring core can assume well-formed values.
const (
	minGPA = 0.0
	maxGPA = 4.0
)

// StudentDependencies defines the interface for student operations.
type StudentDependencies interface {
	AddStudent(ctx context.Context, s model.Student) error
	Students(ctx context.Context) ([]model.Student, error)
}

// StudentsHandler handles student requests.
type StudentsHandler struct {
	deps StudentDependencies
}

// NewStudentsHandler creates a new students handler.
func NewStudentsHandler(deps StudentDependencies) *StudentsHandler {
	return &StudentsHandler{deps: deps}
}

// studentRequest mirrors the POST /api/students body.
type studentRequest model.Student

func (s studentRequest) validate() error {
	switch {
	case strings.TrimSpace(s.ID) == "":
		return errors.New("missing student_id")
	case strings.TrimSpace(s.Name) == "":
		return errors.New("missing name")
	case s.GPA < minGPA || s.GPA > maxGPA:
		return errors.New("gpa out of range [0, 4]")
	}
	return nil
}

type studentsResponse struct {
	Students []model.Student `json:"students"`
}

// HandleStudents handles POST and GET /api/students requests.
func (h *StudentsHandler) HandleStudents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req studentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		if err := h.deps.AddStudent(r.Context(), model.Student(req)); err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err)
			return
		}
		writeJSON(w, http.StatusCreated, messageResponse{Message: "Student added successfully"})
	case http.MethodGet:
		students, err := h.deps.Students(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err)
			return
		}
		if students == nil {
			students = []model.Student{}
		}
		writeJSON(w, http.StatusOK, studentsResponse{Students: students})
	default:
		http.NotFound(w, r)
	}
}
