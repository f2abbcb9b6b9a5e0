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

// InternshipDependencies defines the interface for internship
// operations.
type InternshipDependencies interface {
	AddInternship(ctx context.Context, in model.Internship) error
	Internships(ctx context.Context) ([]model.Internship, error)
}

// InternshipsHandler handles internship requests.
type InternshipsHandler struct {
	deps InternshipDependencies
}

// NewInternshipsHandler creates a new internships handler.
func NewInternshipsHandler(deps InternshipDependencies) *InternshipsHandler {
	return &InternshipsHandler{deps: deps}
}

// internshipRequest mirrors the POST /api/internships body.
type internshipRequest model.Internship

func (i internshipRequest) validate() error {
	switch {
	case strings.TrimSpace(i.ID) == "":
		return errors.New("missing internship_id")
	case strings.TrimSpace(i.CompanyName) == "":
		return errors.New("missing company_name")
	case strings.TrimSpace(i.RoleTitle) == "":
		return errors.New("missing role_title")
	case i.DurationMonths < 1:
		return errors.New("duration_months must be positive")
	case i.MinGPA < minGPA || i.MinGPA > maxGPA:
		return errors.New("min_gpa out of range [0, 4]")
	}
	return nil
}

type internshipsResponse struct {
	Internships []model.Internship `json:"internships"`
}

// HandleInternships handles POST and GET /api/internships requests.
func (h *InternshipsHandler) HandleInternships(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req internshipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		if err := h.deps.AddInternship(r.Context(), model.Internship(req)); err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err)
			return
		}
		writeJSON(w, http.StatusCreated, messageResponse{Message: "Internship added successfully"})
	case http.MethodGet:
		internships, err := h.deps.Internships(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err)
			return
		}
		if internships == nil {
			internships = []model.Internship{}
		}
		writeJSON(w, http.StatusOK, internshipsResponse{Internships: internships})
	default:
		http.NotFound(w, r)
	}
}
