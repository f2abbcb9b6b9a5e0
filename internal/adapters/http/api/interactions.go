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

// InteractionDependencies defines the interface for interaction
// recording.
type InteractionDependencies interface {
	RecordInteraction(ctx context.Context, ev model.Interaction) bool
}

// InteractionsHandler handles interaction requests.
type InteractionsHandler struct {
	deps InteractionDependencies
}

// NewInteractionsHandler creates a new interactions handler.
func NewInteractionsHandler(deps InteractionDependencies) *InteractionsHandler {
	return &InteractionsHandler{deps: deps}
}

// interactionRequest mirrors the POST /api/interact body. The
// referenced IDs are deliberately not checked against stored entities.
type interactionRequest struct {
	StudentID    string `json:"student_id"`
	InternshipID string `json:"internship_id"`
	Action       string `json:"action"`
	Rating       *int   `json:"rating,omitempty"`
}

func (i interactionRequest) validate() error {
	switch {
	case strings.TrimSpace(i.StudentID) == "":
		return errors.New("missing student_id")
	case strings.TrimSpace(i.InternshipID) == "":
		return errors.New("missing internship_id")
	case strings.TrimSpace(i.Action) == "":
		return errors.New("missing action")
	}
	return nil
}

type ackResponse struct {
	Status string `json:"status"`
}

// HandlePostInteraction handles POST /api/interact requests.
func (h *InteractionsHandler) HandlePostInteraction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req interactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	ev := model.Interaction{
		StudentID:    req.StudentID,
		InternshipID: req.InternshipID,
		Action:       req.Action,
		Rating:       req.Rating,
	}
	if ok := h.deps.RecordInteraction(r.Context(), ev); !ok {
		writeError(w, http.StatusTooManyRequests, "backpressure", ErrBackpressure)
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted"})
}
