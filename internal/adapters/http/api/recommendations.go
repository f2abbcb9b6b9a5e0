// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/berth/internal/domain/ranking"
	"github.com/okian/berth/internal/domain/types"
)

// RecommendationDependencies defines the interface for recommendation
// operations.
type RecommendationDependencies interface {
	Recommend(ctx context.Context, studentID string, topN int) ([]types.MatchResult, error)
}

// RecommendationsHandler handles recommendation requests.
type RecommendationsHandler struct {
	deps    RecommendationDependencies
	maxTopN int
}

// NewRecommendationsHandler creates a new recommendations handler.
func NewRecommendationsHandler(deps RecommendationDependencies, maxTopN int) *RecommendationsHandler {
	return &RecommendationsHandler{deps: deps, maxTopN: maxTopN}
}

type recommendationsResponse struct {
	Recommendations []types.MatchResult `json:"recommendations"`
}

// HandleGetRecommendations handles
// GET /api/recommendations/{student_id}?top_n=N requests.
//
// An unknown student id yields 200 with an empty list, which callers
// must treat as distinct from zero-scored matches.
func (h *RecommendationsHandler) HandleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	studentID := strings.TrimPrefix(r.URL.Path, "/api/recommendations/")
	if studentID == "" || strings.Contains(studentID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	topN := ranking.DefaultTopN
	if raw := r.URL.Query().Get("top_n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", errors.New("top_n must be a positive integer"))
			return
		}
		if n > h.maxTopN {
			writeError(w, http.StatusBadRequest, "limit_exceeded", ErrBadRequest)
			return
		}
		topN = n
	}

	results, err := h.deps.Recommend(r.Context(), studentID, topN)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if results == nil {
		results = []types.MatchResult{}
	}
	writeJSON(w, http.StatusOK, recommendationsResponse{Recommendations: results})
}
