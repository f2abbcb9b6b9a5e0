// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/berth/internal/domain/types"
)

// AnalyticsDependencies defines the interface for analytics queries.
type AnalyticsDependencies interface {
	Analytics(ctx context.Context) (types.Summary, error)
}

// AnalyticsHandler handles analytics requests.
type AnalyticsHandler struct {
	deps AnalyticsDependencies
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(deps AnalyticsDependencies) *AnalyticsHandler {
	return &AnalyticsHandler{deps: deps}
}

// HandleGetAnalytics handles GET /api/analytics requests.
func (h *AnalyticsHandler) HandleGetAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	summary, err := h.deps.Analytics(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if summary.TopSkillsInDemand == nil {
		summary.TopSkillsInDemand = []types.SkillCount{}
	}
	writeJSON(w, http.StatusOK, summary)
}
