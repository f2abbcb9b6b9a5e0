// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/berth/internal/domain/model"
	"github.com/okian/berth/internal/domain/types"
)

// Dependencies required by the HTTP handlers. An interface bundle
// keeps the handler layer loosely coupled to the service package.
type Dependencies interface {
	AddStudent(ctx context.Context, s model.Student) error
	Students(ctx context.Context) ([]model.Student, error)
	AddInternship(ctx context.Context, in model.Internship) error
	Internships(ctx context.Context) ([]model.Internship, error)
	Recommend(ctx context.Context, studentID string, topN int) ([]types.MatchResult, error)
	RecordInteraction(ctx context.Context, ev model.Interaction) bool
	Analytics(ctx context.Context) (types.Summary, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	studentsHandler        *StudentsHandler
	internshipsHandler     *InternshipsHandler
	recommendationsHandler *RecommendationsHandler
	interactionsHandler    *InteractionsHandler
	analyticsHandler       *AnalyticsHandler
	statsHandler           *StatsHandler
	healthHandler          *HealthHandler
}

// NewServer creates an API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxTopN int) *Server {
	return &Server{
		studentsHandler:        NewStudentsHandler(deps),
		internshipsHandler:     NewInternshipsHandler(deps),
		recommendationsHandler: NewRecommendationsHandler(deps, maxTopN),
		interactionsHandler:    NewInteractionsHandler(deps),
		analyticsHandler:       NewAnalyticsHandler(deps),
		statsHandler:           NewStatsHandler(statsProvider),
		healthHandler:          NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/students", MetricsMiddleware(s.studentsHandler.HandleStudents, "students"))
	mux.HandleFunc("/api/internships", MetricsMiddleware(s.internshipsHandler.HandleInternships, "internships"))
	mux.HandleFunc("/api/recommendations/", MetricsMiddleware(s.recommendationsHandler.HandleGetRecommendations, "recommendations"))
	mux.HandleFunc("/api/interact", MetricsMiddleware(s.interactionsHandler.HandlePostInteraction, "interact"))
	mux.HandleFunc("/api/analytics", MetricsMiddleware(s.analyticsHandler.HandleGetAnalytics, "analytics"))
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
