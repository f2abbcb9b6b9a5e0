package seeder

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/okian/berth/internal/domain/model"
	"github.com/okian/berth/internal/domain/types"
	"github.com/okian/berth/pkg/logger"
)

// processingDelay gives the interaction workers time to drain the queue
// before analytics are read back.
const processingDelay = 2 * time.Second

// Run seeds the service with sample and generated data, then reads back
// recommendations and analytics to confirm the catalog is live.
func Run(ctx context.Context, cfg *Config) error {
	stats := &Stats{StartTime: time.Now()}
	c := newClient(cfg)

	logger.Get().Info(ctx, "starting berth seeder",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("students", cfg.Students),
		logger.Int("internships", cfg.Internships),
		logger.Int("interactions", cfg.Interactions),
		logger.Int("workers", cfg.Workers),
		logger.Any("samplesOnly", cfg.SamplesOnly))

	if err := checkServiceHealth(ctx, cfg, c); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	students := append([]model.Student{}, sampleStudents...)
	internships := append([]model.Internship{}, sampleInternships...)
	if !cfg.SamplesOnly {
		students = append(students, generateStudents(ctx, cfg.Students)...)
		internships = append(internships, generateInternships(ctx, cfg.Internships)...)
	}

	logger.Get().Info(ctx, "submitting students", logger.Int("count", len(students)))
	stats.Failed += submitBatch(ctx, cfg, c, cfg.BaseURL+"/api/students", students,
		map[int]*int64{http.StatusCreated: &stats.StudentsSubmitted})

	logger.Get().Info(ctx, "submitting internships", logger.Int("count", len(internships)))
	stats.Failed += submitBatch(ctx, cfg, c, cfg.BaseURL+"/api/internships", internships,
		map[int]*int64{http.StatusCreated: &stats.InternshipsSubmitted})

	if !cfg.SamplesOnly && cfg.Interactions > 0 {
		interactions := generateInteractions(ctx, students, internships, cfg.Interactions)
		logger.Get().Info(ctx, "submitting interactions", logger.Int("count", len(interactions)))
		stats.Failed += submitBatch(ctx, cfg, c, cfg.BaseURL+"/api/interact", interactions,
			map[int]*int64{
				http.StatusAccepted:        &stats.InteractionsSubmitted,
				http.StatusTooManyRequests: &stats.InteractionsDropped,
			})

		logger.Get().Info(ctx, "waiting for interactions to be recorded")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(processingDelay):
		}
	}

	if err := showRecommendations(ctx, cfg, c); err != nil {
		return fmt.Errorf("recommendation readback failed: %w", err)
	}
	if err := showAnalytics(ctx, cfg, c); err != nil {
		return fmt.Errorf("analytics readback failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)
	return nil
}

// showRecommendations fetches ranked matches for the fixed sample cohort.
func showRecommendations(ctx context.Context, cfg *Config, c *client) error {
	for _, st := range sampleStudents {
		url := cfg.BaseURL + "/api/recommendations/" + st.ID + "?top_n=" + strconv.Itoa(cfg.TopN)

		var body struct {
			Recommendations []types.MatchResult `json:"recommendations"`
		}
		if err := c.getJSON(ctx, url, &body); err != nil {
			return err
		}

		logger.Get().Info(ctx, "recommendations retrieved",
			logger.String("student_id", st.ID),
			logger.Int("count", len(body.Recommendations)))
		if cfg.Verbose {
			for _, rec := range body.Recommendations {
				logger.Get().Info(ctx, "match",
					logger.String("internship_id", rec.InternshipID),
					logger.String("company", rec.CompanyName),
					logger.Float64("match_score", rec.MatchScore))
			}
		}
	}
	return nil
}

// showAnalytics fetches the aggregate summary.
func showAnalytics(ctx context.Context, cfg *Config, c *client) error {
	var summary types.Summary
	if err := c.getJSON(ctx, cfg.BaseURL+"/api/analytics", &summary); err != nil {
		return err
	}

	logger.Get().Info(ctx, "analytics retrieved",
		logger.Int("total_students", summary.TotalStudents),
		logger.Int("total_internships", summary.TotalInternships),
		logger.Int("total_interactions", summary.TotalInteractions))
	for _, sc := range summary.TopSkillsInDemand {
		logger.Get().Info(ctx, "skill demand", logger.String("skill", sc.Skill), logger.Int("count", sc.Count))
	}
	return nil
}

func displayFinalStats(ctx context.Context, stats *Stats) {
	logger.Get().Info(ctx, "seeding complete",
		logger.Any("studentsSubmitted", stats.StudentsSubmitted),
		logger.Any("internshipsSubmitted", stats.InternshipsSubmitted),
		logger.Any("interactionsSubmitted", stats.InteractionsSubmitted),
		logger.Any("interactionsDropped", stats.InteractionsDropped),
		logger.Any("failed", stats.Failed),
		logger.String("duration", stats.Duration.String()))
}
