// Package analytics aggregates catalog-wide counts and skill demand.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/okian/berth/internal/domain/model"
	"github.com/okian/berth/internal/domain/types"
)

// topSkillLimit caps the skill-demand ranking.
const topSkillLimit = 10

// Source provides the collections the aggregator reads.
type Source interface {
	Students(ctx context.Context) ([]model.Student, error)
	Internships(ctx context.Context) ([]model.Internship, error)
	Interactions(ctx context.Context) ([]model.Interaction, error)
}

// Aggregator computes analytics summaries over a Source.
type Aggregator struct {
	source Source
}

// New creates an Aggregator reading from source.
func New(source Source) *Aggregator {
	return &Aggregator{source: source}
}

// Summarize returns entity counts and the top skills in demand.
func (a *Aggregator) Summarize(ctx context.Context) (types.Summary, error) {
	students, err := a.source.Students(ctx)
	if err != nil {
		return types.Summary{}, fmt.Errorf("analytics: load students: %w", err)
	}
	internships, err := a.source.Internships(ctx)
	if err != nil {
		return types.Summary{}, fmt.Errorf("analytics: load internships: %w", err)
	}
	interactions, err := a.source.Interactions(ctx)
	if err != nil {
		return types.Summary{}, fmt.Errorf("analytics: load interactions: %w", err)
	}

	return types.Summary{
		TotalStudents:     len(students),
		TotalInternships:  len(internships),
		TotalInteractions: len(interactions),
		TopSkillsInDemand: TopSkills(internships, topSkillLimit),
	}, nil
}

// TopSkills flattens every internship's required-skill list, counts
// frequency per distinct label and returns the limit highest counts in
// descending order. Labels are counted exactly as written, with no
// case normalization. Ties keep first-seen label order.
func TopSkills(internships []model.Internship, limit int) []types.SkillCount {
	counts := make(map[string]int)
	var order []string
	for _, in := range internships {
		for _, skill := range in.RequiredSkills {
			if _, seen := counts[skill]; !seen {
				order = append(order, skill)
			}
			counts[skill]++
		}
	}

	ranked := make([]types.SkillCount, 0, len(order))
	for _, skill := range order {
		ranked = append(ranked, types.SkillCount{Skill: skill, Count: counts[skill]})
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Count > ranked[b].Count
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}
