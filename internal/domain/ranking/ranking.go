// Package ranking applies the match scorer across the internship
// catalog for one student and orders the results.
package ranking

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/okian/berth/internal/domain/model"
	"github.com/okian/berth/internal/domain/scoring"
	"github.com/okian/berth/internal/domain/types"
	"github.com/okian/berth/pkg/metrics"
)

// DefaultTopN is applied by the boundary when a request omits top_n.
const DefaultTopN = 10

// Source provides the entities a ranking pass reads. Lookups are
// permissive: an unknown student is reported through the bool, never
// as an error.
type Source interface {
	Student(ctx context.Context, id string) (model.Student, bool, error)
	Internships(ctx context.Context) ([]model.Internship, error)
}

// Option applies a configuration option to the Ranker.
type Option func(*Ranker)

// WithParallelism caps the number of concurrent scoring goroutines.
func WithParallelism(n int) Option {
	return func(r *Ranker) {
		if n > 0 {
			r.parallelism = n
		}
	}
}

// Ranker scores every internship for a student and returns the top-N
// matches. It is pure given a stable catalog snapshot: repeated calls
// with unchanged inputs produce identical output.
type Ranker struct {
	source      Source
	matcher     *scoring.Matcher
	parallelism int
}

// New creates a Ranker reading from source and scoring with matcher.
func New(source Source, matcher *scoring.Matcher, opts ...Option) *Ranker {
	r := &Ranker{
		source:      source,
		matcher:     matcher,
		parallelism: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rank returns up to topN internships ordered by match score
// descending. An unknown student or topN <= 0 yields an empty slice,
// not an error. Ties keep catalog insertion order: scoring fans out
// per internship, but results land at their catalog position and the
// final sort is stable.
func (r *Ranker) Rank(ctx context.Context, studentID string, topN int) ([]types.MatchResult, error) {
	if topN <= 0 {
		return []types.MatchResult{}, nil
	}

	student, found, err := r.source.Student(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("rank: load student: %w", err)
	}
	if !found {
		return []types.MatchResult{}, nil
	}

	catalog, err := r.source.Internships(ctx)
	if err != nil {
		return nil, fmt.Errorf("rank: load catalog: %w", err)
	}

	results := make([]types.MatchResult, len(catalog))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)
	for i, internship := range catalog {
		i, internship := i, internship
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("rank: cancelled: %w", err)
			}
			results[i] = toResult(internship, r.matcher.Score(student, internship))
			metrics.RecordMatchComputed()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].MatchScore > results[b].MatchScore
	})

	if topN < len(results) {
		results = results[:topN]
	}
	return results, nil
}

func toResult(in model.Internship, score float64) types.MatchResult {
	return types.MatchResult{
		InternshipID:       in.ID,
		CompanyName:        in.CompanyName,
		RoleTitle:          in.RoleTitle,
		RequiredSkills:     in.RequiredSkills,
		Location:           in.Location,
		Industry:           in.Industry,
		DurationMonths:     in.DurationMonths,
		MinGPA:             in.MinGPA,
		ExperienceRequired: in.ExperienceRequired,
		Description:        in.Description,
		MatchScore:         score,
	}
}
