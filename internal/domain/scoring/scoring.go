// Package scoring combines independent compatibility signals into a
// single match score for a (student, internship) pair.
package scoring

import (
	"math"
	"strings"

	"github.com/okian/berth/internal/domain/model"
	"github.com/okian/berth/internal/domain/skillset"
)

// Default signal weights. They sum to 1.0, so the combined score is
// naturally bounded to [0, 1].
const (
	defaultSkillWeight      = 0.40
	defaultLocationWeight   = 0.20
	defaultIndustryWeight   = 0.20
	defaultGPAWeight        = 0.10
	defaultExperienceWeight = 0.10
)

// weightSumTolerance bounds floating error when validating that custom
// weights still sum to 1.
const weightSumTolerance = 1e-9

// Experience ordinals. Unrecognized labels fall back to beginner.
const (
	levelBeginner     = 1
	levelIntermediate = 2
	levelAdvanced     = 3
)

var experienceLevels = map[string]int{
	"beginner":     levelBeginner,
	"intermediate": levelIntermediate,
	"advanced":     levelAdvanced,
}

// ExperienceOrdinal maps an experience label to its ordinal on the
// fixed beginner/intermediate/advanced scale. Lookup is
// case-insensitive; unknown labels rank as beginner.
func ExperienceOrdinal(label string) int {
	if lvl, ok := experienceLevels[strings.ToLower(label)]; ok {
		return lvl
	}
	return levelBeginner
}

// Weights holds the relative weight of each signal.
type Weights struct {
	Skill      float64
	Location   float64
	Industry   float64
	GPA        float64
	Experience float64
}

// DefaultWeights returns the hand-tuned production weights.
func DefaultWeights() Weights {
	return Weights{
		Skill:      defaultSkillWeight,
		Location:   defaultLocationWeight,
		Industry:   defaultIndustryWeight,
		GPA:        defaultGPAWeight,
		Experience: defaultExperienceWeight,
	}
}

func (w Weights) sum() float64 {
	return w.Skill + w.Location + w.Industry + w.GPA + w.Experience
}

func (w Weights) valid() bool {
	if w.Skill < 0 || w.Location < 0 || w.Industry < 0 || w.GPA < 0 || w.Experience < 0 {
		return false
	}
	return math.Abs(w.sum()-1.0) <= weightSumTolerance
}

// Breakdown exposes every signal next to the combined score so callers
// can explain why a pair scored the way it did.
type Breakdown struct {
	SkillSimilarity float64 `json:"skill_similarity"`
	LocationMatch   float64 `json:"location_match"`
	IndustryMatch   float64 `json:"industry_match"`
	GPAMatch        float64 `json:"gpa_match"`
	ExperienceMatch float64 `json:"experience_match"`
	Score           float64 `json:"score"`
}

// Option applies a configuration option to the Matcher.
type Option func(*Matcher)

// WithWeights overrides the signal weights. Weights are ignored unless
// all are non-negative and sum to 1.
func WithWeights(w Weights) Option {
	return func(m *Matcher) {
		if w.valid() {
			m.weights = w
		}
	}
}

// Matcher scores (student, internship) pairs with a fixed linear
// model. It carries no mutable state and is safe for concurrent use.
type Matcher struct {
	weights Weights
}

// NewMatcher creates a Matcher with the default weights.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{weights: DefaultWeights()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Weights returns the weights in effect.
func (m *Matcher) Weights() Weights {
	return m.weights
}

// Match computes all signals and their weighted combination. The
// scorer assumes well-formed numeric fields; validation belongs to the
// boundary layer.
func (m *Matcher) Match(student model.Student, internship model.Internship) Breakdown {
	b := Breakdown{
		SkillSimilarity: skillset.Jaccard(student.Skills, internship.RequiredSkills),
		LocationMatch:   membership(internship.Location, student.PreferredLocations),
		IndustryMatch:   membership(internship.Industry, student.PreferredIndustries),
	}

	if student.GPA >= internship.MinGPA {
		b.GPAMatch = 1.0
	}

	// Partial credit below the required level is intentional: an
	// under-qualified student still gets 0.5, never 0.
	if ExperienceOrdinal(student.ExperienceLevel) >= ExperienceOrdinal(internship.ExperienceRequired) {
		b.ExperienceMatch = 1.0
	} else {
		b.ExperienceMatch = 0.5
	}

	b.Score = b.SkillSimilarity*m.weights.Skill +
		b.LocationMatch*m.weights.Location +
		b.IndustryMatch*m.weights.Industry +
		b.GPAMatch*m.weights.GPA +
		b.ExperienceMatch*m.weights.Experience

	return b
}

// Score returns only the combined score.
func (m *Matcher) Score(student model.Student, internship model.Internship) float64 {
	return m.Match(student, internship).Score
}

// membership reports 1.0 when label is present in prefs, exact-string
// comparison.
func membership(label string, prefs []string) float64 {
	for _, p := range prefs {
		if p == label {
			return 1.0
		}
	}
	return 0.0
}
