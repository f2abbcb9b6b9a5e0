package scoring_test

import (
	"testing"

	"github.com/okian/berth/internal/domain/model"
	"github.com/okian/berth/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

const tolerance = 1e-9

func TestMatcher_Match(t *testing.T) {
	Convey("Given a matcher with default weights", t, func() {
		matcher := scoring.NewMatcher()

		Convey("When every signal except skills is a full match", func() {
			student := model.Student{
				ID:                  "s1",
				Skills:              []string{"Python", "Machine Learning", "Data Analysis"},
				GPA:                 3.8,
				PreferredLocations:  []string{"New York", "San Francisco"},
				PreferredIndustries: []string{"Technology"},
				ExperienceLevel:     "intermediate",
			}
			internship := model.Internship{
				ID:                 "i1",
				RequiredSkills:     []string{"Python", "Machine Learning"},
				Location:           "San Francisco",
				Industry:           "Technology",
				MinGPA:             3.5,
				ExperienceRequired: "intermediate",
			}

			b := matcher.Match(student, internship)

			Convey("Then each signal reports its own value", func() {
				So(b.SkillSimilarity, ShouldAlmostEqual, 2.0/3.0, tolerance)
				So(b.LocationMatch, ShouldEqual, 1.0)
				So(b.IndustryMatch, ShouldEqual, 1.0)
				So(b.GPAMatch, ShouldEqual, 1.0)
				So(b.ExperienceMatch, ShouldEqual, 1.0)
			})

			Convey("Then the combined score is the weighted sum", func() {
				So(b.Score, ShouldAlmostEqual, 0.40*(2.0/3.0)+0.20+0.20+0.10+0.10, tolerance)
			})
		})

		Convey("When nothing matches except the experience floor", func() {
			student := model.Student{
				ID:              "s2",
				Skills:          []string{"Marketing"},
				GPA:             2.0,
				ExperienceLevel: "beginner",
			}
			internship := model.Internship{
				ID:                 "i2",
				RequiredSkills:     []string{"Python"},
				Location:           "Boston",
				Industry:           "Finance",
				MinGPA:             3.5,
				ExperienceRequired: "advanced",
			}

			b := matcher.Match(student, internship)

			Convey("Then under-qualified experience still scores half", func() {
				So(b.ExperienceMatch, ShouldEqual, 0.5)
			})

			Convey("Then the floor of the combined score is the experience credit", func() {
				So(b.Score, ShouldAlmostEqual, 0.10*0.5, tolerance)
			})
		})

		Convey("When the student exceeds the required experience", func() {
			student := model.Student{ExperienceLevel: "advanced"}
			internship := model.Internship{ExperienceRequired: "beginner"}

			Convey("Then the experience signal is full", func() {
				So(matcher.Match(student, internship).ExperienceMatch, ShouldEqual, 1.0)
			})
		})

		Convey("When the GPA exactly equals the minimum", func() {
			student := model.Student{GPA: 3.5}
			internship := model.Internship{MinGPA: 3.5}

			Convey("Then the GPA signal is full", func() {
				So(matcher.Match(student, internship).GPAMatch, ShouldEqual, 1.0)
			})
		})

		Convey("When location matching crosses case", func() {
			student := model.Student{PreferredLocations: []string{"san francisco"}}
			internship := model.Internship{Location: "San Francisco"}

			Convey("Then the comparison stays exact-string", func() {
				So(matcher.Match(student, internship).LocationMatch, ShouldEqual, 0.0)
			})
		})

		Convey("For any pair of entities", func() {
			student := model.Student{
				Skills:              []string{"Go", "SQL"},
				GPA:                 4.0,
				PreferredLocations:  []string{"Remote"},
				PreferredIndustries: []string{"Technology"},
				ExperienceLevel:     "advanced",
			}
			internship := model.Internship{
				RequiredSkills:     []string{"Go", "SQL"},
				Location:           "Remote",
				Industry:           "Technology",
				MinGPA:             0,
				ExperienceRequired: "beginner",
			}

			Convey("Then the score stays within the unit interval", func() {
				score := matcher.Score(student, internship)
				So(score, ShouldBeGreaterThanOrEqualTo, 0.0)
				So(score, ShouldBeLessThanOrEqualTo, 1.0)
			})
		})
	})
}

func TestMatcher_Weights(t *testing.T) {
	Convey("Given custom weight configuration", t, func() {
		Convey("When the weights are valid and sum to one", func() {
			w := scoring.Weights{Skill: 1.0}
			matcher := scoring.NewMatcher(scoring.WithWeights(w))

			Convey("Then the override takes effect", func() {
				So(matcher.Weights(), ShouldResemble, w)
			})

			Convey("Then the score reduces to the skill signal", func() {
				student := model.Student{Skills: []string{"Python"}}
				internship := model.Internship{RequiredSkills: []string{"Python"}}
				So(matcher.Score(student, internship), ShouldAlmostEqual, 1.0, tolerance)
			})
		})

		Convey("When the weights do not sum to one", func() {
			matcher := scoring.NewMatcher(scoring.WithWeights(scoring.Weights{Skill: 0.5, GPA: 0.2}))

			Convey("Then the defaults are kept", func() {
				So(matcher.Weights(), ShouldResemble, scoring.DefaultWeights())
			})
		})

		Convey("When a weight is negative", func() {
			matcher := scoring.NewMatcher(scoring.WithWeights(scoring.Weights{Skill: 1.2, GPA: -0.2}))

			Convey("Then the defaults are kept", func() {
				So(matcher.Weights(), ShouldResemble, scoring.DefaultWeights())
			})
		})
	})
}

func TestExperienceOrdinal(t *testing.T) {
	Convey("Given experience labels", t, func() {
		Convey("Then known levels order beginner < intermediate < advanced", func() {
			So(scoring.ExperienceOrdinal("beginner"), ShouldEqual, 1)
			So(scoring.ExperienceOrdinal("intermediate"), ShouldEqual, 2)
			So(scoring.ExperienceOrdinal("advanced"), ShouldEqual, 3)
		})

		Convey("Then lookup is case-insensitive", func() {
			So(scoring.ExperienceOrdinal("Advanced"), ShouldEqual, 3)
			So(scoring.ExperienceOrdinal("INTERMEDIATE"), ShouldEqual, 2)
		})

		Convey("Then unknown labels rank as beginner", func() {
			So(scoring.ExperienceOrdinal("expert"), ShouldEqual, 1)
			So(scoring.ExperienceOrdinal(""), ShouldEqual, 1)
		})
	})
}
