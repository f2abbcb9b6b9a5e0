package ranking_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/berth/internal/domain/model"
	"github.com/okian/berth/internal/domain/ranking"
	"github.com/okian/berth/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeSource serves a fixed student set and catalog.
type fakeSource struct {
	students    map[string]model.Student
	internships []model.Internship
	err         error
}

func (f *fakeSource) Student(_ context.Context, id string) (model.Student, bool, error) {
	if f.err != nil {
		return model.Student{}, false, f.err
	}
	st, ok := f.students[id]
	return st, ok, nil
}

func (f *fakeSource) Internships(_ context.Context) ([]model.Internship, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.internships, nil
}

func TestRanker_Rank(t *testing.T) {
	Convey("Given a ranker over a small catalog", t, func() {
		source := &fakeSource{
			students: map[string]model.Student{
				"s1": {
					ID:                  "s1",
					Skills:              []string{"Python", "Machine Learning", "Data Analysis"},
					GPA:                 3.8,
					PreferredLocations:  []string{"New York", "San Francisco"},
					PreferredIndustries: []string{"Technology"},
					ExperienceLevel:     "intermediate",
				},
			},
			internships: []model.Internship{
				{
					ID: "i1", CompanyName: "TechCorp", RoleTitle: "Data Science Intern",
					RequiredSkills: []string{"Python", "Machine Learning"},
					Location:       "San Francisco", Industry: "Technology",
					DurationMonths: 3, MinGPA: 3.5, ExperienceRequired: "intermediate",
				},
				{
					ID: "i2", CompanyName: "FinanceInc", RoleTitle: "Software Developer Intern",
					RequiredSkills: []string{"Java", "SQL"},
					Location:       "Boston", Industry: "Finance",
					DurationMonths: 4, MinGPA: 3.4, ExperienceRequired: "beginner",
				},
				{
					ID: "i3", CompanyName: "MarketingPro", RoleTitle: "Digital Marketing Intern",
					RequiredSkills: []string{"Marketing", "Analytics"},
					Location:       "Chicago", Industry: "Marketing",
					DurationMonths: 2, MinGPA: 4.0, ExperienceRequired: "advanced",
				},
			},
		}
		ranker := ranking.New(source, scoring.NewMatcher())

		Convey("When ranking a known student", func() {
			results, err := ranker.Rank(context.Background(), "s1", 10)

			Convey("Then every internship is scored", func() {
				So(err, ShouldBeNil)
				So(results, ShouldHaveLength, 3)
			})

			Convey("Then results are ordered by score descending", func() {
				So(results[0].InternshipID, ShouldEqual, "i1")
				for i := 1; i < len(results); i++ {
					So(results[i-1].MatchScore, ShouldBeGreaterThanOrEqualTo, results[i].MatchScore)
				}
			})

			Convey("Then each result carries the internship fields", func() {
				So(results[0].CompanyName, ShouldEqual, "TechCorp")
				So(results[0].RoleTitle, ShouldEqual, "Data Science Intern")
				So(results[0].DurationMonths, ShouldEqual, 3)
			})
		})

		Convey("When topN is smaller than the catalog", func() {
			results, err := ranker.Rank(context.Background(), "s1", 2)

			Convey("Then the list is truncated after sorting", func() {
				So(err, ShouldBeNil)
				So(results, ShouldHaveLength, 2)
				So(results[0].InternshipID, ShouldEqual, "i1")
			})
		})

		Convey("When topN exceeds the catalog size", func() {
			results, err := ranker.Rank(context.Background(), "s1", 100)

			Convey("Then every internship is returned once", func() {
				So(err, ShouldBeNil)
				So(results, ShouldHaveLength, 3)
			})
		})

		Convey("When topN is zero or negative", func() {
			Convey("Then the result is empty with no error", func() {
				for _, n := range []int{0, -1} {
					results, err := ranker.Rank(context.Background(), "s1", n)
					So(err, ShouldBeNil)
					So(results, ShouldBeEmpty)
				}
			})
		})

		Convey("When the student is unknown", func() {
			results, err := ranker.Rank(context.Background(), "ghost", 10)

			Convey("Then the result is empty with no error", func() {
				So(err, ShouldBeNil)
				So(results, ShouldNotBeNil)
				So(results, ShouldBeEmpty)
			})
		})

		Convey("When the catalog is empty", func() {
			source.internships = nil
			results, err := ranker.Rank(context.Background(), "s1", 10)

			Convey("Then the result is empty with no error", func() {
				So(err, ShouldBeNil)
				So(results, ShouldBeEmpty)
			})
		})

		Convey("When the source fails", func() {
			source.err = errors.New("store offline")
			results, err := ranker.Rank(context.Background(), "s1", 10)

			Convey("Then the error propagates", func() {
				So(err, ShouldNotBeNil)
				So(results, ShouldBeNil)
			})
		})

		Convey("When scores tie", func() {
			// Two identical internships under different ids score
			// identically for any student.
			dup := source.internships[1]
			dup.ID = "i2b"
			source.internships = append(source.internships[:2], dup)
			ranker = ranking.New(source, scoring.NewMatcher(), ranking.WithParallelism(1))

			results, err := ranker.Rank(context.Background(), "s1", 10)

			Convey("Then catalog insertion order breaks the tie", func() {
				So(err, ShouldBeNil)
				So(results, ShouldHaveLength, 3)
				So(results[1].InternshipID, ShouldEqual, "i2")
				So(results[2].InternshipID, ShouldEqual, "i2b")
			})
		})

		Convey("When ranking repeatedly with unchanged inputs", func() {
			first, err1 := ranker.Rank(context.Background(), "s1", 10)
			second, err2 := ranker.Rank(context.Background(), "s1", 10)

			Convey("Then the output is identical", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(second, ShouldResemble, first)
			})
		})
	})
}
