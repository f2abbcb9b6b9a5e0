package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/berth/internal/adapters/repository"
	"github.com/okian/berth/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func openTestStore(t *testing.T, ctx context.Context) *repository.SQLiteStore {
	t.Helper()
	store, err := repository.NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "berth_test.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_Students(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty SQLite store", t, func() {
		store := openTestStore(t, ctx)

		Convey("When a student is stored and read back", func() {
			in := model.Student{
				ID:                  "s1",
				Name:                "Alice Johnson",
				Skills:              []string{"Python", "Machine Learning"},
				AcademicBackground:  "Computer Science",
				GPA:                 3.8,
				PreferredLocations:  []string{"New York", "San Francisco"},
				PreferredIndustries: []string{"Technology"},
				ExperienceLevel:     "intermediate",
			}
			So(store.PutStudent(ctx, in), ShouldBeNil)

			Convey("Then every field round-trips", func() {
				out, found, err := store.Student(ctx, "s1")
				So(err, ShouldBeNil)
				So(found, ShouldBeTrue)
				So(out, ShouldResemble, in)
			})
		})

		Convey("When a student with empty label lists is stored", func() {
			So(store.PutStudent(ctx, model.Student{ID: "s1", Name: "Minimal"}), ShouldBeNil)

			Convey("Then reading it back does not fail", func() {
				out, found, err := store.Student(ctx, "s1")
				So(err, ShouldBeNil)
				So(found, ShouldBeTrue)
				So(out.Skills, ShouldBeEmpty)
			})
		})

		Convey("When an unknown id is looked up", func() {
			_, found, err := store.Student(ctx, "ghost")

			Convey("Then the store reports not found without error", func() {
				So(err, ShouldBeNil)
				So(found, ShouldBeFalse)
			})
		})

		Convey("When a student is overwritten", func() {
			So(store.PutStudent(ctx, model.Student{ID: "s1", Name: "Alice Johnson"}), ShouldBeNil)
			So(store.PutStudent(ctx, model.Student{ID: "s2", Name: "Bob Smith"}), ShouldBeNil)
			So(store.PutStudent(ctx, model.Student{ID: "s1", Name: "Alice J.", GPA: 3.9}), ShouldBeNil)

			Convey("Then it keeps its list position", func() {
				students, err := store.Students(ctx)
				So(err, ShouldBeNil)
				So(students, ShouldHaveLength, 2)
				So(students[0].ID, ShouldEqual, "s1")
				So(students[0].Name, ShouldEqual, "Alice J.")
				So(students[1].ID, ShouldEqual, "s2")
			})
		})

		Convey("When a student has an empty id", func() {
			Convey("Then the write is rejected", func() {
				So(store.PutStudent(ctx, model.Student{Name: "Nameless"}), ShouldEqual, repository.ErrEmptyID)
			})
		})
	})
}

func TestSQLiteStore_Internships(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty SQLite store", t, func() {
		store := openTestStore(t, ctx)

		Convey("When internships are stored", func() {
			first := model.Internship{
				ID:                 "i1",
				CompanyName:        "TechCorp",
				RoleTitle:          "Data Science Intern",
				RequiredSkills:     []string{"Python", "Machine Learning"},
				Location:           "San Francisco",
				Industry:           "Technology",
				DurationMonths:     3,
				MinGPA:             3.5,
				ExperienceRequired: "intermediate",
				Description:        "ML pipelines",
			}
			So(store.PutInternship(ctx, first), ShouldBeNil)
			So(store.PutInternship(ctx, model.Internship{ID: "i2", CompanyName: "FinanceInc"}), ShouldBeNil)

			Convey("Then listing preserves insertion order and fields", func() {
				internships, err := store.Internships(ctx)
				So(err, ShouldBeNil)
				So(internships, ShouldHaveLength, 2)
				So(internships[0], ShouldResemble, first)
				So(internships[1].ID, ShouldEqual, "i2")
			})

			Convey("And the first is overwritten", func() {
				first.DurationMonths = 6
				So(store.PutInternship(ctx, first), ShouldBeNil)

				internships, err := store.Internships(ctx)
				So(err, ShouldBeNil)
				So(internships, ShouldHaveLength, 2)
				So(internships[0].DurationMonths, ShouldEqual, 6)
			})
		})
	})
}

func TestSQLiteStore_Interactions(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty SQLite store", t, func() {
		store := openTestStore(t, ctx)

		Convey("When interactions are appended", func() {
			rating := 4
			now := time.Now().UTC().Truncate(time.Millisecond)
			So(store.AppendInteraction(ctx, model.Interaction{StudentID: "s1", InternshipID: "i1", Action: "view", Timestamp: now}), ShouldBeNil)
			So(store.AppendInteraction(ctx, model.Interaction{StudentID: "s1", InternshipID: "i1", Action: "rate", Rating: &rating, Timestamp: now}), ShouldBeNil)
			So(store.AppendInteraction(ctx, model.Interaction{StudentID: "ghost", InternshipID: "nowhere", Action: "view", Timestamp: now}), ShouldBeNil)

			Convey("Then events read back in append order", func() {
				events, err := store.Interactions(ctx)
				So(err, ShouldBeNil)
				So(events, ShouldHaveLength, 3)
				So(events[0].Action, ShouldEqual, "view")
				So(events[1].Rating, ShouldNotBeNil)
				So(*events[1].Rating, ShouldEqual, 4)
				So(events[2].StudentID, ShouldEqual, "ghost")
			})

			Convey("Then timestamps round-trip to the nanosecond format", func() {
				events, err := store.Interactions(ctx)
				So(err, ShouldBeNil)
				So(events[0].Timestamp.Equal(now), ShouldBeTrue)
			})

			Convey("Then unrated events come back with a nil rating", func() {
				events, err := store.Interactions(ctx)
				So(err, ShouldBeNil)
				So(events[0].Rating, ShouldBeNil)
			})
		})
	})
}
