package service_test

import (
	"context"
	"os"
	"testing"
	"time"

	service "github.com/okian/berth/internal/app"
	"github.com/okian/berth/internal/domain/model"
	"github.com/okian/berth/internal/domain/scoring"
	"github.com/okian/berth/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func startedService(t *testing.T, opts ...service.Option) *service.Service {
	t.Helper()
	svc := service.New(opts...)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	t.Cleanup(svc.Stop)
	return svc
}

func seedSampleData(ctx context.Context, svc *service.Service) {
	students := []model.Student{
		{
			ID: "s1", Name: "Alice Johnson",
			Skills:              []string{"Python", "Machine Learning", "Data Analysis"},
			GPA:                 3.8,
			PreferredLocations:  []string{"New York", "San Francisco"},
			PreferredIndustries: []string{"Technology"},
			ExperienceLevel:     "intermediate",
		},
		{
			ID: "s2", Name: "Bob Smith",
			Skills:              []string{"Java", "Spring Boot", "SQL"},
			GPA:                 3.6,
			PreferredLocations:  []string{"Boston", "Austin"},
			PreferredIndustries: []string{"Technology", "Finance"},
			ExperienceLevel:     "beginner",
		},
	}
	internships := []model.Internship{
		{
			ID: "i1", CompanyName: "TechCorp", RoleTitle: "Data Science Intern",
			RequiredSkills: []string{"Python", "Machine Learning"},
			Location:       "San Francisco", Industry: "Technology",
			DurationMonths: 3, MinGPA: 3.5, ExperienceRequired: "intermediate",
		},
		{
			ID: "i2", CompanyName: "FinanceInc", RoleTitle: "Software Developer Intern",
			RequiredSkills: []string{"Java", "SQL"},
			Location:       "New York", Industry: "Finance",
			DurationMonths: 4, MinGPA: 3.4, ExperienceRequired: "beginner",
		},
	}
	for _, st := range students {
		_ = svc.AddStudent(ctx, st)
	}
	for _, in := range internships {
		_ = svc.AddInternship(ctx, in)
	}
}

func waitForInteractions(svc *service.Service, want int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		summary, err := svc.Analytics(context.Background())
		if err == nil && summary.TotalInteractions >= want {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return false
}

func TestService_Lifecycle(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service with default configuration", t, func() {
		svc := service.New(service.WithWorkerCount(2), service.WithQueueSize(100))

		Convey("When started twice", func() {
			So(svc.Start(ctx), ShouldBeNil)
			So(svc.Start(ctx), ShouldBeNil)

			Convey("Then the second start is a no-op and stats report started", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldBeTrue)
				So(stats["store"], ShouldEqual, "memory")
				So(stats["workerCount"], ShouldEqual, 2)
			})

			svc.Stop()
		})

		Convey("When stopped twice", func() {
			So(svc.Start(ctx), ShouldBeNil)
			svc.Stop()

			Convey("Then the second stop is a no-op", func() {
				So(svc.Stop, ShouldNotPanic)
			})
		})
	})
}

func TestService_Matching(t *testing.T) {
	ctx := context.Background()

	Convey("Given a started service with sample data", t, func() {
		svc := startedService(t, service.WithWorkerCount(2), service.WithQueueSize(100))
		seedSampleData(ctx, svc)

		Convey("When recommendations are requested for Alice", func() {
			results, err := svc.Recommend(ctx, "s1", 10)

			Convey("Then the data-science internship ranks first", func() {
				So(err, ShouldBeNil)
				So(results, ShouldHaveLength, 2)
				So(results[0].InternshipID, ShouldEqual, "i1")
				So(results[0].MatchScore, ShouldAlmostEqual, 0.40*(2.0/3.0)+0.20+0.20+0.10+0.10, 1e-9)
			})
		})

		Convey("When recommendations are requested for an unknown student", func() {
			results, err := svc.Recommend(ctx, "ghost", 10)

			Convey("Then the list is empty with no error", func() {
				So(err, ShouldBeNil)
				So(results, ShouldBeEmpty)
			})
		})

		Convey("When a match breakdown is requested", func() {
			students, err := svc.Students(ctx)
			So(err, ShouldBeNil)
			internships, err := svc.Internships(ctx)
			So(err, ShouldBeNil)

			b := svc.MatchBreakdown(students[0], internships[0])

			Convey("Then the signals are exposed individually", func() {
				So(b.SkillSimilarity, ShouldAlmostEqual, 2.0/3.0, 1e-9)
				So(b.GPAMatch, ShouldEqual, 1.0)
				So(b.Score, ShouldBeBetweenOrEqual, 0.0, 1.0)
			})
		})
	})

	Convey("Given a service with custom scorer weights", t, func() {
		svc := startedService(t,
			service.WithWorkerCount(1),
			service.WithWeights(scoring.Weights{Skill: 1.0}),
		)
		seedSampleData(ctx, svc)

		Convey("When Bob is matched against the finance internship", func() {
			results, err := svc.Recommend(ctx, "s2", 1)

			Convey("Then only skill overlap drives the score", func() {
				So(err, ShouldBeNil)
				So(results, ShouldHaveLength, 1)
				So(results[0].InternshipID, ShouldEqual, "i2")
				So(results[0].MatchScore, ShouldAlmostEqual, 2.0/3.0, 1e-9)
			})
		})
	})
}

func TestService_Interactions(t *testing.T) {
	ctx := context.Background()

	Convey("Given a started service", t, func() {
		svc := startedService(t, service.WithWorkerCount(2), service.WithQueueSize(100))
		seedSampleData(ctx, svc)

		Convey("When an interaction is recorded", func() {
			ok := svc.RecordInteraction(ctx, model.Interaction{
				StudentID: "s1", InternshipID: "i1", Action: "view",
			})

			Convey("Then it is accepted and eventually counted", func() {
				So(ok, ShouldBeTrue)
				So(waitForInteractions(svc, 1, 2*time.Second), ShouldBeTrue)

				summary, err := svc.Analytics(ctx)
				So(err, ShouldBeNil)
				So(summary.TotalInteractions, ShouldEqual, 1)
				So(summary.TotalStudents, ShouldEqual, 2)
				So(summary.TotalInternships, ShouldEqual, 2)
			})
		})

		Convey("When interactions reference unknown entities", func() {
			ok := svc.RecordInteraction(ctx, model.Interaction{
				StudentID: "ghost", InternshipID: "nowhere", Action: "view",
			})

			Convey("Then the event is still recorded", func() {
				So(ok, ShouldBeTrue)
				So(waitForInteractions(svc, 1, 2*time.Second), ShouldBeTrue)
			})
		})

		Convey("When analytics are requested", func() {
			summary, err := svc.Analytics(ctx)

			Convey("Then counts and skill demand reflect the catalog", func() {
				So(err, ShouldBeNil)
				So(summary.TotalStudents, ShouldEqual, 2)
				So(summary.TotalInternships, ShouldEqual, 2)
				So(summary.TopSkillsInDemand, ShouldNotBeEmpty)
			})
		})
	})
}

func TestService_SQLiteBackend(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service on the SQLite backend", t, func() {
		path := t.TempDir() + "/berth_test.db"
		svc := startedService(t,
			service.WithSQLiteStore(path),
			service.WithWorkerCount(1),
			service.WithQueueSize(100),
		)
		seedSampleData(ctx, svc)

		Convey("When entities are read back", func() {
			students, err := svc.Students(ctx)

			Convey("Then they survived the database round trip", func() {
				So(err, ShouldBeNil)
				So(students, ShouldHaveLength, 2)
				So(students[0].Skills, ShouldResemble, []string{"Python", "Machine Learning", "Data Analysis"})
			})
		})

		Convey("When recommendations are requested", func() {
			results, err := svc.Recommend(ctx, "s1", 10)

			Convey("Then ranking works identically to the memory backend", func() {
				So(err, ShouldBeNil)
				So(results, ShouldHaveLength, 2)
				So(results[0].InternshipID, ShouldEqual, "i1")
			})
		})
	})
}
