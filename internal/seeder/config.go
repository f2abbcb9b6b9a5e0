package seeder

import (
	"time"

	"github.com/okian/berth/internal/domain/model"
)

// Config holds configuration for the seeding run.
type Config struct {
	BaseURL      string        // Base URL of the service
	Students     int           // Number of extra random students to generate
	Internships  int           // Number of extra random internships to generate
	Interactions int           // Number of random interactions to submit
	TopN         int           // Number of recommendations to fetch per student
	Workers      int           // Number of concurrent submission workers
	Timeout      time.Duration // HTTP request timeout
	SamplesOnly  bool          // Seed only the fixed sample data
	Verbose      bool          // Enable verbose logging
}

// Stats holds seeding statistics.
type Stats struct {
	StudentsSubmitted     int64
	InternshipsSubmitted  int64
	InteractionsSubmitted int64
	InteractionsDropped   int64
	Failed                int64
	StartTime             time.Time
	EndTime               time.Time
	Duration              time.Duration
}

// sampleStudents is the fixed demo cohort seeded before any random data.
var sampleStudents = []model.Student{
	{
		ID:                  "s1",
		Name:                "Alice Johnson",
		Skills:              []string{"Python", "Machine Learning", "Data Analysis"},
		AcademicBackground:  "Computer Science",
		GPA:                 3.8,
		PreferredLocations:  []string{"New York", "San Francisco"},
		PreferredIndustries: []string{"Technology"},
		ExperienceLevel:     "intermediate",
	},
	{
		ID:                  "s2",
		Name:                "Bob Smith",
		Skills:              []string{"Java", "Spring Boot", "SQL"},
		AcademicBackground:  "Software Engineering",
		GPA:                 3.6,
		PreferredLocations:  []string{"Boston", "Austin"},
		PreferredIndustries: []string{"Technology", "Finance"},
		ExperienceLevel:     "beginner",
	},
	{
		ID:                  "s3",
		Name:                "Carol Davis",
		Skills:              []string{"Marketing", "Social Media", "Analytics"},
		AcademicBackground:  "Business Administration",
		GPA:                 3.7,
		PreferredLocations:  []string{"Chicago", "Denver"},
		PreferredIndustries: []string{"Marketing", "Consulting"},
		ExperienceLevel:     "intermediate",
	},
}

// sampleInternships is the fixed demo catalog.
var sampleInternships = []model.Internship{
	{
		ID:                 "i1",
		CompanyName:        "TechCorp",
		RoleTitle:          "Data Science Intern",
		RequiredSkills:     []string{"Python", "Machine Learning"},
		Location:           "San Francisco",
		Industry:           "Technology",
		DurationMonths:     3,
		MinGPA:             3.5,
		ExperienceRequired: "intermediate",
		Description:        "Work on production ML pipelines with the data team.",
	},
	{
		ID:                 "i2",
		CompanyName:        "FinanceInc",
		RoleTitle:          "Software Developer Intern",
		RequiredSkills:     []string{"Java", "SQL"},
		Location:           "New York",
		Industry:           "Finance",
		DurationMonths:     4,
		MinGPA:             3.4,
		ExperienceRequired: "beginner",
		Description:        "Build internal tooling for the trading platform.",
	},
	{
		ID:                 "i3",
		CompanyName:        "MarketingPro",
		RoleTitle:          "Digital Marketing Intern",
		RequiredSkills:     []string{"Marketing", "Analytics"},
		Location:           "Chicago",
		Industry:           "Marketing",
		DurationMonths:     2,
		MinGPA:             3.2,
		ExperienceRequired: "beginner",
		Description:        "Run campaign analytics and social media reporting.",
	},
}
