package seeder

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"

	"github.com/okian/berth/internal/domain/model"
	"github.com/okian/berth/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	minGPAFloor        = 2.5
	gpaRange           = 1.5
	minSkillsPerEntity = 1
	maxSkillsPerEntity = 4
	maxDurationMonths  = 6
	maxRating          = 5
	ratedActionChance  = 3 // one in N interactions carries a rating
)

// Vocabulary for generated entities.
var (
	skillPool = []string{
		"Python", "Java", "Go", "SQL", "Machine Learning", "Data Analysis",
		"Spring Boot", "React", "Kubernetes", "Marketing", "Social Media",
		"Analytics", "UX Design", "Project Management", "C++", "Rust",
	}
	locationPool = []string{
		"New York", "San Francisco", "Boston", "Austin", "Chicago",
		"Denver", "Seattle", "Atlanta", "Remote",
	}
	industryPool = []string{
		"Technology", "Finance", "Marketing", "Consulting", "Healthcare",
		"Manufacturing", "Media",
	}
	companyPool = []string{
		"TechCorp", "FinanceInc", "MarketingPro", "DataWorks", "CloudNine",
		"GreenField Labs", "Northwind", "Acme Analytics",
	}
	rolePool = []string{
		"Data Science Intern", "Software Developer Intern", "Digital Marketing Intern",
		"Backend Engineering Intern", "Product Analytics Intern", "QA Intern",
	}
	majorPool = []string{
		"Computer Science", "Software Engineering", "Business Administration",
		"Data Science", "Information Systems", "Economics",
	}
	experiencePool = []string{"beginner", "intermediate", "advanced"}
	actionPool     = []string{"view", "apply", "save"}
	firstNames     = []string{"Alice", "Bob", "Carol", "Dmitri", "Elena", "Farid", "Grace", "Hiro", "Ines", "Jonas"}
	lastNames      = []string{"Johnson", "Smith", "Davis", "Ivanov", "Garcia", "Rahimi", "Lee", "Tanaka", "Moreau", "Berg"}
)

// randomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func randomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// randomInt returns a random int in [0, n).
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

func pick(pool []string) string {
	return pool[randomInt(len(pool))]
}

// pickSet returns between min and max distinct entries from the pool,
// preserving the pool's casing.
func pickSet(pool []string, min, max int) []string {
	count := min + randomInt(max-min+1)
	seen := make(map[string]struct{}, count)
	out := make([]string, 0, count)
	for len(out) < count {
		s := pick(pool)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// generateStudents creates random students with unique ids.
func generateStudents(ctx context.Context, count int) []model.Student {
	logger.Get().Info(ctx, "generating students", logger.Int("count", count))

	students := make([]model.Student, count)
	for i := range students {
		students[i] = model.Student{
			ID:                  uuid.New().String(),
			Name:                pick(firstNames) + " " + pick(lastNames),
			Skills:              pickSet(skillPool, minSkillsPerEntity, maxSkillsPerEntity),
			AcademicBackground:  pick(majorPool),
			GPA:                 minGPAFloor + randomFloat()*gpaRange,
			PreferredLocations:  pickSet(locationPool, 1, 3),
			PreferredIndustries: pickSet(industryPool, 1, 2),
			ExperienceLevel:     pick(experiencePool),
		}
	}
	return students
}

// generateInternships creates random internships with unique ids.
func generateInternships(ctx context.Context, count int) []model.Internship {
	logger.Get().Info(ctx, "generating internships", logger.Int("count", count))

	internships := make([]model.Internship, count)
	for i := range internships {
		internships[i] = model.Internship{
			ID:                 uuid.New().String(),
			CompanyName:        pick(companyPool),
			RoleTitle:          pick(rolePool),
			RequiredSkills:     pickSet(skillPool, minSkillsPerEntity, maxSkillsPerEntity),
			Location:           pick(locationPool),
			Industry:           pick(industryPool),
			DurationMonths:     1 + randomInt(maxDurationMonths),
			MinGPA:             minGPAFloor + randomFloat()*gpaRange,
			ExperienceRequired: pick(experiencePool),
		}
	}
	return internships
}

// generateInteractions pairs random students with random internships.
// Roughly one in ratedActionChance interactions carries a rating.
func generateInteractions(ctx context.Context, students []model.Student, internships []model.Internship, count int) []model.Interaction {
	logger.Get().Info(ctx, "generating interactions", logger.Int("count", count))

	interactions := make([]model.Interaction, count)
	for i := range interactions {
		ev := model.Interaction{
			StudentID:    students[randomInt(len(students))].ID,
			InternshipID: internships[randomInt(len(internships))].ID,
			Action:       pick(actionPool),
		}
		if randomInt(ratedActionChance) == 0 {
			rating := 1 + randomInt(maxRating)
			ev.Action = "rate"
			ev.Rating = &rating
		}
		interactions[i] = ev
	}
	return interactions
}
