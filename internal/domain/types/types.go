// Package types contains the read shapes returned by API queries.
package types

// MatchResult is an internship joined with its match score for one
// student. Computed on demand, never persisted.
type MatchResult struct {
	InternshipID       string   `json:"internship_id"`
	CompanyName        string   `json:"company_name"`
	RoleTitle          string   `json:"role_title"`
	RequiredSkills     []string `json:"required_skills"`
	Location           string   `json:"location"`
	Industry           string   `json:"industry"`
	DurationMonths     int      `json:"duration_months"`
	MinGPA             float64  `json:"min_gpa"`
	ExperienceRequired string   `json:"experience_required"`
	Description        string   `json:"description"`
	MatchScore         float64  `json:"match_score"`
}

// SkillCount is one entry of the skill-demand ranking.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// Summary is the catalog-wide analytics snapshot.
type Summary struct {
	TotalStudents     int          `json:"total_students"`
	TotalInternships  int          `json:"total_internships"`
	TotalInteractions int          `json:"total_interactions"`
	TopSkillsInDemand []SkillCount `json:"top_skills_in_demand"`
}
