// Package model contains domain entities passed between layers.
package model

import "time"

// Student is a candidate profile. Entities are immutable once stored;
// re-adding the same ID replaces the whole record.
type Student struct {
	ID                  string   `json:"student_id"`
	Name                string   `json:"name"`
	Skills              []string `json:"skills"`
	AcademicBackground  string   `json:"academic_background"`
	GPA                 float64  `json:"gpa"`
	PreferredLocations  []string `json:"preferred_locations"`
	PreferredIndustries []string `json:"preferred_industries"`
	ExperienceLevel     string   `json:"experience_level"`
}

// Internship is an opportunity offered by an organization.
type Internship struct {
	ID                 string   `json:"internship_id"`
	CompanyName        string   `json:"company_name"`
	RoleTitle          string   `json:"role_title"`
	RequiredSkills     []string `json:"required_skills"`
	Location           string   `json:"location"`
	Industry           string   `json:"industry"`
	DurationMonths     int      `json:"duration_months"`
	MinGPA             float64  `json:"min_gpa"`
	ExperienceRequired string   `json:"experience_required"`
	Description        string   `json:"description"`
}

// Interaction records a student action on an internship, e.g. "view",
// "apply" or "rate". Append-only: no identifier, no uniqueness, and the
// referenced IDs are not checked against existing entities.
type Interaction struct {
	StudentID    string    `json:"student_id"`
	InternshipID string    `json:"internship_id"`
	Action       string    `json:"action"`
	Rating       *int      `json:"rating,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
