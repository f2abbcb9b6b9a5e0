package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/okian/berth/internal/domain/model"
)

// SQLiteStore persists entities in a SQLite database. Lists are stored
// as JSON-encoded text columns. Replacement uses ON CONFLICT DO UPDATE
// so a row keeps its rowid, which preserves catalog insertion order
// across overwrites (listing orders by rowid).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and ensures
// the schema exists.
func NewSQLiteStore(ctx context.Context, path string, opts ...SQLiteOption) (*SQLiteStore, error) {
	cfg := sqliteConfig{maxOpenConns: 1} // SQLite: single writer
	for _, opt := range opts {
		opt(&cfg)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(cfg.maxOpenConns)

	if err := initSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: init schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// sqliteConfig holds SQLiteStore construction options.
type sqliteConfig struct {
	maxOpenConns int
}

// SQLiteOption applies a configuration option to the SQLite store.
type SQLiteOption func(*sqliteConfig)

// WithMaxOpenConns overrides the connection cap. The default of one
// serializes writers as SQLite expects.
func WithMaxOpenConns(n int) SQLiteOption {
	return func(c *sqliteConfig) {
		if n > 0 {
			c.maxOpenConns = n
		}
	}
}

func initSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS students (
			student_id TEXT PRIMARY KEY,
			name TEXT,
			skills TEXT,
			academic_background TEXT,
			gpa REAL,
			preferred_locations TEXT,
			preferred_industries TEXT,
			experience_level TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS internships (
			internship_id TEXT PRIMARY KEY,
			company_name TEXT,
			role_title TEXT,
			required_skills TEXT,
			location TEXT,
			industry TEXT,
			duration_months INTEGER,
			min_gpa REAL,
			experience_required TEXT,
			description TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS interactions (
			student_id TEXT,
			internship_id TEXT,
			action TEXT,
			rating INTEGER,
			timestamp TEXT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// PutStudent adds or replaces a student.
func (s *SQLiteStore) PutStudent(ctx context.Context, st model.Student) error {
	if st.ID == "" {
		return ErrEmptyID
	}
	defer observeUpdate(time.Now())

	skills, err := marshalLabels(st.Skills)
	if err != nil {
		return err
	}
	locations, err := marshalLabels(st.PreferredLocations)
	if err != nil {
		return err
	}
	industries, err := marshalLabels(st.PreferredIndustries)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO students (student_id, name, skills, academic_background, gpa, preferred_locations, preferred_industries, experience_level)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(student_id) DO UPDATE SET
			name = excluded.name,
			skills = excluded.skills,
			academic_background = excluded.academic_background,
			gpa = excluded.gpa,
			preferred_locations = excluded.preferred_locations,
			preferred_industries = excluded.preferred_industries,
			experience_level = excluded.experience_level`,
		st.ID, st.Name, skills, st.AcademicBackground, st.GPA, locations, industries, st.ExperienceLevel,
	)
	if err != nil {
		return fmt.Errorf("sqlite: put student %s: %w", st.ID, err)
	}
	return nil
}

// Student looks up a student by ID.
func (s *SQLiteStore) Student(ctx context.Context, id string) (model.Student, bool, error) {
	defer observeQuery(time.Now())

	row := s.db.QueryRowContext(ctx, `
		SELECT student_id, name, skills, academic_background, gpa, preferred_locations, preferred_industries, experience_level
		FROM students WHERE student_id = ?`, id)

	st, err := scanStudent(row)
	if err == sql.ErrNoRows {
		return model.Student{}, false, nil
	}
	if err != nil {
		return model.Student{}, false, fmt.Errorf("sqlite: get student %s: %w", id, err)
	}
	return st, true, nil
}

// Students lists all students in insertion order.
func (s *SQLiteStore) Students(ctx context.Context) ([]model.Student, error) {
	defer observeQuery(time.Now())

	rows, err := s.db.QueryContext(ctx, `
		SELECT student_id, name, skills, academic_background, gpa, preferred_locations, preferred_industries, experience_level
		FROM students ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list students: %w", err)
	}
	defer rows.Close()

	var out []model.Student
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: scan student: %w", err)
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: list students: %w", err)
	}
	return out, nil
}

// PutInternship adds or replaces an internship.
func (s *SQLiteStore) PutInternship(ctx context.Context, in model.Internship) error {
	if in.ID == "" {
		return ErrEmptyID
	}
	defer observeUpdate(time.Now())

	skills, err := marshalLabels(in.RequiredSkills)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO internships (internship_id, company_name, role_title, required_skills, location, industry, duration_months, min_gpa, experience_required, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(internship_id) DO UPDATE SET
			company_name = excluded.company_name,
			role_title = excluded.role_title,
			required_skills = excluded.required_skills,
			location = excluded.location,
			industry = excluded.industry,
			duration_months = excluded.duration_months,
			min_gpa = excluded.min_gpa,
			experience_required = excluded.experience_required,
			description = excluded.description`,
		in.ID, in.CompanyName, in.RoleTitle, skills, in.Location, in.Industry, in.DurationMonths, in.MinGPA, in.ExperienceRequired, in.Description,
	)
	if err != nil {
		return fmt.Errorf("sqlite: put internship %s: %w", in.ID, err)
	}
	return nil
}

// Internships lists the catalog in insertion order.
func (s *SQLiteStore) Internships(ctx context.Context) ([]model.Internship, error) {
	defer observeQuery(time.Now())

	rows, err := s.db.QueryContext(ctx, `
		SELECT internship_id, company_name, role_title, required_skills, location, industry, duration_months, min_gpa, experience_required, description
		FROM internships ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list internships: %w", err)
	}
	defer rows.Close()

	var out []model.Internship
	for rows.Next() {
		var in model.Internship
		var skills string
		if err := rows.Scan(&in.ID, &in.CompanyName, &in.RoleTitle, &skills, &in.Location, &in.Industry, &in.DurationMonths, &in.MinGPA, &in.ExperienceRequired, &in.Description); err != nil {
			return nil, fmt.Errorf("sqlite: scan internship: %w", err)
		}
		if in.RequiredSkills, err = unmarshalLabels(skills); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: list internships: %w", err)
	}
	return out, nil
}

// AppendInteraction appends an interaction event.
func (s *SQLiteStore) AppendInteraction(ctx context.Context, ev model.Interaction) error {
	defer observeUpdate(time.Now())

	var rating sql.NullInt64
	if ev.Rating != nil {
		rating = sql.NullInt64{Int64: int64(*ev.Rating), Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO interactions (student_id, internship_id, action, rating, timestamp)
		VALUES (?, ?, ?, ?, ?)`,
		ev.StudentID, ev.InternshipID, ev.Action, rating, ev.Timestamp.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("sqlite: append interaction: %w", err)
	}
	return nil
}

// Interactions lists all interaction events in append order.
func (s *SQLiteStore) Interactions(ctx context.Context) ([]model.Interaction, error) {
	defer observeQuery(time.Now())

	rows, err := s.db.QueryContext(ctx, `
		SELECT student_id, internship_id, action, rating, timestamp
		FROM interactions ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list interactions: %w", err)
	}
	defer rows.Close()

	var out []model.Interaction
	for rows.Next() {
		var ev model.Interaction
		var rating sql.NullInt64
		var ts string
		if err := rows.Scan(&ev.StudentID, &ev.InternshipID, &ev.Action, &rating, &ts); err != nil {
			return nil, fmt.Errorf("sqlite: scan interaction: %w", err)
		}
		if rating.Valid {
			r := int(rating.Int64)
			ev.Rating = &r
		}
		if ev.Timestamp, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			return nil, fmt.Errorf("sqlite: parse interaction timestamp: %w", err)
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: list interactions: %w", err)
	}
	return out, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("sqlite: close: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStudent(r rowScanner) (model.Student, error) {
	var st model.Student
	var skills, locations, industries string
	if err := r.Scan(&st.ID, &st.Name, &skills, &st.AcademicBackground, &st.GPA, &locations, &industries, &st.ExperienceLevel); err != nil {
		return model.Student{}, err
	}
	var err error
	if st.Skills, err = unmarshalLabels(skills); err != nil {
		return model.Student{}, err
	}
	if st.PreferredLocations, err = unmarshalLabels(locations); err != nil {
		return model.Student{}, err
	}
	if st.PreferredIndustries, err = unmarshalLabels(industries); err != nil {
		return model.Student{}, err
	}
	return st, nil
}

func marshalLabels(labels []string) (string, error) {
	if labels == nil {
		labels = []string{}
	}
	b, err := json.Marshal(labels)
	if err != nil {
		return "", fmt.Errorf("sqlite: encode labels: %w", err)
	}
	return string(b), nil
}

func unmarshalLabels(encoded string) ([]string, error) {
	var labels []string
	if err := json.Unmarshal([]byte(encoded), &labels); err != nil {
		return nil, fmt.Errorf("sqlite: decode labels: %w", err)
	}
	return labels, nil
}
