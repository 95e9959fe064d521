package postgres

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"presentpath/internal/models"
	"presentpath/internal/store"
)

type PostgresStore struct {
	store.BaseStore
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &PostgresStore{BaseStore: store.BaseStore{
		DB: db,
		Converter: func(query string) string {
			out := query
			for i := 1; strings.Contains(out, "?"); i++ {
				out = strings.Replace(out, "?", fmt.Sprintf("$%d", i), 1)
			}
			return out
		},
	}}

	return s, nil
}

func (s *PostgresStore) ApplyMigrations(dir string) error {
	return s.BaseStore.ApplyMigrations(dir, nil)
}

// SearchSchedules uses ILIKE rather than the portable LOWER() LIKE form.
func (s *PostgresStore) SearchSchedules(query string) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := s.DB.Select(&schedules, `
		SELECT id, title, group_id, semester, date, time, venue, examiner_push_token, created_at
		FROM schedules
		WHERE title ILIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY date, time ASC
	`, store.EscapeLike(query))
	if err != nil {
		return nil, fmt.Errorf("failed to search schedules: %w", err)
	}
	return schedules, nil
}

func (s *PostgresStore) SearchStudents(query string) ([]models.Profile, error) {
	var profiles []models.Profile
	err := s.DB.Select(&profiles, `
		SELECT id, first_name, last_name, email, index_number, group_id, semester, role, push_token, password_hash
		FROM profiles
		WHERE role = 'student'
		AND (
			first_name ILIKE '%' || $1 || '%' ESCAPE '\'
			OR last_name ILIKE '%' || $1 || '%' ESCAPE '\'
			OR index_number ILIKE '%' || $1 || '%' ESCAPE '\'
		)
		ORDER BY last_name, first_name ASC
	`, store.EscapeLike(query))
	if err != nil {
		return nil, fmt.Errorf("failed to search students: %w", err)
	}
	return profiles, nil
}
