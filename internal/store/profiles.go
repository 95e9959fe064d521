package store

import (
	"database/sql"
	"fmt"

	"presentpath/internal/models"
)

func (s *BaseStore) CreateProfile(p *models.Profile) error {
	_, err := s.DB.NamedExec(`
		INSERT INTO profiles (id, first_name, last_name, email, index_number, group_id, semester, role, push_token, password_hash)
		VALUES (:id, :first_name, :last_name, :email, :index_number, :group_id, :semester, :role, :push_token, :password_hash)
	`, p)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (s *BaseStore) GetProfile(id string) (*models.Profile, error) {
	var p models.Profile
	query := s.Converter(`
		SELECT id, first_name, last_name, email, index_number, group_id, semester, role, push_token, password_hash
		FROM profiles
		WHERE id = ?
	`)

	err := s.DB.Get(&p, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

func (s *BaseStore) GetProfileByEmail(email string) (*models.Profile, error) {
	var p models.Profile
	query := s.Converter(`
		SELECT id, first_name, last_name, email, index_number, group_id, semester, role, push_token, password_hash
		FROM profiles
		WHERE LOWER(email) = LOWER(?)
	`)

	err := s.DB.Get(&p, query, email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}
	return &p, nil
}

// UpdateProfile writes the editable fields; email, role and credentials
// are not touched here.
func (s *BaseStore) UpdateProfile(p *models.Profile) error {
	_, err := s.DB.NamedExec(`
		UPDATE profiles SET
			first_name = :first_name,
			last_name = :last_name,
			index_number = :index_number,
			group_id = :group_id,
			semester = :semester
		WHERE id = :id
	`, p)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

func (s *BaseStore) ListProfiles(role string) ([]models.Profile, error) {
	var profiles []models.Profile
	query := s.Converter(`
		SELECT id, first_name, last_name, email, index_number, group_id, semester, role, push_token, password_hash
		FROM profiles
		WHERE role = ?
		ORDER BY last_name, first_name ASC
	`)

	err := s.DB.Select(&profiles, query, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// SearchStudents matches first name, last name or index number,
// case-insensitively, substring semantics.
func (s *BaseStore) SearchStudents(query string) ([]models.Profile, error) {
	var profiles []models.Profile
	q := s.Converter(`
		SELECT id, first_name, last_name, email, index_number, group_id, semester, role, push_token, password_hash
		FROM profiles
		WHERE role = 'student'
		AND (
			LOWER(first_name) LIKE '%' || LOWER(?) || '%' ESCAPE '\'
			OR LOWER(last_name) LIKE '%' || LOWER(?) || '%' ESCAPE '\'
			OR LOWER(index_number) LIKE '%' || LOWER(?) || '%' ESCAPE '\'
		)
		ORDER BY last_name, first_name ASC
	`)

	term := EscapeLike(query)
	err := s.DB.Select(&profiles, q, term, term, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search students: %w", err)
	}
	return profiles, nil
}

func (s *BaseStore) SetPushToken(id, token string) error {
	query := s.Converter(`UPDATE profiles SET push_token = ? WHERE id = ?`)
	if _, err := s.DB.Exec(query, token, id); err != nil {
		return fmt.Errorf("failed to set push token: %w", err)
	}
	return nil
}
