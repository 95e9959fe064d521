package store

import (
	"database/sql"
	"fmt"

	"presentpath/internal/models"
)

func (s *BaseStore) CreateMark(m *models.Mark) error {
	_, err := s.DB.NamedExec(`
		INSERT INTO marks (student_no, year, semester, presentation_title,
			content_quality, presentation_skills, slide_design,
			engagement_and_interaction, time_management)
		VALUES (:student_no, :year, :semester, :presentation_title,
			:content_quality, :presentation_skills, :slide_design,
			:engagement_and_interaction, :time_management)
	`, m)
	if err != nil {
		return fmt.Errorf("failed to create mark: %w", err)
	}
	return nil
}

func (s *BaseStore) GetMark(studentNo, presentationTitle string) (*models.Mark, error) {
	var m models.Mark
	query := s.Converter(`
		SELECT student_no, year, semester, presentation_title,
			content_quality, presentation_skills, slide_design,
			engagement_and_interaction, time_management
		FROM marks
		WHERE student_no = ? AND presentation_title = ?
	`)

	err := s.DB.Get(&m, query, studentNo, presentationTitle)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mark: %w", err)
	}
	return &m, nil
}

func (s *BaseStore) UpdateMark(m *models.Mark) error {
	_, err := s.DB.NamedExec(`
		UPDATE marks SET
			year = :year,
			semester = :semester,
			content_quality = :content_quality,
			presentation_skills = :presentation_skills,
			slide_design = :slide_design,
			engagement_and_interaction = :engagement_and_interaction,
			time_management = :time_management
		WHERE student_no = :student_no AND presentation_title = :presentation_title
	`, m)
	if err != nil {
		return fmt.Errorf("failed to update mark: %w", err)
	}
	return nil
}

func (s *BaseStore) DeleteMark(studentNo, presentationTitle string) error {
	query := s.Converter(`DELETE FROM marks WHERE student_no = ? AND presentation_title = ?`)
	if _, err := s.DB.Exec(query, studentNo, presentationTitle); err != nil {
		return fmt.Errorf("failed to delete mark: %w", err)
	}
	return nil
}

// ListMarks returns all marks, optionally restricted to one year.
func (s *BaseStore) ListMarks(year string) ([]models.Mark, error) {
	var marks []models.Mark
	var err error

	if year == "" {
		err = s.DB.Select(&marks, `
			SELECT student_no, year, semester, presentation_title,
				content_quality, presentation_skills, slide_design,
				engagement_and_interaction, time_management
			FROM marks
			ORDER BY year, student_no, presentation_title ASC
		`)
	} else {
		query := s.Converter(`
			SELECT student_no, year, semester, presentation_title,
				content_quality, presentation_skills, slide_design,
				engagement_and_interaction, time_management
			FROM marks
			WHERE year = ?
			ORDER BY student_no, presentation_title ASC
		`)
		err = s.DB.Select(&marks, query, year)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list marks: %w", err)
	}
	return marks, nil
}

func (s *BaseStore) ListMarksByStudent(studentNo string) ([]models.Mark, error) {
	var marks []models.Mark
	query := s.Converter(`
		SELECT student_no, year, semester, presentation_title,
			content_quality, presentation_skills, slide_design,
			engagement_and_interaction, time_management
		FROM marks
		WHERE student_no = ?
		ORDER BY presentation_title ASC
	`)

	err := s.DB.Select(&marks, query, studentNo)
	if err != nil {
		return nil, fmt.Errorf("failed to list marks for student: %w", err)
	}
	return marks, nil
}
