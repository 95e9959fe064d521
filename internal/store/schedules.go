package store

import (
	"database/sql"
	"fmt"

	"presentpath/internal/models"
)

func (s *BaseStore) CreateSchedule(sched *models.Schedule) error {
	_, err := s.DB.NamedExec(`
		INSERT INTO schedules (id, title, group_id, semester, date, time, venue, examiner_push_token, created_at)
		VALUES (:id, :title, :group_id, :semester, :date, :time, :venue, :examiner_push_token, :created_at)
	`, sched)
	if err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	return nil
}

func (s *BaseStore) GetSchedule(id string) (*models.Schedule, error) {
	var sched models.Schedule
	query := s.Converter(`
		SELECT id, title, group_id, semester, date, time, venue, examiner_push_token, created_at
		FROM schedules
		WHERE id = ?
	`)

	err := s.DB.Get(&sched, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return &sched, nil
}

// UpdateSchedule writes the full record; last writer wins.
func (s *BaseStore) UpdateSchedule(sched *models.Schedule) error {
	_, err := s.DB.NamedExec(`
		UPDATE schedules SET
			title = :title,
			group_id = :group_id,
			semester = :semester,
			date = :date,
			time = :time,
			venue = :venue,
			examiner_push_token = :examiner_push_token
		WHERE id = :id
	`, sched)
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	return nil
}

func (s *BaseStore) DeleteSchedule(id string) error {
	query := s.Converter(`DELETE FROM schedules WHERE id = ?`)
	if _, err := s.DB.Exec(query, id); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}

func (s *BaseStore) ListSchedules() ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := s.DB.Select(&schedules, `
		SELECT id, title, group_id, semester, date, time, venue, examiner_push_token, created_at
		FROM schedules
		ORDER BY date, time ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return schedules, nil
}

func (s *BaseStore) SearchSchedules(query string) ([]models.Schedule, error) {
	var schedules []models.Schedule
	q := s.Converter(`
		SELECT id, title, group_id, semester, date, time, venue, examiner_push_token, created_at
		FROM schedules
		WHERE LOWER(title) LIKE '%' || LOWER(?) || '%' ESCAPE '\'
		ORDER BY date, time ASC
	`)

	err := s.DB.Select(&schedules, q, EscapeLike(query))
	if err != nil {
		return nil, fmt.Errorf("failed to search schedules: %w", err)
	}
	return schedules, nil
}

func (s *BaseStore) CreateCompleted(c *models.CompletedPresentation) error {
	_, err := s.DB.NamedExec(`
		INSERT INTO completed_presentations (id, title, group_id, semester, date, time, venue, status, completed_at)
		VALUES (:id, :title, :group_id, :semester, :date, :time, :venue, :status, :completed_at)
	`, c)
	if err != nil {
		return fmt.Errorf("failed to create completed presentation: %w", err)
	}
	return nil
}

func (s *BaseStore) GetCompleted(id string) (*models.CompletedPresentation, error) {
	var c models.CompletedPresentation
	query := s.Converter(`
		SELECT id, title, group_id, semester, date, time, venue, status, completed_at
		FROM completed_presentations
		WHERE id = ?
	`)

	err := s.DB.Get(&c, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get completed presentation: %w", err)
	}
	return &c, nil
}

func (s *BaseStore) DeleteCompleted(id string) error {
	query := s.Converter(`DELETE FROM completed_presentations WHERE id = ?`)
	if _, err := s.DB.Exec(query, id); err != nil {
		return fmt.Errorf("failed to delete completed presentation: %w", err)
	}
	return nil
}

func (s *BaseStore) ListCompleted() ([]models.CompletedPresentation, error) {
	var completed []models.CompletedPresentation
	err := s.DB.Select(&completed, `
		SELECT id, title, group_id, semester, date, time, venue, status, completed_at
		FROM completed_presentations
		ORDER BY completed_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed presentations: %w", err)
	}
	return completed, nil
}
