package store

import (
	"fmt"

	"presentpath/internal/models"
)

func (s *BaseStore) CreateNote(n *models.Note) error {
	_, err := s.DB.NamedExec(`
		INSERT INTO notes (id, owner, title, content, created_at)
		VALUES (:id, :owner, :title, :content, :created_at)
	`, n)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

func (s *BaseStore) ListNotes(owner string) ([]models.Note, error) {
	var notes []models.Note
	query := s.Converter(`
		SELECT id, owner, title, content, created_at
		FROM notes
		WHERE owner = ?
		ORDER BY created_at DESC
	`)

	err := s.DB.Select(&notes, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// DeleteNote is owner-scoped so one user cannot remove another's note.
func (s *BaseStore) DeleteNote(id, owner string) error {
	query := s.Converter(`DELETE FROM notes WHERE id = ? AND owner = ?`)
	if _, err := s.DB.Exec(query, id, owner); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

func (s *BaseStore) CreateRescheduleRequest(r *models.RescheduleRequest) error {
	_, err := s.DB.NamedExec(`
		INSERT INTO reschedule_requests (id, schedule_id, reason, date, time, additional_notes, status)
		VALUES (:id, :schedule_id, :reason, :date, :time, :additional_notes, :status)
	`, r)
	if err != nil {
		return fmt.Errorf("failed to create reschedule request: %w", err)
	}
	return nil
}

func (s *BaseStore) ListRescheduleRequests() ([]models.RescheduleRequest, error) {
	var requests []models.RescheduleRequest
	err := s.DB.Select(&requests, `
		SELECT id, schedule_id, reason, date, time, additional_notes, status
		FROM reschedule_requests
		ORDER BY date, time ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list reschedule requests: %w", err)
	}
	return requests, nil
}

func (s *BaseStore) UpdateRescheduleStatus(id, status string) error {
	query := s.Converter(`UPDATE reschedule_requests SET status = ? WHERE id = ?`)
	if _, err := s.DB.Exec(query, status, id); err != nil {
		return fmt.Errorf("failed to update reschedule status: %w", err)
	}
	return nil
}
