package workflow

import (
	"fmt"
	"time"

	"presentpath/internal/models"
	"presentpath/internal/store"
)

// Placeholder values substituted for missing fields when a presentation
// is moved to the completed collection.
const (
	DefaultTitle    = "Untitled"
	DefaultGroup    = "Unknown"
	DefaultSemester = "N/A"
	DefaultTime     = "00:00"
	DefaultVenue    = "Not Assigned"
)

// CompletePresentation moves a schedule into the completed collection:
// create the completed record, then delete the schedule. The two store
// calls are wrapped in a saga so a failed delete removes the completed
// record again, keeping the presentation in exactly one collection.
func CompletePresentation(db store.DocStore, sched *models.Schedule) (*models.CompletedPresentation, error) {
	if sched == nil || sched.ID == "" {
		return nil, fmt.Errorf("schedule id is required")
	}

	completed := &models.CompletedPresentation{
		ID:          sched.ID,
		Title:       orDefault(sched.Title, DefaultTitle),
		GroupID:     orDefault(sched.GroupID, DefaultGroup),
		Semester:    orDefault(sched.Semester, DefaultSemester),
		Date:        orDefault(sched.Date, time.Now().UTC().Format("2006-01-02")),
		Time:        orDefault(sched.Time, DefaultTime),
		Venue:       orDefault(sched.Venue, DefaultVenue),
		Status:      models.StatusCompleted,
		CompletedAt: time.Now().UTC().Unix(),
	}

	saga := NewSaga(
		Step{
			Name: "create_completed",
			Run:  func() error { return db.CreateCompleted(completed) },
			Undo: func() error { return db.DeleteCompleted(completed.ID) },
		},
		Step{
			Name: "delete_schedule",
			Run:  func() error { return db.DeleteSchedule(sched.ID) },
		},
	)

	if err := saga.Execute(); err != nil {
		return nil, fmt.Errorf("failed to complete presentation %s: %w", sched.ID, err)
	}

	return completed, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
