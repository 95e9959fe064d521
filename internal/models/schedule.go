package models

import (
	"github.com/go-playground/validator/v10"
)

// StatusCompleted is the only status a completed presentation ever carries.
const StatusCompleted = "Completed"

// Schedule is a presentation that has been scheduled but not yet held.
type Schedule struct {
	ID                string `db:"id" json:"id"`
	Title             string `db:"title" json:"title" validate:"required"`
	GroupID           string `db:"group_id" json:"group_id" validate:"required"`
	Semester          string `db:"semester" json:"semester" validate:"required"`
	Date              string `db:"date" json:"date" validate:"required,datetime=2006-01-02"`
	Time              string `db:"time" json:"time" validate:"required"`
	Venue             string `db:"venue" json:"venue" validate:"required"`
	ExaminerPushToken string `db:"examiner_push_token" json:"examiner_push_token"`
	CreatedAt         int64  `db:"created_at" json:"created_at"`
}

// CompletedPresentation is created only by the completion workflow and is
// immutable afterwards except for deletion.
type CompletedPresentation struct {
	ID          string `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	GroupID     string `db:"group_id" json:"group_id"`
	Semester    string `db:"semester" json:"semester"`
	Date        string `db:"date" json:"date"`
	Time        string `db:"time" json:"time"`
	Venue       string `db:"venue" json:"venue"`
	Status      string `db:"status" json:"status"`
	CompletedAt int64  `db:"completed_at" json:"completed_at"`
}

func (s *Schedule) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}
