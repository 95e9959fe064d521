package models

import (
	"github.com/go-playground/validator/v10"
)

const (
	ReschedulePending  = "Pending"
	RescheduleApproved = "Approved"
	RescheduleDeclined = "Declined"
)

// RescheduleRequest asks for a scheduled presentation to be moved.
type RescheduleRequest struct {
	ID              string `db:"id" json:"id"`
	ScheduleID      string `db:"schedule_id" json:"schedule_id" validate:"required"`
	Reason          string `db:"reason" json:"reason" validate:"required"`
	Date            string `db:"date" json:"date" validate:"required,datetime=2006-01-02"`
	Time            string `db:"time" json:"time" validate:"required"`
	AdditionalNotes string `db:"additional_notes" json:"additional_notes"`
	Status          string `db:"status" json:"status"`
}

func (r *RescheduleRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
