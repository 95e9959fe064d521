package models

import (
	"github.com/go-playground/validator/v10"
)

// Mark holds the five sub-scores an examiner awards for one presentation.
// Each sub-score is in [1,10]; the total and average are derived, never stored.
type Mark struct {
	StudentNo                string `db:"student_no" json:"student_no" validate:"required"`
	Year                     string `db:"year" json:"year" validate:"required"`
	Semester                 string `db:"semester" json:"semester" validate:"required"`
	PresentationTitle        string `db:"presentation_title" json:"presentation_title" validate:"required"`
	ContentQuality           int    `db:"content_quality" json:"content_quality" validate:"min=1,max=10"`
	PresentationSkills       int    `db:"presentation_skills" json:"presentation_skills" validate:"min=1,max=10"`
	SlideDesign              int    `db:"slide_design" json:"slide_design" validate:"min=1,max=10"`
	EngagementAndInteraction int    `db:"engagement_and_interaction" json:"engagement_and_interaction" validate:"min=1,max=10"`
	TimeManagement           int    `db:"time_management" json:"time_management" validate:"min=1,max=10"`
}

func (m *Mark) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}

// SubScores returns the five sub-scores in their canonical order.
func (m *Mark) SubScores() [5]int {
	return [5]int{
		m.ContentQuality,
		m.PresentationSkills,
		m.SlideDesign,
		m.EngagementAndInteraction,
		m.TimeManagement,
	}
}
