package models

import (
	"github.com/go-playground/validator/v10"
)

const (
	RoleStudent  = "student"
	RoleExaminer = "examiner"
	RoleAdmin    = "admin"
)

// Profile is the canonical user record shared by the student and examiner
// surfaces. The password hash never leaves the service.
type Profile struct {
	ID           string `db:"id" json:"id"`
	FirstName    string `db:"first_name" json:"first_name" validate:"required"`
	LastName     string `db:"last_name" json:"last_name" validate:"required"`
	Email        string `db:"email" json:"email" validate:"required,email"`
	IndexNumber  string `db:"index_number" json:"index_number"`
	GroupID      string `db:"group_id" json:"group_id"`
	Semester     string `db:"semester" json:"semester"`
	Role         string `db:"role" json:"role" validate:"required,oneof=student examiner admin"`
	PushToken    string `db:"push_token" json:"-"`
	PasswordHash string `db:"password_hash" json:"-"`
}

func (p *Profile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
