package models

import (
	"github.com/go-playground/validator/v10"
)

// Note is a personal sticky note, visible only to its owner.
type Note struct {
	ID        string `db:"id" json:"id"`
	Owner     string `db:"owner" json:"owner" validate:"required"`
	Title     string `db:"title" json:"title" validate:"required"`
	Content   string `db:"content" json:"content" validate:"required"`
	CreatedAt int64  `db:"created_at" json:"created_at"`
}

func (n *Note) Validate() error {
	validate := validator.New()
	return validate.Struct(n)
}
