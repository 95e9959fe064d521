package models

import (
	"time"
)

// Session is the redis-backed record behind an opaque bearer token.
type Session struct {
	Token       string    `json:"token"`
	ProfileID   string    `json:"profile_id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	CreatedTime time.Time `json:"created_dttm_utc"`
}
