package domain

import (
	"errors"
	"time"
)

var ErrProfileExists = errors.New("expert profile already exists")

// ExpertProfile marks a user as a hireable professional. At most one profile
// exists per user; creating it promotes the owning user's role to "expert"
// in the same transaction.
type ExpertProfile struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Title      string    `json:"title"`
	Bio        string    `json:"bio"`
	HourlyRate float64   `json:"hourly_rate"`
	Location   string    `json:"location"`
	CreatedAt  time.Time `json:"created_at"`
}

// Expert is the joined user + profile view served by the expert directory.
type Expert struct {
	UserID     int64   `json:"user_id"`
	FullName   string  `json:"full_name"`
	Title      string  `json:"title"`
	Bio        string  `json:"bio"`
	HourlyRate float64 `json:"hourly_rate"`
	Location   string  `json:"location"`
}
