package domain

import (
	"errors"
	"time"
)

const (
	RoleInventor = "inventor"
	RoleClient   = "client"
	RoleExpert   = "expert"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrUnauthenticated = errors.New("authentication required")
var ErrInvalidToken = errors.New("invalid token")

// ValidRegistrationRole reports whether role may be assigned at sign-up.
// "expert" is reachable only through the become-expert promotion.
func ValidRegistrationRole(role string) bool {
	return role == RoleInventor || role == RoleClient
}

// User models a registered marketplace identity.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
