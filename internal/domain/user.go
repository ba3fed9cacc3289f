package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user together with
// their mentor preferences.
type User struct {
	ID              uuid.UUID
	Username        string
	Email           string
	PasswordHash    string
	MentorStyle     MentorStyle
	MentorIntensity int
	FirstName       *string
	LastName        *string
	Bio             *string
	Goals           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DisplayName returns the name used when addressing the user in
// generated feedback: first name when set, username otherwise.
func (u *User) DisplayName() string {
	if u.FirstName != nil && *u.FirstName != "" {
		return *u.FirstName
	}
	return u.Username
}
