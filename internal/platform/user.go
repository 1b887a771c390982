package platform

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the authenticated account as returned by /accounts/me/.
type User struct {
	ID            uuid.UUID  `json:"uuid"`
	Email         string     `json:"email"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Profession    string     `json:"profession,omitempty"`
	EmailVerified bool       `json:"email_verified"`
	DefaultOrg    *uuid.UUID `json:"default_organization,omitempty"`
	DateJoined    time.Time  `json:"date_joined"`
}

// FullName joins first and last name, falling back to the email address
// when neither is set.
func (u User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

// TokenPair is returned by /auth/login/.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// LoginRequest is the payload for /auth/login/.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileUpdate carries partial profile changes. Nil fields are omitted
// so the backend leaves them untouched.
type ProfileUpdate struct {
	FirstName  *string    `json:"first_name,omitempty"`
	LastName   *string    `json:"last_name,omitempty"`
	Profession *string    `json:"profession,omitempty"`
	DefaultOrg *uuid.UUID `json:"default_organization,omitempty"`
}

// PasswordChange is the payload for /accounts/change-password/.
type PasswordChange struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}
