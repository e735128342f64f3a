package entities

import (
	"strings"
	"time"

	domainerrors "parcelhub/contexts/identity-access/user-directory/domain/errors"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleRider Role = "rider"
)

func ParseRole(raw string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(raw)))
	switch role {
	case RoleUser, RoleAdmin, RoleRider:
		return role, nil
	default:
		return "", domainerrors.ErrInvalidRole
	}
}

type User struct {
	Email        string
	Profile      map[string]any
	Role         Role
	CreatedAt    time.Time
	LastLoggedIn time.Time
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUser builds a first-time user. The role always starts as RoleUser; a
// caller-supplied role in the profile is discarded.
func NewUser(email string, profile map[string]any, now time.Time) (User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return User{}, domainerrors.ErrInvalidUser
	}
	cleaned := make(map[string]any, len(profile))
	for key, value := range profile {
		switch key {
		case "_id", "email", "role", "created_at", "last_logged_in", "last_log_in":
			continue
		}
		cleaned[key] = value
	}
	now = now.UTC()
	return User{
		Email:        email,
		Profile:      cleaned,
		Role:         RoleUser,
		CreatedAt:    now,
		LastLoggedIn: now,
	}, nil
}
