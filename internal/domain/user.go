package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of account roles. Admin grants catalog-mutation rights;
// everything else is a regular customer account.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// ParseRole validates a client-supplied role string. An empty string is allowed
// here and defaulted by the caller so the "role is optional" contract stays in
// one place.
func ParseRole(raw string) (Role, error) {
	switch Role(strings.TrimSpace(raw)) {
	case "":
		return "", nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", fmt.Errorf("%w: role must be Admin or User", ErrInvalidInput)
	}
}

// User is the credential-store record. Password is only ever held as a bcrypt
// hash; the plaintext never leaves the registration request.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Initials     string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user may mutate the catalog.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
