package domain

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain allows adapters to map it consistently to 404.
	ErrNotFound = errors.New("resource not found")
	// ErrUserNotFound and ErrWrongPassword are distinct on purpose: the login
	// endpoint reports which check failed, matching the public API contract.
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
	// ErrAccountLocked signals temporary lockout after repeated failed logins.
	ErrAccountLocked = errors.New("account locked")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrInvalidInput  = errors.New("invalid input")
	ErrConflict      = errors.New("conflict")
	// ErrConfiguration marks a missing or unusable secret (JWT signing key,
	// payment provider credential). It maps to a 500-class problem response.
	ErrConfiguration = errors.New("configuration error")
)
