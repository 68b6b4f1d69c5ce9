package ports

import "time"

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// AuthClaims is the token payload. Email is the sole identity claim; Role is
// informational only, authorization re-resolves the role from the store.
type AuthClaims struct {
	Email     string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenSigner mints and verifies bearer tokens. Implementations return
// domain.ErrConfiguration from Sign when no signing secret is available, so
// the login flow can report the misconfiguration instead of issuing an
// unverifiable token.
type TokenSigner interface {
	Sign(claims AuthClaims) (string, error)
	ParseAndValidate(token string) (AuthClaims, error)
}
