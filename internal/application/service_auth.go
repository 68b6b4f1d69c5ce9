package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/inkwell/bookshop/internal/domain"
	"github.com/inkwell/bookshop/internal/ports"
)

// Register creates a local account. Email uniqueness is enforced by the store
// constraint; a duplicate surfaces here as domain.ErrConflict without a
// separate existence probe, so concurrent registrations cannot race past it.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (UserProfileResponse, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Password) == "" {
		return UserProfileResponse{}, fmt.Errorf("%w: name, email, and password are required", domain.ErrInvalidInput)
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return UserProfileResponse{}, err
	}
	if role == "" {
		role = s.cfg.DefaultRole
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return UserProfileResponse{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, ports.CreateUserParams{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Initials:     req.Initials,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return UserProfileResponse{}, fmt.Errorf("%w: user already exists", domain.ErrConflict)
		}
		return UserProfileResponse{}, err
	}

	return toProfileResponse(user), nil
}

// Login verifies credentials against the stored bcrypt hash and mints a signed
// session token. Failure modes are reported distinctly (user missing vs wrong
// password), matching the public API contract.
func (s *Service) Login(ctx context.Context, req LoginRequest) (UserAuthResponse, error) {
	lockKey := "login:" + req.Email
	lockState, err := s.lockouts.Get(ctx, lockKey)
	if err == nil && lockState.LockedUntil != nil && lockState.LockedUntil.After(s.nowFn()) {
		svcLogger().WarnContext(ctx, "account lockout active",
			"operation", "login",
			"outcome", "blocked",
			"email", req.Email,
			"locked_until", lockState.LockedUntil,
		)
		return UserAuthResponse{}, domain.ErrAccountLocked
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return UserAuthResponse{}, domain.ErrUserNotFound
		}
		return UserAuthResponse{}, err
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		_, _ = s.lockouts.RecordFailure(ctx, lockKey, s.nowFn(), s.cfg.FailedLoginThreshold, s.cfg.LockoutDuration)
		return UserAuthResponse{}, domain.ErrWrongPassword
	}
	_ = s.lockouts.Clear(ctx, lockKey)

	now := s.nowFn()
	token, err := s.tokens.Sign(ports.AuthClaims{
		Email:     user.Email,
		Role:      string(user.Role),
		IssuedAt:  now,
		ExpiresAt: now.Add(s.cfg.TokenTTL),
	})
	if err != nil {
		return UserAuthResponse{}, err
	}

	return UserAuthResponse{
		Token:    token,
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Initials: user.Initials,
		Role:     string(user.Role),
	}, nil
}

// Profile resolves the caller from a bearer token. The token's email claim is
// looked up fresh, so a deleted account yields not-found even with a token
// that still verifies.
func (s *Service) Profile(ctx context.Context, bearerToken string) (UserProfileResponse, error) {
	claims, err := s.verifyToken(bearerToken)
	if err != nil {
		return UserProfileResponse{}, err
	}

	user, err := s.users.GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return UserProfileResponse{}, domain.ErrNotFound
		}
		return UserProfileResponse{}, err
	}
	return toProfileResponse(user), nil
}

func (s *Service) verifyToken(bearerToken string) (ports.AuthClaims, error) {
	if strings.TrimSpace(bearerToken) == "" {
		return ports.AuthClaims{}, domain.ErrUnauthorized
	}
	claims, err := s.tokens.ParseAndValidate(bearerToken)
	if err != nil {
		return ports.AuthClaims{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if claims.Email == "" {
		return ports.AuthClaims{}, domain.ErrUnauthorized
	}
	return claims, nil
}

// requireAdmin gates catalog mutations. In token mode the caller comes from a
// verified token claim plus a server-side role lookup. In legacy-email mode
// the client-supplied email is trusted as-is (kept for compatibility only).
func (s *Service) requireAdmin(ctx context.Context, auth AuthContext) (domain.User, error) {
	var email string
	switch s.cfg.AuthMode {
	case AuthModeLegacyEmail:
		if strings.TrimSpace(auth.Email) == "" {
			return domain.User{}, domain.ErrForbidden
		}
		email = auth.Email
	default:
		claims, err := s.verifyToken(auth.BearerToken)
		if err != nil {
			return domain.User{}, err
		}
		email = claims.Email
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.ErrForbidden
		}
		return domain.User{}, err
	}
	if !user.IsAdmin() {
		return domain.User{}, fmt.Errorf("%w: admin role required", domain.ErrForbidden)
	}
	return user, nil
}

func toProfileResponse(user domain.User) UserProfileResponse {
	return UserProfileResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Initials: user.Initials,
		Role:     string(user.Role),
	}
}
