package application

import (
	"log/slog"
	"strings"
	"time"

	"github.com/inkwell/bookshop/internal/domain"
	"github.com/inkwell/bookshop/internal/ports"
)

// Authorization modes. AuthModeToken resolves the caller from a verified
// bearer token; AuthModeLegacyEmail trusts an email field in the request body
// and exists only for compatibility with the historical API. It is insecure:
// any caller who knows an admin's email passes the gate.
const (
	AuthModeToken       = "token"
	AuthModeLegacyEmail = "legacy-email"
)

type Config struct {
	DefaultRole          domain.Role
	AuthMode             string
	TokenTTL             time.Duration
	FailedLoginThreshold int
	LockoutDuration      time.Duration
	Currency             string
	FrontendBaseURL      string
}

type Service struct {
	cfg        Config
	users      ports.UserRepository
	books      ports.BookRepository
	categories ports.CategoryRepository
	lockouts   ports.LockoutStore
	hasher     ports.PasswordHasher
	tokens     ports.TokenSigner
	checkout   ports.CheckoutProvider
	images     ports.ImageStore
	nowFn      func() time.Time
}

type Dependencies struct {
	Config     Config
	Users      ports.UserRepository
	Books      ports.BookRepository
	Categories ports.CategoryRepository
	Lockouts   ports.LockoutStore
	Hasher     ports.PasswordHasher
	Tokens     ports.TokenSigner
	Checkout   ports.CheckoutProvider
	Images     ports.ImageStore
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.DefaultRole == "" {
		cfg.DefaultRole = domain.RoleUser
	}
	if cfg.AuthMode == "" {
		cfg.AuthMode = AuthModeToken
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	return &Service{
		cfg:        cfg,
		users:      deps.Users,
		books:      deps.Books,
		categories: deps.Categories,
		lockouts:   deps.Lockouts,
		hasher:     deps.Hasher,
		tokens:     deps.Tokens,
		checkout:   deps.Checkout,
		images:     deps.Images,
		nowFn:      func() time.Time { return time.Now().UTC() },
	}
}

func svcLogger() *slog.Logger {
	return slog.Default().With(
		"service", "bookshop-api",
		"module", "application",
		"layer", "application",
	)
}

// absoluteImageURL rewrites a server-relative /uploads path against the
// request origin. Already-absolute URLs pass through untouched.
func absoluteImageURL(image, origin string) string {
	if image == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(image), "http") {
		return image
	}
	return strings.TrimSuffix(origin, "/") + image
}
