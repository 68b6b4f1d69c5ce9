package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the resolved runtime configuration, merged from file defaults
// and environment overrides so local and deployed runs share one path.
type Config struct {
	ServiceID string
	HTTPPort  int

	DatabaseURL string
	RedisURL    string

	JWTSecret       string
	AuthMode        string
	BcryptCost      int
	TokenTTL        time.Duration
	FailedThreshold int
	LockoutDuration time.Duration

	StripeSecretKey string
	Currency        string
	FrontendBaseURL string

	UploadDir  string
	MaxDBConns int32
}

// configFile mirrors the YAML schema of configs/default.yaml. Kept separate
// from Config so runtime-only fields stay internal.
type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresURL string `yaml:"postgres_url"`
		RedisURL    string `yaml:"redis_url"`
	} `yaml:"dependencies"`
	Auth struct {
		JWTSecret        string `yaml:"jwt_secret"`
		Mode             string `yaml:"mode"`
		BcryptCost       int    `yaml:"bcrypt_cost"`
		TokenExpiryHours int    `yaml:"token_expiry_hours"`
		FailedThreshold  int    `yaml:"failed_login_threshold"`
		LockoutMinutes   int    `yaml:"lockout_minutes"`
	} `yaml:"auth"`
	Stripe struct {
		SecretKey string `yaml:"secret_key"`
		Currency  string `yaml:"currency"`
	} `yaml:"stripe"`
	FrontendBaseURL string `yaml:"frontend_base_url"`
	Uploads         struct {
		Dir string `yaml:"dir"`
	} `yaml:"uploads"`
}

// LoadConfig resolves configuration in priority order: defaults -> file -> env.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:       "bookshop-api",
		HTTPPort:        8080,
		AuthMode:        "token",
		BcryptCost:      12,
		TokenTTL:        24 * time.Hour,
		FailedThreshold: 10,
		LockoutDuration: 15 * time.Minute,
		Currency:        "usd",
		UploadDir:       "uploads",
		MaxDBConns:      20,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Dependencies.PostgresURL != "" {
			cfg.DatabaseURL = f.Dependencies.PostgresURL
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
		if f.Auth.JWTSecret != "" {
			cfg.JWTSecret = f.Auth.JWTSecret
		}
		if f.Auth.Mode != "" {
			cfg.AuthMode = f.Auth.Mode
		}
		if f.Auth.BcryptCost > 0 {
			cfg.BcryptCost = f.Auth.BcryptCost
		}
		if f.Auth.TokenExpiryHours > 0 {
			cfg.TokenTTL = time.Duration(f.Auth.TokenExpiryHours) * time.Hour
		}
		if f.Auth.FailedThreshold > 0 {
			cfg.FailedThreshold = f.Auth.FailedThreshold
		}
		if f.Auth.LockoutMinutes > 0 {
			cfg.LockoutDuration = time.Duration(f.Auth.LockoutMinutes) * time.Minute
		}
		if f.Stripe.SecretKey != "" {
			cfg.StripeSecretKey = f.Stripe.SecretKey
		}
		if f.Stripe.Currency != "" {
			cfg.Currency = f.Stripe.Currency
		}
		if f.FrontendBaseURL != "" {
			cfg.FrontendBaseURL = f.FrontendBaseURL
		}
		if f.Uploads.Dir != "" {
			cfg.UploadDir = f.Uploads.Dir
		}
	}

	cfg.DatabaseURL = envOrDefault("DB_URL", envOrDefault("POSTGRES_URL", cfg.DatabaseURL))
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.JWTSecret = envOrDefault("JWT_SECRET", cfg.JWTSecret)
	cfg.AuthMode = strings.ToLower(strings.TrimSpace(envOrDefault("AUTH_MODE", cfg.AuthMode)))
	cfg.StripeSecretKey = envOrDefault("STRIPE_SECRET_KEY", cfg.StripeSecretKey)
	cfg.Currency = strings.ToLower(envOrDefault("STRIPE_CURRENCY", cfg.Currency))
	cfg.FrontendBaseURL = strings.TrimSuffix(envOrDefault("FRONTEND_BASE_URL", cfg.FrontendBaseURL), "/")
	cfg.UploadDir = envOrDefault("UPLOAD_DIR", cfg.UploadDir)

	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.BcryptCost = envInt("BCRYPT_ROUNDS", cfg.BcryptCost)
	cfg.FailedThreshold = envInt("FAILED_LOGIN_THRESHOLD", cfg.FailedThreshold)
	cfg.MaxDBConns = int32(envInt("DB_MAX_CONNS", int(cfg.MaxDBConns)))
	cfg.TokenTTL = time.Duration(envInt("TOKEN_EXPIRY_HOURS", int(cfg.TokenTTL.Hours()))) * time.Hour
	cfg.LockoutDuration = time.Duration(envInt("ACCOUNT_LOCKOUT_MINUTES", int(cfg.LockoutDuration.Minutes()))) * time.Minute

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("missing DB_URL/POSTGRES_URL")
	}
	if cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("missing REDIS_URL")
	}

	return cfg, nil
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
