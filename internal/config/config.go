package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/gospors/gospors/internal/route"
)

// Environment names.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// AuthProvider selects the identity provider used for login.
type AuthProvider string

const (
	AuthProviderGitHub AuthProvider = "github"
	AuthProviderOIDC   AuthProvider = "oidc"
	AuthProviderDev    AuthProvider = "dev"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthProvider.
func (a *AuthProvider) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch AuthProvider(v) {
	case AuthProviderGitHub, AuthProviderOIDC, AuthProviderDev:
		*a = AuthProvider(v)
		return nil
	default:
		return fmt.Errorf("invalid AUTH_PROVIDER %q (valid options: github, oidc, dev)", v)
	}
}

// SessionBackend selects where session data lives.
type SessionBackend string

const (
	SessionBackendCookie SessionBackend = "cookie"
	SessionBackendRedis  SessionBackend = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionBackend.
func (s *SessionBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch SessionBackend(v) {
	case SessionBackendCookie, SessionBackendRedis:
		*s = SessionBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid SESSION_BACKEND %q (valid options: cookie, redis)", v)
	}
}

// GitHubConfig holds GitHub OAuth settings.
type GitHubConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
}

// OIDCConfig holds settings for a generic OpenID Connect provider.
type OIDCConfig struct {
	IssuerURL    string   `env:"ISSUER_URL"`
	ClientID     string   `env:"CLIENT_ID"`
	ClientSecret string   `env:"CLIENT_SECRET"`
	Scopes       []string `env:"SCOPES"        envDefault:"openid,profile,email"`
	LogoutURL    string   `env:"LOGOUT_URL"`
}

// DevAuthConfig is the identity handed out by the dev provider.
type DevAuthConfig struct {
	Name  string `env:"NAME"  envDefault:"Dev Athlete"`
	Email string `env:"EMAIL" envDefault:"dev@gospors.local"`
}

// RedisConfig holds the Redis connection used by the redis session backend.
type RedisConfig struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// Config holds all configuration for the application.
type Config struct {
	// Server
	Port        string `env:"PORT"        envDefault:"8080"`
	BaseURL     string `env:"BASE_URL"    envDefault:"http://localhost:8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Database (optional; the user directory is kept in memory without it)
	DatabaseURL string `env:"DATABASE_URL"`

	// Session
	SessionSecret  string         `env:"SESSION_SECRET,required"`
	SessionMaxAge  time.Duration  `env:"SESSION_MAX_AGE" envDefault:"168h"`
	SessionBackend SessionBackend `env:"SESSION_BACKEND" envDefault:"cookie"`
	Redis          RedisConfig    `envPrefix:"REDIS_"`

	// Auth
	AuthProvider     AuthProvider  `env:"AUTH_PROVIDER"      envDefault:"github"`
	AuthCheckTimeout time.Duration `env:"AUTH_CHECK_TIMEOUT" envDefault:"2s"`
	GitHub           GitHubConfig  `envPrefix:"GITHUB_"`
	OIDC             OIDCConfig    `envPrefix:"OIDC_"`
	DevAuth          DevAuthConfig `envPrefix:"DEV_AUTH_"`

	// Observability
	MetricsEnabled  bool   `env:"METRICS_ENABLED"  envDefault:"true"`
	TracingExporter string `env:"TRACING_EXPORTER" envDefault:"none"`
	TracingEndpoint string `env:"TRACING_ENDPOINT"`
}

// Load reads configuration from environment variables.
// In development, it will also load from a .env file if present.
func Load() (*Config, error) {
	// Load .env file (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cross-field constraints that struct tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	switch c.Environment {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		errs = append(errs, fmt.Errorf("ENVIRONMENT must be one of development, staging, production, got %q", c.Environment))
	}

	// 64 bytes: hash key + block key
	if len(c.SessionSecret) < 64 {
		errs = append(errs, fmt.Errorf("SESSION_SECRET must be at least 64 characters, got %d", len(c.SessionSecret)))
	}
	if c.SessionMaxAge <= 0 {
		errs = append(errs, errors.New("SESSION_MAX_AGE must be positive"))
	}
	if c.SessionBackend == SessionBackendRedis && c.Redis.Addr == "" {
		errs = append(errs, errors.New("REDIS_ADDR is required when SESSION_BACKEND=redis"))
	}
	if c.AuthCheckTimeout <= 0 {
		errs = append(errs, errors.New("AUTH_CHECK_TIMEOUT must be positive"))
	}

	switch c.AuthProvider {
	case AuthProviderGitHub:
		if c.GitHub.ClientID == "" || c.GitHub.ClientSecret == "" {
			errs = append(errs, errors.New("GITHUB_CLIENT_ID and GITHUB_CLIENT_SECRET are required when AUTH_PROVIDER=github"))
		}
	case AuthProviderOIDC:
		if c.OIDC.IssuerURL == "" || c.OIDC.ClientID == "" || c.OIDC.ClientSecret == "" {
			errs = append(errs, errors.New("OIDC_ISSUER_URL, OIDC_CLIENT_ID and OIDC_CLIENT_SECRET are required when AUTH_PROVIDER=oidc"))
		}
	case AuthProviderDev:
		if c.IsProduction() {
			errs = append(errs, errors.New("AUTH_PROVIDER=dev is not allowed in production"))
		}
	}

	switch c.TracingExporter {
	case "", "none", "stdout":
	case "otlp":
		if c.TracingEndpoint == "" {
			errs = append(errs, errors.New("TRACING_ENDPOINT is required when TRACING_EXPORTER=otlp"))
		}
	default:
		errs = append(errs, fmt.Errorf("TRACING_EXPORTER must be none, stdout or otlp, got %q", c.TracingExporter))
	}

	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

// CallbackURL is where identity providers send the browser after login.
func (c *Config) CallbackURL() string {
	return strings.TrimRight(c.BaseURL, "/") + route.CallbackPath
}

// SlogLevel parses LOG_LEVEL.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}
