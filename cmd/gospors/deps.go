package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/gospors/gospors/internal/auth"
	"github.com/gospors/gospors/internal/config"
	"github.com/gospors/gospors/internal/database"
)

// newSessionStore picks the session backend. The returned cleanup closes
// any connection it opened.
func newSessionStore(ctx context.Context, cfg *config.Config) (auth.Store, func(), error) {
	secure := cfg.IsProduction()

	switch cfg.SessionBackend {
	case config.SessionBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		return auth.NewRedisStore(client, cfg.SessionSecret, cfg.SessionMaxAge, secure), func() { client.Close() }, nil

	default:
		return auth.NewCookieStore(cfg.SessionSecret, cfg.SessionMaxAge, secure), func() {}, nil
	}
}

// newIdentityProvider builds the configured login provider.
func newIdentityProvider(ctx context.Context, cfg *config.Config) (auth.IdentityProvider, error) {
	switch cfg.AuthProvider {
	case config.AuthProviderGitHub:
		return auth.NewGitHubOAuth(cfg.GitHub.ClientID, cfg.GitHub.ClientSecret, cfg.CallbackURL()), nil

	case config.AuthProviderOIDC:
		return auth.NewOIDCProvider(ctx, auth.OIDCConfig{
			IssuerURL:    cfg.OIDC.IssuerURL,
			ClientID:     cfg.OIDC.ClientID,
			ClientSecret: cfg.OIDC.ClientSecret,
			RedirectURL:  cfg.CallbackURL(),
			Scopes:       cfg.OIDC.Scopes,
			LogoutURL:    cfg.OIDC.LogoutURL,
			BaseURL:      cfg.BaseURL,
		})

	case config.AuthProviderDev:
		return auth.NewDevProvider(cfg.DevAuth.Name, cfg.DevAuth.Email)

	default:
		return nil, fmt.Errorf("%w: %q", auth.ErrUnknownProvider, cfg.AuthProvider)
	}
}

// newUsers connects the member directory: PostgreSQL when DATABASE_URL is
// set, in memory otherwise.
func newUsers(ctx context.Context, cfg *config.Config, logger *slog.Logger) (database.Users, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, members are kept in memory")
		return database.NewMemoryUsers(), func() {}, nil
	}

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.Migrate(ctx, logger); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrate database: %w", err)
	}
	return database.NewPostgresUsers(db), db.Close, nil
}
