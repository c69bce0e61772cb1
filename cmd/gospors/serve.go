package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gospors/gospors/internal/auth"
	"github.com/gospors/gospors/internal/config"
	"github.com/gospors/gospors/internal/handlers"
	"github.com/gospors/gospors/internal/layout"
	"github.com/gospors/gospors/internal/metrics"
	"github.com/gospors/gospors/internal/server"
	"github.com/gospors/gospors/internal/telemetry"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return serve(cmd, cfg)
		},
	}
}

func serve(cmd *cobra.Command, cfg *config.Config) error {
	ctx := cmd.Context()
	logger, err := newLogger(cfg, os.Stdout)
	if err != nil {
		return err
	}

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Options{
		ServiceName: "gospors",
		Environment: cfg.Environment,
		Exporter:    cfg.TracingExporter,
		Endpoint:    cfg.TracingEndpoint,
		Writer:      os.Stderr,
	})
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		// ctx is already cancelled on shutdown; flush on a fresh deadline.
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("tracer shutdown failed", "error", err)
		}
	}()

	users, closeUsers, err := newUsers(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeUsers()

	sessions, closeSessions, err := newSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSessions()

	provider, err := newIdentityProvider(ctx, cfg)
	if err != nil {
		return fmt.Errorf("identity provider: %w", err)
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	client := auth.NewService(
		sessions,
		auth.NewLoginStates(cfg.SessionSecret, cfg.IsProduction()),
		provider,
		users,
		m,
		logger,
	)

	router := server.NewRouter(server.Deps{
		Handlers: handlers.New(client, users, logger),
		Auth:     client,
		Viewers:  layout.NewLoader(client, cfg.AuthCheckTimeout, m, logger),
		Metrics:  m,
		Logger:   logger,
	})

	addr := ":" + cfg.Port
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	logger.Info("starting gospors",
		"auth_provider", provider.Name(),
		"session_backend", cfg.SessionBackend,
		"metrics", cfg.MetricsEnabled,
		"tracing", cfg.TracingExporter,
	)
	return server.Run(ctx, server.New(addr, router), ln, logger)
}
