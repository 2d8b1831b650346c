// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package command

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/librarydesk/internal/api"
	"github.com/taibuivan/librarydesk/internal/backend"
	"github.com/taibuivan/librarydesk/internal/console"
	"github.com/taibuivan/librarydesk/internal/platform/config"
	"github.com/taibuivan/librarydesk/internal/platform/constants"
	redisstore "github.com/taibuivan/librarydesk/internal/platform/redis"
	"github.com/taibuivan/librarydesk/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web console",
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// serve runs the console until SIGINT or SIGTERM.
//
// # Startup Sequence
//
//  1. Load configuration and initialize the structured logger.
//  2. Build the library backend client.
//  3. Open the session store (memory or Redis).
//  4. Parse the page templates.
//  5. Wire health handlers and the entity pages.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
func serve() {
	// ── 1. Configuration & Logger ─────────────────────────────────────────
	cfg, log, err := loadConfig()
	must(log, err, "load configuration")
	slog.SetDefault(log)

	log.Info("[Console] service_initializing",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("api_base_url", cfg.APIBaseURL),
	)
	if cfg.Debug {
		log.Debug("debug_logging_enabled")
	}

	// Root context of background work (session janitor, rate limiter sweeps).
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Startup deadline so misconfiguration is caught quickly.
	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 2. Library Backend ────────────────────────────────────────────────
	client := backend.NewClient(cfg.APIBaseURL, cfg.APITimeout, log)
	if err := client.Ping(startupCtx); err != nil {
		// Pages report the outage themselves; the console still starts.
		log.Warn("backend_unreachable_at_startup", slog.Any("error", err))
	}

	// ── 3. Session Store ──────────────────────────────────────────────────
	var store session.Store
	switch cfg.SessionBackend {
	case config.SessionRedis:
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()
		store = session.NewRedisStore(rdb, cfg.SessionTTL)
	default:
		store = session.NewMemoryStore(rootCtx, cfg.SessionTTL)
	}
	log.Info("session_store_ready", slog.String("backend", cfg.SessionBackend))

	// ── 4. Templates ──────────────────────────────────────────────────────
	renderer, err := console.NewRenderer(api.Sections)
	must(log, err, "parse templates")

	// ── 5. Handlers ───────────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckBackend: client.Ping,
		CheckSession: store.Ping,
	}, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Home:      console.HomeHandler(renderer, api.Sections),
		Pages: api.NewPages(api.PageDependencies{
			Client:   client,
			Store:    store,
			Renderer: renderer,
			PageSize: cfg.PageSize,
			Logger:   log,
		}),
	}

	server := api.NewServer(rootCtx, cfg, log, handlers)

	// ── 6. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
