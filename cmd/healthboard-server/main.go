package main

import (
	"context"
	crypto_rand "crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/healthboard/healthboard/internal/config"
	"github.com/healthboard/healthboard/internal/domain/registry"
	"github.com/healthboard/healthboard/internal/domain/session"
	"github.com/healthboard/healthboard/internal/domain/stats"
	"github.com/healthboard/healthboard/internal/platform/auth"
	"github.com/healthboard/healthboard/internal/platform/middleware"
	"github.com/healthboard/healthboard/internal/platform/store"
	"github.com/healthboard/healthboard/internal/platform/telemetry"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "healthboard-server",
		Short: "National health dashboard API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(resetCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the seed dataset into empty store slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			st, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			// Open seeds any slot that is still empty; populated slots
			// are left untouched.
			reg, err := registry.Open(st)
			if err != nil {
				return err
			}

			snap := reg.Snapshot()
			fmt.Printf("Store ready: %d hospitals, %d diseases, %d patients, %d staff, %d resources\n",
				len(snap.Hospitals), len(snap.Diseases), len(snap.Patients), len(snap.Staff), len(snap.Resources))
			return nil
		},
	}
}

func resetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all store slots, including the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				return fmt.Errorf("reset is destructive; re-run with --yes to confirm")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			st, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			for _, slot := range store.AllSlots() {
				if err := st.Delete(slot); err != nil {
					return fmt.Errorf("clear slot %s: %w", slot, err)
				}
				fmt.Printf("cleared %s\n", slot)
			}
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "Confirm destructive reset")
	return cmd
}

// openStore builds the configured persistence backend. The returned
// closer is a no-op for backends without an underlying handle.
func openStore(cfg *config.Config) (store.Store, func(), error) {
	switch cfg.StoreBackend {
	case "file":
		st, err := store.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open file store: %w", err)
		}
		return st, func() {}, nil
	case "sqlite":
		st, err := store.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return st, func() { _ = st.Close() }, nil
	case "memory":
		return store.NewMemoryStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend: %s", cfg.StoreBackend)
	}
}

// resolveSessionSecret returns the configured token signing secret. In
// development a missing secret is replaced with a random one so local
// servers start without setup; sessions then do not survive restarts.
func resolveSessionSecret(cfg *config.Config) (string, bool, error) {
	if cfg.SessionSecret != "" {
		return cfg.SessionSecret, false, nil
	}
	if !cfg.IsDev() {
		return "", false, fmt.Errorf("SESSION_SECRET is required when ENV is not development")
	}
	key := make([]byte, 32)
	if _, err := crypto_rand.Read(key); err != nil {
		return "", false, fmt.Errorf("generate session secret: %w", err)
	}
	return hex.EncodeToString(key), true, nil
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	secret, generated, err := resolveSessionSecret(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to resolve session secret")
	}
	if generated {
		logger.Warn().Msg("SESSION_SECRET not set; generated a random secret, sessions will not survive restarts")
	}

	// Persistence
	st, closeStore, err := openStore(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open store")
	}
	defer closeStore()
	logger.Info().Str("backend", cfg.StoreBackend).Msg("store opened")

	reg, err := registry.Open(st)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open entity registry")
	}

	regSvc := registry.NewService(reg, session.DirectoryEmails())
	statsSvc := stats.NewService(reg)

	gate, err := session.NewGate(st, reg.Hospitals(), cfg.LoginDelay())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to restore session state")
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(telemetry.Middleware())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/metrics", telemetry.Handler())

	// Authenticated API group
	api := e.Group("/api/v1")
	api.Use(auth.Middleware(secret))
	api.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))

	// Session endpoints; login stays outside the authenticated group and
	// carries its own tighter rate limit.
	sessionHandler := session.NewHandler(gate, secret)
	sessionHandler.RegisterRoutes(e, api, middleware.RateLimit(middleware.LoginRateLimitConfig()))

	// Entity registry endpoints
	registryHandler := registry.NewHandler(regSvc)
	registryHandler.RegisterRoutes(api)

	// Statistics endpoints
	statsHandler := stats.NewHandler(statsSvc)
	statsHandler.RegisterRoutes(api)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
