package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pet-health-tracker/internal/config"
	"pet-health-tracker/internal/platform/logger"
	"pet-health-tracker/internal/router"
	"pet-health-tracker/internal/session"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Levanta el servidor HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend, closeDB, err := openBackend(ctx, cfg, true)
	if err != nil {
		log.Error().Stack().Err(logger.WithStack(err)).Str("db_driver", string(cfg.DBDriver)).Msg("storage unavailable")
		return err
	}
	defer closeDB()

	mgr := session.NewManager(backend, session.Options{
		TTL:         cfg.SessionTTL,
		MaxSessions: cfg.SessionMax,
		Logger:      log,
	})
	defer mgr.Close()

	h, err := router.NewRouter(router.Options{
		Sessions:     mgr,
		Logger:       log,
		CookieName:   cfg.CookieName,
		CookieSecure: cfg.CookieSecure,
		CookieMaxAge: cfg.SessionTTL,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("db_driver", string(cfg.DBDriver)).
			Dur("session_ttl", cfg.SessionTTL).
			Int("session_max", cfg.SessionMax).
			Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			log.Error().Stack().Err(logger.WithStack(err)).Msg("server forced to shutdown")
			return err
		}
		log.Info().Msg("server exited")
		return nil
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		log.Error().Stack().Err(logger.WithStack(err)).Msg("http server failed")
		return err
	}
}
