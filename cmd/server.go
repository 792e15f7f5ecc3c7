package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	"biztime/internal/config"
	"biztime/internal/database"
	"biztime/internal/metrics"
	"biztime/internal/timeutil"
)

func dbConfig(cfg config.Config) database.Config {
	return database.Config{
		URL:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
}

func newServer(cfg config.Config, handler http.Handler, logger *slog.Logger) *http.Server {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		AllowedHeaders:   []string{"Content-Type", requestIDHeader},
	})

	return &http.Server{
		Addr:         cfg.Server.Addr,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
		Handler:      c.Handler(handler),
		IdleTimeout:  cfg.Server.IdleTimeout,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}

// runServe serves until ctx is cancelled or SIGINT/SIGTERM arrives, then
// drains in-flight requests and closes the pool.
func runServe(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock, err := timeutil.NewClock(cfg.TimeZone)
	if err != nil {
		return err
	}

	db, err := database.Open(ctx, dbConfig(cfg))
	if err != nil {
		return err
	}
	defer db.Close()

	m := metrics.New()
	if err := m.RegisterDB(db.SQL(), "biztime"); err != nil {
		return err
	}

	app := initializeApp(db, logger, clock, m)
	srv := newServer(cfg, app.routes(), logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", "addr", srv.Addr, "time_zone", clock.Location().String(), "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
