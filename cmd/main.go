package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feedback_app/internal/config"
	"feedback_app/internal/handlers"
	"feedback_app/internal/logger"
	"feedback_app/internal/repository"
	"feedback_app/internal/repository/db"
	"feedback_app/internal/server"
	"feedback_app/internal/service"
	"feedback_app/internal/session"
)

const shutdownTimeout = 10 * time.Second

// @title        Feedback API
// @version      1.0
// @description  Server-rendered feedback app: accounts, sessions and per-user feedback notes.
// @BasePath     /
func main() {
	cfg, err := config.Load("configs")
	if err != nil {
		logger.New(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.New(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	dialect, err := repository.ParseDialect(cfg.DB.Driver)
	if err != nil {
		log.Fatalw("invalid db driver", "err", err)
	}

	conn, err := openDB(dialect, cfg.DB.Source(), log)
	if err != nil {
		log.Fatalw("failed to open database", "driver", dialect, "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close database", "err", cerr)
		}
	}()

	sessions, err := session.NewManager(session.Options{
		Secret:     cfg.Session.Secret,
		CookieName: cfg.Session.CookieName,
		TTL:        cfg.Session.TTL,
		Secure:     cfg.Session.Secure,
	})
	if err != nil {
		log.Fatalw("failed to init sessions", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(conn, dialect)
	services := service.NewService(repos, service.NewBcryptHasher(cfg.Security.BcryptCost))
	h := handlers.NewHandler(services, sessions, log)

	srv := server.New(cfg.Port, h.InitRoutes())
	runHTTPServer(srv, log)

	waitForShutdown(srv, log)
}

func openDB(dialect repository.Dialect, source string, log *logger.Logger) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	conn, err := db.Open(ctx, dialect, source)
	if err != nil {
		return nil, err
	}
	log.Infow("database ready", "driver", dialect)
	return conn, nil
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, log *logger.Logger) {
	go func() {
		log.Infow("server listening", "addr", srv.Addr())
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown blocks until SIGINT/SIGTERM, then drains in-flight requests.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
