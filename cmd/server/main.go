package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wblg/bookquiz/internal/api"
	"github.com/wblg/bookquiz/internal/config"
	"github.com/wblg/bookquiz/internal/db"
	"github.com/wblg/bookquiz/internal/logger"
	"github.com/wblg/bookquiz/internal/repository/sqlite"
	"github.com/wblg/bookquiz/internal/services"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("bookquiz server starting")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("cors_origins=%v", cfg.CORSOrigins)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	sessionRepo := sqlite.NewSessionRepository(database.DB)
	bookRepo := sqlite.NewBookRepository(database.DB)
	resultRepo := sqlite.NewResultRepository(database.DB)

	srv := &api.Server{
		SessionService:  services.NewSessionService(sessionRepo),
		CatalogService:  services.NewCatalogService(bookRepo),
		ProgressService: services.NewProgressService(resultRepo),
		SummaryService:  services.NewSummaryService(bookRepo, resultRepo),
		ResultService:   services.NewResultService(resultRepo),
		AllowedOrigins:  cfg.CORSOrigins,
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("bookquiz server stopped")
}
