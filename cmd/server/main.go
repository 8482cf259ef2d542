package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	stdlog "github.com/rs/zerolog/log"
	"github.com/stemsi/arabic-learning-backend/internal/config"
	"github.com/stemsi/arabic-learning-backend/internal/database"
	"github.com/stemsi/arabic-learning-backend/internal/handler"
	"github.com/stemsi/arabic-learning-backend/internal/logger"
	"github.com/stemsi/arabic-learning-backend/internal/metrics"
	"github.com/stemsi/arabic-learning-backend/internal/middleware"
	"github.com/stemsi/arabic-learning-backend/internal/repository"
	"github.com/stemsi/arabic-learning-backend/internal/router"
	"github.com/stemsi/arabic-learning-backend/internal/service"
	"github.com/stemsi/arabic-learning-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("env", cfg.AppEnv).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Arabic Learning API")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── PostgreSQL (connected lazily on first query) ──────────────────
	db := database.New(cfg, log)
	defer db.Close()

	// ─── Connect to Redis (optional) ───────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, rate limit counts stay in memory")
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	studentRepo := repository.NewStudentRepository(db)
	contentRepo := repository.NewContentRepository(db)
	resultRepo := repository.NewQuizResultRepository(db)

	// ─── Initialize Services ──────────────────────────────────────────
	studentService := service.NewStudentService(studentRepo, db, log)
	contentService := service.NewContentService(contentRepo, db, log)
	resultService := service.NewQuizResultService(resultRepo, db, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		API:        handler.NewAPIHandler(db),
		Student:    handler.NewStudentHandler(studentService, cfg.StrictNotFound),
		Content:    handler.NewContentHandler(contentService, cfg.StrictNotFound),
		QuizResult: handler.NewQuizResultHandler(resultService),
	}

	// ─── Optional Collaborators ───────────────────────────────────────
	var opts router.Options
	if cfg.RateLimitPerMinute > 0 {
		var counter middleware.Counter = middleware.NewMemoryCounter()
		if rdb != nil {
			counter = middleware.NewRedisCounter(rdb)
		}
		opts.Limiter = middleware.NewRateLimiter(counter, cfg.RateLimitPerMinute, time.Minute, log)
	}
	if cfg.MetricsEnabled {
		opts.Metrics = metrics.New()
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r, err := router.SetupRouter(handlers, cfg, log, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid route table")
	}

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
