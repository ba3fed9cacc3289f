// Package app assembles the application: configuration, logging, database,
// services, and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/daymentor/mentor-backend/internal/adapter/anthropic"
	"github.com/daymentor/mentor-backend/internal/adapter/postgres"
	dailylogrepo "github.com/daymentor/mentor-backend/internal/adapter/postgres/dailylog"
	feedbackrepo "github.com/daymentor/mentor-backend/internal/adapter/postgres/feedback"
	routinerepo "github.com/daymentor/mentor-backend/internal/adapter/postgres/routine"
	userrepo "github.com/daymentor/mentor-backend/internal/adapter/postgres/user"
	"github.com/daymentor/mentor-backend/internal/auth"
	"github.com/daymentor/mentor-backend/internal/config"
	authsvc "github.com/daymentor/mentor-backend/internal/service/auth"
	dailylogsvc "github.com/daymentor/mentor-backend/internal/service/dailylog"
	feedbacksvc "github.com/daymentor/mentor-backend/internal/service/feedback"
	routinesvc "github.com/daymentor/mentor-backend/internal/service/routine"
	"github.com/daymentor/mentor-backend/internal/textgen"
	"github.com/daymentor/mentor-backend/internal/transport/middleware"
	"github.com/daymentor/mentor-backend/internal/transport/rest"
)

// Run is the application entry point. It blocks until ctx is cancelled,
// then shuts the HTTP server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("mentor_llm", cfg.Mentor.Enabled()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := Migrate(ctx, cfg.Database); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	users := userrepo.New(pool)
	routines := routinerepo.New(pool)
	dailyLogs := dailylogrepo.New(pool)
	feedback := feedbackrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	var gen textgen.Generator
	if cfg.Mentor.Enabled() {
		gen = anthropic.New(cfg.Mentor, logger)
	}

	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth.PasswordHashCost)
	routineService := routinesvc.NewService(logger, routines, users, postgres.NewTxManager(pool), gen)
	dailyLogService := dailylogsvc.NewService(logger, dailyLogs, routines)
	feedbackService := feedbacksvc.NewService(logger, feedback, dailyLogs, routines, users, gen)

	mux := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(authService, logger),
		Routine:  rest.NewRoutineHandler(routineService, logger),
		DailyLog: rest.NewDailyLogHandler(dailyLogService, logger),
		Feedback: rest.NewFeedbackHandler(feedbackService, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimit),
		middleware.Auth(authService),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
