package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/trashtocash/admin-api/internal/business/dashboard"
	"github.com/trashtocash/admin-api/internal/business/report"
	"github.com/trashtocash/admin-api/internal/business/reviews"
	"github.com/trashtocash/admin-api/internal/business/staff"
	"github.com/trashtocash/admin-api/internal/platform/config"
	firestoreclient "github.com/trashtocash/admin-api/internal/platform/firestore"
	apirouter "github.com/trashtocash/admin-api/internal/platform/http"
	"github.com/trashtocash/admin-api/internal/platform/logging"
	"github.com/trashtocash/admin-api/internal/repository"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		log := logging.New("info", "console")
		log.Error().Err(err).Msg("server failed")
		os.Exit(1)
	}
}

// run serves the API until ctx is cancelled. Deferred cleanup always runs
// before main decides the exit code.
func run(ctx context.Context) error {
	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	ctx = logging.WithContext(ctx, log)

	scoring, err := config.LoadScoring(cfg.ScoringFile)
	if err != nil {
		return fmt.Errorf("scoring load: %w", err)
	}

	gin.SetMode(cfg.GinMode)

	firestoreClient, credsSource, err := firestoreclient.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("firestore init: %w", err)
	}
	defer firestoreClient.Close()

	if err := firestoreclient.Ping(ctx, firestoreClient); err != nil {
		return fmt.Errorf("firestore ping: %w", err)
	}
	log.Info().
		Str("project", cfg.FirebaseProjectID).
		Str("credentials", credsSource).
		Msg("connected to Firestore")

	transactionRepo := repository.NewTransactionRepository(firestoreClient)
	reviewRepo := repository.NewReviewRepository(firestoreClient)
	userRepo := repository.NewUserRepository(firestoreClient)

	normalizer := report.NewNormalizer(scoring.Weights, scoring.Aliases)
	reports := report.NewService(transactionRepo, normalizer, cfg.Location)
	reviewSvc := reviews.NewService(reviewRepo, cfg.Location)
	staffSvc := staff.NewService(userRepo, cfg.EmployeeRole, cfg.Location)

	router := apirouter.NewRouter(apirouter.Services{
		Dashboard: dashboard.NewService(reports, reviewSvc, staffSvc),
		Reports:   reports,
		Reviews:   reviewSvc,
		Staff:     staffSvc,
	}, apirouter.Options{
		AllowedOrigins:   cfg.Origins(),
		ReviewRatePerSec: cfg.ReviewRatePerSec,
		ReviewRateBurst:  cfg.ReviewRateBurst,
		Logger:           log,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()
	log.Info().Str("port", cfg.Port).Str("timezone", cfg.DisplayTimezone).Msg("server listening")

	select {
	case err := <-serveErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info().Msg("server exited")
	return nil
}
