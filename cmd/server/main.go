package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reelify/reelify-backend/internal/config"
	"github.com/reelify/reelify-backend/internal/database"
	"github.com/reelify/reelify-backend/internal/handler"
	"github.com/reelify/reelify-backend/internal/logger"
	"github.com/reelify/reelify-backend/internal/repository"
	"github.com/reelify/reelify-backend/internal/router"
	"github.com/reelify/reelify-backend/internal/service"
	"github.com/reelify/reelify-backend/internal/validator"
	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v76/client"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Reelify Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Stripe Client ──────────────────────────────────────
	sc := &client.API{}
	sc.Init(cfg.StripeSecretKey, nil)
	if cfg.StripeSecretKey == "" {
		log.Warn().Msg("STRIPE_SECRET_KEY is empty; payment intents will fail")
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	selectionRepo := repository.NewSelectionRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	userService := service.NewUserService(userRepo, authService, rdb, log)
	classService := service.NewClassService(classRepo, rdb, log)
	selectionService := service.NewSelectionService(selectionRepo)
	enrollmentService := service.NewEnrollmentService(pool, enrollmentRepo, selectionRepo, classRepo, rdb, log)
	paymentService := service.NewPaymentService(sc, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		User:       handler.NewUserHandler(userService),
		Class:      handler.NewClassHandler(classService, userService, cfg.PopularLimit),
		Selection:  handler.NewSelectionHandler(selectionService),
		Enrollment: handler.NewEnrollmentHandler(enrollmentService),
		Payment:    handler.NewPaymentHandler(paymentService),
		WS:         handler.NewWSHandler(rdb, classService, log, cfg.AllowedOrigins),
	}

	// ─── Prewarm Redis Caches ─────────────────────────────────────────
	if err := classService.PrewarmPopularCache(ctx, cfg.PopularLimit); err != nil {
		log.Warn().Err(err).Msg("Cache prewarm failed")
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, userService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
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
