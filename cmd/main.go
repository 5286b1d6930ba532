package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"joblink"
	"joblink/internal/api/handler/endpoints"
	"joblink/internal/api/repo"
	"joblink/internal/api/service"
	"joblink/internal/email"
	"joblink/internal/events"
	"joblink/internal/kvstore"
	"joblink/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
)

func main() {
	joblink.InitConfig(".env")
	gin.SetMode(gin.ReleaseMode)

	cfg := joblink.GetConfig()
	if cfg.Mode == "dev" {
		gin.SetMode(gin.DebugMode)
	}

	store := buildStore(cfg)

	publisher, err := events.NewPublisher(cfg.NatsURL, joblink.Logger)
	if err != nil {
		joblink.Logger.Fatal().Err(err).Msg("Failed to connect to NATS")
	}
	defer publisher.Close()
	notifier := email.NewNotifier(cfg, joblink.Logger)

	userRepo := repo.NewUserRepository(store)
	jobRepo := repo.NewJobRepository(store)
	applicationRepo := repo.NewApplicationRepository(store)
	feedbackRepo := repo.NewFeedbackRepository(store)

	authService := service.NewAuthService(userRepo)
	jobService := service.NewJobService(jobRepo, userRepo, publisher)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, userRepo, publisher, notifier)
	feedbackService := service.NewFeedbackService(feedbackRepo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	router, err := graceful.Default(graceful.WithAddr(cfg.ApiPort))
	if err != nil {
		panic(err)
	}
	defer stop()
	defer router.Close()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	endpoints.AuthHandler(router, authService)
	endpoints.JobHandler(router, jobService)
	endpoints.ApplicationHandler(router, applicationService)
	endpoints.FeedbackHandler(router, feedbackService)

	joblink.Logger.Debug().Msgf("Starting JobLink API on port %s", cfg.ApiPort)
	if err = router.RunWithContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		joblink.Logger.Fatal().Msg(err.Error())
		panic(err)
	}
}

func buildStore(cfg joblink.AppConfig) kvstore.Store {
	switch cfg.KVBackend {
	case "redis":
		return kvstore.NewRedisStore(joblink.Redis)
	case "memory":
		joblink.Logger.Warn().Msg("Using in-memory store, data will not survive a restart")
		return kvstore.NewMemoryStore()
	default:
		store := kvstore.NewPostgresStore(joblink.DB)
		pkg.AssertNoError(store.Migrate())
		return store
	}
}
