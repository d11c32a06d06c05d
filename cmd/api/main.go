package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pidgeonhole/rookery-api/internal/config"
	"github.com/pidgeonhole/rookery-api/internal/database"
	"github.com/pidgeonhole/rookery-api/internal/handler"
	"github.com/pidgeonhole/rookery-api/internal/middleware"
	"github.com/pidgeonhole/rookery-api/internal/models"
	"github.com/pidgeonhole/rookery-api/internal/repository"
	"github.com/pidgeonhole/rookery-api/internal/router"
	"github.com/pidgeonhole/rookery-api/internal/service"
	"github.com/pidgeonhole/rookery-api/pkg/identity"
	"github.com/pidgeonhole/rookery-api/pkg/owl"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Category{}, &models.Problem{}, &models.TestCase{}, &models.Submission{}, &models.Event{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var cache *redis.Client
	if cfg.RedisURL != "" {
		cache, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer cache.Close()
	} else {
		logger.Warn().Msg("redis url not configured, category listing cache disabled")
	}

	judge := owl.NewClient(cfg.OwlEndpoint, logger, owl.WithTimeout(cfg.OwlTimeout))
	identityClient := identity.NewClient(cfg.IdentityURL, logger)

	validate := validator.New(validator.WithRequiredStructEnabled())

	categoryRepo := repository.NewCategoryRepository(db)
	problemRepo := repository.NewProblemRepository(db)
	testCaseRepo := repository.NewTestCaseRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	eventRepo := repository.NewEventRepository(db)

	categoryService := service.NewCategoryService(categoryRepo, problemRepo, cache, cfg.CategoryCacheTTL, cfg.BasePath, logger)
	problemService := service.NewProblemService(problemRepo, testCaseRepo, submissionRepo, cfg.BasePath, logger)
	testCaseService := service.NewTestCaseService(testCaseRepo, logger)
	eventService := service.NewEventService(eventRepo, logger)
	submissionService := service.NewSubmissionService(submissionRepo, testCaseRepo, judge, validate, cfg.JudgeDebug, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		CategoryHandler: handler.NewCategoryHandler(categoryService, validate, logger),
		ProblemHandler:  handler.NewProblemHandler(problemService, submissionService, validate, logger),
		TestCaseHandler: handler.NewTestCaseHandler(testCaseService, validate, logger),
		EventHandler:    handler.NewEventHandler(eventService, validate, logger),
		LoginHandler:    handler.NewLoginHandler(identityClient, validate, logger),
		AuthMiddleware:  middleware.Authenticate(identityClient),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
