// @title Podcast Processing API
// @version 1.0.9
// @description API for transcribing, summarizing, and generating quizzes from podcasts.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8000
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "podcast-quiz/cmd/api/docs"
	"podcast-quiz/internal/adapter/llm"
	"podcast-quiz/internal/adapter/notifier"
	"podcast-quiz/internal/adapter/quizstore"
	"podcast-quiz/internal/adapter/transcription"
	"podcast-quiz/internal/cache"
	"podcast-quiz/internal/config"
	"podcast-quiz/internal/database"
	"podcast-quiz/internal/domain"
	"podcast-quiz/internal/handler"
	"podcast-quiz/internal/logger"
	"podcast-quiz/internal/middleware"
	"podcast-quiz/internal/repository"
	"podcast-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database and make sure the schema exists
	db, err := database.NewSQLXDB(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.NewMigrator(db, cfg.DB.Driver).Up(); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	podcastRepository := repository.NewPodcastRepository(db)

	quizStore, closeStore, err := newQuizStore(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create quiz store", zap.Error(err))
	}
	defer closeStore()

	textGenerator, err := llm.NewTextGenerator(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	appLogger.Info("LLM client initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model))

	transcriber, err := transcription.NewTranscriber(cfg.Transcription)
	if err != nil {
		appLogger.Fatal("Failed to create transcriber", zap.Error(err))
	}
	appLogger.Info("Transcriber initialized", zap.String("provider", cfg.Transcription.Provider))

	mailer, err := newNotifier(cfg)
	if err != nil {
		appLogger.Fatal("Failed to create notifier", zap.Error(err))
	}

	// Initialize services
	contentGenerator := service.NewContentGenerator(textGenerator, cfg)
	podcastService := service.NewPodcastService(transcriber, contentGenerator, podcastRepository, mailer, cfg)
	quizService := service.NewQuizService(contentGenerator, quizStore)

	// Initialize handlers
	podcastHandler := handler.NewPodcastHandler(podcastService)
	quizHandler := handler.NewQuizHandler(quizService)

	app := fiber.New(fiber.Config{
		AppName:      "Podcast Processing API " + handler.Version,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app, podcastHandler, quizHandler)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})

	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if cfg.Digest.Enabled {
		digest := service.NewDigestService(podcastRepository, mailer, cfg.Digest)
		g.Go(func() error {
			return digest.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Server stopped with error", zap.Error(err))
		os.Exit(1)
	}
	appLogger.Info("Server exited gracefully")
}

func newQuizStore(ctx context.Context, cfg *config.Config) (domain.QuizStore, func(), error) {
	if cfg.QuizStore.Backend != "redis" {
		logger.Get().Info("Using in-memory quiz store")
		return quizstore.NewMemoryQuizStore(), func() {}, nil
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	logger.Get().Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))

	closeFn := func() {
		if err := redisClient.Close(); err != nil {
			logger.Get().Warn("Failed to close Redis client", zap.Error(err))
		}
	}
	return quizstore.NewRedisQuizStore(redisClient, cfg.QuizStore.TTL), closeFn, nil
}

func newNotifier(cfg *config.Config) (domain.Notifier, error) {
	if cfg.SMTP.Host == "" {
		logger.Get().Warn("SMTP host not configured, emails will only be logged")
		return notifier.NewLogNotifier(), nil
	}
	smtpNotifier, err := notifier.NewSMTPNotifier(cfg.SMTP)
	if err != nil {
		return nil, err
	}
	return smtpNotifier, nil
}
