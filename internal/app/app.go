package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/studhub/eventrec/internal/config"
	"github.com/studhub/eventrec/internal/handlers"
	"github.com/studhub/eventrec/internal/messaging"
	"github.com/studhub/eventrec/internal/middleware"
	"github.com/studhub/eventrec/internal/recommender"
	"github.com/studhub/eventrec/internal/reference"
	"github.com/studhub/eventrec/internal/validation"
)

type App struct {
	config    *config.Config
	logger    *logrus.Logger
	redis     *redis.Client
	publisher *messaging.Publisher
	handlers  *handlers.Handlers
	router    *gin.Engine
}

func New(cfg *config.Config) (*App, error) {
	app := &App{
		config: cfg,
		logger: setupLogger(cfg),
	}

	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis url: %w", err)
		}
		opts.MaxRetries = cfg.Redis.MaxRetries
		opts.PoolSize = cfg.Redis.PoolSize
		app.redis = redis.NewClient(opts)
	}

	app.publisher = messaging.NewPublisher(&cfg.Kafka, app.logger)

	requestValidator, err := validation.NewRequestValidator(reference.Skills)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize request validator: %w", err)
	}
	schemaValidator, err := validation.NewSchemaValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize schema validator: %w", err)
	}

	engine := recommender.New(&cfg.Recommendation, reference.Universities, app.logger)
	cache := recommender.NewResultCache(app.redis, cfg.Redis.CacheTTL, app.logger)

	app.handlers = handlers.New(
		cfg, app.logger, engine, cache, app.publisher,
		requestValidator, reference.Skills, reference.Universities,
	)

	app.setupRouter(schemaValidator)

	return app, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application...")

	if err := a.publisher.Close(); err != nil {
		a.logger.WithError(err).Error("Error closing Kafka publisher")
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.WithError(err).Error("Error closing Redis client")
			return err
		}
	}

	return nil
}

func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

func (a *App) setupRouter(schemaValidator *validation.SchemaValidator) {
	if a.config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Logger(a.logger))
	router.Use(middleware.Recovery(a.logger))
	router.Use(middleware.CORS(a.config))

	router.GET("/health", a.handlers.Health.Check)

	if a.config.Monitoring.Enabled {
		router.GET(a.config.Monitoring.MetricsPath, gin.WrapH(promhttp.Handler()))
	}

	api := router.Group("/api/v1")
	{
		api.Use(middleware.Auth(&a.config.Auth, a.logger))

		api.POST("/recommendations",
			middleware.ValidateRequestBody(schemaValidator),
			a.handlers.Recommendation.Recommend,
		)

		api.GET("/skills", a.handlers.Reference.Skills)
		api.GET("/universities", a.handlers.Reference.Universities)
	}

	a.router = router
}
