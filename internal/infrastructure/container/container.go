package container

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gdugdh24/mpit2026-discovery/internal/categorizer"
	"github.com/gdugdh24/mpit2026-discovery/internal/config"
	"github.com/gdugdh24/mpit2026-discovery/internal/delivery/http"
	"github.com/gdugdh24/mpit2026-discovery/internal/delivery/http/handler"
	"github.com/gdugdh24/mpit2026-discovery/internal/delivery/http/middleware"
	"github.com/gdugdh24/mpit2026-discovery/internal/infrastructure/database"
	"github.com/gdugdh24/mpit2026-discovery/internal/infrastructure/gemini"
	"github.com/gdugdh24/mpit2026-discovery/internal/infrastructure/server"
	"github.com/gdugdh24/mpit2026-discovery/internal/repository/postgres"
	"github.com/gdugdh24/mpit2026-discovery/internal/repository/rediscache"
	"github.com/gdugdh24/mpit2026-discovery/internal/usecase/event"
	"github.com/gdugdh24/mpit2026-discovery/internal/usecase/feed"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient
	Logger zerolog.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	c := &Container{
		Config: cfg,
		DB:     db,
		Logger: logger,
	}

	classifierOpts := []categorizer.Option{
		categorizer.WithLogger(logger),
		categorizer.WithMaxOutputTokens(int32(cfg.Classifier.MaxOutputTokens)),
		categorizer.WithTimeout(cfg.Classifier.Timeout),
	}

	// Redis only backs the category cache; the service works without it
	if cfg.Redis.Enabled {
		redisClient, err := database.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, category cache disabled")
		} else {
			c.Redis = redisClient
			classifierOpts = append(classifierOpts,
				categorizer.WithCache(rediscache.NewCategoryCache(redisClient, cfg.Classifier.CacheTTL)))
		}
	}

	// Without a Gemini client every event is stored as Uncategorized
	var textClassifier categorizer.TextClassifier
	if cfg.Gemini.APIKey != "" {
		geminiClient, err := gemini.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, gemini.BreakerConfig{
			FailureThreshold: uint32(cfg.Classifier.BreakerFailures),
			OpenTimeout:      cfg.Classifier.BreakerOpenDelay,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialize gemini client")
		} else {
			c.Gemini = geminiClient
			textClassifier = geminiClient
		}
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set, events will not be categorized")
	}

	// Initialize repositories
	profileRepo := postgres.NewProfileRepository(db)
	eventRepo := postgres.NewEventRepository(db)

	// Initialize use cases
	classifier := categorizer.New(textClassifier, classifierOpts...)

	feedUseCase := feed.NewFeedUseCase(
		profileRepo,
		cfg.Discovery.CandidateLimit,
		cfg.Discovery.NewcomerWindowDays,
		time.Now,
	)

	eventUseCase := event.NewEventUseCase(
		eventRepo,
		classifier,
		cfg.Discovery.NewcomerWindowDays,
		time.Now,
	)

	// Initialize handlers
	feedHandler := handler.NewFeedHandler(feedUseCase)
	eventHandler := handler.NewEventHandler(eventUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.AccessSecret)

	// Initialize router
	router := http.NewRouter(
		feedHandler,
		eventHandler,
		authMiddleware,
		logger,
	)

	// Initialize server
	c.Server = server.NewServer(&cfg.Server, router.Setup(), logger)

	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Error().Err(err).Msg("error closing redis")
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
