package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gdugdh24/mpit2026-discovery/internal/delivery/http/handler"
	"github.com/gdugdh24/mpit2026-discovery/internal/delivery/http/middleware"
)

type Router struct {
	feedHandler    *handler.FeedHandler
	eventHandler   *handler.EventHandler
	authMiddleware *middleware.AuthMiddleware
	logger         zerolog.Logger
}

func NewRouter(
	feedHandler *handler.FeedHandler,
	eventHandler *handler.EventHandler,
	authMiddleware *middleware.AuthMiddleware,
	logger zerolog.Logger,
) *Router {
	return &Router{
		feedHandler:    feedHandler,
		eventHandler:   eventHandler,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(r.logger), middleware.AccessLog())

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1
	v1 := router.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(r.authMiddleware.RequireAuth())
	{
		discovery := protected.Group("/discovery")
		{
			discovery.GET("/recommendations", r.feedHandler.GetRecommendations)
			discovery.GET("/newcomers", r.feedHandler.GetNewcomers)
			discovery.GET("/distance", r.feedHandler.GetDistance)
		}

		events := protected.Group("/events")
		{
			events.POST("", r.eventHandler.CreateEvent)
			events.GET("/upcoming", r.eventHandler.GetUpcoming)
			events.GET("/newcomers", r.eventHandler.GetNewcomers)
			events.POST("/classify", r.eventHandler.Classify)
			events.POST("/:id/categorize", r.eventHandler.Recategorize)
		}
	}

	return router
}
