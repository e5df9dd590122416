package main

import (
	"io"
	"log/slog"
	"miniSheet/contracts"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ApiVersion = "v1"

const RequestIdHeader = "X-Request-Id"

const requestIdContextKey = "request_id"

const subscribePath = "subscribe"

func SetupRouter(controller contracts.ApiController, logger *slog.Logger) *gin.Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestIdMiddleware(), requestLoggerMiddleware(logger))

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.POST("/cells/:cell_id/"+subscribePath, controller.SubscribeAction)
	apiRouterGroup.POST("/cells/:cell_id", controller.SetCellAction)
	apiRouterGroup.GET("/cells/:cell_id", controller.GetCellAction)
	apiRouterGroup.GET("/cells", controller.GetGridAction)
	apiRouterGroup.POST("/evaluate", controller.EvaluateAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}

// requestIdMiddleware keeps an incoming X-Request-Id or issues a new one
func requestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(RequestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}

		c.Set(requestIdContextKey, requestId)
		c.Header(RequestIdHeader, requestId)
		c.Next()
	}
}

func requestLoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			"request_id", c.GetString(requestIdContextKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
