// Package api exposes the prediction form and endpoint over HTTP.
package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterConfig struct {
	AllowedOrigins []string
	// HealthCheck mounts GET /health next to the form and predict routes.
	HealthCheck    bool
}

func NewRouter(cfg RouterConfig, logger *zap.SugaredLogger, h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(
		requestID(logger),
		requestLogger(),
		recovery(),
		corsMiddleware(cfg.AllowedOrigins),
	)

	r.GET("/", h.IndexHandler)
	r.POST("/predict", h.PredictHandler)
	if cfg.HealthCheck {
		r.GET("/health", h.HealthHandler)
	}

	return r
}
