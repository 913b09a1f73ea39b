package main

import (
	"net/http"
	"time"

	"contact-relay/handlers"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const version = "1.0.0"

// newRouter builds the gin engine with logging, recovery and CORS for every
// origin, then registers the API.
func newRouter(log *zap.Logger, debug bool, contact *handlers.ContactHandler) *gin.Engine {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		ginzap.Ginzap(log, time.RFC3339, true),
		ginzap.RecoveryWithZap(log, true),
		cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", handlers.IdempotencyKeyHeader},
			MaxAge:          12 * time.Hour,
		}),
	)

	registerAPIs(r, contact)
	return r
}

// registerAPIs registers HTTP handlers on the provided gin Engine.
func registerAPIs(r *gin.Engine, contact *handlers.ContactHandler) {
	// Health check endpoint
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "contact relay",
			"version": version,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterContactRoutes(r, contact)
}
