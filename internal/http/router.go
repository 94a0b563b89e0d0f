// Package http wires the public API routes.
package http

import (
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/openants/internal/http/handlers"
	"github.com/UnknownOlympus/openants/internal/http/middleware"
	"github.com/gin-gonic/gin"
)

// NewRouter registers the API routes on a fresh gin engine.
func NewRouter(log *slog.Logger, svc handlers.NearbyService) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(log), middleware.Logging(log))

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	locationHandler := handlers.NewLocationHandler(svc, log)
	nearbyHandler := handlers.NewNearbyHandler(svc)

	users := router.Group("/api/v1/users/:id")
	users.PUT("/location", locationHandler.Update)
	users.GET("/location", locationHandler.Get)
	users.DELETE("/location", locationHandler.Delete)
	users.POST("/location/geocode", locationHandler.Geocode)
	users.GET("/nearby", nearbyHandler.List)

	return router
}
