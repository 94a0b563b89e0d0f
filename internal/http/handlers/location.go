package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/openants/internal/models"
	"github.com/gin-gonic/gin"
)

// LocationHandler serves the endpoints that read and write a user's current location.
type LocationHandler struct {
	svc NearbyService
	log *slog.Logger
}

// NewLocationHandler creates a LocationHandler backed by svc.
func NewLocationHandler(svc NearbyService, log *slog.Logger) *LocationHandler {
	return &LocationHandler{svc: svc, log: log}
}

type updateLocationRequest struct {
	Latitude  *float64  `json:"latitude"  binding:"required"`
	Longitude *float64  `json:"longitude" binding:"required"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}

type geocodeRequest struct {
	Address string `json:"address" binding:"required"`
}

// Update handles PUT /api/v1/users/:id/location.
func (h *LocationHandler) Update(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var req updateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	sample := models.LocationSample{
		Coordinates: models.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude},
		Accuracy:    req.Accuracy,
		Timestamp:   req.Timestamp,
	}
	if err := h.svc.UpdateLocation(c.Request.Context(), id, sample); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Get handles GET /api/v1/users/:id/location.
func (h *LocationHandler) Get(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	sample, err := h.svc.CurrentLocation(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sample)
}

// Delete handles DELETE /api/v1/users/:id/location.
func (h *LocationHandler) Delete(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	if err := h.svc.ClearLocation(c.Request.Context(), id); err != nil {
		h.log.ErrorContext(c.Request.Context(), "Failed to clear location", "user", id, "error", err)
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Geocode handles POST /api/v1/users/:id/location/geocode.
func (h *LocationHandler) Geocode(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var req geocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	sample, err := h.svc.GeocodeLocation(c.Request.Context(), id, req.Address)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sample)
}
