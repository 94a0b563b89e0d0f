// Package handlers holds the gin handlers of the public API.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/UnknownOlympus/openants/internal/cache"
	"github.com/UnknownOlympus/openants/internal/geocoding"
	"github.com/UnknownOlympus/openants/internal/models"
	"github.com/UnknownOlympus/openants/internal/proximity"
	"github.com/UnknownOlympus/openants/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NearbyService is the part of service.NearbyService the handlers use.
type NearbyService interface {
	UpdateLocation(ctx context.Context, userID uuid.UUID, sample models.LocationSample) error
	CurrentLocation(ctx context.Context, userID uuid.UUID) (models.LocationSample, error)
	ClearLocation(ctx context.Context, userID uuid.UUID) error
	GeocodeLocation(ctx context.Context, userID uuid.UUID, address string) (models.LocationSample, error)
	FindNearby(ctx context.Context, query service.NearbyQuery) ([]models.ScoredCandidate, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

// writeServiceError maps service errors to HTTP status codes.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidCoordinates),
		errors.Is(err, proximity.ErrUnknownSortKey),
		errors.Is(err, geocoding.ErrEmptyAddress):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrLocationUnknown):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, cache.ErrStaleSample):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrAddressNotFound):
		writeError(c, http.StatusUnprocessableEntity, service.ErrAddressNotFound.Error())
	case errors.Is(err, service.ErrGeocoderFailed):
		writeError(c, http.StatusBadGateway, service.ErrGeocoderFailed.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

// userID parses the :id path parameter and writes a 400 when it is not a UUID.
func userID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid user id")
		return uuid.Nil, false
	}
	return id, true
}
