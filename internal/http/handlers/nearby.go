package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/UnknownOlympus/openants/internal/models"
	"github.com/UnknownOlympus/openants/internal/proximity"
	"github.com/UnknownOlympus/openants/internal/service"
	"github.com/gin-gonic/gin"
)

// NearbyHandler serves the ranked list of users around the caller.
type NearbyHandler struct {
	svc NearbyService
}

// NewNearbyHandler creates a NearbyHandler backed by svc.
func NewNearbyHandler(svc NearbyService) *NearbyHandler {
	return &NearbyHandler{svc: svc}
}

type nearbyResponse struct {
	Candidates []models.ScoredCandidate `json:"candidates"`
}

// List handles GET /api/v1/users/:id/nearby?radius=&sort=&limit=.
// Missing parameters fall back to the service defaults.
func (h *NearbyHandler) List(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	query := service.NearbyQuery{UserID: id}

	if raw := c.Query("radius"); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil || radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
			writeError(c, http.StatusBadRequest, "invalid radius")
			return
		}
		query.RadiusMeters = radius
	}

	if raw := c.Query("sort"); raw != "" {
		key, err := proximity.ParseSortKey(raw)
		if err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		query.SortBy = key
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(c, http.StatusBadRequest, "invalid limit")
			return
		}
		query.Limit = limit
	}

	candidates, err := h.svc.FindNearby(c.Request.Context(), query)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, nearbyResponse{Candidates: candidates})
}
