package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/UnknownOlympus/openants/internal/cache"
	"github.com/UnknownOlympus/openants/internal/http/handlers"
	"github.com/UnknownOlympus/openants/internal/models"
	"github.com/UnknownOlympus/openants/internal/proximity"
	"github.com/UnknownOlympus/openants/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const rawUserID = "8a1d3f0e-6a4b-4a43-9c2e-0a8b2f7f2a11"

var userID = uuid.MustParse(rawUserID)

type mockNearbyService struct {
	mock.Mock
}

func (m *mockNearbyService) UpdateLocation(ctx context.Context, id uuid.UUID, sample models.LocationSample) error {
	return m.Called(ctx, id, sample).Error(0)
}

func (m *mockNearbyService) CurrentLocation(ctx context.Context, id uuid.UUID) (models.LocationSample, error) {
	args := m.Called(ctx, id)
	sample, _ := args.Get(0).(models.LocationSample)
	return sample, args.Error(1)
}

func (m *mockNearbyService) ClearLocation(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockNearbyService) GeocodeLocation(
	ctx context.Context,
	id uuid.UUID,
	address string,
) (models.LocationSample, error) {
	args := m.Called(ctx, id, address)
	sample, _ := args.Get(0).(models.LocationSample)
	return sample, args.Error(1)
}

func (m *mockNearbyService) FindNearby(ctx context.Context, query service.NearbyQuery) ([]models.ScoredCandidate, error) {
	args := m.Called(ctx, query)
	candidates, _ := args.Get(0).([]models.ScoredCandidate)
	return candidates, args.Error(1)
}

func buildTestRouter(svc handlers.NearbyService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	location := handlers.NewLocationHandler(svc, slog.Default())
	nearby := handlers.NewNearbyHandler(svc)
	router.PUT("/users/:id/location", location.Update)
	router.GET("/users/:id/location", location.Get)
	router.DELETE("/users/:id/location", location.Delete)
	router.POST("/users/:id/location/geocode", location.Geocode)
	router.GET("/users/:id/nearby", nearby.List)

	return router
}

func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLocationHandler_Update(t *testing.T) {
	timestamp := time.Date(2024, time.March, 14, 9, 30, 0, 0, time.UTC)
	body := map[string]any{
		"latitude":  51.5074,
		"longitude": -0.1278,
		"accuracy":  8.5,
		"timestamp": timestamp,
	}
	sample := models.LocationSample{
		Coordinates: models.Coordinates{Latitude: 51.5074, Longitude: -0.1278},
		Accuracy:    8.5,
		Timestamp:   timestamp,
	}

	t.Run("successful update", func(t *testing.T) {
		svc := &mockNearbyService{}
		svc.On("UpdateLocation", mock.Anything, userID, sample).Return(nil).Once()

		w := doRequest(buildTestRouter(svc), http.MethodPut, "/users/"+rawUserID+"/location", body)

		assert.Equal(t, http.StatusNoContent, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("invalid user id", func(t *testing.T) {
		svc := &mockNearbyService{}

		w := doRequest(buildTestRouter(svc), http.MethodPut, "/users/not-a-uuid/location", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"invalid user id"}`, w.Body.String())
		svc.AssertNotCalled(t, "UpdateLocation")
	})

	t.Run("missing latitude", func(t *testing.T) {
		svc := &mockNearbyService{}

		w := doRequest(buildTestRouter(svc), http.MethodPut, "/users/"+rawUserID+"/location",
			map[string]any{"longitude": -0.1278})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "UpdateLocation")
	})

	t.Run("zero coordinates are accepted", func(t *testing.T) {
		svc := &mockNearbyService{}
		zero := models.LocationSample{}
		svc.On("UpdateLocation", mock.Anything, userID, zero).Return(nil).Once()

		w := doRequest(buildTestRouter(svc), http.MethodPut, "/users/"+rawUserID+"/location",
			map[string]any{"latitude": 0, "longitude": 0})

		assert.Equal(t, http.StatusNoContent, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		svc := &mockNearbyService{}
		svc.On("UpdateLocation", mock.Anything, userID, mock.Anything).Return(models.ErrInvalidCoordinates).Once()

		w := doRequest(buildTestRouter(svc), http.MethodPut, "/users/"+rawUserID+"/location", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("stale sample", func(t *testing.T) {
		svc := &mockNearbyService{}
		svc.On("UpdateLocation", mock.Anything, userID, sample).Return(cache.ErrStaleSample).Once()

		w := doRequest(buildTestRouter(svc), http.MethodPut, "/users/"+rawUserID+"/location", body)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		svc := &mockNearbyService{}
		svc.On("UpdateLocation", mock.Anything, userID, sample).Return(assert.AnError).Once()

		w := doRequest(buildTestRouter(svc), http.MethodPut, "/users/"+rawUserID+"/location", body)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
	})
}

func TestLocationHandler_Get(t *testing.T) {
	t.Run("current location", func(t *testing.T) {
		svc := &mockNearbyService{}
		sample := models.LocationSample{
			Coordinates: models.Coordinates{Latitude: 51.5074, Longitude: -0.1278},
			Timestamp:   time.Date(2024, time.March, 14, 9, 30, 0, 0, time.UTC),
		}
		svc.On("CurrentLocation", mock.Anything, userID).Return(sample, nil).Once()

		w := doRequest(buildTestRouter(svc), http.MethodGet, "/users/"+rawUserID+"/location", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"latitude":51.5074,"longitude":-0.1278,"timestamp":"2024-03-14T09:30:00Z"}`,
			w.Body.String())
	})

	t.Run("location unknown", func(t *testing.T) {
		svc := &mockNearbyService{}
		svc.On("CurrentLocation", mock.Anything, userID).Return(models.LocationSample{}, service.ErrLocationUnknown).Once()

		w := doRequest(buildTestRouter(svc), http.MethodGet, "/users/"+rawUserID+"/location", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLocationHandler_Delete(t *testing.T) {
	svc := &mockNearbyService{}
	svc.On("ClearLocation", mock.Anything, userID).Return(nil).Once()

	w := doRequest(buildTestRouter(svc), http.MethodDelete, "/users/"+rawUserID+"/location", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	svc.AssertExpectations(t)
}

func TestLocationHandler_Geocode(t *testing.T) {
	path := "/users/" + rawUserID + "/location/geocode"

	t.Run("successful geocoding", func(t *testing.T) {
		svc := &mockNearbyService{}
		sample := models.LocationSample{
			Coordinates: models.Coordinates{Latitude: 51.5246, Longitude: -0.0786},
			Timestamp:   time.Date(2024, time.March, 14, 9, 30, 0, 0, time.UTC),
		}
		svc.On("GeocodeLocation", mock.Anything, userID, "Shoreditch, London").Return(sample, nil).Once()

		w := doRequest(buildTestRouter(svc), http.MethodPost, path, map[string]string{"address": "Shoreditch, London"})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"latitude":51.5246`)
	})

	t.Run("missing address", func(t *testing.T) {
		svc := &mockNearbyService{}

		w := doRequest(buildTestRouter(svc), http.MethodPost, path, map[string]string{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("address not found", func(t *testing.T) {
		svc := &mockNearbyService{}
		svc.On("GeocodeLocation", mock.Anything, userID, "Atlantis").
			Return(models.LocationSample{}, service.ErrAddressNotFound).Once()

		w := doRequest(buildTestRouter(svc), http.MethodPost, path, map[string]string{"address": "Atlantis"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("provider failure", func(t *testing.T) {
		svc := &mockNearbyService{}
		svc.On("GeocodeLocation", mock.Anything, userID, "London").
			Return(models.LocationSample{}, service.ErrGeocoderFailed).Once()

		w := doRequest(buildTestRouter(svc), http.MethodPost, path, map[string]string{"address": "London"})

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestNearbyHandler_List(t *testing.T) {
	path := "/users/" + rawUserID + "/nearby"
	candidates := []models.ScoredCandidate{{
		Candidate: models.Candidate{
			ID:       uuid.MustParse("2c9f4b8e-1d7a-4e55-8f0c-5b6a7d8e9f01"),
			Name:     "Ada",
			Position: models.Coordinates{Latitude: 51.5174, Longitude: -0.1278},
		},
		DistanceMeters: 1111.95,
		MatchScore:     89,
		ColorTag:       "indigo",
	}}

	t.Run("defaults", func(t *testing.T) {
		svc := &mockNearbyService{}
		svc.On("FindNearby", mock.Anything, service.NearbyQuery{UserID: userID}).Return(candidates, nil).Once()

		w := doRequest(buildTestRouter(svc), http.MethodGet, path, nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Candidates []models.ScoredCandidate `json:"candidates"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, candidates, resp.Candidates)
	})

	t.Run("query parameters", func(t *testing.T) {
		svc := &mockNearbyService{}
		expected := service.NearbyQuery{
			UserID:       userID,
			RadiusMeters: 2500,
			SortBy:       proximity.SortByMutualConnections,
			Limit:        10,
		}
		svc.On("FindNearby", mock.Anything, expected).Return([]models.ScoredCandidate{}, nil).Once()

		w := doRequest(buildTestRouter(svc), http.MethodGet, path+"?radius=2500&sort=mutual&limit=10", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"candidates":[]}`, w.Body.String())
	})

	for _, tc := range []struct {
		name  string
		query string
	}{
		{"non numeric radius", "?radius=far"},
		{"negative radius", "?radius=-5"},
		{"NaN radius", "?radius=NaN"},
		{"unknown sort", "?sort=age"},
		{"non numeric limit", "?limit=ten"},
		{"negative limit", "?limit=-1"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockNearbyService{}

			w := doRequest(buildTestRouter(svc), http.MethodGet, path+tc.query, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			svc.AssertNotCalled(t, "FindNearby")
		})
	}

	t.Run("location unknown", func(t *testing.T) {
		svc := &mockNearbyService{}
		svc.On("FindNearby", mock.Anything, service.NearbyQuery{UserID: userID}).
			Return(nil, service.ErrLocationUnknown).Once()

		w := doRequest(buildTestRouter(svc), http.MethodGet, path, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
