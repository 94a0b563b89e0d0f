package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/UnknownOlympus/openants/internal/cache"
	"github.com/UnknownOlympus/openants/internal/config"
	"github.com/UnknownOlympus/openants/internal/geocoding"
	"github.com/UnknownOlympus/openants/internal/metrics"
	"github.com/UnknownOlympus/openants/internal/models"
	"github.com/UnknownOlympus/openants/internal/proximity"
	"github.com/UnknownOlympus/openants/internal/repository"
	"github.com/google/uuid"
)

const (
	// candidateFetchLimit caps the rows loaded from the bounding box prefilter.
	// The repository returns the nearest rows first, so the cap drops the farthest ones.
	candidateFetchLimit = 1000
	// maxClockSkew is how far in the future a device timestamp may be.
	maxClockSkew = time.Minute
)

var (
	// ErrLocationUnknown is returned when neither the cache nor the profile holds a location.
	ErrLocationUnknown = errors.New("location of the user is unknown")
	// ErrAddressNotFound is returned when the geocoder has no match for an address.
	ErrAddressNotFound = errors.New("address not found")
	// ErrGeocoderFailed wraps any other geocoding provider failure.
	ErrGeocoderFailed = errors.New("geocoding provider failed")
)

// LocationStore keeps the current location sample of every user.
type LocationStore interface {
	Set(ctx context.Context, userID uuid.UUID, sample models.LocationSample) error
	Get(ctx context.Context, userID uuid.UUID) (models.LocationSample, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// NearbyQuery describes a "who is near me" request.
type NearbyQuery struct {
	UserID       uuid.UUID
	RadiusMeters float64           // <= 0 selects the configured default.
	SortBy       proximity.SortKey // Empty selects the configured default.
	Limit        int               // <= 0 selects the configured default.
}

// NearbyService keeps user locations and answers proximity queries
// on top of the profile repository.
type NearbyService struct {
	log          *slog.Logger         // Logger for logging service activities
	repo         repository.Interface // Profile and candidate storage
	store        LocationStore        // Current location samples
	provider     geocoding.Provider   // Address to coordinate resolution
	providerName string               // Name of the provider for metrics labeling
	metrics      *metrics.Metrics     // Metrics for tracking service performance
	cfg          config.NearbyConfig  // Query defaults and limits
	now          func() time.Time
}

// NewNearbyService creates a new instance of NearbyService.
func NewNearbyService(
	log *slog.Logger,
	repo repository.Interface,
	store LocationStore,
	provider geocoding.Provider,
	providerName string,
	metrics *metrics.Metrics,
	cfg config.NearbyConfig,
) *NearbyService {
	return &NearbyService{
		log:          log,
		repo:         repo,
		store:        store,
		provider:     provider,
		providerName: providerName,
		metrics:      metrics,
		cfg:          cfg,
		now:          time.Now,
	}
}

// UpdateLocation records sample as the user's current location. A zero timestamp
// is replaced with the current time and a timestamp further than maxClockSkew in
// the future is clamped to now. Samples that are not newer than the stored one
// are rejected with cache.ErrStaleSample.
//
// The profile row is written before the cache, so a failed write leaves the cache
// untouched and the same sample can be retried.
func (s *NearbyService) UpdateLocation(ctx context.Context, userID uuid.UUID, sample models.LocationSample) error {
	if err := sample.Validate(); err != nil {
		s.metrics.LocationUpdates.WithLabelValues("invalid").Inc()
		return err
	}

	now := s.now()
	switch {
	case sample.Timestamp.IsZero():
		sample.Timestamp = now
	case sample.Timestamp.After(now.Add(maxClockSkew)):
		s.log.WarnContext(ctx, "Location sample timestamp is in the future, clamping to now",
			"user", userID, "timestamp", sample.Timestamp)
		sample.Timestamp = now
	}
	sample.Timestamp = sample.Timestamp.UTC()

	if err := s.repo.UpdateLastLocation(ctx, userID, sample); err != nil {
		if errors.Is(err, repository.ErrLocationNotApplied) {
			s.metrics.LocationUpdates.WithLabelValues("stale").Inc()
			return fmt.Errorf("%w: %w", cache.ErrStaleSample, err)
		}
		s.metrics.LocationUpdates.WithLabelValues("failure").Inc()
		s.log.ErrorContext(ctx, "Failed to persist last location", "user", userID, "error", err)
		return err
	}

	if err := s.store.Set(ctx, userID, sample); err != nil {
		if errors.Is(err, cache.ErrStaleSample) {
			s.metrics.LocationUpdates.WithLabelValues("stale").Inc()
			return err
		}
		s.metrics.LocationUpdates.WithLabelValues("failure").Inc()
		s.log.ErrorContext(ctx, "Failed to cache location sample", "user", userID, "error", err)
		return err
	}

	s.metrics.LocationUpdates.WithLabelValues("success").Inc()
	s.log.DebugContext(ctx, "Location updated", "user", userID, "timestamp", sample.Timestamp)

	return nil
}

// CurrentLocation returns the cached sample, falling back to the last location
// stored on the profile.
func (s *NearbyService) CurrentLocation(ctx context.Context, userID uuid.UUID) (models.LocationSample, error) {
	sample, err := s.store.Get(ctx, userID)
	if err == nil {
		return sample, nil
	}
	if !errors.Is(err, cache.ErrNotFound) {
		s.log.WarnContext(ctx, "Location cache unavailable, using profile location", "user", userID, "error", err)
	}

	sample, err = s.repo.GetLastLocation(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return models.LocationSample{}, ErrLocationUnknown
	}
	if err != nil {
		return models.LocationSample{}, err
	}

	return sample, nil
}

// ClearLocation forgets the cached sample. The profile keeps its last known location.
func (s *NearbyService) ClearLocation(ctx context.Context, userID uuid.UUID) error {
	return s.store.Delete(ctx, userID)
}

// GeocodeLocation resolves address and stores the result as the user's current location.
func (s *NearbyService) GeocodeLocation(
	ctx context.Context,
	userID uuid.UUID,
	address string,
) (models.LocationSample, error) {
	if strings.TrimSpace(address) == "" {
		return models.LocationSample{}, geocoding.ErrEmptyAddress
	}

	startTime := time.Now()
	coords, err := s.provider.Geocode(ctx, address)
	s.metrics.GeocoderSeconds.WithLabelValues(s.providerName).Observe(time.Since(startTime).Seconds())

	if err != nil {
		if errors.Is(err, geocoding.ErrEmptyResponse) || errors.Is(err, geocoding.ErrNominatimEmptyResponse) {
			s.log.InfoContext(ctx, "No geocoding match", "user", userID)
			return models.LocationSample{}, fmt.Errorf("%w: %w", ErrAddressNotFound, err)
		}
		s.metrics.GeocoderErrors.Inc()
		s.log.ErrorContext(ctx, "Failed to geocode", "user", userID, "error", err)
		return models.LocationSample{}, fmt.Errorf("%w: %w", ErrGeocoderFailed, err)
	}

	sample := models.LocationSample{Coordinates: *coords, Timestamp: s.now().UTC()}
	if err = s.UpdateLocation(ctx, userID, sample); err != nil {
		return models.LocationSample{}, err
	}

	return sample, nil
}

// FindNearby returns the scored candidates around the user's current location.
// The radius is clamped to the configured maximum.
func (s *NearbyService) FindNearby(ctx context.Context, query NearbyQuery) ([]models.ScoredCandidate, error) {
	sortKey, err := s.resolveSort(query.SortBy)
	if err != nil {
		return nil, err
	}

	result, err := s.findNearby(ctx, query, sortKey)
	if err != nil {
		s.metrics.NearbyRequests.WithLabelValues(string(sortKey), "failure").Inc()
		return nil, err
	}

	s.metrics.NearbyRequests.WithLabelValues(string(sortKey), "success").Inc()
	s.metrics.CandidatesReturned.Observe(float64(len(result)))

	return result, nil
}

func (s *NearbyService) findNearby(
	ctx context.Context,
	query NearbyQuery,
	sortKey proximity.SortKey,
) ([]models.ScoredCandidate, error) {
	ref, err := s.CurrentLocation(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	radius := s.resolveRadius(query.RadiusMeters)
	box := proximity.BoundingBox(ref.Coordinates, radius)

	candidates, err := s.repo.FetchCandidatesInBox(ctx, query.UserID, ref.Coordinates, box, candidateFetchLimit)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to fetch candidates", "user", query.UserID, "error", err)
		return nil, err
	}

	startTime := time.Now()
	ranked := proximity.NearbyCandidates(ref.Coordinates, candidates, radius, sortKey)
	s.metrics.PipelineSeconds.Observe(time.Since(startTime).Seconds())

	limit := query.Limit
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	s.log.DebugContext(
		ctx,
		"Nearby query completed",
		"user", query.UserID,
		"radius", radius,
		"sort", sortKey,
		"fetched", len(candidates),
		"returned", len(ranked),
	)

	return ranked, nil
}

func (s *NearbyService) resolveRadius(radius float64) float64 {
	if radius <= 0 {
		radius = s.cfg.DefaultRadiusMeters
	}
	if s.cfg.MaxRadiusMeters > 0 && radius > s.cfg.MaxRadiusMeters {
		radius = s.cfg.MaxRadiusMeters
	}
	return radius
}

func (s *NearbyService) resolveSort(key proximity.SortKey) (proximity.SortKey, error) {
	if key == "" {
		key = proximity.SortKey(s.cfg.DefaultSort)
	}
	return proximity.ParseSortKey(string(key))
}
