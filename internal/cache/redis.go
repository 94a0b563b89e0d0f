// Package cache keeps the current location sample of every user in Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/UnknownOlympus/openants/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sampleKeyPrefix = "openants:location:%s"

var (
	// ErrNotFound is returned when no current sample is stored for a user.
	ErrNotFound = errors.New("location sample not found")
	// ErrStaleSample is returned when a sample is not newer than the stored one.
	ErrStaleSample = errors.New("location sample is older than the current one")
)

// storeIfNewer writes the sample only when its timestamp (ms) is strictly newer.
var storeIfNewer = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'ts')
if current and tonumber(current) >= tonumber(ARGV[4]) then
	return 0
end
redis.call('HSET', KEYS[1], 'lat', ARGV[1], 'lng', ARGV[2], 'acc', ARGV[3], 'ts', ARGV[4])
redis.call('PEXPIRE', KEYS[1], ARGV[5])
return 1
`)

// LocationStore holds one current LocationSample per user.
type LocationStore struct {
	client redis.Cmdable
	ttl    time.Duration
	log    *slog.Logger
}

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// NewLocationStore creates a store whose samples expire after ttl.
func NewLocationStore(client redis.Cmdable, ttl time.Duration, log *slog.Logger) *LocationStore {
	return &LocationStore{client: client, ttl: ttl, log: log}
}

// Set stores sample as the user's current location. It returns ErrStaleSample
// if the stored sample is at least as recent.
func (s *LocationStore) Set(ctx context.Context, userID uuid.UUID, sample models.LocationSample) error {
	args := []any{
		strconv.FormatFloat(sample.Latitude, 'f', -1, 64),
		strconv.FormatFloat(sample.Longitude, 'f', -1, 64),
		strconv.FormatFloat(sample.Accuracy, 'f', -1, 64),
		sample.Timestamp.UnixMilli(),
		s.ttl.Milliseconds(),
	}

	stored, err := storeIfNewer.Run(ctx, s.client, []string{sampleKey(userID)}, args...).Int()
	if err != nil {
		return fmt.Errorf("failed to store location sample: %w", err)
	}
	if stored == 0 {
		s.log.DebugContext(ctx, "Location sample superseded", "user", userID, "timestamp", sample.Timestamp)
		return ErrStaleSample
	}

	return nil
}

// Get returns the user's current sample or ErrNotFound.
func (s *LocationStore) Get(ctx context.Context, userID uuid.UUID) (models.LocationSample, error) {
	fields, err := s.client.HGetAll(ctx, sampleKey(userID)).Result()
	if err != nil {
		return models.LocationSample{}, fmt.Errorf("failed to read location sample: %w", err)
	}
	if len(fields) == 0 {
		return models.LocationSample{}, ErrNotFound
	}

	return parseSample(fields)
}

// Delete forgets the user's current sample.
func (s *LocationStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, sampleKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete location sample: %w", err)
	}

	return nil
}

func parseSample(fields map[string]string) (models.LocationSample, error) {
	var (
		sample models.LocationSample
		err    error
	)

	if sample.Latitude, err = strconv.ParseFloat(fields["lat"], 64); err != nil {
		return models.LocationSample{}, fmt.Errorf("failed to parse latitude: %w", err)
	}
	if sample.Longitude, err = strconv.ParseFloat(fields["lng"], 64); err != nil {
		return models.LocationSample{}, fmt.Errorf("failed to parse longitude: %w", err)
	}
	if sample.Accuracy, err = strconv.ParseFloat(fields["acc"], 64); err != nil {
		return models.LocationSample{}, fmt.Errorf("failed to parse accuracy: %w", err)
	}
	ts, err := strconv.ParseInt(fields["ts"], 10, 64)
	if err != nil {
		return models.LocationSample{}, fmt.Errorf("failed to parse timestamp: %w", err)
	}
	sample.Timestamp = time.UnixMilli(ts).UTC()

	return sample, nil
}

func sampleKey(userID uuid.UUID) string {
	return fmt.Sprintf(sampleKeyPrefix, userID.String())
}
