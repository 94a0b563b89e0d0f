package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UnknownOlympus/openants/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FetchCandidatesInBox retrieves profiles with a known location inside box, excluding userID.
// Each candidate carries the number of accepted connections it shares with userID.
// The box is a coarse prefilter; exact distances are computed by the caller.
// Rows come nearest to center first by an equirectangular approximation, so
// limit drops the farthest profiles.
//
// Parameters:
// - ctx: The context for the operation, allowing for cancellation and timeout.
// - userID: The profile asking for nearby candidates.
// - center: The reference point the box was built around.
// - box: The latitude/longitude window to search.
// - limit: The maximum number of rows to retrieve.
func (r *Repository) FetchCandidatesInBox(
	ctx context.Context,
	userID uuid.UUID,
	center models.Coordinates,
	box models.BoundingBox,
	limit int,
) ([]models.Candidate, error) {
	query := `
		WITH my_connections AS (
			SELECT CASE WHEN requester_id = $1 THEN addressee_id ELSE requester_id END AS user_id
			FROM public.connections
			WHERE status = 'accepted' AND (requester_id = $1 OR addressee_id = $1)
		)
		SELECT
			p.id, p.full_name, COALESCE(p.role, ''), COALESCE(p.company, ''), COALESCE(p.avatar_url, ''),
			p.latitude, p.longitude,
			(
				SELECT COUNT(*)
				FROM public.connections c
				JOIN my_connections m
					ON m.user_id = CASE WHEN c.requester_id = p.id THEN c.addressee_id ELSE c.requester_id END
				WHERE c.status = 'accepted' AND (c.requester_id = p.id OR c.addressee_id = p.id)
			) AS mutual_connections
		FROM public.profiles p
		WHERE
			p.id <> $1
			AND p.latitude IS NOT NULL AND p.longitude IS NOT NULL
			AND p.latitude BETWEEN $2 AND $3
			AND p.longitude BETWEEN $4 AND $5
		ORDER BY
			power(p.latitude - $6, 2) +
			power(LEAST(ABS(p.longitude - $7), 360 - ABS(p.longitude - $7)) * cos(radians($6)), 2),
			p.location_updated_at DESC
		LIMIT $8;
	`

	rows, err := r.db.Query(ctx, query,
		userID.String(), box.MinLatitude, box.MaxLatitude, box.MinLongitude, box.MaxLongitude,
		center.Latitude, center.Longitude, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby profiles: %w", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var (
			rawID     string
			candidate models.Candidate
		)
		if errScan := rows.Scan(
			&rawID,
			&candidate.Name,
			&candidate.Role,
			&candidate.Company,
			&candidate.AvatarURL,
			&candidate.Position.Latitude,
			&candidate.Position.Longitude,
			&candidate.MutualConnections,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan nearby profile: %w", errScan)
		}

		id, errParse := uuid.Parse(rawID)
		if errParse != nil {
			return nil, fmt.Errorf("failed to parse profile id %q: %w", rawID, errParse)
		}
		candidate.ID = id

		candidates = append(candidates, candidate)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	r.log.DebugContext(ctx, "Fetched nearby profiles from the database", "user", userID, "count", len(candidates))

	return candidates, nil
}

// UpdateLastLocation stores the sample as the profile's last known location.
// Older samples never overwrite newer ones; an equal timestamp rewrites the row
// so a retried sample succeeds. ErrLocationNotApplied is returned when no row
// was updated.
func (r *Repository) UpdateLastLocation(ctx context.Context, userID uuid.UUID, sample models.LocationSample) error {
	query := `
		UPDATE public.profiles
		SET
			latitude = $1,
			longitude = $2,
			location_updated_at = $3
		WHERE
			id = $4
			AND (location_updated_at IS NULL OR location_updated_at <= $3);
	`

	tag, err := r.db.Exec(ctx, query, sample.Latitude, sample.Longitude, sample.Timestamp, userID.String())
	if err != nil {
		return fmt.Errorf("failed to update profile location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		r.log.DebugContext(ctx, "Profile location not updated", "user", userID, "timestamp", sample.Timestamp)
		return ErrLocationNotApplied
	}

	return nil
}

// GetLastLocation returns the last known location stored on the profile.
// It returns ErrNotFound when the profile does not exist or has no location.
func (r *Repository) GetLastLocation(ctx context.Context, userID uuid.UUID) (models.LocationSample, error) {
	query := `
		SELECT latitude, longitude, COALESCE(location_updated_at, to_timestamp(0))
		FROM public.profiles
		WHERE id = $1 AND latitude IS NOT NULL AND longitude IS NOT NULL;
	`

	var (
		sample    models.LocationSample
		updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, query, userID.String()).Scan(&sample.Latitude, &sample.Longitude, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.LocationSample{}, ErrNotFound
	}
	if err != nil {
		return models.LocationSample{}, fmt.Errorf("failed to query profile location: %w", err)
	}
	sample.Timestamp = updatedAt.UTC()

	return sample, nil
}
