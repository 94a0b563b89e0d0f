package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"

	"github.com/UnknownOlympus/openants/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound is returned when a profile or its location does not exist.
	ErrNotFound = errors.New("not found")
	// ErrLocationNotApplied is returned when the profile is missing or already holds a newer location.
	ErrLocationNotApplied = errors.New("profile location not updated")
)

// Database is the subset of pgxpool.Pool used by the repository.
type Database interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository reads candidate profiles and last known locations from PostgreSQL.
type Repository struct {
	db  Database
	log *slog.Logger
}

// Interface is implemented by Repository; the service depends on it so tests can mock storage.
type Interface interface {
	FetchCandidatesInBox(
		ctx context.Context,
		userID uuid.UUID,
		center models.Coordinates,
		box models.BoundingBox,
		limit int,
	) ([]models.Candidate, error)
	UpdateLastLocation(ctx context.Context, userID uuid.UUID, sample models.LocationSample) error
	GetLastLocation(ctx context.Context, userID uuid.UUID) (models.LocationSample, error)
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}

// NewDatabase opens a pgx connection pool and verifies it with a ping.
func NewDatabase(ctx context.Context, host, port, user, password, name string) (*pgxpool.Pool, error) {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     net.JoinHostPort(host, port),
		Path:     name,
		RawQuery: "sslmode=disable",
	}

	pool, err := pgxpool.New(ctx, dsn.String())
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}
