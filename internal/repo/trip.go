package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ridesmart/backend/internal/domain"
)

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns it with the DB-generated trip_id.
	// Returns domain.ErrIntegrity if the (user, ride, date, time) tuple already
	// exists or the user or ride does not.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// ListRecentByUser returns the user's trips, most recently created first.
	// A limit <= 0 returns every trip.
	ListRecentByUser(ctx context.Context, userID int64, limit int) ([]domain.Trip, error)
}

type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (user_id, ride_id, date, time)
		VALUES (@user_id, @ride_id, @date, @time)
		RETURNING trip_id, user_id, ride_id, date, time`

	args := pgx.NamedArgs{
		"user_id": trip.UserID,
		"ride_id": trip.RideID,
		"date":    trip.Date,
		"time":    trip.Time,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// ListRecentByUser orders by trip_id, which is assigned in insertion order.
// LIMIT NULL means no limit in Postgres.
func (r *pgTripRepo) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]domain.Trip, error) {
	const q = `
		SELECT trip_id, user_id, ride_id, date, time
		FROM trips
		WHERE user_id = @user_id
		ORDER BY trip_id DESC
		LIMIT @limit`

	var lim *int
	if limit > 0 {
		lim = &limit
	}

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID, "limit": lim})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListRecentByUser: %w", err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.ListRecentByUser: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListRecentByUser: rows: %w", err)
	}
	return trips, nil
}

func scanTrip(s scanner) (domain.Trip, error) {
	var t domain.Trip
	if err := s.Scan(&t.ID, &t.UserID, &t.RideID, &t.Date, &t.Time); err != nil {
		return domain.Trip{}, translate(err)
	}
	return t, nil
}
