package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ridesmart/backend/internal/domain"
)

// RideRepo defines the persistence operations for Rides.
// Rides are immutable, so there is no Update.
type RideRepo interface {
	// Create inserts a ride snapshot and returns it with the DB-generated id.
	Create(ctx context.Context, ride domain.Ride) (domain.Ride, error)

	// GetByID retrieves a ride by primary key.
	// Returns domain.ErrNotFound if no ride with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Ride, error)

	// Delete removes a ride and, through ON DELETE CASCADE, every trip that
	// references it. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

type pgRideRepo struct {
	db db
}

// NewRideRepo constructs a RideRepo backed by the provided db connection.
func NewRideRepo(db db) RideRepo {
	return &pgRideRepo{db: db}
}

func (r *pgRideRepo) Create(ctx context.Context, ride domain.Ride) (domain.Ride, error) {
	const q = `
		INSERT INTO rides (start_point, destination, price_uber, price_careem, price_bolt, price_jeeny, distance_km)
		VALUES (@start_point, @destination, @price_uber, @price_careem, @price_bolt, @price_jeeny, @distance_km)
		RETURNING id, start_point, destination, price_uber, price_careem, price_bolt, price_jeeny, distance_km`

	args := pgx.NamedArgs{
		"start_point":  ride.StartPoint,
		"destination":  ride.Destination,
		"price_uber":   ride.PriceUber,
		"price_careem": ride.PriceCareem,
		"price_bolt":   ride.PriceBolt,
		"price_jeeny":  ride.PriceJeeny,
		"distance_km":  ride.DistanceKm,
	}

	result, err := scanRide(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Ride{}, fmt.Errorf("repo.RideRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgRideRepo) GetByID(ctx context.Context, id int64) (domain.Ride, error) {
	const q = `
		SELECT id, start_point, destination, price_uber, price_careem, price_bolt, price_jeeny, distance_km
		FROM rides
		WHERE id = @id`

	result, err := scanRide(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Ride{}, fmt.Errorf("repo.RideRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgRideRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM rides WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.RideRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.RideRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanRide(s scanner) (domain.Ride, error) {
	var rd domain.Ride
	err := s.Scan(&rd.ID, &rd.StartPoint, &rd.Destination,
		&rd.PriceUber, &rd.PriceCareem, &rd.PriceBolt, &rd.PriceJeeny, &rd.DistanceKm)
	if err != nil {
		return domain.Ride{}, translate(err)
	}
	return rd, nil
}
