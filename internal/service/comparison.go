package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ridesmart/backend/internal/domain"
	"github.com/ridesmart/backend/internal/repo"
)

// DefaultRecentLimit is how many trips Recent returns when no limit is configured.
const DefaultRecentLimit = 8

// ComparisonService saves quoted rides with the trip they belong to and builds
// a user's cheapest-option history from them.
type ComparisonService struct {
	rides       repo.RideRepo
	trips       repo.TripRepo
	tx          repo.Transactor
	recentLimit int
}

// NewComparisonService constructs a ComparisonService.
// A non-positive recentLimit falls back to DefaultRecentLimit.
func NewComparisonService(rides repo.RideRepo, trips repo.TripRepo, tx repo.Transactor, recentLimit int) *ComparisonService {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &ComparisonService{rides: rides, trips: trips, tx: tx, recentLimit: recentLimit}
}

// SaveRideAndTrip stores the ride snapshot and the trip referencing it in one
// transaction. If the trip insert fails (duplicate tuple, unknown user) the
// ride is rolled back too, so no orphan rides are left behind.
// The trip's RideID is ignored and replaced with the new ride's id.
func (s *ComparisonService) SaveRideAndTrip(ctx context.Context, ride domain.Ride, trip domain.Trip) (domain.Ride, domain.Trip, error) {
	ride.StartPoint = strings.TrimSpace(ride.StartPoint)
	ride.Destination = strings.TrimSpace(ride.Destination)
	if err := validateRideAndTrip(ride, trip); err != nil {
		return domain.Ride{}, domain.Trip{}, err
	}

	var (
		savedRide domain.Ride
		savedTrip domain.Trip
	)
	err := s.tx.WithinTx(ctx, func(r repo.Repos) error {
		var err error
		if savedRide, err = r.Rides.Create(ctx, ride); err != nil {
			return err
		}
		trip.RideID = savedRide.ID
		savedTrip, err = r.Trips.Create(ctx, trip)
		return err
	})
	if err != nil {
		return domain.Ride{}, domain.Trip{}, fmt.Errorf("service.ComparisonService.SaveRideAndTrip: %w", err)
	}
	return savedRide, savedTrip, nil
}

// Recent returns the cheapest option for each of the user's most recent trips,
// newest first, capped at the configured limit.
func (s *ComparisonService) Recent(ctx context.Context, userID int64) ([]domain.Comparison, error) {
	result, err := s.compare(ctx, userID, s.recentLimit)
	if err != nil {
		return nil, fmt.Errorf("service.ComparisonService.Recent: %w", err)
	}
	return result, nil
}

// History is Recent without the cap.
func (s *ComparisonService) History(ctx context.Context, userID int64) ([]domain.Comparison, error) {
	result, err := s.compare(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("service.ComparisonService.History: %w", err)
	}
	return result, nil
}

// compare resolves each trip's ride and keeps its cheapest provider.
// A trip whose ride no longer exists is skipped; it never fails the request.
// Always returns a non-nil slice.
func (s *ComparisonService) compare(ctx context.Context, userID int64, limit int) ([]domain.Comparison, error) {
	trips, err := s.trips.ListRecentByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Comparison, 0, len(trips))
	for _, t := range trips {
		ride, err := s.rides.GetByID(ctx, t.RideID)
		if errors.Is(err, domain.ErrNotFound) {
			slog.DebugContext(ctx, "skipping trip without ride", "trip_id", t.ID, "ride_id", t.RideID)
			continue
		}
		if err != nil {
			return nil, err
		}

		best, _ := domain.Cheapest(ride.Prices())
		out = append(out, domain.Comparison{
			Destination: ride.Destination,
			Date:        t.Date,
			Time:        t.Time,
			Provider:    best.Provider,
			Price:       best.Price,
		})
	}
	return out, nil
}

func validateRideAndTrip(ride domain.Ride, trip domain.Trip) error {
	var missing []string
	if trip.UserID == 0 {
		missing = append(missing, "user_id")
	}
	if ride.StartPoint == "" {
		missing = append(missing, "start_point")
	}
	if ride.Destination == "" {
		missing = append(missing, "destination")
	}
	if trip.Date == "" {
		missing = append(missing, "date")
	}
	if trip.Time == "" {
		missing = append(missing, "time")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", domain.ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}
