package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Repos bundles the repositories that take part in a multi-statement write.
// Inside Transactor.WithinTx every field is bound to the same transaction.
type Repos struct {
	Users  UserRepo
	Rides  RideRepo
	Trips  TripRepo
	Offers OfferRepo
}

// Transactor runs a function against repositories that share one transaction.
type Transactor interface {
	// WithinTx commits if fn returns nil and rolls back otherwise.
	// The error from fn is returned unchanged (wrapped) so errors.Is still works.
	WithinTx(ctx context.Context, fn func(Repos) error) error
}

type pgTransactor struct {
	db db
}

// NewTransactor constructs a Transactor over the provided db connection.
// When db is itself a pgx.Tx, each WithinTx call runs inside a savepoint.
func NewTransactor(db db) Transactor {
	return &pgTransactor{db: db}
}

func (t *pgTransactor) WithinTx(ctx context.Context, fn func(Repos) error) error {
	err := pgx.BeginFunc(ctx, t.db, func(tx pgx.Tx) error {
		return fn(NewRepos(tx))
	})
	if err != nil {
		return fmt.Errorf("repo.Transactor.WithinTx: %w", err)
	}
	return nil
}

// NewRepos constructs every repository over the same db connection.
func NewRepos(db db) Repos {
	return Repos{
		Users:  NewUserRepo(db),
		Rides:  NewRideRepo(db),
		Trips:  NewTripRepo(db),
		Offers: NewOfferRepo(db),
	}
}
