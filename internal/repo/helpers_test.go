package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/ridesmart/backend/internal/domain"
	"github.com/ridesmart/backend/internal/repo"
	"github.com/ridesmart/backend/testutil"
)

// newTestTx opens a transaction against the test database that is rolled back
// when the test finishes, giving free per-test isolation.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

// newTestRepos returns every repository bound to one rolled-back transaction.
func newTestRepos(t *testing.T) (repo.Repos, pgx.Tx) {
	t.Helper()
	tx := newTestTx(t)
	return repo.NewRepos(tx), tx
}

// userFixture returns a user with a unique email so fixtures never collide with
// rows left behind by other packages sharing the test database.
func userFixture() domain.User {
	return domain.User{
		FirstName:    "Sara",
		LastName:     "Alqahtani",
		Email:        "sara+" + uuid.NewString() + "@example.com",
		PasswordHash: "$2a$10$fixturehashfixturehashfixturehashfixturehashfixture",
	}
}

func rideFixture() domain.Ride {
	return domain.Ride{
		StartPoint:  "King Fahd Road",
		Destination: "Riyadh Park",
		PriceUber:   20,
		PriceCareem: 15,
		PriceBolt:   22.5,
		PriceJeeny:  18,
		DistanceKm:  12.5,
	}
}

func mustCreateUser(t *testing.T, r repo.Repos) domain.User {
	t.Helper()
	u, err := r.Users.Create(context.Background(), userFixture())
	require.NoError(t, err)
	return u
}

func mustCreateRide(t *testing.T, r repo.Repos) domain.Ride {
	t.Helper()
	rd, err := r.Rides.Create(context.Background(), rideFixture())
	require.NoError(t, err)
	return rd
}
