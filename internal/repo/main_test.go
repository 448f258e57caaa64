package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/ridesmart/backend/testutil"
)

// TestMain applies all pending migrations to the test database once for the
// whole package, so individual tests never need to think about schema state.
func TestMain(m *testing.M) {
	if os.Getenv(testutil.EnvDSN) == "" {
		// No test DB configured; every test skips itself via testutil.NewPool.
		os.Exit(m.Run())
	}

	db := testutil.MustOpenSQLDB(os.Getenv(testutil.EnvDSN))
	defer db.Close()

	provider, err := testutil.NewMigrator(db)
	if err != nil {
		log.Fatalf("TestMain: create goose provider: %v", err)
	}

	if _, err := provider.Up(context.Background()); err != nil {
		log.Fatalf("TestMain: run migrations: %v", err)
	}

	os.Exit(m.Run())
}
