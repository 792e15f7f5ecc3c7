//go:build integration

// Package testutil starts a throwaway PostgreSQL for integration tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"biztime/internal/database"
)

// NewDB starts a PostgreSQL container, applies the reference schema and
// returns an open pool. Both are torn down when the test ends.
func NewDB(t *testing.T) *database.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("biztime_test"),
		postgres.WithUsername("biztime"),
		postgres.WithPassword("biztime"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("postgres connection string: %v", err)
	}

	db, err := database.Open(ctx, database.Config{URL: url, MaxOpenConns: 5, MaxIdleConns: 5})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.SQL().ExecContext(ctx, database.Schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}

// Reset empties both tables and restarts the invoice id sequence.
func Reset(t *testing.T, db *database.DB) {
	t.Helper()
	if _, err := db.SQL().ExecContext(context.Background(),
		`TRUNCATE invoices, companies RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("reset tables: %v", err)
	}
}
