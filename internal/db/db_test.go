package db

import (
	"context"
	"os"
	"testing"
)

// TestConnectPostgres only runs against a real database. CI sets
// DATABASE_URL to a throwaway instance; locally it is usually skipped.
func TestConnectPostgres(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	pool := ConnectPostgres()
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}

	// Schema init must be idempotent.
	if err := initSchema(pool); err != nil {
		t.Fatalf("re-running initSchema: %v", err)
	}
}
