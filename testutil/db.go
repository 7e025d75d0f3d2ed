// Package testutil holds helpers for integration tests. Every helper skips
// the calling test when its backing service is not configured through the
// environment, so `go test ./...` stays green on a laptop without Postgres
// or Redis.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // "pgx" driver for database/sql
)

// DatabaseEnv names the variable holding the integration database DSN.
const DatabaseEnv = "TEST_DATABASE_URL"

// NewPool returns a pgx pool on the integration database, closed on cleanup.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, databaseURL(t))
	if err != nil {
		t.Fatalf("testutil.NewPool: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// NewSQLDB returns a database/sql handle on the integration database for
// callers that need one, such as the goose provider.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := openSQL(databaseURL(t))
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// MustOpenSQLDB is NewSQLDB for TestMain, where there is no *testing.T.
// The caller closes the handle.
func MustOpenSQLDB(dsn string) *sql.DB {
	db, err := openSQL(dsn)
	if err != nil {
		panic("testutil.MustOpenSQLDB: " + err.Error())
	}
	return db
}

func openSQL(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func databaseURL(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv(DatabaseEnv)
	if dsn == "" {
		t.Skip(DatabaseEnv + " not set; skipping integration test")
	}
	return dsn
}
