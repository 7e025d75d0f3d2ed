package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wanderlust/internal/domain"
	"github.com/pkordes/wanderlust/internal/repo"
	"github.com/pkordes/wanderlust/testutil"
)

// testTx opens a transaction against the test database that is rolled back
// when the test finishes, giving per-test isolation with no cleanup SQL.
// Skips when TEST_DATABASE_URL is not set.
func testTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

// seedUser inserts a user so user-owned rows satisfy their foreign keys.
func seedUser(t *testing.T, tx pgx.Tx) domain.User {
	t.Helper()
	u, err := repo.NewUserRepo(tx).Create(context.Background(), uuid.NewString()+"@example.com", "hash")
	require.NoError(t, err, "seed user")
	return u
}

func strp(s string) *string { return &s }
