package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wanderlust/internal/auth"
	"github.com/pkordes/wanderlust/testutil"
)

func TestFromContext(t *testing.T) {
	_, ok := auth.FromContext(context.Background())
	assert.False(t, ok)

	want := auth.Session{ID: "sid", UserID: uuid.New()}
	got, ok := auth.FromContext(auth.WithSession(context.Background(), want))

	require.True(t, ok)
	assert.Equal(t, want, got)
}

// TestStore_Lifecycle needs a Redis server; it is skipped unless TEST_REDIS_URL is set.
func TestStore_Lifecycle(t *testing.T) {
	rdb := testutil.NewRedis(t)
	store := auth.NewStore(rdb)
	ctx := context.Background()

	sess := auth.Session{
		ID:        "test-" + uuid.NewString(),
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(time.Minute),
	}

	require.NoError(t, store.Save(ctx, sess))

	ok, err := store.Exists(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Delete(ctx, sess.ID))

	ok, err = store.Exists(ctx, sess.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting twice is fine.
	assert.NoError(t, store.Delete(ctx, sess.ID))
}

func TestStore_SaveExpired(t *testing.T) {
	rdb := testutil.NewRedis(t)
	store := auth.NewStore(rdb)

	err := store.Save(context.Background(), auth.Session{ID: "x", ExpiresAt: time.Now().Add(-time.Second)})

	assert.Error(t, err)
}
