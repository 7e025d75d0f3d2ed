package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// Store records live sessions in Redis. A token whose session id is absent
// from the store has been signed out, even if its signature is still valid.
type Store struct {
	rdb *redis.Client
}

// NewStore returns a session store backed by rdb.
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Save records s until its expiry.
func (s *Store) Save(ctx context.Context, sess Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("auth.Store.Save: session already expired")
	}
	if err := s.rdb.Set(ctx, sessionKeyPrefix+sess.ID, sess.UserID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("auth.Store.Save: %w", err)
	}
	return nil
}

// Exists reports whether the session id is live.
func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	n, err := s.rdb.Exists(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		return false, fmt.Errorf("auth.Store.Exists: %w", err)
	}
	return n > 0, nil
}

// Delete removes a session. Deleting an unknown id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("auth.Store.Delete: %w", err)
	}
	return nil
}
