// Package cache keeps the destination reference snapshot in Redis so that
// every API instance serves Explore searches without hitting Postgres.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/pkordes/wanderlust/internal/domain"
)

const keyDestinations = "catalog:destinations"

// DestinationSource is the authoritative store behind the cache.
type DestinationSource interface {
	List(ctx context.Context) ([]domain.Destination, error)
}

// Destinations is a read-through cache of the full destination list.
type Destinations struct {
	rdb    *redis.Client
	source DestinationSource
	ttl    time.Duration
	log    *slog.Logger
	group  singleflight.Group
}

// NewDestinations returns a cache in front of source. Entries expire after ttl.
func NewDestinations(rdb *redis.Client, source DestinationSource, ttl time.Duration, log *slog.Logger) *Destinations {
	if log == nil {
		log = slog.Default()
	}
	return &Destinations{rdb: rdb, source: source, ttl: ttl, log: log}
}

// List returns the cached list, loading it from source on a miss.
// Concurrent misses share a single source query, which is not cancelled with
// the caller that started it. A Redis failure is logged
// and falls through to source rather than failing the request.
func (c *Destinations) List(ctx context.Context) ([]domain.Destination, error) {
	list, err := c.get(ctx)
	if err != nil {
		c.log.WarnContext(ctx, "destination cache read failed", "error", err)
	}
	if list != nil {
		return list, nil
	}

	// The fill is shared by every waiting caller, so it must outlive the
	// request that happened to start it.
	fillCtx := context.WithoutCancel(ctx)
	v, err, _ := c.group.Do(keyDestinations, func() (any, error) {
		list, err := c.source.List(fillCtx)
		if err != nil {
			return nil, err
		}
		if err := c.set(fillCtx, list); err != nil {
			c.log.WarnContext(fillCtx, "destination cache write failed", "error", err)
		}
		return list, nil
	})
	if err != nil {
		return nil, fmt.Errorf("cache.Destinations.List: %w", err)
	}
	return v.([]domain.Destination), nil
}

// Invalidate drops the cached list so the next List reloads from source.
func (c *Destinations) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, keyDestinations).Err(); err != nil {
		return fmt.Errorf("cache.Destinations.Invalidate: %w", err)
	}
	return nil
}

// get returns nil, nil on a miss.
func (c *Destinations) get(ctx context.Context) ([]domain.Destination, error) {
	b, err := c.rdb.Get(ctx, keyDestinations).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []domain.Destination
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Destination{}
	}
	return list, nil
}

func (c *Destinations) set(ctx context.Context, list []domain.Destination) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyDestinations, b, c.ttl).Err()
}
