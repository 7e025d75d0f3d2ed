package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/wanderlust/internal/catalog"
	"github.com/pkordes/wanderlust/internal/domain"
	"github.com/pkordes/wanderlust/internal/snapshot"
)

// DestinationLister supplies the full destination list. In production this is
// the Redis-backed cache; tests pass a stub.
type DestinationLister interface {
	List(ctx context.Context) ([]domain.Destination, error)
}

// DestinationGetter fetches a single destination by id.
type DestinationGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error)
}

// DestinationPage is one page of Explore results.
type DestinationPage struct {
	Items []domain.Destination
	Total int
	Page  domain.PaginationParams
}

// ExploreService serves destination searches from an in-process snapshot.
// The snapshot is reloaded when it is older than maxAge or on Refresh.
type ExploreService struct {
	list   DestinationLister
	get    DestinationGetter
	loader *snapshot.Loader[domain.Destination]
	maxAge time.Duration
	log    *slog.Logger
}

// NewExploreService constructs an ExploreService. maxAge <= 0 reloads on
// every search.
func NewExploreService(list DestinationLister, get DestinationGetter, maxAge time.Duration, log *slog.Logger) *ExploreService {
	if log == nil {
		log = slog.Default()
	}
	return &ExploreService{
		list:   list,
		get:    get,
		loader: snapshot.New[domain.Destination]("destinations", log),
		maxAge: maxAge,
		log:    log,
	}
}

// Search filters the destination snapshot by query and preset, then pages it.
// When a reload fails but an older snapshot is held, the older one is served.
func (s *ExploreService) Search(ctx context.Context, query, preset string, p domain.PaginationParams) (DestinationPage, error) {
	records, err := s.current(ctx)
	if err != nil {
		return DestinationPage{}, fmt.Errorf("service.ExploreService.Search: %w", err)
	}
	matched := catalog.Filter(records, catalog.DestinationCriteria(query, preset))
	items, total := catalog.Page(matched, p)
	return DestinationPage{Items: items, Total: total, Page: p}, nil
}

// Get returns one destination.
func (s *ExploreService) Get(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	d, err := s.get.GetByID(ctx, id)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.ExploreService.Get: %w", err)
	}
	return d, nil
}

// Refresh reloads the snapshot regardless of its age and returns the number
// of destinations now held.
func (s *ExploreService) Refresh(ctx context.Context) (int, error) {
	records, err := s.loader.Load(ctx, s.list.List)
	if err != nil {
		return 0, fmt.Errorf("service.ExploreService.Refresh: %w", err)
	}
	s.log.InfoContext(ctx, "destination snapshot refreshed", "count", len(records))
	return len(records), nil
}

func (s *ExploreService) current(ctx context.Context) ([]domain.Destination, error) {
	records, loadedAt, ok := s.loader.Snapshot()
	if ok && s.maxAge > 0 && time.Since(loadedAt) < s.maxAge {
		return records, nil
	}
	fresh, err := s.loader.Load(ctx, s.list.List)
	if err != nil {
		if ok {
			s.log.WarnContext(ctx, "serving stale destination snapshot", "loaded_at", loadedAt, "error", err)
			return records, nil
		}
		return nil, err
	}
	return fresh, nil
}
