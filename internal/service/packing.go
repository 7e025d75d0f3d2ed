package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/wanderlust/internal/catalog"
	"github.com/pkordes/wanderlust/internal/domain"
	"github.com/pkordes/wanderlust/internal/repo"
)

// PackingService implements the packing checklist.
type PackingService struct {
	repo repo.PackingRepo
}

// NewPackingService constructs a PackingService backed by r.
func NewPackingService(r repo.PackingRepo) *PackingService {
	return &PackingService{repo: r}
}

// PackingList is everything the checklist screen renders.
// Items and Groups honour the category filter; Progress and Counts always
// cover the whole list so the chips and the progress bar do not jump.
type PackingList struct {
	Items    []domain.PackingItem
	Groups   catalog.Groups[domain.PackingItem]
	Progress catalog.Progress
	Counts   map[string]int
}

// Add creates a custom item. A missing category files it under "other".
func (s *PackingService) Add(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.Category = strings.ToLower(strings.TrimSpace(item.Category))
	if item.Category == "" {
		item.Category = domain.CategoryOther
	}
	if item.Name == "" {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.Add: %w", invalid("name is required"))
	}
	if !domain.IsPackingCategory(item.Category) {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.Add: %w",
			invalid("category must be one of %s", strings.Join(domain.PackingCategories, ", ")))
	}
	item.CustomAdded = true
	item.IsChecked = false

	out, err := s.repo.Create(ctx, item)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.Add: %w", err)
	}
	return out, nil
}

// List loads the user's checklist and derives the screen's aggregates.
// category nil shows every category.
func (s *PackingService) List(ctx context.Context, userID uuid.UUID, category *string) (PackingList, error) {
	if category != nil && !domain.IsPackingCategory(*category) {
		return PackingList{}, fmt.Errorf("service.PackingService.List: %w",
			invalid("category must be one of %s", strings.Join(domain.PackingCategories, ", ")))
	}
	items, err := s.repo.List(ctx, userID)
	if err != nil {
		return PackingList{}, fetchFailed("service.PackingService.List", err)
	}

	visible := catalog.Filter(items, catalog.Criteria[domain.PackingItem]{
		Fields: catalog.PackingFields(),
		Facet:  category,
	})
	return PackingList{
		Items:    visible,
		Groups:   catalog.GroupByCategory(visible, domain.PackingCategories, catalog.PackingCategory),
		Progress: catalog.ProgressOf(items, catalog.PackingChecked),
		Counts:   catalog.CountBy(items, domain.PackingCategories, catalog.PackingCategory),
	}, nil
}

// Toggle sets the checked state of one item.
func (s *PackingService) Toggle(ctx context.Context, userID, id uuid.UUID, checked bool) (domain.PackingItem, error) {
	out, err := s.repo.SetChecked(ctx, userID, id, checked)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.Toggle: %w", err)
	}
	return out, nil
}

// Delete removes one item from the checklist.
func (s *PackingService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("service.PackingService.Delete: %w", err)
	}
	return nil
}

// Reset unchecks every item and returns how many were checked.
func (s *PackingService) Reset(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := s.repo.ResetChecked(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("service.PackingService.Reset: %w", err)
	}
	return n, nil
}
