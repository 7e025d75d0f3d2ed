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

// DiaryService implements business logic for diary entries.
type DiaryService struct {
	repo repo.DiaryRepo
}

// NewDiaryService constructs a DiaryService backed by r.
func NewDiaryService(r repo.DiaryRepo) *DiaryService {
	return &DiaryService{repo: r}
}

// DiaryQuery is the criteria of the Diary screen.
type DiaryQuery struct {
	Text string
	Mood *string
}

// DiaryStats are the counters above the diary list.
type DiaryStats struct {
	Entries   int `json:"entries"`
	Locations int `json:"locations"` // distinct non-empty locations
	Photos    int `json:"photos"`    // image URLs across all entries
}

func (s *DiaryService) Create(ctx context.Context, e domain.DiaryEntry) (domain.DiaryEntry, error) {
	normalizeEntry(&e)
	if err := validateEntry(e); err != nil {
		return domain.DiaryEntry{}, fmt.Errorf("service.DiaryService.Create: %w", err)
	}
	out, err := s.repo.Create(ctx, e)
	if err != nil {
		return domain.DiaryEntry{}, fmt.Errorf("service.DiaryService.Create: %w", err)
	}
	return out, nil
}

func (s *DiaryService) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.DiaryEntry, error) {
	out, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return domain.DiaryEntry{}, fmt.Errorf("service.DiaryService.GetByID: %w", err)
	}
	return out, nil
}

// List returns the user's entries matching q, newest first.
func (s *DiaryService) List(ctx context.Context, userID uuid.UUID, q DiaryQuery) ([]domain.DiaryEntry, error) {
	entries, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fetchFailed("service.DiaryService.List", err)
	}
	return catalog.Filter(entries, catalog.Criteria[domain.DiaryEntry]{
		Fields: catalog.DiaryFields(),
		Text:   q.Text,
		Facet:  q.Mood,
	}), nil
}

func (s *DiaryService) Update(ctx context.Context, e domain.DiaryEntry) (domain.DiaryEntry, error) {
	normalizeEntry(&e)
	if err := validateEntry(e); err != nil {
		return domain.DiaryEntry{}, fmt.Errorf("service.DiaryService.Update: %w", err)
	}
	out, err := s.repo.Update(ctx, e)
	if err != nil {
		return domain.DiaryEntry{}, fmt.Errorf("service.DiaryService.Update: %w", err)
	}
	return out, nil
}

func (s *DiaryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("service.DiaryService.Delete: %w", err)
	}
	return nil
}

// Stats counts all of the user's entries, their distinct locations and their
// attached photos.
func (s *DiaryService) Stats(ctx context.Context, userID uuid.UUID) (DiaryStats, error) {
	entries, err := s.repo.List(ctx, userID)
	if err != nil {
		return DiaryStats{}, fetchFailed("service.DiaryService.Stats", err)
	}
	return DiaryStats{
		Entries:   len(entries),
		Locations: catalog.UniqueCount(entries, entryLocation),
		Photos:    photoCount(entries),
	}, nil
}

func photoCount(entries []domain.DiaryEntry) int {
	n := 0
	for _, e := range entries {
		n += len(e.ImageURLs)
	}
	return n
}

// entryLocation treats an empty location like an absent one.
func entryLocation(e domain.DiaryEntry) *string {
	if e.Location == nil || *e.Location == "" {
		return nil
	}
	return e.Location
}

// normalizeEntry trims free text and drops blank tags and image URLs.
func normalizeEntry(e *domain.DiaryEntry) {
	e.Title = strings.TrimSpace(e.Title)
	e.Tags = compact(e.Tags)
	e.ImageURLs = compact(e.ImageURLs)
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func validateEntry(e domain.DiaryEntry) error {
	if e.Title == "" {
		return invalid("title is required")
	}
	if e.EntryDate.IsZero() {
		return invalid("entry_date is required")
	}
	return nil
}
