package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/wanderlust/internal/auth"
	"github.com/pkordes/wanderlust/internal/domain"
	"github.com/pkordes/wanderlust/internal/repo"
	"github.com/pkordes/wanderlust/internal/service"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones a test needs.

type mockTripRepo struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error)
	list    func(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, userID, id)
}
func (m *mockTripRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	return m.list(ctx, userID)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}

type mockDiaryRepo struct {
	create  func(ctx context.Context, e domain.DiaryEntry) (domain.DiaryEntry, error)
	getByID func(ctx context.Context, userID, id uuid.UUID) (domain.DiaryEntry, error)
	list    func(ctx context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error)
	update  func(ctx context.Context, e domain.DiaryEntry) (domain.DiaryEntry, error)
	delete  func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockDiaryRepo) Create(ctx context.Context, e domain.DiaryEntry) (domain.DiaryEntry, error) {
	return m.create(ctx, e)
}
func (m *mockDiaryRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.DiaryEntry, error) {
	return m.getByID(ctx, userID, id)
}
func (m *mockDiaryRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error) {
	return m.list(ctx, userID)
}
func (m *mockDiaryRepo) Update(ctx context.Context, e domain.DiaryEntry) (domain.DiaryEntry, error) {
	return m.update(ctx, e)
}
func (m *mockDiaryRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}

type mockPackingRepo struct {
	create       func(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error)
	list         func(ctx context.Context, userID uuid.UUID) ([]domain.PackingItem, error)
	setChecked   func(ctx context.Context, userID, id uuid.UUID, checked bool) (domain.PackingItem, error)
	resetChecked func(ctx context.Context, userID uuid.UUID) (int64, error)
	delete       func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockPackingRepo) Create(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error) {
	return m.create(ctx, item)
}
func (m *mockPackingRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.PackingItem, error) {
	return m.list(ctx, userID)
}
func (m *mockPackingRepo) SetChecked(ctx context.Context, userID, id uuid.UUID, checked bool) (domain.PackingItem, error) {
	return m.setChecked(ctx, userID, id, checked)
}
func (m *mockPackingRepo) ResetChecked(ctx context.Context, userID uuid.UUID) (int64, error) {
	return m.resetChecked(ctx, userID)
}
func (m *mockPackingRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}

type mockUserRepo struct {
	create     func(ctx context.Context, email, passwordHash string) (domain.User, error)
	getByEmail func(ctx context.Context, email string) (domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, email, passwordHash string) (domain.User, error) {
	return m.create(ctx, email, passwordHash)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return m.getByEmail(ctx, email)
}

type mockProfileRepo struct {
	create      func(ctx context.Context, userID uuid.UUID, email string) (domain.Profile, error)
	getByUserID func(ctx context.Context, userID uuid.UUID) (domain.Profile, error)
	update      func(ctx context.Context, p domain.Profile) (domain.Profile, error)
}

func (m *mockProfileRepo) Create(ctx context.Context, userID uuid.UUID, email string) (domain.Profile, error) {
	return m.create(ctx, userID, email)
}
func (m *mockProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (domain.Profile, error) {
	return m.getByUserID(ctx, userID)
}
func (m *mockProfileRepo) Update(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	return m.update(ctx, p)
}

// memSessions is an in-memory SessionStore.
type memSessions struct {
	live map[string]bool
}

func newMemSessions() *memSessions { return &memSessions{live: map[string]bool{}} }

func (m *memSessions) Save(_ context.Context, s auth.Session) error {
	m.live[s.ID] = true
	return nil
}
func (m *memSessions) Exists(_ context.Context, id string) (bool, error) {
	return m.live[id], nil
}
func (m *memSessions) Delete(_ context.Context, id string) error {
	delete(m.live, id)
	return nil
}

type stubDestinations struct {
	list    func(ctx context.Context) ([]domain.Destination, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Destination, error)
}

func (s *stubDestinations) List(ctx context.Context) ([]domain.Destination, error) {
	return s.list(ctx)
}
func (s *stubDestinations) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	return s.getByID(ctx, id)
}

// compile-time checks
var (
	_ repo.TripRepo             = (*mockTripRepo)(nil)
	_ repo.DiaryRepo            = (*mockDiaryRepo)(nil)
	_ repo.PackingRepo          = (*mockPackingRepo)(nil)
	_ repo.UserRepo             = (*mockUserRepo)(nil)
	_ repo.ProfileRepo          = (*mockProfileRepo)(nil)
	_ service.SessionStore      = (*memSessions)(nil)
	_ service.DestinationLister = (*stubDestinations)(nil)
	_ service.DestinationGetter = (*stubDestinations)(nil)
	_ service.TokenIssuer       = (*auth.Issuer)(nil)
)

func ptr[T any](v T) *T { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
