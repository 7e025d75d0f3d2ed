package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wanderlust/internal/domain"
	"github.com/pkordes/wanderlust/internal/handler"
	"github.com/pkordes/wanderlust/internal/service"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error)
	list    func(ctx context.Context, userID uuid.UUID, q service.TripQuery) ([]domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, userID, id)
}
func (m *mockTripServicer) List(ctx context.Context, userID uuid.UUID, q service.TripQuery) ([]domain.Trip, error) {
	return m.list(ctx, userID, q)
}
func (m *mockTripServicer) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, t)
}
func (m *mockTripServicer) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}

// compile-time check: mockTripServicer must satisfy handler.TripServicer.
var _ handler.TripServicer = (*mockTripServicer)(nil)

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:              uuid.New(),
		UserID:          testUser,
		Title:           "Summer in Paris",
		DestinationName: "Paris",
		StartDate:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		Status:          ptr(domain.TripPlanning),
		TravelerCount:   ptr(2),
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
}

func tripsHandler(svc *mockTripServicer) http.Handler {
	return newHTTPHandler(handler.Services{Trips: svc})
}

// ---- POST /trips -----------------------------------------------------------

func TestCreateTrip_201(t *testing.T) {
	fixture := tripFixture()
	var got domain.Trip
	h := tripsHandler(&mockTripServicer{
		create: func(_ context.Context, tr domain.Trip) (domain.Trip, error) {
			got = tr
			return fixture, nil
		},
	})

	rec := do(t, h, http.MethodPost, "/trips", map[string]any{
		"title":            "Summer in Paris",
		"destination_name": "Paris",
		"start_date":       "2025-06-01",
		"end_date":         "2025-06-04",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, testUser, got.UserID)
	assert.Equal(t, fixture.StartDate, got.StartDate)

	resp := decode[handler.Trip](t, rec)
	assert.Equal(t, fixture.ID, resp.ID)
	assert.Equal(t, 3, resp.DurationDays)
	assert.Equal(t, "2025-06-04", resp.EndDate.String())
}

func TestCreateTrip_422_ValidationError(t *testing.T) {
	h := tripsHandler(&mockTripServicer{
		create: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w: title is required", domain.ErrValidation)
		},
	})

	rec := do(t, h, http.MethodPost, "/trips", map[string]any{"title": ""})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode[handler.ErrorResponse](t, rec)
	assert.Equal(t, "validation_error", resp.Error.Code)
	assert.Equal(t, "title is required", resp.Error.Message)
}

func TestCreateTrip_422_UnknownField(t *testing.T) {
	h := tripsHandler(&mockTripServicer{})

	rec := do(t, h, http.MethodPost, "/trips", map[string]any{"name": "old field"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateTrip_500_Unexpected(t *testing.T) {
	h := tripsHandler(&mockTripServicer{
		create: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, errors.New("disk on fire")
		},
	})

	rec := do(t, h, http.MethodPost, "/trips", map[string]any{"title": "x"})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk on fire")
}

// ---- GET /trips ------------------------------------------------------------

func TestListTrips_200_PassesQuery(t *testing.T) {
	var got service.TripQuery
	h := tripsHandler(&mockTripServicer{
		list: func(_ context.Context, userID uuid.UUID, q service.TripQuery) ([]domain.Trip, error) {
			got = q
			return []domain.Trip{tripFixture(), tripFixture()}, nil
		},
	})

	rec := do(t, h, http.MethodGet, "/trips?q=par&status=active", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "par", got.Text)
	require.NotNil(t, got.Status)
	assert.Equal(t, "active", *got.Status)
	assert.Len(t, decode[handler.ListResponse[handler.Trip]](t, rec).Data, 2)
}

func TestListTrips_200_AllStatusMeansNoFacet(t *testing.T) {
	var got service.TripQuery
	h := tripsHandler(&mockTripServicer{
		list: func(_ context.Context, _ uuid.UUID, q service.TripQuery) ([]domain.Trip, error) {
			got = q
			return []domain.Trip{}, nil
		},
	})

	rec := do(t, h, http.MethodGet, "/trips?status=all", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, got.Status)
	// Must be a JSON array, not null.
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestListTrips_503_FetchFailed(t *testing.T) {
	h := tripsHandler(&mockTripServicer{
		list: func(_ context.Context, _ uuid.UUID, _ service.TripQuery) ([]domain.Trip, error) {
			return nil, fmt.Errorf("service.TripService.List: %w: timeout", domain.ErrFetchFailed)
		},
	})

	rec := do(t, h, http.MethodGet, "/trips", nil)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "fetch_failed", decode[handler.ErrorResponse](t, rec).Error.Code)
}

// ---- GET /trips/{id} -------------------------------------------------------

func TestGetTrip_200(t *testing.T) {
	fixture := tripFixture()
	h := tripsHandler(&mockTripServicer{
		getByID: func(_ context.Context, userID, id uuid.UUID) (domain.Trip, error) {
			if userID != testUser || id != fixture.ID {
				return domain.Trip{}, domain.ErrNotFound
			}
			return fixture, nil
		},
	})

	rec := do(t, h, http.MethodGet, "/trips/"+fixture.ID.String(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, fixture.ID, decode[handler.Trip](t, rec).ID)
}

func TestGetTrip_404(t *testing.T) {
	h := tripsHandler(&mockTripServicer{
		getByID: func(_ context.Context, _, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	})

	rec := do(t, h, http.MethodGet, "/trips/"+uuid.New().String(), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "trip not found", decode[handler.ErrorResponse](t, rec).Error.Message)
}

func TestGetTrip_422_BadID(t *testing.T) {
	h := tripsHandler(&mockTripServicer{})

	rec := do(t, h, http.MethodGet, "/trips/not-a-uuid", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- PUT /trips/{id} -------------------------------------------------------

func TestUpdateTrip_200_UsesPathID(t *testing.T) {
	fixture := tripFixture()
	var got domain.Trip
	h := tripsHandler(&mockTripServicer{
		update: func(_ context.Context, tr domain.Trip) (domain.Trip, error) {
			got = tr
			return fixture, nil
		},
	})

	rec := do(t, h, http.MethodPut, "/trips/"+fixture.ID.String(), map[string]any{
		"title":            "Summer in Paris",
		"destination_name": "Paris",
		"start_date":       "2025-06-01",
		"end_date":         "2025-06-04",
		"status":           "active",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, fixture.ID, got.ID)
	assert.Equal(t, testUser, got.UserID)
	assert.Equal(t, "active", *got.Status)
}

// ---- DELETE /trips/{id} ----------------------------------------------------

func TestDeleteTrip_204(t *testing.T) {
	h := tripsHandler(&mockTripServicer{
		delete: func(_ context.Context, _, _ uuid.UUID) error { return nil },
	})

	rec := do(t, h, http.MethodDelete, "/trips/"+uuid.New().String(), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteTrip_404(t *testing.T) {
	h := tripsHandler(&mockTripServicer{
		delete: func(_ context.Context, _, _ uuid.UUID) error { return domain.ErrNotFound },
	})

	rec := do(t, h, http.MethodDelete, "/trips/"+uuid.New().String(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
