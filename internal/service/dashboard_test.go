package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wanderlust/internal/domain"
	"github.com/pkordes/wanderlust/internal/service"
)

func tripAt(dest, status string, month int) domain.Trip {
	tr := validTrip()
	tr.ID = uuid.New()
	tr.Title = dest + " trip"
	tr.DestinationName = dest
	tr.Status = &status
	tr.StartDate = date(2025, 1, 1).AddDate(0, month-1, 0)
	tr.EndDate = tr.StartDate.AddDate(0, 0, 3)
	return tr
}

func TestProfileService_Stats(t *testing.T) {
	svc := service.NewProfileService(nil,
		listTrips(
			tripAt("Paris", domain.TripPlanning, 1),
			tripAt("Paris", domain.TripCompleted, 2),
			tripAt("Kyoto", domain.TripActive, 3),
		),
		listEntries(entry("a", nil, nil), entry("b", nil, nil)),
	)

	got, err := svc.Stats(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, domain.Stats{Trips: 3, Destinations: 2, Memories: 2}, got)
}

func TestProfileService_Stats_FetchFailed(t *testing.T) {
	svc := service.NewProfileService(nil, listTrips(), &mockDiaryRepo{
		list: func(_ context.Context, _ uuid.UUID) ([]domain.DiaryEntry, error) {
			return nil, errors.New("boom")
		},
	})

	_, err := svc.Stats(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestProfileService_Update(t *testing.T) {
	user := uuid.New()
	svc := service.NewProfileService(&mockProfileRepo{
		update: func(_ context.Context, p domain.Profile) (domain.Profile, error) { return p, nil },
	}, nil, nil)

	got, err := svc.Update(context.Background(), domain.Profile{UserID: user, DisplayName: ptr("Ana")})

	require.NoError(t, err)
	assert.Equal(t, user, got.UserID)
	assert.Equal(t, "Ana", *got.DisplayName)
}

func TestDashboardService_Get(t *testing.T) {
	svc := service.NewDashboardService(
		listTrips(
			tripAt("Rome", domain.TripPlanning, 9),
			tripAt("Paris", domain.TripCompleted, 1),
			tripAt("Kyoto", domain.TripActive, 3),
			tripAt("Lima", domain.TripPlanning, 5),
			tripAt("Oslo", domain.TripPlanning, 7),
		),
		listEntries(entry("e1", nil, nil), entry("e2", nil, nil), entry("e3", nil, nil), entry("e4", nil, nil)),
	)

	got, err := svc.Get(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, domain.Stats{Trips: 5, Destinations: 5, Memories: 4}, got.Stats)

	var upcoming []string
	for _, tr := range got.UpcomingTrips {
		upcoming = append(upcoming, tr.DestinationName)
	}
	assert.Equal(t, []string{"Kyoto", "Lima", "Oslo"}, upcoming)

	require.Len(t, got.RecentEntries, 3)
	assert.Equal(t, "e1", got.RecentEntries[0].Title)
}

func TestDashboardService_Get_Empty(t *testing.T) {
	svc := service.NewDashboardService(listTrips(), listEntries())

	got, err := svc.Get(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Empty(t, got.UpcomingTrips)
	assert.NotNil(t, got.RecentEntries)
	assert.Empty(t, got.RecentEntries)
}
