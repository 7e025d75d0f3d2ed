package handler_test

import (
	"context"
	"encoding/csv"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wanderlust/internal/domain"
	"github.com/pkordes/wanderlust/internal/handler"
)

type exportFunc func(ctx context.Context, userID uuid.UUID) ([]domain.ExportRow, error)

func (f exportFunc) Export(ctx context.Context, userID uuid.UUID) ([]domain.ExportRow, error) {
	return f(ctx, userID)
}

var _ handler.ExportServicer = exportFunc(nil)

func exportRowFixture() domain.ExportRow {
	entryDate := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	return domain.ExportRow{
		TripID:          uuid.New().String(),
		TripTitle:       "Summer in Paris",
		DestinationName: "Paris",
		Status:          "completed",
		StartDate:       "2025-06-01",
		EndDate:         "2025-06-04",
		DurationDays:    3,
		EntryTitle:      "Louvre day",
		EntryDate:       &entryDate,
		EntryLocation:   "Paris",
		EntryMood:       "happy",
		Tags:            []string{"art", "museum"},
	}
}

func exportHandler(rows ...domain.ExportRow) http.Handler {
	return newHTTPHandler(handler.Services{Export: exportFunc(func(_ context.Context, _ uuid.UUID) ([]domain.ExportRow, error) {
		return rows, nil
	})})
}

func TestGetExport_JSON_Default(t *testing.T) {
	row := exportRowFixture()
	rec := do(t, exportHandler(row), http.MethodGet, "/export", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[[]handler.ExportRow](t, rec)
	require.Len(t, resp, 1)
	require.NotNil(t, resp[0].TripID)
	assert.Equal(t, row.TripID, resp[0].TripID.String())
	assert.Equal(t, "2025-06-02", resp[0].EntryDate.String())
	assert.Equal(t, []string{"art", "museum"}, resp[0].Tags)
}

func TestGetExport_JSON_TripWithoutEntries(t *testing.T) {
	row := exportRowFixture()
	row.EntryTitle, row.EntryDate, row.EntryLocation, row.EntryMood, row.Tags = "", nil, "", "", nil

	rec := do(t, exportHandler(row), http.MethodGet, "/export?format=json", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "entry_date")
	assert.Contains(t, body, `"tags":[]`)
}

func TestGetExport_CSV(t *testing.T) {
	rec := do(t, exportHandler(exportRowFixture()), http.MethodGet, "/export?format=csv", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "wanderlust-export.csv")

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "trip_id", records[0][0])
	assert.Equal(t, "Summer in Paris", records[1][1])
	assert.Equal(t, "3", records[1][6])
	assert.Equal(t, "2025-06-02", records[1][8])
	assert.Equal(t, "art|museum", records[1][11])
}

func TestGetExport_PDF(t *testing.T) {
	rec := do(t, exportHandler(exportRowFixture()), http.MethodGet, "/export?format=pdf", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))
}

func TestGetExport_422_UnknownFormat(t *testing.T) {
	rec := do(t, exportHandler(), http.MethodGet, "/export?format=xml", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
