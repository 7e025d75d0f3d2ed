package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/phpdave11/gofpdf"

	"github.com/pkordes/wanderlust/internal/domain"
)

// Export formats accepted by ?format=.
const (
	formatJSON = "json"
	formatCSV  = "csv"
	formatPDF  = "pdf"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "trip_title", "destination", "status", "start_date", "end_date",
	"duration_days", "entry_title", "entry_date", "entry_location", "entry_mood", "tags",
}

// ExportRow is the JSON form of one export row. Empty text fields are omitted.
type ExportRow struct {
	TripID          *uuid.UUID          `json:"trip_id,omitempty"`
	TripTitle       string              `json:"trip_title,omitempty"`
	DestinationName string              `json:"destination_name,omitempty"`
	Status          string              `json:"status,omitempty"`
	StartDate       *openapi_types.Date `json:"start_date,omitempty"`
	EndDate         *openapi_types.Date `json:"end_date,omitempty"`
	DurationDays    int                 `json:"duration_days,omitempty"`
	EntryTitle      string              `json:"entry_title,omitempty"`
	EntryDate       *openapi_types.Date `json:"entry_date,omitempty"`
	EntryLocation   string              `json:"entry_location,omitempty"`
	EntryMood       string              `json:"entry_mood,omitempty"`
	Tags            []string            `json:"tags"`
}

// GetExport handles GET /export.
// It returns a flat table of every trip and diary entry combination.
// Use ?format=csv or ?format=pdf for a download; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	var format *string
	if err := queryParam(r, "format", &format); err != nil {
		s.writeError(w, r, err)
		return
	}
	f := formatJSON
	if format != nil && *format != "" {
		f = strings.ToLower(*format)
	}
	if f != formatJSON && f != formatCSV && f != formatPDF {
		s.writeError(w, r, badRequest("format must be one of json, csv, pdf"))
		return
	}

	rows, err := s.svc.Export.Export(r.Context(), session(r).UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	switch f {
	case formatCSV:
		s.writeAttachment(w, r, "text/csv", "wanderlust-export.csv", buildCSV(rows))
	case formatPDF:
		body, err := buildPDF(rows, time.Now())
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		s.writeAttachment(w, r, "application/pdf", "wanderlust-export.pdf", body)
	default:
		out := make([]ExportRow, 0, len(rows))
		for _, row := range rows {
			out = append(out, rowToResponse(row))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func (s *Server) writeAttachment(w http.ResponseWriter, r *http.Request, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		s.log.WarnContext(r.Context(), "export write failed", "error", err)
	}
}

// buildCSV encodes rows as CSV. Tags within a row are pipe-separated ("|")
// to keep each entry on a single CSV line.
func buildCSV(rows []domain.ExportRow) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	// bytes.Buffer writes never fail, so neither does csv.Writer here.
	_ = w.Write(csvHeaders)
	for _, r := range rows {
		_ = w.Write(rowToCSVRecord(r))
	}
	w.Flush()
	return buf.Bytes()
}

func rowToCSVRecord(r domain.ExportRow) []string {
	duration := ""
	if r.DurationDays > 0 {
		duration = strconv.Itoa(r.DurationDays)
	}
	return []string{
		r.TripID,
		r.TripTitle,
		r.DestinationName,
		r.Status,
		r.StartDate,
		r.EndDate,
		duration,
		r.EntryTitle,
		formatOptionalDate(r.EntryDate),
		r.EntryLocation,
		r.EntryMood,
		strings.Join(r.Tags, "|"),
	}
}

// pdfColumns are the columns printed in the PDF table, with widths in mm.
var pdfColumns = []struct {
	title string
	width float64
	value func(domain.ExportRow) string
}{
	{"Trip", 50, func(r domain.ExportRow) string { return r.TripTitle }},
	{"Destination", 40, func(r domain.ExportRow) string { return r.DestinationName }},
	{"Dates", 45, func(r domain.ExportRow) string {
		if r.StartDate == "" {
			return ""
		}
		return r.StartDate + " - " + r.EndDate
	}},
	{"Status", 25, func(r domain.ExportRow) string { return r.Status }},
	{"Entry", 55, func(r domain.ExportRow) string { return r.EntryTitle }},
	{"Date", 25, func(r domain.ExportRow) string { return formatOptionalDate(r.EntryDate) }},
	{"Mood", 25, func(r domain.ExportRow) string { return r.EntryMood }},
}

// buildPDF renders rows as a landscape A4 table.
func buildPDF(rows []domain.ExportRow, generated time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Wanderlust export", false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Wanderlust travel export")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Generated "+generated.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range pdfColumns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range rows {
		for _, c := range pdfColumns {
			pdf.CellFormat(c.width, 6, tr(truncate(c.value(r), int(c.width/2))), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(rows) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 8, "No trips or diary entries yet.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rowToResponse(r domain.ExportRow) ExportRow {
	row := ExportRow{
		TripTitle:       r.TripTitle,
		DestinationName: r.DestinationName,
		Status:          r.Status,
		DurationDays:    r.DurationDays,
		EntryTitle:      r.EntryTitle,
		EntryLocation:   r.EntryLocation,
		EntryMood:       r.EntryMood,
		Tags:            nonNil(r.Tags),
	}
	if id, err := uuid.Parse(r.TripID); err == nil {
		row.TripID = &id
	}
	row.StartDate = parseOptionalDate(r.StartDate)
	row.EndDate = parseOptionalDate(r.EndDate)
	if r.EntryDate != nil {
		row.EntryDate = &openapi_types.Date{Time: *r.EntryDate}
	}
	return row
}

// parseOptionalDate parses a "2006-01-02" string; empty or malformed input yields nil.
func parseOptionalDate(s string) *openapi_types.Date {
	t, err := time.Parse(openapi_types.DateFormat, s)
	if err != nil {
		return nil
	}
	return &openapi_types.Date{Time: t}
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(openapi_types.DateFormat)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n-3]) + "..."
}
