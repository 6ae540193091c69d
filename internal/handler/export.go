package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/eeplog/backend/internal/calendar"
	"github.com/pkordes/eeplog/backend/internal/domain"
	"github.com/pkordes/eeplog/backend/internal/icsexport"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"date", "weekday", "city", "beds",
	"check_in", "check_out", "booking_link", "activities",
}

// GetExport handles GET /export.
// It returns one row per trip day as JSON (default) or ?format=csv.
// ?format=ics returns every stay and activity as an iCalendar feed instead.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	switch format {
	case "", "json", "csv":
	case "ics":
		s.writeICS(w, r)
		return
	default:
		s.invalid(w, r, "format must be json, csv or ics")
		return
	}

	rows, err := s.itinerary.Export(r.Context())
	if err != nil {
		s.fail(w, r, err, "")
		return
	}

	if format == "csv" {
		s.writeCSV(w, r, rows)
		return
	}
	out := make([]ExportRow, len(rows))
	for i, row := range rows {
		out[i] = exportRowToResponse(row)
	}
	s.writeJSON(w, r, http.StatusOK, out)
}

// writeCSV encodes rows as CSV. Activity titles are pipe-separated ("|")
// to keep each day on a single CSV line.
func (s *Server) writeCSV(w http.ResponseWriter, r *http.Request, rows []domain.ItineraryRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(exportRowToCSVRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.log.WarnContext(r.Context(), "write csv", "error", err)
	}
}

// writeICS renders the current snapshot as text/calendar.
func (s *Server) writeICS(w http.ResponseWriter, r *http.Request) {
	snap, err := s.itinerary.Snapshot(r.Context())
	if err != nil {
		s.fail(w, r, err, "")
		return
	}

	var buf bytes.Buffer
	if err := icsexport.Write(&buf, snap, time.Now()); err != nil {
		s.fail(w, r, err, "")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.ics"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.log.WarnContext(r.Context(), "write ics", "error", err)
	}
}

// exportRowToResponse maps a domain row to its JSON shape.
// A day without lodging omits city, beds and booking_link.
func exportRowToResponse(row domain.ItineraryRow) ExportRow {
	out := ExportRow{
		Weekday:     row.Weekday,
		City:        optional(row.City),
		CheckIn:     row.CheckIn,
		CheckOut:    row.CheckOut,
		BookingLink: optional(row.BookingLink),
		Activities:  row.Activities,
	}
	if out.Activities == nil {
		out.Activities = []string{}
	}
	if d, err := calendar.ParseKey(row.Date); err == nil {
		out.Date = openapi_types.Date{Time: d}
	}
	if row.City != "" {
		beds := row.Beds
		out.Beds = &beds
	}
	return out
}

// exportRowToCSVRecord encodes a row as a flat string slice.
// Beds is empty on days without lodging.
func exportRowToCSVRecord(row domain.ItineraryRow) []string {
	beds := ""
	if row.City != "" {
		beds = strconv.Itoa(row.Beds)
	}
	return []string{
		row.Date,
		row.Weekday,
		row.City,
		beds,
		strconv.FormatBool(row.CheckIn),
		strconv.FormatBool(row.CheckOut),
		row.BookingLink,
		strings.Join(row.Activities, "|"),
	}
}
