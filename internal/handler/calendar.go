package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/eeplog/backend/internal/calendar"
)

// GetCalendar handles GET /calendar.
func (s *Server) GetCalendar(w http.ResponseWriter, r *http.Request) {
	cal, err := s.itinerary.Calendar(r.Context())
	if err != nil {
		s.fail(w, r, err, "")
		return
	}
	s.writeJSON(w, r, http.StatusOK, calendarToResponse(cal))
}

// GetDay handles GET /days/{date}, where date is YYYY-MM-DD.
func (s *Server) GetDay(w http.ResponseWriter, r *http.Request) {
	date, err := calendar.ParseKey(chi.URLParam(r, "date"))
	if err != nil {
		s.invalid(w, r, unwrapMessage(err))
		return
	}

	day, err := s.itinerary.Day(r.Context(), date)
	if err != nil {
		s.fail(w, r, err, "")
		return
	}
	s.writeJSON(w, r, http.StatusOK, dayToResponse(day))
}

// GetMap handles GET /map.
func (s *Server) GetMap(w http.ResponseWriter, r *http.Request) {
	sum, err := s.itinerary.Map(r.Context())
	if err != nil {
		s.fail(w, r, err, "")
		return
	}
	s.writeJSON(w, r, http.StatusOK, summaryToResponse(sum))
}
