package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListStays handles GET /stays.
func (s *Server) ListStays(w http.ResponseWriter, r *http.Request) {
	stays, err := s.itinerary.Stays(r.Context())
	if err != nil {
		s.fail(w, r, err, "")
		return
	}

	data := make([]Stay, len(stays))
	for i, st := range stays {
		data[i] = stayToResponse(st)
	}
	s.writeJSON(w, r, http.StatusOK, data)
}

// GetStay handles GET /stays/{id}.
func (s *Server) GetStay(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.invalid(w, r, "id must be a UUID")
		return
	}

	stay, err := s.itinerary.GetStay(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, "stay not found")
		return
	}
	s.writeJSON(w, r, http.StatusOK, stayToResponse(stay))
}

// ListActivities handles GET /activities.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := s.itinerary.Activities(r.Context())
	if err != nil {
		s.fail(w, r, err, "")
		return
	}
	s.writeJSON(w, r, http.StatusOK, activitiesToResponse(activities))
}
