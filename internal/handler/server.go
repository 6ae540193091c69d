// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into resource files
// (health.go, calendar.go, etc.) but share the same Server struct so they can
// access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/eeplog/backend/internal/domain"
	"github.com/pkordes/eeplog/backend/internal/service"
	"github.com/pkordes/eeplog/backend/internal/summary"
)

// ItineraryServicer defines the read operations the handlers depend on.
// Defining the interface here, in the consumer package, lets handler tests
// inject a mock without touching the database or service layer.
type ItineraryServicer interface {
	Snapshot(ctx context.Context) (domain.Snapshot, error)
	Calendar(ctx context.Context) (service.Calendar, error)
	Day(ctx context.Context, date time.Time) (service.DayView, error)
	Map(ctx context.Context) (summary.Summary, error)
	Stays(ctx context.Context) ([]domain.LodgingStay, error)
	GetStay(ctx context.Context, id uuid.UUID) (domain.LodgingStay, error)
	Activities(ctx context.Context) ([]domain.Activity, error)
	Export(ctx context.Context) ([]domain.ItineraryRow, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	itinerary ItineraryServicer
	log       *slog.Logger
}

// NewServer constructs the Server. A nil logger falls back to slog.Default().
func NewServer(itinerary ItineraryServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{itinerary: itinerary, log: log}
}

// Routes returns a chi router with every API endpoint registered.
// main.go mounts it under the middleware stack.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/calendar", s.GetCalendar)
	r.Get("/days/{date}", s.GetDay)
	r.Get("/map", s.GetMap)
	r.Get("/stays", s.ListStays)
	r.Get("/stays/{id}", s.GetStay)
	r.Get("/activities", s.ListActivities)
	r.Get("/export", s.GetExport)
	return r
}
