// Package service contains the business logic for the trip planner API.
// Services fetch a fresh snapshot from the repos on every call and hand it to
// the pure calendar, tripday and summary packages. Nothing is cached.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/eeplog/backend/internal/calendar"
	"github.com/pkordes/eeplog/backend/internal/domain"
	"github.com/pkordes/eeplog/backend/internal/repo"
	"github.com/pkordes/eeplog/backend/internal/summary"
	"github.com/pkordes/eeplog/backend/internal/tripday"
)

// DayView is a resolved day plus whether it falls inside the trip itself.
type DayView struct {
	tripday.Day
	InTrip bool
}

// Calendar is the resolved grid for the configured window.
type Calendar struct {
	WindowStart time.Time
	WindowEnd   time.Time
	TripStart   time.Time
	TripEnd     time.Time
	Weeks       [][7]DayView
}

// ItineraryService answers every read the presentation layer needs.
type ItineraryService struct {
	stays      repo.StayRepo
	activities repo.ActivityRepo
	plan       domain.TripPlan
	coords     summary.CoordinateLookup
}

// NewItineraryService constructs an ItineraryService over the given repos and trip plan.
// City coordinates for the map come from plan.Cities.
func NewItineraryService(stays repo.StayRepo, activities repo.ActivityRepo, plan domain.TripPlan) *ItineraryService {
	return &ItineraryService{
		stays:      stays,
		activities: activities,
		plan:       plan,
		coords:     summary.CoordinatesFromCities(plan.Cities),
	}
}

// Snapshot fetches stays and activities. Both slices are non-nil.
// Either fetch failing fails the whole snapshot; callers never see half a trip.
func (s *ItineraryService) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	stays, err := s.stays.List(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("service.ItineraryService.Snapshot: stays: %w", err)
	}
	activities, err := s.activities.List(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("service.ItineraryService.Snapshot: activities: %w", err)
	}
	if stays == nil {
		stays = []domain.LodgingStay{}
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	return domain.Snapshot{Stays: stays, Activities: activities}, nil
}

// Calendar resolves every day of the week grid covering the plan's window.
func (s *ItineraryService) Calendar(ctx context.Context) (Calendar, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return Calendar{}, fmt.Errorf("service.ItineraryService.Calendar: %w", err)
	}

	out := Calendar{
		WindowStart: s.plan.WindowStart,
		WindowEnd:   s.plan.WindowEnd,
		TripStart:   s.plan.TripStart,
		TripEnd:     s.plan.TripEnd,
		Weeks:       [][7]DayView{},
	}
	for week := range calendar.Weeks(s.plan.WindowStart, s.plan.WindowEnd) {
		var row [7]DayView
		for i, d := range week {
			row[i] = s.resolve(d, snap)
		}
		out.Weeks = append(out.Weeks, row)
	}
	return out, nil
}

// Day resolves a single date. Any date is accepted, inside the window or not.
func (s *ItineraryService) Day(ctx context.Context, date time.Time) (DayView, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return DayView{}, fmt.Errorf("service.ItineraryService.Day: %w", err)
	}
	return s.resolve(calendar.NewDay(date), snap), nil
}

// Map summarises the stays and the plan's route segments for the map view.
func (s *ItineraryService) Map(ctx context.Context) (summary.Summary, error) {
	stays, err := s.Stays(ctx)
	if err != nil {
		return summary.Summary{}, fmt.Errorf("service.ItineraryService.Map: %w", err)
	}
	return summary.Summarize(stays, s.plan.Routes, s.coords), nil
}

// Stays returns all lodging stays ordered by check-in.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ItineraryService) Stays(ctx context.Context) ([]domain.LodgingStay, error) {
	stays, err := s.stays.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.Stays: %w", err)
	}
	if stays == nil {
		return []domain.LodgingStay{}, nil
	}
	return stays, nil
}

// GetStay returns one stay. Returns domain.ErrNotFound if it does not exist.
func (s *ItineraryService) GetStay(ctx context.Context, id uuid.UUID) (domain.LodgingStay, error) {
	stay, err := s.stays.GetByID(ctx, id)
	if err != nil {
		return domain.LodgingStay{}, fmt.Errorf("service.ItineraryService.GetStay: %w", err)
	}
	return stay, nil
}

// Activities returns all activities ordered by date.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ItineraryService) Activities(ctx context.Context) ([]domain.Activity, error) {
	activities, err := s.activities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.Activities: %w", err)
	}
	if activities == nil {
		return []domain.Activity{}, nil
	}
	return activities, nil
}

func (s *ItineraryService) resolve(d calendar.Day, snap domain.Snapshot) DayView {
	return DayView{
		Day:    tripday.Resolve(d, snap.Stays, snap.Activities),
		InTrip: calendar.InRange(d.Date, s.plan.TripStart, s.plan.TripEnd),
	}
}
