package service

import (
	"context"
	"fmt"

	"github.com/pkordes/eeplog/backend/internal/calendar"
	"github.com/pkordes/eeplog/backend/internal/domain"
)

// Export returns one ItineraryRow per day of the trip range, first day first.
func (s *ItineraryService) Export(ctx context.Context) ([]domain.ItineraryRow, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.Export: %w", err)
	}

	rows := []domain.ItineraryRow{}
	for d := range calendar.Days(s.plan.TripStart, s.plan.TripEnd) {
		rows = append(rows, itineraryRow(s.resolve(d, snap)))
	}
	return rows, nil
}

// itineraryRow flattens a resolved day into an export row.
func itineraryRow(d DayView) domain.ItineraryRow {
	row := domain.ItineraryRow{
		Date:       d.Key,
		Weekday:    d.Weekday.String()[:3],
		CheckIn:    d.CheckIn,
		CheckOut:   d.CheckOut,
		Activities: make([]string, len(d.Activities)),
	}
	if d.Lodging != nil {
		row.City = d.Lodging.City
		row.Beds = d.Lodging.Beds
		row.BookingLink = d.Lodging.BookingLink
	}
	for i, a := range d.Activities {
		row.Activities[i] = a.Title
	}
	return row
}
