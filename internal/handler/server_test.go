package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/eeplog/backend/internal/domain"
	"github.com/pkordes/eeplog/backend/internal/handler"
	"github.com/pkordes/eeplog/backend/internal/service"
	"github.com/pkordes/eeplog/backend/internal/summary"
)

// ---- mock ItineraryServicer ------------------------------------------------

// mockItinerary implements handler.ItineraryServicer.
// Each field is a function so tests can configure only what they need.
// Calling an unset method panics, which surfaces unexpected calls loudly.
type mockItinerary struct {
	snapshot   func(ctx context.Context) (domain.Snapshot, error)
	calendar   func(ctx context.Context) (service.Calendar, error)
	day        func(ctx context.Context, date time.Time) (service.DayView, error)
	mapSummary func(ctx context.Context) (summary.Summary, error)
	stays      func(ctx context.Context) ([]domain.LodgingStay, error)
	getStay    func(ctx context.Context, id uuid.UUID) (domain.LodgingStay, error)
	activities func(ctx context.Context) ([]domain.Activity, error)
	export     func(ctx context.Context) ([]domain.ItineraryRow, error)
}

func (m *mockItinerary) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	return m.snapshot(ctx)
}

func (m *mockItinerary) Calendar(ctx context.Context) (service.Calendar, error) {
	return m.calendar(ctx)
}

func (m *mockItinerary) Day(ctx context.Context, date time.Time) (service.DayView, error) {
	return m.day(ctx, date)
}

func (m *mockItinerary) Map(ctx context.Context) (summary.Summary, error) {
	return m.mapSummary(ctx)
}

func (m *mockItinerary) Stays(ctx context.Context) ([]domain.LodgingStay, error) {
	return m.stays(ctx)
}

func (m *mockItinerary) GetStay(ctx context.Context, id uuid.UUID) (domain.LodgingStay, error) {
	return m.getStay(ctx, id)
}

func (m *mockItinerary) Activities(ctx context.Context) ([]domain.Activity, error) {
	return m.activities(ctx)
}

func (m *mockItinerary) Export(ctx context.Context) ([]domain.ItineraryRow, error) {
	return m.export(ctx)
}

// compile-time check: mockItinerary must satisfy handler.ItineraryServicer.
var _ handler.ItineraryServicer = (*mockItinerary)(nil)

// ---- helpers ---------------------------------------------------------------

var errDB = errors.New("connection refused")

// serve routes a GET request through the real router and returns the recorder.
func serve(svc handler.ItineraryServicer, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.NewServer(svc, nil).Routes().ServeHTTP(rec, req)
	return rec
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// stayFixture returns a Memphis stay covering the nights of Nov 7 and 8.
func stayFixture() domain.LodgingStay {
	return domain.LodgingStay{
		ID:          uuid.New(),
		City:        "Memphis",
		CheckIn:     date(2025, time.November, 7),
		CheckOut:    date(2025, time.November, 9),
		Beds:        2,
		BookingLink: "https://example.com/memphis",
	}
}

func activityFixture() domain.Activity {
	return domain.Activity{
		ID:    uuid.New(),
		Date:  date(2025, time.November, 8),
		Title: "Graceland",
	}
}
