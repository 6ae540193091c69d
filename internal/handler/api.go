package handler

import (
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/eeplog/backend/internal/domain"
	"github.com/pkordes/eeplog/backend/internal/service"
	"github.com/pkordes/eeplog/backend/internal/summary"
)

// Wire types. Field names and shapes match spec/openapi.yaml.
// Dates use openapi_types.Date so they encode as "2006-01-02".

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps every non-2xx JSON body.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// Stay is a lodging stay. CheckOut is exclusive.
type Stay struct {
	ID          uuid.UUID          `json:"id"`
	City        string             `json:"city"`
	CheckIn     openapi_types.Date `json:"check_in"`
	CheckOut    openapi_types.Date `json:"check_out"`
	Beds        int                `json:"beds"`
	BookingLink *string            `json:"booking_link,omitempty"`
}

// Activity is a planned activity on a single date.
type Activity struct {
	ID          uuid.UUID          `json:"id"`
	Date        openapi_types.Date `json:"date"`
	Title       string             `json:"title"`
	Description *string            `json:"description,omitempty"`
	Link        *string            `json:"link,omitempty"`
}

// Day is one resolved calendar day. Lodging is null on nights with no booked stay.
type Day struct {
	Date       openapi_types.Date `json:"date"`
	Weekday    string             `json:"weekday"`
	InTrip     bool               `json:"in_trip"`
	Lodging    *Stay              `json:"lodging"`
	CheckIn    bool               `json:"check_in"`
	CheckOut   bool               `json:"check_out"`
	Activities []Activity         `json:"activities"`
}

// DateRange is an inclusive pair of dates.
type DateRange struct {
	Start openapi_types.Date `json:"start"`
	End   openapi_types.Date `json:"end"`
}

// CalendarResponse is the body of GET /calendar. Each week has seven days, Sunday first.
type CalendarResponse struct {
	Window DateRange `json:"window"`
	Trip   DateRange `json:"trip"`
	Weeks  [][]Day   `json:"weeks"`
}

// LatLng is a map coordinate in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MapStop is a numbered stay pinned on the map.
type MapStop struct {
	Number int  `json:"number"`
	Stay   Stay `json:"stay"`
	LatLng
}

// Segment is the drive between two consecutive cities.
type Segment struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	DistanceMiles float64 `json:"distance_miles"`
	DurationHours float64 `json:"duration_hours"`
}

// Totals are pre-formatted with one decimal place.
type Totals struct {
	DistanceMiles string `json:"distance_miles"`
	DurationHours string `json:"duration_hours"`
}

// MapResponse is the body of GET /map.
type MapResponse struct {
	Stops     []MapStop `json:"stops"`
	Segments  []Segment `json:"segments"`
	Totals    Totals    `json:"totals"`
	Center    *LatLng   `json:"center"` // null when no stop has a coordinate
	CityCount int       `json:"city_count"`
}

// ExportRow is one trip day in the JSON export. Stay fields are omitted on days without lodging.
type ExportRow struct {
	Date        openapi_types.Date `json:"date"`
	Weekday     string             `json:"weekday"`
	City        *string            `json:"city,omitempty"`
	Beds        *int               `json:"beds,omitempty"`
	CheckIn     bool               `json:"check_in"`
	CheckOut    bool               `json:"check_out"`
	BookingLink *string            `json:"booking_link,omitempty"`
	Activities  []string           `json:"activities"`
}

// --- mapping helpers --------------------------------------------------------

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stayToResponse(s domain.LodgingStay) Stay {
	return Stay{
		ID:          s.ID,
		City:        s.City,
		CheckIn:     openapi_types.Date{Time: s.CheckIn},
		CheckOut:    openapi_types.Date{Time: s.CheckOut},
		Beds:        s.Beds,
		BookingLink: optional(s.BookingLink),
	}
}

func activityToResponse(a domain.Activity) Activity {
	return Activity{
		ID:          a.ID,
		Date:        openapi_types.Date{Time: a.Date},
		Title:       a.Title,
		Description: optional(a.Description),
		Link:        optional(a.Link),
	}
}

func activitiesToResponse(as []domain.Activity) []Activity {
	out := make([]Activity, len(as))
	for i, a := range as {
		out[i] = activityToResponse(a)
	}
	return out
}

func dayToResponse(d service.DayView) Day {
	resp := Day{
		Date:       openapi_types.Date{Time: d.Date},
		Weekday:    d.Weekday.String()[:3],
		InTrip:     d.InTrip,
		CheckIn:    d.CheckIn,
		CheckOut:   d.CheckOut,
		Activities: activitiesToResponse(d.Activities),
	}
	if d.Lodging != nil {
		st := stayToResponse(*d.Lodging)
		resp.Lodging = &st
	}
	return resp
}

func calendarToResponse(c service.Calendar) CalendarResponse {
	resp := CalendarResponse{
		Window: DateRange{Start: openapi_types.Date{Time: c.WindowStart}, End: openapi_types.Date{Time: c.WindowEnd}},
		Trip:   DateRange{Start: openapi_types.Date{Time: c.TripStart}, End: openapi_types.Date{Time: c.TripEnd}},
		Weeks:  make([][]Day, len(c.Weeks)),
	}
	for i, w := range c.Weeks {
		days := make([]Day, len(w))
		for j, d := range w {
			days[j] = dayToResponse(d)
		}
		resp.Weeks[i] = days
	}
	return resp
}

func summaryToResponse(s summary.Summary) MapResponse {
	resp := MapResponse{
		Stops:     make([]MapStop, len(s.Stops)),
		Segments:  make([]Segment, len(s.Segments)),
		Totals:    Totals{DistanceMiles: s.Totals.MilesText(), DurationHours: s.Totals.HoursText()},
		CityCount: s.CityCount(),
	}
	for i, st := range s.Stops {
		resp.Stops[i] = MapStop{
			Number: st.Number,
			Stay:   stayToResponse(st.Stay),
			LatLng: LatLng{Lat: st.Lat, Lng: st.Lng},
		}
	}
	for i, seg := range s.Segments {
		resp.Segments[i] = Segment(seg)
	}
	if s.HasCenter {
		resp.Center = &LatLng{Lat: s.Center.Lat, Lng: s.Center.Lng}
	}
	return resp
}
