// Package tripday answers, for a single calendar day, where the night is
// spent, whether the day is a check-in or check-out day, and what is planned.
//
// Every function is pure: inputs are never modified and no state is kept, so
// calls are idempotent and safe from any goroutine. All comparisons go
// through calendar.Key.
package tripday

import (
	"time"

	"github.com/pkordes/eeplog/backend/internal/calendar"
	"github.com/pkordes/eeplog/backend/internal/domain"
)

// LodgingFor returns the stay covering the night of date: the first stay, in
// input order, with checkIn <= date < checkOut. Overlapping stays resolve to
// whichever comes first. A stay whose check-out is not after its check-in
// never matches.
func LodgingFor(date time.Time, stays []domain.LodgingStay) (domain.LodgingStay, bool) {
	k := calendar.Key(date)
	for _, s := range stays {
		if k >= calendar.Key(s.CheckIn) && k < calendar.Key(s.CheckOut) {
			return s, true
		}
	}
	return domain.LodgingStay{}, false
}

// IsCheckIn reports whether any stay checks in on date.
func IsCheckIn(date time.Time, stays []domain.LodgingStay) bool {
	k := calendar.Key(date)
	for _, s := range stays {
		if calendar.Key(s.CheckIn) == k {
			return true
		}
	}
	return false
}

// IsCheckOut reports whether any stay checks out on date.
func IsCheckOut(date time.Time, stays []domain.LodgingStay) bool {
	k := calendar.Key(date)
	for _, s := range stays {
		if calendar.Key(s.CheckOut) == k {
			return true
		}
	}
	return false
}

// ActivitiesFor returns the activities on date in input order.
// The result is never nil.
func ActivitiesFor(date time.Time, activities []domain.Activity) []domain.Activity {
	k := calendar.Key(date)
	out := []domain.Activity{}
	for _, a := range activities {
		if calendar.Key(a.Date) == k {
			out = append(out, a)
		}
	}
	return out
}

// Day is everything known about one calendar day.
// CheckIn and CheckOut may both be true on a changeover day.
type Day struct {
	calendar.Day
	Lodging    *domain.LodgingStay // nil when no stay covers the night
	CheckIn    bool
	CheckOut   bool
	Activities []domain.Activity
}

// Resolve answers all four questions for day.
func Resolve(day calendar.Day, stays []domain.LodgingStay, activities []domain.Activity) Day {
	out := Day{
		Day:        day,
		CheckIn:    IsCheckIn(day.Date, stays),
		CheckOut:   IsCheckOut(day.Date, stays),
		Activities: ActivitiesFor(day.Date, activities),
	}
	if s, ok := LodgingFor(day.Date, stays); ok {
		out.Lodging = &s
	}
	return out
}
