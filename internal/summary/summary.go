// Package summary reduces lodging stays and pre-computed route segments into
// whole-trip figures for the map view.
//
// Route segments are trusted as supplied: they are expected to follow the
// same order as OrderedStops, but nothing here checks that.
package summary

import (
	"slices"
	"strconv"

	"github.com/pkordes/eeplog/backend/internal/calendar"
	"github.com/pkordes/eeplog/backend/internal/domain"
)

// CoordinateLookup resolves a city name to its location.
type CoordinateLookup interface {
	Coordinate(city string) (domain.LatLng, bool)
}

// Coordinates is a CoordinateLookup backed by a map keyed by exact city name.
type Coordinates map[string]domain.LatLng

// Coordinate implements CoordinateLookup.
func (c Coordinates) Coordinate(city string) (domain.LatLng, bool) {
	ll, ok := c[city]
	return ll, ok
}

// CoordinatesFromCities builds a Coordinates table from a city list.
func CoordinatesFromCities(cities []domain.City) Coordinates {
	out := make(Coordinates, len(cities))
	for _, c := range cities {
		out[c.Name] = c.LatLng
	}
	return out
}

// OrderedStays returns a copy of stays sorted by check-in date ascending.
// Stays with the same check-in keep their input order.
func OrderedStays(stays []domain.LodgingStay) []domain.LodgingStay {
	out := slices.Clone(stays)
	if out == nil {
		out = []domain.LodgingStay{}
	}
	slices.SortStableFunc(out, func(a, b domain.LodgingStay) int {
		ka, kb := calendar.Key(a.CheckIn), calendar.Key(b.CheckIn)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		}
		return 0
	})
	return out
}

// OrderedStops returns the city of each stay in check-in order.
func OrderedStops(stays []domain.LodgingStay) []string {
	ordered := OrderedStays(stays)
	out := make([]string, len(ordered))
	for i, s := range ordered {
		out[i] = s.City
	}
	return out
}

// Totals is the summed distance and driving time over a list of segments.
type Totals struct {
	DistanceMiles float64
	DurationHours float64
}

// MilesText renders DistanceMiles with one decimal place.
func (t Totals) MilesText() string {
	return strconv.FormatFloat(t.DistanceMiles, 'f', 1, 64)
}

// HoursText renders DurationHours with one decimal place.
func (t Totals) HoursText() string {
	return strconv.FormatFloat(t.DurationHours, 'f', 1, 64)
}

// TripTotals sums distance and duration across segments.
func TripTotals(segments []domain.RouteSegment) Totals {
	var t Totals
	for _, s := range segments {
		t.DistanceMiles += s.DistanceMiles
		t.DurationHours += s.DurationHours
	}
	return t
}

// Stop is a stay with a known location, numbered in visiting order from 1.
type Stop struct {
	Number int
	Stay   domain.LodgingStay
	domain.LatLng
}

// Path returns the stays in check-in order paired with their coordinates.
// Stays whose city has no known coordinate are left out.
func Path(stays []domain.LodgingStay, lookup CoordinateLookup) []Stop {
	out := []Stop{}
	for _, s := range OrderedStays(stays) {
		ll, ok := lookup.Coordinate(s.City)
		if !ok {
			continue
		}
		out = append(out, Stop{Number: len(out) + 1, Stay: s, LatLng: ll})
	}
	return out
}

// Centroid averages latitude and longitude over every stay with a known
// coordinate. It returns false when there is no such stay; callers need a
// fallback view in that case.
func Centroid(stays []domain.LodgingStay, lookup CoordinateLookup) (domain.LatLng, bool) {
	var sum domain.LatLng
	n := 0
	for _, s := range stays {
		ll, ok := lookup.Coordinate(s.City)
		if !ok {
			continue
		}
		sum.Lat += ll.Lat
		sum.Lng += ll.Lng
		n++
	}
	if n == 0 {
		return domain.LatLng{}, false
	}
	return domain.LatLng{Lat: sum.Lat / float64(n), Lng: sum.Lng / float64(n)}, true
}

// Summary is everything the map view shows.
type Summary struct {
	Stops     []Stop
	Segments  []domain.RouteSegment
	Totals    Totals
	Center    domain.LatLng
	HasCenter bool
}

// CityCount is the number of plotted stops.
func (s Summary) CityCount() int {
	return len(s.Stops)
}

// Summarize builds the map summary for stays and segments.
func Summarize(stays []domain.LodgingStay, segments []domain.RouteSegment, lookup CoordinateLookup) Summary {
	center, ok := Centroid(stays, lookup)
	segs := slices.Clone(segments)
	if segs == nil {
		segs = []domain.RouteSegment{}
	}
	return Summary{
		Stops:     Path(stays, lookup),
		Segments:  segs,
		Totals:    TripTotals(segments),
		Center:    center,
		HasCenter: ok,
	}
}
