package domain

import "time"

// LatLng is a point in decimal degrees.
type LatLng struct {
	Lat float64
	Lng float64
}

// City is a named stop with a known location.
type City struct {
	Name string
	LatLng
}

// RouteSegment is a pre-computed drive between two consecutive stops.
// From and To match LodgingStay.City by exact string equality.
type RouteSegment struct {
	From          string
	To            string
	DistanceMiles float64
	DurationHours float64
}

// TripPlan is the static, file-supplied part of the trip: which days the
// calendar shows, which days are highlighted as the trip itself, where each
// city is, and the route segments in visiting order.
type TripPlan struct {
	WindowStart time.Time
	WindowEnd   time.Time
	TripStart   time.Time
	TripEnd     time.Time
	Cities      []City
	Routes      []RouteSegment
}
