// Package domain contains the core data types for the EepLog trip planner.
// This package has no dependencies beyond uuid and is imported by every other
// internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// LodgingStay is one booked place to sleep.
// CheckIn is the first night covered; CheckOut is the morning of departure and
// is not itself a night at this stay. Dates carry no meaningful time of day.
type LodgingStay struct {
	ID          uuid.UUID
	City        string
	CheckIn     time.Time
	CheckOut    time.Time
	Beds        int
	BookingLink string // empty when there is no link
}

// Activity is something planned on a single calendar day.
type Activity struct {
	ID          uuid.UUID
	Date        time.Time
	Title       string
	Description string
	Link        string
}

// Snapshot is one fetch of the trip data. Stays are ordered by check-in and
// activities by date, both ascending. Neither slice is mutated after fetch.
type Snapshot struct {
	Stays      []LodgingStay
	Activities []Activity
}
