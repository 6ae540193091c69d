package domain

// ItineraryRow is a single row in the itinerary export.
// It is a flat view: one row per calendar day of the trip, with the lodging
// for that night and the titles of that day's activities.
// Days without lodging yield empty City/BookingLink and zero Beds.
type ItineraryRow struct {
	Date     string // "2006-01-02"
	Weekday  string // "Mon", "Tue", ...
	City     string
	Beds     int
	CheckIn  bool
	CheckOut bool

	BookingLink string

	// Activities holds the titles of the day's activities, in input order.
	// Callers that need a joined string (e.g. CSV) should join with "|".
	Activities []string
}
