package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/eeplog/backend/internal/calendar"
	"github.com/pkordes/eeplog/backend/internal/domain"
)

// planFile mirrors the on-disk layout of trip.yaml.
//
//	window: {start: 2025-11-01, end: 2025-11-30}
//	trip:   {start: 2025-11-07, end: 2025-11-19}
//	cities:
//	  - {name: Memphis, lat: 35.1495, lng: -90.0490}
//	routes:
//	  - {from: Memphis, to: Atlanta, distance_miles: 386.7, duration_hours: 6.3}
type planFile struct {
	Window dateSpan    `yaml:"window"`
	Trip   dateSpan    `yaml:"trip"`
	Cities []cityEntry `yaml:"cities"`
	Routes []RouteYAML `yaml:"routes"`
}

type dateSpan struct {
	Start planDate `yaml:"start"`
	End   planDate `yaml:"end"`
}

type cityEntry struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lng  float64 `yaml:"lng"`
}

// RouteYAML is the YAML form of a route segment. cmd/routegen writes this
// shape so its output can be pasted under "routes:" unchanged.
type RouteYAML struct {
	From          string  `yaml:"from"`
	To            string  `yaml:"to"`
	DistanceMiles float64 `yaml:"distance_miles"`
	DurationHours float64 `yaml:"duration_hours"`
}

// planDate is a YAML scalar holding a YYYY-MM-DD key.
// Decoding the raw node value keeps yaml from guessing at timestamps.
type planDate struct {
	time.Time
}

func (d *planDate) UnmarshalYAML(n *yaml.Node) error {
	t, err := calendar.ParseKey(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	d.Time = t
	return nil
}

// LoadPlan reads and validates the trip plan at path.
func LoadPlan(path string) (domain.TripPlan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("config.LoadPlan: %w", err)
	}
	plan, err := ParsePlan(raw)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("config.LoadPlan: %s: %w", path, err)
	}
	return plan, nil
}

// ParsePlan decodes and validates a YAML trip plan.
// Unknown keys are rejected so typos do not silently drop data.
func ParsePlan(raw []byte) (domain.TripPlan, error) {
	var f planFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return domain.TripPlan{}, err
	}

	if err := f.validate(); err != nil {
		return domain.TripPlan{}, err
	}

	plan := domain.TripPlan{
		WindowStart: f.Window.Start.Time,
		WindowEnd:   f.Window.End.Time,
		TripStart:   f.Trip.Start.Time,
		TripEnd:     f.Trip.End.Time,
		Cities:      make([]domain.City, len(f.Cities)),
		Routes:      make([]domain.RouteSegment, len(f.Routes)),
	}
	for i, c := range f.Cities {
		plan.Cities[i] = domain.City{Name: c.Name, LatLng: domain.LatLng{Lat: c.Lat, Lng: c.Lng}}
	}
	for i, r := range f.Routes {
		plan.Routes[i] = r.Segment()
	}
	return plan, nil
}

// Segment converts r to a domain.RouteSegment.
func (r RouteYAML) Segment() domain.RouteSegment {
	return domain.RouteSegment{
		From:          r.From,
		To:            r.To,
		DistanceMiles: r.DistanceMiles,
		DurationHours: r.DurationHours,
	}
}

// RouteYAMLFrom converts a domain.RouteSegment to its YAML form.
func RouteYAMLFrom(s domain.RouteSegment) RouteYAML {
	return RouteYAML{
		From:          s.From,
		To:            s.To,
		DistanceMiles: s.DistanceMiles,
		DurationHours: s.DurationHours,
	}
}

func (f planFile) validate() error {
	var problems []string

	if f.Window.Start.IsZero() || f.Window.End.IsZero() {
		problems = append(problems, "window.start and window.end are required")
	} else if f.Window.Start.After(f.Window.End.Time) {
		problems = append(problems, "window.start must not be after window.end")
	}
	if f.Trip.Start.IsZero() || f.Trip.End.IsZero() {
		problems = append(problems, "trip.start and trip.end are required")
	} else if f.Trip.Start.After(f.Trip.End.Time) {
		problems = append(problems, "trip.start must not be after trip.end")
	}

	seen := make(map[string]bool, len(f.Cities))
	for i, c := range f.Cities {
		switch {
		case strings.TrimSpace(c.Name) == "":
			problems = append(problems, fmt.Sprintf("cities[%d]: name is required", i))
		case seen[c.Name]:
			problems = append(problems, fmt.Sprintf("cities[%d]: duplicate city %q", i, c.Name))
		}
		seen[c.Name] = true
		if c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
			problems = append(problems, fmt.Sprintf("cities[%d]: coordinate out of range", i))
		}
	}

	for i, r := range f.Routes {
		if r.From == "" || r.To == "" {
			problems = append(problems, fmt.Sprintf("routes[%d]: from and to are required", i))
		}
		if r.DistanceMiles < 0 || r.DurationHours < 0 {
			problems = append(problems, fmt.Sprintf("routes[%d]: distance and duration must not be negative", i))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}
