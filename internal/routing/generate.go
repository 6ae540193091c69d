package routing

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/pkordes/eeplog/backend/internal/domain"
)

const metersPerMile = 1609.34

// Router is the one OSRM call the Generator needs. *Client satisfies it.
type Router interface {
	Route(ctx context.Context, from, to domain.City) (Route, error)
}

// Generator walks a city list and asks its Router for each consecutive pair.
type Generator struct {
	router Router
	delay  time.Duration
	log    *slog.Logger

	// wait pauses between queries. Tests replace it to avoid real sleeps.
	wait func(ctx context.Context, d time.Duration) error
}

// NewGenerator returns a Generator that pauses delay between consecutive
// queries. A nil logger falls back to slog.Default().
func NewGenerator(router Router, delay time.Duration, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}
	return &Generator{router: router, delay: delay, log: log, wait: sleep}
}

// Generate returns one segment per consecutive city pair that OSRM answered,
// in visiting order. A failed pair is logged, reported in the error slice and
// left out, so the result may have gaps. Failures are not retried.
// Cancelling ctx stops the walk; the context error is the last entry in errs.
func (g *Generator) Generate(ctx context.Context, cities []domain.City) ([]domain.RouteSegment, []error) {
	segments := make([]domain.RouteSegment, 0, max(len(cities)-1, 0))
	var errs []error

	for i := 0; i+1 < len(cities); i++ {
		if i > 0 && g.delay > 0 {
			if err := g.wait(ctx, g.delay); err != nil {
				return segments, append(errs, err)
			}
		}
		from, to := cities[i], cities[i+1]

		g.log.InfoContext(ctx, "querying route", "from", from.Name, "to", to.Name)
		r, err := g.router.Route(ctx, from, to)
		if err != nil {
			if ctx.Err() != nil {
				return segments, append(errs, ctx.Err())
			}
			g.log.ErrorContext(ctx, "route failed", "from", from.Name, "to", to.Name, "error", err)
			errs = append(errs, fmt.Errorf("routing.Generator.Generate: %w", err))
			continue
		}

		seg := Segment(from.Name, to.Name, r)
		g.log.InfoContext(ctx, "route ok",
			"from", from.Name,
			"to", to.Name,
			"distance_miles", seg.DistanceMiles,
			"duration_hours", seg.DurationHours,
		)
		segments = append(segments, seg)
	}
	return segments, errs
}

// Segment converts an OSRM route to miles and hours, each rounded to one decimal.
func Segment(from, to string, r Route) domain.RouteSegment {
	return domain.RouteSegment{
		From:          from,
		To:            to,
		DistanceMiles: round1(r.DistanceMeters / metersPerMile),
		DurationHours: round1(r.DurationSeconds / 3600),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
