package routing

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/eeplog/backend/internal/domain"
)

// fakeRouter answers from a table keyed by "from->to".
type fakeRouter struct {
	routes map[string]Route
	calls  []string
}

func (f *fakeRouter) Route(_ context.Context, from, to domain.City) (Route, error) {
	key := from.Name + "->" + to.Name
	f.calls = append(f.calls, key)
	r, ok := f.routes[key]
	if !ok {
		return Route{}, errors.New("no route for " + key)
	}
	return r, nil
}

func cities(names ...string) []domain.City {
	out := make([]domain.City, len(names))
	for i, n := range names {
		out[i] = domain.City{Name: n}
	}
	return out
}

// newTestGenerator records waits instead of sleeping.
func newTestGenerator(r Router, delay time.Duration) (*Generator, *[]time.Duration) {
	var waits []time.Duration
	g := NewGenerator(r, delay, slog.New(slog.NewTextHandler(io.Discard, nil)))
	g.wait = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	return g, &waits
}

func TestGenerate_ConsecutivePairs_ConvertedAndRounded(t *testing.T) {
	r := &fakeRouter{routes: map[string]Route{
		"Memphis->Atlanta":  {DistanceMeters: 160934, DurationSeconds: 3600 * 2.26},
		"Atlanta->Savannah": {DistanceMeters: 400000, DurationSeconds: 14000},
	}}
	g, waits := newTestGenerator(r, time.Second)

	segs, errs := g.Generate(context.Background(), cities("Memphis", "Atlanta", "Savannah"))

	assert.Empty(t, errs)
	require.Len(t, segs, 2)
	assert.Equal(t, domain.RouteSegment{From: "Memphis", To: "Atlanta", DistanceMiles: 100.0, DurationHours: 2.3}, segs[0])
	assert.Equal(t, "Savannah", segs[1].To)
	assert.InDelta(t, 248.5, segs[1].DistanceMiles, 1e-9)
	assert.InDelta(t, 3.9, segs[1].DurationHours, 1e-9)
	// One pause between the two queries, none before the first.
	assert.Equal(t, []time.Duration{time.Second}, *waits)
}

func TestGenerate_FailedPairIsSkippedNotRetried(t *testing.T) {
	r := &fakeRouter{routes: map[string]Route{
		"A->B": {DistanceMeters: 1609.34, DurationSeconds: 3600},
		"C->D": {DistanceMeters: 3218.68, DurationSeconds: 7200},
	}}
	g, _ := newTestGenerator(r, time.Second)

	segs, errs := g.Generate(context.Background(), cities("A", "B", "C", "D"))

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "B->C")
	require.Len(t, segs, 2)
	assert.Equal(t, "A", segs[0].From)
	assert.Equal(t, "C", segs[1].From)
	assert.Equal(t, []string{"A->B", "B->C", "C->D"}, r.calls)
}

func TestGenerate_FewerThanTwoCities_NoQueries(t *testing.T) {
	for _, cs := range [][]domain.City{nil, cities("Memphis")} {
		r := &fakeRouter{}
		g, _ := newTestGenerator(r, time.Second)

		segs, errs := g.Generate(context.Background(), cs)

		assert.NotNil(t, segs)
		assert.Empty(t, segs)
		assert.Empty(t, errs)
		assert.Empty(t, r.calls)
	}
}

func TestGenerate_ZeroDelay_NeverWaits(t *testing.T) {
	r := &fakeRouter{routes: map[string]Route{"A->B": {}, "B->C": {}}}
	g, waits := newTestGenerator(r, 0)

	_, errs := g.Generate(context.Background(), cities("A", "B", "C"))

	assert.Empty(t, errs)
	assert.Empty(t, *waits)
}

func TestGenerate_CancelledDuringDelay_Stops(t *testing.T) {
	r := &fakeRouter{routes: map[string]Route{"A->B": {}, "B->C": {}}}
	ctx, cancel := context.WithCancel(context.Background())
	g := NewGenerator(r, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))
	g.wait = func(ctx context.Context, d time.Duration) error {
		cancel()
		return sleep(ctx, d)
	}

	segs, errs := g.Generate(ctx, cities("A", "B", "C"))

	require.Len(t, segs, 1)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], context.Canceled)
	assert.Equal(t, []string{"A->B"}, r.calls)
}

func TestSleep_ElapsesWithoutCancel(t *testing.T) {
	require.NoError(t, sleep(context.Background(), time.Millisecond))
}
