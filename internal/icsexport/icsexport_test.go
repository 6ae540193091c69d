package icsexport_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/eeplog/backend/internal/domain"
	"github.com/pkordes/eeplog/backend/internal/icsexport"
)

func d(day int) time.Time {
	return time.Date(2025, time.November, day, 0, 0, 0, 0, time.UTC)
}

var stamp = time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC)

func fixture() domain.Snapshot {
	return domain.Snapshot{
		Stays: []domain.LodgingStay{
			{ID: uuid.New(), City: "Atlanta", CheckIn: d(9), CheckOut: d(11), Beds: 1},
			{ID: uuid.New(), City: "Memphis", CheckIn: d(7), CheckOut: d(9), Beds: 2, BookingLink: "https://example.com/memphis"},
		},
		Activities: []domain.Activity{
			{ID: uuid.New(), Date: d(8), Title: "Graceland", Description: "Tour at 10am"},
		},
	}
}

func summaries(cal *ical.Calendar) []string {
	var out []string
	for _, ev := range cal.Events() {
		out = append(out, ev.GetProperty(ical.ComponentPropertySummary).Value)
	}
	return out
}

func TestBuild_StaysInCheckInOrderThenActivities(t *testing.T) {
	cal := icsexport.Build(fixture(), stamp)

	assert.Equal(t, []string{"Memphis (2 beds)", "Atlanta (1 bed)", "Graceland"}, summaries(cal))
}

func TestWrite_AllDayEventsWithExclusiveEnd(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, icsexport.Write(&buf, fixture(), stamp))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Contains(t, out, "METHOD:PUBLISH")
	// Memphis: nights of the 7th and 8th, check-out on the 9th.
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20251107")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20251109")
	// Graceland: a single day.
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20251108")
	assert.Contains(t, out, "URL:https://example.com/memphis")
	assert.Contains(t, out, "DESCRIPTION:Tour at 10am")
}

func TestWrite_RoundTripsThroughParser(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, icsexport.Write(&buf, fixture(), stamp))

	cal, err := ical.ParseCalendar(&buf)
	require.NoError(t, err)
	require.Len(t, cal.Events(), 3)
	for _, ev := range cal.Events() {
		id := ev.GetProperty(ical.ComponentPropertyUniqueId).Value
		assert.True(t, strings.HasSuffix(id, "@eeplog"), id)
	}
}

func TestBuild_EmptySnapshot_HasNoEvents(t *testing.T) {
	cal := icsexport.Build(domain.Snapshot{}, stamp)
	assert.Empty(t, cal.Events())
}
