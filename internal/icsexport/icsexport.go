// Package icsexport renders the trip as an iCalendar feed so it can be
// subscribed to or imported into a calendar app.
//
// Each lodging stay becomes one all-day event spanning its nights; DTEND is
// exclusive in iCalendar, so the check-out date maps onto it directly. Each
// activity becomes a single all-day event.
package icsexport

import (
	"fmt"
	"io"
	"strconv"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/pkordes/eeplog/backend/internal/domain"
	"github.com/pkordes/eeplog/backend/internal/summary"
)

const (
	productID = "eeplog"
	uidDomain = "eeplog"
)

// Build returns a calendar with one event per stay (check-in order) and
// one per activity (input order). stamp is written as every event's DTSTAMP.
func Build(snap domain.Snapshot, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendarFor(productID)
	cal.SetMethod(ical.MethodPublish)
	cal.SetXWRCalName("Road trip")

	for _, st := range summary.OrderedStays(snap.Stays) {
		ev := cal.AddEvent(uid("stay", st.ID.String()))
		ev.SetDtStampTime(stamp.UTC())
		ev.SetAllDayStartAt(st.CheckIn)
		ev.SetAllDayEndAt(st.CheckOut)
		ev.SetSummary(stayTitle(st))
		ev.SetLocation(st.City)
		if st.BookingLink != "" {
			ev.SetURL(st.BookingLink)
		}
	}

	for _, a := range snap.Activities {
		ev := cal.AddEvent(uid("activity", a.ID.String()))
		ev.SetDtStampTime(stamp.UTC())
		ev.SetAllDayStartAt(a.Date)
		ev.SetAllDayEndAt(a.Date.AddDate(0, 0, 1))
		ev.SetSummary(a.Title)
		if a.Description != "" {
			ev.SetDescription(a.Description)
		}
		if a.Link != "" {
			ev.SetURL(a.Link)
		}
	}
	return cal
}

// Write serialises Build(snap, stamp) to w.
func Write(w io.Writer, snap domain.Snapshot, stamp time.Time) error {
	if _, err := io.WriteString(w, Build(snap, stamp).Serialize()); err != nil {
		return fmt.Errorf("icsexport.Write: %w", err)
	}
	return nil
}

func stayTitle(st domain.LodgingStay) string {
	beds := strconv.Itoa(st.Beds) + " beds"
	if st.Beds == 1 {
		beds = "1 bed"
	}
	return st.City + " (" + beds + ")"
}

func uid(kind, id string) string {
	return kind + "-" + id + "@" + uidDomain
}
