// Package calendar produces day-aligned calendar grids and the canonical
// date key every other package compares dates with.
//
// Dates are compared by key only. Two time.Time values that fall on the same
// wall-clock date in their own locations have the same key, whatever their
// time of day or offset; comparing the values directly is how off-by-one
// errors at midnight happen.
package calendar

import (
	"fmt"
	"iter"
	"time"

	"github.com/pkordes/eeplog/backend/internal/domain"
)

// KeyLayout is the time layout of a date key.
const KeyLayout = "2006-01-02"

// Key returns the YYYY-MM-DD key of the wall-clock date of t in t's own location.
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}

// ParseKey parses a YYYY-MM-DD key into midnight UTC of that date.
// Malformed input returns an error wrapping domain.ErrValidation.
func ParseKey(s string) (time.Time, error) {
	t, err := time.Parse(KeyLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", domain.ErrValidation, s)
	}
	return t, nil
}

// Date returns midnight UTC of the given calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize drops the time of day and location of t, keeping its wall-clock date.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// InRange reports whether date falls within [start, end], inclusive on both ends.
func InRange(date, start, end time.Time) bool {
	k := Key(date)
	return k >= Key(start) && k <= Key(end)
}

// Day is one cell of the calendar grid.
type Day struct {
	Date    time.Time
	Key     string
	Weekday time.Weekday
}

// NewDay builds the Day for the wall-clock date of t.
func NewDay(t time.Time) Day {
	n := Normalize(t)
	return Day{Date: n, Key: Key(n), Weekday: n.Weekday()}
}

// Week is seven consecutive days, Sunday first.
type Week [7]Day

// Weeks yields the Sunday-to-Saturday weeks that cover [start, end]: the first
// week begins on the Sunday on or before start and the last ends on the
// Saturday on or after end. Nothing is yielded when start is after end.
// The sequence is recomputed on every range, so it can be iterated again.
func Weeks(start, end time.Time) iter.Seq[Week] {
	return func(yield func(Week) bool) {
		first := Normalize(start)
		last := Normalize(end)
		if first.After(last) {
			return
		}
		first = first.AddDate(0, 0, -int(first.Weekday()))
		last = last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

		for cur := first; !cur.After(last); {
			var w Week
			for i := range w {
				w[i] = NewDay(cur)
				cur = cur.AddDate(0, 0, 1)
			}
			if !yield(w) {
				return
			}
		}
	}
}

// Grid collects Weeks(start, end) into a slice. Never nil.
func Grid(start, end time.Time) []Week {
	weeks := []Week{}
	for w := range Weeks(start, end) {
		weeks = append(weeks, w)
	}
	return weeks
}

// Days yields every day in [start, end] in order.
func Days(start, end time.Time) iter.Seq[Day] {
	return func(yield func(Day) bool) {
		last := Normalize(end)
		for cur := Normalize(start); !cur.After(last); cur = cur.AddDate(0, 0, 1) {
			if !yield(NewDay(cur)) {
				return
			}
		}
	}
}
