package availability

import (
	"errors"
	"iter"
	"slices"
	"strings"
	"time"
)

type Cadence string

const (
	Weekly   Cadence = "weekly"
	Biweekly Cadence = "biweekly"
	Monthly  Cadence = "monthly"
)

var ErrUnknownCadence = errors.New("unknown recurrence cadence")

func ParseCadence(s string) (Cadence, error) {
	switch c := Cadence(strings.ToLower(strings.TrimSpace(s))); c {
	case Weekly, Biweekly, Monthly:
		return c, nil
	}
	return "", ErrUnknownCadence
}

// Interval is one concrete occurrence of a recurring booking.
type Interval struct {
	Start time.Time `json:"start_time"`
	End   time.Time `json:"end_time"`
}

// Expand yields the occurrences of start repeated at the given cadence. The
// first value is start itself; the last is the final occurrence whose
// calendar date is on or before until's date, compared in start's location.
// The sequence is empty when until precedes start, and can be ranged over
// any number of times.
func Expand(start time.Time, cadence Cadence, until time.Time) iter.Seq[time.Time] {
	last := dateOf(until.In(start.Location()))
	return func(yield func(time.Time) bool) {
		for i := 0; ; i++ {
			occ, ok := nth(start, cadence, i)
			if !ok || dateOf(occ).After(last) {
				return
			}
			if !yield(occ) {
				return
			}
		}
	}
}

// Occurrences collects Expand.
func Occurrences(start time.Time, cadence Cadence, until time.Time) []time.Time {
	return slices.Collect(Expand(start, cadence, until))
}

// Intervals lazily repeats [start, end) at the given cadence, keeping the
// time-of-day of both ends.
func Intervals(start, end time.Time, cadence Cadence, until time.Time) iter.Seq[Interval] {
	spanDays := daysBetween(dateOf(start), dateOf(end.In(start.Location())))
	endLocal := end.In(start.Location())

	return func(yield func(Interval) bool) {
		for occ := range Expand(start, cadence, until) {
			y, m, d := occ.Date()
			occEnd := time.Date(y, m, d+spanDays,
				endLocal.Hour(), endLocal.Minute(), endLocal.Second(), endLocal.Nanosecond(),
				start.Location())
			if !yield(Interval{Start: occ, End: occEnd}) {
				return
			}
		}
	}
}

// ExpandInterval collects Intervals.
func ExpandInterval(start, end time.Time, cadence Cadence, until time.Time) []Interval {
	return slices.Collect(Intervals(start, end, cadence, until))
}

// nth returns the i-th occurrence. Monthly occurrences are always computed
// from the original day-of-month so a clamp in February does not drift into
// the following months.
func nth(start time.Time, cadence Cadence, i int) (time.Time, bool) {
	switch cadence {
	case Weekly:
		return start.AddDate(0, 0, 7*i), true
	case Biweekly:
		return start.AddDate(0, 0, 14*i), true
	case Monthly:
		y, m, d := start.Date()
		first := time.Date(y, m+time.Month(i), 1, 0, 0, 0, 0, start.Location())
		if last := daysIn(first.Year(), first.Month(), start.Location()); d > last {
			d = last
		}
		return time.Date(first.Year(), first.Month(), d,
			start.Hour(), start.Minute(), start.Second(), start.Nanosecond(),
			start.Location()), true
	}
	return time.Time{}, false
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
