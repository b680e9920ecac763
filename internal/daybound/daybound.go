// Package daybound holds the local-calendar-day arithmetic the tracker
// is built on: computing midnight boundaries in a configured timezone
// and slicing a presence interval so that no slice spans two local days.
package daybound

import "time"

// Slice is the portion of a presence interval that falls on a single
// local calendar day.
type Slice struct {
	// Day is the local date the slice belongs to, YYYY-MM-DD
	Day string

	// Seconds is the whole-second length of the slice
	Seconds int64
}

// DayKey returns the local calendar date of t in loc as YYYY-MM-DD.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.DateOnly)
}

// PreviousDayKey returns the local calendar date of the day before t.
func PreviousDayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).AddDate(0, 0, -1).Format(time.DateOnly)
}

// NextMidnight returns the first local midnight strictly after t.
// Callers recompute this after every firing rather than adding 24h, so
// the result stays correct across timezone offset changes.
func NextMidnight(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc)
}

// Split slices the interval [start, end) into per-local-day segments.
// Adjacent segments share their boundary instant, so the slice seconds
// always sum to the whole interval with no gap or overlap. Sub-second
// remainders are truncated. An empty or inverted interval yields nil.
func Split(start, end time.Time, loc *time.Location) []Slice {
	if !end.After(start) {
		return nil
	}

	var slices []Slice
	cursor := start

	for cursor.Before(end) {
		chunkEnd := end
		if boundary := NextMidnight(cursor, loc); boundary.Before(end) {
			chunkEnd = boundary
		}

		if seconds := int64(chunkEnd.Sub(cursor) / time.Second); seconds > 0 {
			slices = append(slices, Slice{Day: DayKey(cursor, loc), Seconds: seconds})
		}

		cursor = chunkEnd
	}

	return slices
}
