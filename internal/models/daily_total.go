package models

// DailyTotal is the accumulated presence time for one user on one local
// calendar day. Seconds only ever grows as closed session slices are
// folded in; rows are never deleted.
type DailyTotal struct {
	// Day is the local calendar date in YYYY-MM-DD form
	Day string

	// UserID is the Discord user ID of the member
	UserID string

	// Seconds is the accumulated presence time for that day
	Seconds int64
}
