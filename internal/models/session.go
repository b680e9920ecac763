package models

import (
	"time"
)

// Session represents an open presence interval for one user in the
// tracked voice channel. Closed intervals are not stored as sessions;
// they are folded into DailyTotal rows as soon as they close.
type Session struct {
	// ID is the unique identifier for this interval
	ID string

	// UserID is the Discord user ID of the member
	UserID string

	// StartedAt is when the interval began (join, reseed, or midnight split)
	StartedAt time.Time
}
