package tracker

import (
	"time"

	"github.com/jmhart/voicetally/internal/common/clock"
	"github.com/jmhart/voicetally/internal/common/uuid"
	"github.com/jmhart/voicetally/internal/repositories/session"
)

// Config holds the dependencies for the tracker service
type Config struct {
	// SessionRepo is the tracker state store
	SessionRepo session.Repository

	// Clock supplies the current instant
	Clock clock.Clock

	// UUID generates session record IDs
	UUID uuid.UUID

	// Timezone is the IANA timezone local days are computed in
	Timezone *time.Location
}

// StartSessionInput contains parameters for handling a join event
type StartSessionInput struct {
	UserID string

	// At is the event instant; zero means "now"
	At time.Time
}

// StartSessionOutput contains the result of handling a join event
type StartSessionOutput struct {
	// Started is false when the join was a duplicate and ignored
	Started bool
}

// EndSessionInput contains parameters for handling a leave event
type EndSessionInput struct {
	UserID string

	// At is the event instant; zero means "now"
	At time.Time
}

// EndSessionOutput contains the result of handling a leave event
type EndSessionOutput struct {
	// Closed is false when no open session existed and the leave was ignored
	Closed bool

	// TrackedSeconds is the total time credited across all day slices
	TrackedSeconds int64
}

// RolloverOpenSessionsInput contains parameters for a midnight split
type RolloverOpenSessionsInput struct {
	// Boundary is the local-midnight instant sessions are split at
	Boundary time.Time
}

// RolloverOpenSessionsOutput contains the result of a midnight split
type RolloverOpenSessionsOutput struct {
	// RolledOver counts sessions closed at the boundary and reopened
	RolledOver int
}

// ReseedInput contains parameters for startup reseeding
type ReseedInput struct {
	// UserIDs are the users currently present in the tracked channel
	UserIDs []string

	// At is the snapshot instant; zero means "now"
	At time.Time
}

// ReseedOutput contains the result of startup reseeding
type ReseedOutput struct {
	// Opened counts sessions created for present users without one
	Opened int

	// Removed counts stale sessions dropped for users no longer present
	Removed int
}

// GetStatusInput contains parameters for a status query
type GetStatusInput struct {
	UserID string
}

// GetStatusOutput contains the result of a status query
type GetStatusOutput struct {
	// Open reports whether the user has an open session
	Open bool

	// ElapsedSeconds is the open session's age as of now
	ElapsedSeconds int64

	// StartedAt is when the open session began
	StartedAt time.Time
}

// GetDayTotalsInput contains parameters for reading a day's totals
type GetDayTotalsInput struct {
	// Day is the local date, YYYY-MM-DD
	Day string

	// IncludeLive adds the elapsed portion of open sessions that
	// overlap the day, computed on read
	IncludeLive bool

	// Now overrides the live-portion cutoff; zero means "now"
	Now time.Time
}

// GetDayTotalsOutput contains a day's totals keyed by user ID
type GetDayTotalsOutput struct {
	Totals map[string]int64
}
