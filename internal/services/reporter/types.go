package reporter

import (
	"time"

	"github.com/jmhart/voicetally/internal/models"
	"github.com/jmhart/voicetally/internal/services/tracker"
)

// Config holds the dependencies for the reporter service
type Config struct {
	// Tracker supplies per-day totals
	Tracker tracker.Service
}

// BuildDayRowsInput contains parameters for assembling report rows
type BuildDayRowsInput struct {
	// Day is the local date, YYYY-MM-DD
	Day string

	// IncludeLive adds the running time of open sessions (day-so-far
	// reports); midnight reports leave it off
	IncludeLive bool

	// Now overrides the live cutoff instant; zero means "now"
	Now time.Time

	// Resolver maps user IDs to display names
	Resolver MemberResolver
}

// BuildDayRowsOutput contains the assembled report rows
type BuildDayRowsOutput struct {
	Rows []*models.ReportRow
}
