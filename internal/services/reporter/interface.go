package reporter

import (
	"context"

	"github.com/jmhart/voicetally/internal/models"
)

// MemberResolver maps a user ID to a guild display name. The Discord
// handler backs this with the guild member cache; tests use a map.
type MemberResolver interface {
	// DisplayName returns the member's display name, or false when the
	// member is not in the cache
	DisplayName(userID string) (string, bool)
}

// Service defines the interface for building daily activity reports
type Service interface {
	// BuildDayRows assembles sorted report rows for one local day
	BuildDayRows(ctx context.Context, input *BuildDayRowsInput) (*BuildDayRowsOutput, error)

	// BuildReportContent renders the report message body
	BuildReportContent(day, trackedChannelName string, rows []*models.ReportRow) string
}
