package tracker

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/jmhart/voicetally/internal/services/tracker Service

// Service defines the interface for the session tracking engine
type Service interface {
	// StartSession handles a join event, idempotently opening a session
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// EndSession handles a leave event, splitting the closed interval by
	// local midnight and folding the slices into daily totals
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// RolloverOpenSessions closes every open session at a local-midnight
	// boundary and reopens it at the same instant
	RolloverOpenSessions(ctx context.Context, input *RolloverOpenSessionsInput) (*RolloverOpenSessionsOutput, error)

	// Reseed reconstructs open sessions from a presence snapshot at startup
	Reseed(ctx context.Context, input *ReseedInput) (*ReseedOutput, error)

	// GetStatus reports whether a user has an open session and its age
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)

	// GetDayTotals returns per-user totals for one local day, optionally
	// including the live portion of open sessions
	GetDayTotals(ctx context.Context, input *GetDayTotalsInput) (*GetDayTotalsOutput, error)
}
