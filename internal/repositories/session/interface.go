package session

import (
	"context"

	"github.com/jmhart/voicetally/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/jmhart/voicetally/internal/repositories/session Repository

// Repository defines the interface for tracker state persistence
type Repository interface {
	// SaveOpenSession persists an open session, replacing any open
	// session the user already has
	SaveOpenSession(ctx context.Context, input *SaveOpenSessionInput) error

	// GetOpenSession retrieves a user's open session
	GetOpenSession(ctx context.Context, input *GetOpenSessionInput) (*models.Session, error)

	// ListOpenSessions retrieves all open sessions
	ListOpenSessions(ctx context.Context) (*ListOpenSessionsOutput, error)

	// DeleteOpenSession removes a user's open session without crediting time
	DeleteOpenSession(ctx context.Context, input *DeleteOpenSessionInput) error

	// CloseSession atomically deletes a user's open session and folds
	// the given per-day slices into the daily totals
	CloseSession(ctx context.Context, input *CloseSessionInput) error

	// AddDailySeconds adds seconds to a user's total for one local day
	AddDailySeconds(ctx context.Context, input *AddDailySecondsInput) error

	// GetDailySeconds retrieves one user's total for one local day
	GetDailySeconds(ctx context.Context, input *GetDailySecondsInput) (int64, error)

	// GetDailyTotals retrieves all totals for one local day, ordered by
	// seconds descending then user ID ascending
	GetDailyTotals(ctx context.Context, input *GetDailyTotalsInput) (*GetDailyTotalsOutput, error)

	// GetMeta retrieves a marker value, or empty string when unset
	GetMeta(ctx context.Context, input *GetMetaInput) (string, error)

	// SetMeta stores a marker value
	SetMeta(ctx context.Context, input *SetMetaInput) error
}
