package session

import "github.com/jmhart/voicetally/internal/models"

// DaySlice is the portion of a closed session credited to one local day
type DaySlice struct {
	Day     string
	Seconds int64
}

// SaveOpenSessionInput contains parameters for saving an open session
type SaveOpenSessionInput struct {
	Session *models.Session
}

// GetOpenSessionInput contains parameters for retrieving an open session
type GetOpenSessionInput struct {
	UserID string
}

// ListOpenSessionsOutput contains all open sessions
type ListOpenSessionsOutput struct {
	Sessions []*models.Session
}

// DeleteOpenSessionInput contains parameters for deleting an open session
type DeleteOpenSessionInput struct {
	UserID string
}

// CloseSessionInput contains parameters for atomically closing a session
// and folding its slices into daily totals
type CloseSessionInput struct {
	UserID string
	Slices []DaySlice
}

// AddDailySecondsInput contains parameters for adding time to a daily total
type AddDailySecondsInput struct {
	Day     string
	UserID  string
	Seconds int64
}

// GetDailySecondsInput contains parameters for reading one daily total
type GetDailySecondsInput struct {
	Day    string
	UserID string
}

// GetDailyTotalsInput contains parameters for reading a whole day's totals
type GetDailyTotalsInput struct {
	Day string
}

// GetDailyTotalsOutput contains a day's totals
type GetDailyTotalsOutput struct {
	Totals []*models.DailyTotal
}

// GetMetaInput contains parameters for reading a marker value
type GetMetaInput struct {
	Key string
}

// SetMetaInput contains parameters for storing a marker value
type SetMetaInput struct {
	Key   string
	Value string
}
