package models

// ReportRow is one line of a daily activity report, with the user ID
// resolved to a display name for rendering.
type ReportRow struct {
	// UserID is the Discord user ID of the member
	UserID string

	// DisplayName is the member's guild display name, or a fallback
	// when the member is no longer in the guild cache
	DisplayName string

	// Seconds is the tracked presence time for the reported day
	Seconds int64
}
