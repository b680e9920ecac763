package tracker

// TrackerError is a custom error type for tracker-related errors
type TrackerError string

// Error implements the error interface
func (e TrackerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig      TrackerError = "config cannot be nil"
	ErrNilInput       TrackerError = "input cannot be nil"
	ErrNilSessionRepo TrackerError = "session repository cannot be nil"
	ErrNilClock       TrackerError = "clock cannot be nil"
	ErrNilUUID        TrackerError = "UUID generator cannot be nil"
	ErrNilTimezone    TrackerError = "timezone cannot be nil"
	ErrEmptyUserID    TrackerError = "user ID cannot be empty"
	ErrEmptyDay       TrackerError = "day cannot be empty"
)
