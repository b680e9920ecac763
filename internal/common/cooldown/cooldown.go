package cooldown

import "time"

// ParseInstant parses a stored RFC3339 timestamp and normalizes it to
// UTC. Empty or malformed values are treated as "never ran" so a
// corrupted marker can never wedge the cooldown shut.
func ParseInstant(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false
	}

	return parsed.UTC(), true
}

// RemainingSeconds returns how many seconds of a global cooldown are
// left as of now, given the stored instant of the last run. Zero means
// the cooldown has expired or was never started.
func RemainingSeconds(lastRun string, cooldownSeconds int64, now time.Time) int64 {
	if cooldownSeconds <= 0 {
		return 0
	}

	last, ok := ParseInstant(lastRun)
	if !ok {
		return 0
	}

	elapsed := int64(now.UTC().Sub(last) / time.Second)
	if remaining := cooldownSeconds - elapsed; remaining > 0 {
		return remaining
	}
	return 0
}
