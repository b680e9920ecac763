// Package scheduler fires a callback at every local midnight in a
// configured timezone. The next wakeup is recomputed from the current
// instant after each firing instead of adding a fixed 24h, so the
// schedule stays correct across timezone offset changes. Midnights that
// pass while the process is not running are skipped, never backfilled.
package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/jmhart/voicetally/internal/common/clock"
	"github.com/jmhart/voicetally/internal/daybound"
)

// Callback is invoked at each local midnight with the boundary instant
// and the local day that just ended.
type Callback func(ctx context.Context, boundary time.Time, endedDay string)

// Config holds the dependencies for the midnight scheduler
type Config struct {
	// Clock supplies the current instant
	Clock clock.Clock

	// Timezone is the IANA timezone midnights are computed in
	Timezone *time.Location

	// Callback runs at each local midnight
	Callback Callback
}

// Scheduler sleeps until the next local midnight and fires its callback
type Scheduler struct {
	clock    clock.Clock
	tz       *time.Location
	callback Callback
}

// New creates a new midnight scheduler
func New(cfg *Config) (*Scheduler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.Timezone == nil {
		return nil, errors.New("timezone cannot be nil")
	}

	if cfg.Callback == nil {
		return nil, errors.New("callback cannot be nil")
	}

	return &Scheduler{
		clock:    cfg.Clock,
		tz:       cfg.Timezone,
		callback: cfg.Callback,
	}, nil
}

// NextWakeup returns the next local-midnight instant after now
func (s *Scheduler) NextWakeup() time.Time {
	return daybound.NextMidnight(s.clock.Now(), s.tz)
}

// Run blocks until ctx is cancelled, invoking the callback at each
// local midnight. Cancellation is tied to process lifetime only.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		boundary := daybound.NextMidnight(s.clock.Now(), s.tz)
		timer := time.NewTimer(boundary.Sub(s.clock.Now()))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.callback(ctx, boundary, daybound.PreviousDayKey(boundary, s.tz))
		}
	}
}
