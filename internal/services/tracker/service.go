package tracker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jmhart/voicetally/internal/common/clock"
	"github.com/jmhart/voicetally/internal/common/uuid"
	"github.com/jmhart/voicetally/internal/daybound"
	"github.com/jmhart/voicetally/internal/models"
	sessionRepo "github.com/jmhart/voicetally/internal/repositories/session"
)

// service implements the Service interface
type service struct {
	repo  sessionRepo.Repository
	clock clock.Clock
	uuid  uuid.UUID
	tz    *time.Location

	// lastSeen enforces per-user event monotonicity: a skewed instant
	// earlier than the last one recorded for the user is clamped, never
	// rejected.
	mu       sync.Mutex
	lastSeen map[string]time.Time
}

// New creates a new tracker service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	if cfg.Timezone == nil {
		return nil, ErrNilTimezone
	}

	return &service{
		repo:     cfg.SessionRepo,
		clock:    cfg.Clock,
		uuid:     cfg.UUID,
		tz:       cfg.Timezone,
		lastSeen: make(map[string]time.Time),
	}, nil
}

// StartSession handles a join event. A join while a session is already
// open is a duplicate signal and is ignored.
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	at := s.clampInstant(input.UserID, input.At)

	_, err := s.repo.GetOpenSession(ctx, &sessionRepo.GetOpenSessionInput{
		UserID: input.UserID,
	})
	if err == nil {
		log.Printf("Ignoring duplicate join for user %s", input.UserID)
		return &StartSessionOutput{Started: false}, nil
	}

	if !errors.Is(err, sessionRepo.ErrSessionNotFound) {
		return nil, fmt.Errorf("failed to check open session: %w", err)
	}

	sess := &models.Session{
		ID:        s.uuid.NewUUID(),
		UserID:    input.UserID,
		StartedAt: at,
	}

	if err := s.repo.SaveOpenSession(ctx, &sessionRepo.SaveOpenSessionInput{
		Session: sess,
	}); err != nil {
		return nil, err
	}

	return &StartSessionOutput{Started: true}, nil
}

// EndSession handles a leave event. A leave without an open session is
// an extraneous signal and is ignored. The closed interval is split by
// local midnight and all slices are folded atomically with the close,
// so a leave arriving after a missed midnight trigger still credits
// each day correctly.
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	at := s.clampInstant(input.UserID, input.At)

	sess, err := s.repo.GetOpenSession(ctx, &sessionRepo.GetOpenSessionInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			log.Printf("Ignoring leave for user %s with no open session", input.UserID)
			return &EndSessionOutput{Closed: false}, nil
		}
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}

	slices, tracked := s.splitInterval(sess.StartedAt, at)

	if err := s.repo.CloseSession(ctx, &sessionRepo.CloseSessionInput{
		UserID: input.UserID,
		Slices: slices,
	}); err != nil {
		return nil, err
	}

	return &EndSessionOutput{
		Closed:         true,
		TrackedSeconds: tracked,
	}, nil
}

// RolloverOpenSessions closes every open session started before the
// boundary at the boundary instant and immediately reopens it there,
// so no stored session ever straddles a local calendar date. A failure
// for one user is logged and does not stop the rest.
func (s *service) RolloverOpenSessions(ctx context.Context, input *RolloverOpenSessionsInput) (*RolloverOpenSessionsOutput, error) {
	if input == nil || input.Boundary.IsZero() {
		return nil, ErrNilInput
	}

	listed, err := s.repo.ListOpenSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open sessions: %w", err)
	}

	rolled := 0
	for _, sess := range listed.Sessions {
		if !sess.StartedAt.Before(input.Boundary) {
			continue
		}

		slices, _ := s.splitInterval(sess.StartedAt, input.Boundary)

		if err := s.repo.CloseSession(ctx, &sessionRepo.CloseSessionInput{
			UserID: sess.UserID,
			Slices: slices,
		}); err != nil {
			log.Printf("Failed to roll over session for user %s: %v", sess.UserID, err)
			continue
		}

		if err := s.repo.SaveOpenSession(ctx, &sessionRepo.SaveOpenSessionInput{
			Session: &models.Session{
				ID:        s.uuid.NewUUID(),
				UserID:    sess.UserID,
				StartedAt: input.Boundary,
			},
		}); err != nil {
			log.Printf("Failed to reopen session for user %s: %v", sess.UserID, err)
			continue
		}

		rolled++
	}

	return &RolloverOpenSessionsOutput{RolledOver: rolled}, nil
}

// Reseed reconstructs open sessions from a presence snapshot taken at
// connection time. Users already tracked keep their session untouched;
// present users without one start fresh at the snapshot instant; stale
// sessions for users who left while the process was down are dropped
// without credit, since their leave instant is unrecoverable.
func (s *service) Reseed(ctx context.Context, input *ReseedInput) (*ReseedOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	at := input.At
	if at.IsZero() {
		at = s.clock.Now()
	}

	listed, err := s.repo.ListOpenSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open sessions: %w", err)
	}

	present := make(map[string]bool, len(input.UserIDs))
	for _, userID := range input.UserIDs {
		present[userID] = true
	}

	out := &ReseedOutput{}

	for _, sess := range listed.Sessions {
		if present[sess.UserID] {
			continue
		}
		if err := s.repo.DeleteOpenSession(ctx, &sessionRepo.DeleteOpenSessionInput{
			UserID: sess.UserID,
		}); err != nil {
			log.Printf("Failed to drop stale session for user %s: %v", sess.UserID, err)
			continue
		}
		out.Removed++
	}

	tracked := make(map[string]bool, len(listed.Sessions))
	for _, sess := range listed.Sessions {
		tracked[sess.UserID] = true
	}

	for _, userID := range input.UserIDs {
		if tracked[userID] {
			continue
		}
		if err := s.repo.SaveOpenSession(ctx, &sessionRepo.SaveOpenSessionInput{
			Session: &models.Session{
				ID:        s.uuid.NewUUID(),
				UserID:    userID,
				StartedAt: at,
			},
		}); err != nil {
			log.Printf("Failed to reseed session for user %s: %v", userID, err)
			continue
		}
		out.Opened++
	}

	return out, nil
}

// GetStatus reports whether the user has an open session and how long
// it has been open as of now. Read-only.
func (s *service) GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	sess, err := s.repo.GetOpenSession(ctx, &sessionRepo.GetOpenSessionInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return &GetStatusOutput{Open: false}, nil
		}
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}

	elapsed := int64(s.clock.Now().Sub(sess.StartedAt) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}

	return &GetStatusOutput{
		Open:           true,
		ElapsedSeconds: elapsed,
		StartedAt:      sess.StartedAt,
	}, nil
}

// GetDayTotals returns per-user totals for one local day. With
// IncludeLive set, the elapsed portion of every open session that
// overlaps the day is added on read without mutating anything.
func (s *service) GetDayTotals(ctx context.Context, input *GetDayTotalsInput) (*GetDayTotalsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Day == "" {
		return nil, ErrEmptyDay
	}

	stored, err := s.repo.GetDailyTotals(ctx, &sessionRepo.GetDailyTotalsInput{
		Day: input.Day,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get daily totals: %w", err)
	}

	totals := make(map[string]int64, len(stored.Totals))
	for _, total := range stored.Totals {
		totals[total.UserID] = total.Seconds
	}

	if !input.IncludeLive {
		return &GetDayTotalsOutput{Totals: totals}, nil
	}

	now := input.Now
	if now.IsZero() {
		now = s.clock.Now()
	}

	listed, err := s.repo.ListOpenSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open sessions: %w", err)
	}

	for _, sess := range listed.Sessions {
		for _, slice := range daybound.Split(sess.StartedAt, now, s.tz) {
			if slice.Day != input.Day {
				continue
			}
			totals[sess.UserID] += slice.Seconds
		}
	}

	return &GetDayTotalsOutput{Totals: totals}, nil
}

// clampInstant resolves a possibly-zero or skewed event instant against
// the user's last recorded one and records the result.
func (s *service) clampInstant(userID string, at time.Time) time.Time {
	if at.IsZero() {
		at = s.clock.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.lastSeen[userID]; ok && at.Before(last) {
		log.Printf("Clamping skewed instant for user %s (%s behind)", userID, last.Sub(at))
		at = last
	}

	s.lastSeen[userID] = at
	return at
}

// splitInterval slices [start, end) by local midnight and returns the
// repository slices plus the total seconds they carry.
func (s *service) splitInterval(start, end time.Time) ([]sessionRepo.DaySlice, int64) {
	var (
		slices  []sessionRepo.DaySlice
		tracked int64
	)

	for _, slice := range daybound.Split(start, end, s.tz) {
		slices = append(slices, sessionRepo.DaySlice{
			Day:     slice.Day,
			Seconds: slice.Seconds,
		})
		tracked += slice.Seconds
	}

	return slices, tracked
}
