package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/jmhart/voicetally/internal/common/clock/mocks"
	uuidMocks "github.com/jmhart/voicetally/internal/common/uuid/mocks"
	"github.com/jmhart/voicetally/internal/models"
	sessionRepo "github.com/jmhart/voicetally/internal/repositories/session"
	sessionMocks "github.com/jmhart/voicetally/internal/repositories/session/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TrackerServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockRepo    *sessionMocks.MockRepository
	mockClock   *clockMocks.MockClock
	mockUUID    *uuidMocks.MockUUID
	service     Service
	ctx         context.Context
	tz          *time.Location
	testTime    time.Time
	testUserID  string
	testSession *models.Session
}

func (s *TrackerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	tz, err := time.LoadLocation("America/New_York")
	s.Require().NoError(err)
	s.tz = tz

	// Noon local on a winter day, expressed in UTC
	s.testTime = time.Date(2026, 1, 15, 12, 0, 0, 0, tz).UTC()
	s.testUserID = "test-user-id"
	s.testSession = &models.Session{
		ID:        "test-session-id",
		UserID:    s.testUserID,
		StartedAt: s.testTime,
	}

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("test-session-id").AnyTimes()

	svc, err := New(&Config{
		SessionRepo: s.mockRepo,
		Clock:       s.mockClock,
		UUID:        s.mockUUID,
		Timezone:    s.tz,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *TrackerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTrackerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TrackerServiceTestSuite))
}

func (s *TrackerServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{Clock: s.mockClock, UUID: s.mockUUID, Timezone: s.tz})
	s.Equal(ErrNilSessionRepo, err)

	_, err = New(&Config{SessionRepo: s.mockRepo, UUID: s.mockUUID, Timezone: s.tz})
	s.Equal(ErrNilClock, err)

	_, err = New(&Config{SessionRepo: s.mockRepo, Clock: s.mockClock, Timezone: s.tz})
	s.Equal(ErrNilUUID, err)

	_, err = New(&Config{SessionRepo: s.mockRepo, Clock: s.mockClock, UUID: s.mockUUID})
	s.Equal(ErrNilTimezone, err)
}

func (s *TrackerServiceTestSuite) TestStartSessionOpensNewSession() {
	s.mockRepo.EXPECT().
		GetOpenSession(s.ctx, &sessionRepo.GetOpenSessionInput{UserID: s.testUserID}).
		Return(nil, sessionRepo.ErrSessionNotFound)

	s.mockRepo.EXPECT().
		SaveOpenSession(s.ctx, &sessionRepo.SaveOpenSessionInput{Session: s.testSession}).
		Return(nil)

	out, err := s.service.StartSession(s.ctx, &StartSessionInput{
		UserID: s.testUserID,
		At:     s.testTime,
	})
	s.Require().NoError(err)
	s.True(out.Started)
}

func (s *TrackerServiceTestSuite) TestStartSessionDefaultsToClockNow() {
	s.mockRepo.EXPECT().
		GetOpenSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	s.mockRepo.EXPECT().
		SaveOpenSession(s.ctx, &sessionRepo.SaveOpenSessionInput{Session: s.testSession}).
		Return(nil)

	out, err := s.service.StartSession(s.ctx, &StartSessionInput{
		UserID: s.testUserID,
	})
	s.Require().NoError(err)
	s.True(out.Started)
}

func (s *TrackerServiceTestSuite) TestStartSessionDuplicateIgnored() {
	s.mockRepo.EXPECT().
		GetOpenSession(s.ctx, &sessionRepo.GetOpenSessionInput{UserID: s.testUserID}).
		Return(s.testSession, nil)

	// No SaveOpenSession: a second open session must never be created

	out, err := s.service.StartSession(s.ctx, &StartSessionInput{
		UserID: s.testUserID,
		At:     s.testTime.Add(time.Minute),
	})
	s.Require().NoError(err)
	s.False(out.Started)
}

func (s *TrackerServiceTestSuite) TestStartSessionRepoError() {
	repoErr := errors.New("redis unavailable")
	s.mockRepo.EXPECT().
		GetOpenSession(s.ctx, gomock.Any()).
		Return(nil, repoErr)

	_, err := s.service.StartSession(s.ctx, &StartSessionInput{
		UserID: s.testUserID,
		At:     s.testTime,
	})
	s.Require().Error(err)
	s.ErrorIs(err, repoErr)
}

func (s *TrackerServiceTestSuite) TestEndSessionWithoutOpenSessionIsNoOp() {
	s.mockRepo.EXPECT().
		GetOpenSession(s.ctx, &sessionRepo.GetOpenSessionInput{UserID: s.testUserID}).
		Return(nil, sessionRepo.ErrSessionNotFound)

	out, err := s.service.EndSession(s.ctx, &EndSessionInput{
		UserID: s.testUserID,
		At:     s.testTime,
	})
	s.Require().NoError(err)
	s.False(out.Closed)
	s.Zero(out.TrackedSeconds)
}

func (s *TrackerServiceTestSuite) TestEndSessionSameDay() {
	s.mockRepo.EXPECT().
		GetOpenSession(s.ctx, &sessionRepo.GetOpenSessionInput{UserID: s.testUserID}).
		Return(s.testSession, nil)

	s.mockRepo.EXPECT().
		CloseSession(s.ctx, &sessionRepo.CloseSessionInput{
			UserID: s.testUserID,
			Slices: []sessionRepo.DaySlice{{Day: "2026-01-15", Seconds: 90}},
		}).
		Return(nil)

	out, err := s.service.EndSession(s.ctx, &EndSessionInput{
		UserID: s.testUserID,
		At:     s.testTime.Add(90 * time.Second),
	})
	s.Require().NoError(err)
	s.True(out.Closed)
	s.Equal(int64(90), out.TrackedSeconds)
}

func (s *TrackerServiceTestSuite) TestEndSessionSplitsAcrossMidnight() {
	start := time.Date(2026, 1, 15, 23, 50, 0, 0, s.tz)
	end := time.Date(2026, 1, 16, 0, 10, 0, 0, s.tz)

	openSession := &models.Session{
		ID:        "test-session-id",
		UserID:    s.testUserID,
		StartedAt: start.UTC(),
	}

	s.mockRepo.EXPECT().
		GetOpenSession(s.ctx, &sessionRepo.GetOpenSessionInput{UserID: s.testUserID}).
		Return(openSession, nil)

	s.mockRepo.EXPECT().
		CloseSession(s.ctx, &sessionRepo.CloseSessionInput{
			UserID: s.testUserID,
			Slices: []sessionRepo.DaySlice{
				{Day: "2026-01-15", Seconds: 600},
				{Day: "2026-01-16", Seconds: 600},
			},
		}).
		Return(nil)

	out, err := s.service.EndSession(s.ctx, &EndSessionInput{
		UserID: s.testUserID,
		At:     end.UTC(),
	})
	s.Require().NoError(err)
	s.True(out.Closed)
	s.Equal(int64(1200), out.TrackedSeconds)
}

func (s *TrackerServiceTestSuite) TestSkewedLeaveInstantIsClamped() {
	s.mockRepo.EXPECT().
		GetOpenSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)
	s.mockRepo.EXPECT().
		SaveOpenSession(s.ctx, gomock.Any()).
		Return(nil)

	_, err := s.service.StartSession(s.ctx, &StartSessionInput{
		UserID: s.testUserID,
		At:     s.testTime,
	})
	s.Require().NoError(err)

	s.mockRepo.EXPECT().
		GetOpenSession(s.ctx, &sessionRepo.GetOpenSessionInput{UserID: s.testUserID}).
		Return(s.testSession, nil)

	// The leave arrives 10s behind the join; clamping collapses the
	// interval to zero length, so no slices are credited.
	s.mockRepo.EXPECT().
		CloseSession(s.ctx, &sessionRepo.CloseSessionInput{
			UserID: s.testUserID,
			Slices: nil,
		}).
		Return(nil)

	out, err := s.service.EndSession(s.ctx, &EndSessionInput{
		UserID: s.testUserID,
		At:     s.testTime.Add(-10 * time.Second),
	})
	s.Require().NoError(err)
	s.True(out.Closed)
	s.Zero(out.TrackedSeconds)
}

func (s *TrackerServiceTestSuite) TestRolloverOpenSessions() {
	boundary := time.Date(2026, 1, 16, 0, 0, 0, 0, s.tz).UTC()
	eveningStart := time.Date(2026, 1, 15, 22, 0, 0, 0, s.tz).UTC()

	openSessions := []*models.Session{
		{ID: "session-a", UserID: "user-a", StartedAt: eveningStart},
		// Already starts at the boundary, nothing to split
		{ID: "session-b", UserID: "user-b", StartedAt: boundary},
	}

	s.mockRepo.EXPECT().
		ListOpenSessions(s.ctx).
		Return(&sessionRepo.ListOpenSessionsOutput{Sessions: openSessions}, nil)

	s.mockRepo.EXPECT().
		CloseSession(s.ctx, &sessionRepo.CloseSessionInput{
			UserID: "user-a",
			Slices: []sessionRepo.DaySlice{{Day: "2026-01-15", Seconds: 2 * 3600}},
		}).
		Return(nil)

	s.mockRepo.EXPECT().
		SaveOpenSession(s.ctx, &sessionRepo.SaveOpenSessionInput{
			Session: &models.Session{
				ID:        "test-session-id",
				UserID:    "user-a",
				StartedAt: boundary,
			},
		}).
		Return(nil)

	out, err := s.service.RolloverOpenSessions(s.ctx, &RolloverOpenSessionsInput{
		Boundary: boundary,
	})
	s.Require().NoError(err)
	s.Equal(1, out.RolledOver)
}

func (s *TrackerServiceTestSuite) TestRolloverContinuesPastFailedUser() {
	boundary := time.Date(2026, 1, 16, 0, 0, 0, 0, s.tz).UTC()
	start := boundary.Add(-time.Hour)

	openSessions := []*models.Session{
		{ID: "session-a", UserID: "user-a", StartedAt: start},
		{ID: "session-b", UserID: "user-b", StartedAt: start},
	}

	s.mockRepo.EXPECT().
		ListOpenSessions(s.ctx).
		Return(&sessionRepo.ListOpenSessionsOutput{Sessions: openSessions}, nil)

	s.mockRepo.EXPECT().
		CloseSession(s.ctx, gomock.Any()).
		Return(errors.New("write failed"))

	s.mockRepo.EXPECT().
		CloseSession(s.ctx, gomock.Any()).
		Return(nil)

	s.mockRepo.EXPECT().
		SaveOpenSession(s.ctx, gomock.Any()).
		Return(nil)

	out, err := s.service.RolloverOpenSessions(s.ctx, &RolloverOpenSessionsInput{
		Boundary: boundary,
	})
	s.Require().NoError(err)
	s.Equal(1, out.RolledOver)
}

func (s *TrackerServiceTestSuite) TestReseedMergesSnapshotWithStoredSessions() {
	existing := []*models.Session{
		{ID: "session-a", UserID: "user-a", StartedAt: s.testTime.Add(-time.Hour)},
		{ID: "session-b", UserID: "user-b", StartedAt: s.testTime.Add(-2 * time.Hour)},
	}

	s.mockRepo.EXPECT().
		ListOpenSessions(s.ctx).
		Return(&sessionRepo.ListOpenSessionsOutput{Sessions: existing}, nil)

	// user-b left while the process was down: dropped without credit
	s.mockRepo.EXPECT().
		DeleteOpenSession(s.ctx, &sessionRepo.DeleteOpenSessionInput{UserID: "user-b"}).
		Return(nil)

	// user-c is newly present: opened at the snapshot instant.
	// user-a keeps its session untouched.
	s.mockRepo.EXPECT().
		SaveOpenSession(s.ctx, &sessionRepo.SaveOpenSessionInput{
			Session: &models.Session{
				ID:        "test-session-id",
				UserID:    "user-c",
				StartedAt: s.testTime,
			},
		}).
		Return(nil)

	out, err := s.service.Reseed(s.ctx, &ReseedInput{
		UserIDs: []string{"user-a", "user-c"},
		At:      s.testTime,
	})
	s.Require().NoError(err)
	s.Equal(1, out.Opened)
	s.Equal(1, out.Removed)
}

func (s *TrackerServiceTestSuite) TestReseedIsIdempotent() {
	existing := []*models.Session{
		{ID: "session-a", UserID: "user-a", StartedAt: s.testTime.Add(-time.Hour)},
	}

	s.mockRepo.EXPECT().
		ListOpenSessions(s.ctx).
		Return(&sessionRepo.ListOpenSessionsOutput{Sessions: existing}, nil)

	// No deletes, no saves: the tracked user is still present

	out, err := s.service.Reseed(s.ctx, &ReseedInput{
		UserIDs: []string{"user-a"},
		At:      s.testTime,
	})
	s.Require().NoError(err)
	s.Zero(out.Opened)
	s.Zero(out.Removed)
}

func (s *TrackerServiceTestSuite) TestGetStatusOpenSession() {
	openSession := &models.Session{
		ID:        "test-session-id",
		UserID:    s.testUserID,
		StartedAt: s.testTime.Add(-42 * time.Second),
	}

	s.mockRepo.EXPECT().
		GetOpenSession(s.ctx, &sessionRepo.GetOpenSessionInput{UserID: s.testUserID}).
		Return(openSession, nil)

	out, err := s.service.GetStatus(s.ctx, &GetStatusInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.True(out.Open)
	s.Equal(int64(42), out.ElapsedSeconds)
}

func (s *TrackerServiceTestSuite) TestGetStatusFreshlyReseededSession() {
	openSession := &models.Session{
		ID:        "test-session-id",
		UserID:    s.testUserID,
		StartedAt: s.testTime,
	}

	s.mockRepo.EXPECT().
		GetOpenSession(s.ctx, gomock.Any()).
		Return(openSession, nil)

	out, err := s.service.GetStatus(s.ctx, &GetStatusInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.True(out.Open)
	s.Zero(out.ElapsedSeconds)
}

func (s *TrackerServiceTestSuite) TestGetStatusNoOpenSession() {
	s.mockRepo.EXPECT().
		GetOpenSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	out, err := s.service.GetStatus(s.ctx, &GetStatusInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.False(out.Open)
}

func (s *TrackerServiceTestSuite) TestGetDayTotalsStoredOnly() {
	s.mockRepo.EXPECT().
		GetDailyTotals(s.ctx, &sessionRepo.GetDailyTotalsInput{Day: "2026-01-15"}).
		Return(&sessionRepo.GetDailyTotalsOutput{
			Totals: []*models.DailyTotal{
				{Day: "2026-01-15", UserID: "user-a", Seconds: 300},
				{Day: "2026-01-15", UserID: "user-b", Seconds: 120},
			},
		}, nil)

	out, err := s.service.GetDayTotals(s.ctx, &GetDayTotalsInput{Day: "2026-01-15"})
	s.Require().NoError(err)
	s.Equal(map[string]int64{"user-a": 300, "user-b": 120}, out.Totals)
}

func (s *TrackerServiceTestSuite) TestGetDayTotalsIncludesLivePortion() {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, s.tz).UTC()

	s.mockRepo.EXPECT().
		GetDailyTotals(s.ctx, &sessionRepo.GetDailyTotalsInput{Day: "2026-01-15"}).
		Return(&sessionRepo.GetDailyTotalsOutput{
			Totals: []*models.DailyTotal{
				{Day: "2026-01-15", UserID: "user-a", Seconds: 120},
			},
		}, nil)

	s.mockRepo.EXPECT().
		ListOpenSessions(s.ctx).
		Return(&sessionRepo.ListOpenSessionsOutput{
			Sessions: []*models.Session{
				{ID: "session-a", UserID: "user-a", StartedAt: now.Add(-5 * time.Minute)},
				// Started on a different local day slice boundary; only
				// the portion after midnight counts toward the queried day
				{ID: "session-b", UserID: "user-b", StartedAt: time.Date(2026, 1, 14, 23, 0, 0, 0, s.tz).UTC()},
			},
		}, nil)

	out, err := s.service.GetDayTotals(s.ctx, &GetDayTotalsInput{
		Day:         "2026-01-15",
		IncludeLive: true,
		Now:         now,
	})
	s.Require().NoError(err)

	s.Equal(int64(120+300), out.Totals["user-a"])
	// user-b: midnight to noon = 12h on the queried day
	s.Equal(int64(12*3600), out.Totals["user-b"])
}

func (s *TrackerServiceTestSuite) TestGetDayTotalsLiveDoesNotCloseSessions() {
	s.mockRepo.EXPECT().
		GetDailyTotals(s.ctx, gomock.Any()).
		Return(&sessionRepo.GetDailyTotalsOutput{Totals: []*models.DailyTotal{}}, nil)

	s.mockRepo.EXPECT().
		ListOpenSessions(s.ctx).
		Return(&sessionRepo.ListOpenSessionsOutput{
			Sessions: []*models.Session{
				{ID: "session-a", UserID: "user-a", StartedAt: s.testTime.Add(-time.Minute)},
			},
		}, nil)

	// No CloseSession, no SaveOpenSession: the read must not mutate

	out, err := s.service.GetDayTotals(s.ctx, &GetDayTotalsInput{
		Day:         "2026-01-15",
		IncludeLive: true,
		Now:         s.testTime,
	})
	s.Require().NoError(err)
	s.Equal(int64(60), out.Totals["user-a"])
}
