package reporter

import (
	"context"
	"testing"
	"time"

	"github.com/jmhart/voicetally/internal/models"
	"github.com/jmhart/voicetally/internal/services/tracker"
	trackerMocks "github.com/jmhart/voicetally/internal/services/tracker/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// mapResolver backs MemberResolver with a plain map for tests
type mapResolver map[string]string

func (r mapResolver) DisplayName(userID string) (string, bool) {
	name, ok := r[userID]
	return name, ok
}

type ReporterServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockTracker *trackerMocks.MockService
	service     Service
	ctx         context.Context
}

func (s *ReporterServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTracker = trackerMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := New(&Config{
		Tracker: s.mockTracker,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *ReporterServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReporterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReporterServiceTestSuite))
}

func (s *ReporterServiceTestSuite) TestBuildDayRowsSortedBySecondsDesc() {
	s.mockTracker.EXPECT().
		GetDayTotals(s.ctx, &tracker.GetDayTotalsInput{Day: "2026-02-01"}).
		Return(&tracker.GetDayTotalsOutput{
			Totals: map[string]int64{"1": 100, "2": 300},
		}, nil)

	out, err := s.service.BuildDayRows(s.ctx, &BuildDayRowsInput{
		Day:      "2026-02-01",
		Resolver: mapResolver{"1": "Alice", "2": "Bob"},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Rows, 2)

	s.Equal("Bob", out.Rows[0].DisplayName)
	s.Equal(int64(300), out.Rows[0].Seconds)
	s.Equal("Alice", out.Rows[1].DisplayName)
	s.Equal(int64(100), out.Rows[1].Seconds)
}

func (s *ReporterServiceTestSuite) TestBuildDayRowsTieBrokenByName() {
	s.mockTracker.EXPECT().
		GetDayTotals(s.ctx, gomock.Any()).
		Return(&tracker.GetDayTotalsOutput{
			Totals: map[string]int64{"1": 60, "2": 60},
		}, nil)

	out, err := s.service.BuildDayRows(s.ctx, &BuildDayRowsInput{
		Day:      "2026-02-01",
		Resolver: mapResolver{"1": "zoe", "2": "Adam"},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Rows, 2)

	s.Equal("Adam", out.Rows[0].DisplayName)
	s.Equal("zoe", out.Rows[1].DisplayName)
}

func (s *ReporterServiceTestSuite) TestBuildDayRowsFallbackName() {
	s.mockTracker.EXPECT().
		GetDayTotals(s.ctx, gomock.Any()).
		Return(&tracker.GetDayTotalsOutput{
			Totals: map[string]int64{"123": 60},
		}, nil)

	out, err := s.service.BuildDayRows(s.ctx, &BuildDayRowsInput{
		Day:      "2026-02-01",
		Resolver: mapResolver{},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Rows, 1)
	s.Equal("User 123", out.Rows[0].DisplayName)
}

func (s *ReporterServiceTestSuite) TestBuildDayRowsSkipsEmptyTotals() {
	s.mockTracker.EXPECT().
		GetDayTotals(s.ctx, gomock.Any()).
		Return(&tracker.GetDayTotalsOutput{
			Totals: map[string]int64{"1": 0, "2": 45},
		}, nil)

	out, err := s.service.BuildDayRows(s.ctx, &BuildDayRowsInput{
		Day:      "2026-02-01",
		Resolver: mapResolver{"2": "Bob"},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Rows, 1)
	s.Equal("Bob", out.Rows[0].DisplayName)
}

func (s *ReporterServiceTestSuite) TestBuildDayRowsForwardsLiveFlag() {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	s.mockTracker.EXPECT().
		GetDayTotals(s.ctx, &tracker.GetDayTotalsInput{
			Day:         "2026-02-01",
			IncludeLive: true,
			Now:         now,
		}).
		Return(&tracker.GetDayTotalsOutput{Totals: map[string]int64{}}, nil)

	out, err := s.service.BuildDayRows(s.ctx, &BuildDayRowsInput{
		Day:         "2026-02-01",
		IncludeLive: true,
		Now:         now,
		Resolver:    mapResolver{},
	})
	s.Require().NoError(err)
	s.Empty(out.Rows)
}

func (s *ReporterServiceTestSuite) TestBuildReportContent() {
	rows := []*models.ReportRow{
		{UserID: "2", DisplayName: "Bob", Seconds: 3661},
		{UserID: "1", DisplayName: "Alice", Seconds: 100},
	}

	content := s.service.BuildReportContent("2026-02-01", "focus-room", rows)

	s.Contains(content, "**Daily Voice Activity - 2026-02-01**")
	s.Contains(content, "Tracked channel: #focus-room")
	s.Contains(content, "- Bob: `01:01:01`")
	s.Contains(content, "- Alice: `00:01:40`")
}

func (s *ReporterServiceTestSuite) TestBuildReportContentNoActivity() {
	content := s.service.BuildReportContent("2026-02-01", "focus-room", nil)

	s.Contains(content, "No tracked activity for 2026-02-01.")
}

func (s *ReporterServiceTestSuite) TestFormatSeconds() {
	s.Equal("00:00:00", FormatSeconds(0))
	s.Equal("01:01:01", FormatSeconds(3661))
	s.Equal("27:46:39", FormatSeconds(99999))
	s.Equal("00:00:00", FormatSeconds(-5))
}
