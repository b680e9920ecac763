package reporter

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jmhart/voicetally/internal/models"
	"github.com/jmhart/voicetally/internal/services/tracker"
)

// service implements the Service interface
type service struct {
	tracker tracker.Service
}

// New creates a new reporter service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Tracker == nil {
		return nil, errors.New("tracker service cannot be nil")
	}

	return &service{
		tracker: cfg.Tracker,
	}, nil
}

// BuildDayRows pulls aggregated totals for the day (plus live deltas
// when requested), drops empty entries, resolves display names, and
// sorts by seconds descending then display name.
func (s *service) BuildDayRows(ctx context.Context, input *BuildDayRowsInput) (*BuildDayRowsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Day == "" {
		return nil, errors.New("day cannot be empty")
	}

	totals, err := s.tracker.GetDayTotals(ctx, &tracker.GetDayTotalsInput{
		Day:         input.Day,
		IncludeLive: input.IncludeLive,
		Now:         input.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get totals for %s: %w", input.Day, err)
	}

	rows := make([]*models.ReportRow, 0, len(totals.Totals))
	for userID, seconds := range totals.Totals {
		if seconds <= 0 {
			continue
		}

		// Fall back to the raw ID when the member left the guild cache
		displayName := fmt.Sprintf("User %s", userID)
		if input.Resolver != nil {
			if name, ok := input.Resolver.DisplayName(userID); ok {
				displayName = name
			}
		}

		rows = append(rows, &models.ReportRow{
			UserID:      userID,
			DisplayName: displayName,
			Seconds:     seconds,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Seconds != rows[j].Seconds {
			return rows[i].Seconds > rows[j].Seconds
		}
		return strings.ToLower(rows[i].DisplayName) < strings.ToLower(rows[j].DisplayName)
	})

	return &BuildDayRowsOutput{Rows: rows}, nil
}

// BuildReportContent renders the report message body
func (s *service) BuildReportContent(day, trackedChannelName string, rows []*models.ReportRow) string {
	header := fmt.Sprintf("**Daily Voice Activity - %s**", day)
	channelLine := fmt.Sprintf("Tracked channel: #%s", trackedChannelName)

	if len(rows) == 0 {
		return fmt.Sprintf("%s\n%s\nNo tracked activity for %s.", header, channelLine, day)
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, header, channelLine)
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("- %s: `%s`", row.DisplayName, FormatSeconds(row.Seconds)))
	}

	return strings.Join(lines, "\n")
}

// FormatSeconds renders a duration as HH:MM:SS for consistent report output
func FormatSeconds(totalSeconds int64) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
