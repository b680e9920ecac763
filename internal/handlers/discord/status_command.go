package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/jmhart/voicetally/internal/daybound"
	"github.com/jmhart/voicetally/internal/services/reporter"
	"github.com/jmhart/voicetally/internal/services/tracker"
)

// StatusCommand handles the /status command
type StatusCommand struct {
	BaseCommand
	bot *Bot
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(bot *Bot) *StatusCommand {
	return &StatusCommand{
		BaseCommand: BaseCommand{
			Name:        "status",
			Description: "Show tracker settings and your current session",
		},
		bot: bot,
	}
}

// Handle processes a Discord interaction for the status command
func (c *StatusCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.GuildID != c.bot.config.GuildID || i.Member == nil {
		return RespondWithError(s, i, "This command only works in the configured server.")
	}

	ctx := context.Background()
	now := c.bot.clock.Now()
	tz := c.bot.config.Timezone

	status, err := c.bot.trackerService.GetStatus(ctx, &tracker.GetStatusInput{
		UserID: i.Member.User.ID,
	})
	if err != nil {
		return RespondWithError(s, i, "Failed to look up your session. Please try again.")
	}

	sessionLine := "You are not being tracked right now."
	if status.Open {
		sessionLine = fmt.Sprintf("You joined at %s and have %s tracked in this session.",
			status.StartedAt.In(tz).Format("15:04:05"),
			reporter.FormatSeconds(status.ElapsedSeconds))
	}

	cooldownLine := "`/report-now` is ready."
	if remaining := c.bot.cooldownRemaining(ctx, now); remaining > 0 {
		cooldownLine = fmt.Sprintf("`/report-now` is on cooldown for another %s.",
			reporter.FormatSeconds(remaining))
	}

	nextReport := daybound.NextMidnight(now, tz)

	lines := []string{
		"**Voice Tracker Status**",
		fmt.Sprintf("Tracked channel: #%s", c.bot.TrackedChannelName()),
		fmt.Sprintf("Timezone: %s (today is %s)", tz.String(), daybound.DayKey(now, tz)),
		fmt.Sprintf("Next daily report: %s", nextReport.Format("2006-01-02 15:04 MST")),
		cooldownLine,
		sessionLine,
	}

	return RespondWithEphemeralMessage(s, i, strings.Join(lines, "\n"))
}
