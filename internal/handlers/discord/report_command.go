package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/jmhart/voicetally/internal/daybound"
	"github.com/jmhart/voicetally/internal/services/reporter"
)

// ReportNowCommand handles the /report-now command
type ReportNowCommand struct {
	BaseCommand
	bot *Bot
}

// NewReportNowCommand creates a new report-now command handler
func NewReportNowCommand(bot *Bot) *ReportNowCommand {
	return &ReportNowCommand{
		BaseCommand: BaseCommand{
			Name:        "report-now",
			Description: "Post a day-so-far report to the report channel",
		},
		bot: bot,
	}
}

// Handle processes a Discord interaction for the report-now command.
// The cooldown is global, not per user, since the output lands in a
// shared channel.
func (c *ReportNowCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.GuildID != c.bot.config.GuildID || i.Member == nil {
		return RespondWithError(s, i, "This command only works in the configured server.")
	}

	ctx := context.Background()
	now := c.bot.clock.Now()

	if remaining := c.bot.cooldownRemaining(ctx, now); remaining > 0 {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf(
			"A report was posted recently. Try again in %s.",
			reporter.FormatSeconds(remaining)))
	}

	day := daybound.DayKey(now, c.bot.config.Timezone)

	rows, err := c.bot.reporterService.BuildDayRows(ctx, &reporter.BuildDayRowsInput{
		Day:         day,
		IncludeLive: true,
		Now:         now,
		Resolver:    c.bot.memberResolver(),
	})
	if err != nil {
		return RespondWithError(s, i, "Failed to build today's totals. Please try again.")
	}

	content := c.bot.reporterService.BuildReportContent(day, c.bot.TrackedChannelName(), rows.Rows)
	if err := c.bot.postReport(content); err != nil {
		return RespondWithError(s, i, "Failed to post the report. Please try again.")
	}

	c.bot.recordManualReport(ctx, now)

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Report for %s posted to #%s.",
		day, c.bot.reportChannelName(s)))
}
