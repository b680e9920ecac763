package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/jmhart/voicetally/internal/daybound"
	"github.com/jmhart/voicetally/internal/services/reporter"
)

// TodayCommand handles the /today command
type TodayCommand struct {
	BaseCommand
	bot *Bot
}

// NewTodayCommand creates a new today command handler
func NewTodayCommand(bot *Bot) *TodayCommand {
	return &TodayCommand{
		BaseCommand: BaseCommand{
			Name:        "today",
			Description: "Show tracked voice time for today so far",
		},
		bot: bot,
	}
}

// Handle processes a Discord interaction for the today command. Open
// sessions count their running time, so the answer is day-so-far
// rather than closed-sessions-only.
func (c *TodayCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.GuildID != c.bot.config.GuildID || i.Member == nil {
		return RespondWithError(s, i, "This command only works in the configured server.")
	}

	ctx := context.Background()
	now := c.bot.clock.Now()
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

	return RespondWithEphemeralMessage(s, i, content)
}
